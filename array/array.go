// Package array holds the immutable, columnar snapshots produced by a
// jsoncol.Builder, plus helpers to inspect and materialize them.
//
// Every variant owns exact-length buffers that are never written after
// construction, so an Array may be shared between goroutines freely.
package array

// Kind identifies an Array variant.
type Kind int

const (
	KindEmpty Kind = iota
	KindBool
	KindInt64
	KindFloat64
	KindString
	KindList
	KindRecord
	KindOption
	KindUnion
)

var kindNames = [...]string{
	KindEmpty:   "empty",
	KindBool:    "bool",
	KindInt64:   "int64",
	KindFloat64: "float64",
	KindString:  "string",
	KindList:    "list",
	KindRecord:  "record",
	KindOption:  "option",
	KindUnion:   "union",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Array is a frozen column.
type Array interface {
	Len() int
	Kind() Kind
}

// Empty is a column for which no value was ever observed.
type Empty struct{}

func (*Empty) Len() int   { return 0 }
func (*Empty) Kind() Kind { return KindEmpty }

// Bool holds booleans.
type Bool struct{ Values []bool }

func (a *Bool) Len() int { return len(a.Values) }
func (*Bool) Kind() Kind { return KindBool }

// Int64 holds signed integers.
type Int64 struct{ Values []int64 }

func (a *Int64) Len() int { return len(a.Values) }
func (*Int64) Kind() Kind { return KindInt64 }

// Float64 holds IEEE-754 doubles, non-finite values included.
type Float64 struct{ Values []float64 }

func (a *Float64) Len() int { return len(a.Values) }
func (*Float64) Kind() Kind { return KindFloat64 }

// String holds UTF-8 text; value i is Content[Offsets[i]:Offsets[i+1]].
type String struct {
	Offsets []int64
	Content []byte
}

func (a *String) Len() int {
	if len(a.Offsets) == 0 {
		return 0
	}
	return len(a.Offsets) - 1
}
func (*String) Kind() Kind { return KindString }

// Value returns the i-th string.
func (a *String) Value(i int) string {
	return string(a.Content[a.Offsets[i]:a.Offsets[i+1]])
}

// List holds variable-length sequences; element i spans
// Content[Offsets[i]:Offsets[i+1]].
type List struct {
	Offsets []int64
	Content Array
}

func (a *List) Len() int {
	if len(a.Offsets) == 0 {
		return 0
	}
	return len(a.Offsets) - 1
}
func (*List) Kind() Kind { return KindList }

// Bounds returns the content range of element i.
func (a *List) Bounds(i int) (start, stop int) {
	return int(a.Offsets[i]), int(a.Offsets[i+1])
}

// Record holds a fixed, ordered set of named columns of equal length.
type Record struct {
	Keys     []string
	Contents []Array
	Length   int
}

func (a *Record) Len() int { return a.Length }
func (*Record) Kind() Kind { return KindRecord }

// Field returns the column stored under key.
func (a *Record) Field(key string) (Array, bool) {
	for i, k := range a.Keys {
		if k == key {
			return a.Contents[i], true
		}
	}
	return nil, false
}

// Option marks positions as valid or missing. Valid is an LSB-first bitmap;
// Index maps valid positions into Content and holds -1 for missing ones.
type Option struct {
	Valid   []uint64
	Index   []int64
	Content Array
}

func (a *Option) Len() int { return len(a.Index) }
func (*Option) Kind() Kind { return KindOption }

// IsValid reports whether position i holds a value.
func (a *Option) IsValid(i int) bool {
	return a.Valid[i/64]&(1<<uint(i%64)) != 0
}

// Union stores values of several shapes; position i lives in
// Contents[Tags[i]] at Index[i].
type Union struct {
	Tags     []int8
	Index    []int64
	Contents []Array
}

func (a *Union) Len() int { return len(a.Tags) }
func (*Union) Kind() Kind { return KindUnion }
