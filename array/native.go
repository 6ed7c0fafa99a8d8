package array

import "fmt"

// ToList materializes every position of a as a native Go value:
// nil, bool, int64, float64, string, []any or map[string]any.
// Stored values are reported literally; non-finite floats stay floats.
func ToList(a Array) []any {
	out := make([]any, a.Len())
	for i := range out {
		out[i] = ValueAt(a, i)
	}
	return out
}

// ValueAt materializes position i of a.
func ValueAt(a Array, i int) any {
	switch x := a.(type) {
	case *Bool:
		return x.Values[i]
	case *Int64:
		return x.Values[i]
	case *Float64:
		return x.Values[i]
	case *String:
		return x.Value(i)
	case *List:
		start, stop := x.Bounds(i)
		items := make([]any, 0, stop-start)
		for j := start; j < stop; j++ {
			items = append(items, ValueAt(x.Content, j))
		}
		return items
	case *Record:
		m := make(map[string]any, len(x.Keys))
		for k, key := range x.Keys {
			m[key] = ValueAt(x.Contents[k], i)
		}
		return m
	case *Option:
		if !x.IsValid(i) {
			return nil
		}
		return ValueAt(x.Content, int(x.Index[i]))
	case *Union:
		return ValueAt(x.Contents[x.Tags[i]], int(x.Index[i]))
	case *Empty:
		panic(fmt.Sprintf("array: index %d out of range for empty array", i))
	default:
		panic(fmt.Sprintf("array: unsupported array type %T", a))
	}
}
