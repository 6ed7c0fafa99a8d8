package buffer

import "math"

// Defaults used when Options leave a field zero.
const (
	DefaultInitial = 1024
	DefaultResize  = 1.5
)

// Options controls buffer growth.
type Options struct {
	Initial int     // capacity reserved on first append
	Resize  float64 // growth factor once the buffer is full (> 1)
}

func (o Options) normalized() Options {
	if o.Initial <= 0 {
		o.Initial = DefaultInitial
	}
	if o.Resize <= 1 {
		o.Resize = DefaultResize
	}
	return o
}

// Buffer is an append-only sequence that owns its backing array. Growth is
// explicit so the reserve policy is independent of the runtime's append
// heuristics.
type Buffer[T any] struct {
	data []T
	opt  Options
}

// New returns an empty buffer; no memory is reserved until the first append.
func New[T any](opt Options) *Buffer[T] {
	return &Buffer[T]{opt: opt.normalized()}
}

// Len returns the number of stored elements.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Cap returns the reserved capacity.
func (b *Buffer[T]) Cap() int { return cap(b.data) }

// At returns the i-th element.
func (b *Buffer[T]) At(i int) T { return b.data[i] }

// Last returns the final element; the buffer must not be empty.
func (b *Buffer[T]) Last() T { return b.data[len(b.data)-1] }

// Append adds v, growing the backing array when needed.
func (b *Buffer[T]) Append(v T) {
	if len(b.data) == cap(b.data) {
		b.grow(len(b.data) + 1)
	}
	b.data = append(b.data, v)
}

// AppendN adds v n times.
func (b *Buffer[T]) AppendN(v T, n int) {
	if n <= 0 {
		return
	}
	if len(b.data)+n > cap(b.data) {
		b.grow(len(b.data) + n)
	}
	for i := 0; i < n; i++ {
		b.data = append(b.data, v)
	}
}

// AppendSlice adds every element of vs.
func (b *Buffer[T]) AppendSlice(vs []T) {
	if len(b.data)+len(vs) > cap(b.data) {
		b.grow(len(b.data) + len(vs))
	}
	b.data = append(b.data, vs...)
}

// Snapshot returns an exact-length copy that later appends cannot affect.
func (b *Buffer[T]) Snapshot() []T {
	out := make([]T, len(b.data))
	copy(out, b.data)
	return out
}

func (b *Buffer[T]) grow(need int) {
	c := cap(b.data)
	if c == 0 {
		c = b.opt.Initial
	}
	for c < need {
		next := int(math.Ceil(float64(c) * b.opt.Resize))
		if next <= c {
			next = c + 1
		}
		c = next
	}
	data := make([]T, len(b.data), c)
	copy(data, b.data)
	b.data = data
}

// Map returns a new buffer holding f applied to every element, keeping the
// growth options of src.
func Map[T, U any](src *Buffer[T], f func(T) U) *Buffer[U] {
	out := &Buffer[U]{opt: src.opt, data: make([]U, len(src.data), max(cap(src.data), src.opt.Initial))}
	for i, v := range src.data {
		out.data[i] = f(v)
	}
	return out
}
