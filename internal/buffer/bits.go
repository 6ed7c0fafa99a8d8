package buffer

// Bits is an append-only bitmap, LSB-first within each 64-bit word.
type Bits struct {
	words *Buffer[uint64]
	n     int
}

// NewBits returns an empty bitmap.
func NewBits(opt Options) *Bits {
	opt = opt.normalized()
	opt.Initial = (opt.Initial + 63) / 64
	return &Bits{words: New[uint64](opt)}
}

// Len returns the number of bits stored.
func (b *Bits) Len() int { return b.n }

// Append adds one bit.
func (b *Bits) Append(v bool) {
	if b.n%64 == 0 {
		b.words.Append(0)
	}
	if v {
		b.words.data[b.n/64] |= 1 << uint(b.n%64)
	}
	b.n++
}

// AppendN adds n copies of v.
func (b *Bits) AppendN(v bool, n int) {
	for i := 0; i < n; i++ {
		b.Append(v)
	}
}

// Get reports bit i.
func (b *Bits) Get(i int) bool {
	return b.words.data[i/64]&(1<<uint(i%64)) != 0
}

// Snapshot copies the words backing the first Len bits.
func (b *Bits) Snapshot() []uint64 { return b.words.Snapshot() }
