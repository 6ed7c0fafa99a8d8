package jsoncol

import (
	"github.com/reoring/jsoncol/array"
	"github.com/reoring/jsoncol/internal/buffer"
)

// optionNode marks positions as valid or missing. The first prefix positions
// were written before the promotion and are implicitly valid with index equal
// to their position; only later positions carry explicit bits and indexes.
type optionNode struct {
	env     *buildEnv
	content node
	prefix  int
	valid   *buffer.Bits
	index   *buffer.Buffer[int64]
}

func newOption(env *buildEnv, content node) *optionNode {
	return &optionNode{
		env:     env,
		content: content,
		prefix:  content.length(),
		valid:   buffer.NewBits(env.buf),
		index:   buffer.New[int64](env.buf),
	}
}

func (n *optionNode) kind() array.Kind { return array.KindOption }
func (n *optionNode) length() int      { return n.prefix + n.index.Len() }
func (n *optionNode) active() bool     { return n.content.active() }

func (n *optionNode) appendMissing(k int) {
	n.valid.AppendN(false, k)
	n.index.AppendN(-1, k)
}

// put forwards a value to the content, recording a valid position unless the
// content is in the middle of a value already counted.
func (n *optionNode) put(f func(node) node) node {
	if !n.content.active() {
		n.valid.Append(true)
		n.index.Append(int64(n.content.length()))
	}
	n.content = f(n.content)
	return n
}

func (n *optionNode) null() node {
	if n.content.active() {
		n.content = n.content.null()
		return n
	}
	n.appendMissing(1)
	return n
}

func (n *optionNode) boolean(v bool) node {
	return n.put(func(c node) node { return c.boolean(v) })
}

func (n *optionNode) integer(v int64) node {
	return n.put(func(c node) node { return c.integer(v) })
}

func (n *optionNode) real(v float64) node {
	return n.put(func(c node) node { return c.real(v) })
}

func (n *optionNode) str(v string) node {
	return n.put(func(c node) node { return c.str(v) })
}

func (n *optionNode) beginList() node {
	return n.put(func(c node) node { return c.beginList() })
}

func (n *optionNode) beginRecord() node {
	return n.put(func(c node) node { return c.beginRecord() })
}

func (n *optionNode) endList() {
	if !n.content.active() {
		unreachable(n, "endList")
	}
	n.content.endList()
}

func (n *optionNode) field(key string) {
	if !n.content.active() {
		unreachable(n, "field")
	}
	n.content.field(key)
}

func (n *optionNode) endRecord() {
	if !n.content.active() {
		unreachable(n, "endRecord")
	}
	n.content.endRecord()
}

func (n *optionNode) snapshot() array.Array {
	size := n.length()
	valid := make([]uint64, (size+63)/64)
	index := make([]int64, size)
	for i := 0; i < n.prefix; i++ {
		valid[i/64] |= 1 << uint(i%64)
		index[i] = int64(i)
	}
	for j := 0; j < n.index.Len(); j++ {
		i := n.prefix + j
		if n.valid.Get(j) {
			valid[i/64] |= 1 << uint(i%64)
		}
		index[i] = n.index.At(j)
	}
	return &array.Option{Valid: valid, Index: index, Content: n.content.snapshot()}
}
