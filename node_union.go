package jsoncol

import (
	"github.com/reoring/jsoncol/array"
	"github.com/reoring/jsoncol/internal/buffer"
)

// unionNode holds one alternative per distinct shape. Positions written
// before the promotion belong to alternative 0 at their own position; later
// positions carry an explicit tag and index. Alternatives are never Option or
// Union nodes.
type unionNode struct {
	env      *buildEnv
	contents []node
	prefix   int
	tags     *buffer.Buffer[int8]
	index    *buffer.Buffer[int64]
	// cur is the alternative holding an open container, or -1.
	cur int
}

func newUnion(env *buildEnv, first node) *unionNode {
	return &unionNode{
		env:      env,
		contents: []node{first},
		prefix:   first.length(),
		tags:     buffer.New[int8](env.buf),
		index:    buffer.New[int64](env.buf),
		cur:      -1,
	}
}

func (n *unionNode) kind() array.Kind { return array.KindUnion }
func (n *unionNode) length() int      { return n.prefix + n.tags.Len() }
func (n *unionNode) active() bool     { return n.cur >= 0 }

// pick returns the first alternative whose kind matches, trying kinds in
// order, or -1.
func (n *unionNode) pick(kinds ...array.Kind) int {
	for _, k := range kinds {
		for i, c := range n.contents {
			if c.kind() == k {
				return i
			}
		}
	}
	return -1
}

// put delivers a value to the open alternative, or starts a new position in
// the alternative chosen by kinds (a new one when none matches).
func (n *unionNode) put(f func(node) node, kinds ...array.Kind) node {
	if n.cur >= 0 {
		c := f(n.contents[n.cur])
		n.contents[n.cur] = c
		if !c.active() {
			n.cur = -1
		}
		return n
	}
	i := n.pick(kinds...)
	if i < 0 {
		i = len(n.contents)
		n.contents = append(n.contents, &emptyNode{env: n.env})
		n.env.log.Debug("jsoncol: union alternative added", "alternatives", len(n.contents))
	}
	n.tags.Append(int8(i))
	n.index.Append(int64(n.contents[i].length()))
	c := f(n.contents[i])
	n.contents[i] = c
	if c.active() {
		n.cur = i
	}
	return n
}

func (n *unionNode) null() node {
	if n.cur >= 0 {
		return n.put(func(c node) node { return c.null() })
	}
	return toOption(n.env, n).null()
}

func (n *unionNode) boolean(v bool) node {
	return n.put(func(c node) node { return c.boolean(v) }, array.KindBool)
}

func (n *unionNode) integer(v int64) node {
	return n.put(func(c node) node { return c.integer(v) }, array.KindInt64)
}

// real prefers a float alternative and otherwise widens an int alternative.
func (n *unionNode) real(v float64) node {
	return n.put(func(c node) node { return c.real(v) }, array.KindFloat64, array.KindInt64)
}

func (n *unionNode) str(v string) node {
	return n.put(func(c node) node { return c.str(v) }, array.KindString)
}

func (n *unionNode) beginList() node {
	return n.put(func(c node) node { return c.beginList() }, array.KindList)
}

func (n *unionNode) beginRecord() node {
	return n.put(func(c node) node { return c.beginRecord() }, array.KindRecord)
}

func (n *unionNode) endList() {
	if n.cur < 0 {
		unreachable(n, "endList")
	}
	n.put(func(c node) node { c.endList(); return c })
}

func (n *unionNode) field(key string) {
	if n.cur < 0 {
		unreachable(n, "field")
	}
	n.contents[n.cur].field(key)
}

func (n *unionNode) endRecord() {
	if n.cur < 0 {
		unreachable(n, "endRecord")
	}
	n.put(func(c node) node { c.endRecord(); return c })
}

func (n *unionNode) snapshot() array.Array {
	size := n.length()
	tags := make([]int8, size)
	index := make([]int64, size)
	for i := 0; i < n.prefix; i++ {
		index[i] = int64(i)
	}
	for j := 0; j < n.tags.Len(); j++ {
		tags[n.prefix+j] = n.tags.At(j)
		index[n.prefix+j] = n.index.At(j)
	}
	contents := make([]array.Array, len(n.contents))
	for i, c := range n.contents {
		contents[i] = c.snapshot()
	}
	return &array.Union{Tags: tags, Index: index, Contents: contents}
}
