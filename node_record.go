package jsoncol

import (
	"log/slog"

	"github.com/reoring/jsoncol/array"
)

const (
	noField  = -1
	dupField = -2
)

// recordNode keeps one child per field name, in first-seen order. Children
// advance in lock-step: a record that lacks a field appends a missing value to
// it when the record closes.
type recordNode struct {
	env      *buildEnv
	keys     []string
	index    map[string]int
	contents []node
	rows     int
	begun    bool
	cur      int
	// sink absorbs the value of a repeated key; the first occurrence wins.
	sink node
}

func newRecord(env *buildEnv) *recordNode {
	return &recordNode{env: env, index: make(map[string]int), cur: noField}
}

func (n *recordNode) kind() array.Kind { return array.KindRecord }
func (n *recordNode) length() int      { return n.rows }
func (n *recordNode) active() bool     { return n.begun }

func (n *recordNode) slot() *node {
	if n.cur == dupField {
		return &n.sink
	}
	return &n.contents[n.cur]
}

// put routes a value event to the current field and closes the field once
// its value is complete.
func (n *recordNode) put(f func(node) node) {
	if n.cur == noField {
		unreachable(n, "value without field")
	}
	s := n.slot()
	*s = f(*s)
	if !(*s).active() {
		n.cur = noField
	}
}

func (n *recordNode) beginRecord() node {
	if !n.begun {
		n.begun = true
		return n
	}
	n.put(func(c node) node { return c.beginRecord() })
	return n
}

func (n *recordNode) field(key string) {
	if !n.begun {
		unreachable(n, "field")
	}
	if n.cur != noField {
		(*n.slot()).field(key)
		return
	}
	i, ok := n.index[key]
	switch {
	case !ok:
		i = len(n.contents)
		n.index[key] = i
		n.keys = append(n.keys, key)
		n.contents = append(n.contents, newMissing(n.env, n.rows))
	case n.contents[i].length() > n.rows:
		n.env.log.Debug("jsoncol: duplicate key discarded", slog.String("key", key))
		n.sink = &emptyNode{env: n.env}
		n.cur = dupField
		return
	}
	n.cur = i
}

func (n *recordNode) endRecord() {
	if !n.begun {
		unreachable(n, "endRecord")
	}
	if n.cur != noField {
		n.put(func(c node) node { c.endRecord(); return c })
		return
	}
	for i, c := range n.contents {
		if c.length() == n.rows {
			n.contents[i] = c.null()
		}
	}
	n.rows++
	n.begun = false
	n.sink = nil
}

func (n *recordNode) endList() {
	if !n.begun {
		unreachable(n, "endList")
	}
	n.put(func(c node) node { c.endList(); return c })
}

func (n *recordNode) null() node {
	if !n.begun {
		return toOption(n.env, n).null()
	}
	n.put(func(c node) node { return c.null() })
	return n
}

func (n *recordNode) boolean(v bool) node {
	if !n.begun {
		return toUnion(n.env, n).boolean(v)
	}
	n.put(func(c node) node { return c.boolean(v) })
	return n
}

func (n *recordNode) integer(v int64) node {
	if !n.begun {
		return toUnion(n.env, n).integer(v)
	}
	n.put(func(c node) node { return c.integer(v) })
	return n
}

func (n *recordNode) real(v float64) node {
	if !n.begun {
		return toUnion(n.env, n).real(v)
	}
	n.put(func(c node) node { return c.real(v) })
	return n
}

func (n *recordNode) str(v string) node {
	if !n.begun {
		return toUnion(n.env, n).str(v)
	}
	n.put(func(c node) node { return c.str(v) })
	return n
}

func (n *recordNode) beginList() node {
	if !n.begun {
		return toUnion(n.env, n).beginList()
	}
	n.put(func(c node) node { return c.beginList() })
	return n
}

func (n *recordNode) snapshot() array.Array {
	out := &array.Record{
		Keys:     append([]string(nil), n.keys...),
		Contents: make([]array.Array, len(n.contents)),
		Length:   n.rows,
	}
	for i, c := range n.contents {
		out.Contents[i] = c.snapshot()
	}
	return out
}
