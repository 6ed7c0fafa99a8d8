package jsoncol

import (
	"github.com/reoring/jsoncol/array"
	"github.com/reoring/jsoncol/internal/buffer"
)

// listNode stores list elements contiguously in content; offsets has one more
// entry than there are lists.
type listNode struct {
	env     *buildEnv
	offsets *buffer.Buffer[int64]
	content node
	begun   bool
}

func newList(env *buildEnv) *listNode {
	n := &listNode{env: env, offsets: buffer.New[int64](env.buf), content: &emptyNode{env: env}}
	n.offsets.Append(0)
	return n
}

func (n *listNode) kind() array.Kind { return array.KindList }
func (n *listNode) length() int      { return n.offsets.Len() - 1 }
func (n *listNode) active() bool     { return n.begun }

func (n *listNode) beginList() node {
	if n.begun {
		n.content = n.content.beginList()
		return n
	}
	n.begun = true
	return n
}

func (n *listNode) endList() {
	if !n.begun {
		unreachable(n, "endList")
	}
	if n.content.active() {
		n.content.endList()
		return
	}
	n.offsets.Append(int64(n.content.length()))
	n.begun = false
}

func (n *listNode) null() node {
	if !n.begun {
		return toOption(n.env, n).null()
	}
	n.content = n.content.null()
	return n
}

func (n *listNode) boolean(v bool) node {
	if !n.begun {
		return toUnion(n.env, n).boolean(v)
	}
	n.content = n.content.boolean(v)
	return n
}

func (n *listNode) integer(v int64) node {
	if !n.begun {
		return toUnion(n.env, n).integer(v)
	}
	n.content = n.content.integer(v)
	return n
}

func (n *listNode) real(v float64) node {
	if !n.begun {
		return toUnion(n.env, n).real(v)
	}
	n.content = n.content.real(v)
	return n
}

func (n *listNode) str(v string) node {
	if !n.begun {
		return toUnion(n.env, n).str(v)
	}
	n.content = n.content.str(v)
	return n
}

func (n *listNode) beginRecord() node {
	if !n.begun {
		return toUnion(n.env, n).beginRecord()
	}
	n.content = n.content.beginRecord()
	return n
}

func (n *listNode) field(key string) {
	if !n.begun {
		unreachable(n, "field")
	}
	n.content.field(key)
}

func (n *listNode) endRecord() {
	if !n.begun {
		unreachable(n, "endRecord")
	}
	n.content.endRecord()
}

func (n *listNode) snapshot() array.Array {
	return &array.List{Offsets: n.offsets.Snapshot(), Content: n.content.snapshot()}
}
