package jsoncol

import (
	"fmt"
	"log/slog"

	"github.com/reoring/jsoncol/array"
	"github.com/reoring/jsoncol/internal/buffer"
)

// node accumulates one column. Value methods return the node that owns the
// position afterwards: the receiver itself, or its promotion. While a
// container value is open (active), every call is routed to the innermost
// open child. Event grammar is checked by Builder before it reaches a node.
type node interface {
	kind() array.Kind
	length() int
	active() bool

	null() node
	boolean(v bool) node
	integer(v int64) node
	real(v float64) node
	str(v string) node
	beginList() node
	beginRecord() node

	endList()
	field(key string)
	endRecord()

	snapshot() array.Array
}

// buildEnv is shared by every node of one Builder.
type buildEnv struct {
	buf buffer.Options
	log *slog.Logger
}

func (e *buildEnv) promoted(from, to array.Kind) {
	e.log.Debug("jsoncol: promote", slog.String("from", from.String()), slog.String("to", to.String()))
}

func unreachable(n node, op string) {
	panic(fmt.Sprintf("jsoncol: %s on inactive %s node", op, n.kind()))
}

// toOption wraps old so that its existing positions read as valid.
func toOption(env *buildEnv, old node) *optionNode {
	env.promoted(old.kind(), array.KindOption)
	return newOption(env, old)
}

// toUnion makes old the first alternative of a new union. Existing positions
// are covered by the union's implicit prefix, so nothing is copied.
func toUnion(env *buildEnv, old node) *unionNode {
	env.promoted(old.kind(), array.KindUnion)
	return newUnion(env, old)
}

// newMissing returns a column holding n missing values.
func newMissing(env *buildEnv, n int) node {
	if n == 0 {
		return &emptyNode{env: env}
	}
	o := newOption(env, &emptyNode{env: env})
	o.appendMissing(n)
	return o
}

// emptyNode is a position where nothing has been observed yet.
type emptyNode struct{ env *buildEnv }

func (n *emptyNode) kind() array.Kind { return array.KindEmpty }
func (n *emptyNode) length() int      { return 0 }
func (n *emptyNode) active() bool     { return false }

func (n *emptyNode) null() node            { return newOption(n.env, n).null() }
func (n *emptyNode) boolean(v bool) node   { return newBool(n.env).boolean(v) }
func (n *emptyNode) integer(v int64) node  { return newInt64(n.env).integer(v) }
func (n *emptyNode) real(v float64) node   { return newFloat64(n.env).real(v) }
func (n *emptyNode) str(v string) node     { return newString(n.env).str(v) }
func (n *emptyNode) beginList() node       { return newList(n.env).beginList() }
func (n *emptyNode) beginRecord() node     { return newRecord(n.env).beginRecord() }
func (n *emptyNode) endList()              { unreachable(n, "endList") }
func (n *emptyNode) field(string)          { unreachable(n, "field") }
func (n *emptyNode) endRecord()            { unreachable(n, "endRecord") }
func (n *emptyNode) snapshot() array.Array { return &array.Empty{} }
