package jsoncol

import (
	"github.com/reoring/jsoncol/array"
	"github.com/reoring/jsoncol/internal/buffer"
)

type boolNode struct {
	env *buildEnv
	buf *buffer.Buffer[bool]
}

func newBool(env *buildEnv) *boolNode {
	return &boolNode{env: env, buf: buffer.New[bool](env.buf)}
}

func (n *boolNode) kind() array.Kind { return array.KindBool }
func (n *boolNode) length() int      { return n.buf.Len() }
func (n *boolNode) active() bool     { return false }

func (n *boolNode) boolean(v bool) node {
	n.buf.Append(v)
	return n
}

func (n *boolNode) null() node            { return toOption(n.env, n).null() }
func (n *boolNode) integer(v int64) node  { return toUnion(n.env, n).integer(v) }
func (n *boolNode) real(v float64) node   { return toUnion(n.env, n).real(v) }
func (n *boolNode) str(v string) node     { return toUnion(n.env, n).str(v) }
func (n *boolNode) beginList() node       { return toUnion(n.env, n).beginList() }
func (n *boolNode) beginRecord() node     { return toUnion(n.env, n).beginRecord() }
func (n *boolNode) endList()              { unreachable(n, "endList") }
func (n *boolNode) field(string)          { unreachable(n, "field") }
func (n *boolNode) endRecord()            { unreachable(n, "endRecord") }
func (n *boolNode) snapshot() array.Array { return &array.Bool{Values: n.buf.Snapshot()} }

type int64Node struct {
	env *buildEnv
	buf *buffer.Buffer[int64]
}

func newInt64(env *buildEnv) *int64Node {
	return &int64Node{env: env, buf: buffer.New[int64](env.buf)}
}

func (n *int64Node) kind() array.Kind { return array.KindInt64 }
func (n *int64Node) length() int      { return n.buf.Len() }
func (n *int64Node) active() bool     { return false }

func (n *int64Node) integer(v int64) node {
	n.buf.Append(v)
	return n
}

// real widens the column to float64; it is the only implicit conversion.
func (n *int64Node) real(v float64) node {
	n.env.promoted(array.KindInt64, array.KindFloat64)
	f := &float64Node{env: n.env, buf: buffer.Map(n.buf, func(i int64) float64 { return float64(i) })}
	return f.real(v)
}

func (n *int64Node) null() node            { return toOption(n.env, n).null() }
func (n *int64Node) boolean(v bool) node   { return toUnion(n.env, n).boolean(v) }
func (n *int64Node) str(v string) node     { return toUnion(n.env, n).str(v) }
func (n *int64Node) beginList() node       { return toUnion(n.env, n).beginList() }
func (n *int64Node) beginRecord() node     { return toUnion(n.env, n).beginRecord() }
func (n *int64Node) endList()              { unreachable(n, "endList") }
func (n *int64Node) field(string)          { unreachable(n, "field") }
func (n *int64Node) endRecord()            { unreachable(n, "endRecord") }
func (n *int64Node) snapshot() array.Array { return &array.Int64{Values: n.buf.Snapshot()} }

type float64Node struct {
	env *buildEnv
	buf *buffer.Buffer[float64]
}

func newFloat64(env *buildEnv) *float64Node {
	return &float64Node{env: env, buf: buffer.New[float64](env.buf)}
}

func (n *float64Node) kind() array.Kind { return array.KindFloat64 }
func (n *float64Node) length() int      { return n.buf.Len() }
func (n *float64Node) active() bool     { return false }

func (n *float64Node) real(v float64) node {
	n.buf.Append(v)
	return n
}

func (n *float64Node) null() node            { return toOption(n.env, n).null() }
func (n *float64Node) integer(v int64) node  { return toUnion(n.env, n).integer(v) }
func (n *float64Node) boolean(v bool) node   { return toUnion(n.env, n).boolean(v) }
func (n *float64Node) str(v string) node     { return toUnion(n.env, n).str(v) }
func (n *float64Node) beginList() node       { return toUnion(n.env, n).beginList() }
func (n *float64Node) beginRecord() node     { return toUnion(n.env, n).beginRecord() }
func (n *float64Node) endList()              { unreachable(n, "endList") }
func (n *float64Node) field(string)          { unreachable(n, "field") }
func (n *float64Node) endRecord()            { unreachable(n, "endRecord") }
func (n *float64Node) snapshot() array.Array { return &array.Float64{Values: n.buf.Snapshot()} }

// stringNode stores text as one byte buffer delimited by offsets.
type stringNode struct {
	env     *buildEnv
	offsets *buffer.Buffer[int64]
	content *buffer.Buffer[byte]
}

func newString(env *buildEnv) *stringNode {
	n := &stringNode{env: env, offsets: buffer.New[int64](env.buf), content: buffer.New[byte](env.buf)}
	n.offsets.Append(0)
	return n
}

func (n *stringNode) kind() array.Kind { return array.KindString }
func (n *stringNode) length() int      { return n.offsets.Len() - 1 }
func (n *stringNode) active() bool     { return false }

func (n *stringNode) str(v string) node {
	n.content.AppendSlice([]byte(v))
	n.offsets.Append(int64(n.content.Len()))
	return n
}

func (n *stringNode) null() node           { return toOption(n.env, n).null() }
func (n *stringNode) boolean(v bool) node  { return toUnion(n.env, n).boolean(v) }
func (n *stringNode) integer(v int64) node { return toUnion(n.env, n).integer(v) }
func (n *stringNode) real(v float64) node  { return toUnion(n.env, n).real(v) }
func (n *stringNode) beginList() node      { return toUnion(n.env, n).beginList() }
func (n *stringNode) beginRecord() node    { return toUnion(n.env, n).beginRecord() }
func (n *stringNode) endList()             { unreachable(n, "endList") }
func (n *stringNode) field(string)         { unreachable(n, "field") }
func (n *stringNode) endRecord()           { unreachable(n, "endRecord") }

func (n *stringNode) snapshot() array.Array {
	return &array.String{Offsets: n.offsets.Snapshot(), Content: n.content.Snapshot()}
}
