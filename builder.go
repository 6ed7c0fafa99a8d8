package jsoncol

import (
	"errors"
	"io"

	"github.com/reoring/jsoncol/array"
)

// Builder accumulates values into a columnar array whose type is inferred
// from the data. It is not safe for concurrent use; the Arrays it returns
// from Snapshot are.
type Builder struct {
	env    *buildEnv
	root   node
	frames []frame
	count  int
}

type frame struct {
	record       bool
	expectingKey bool
}

// NewBuilder returns an empty Builder. Only Initial, Resize and Logger of the
// options are consulted.
func NewBuilder(opts ...ParseOpt) *Builder {
	opt := lastOpt(opts)
	env := &buildEnv{buf: opt.bufferOptions(), log: opt.logger()}
	return &Builder{env: env, root: &emptyNode{env: env}}
}

// Len returns the number of completed top-level values.
func (b *Builder) Len() int { return b.count }

// Snapshot freezes the values appended so far. The Builder may keep
// accumulating afterwards; the returned Array is not affected.
func (b *Builder) Snapshot() (array.Array, error) {
	if len(b.frames) > 0 {
		return nil, ErrValueInProgress
	}
	return b.root.snapshot(), nil
}

// Append consumes exactly one complete value from src. It returns io.EOF
// when src is exhausted before a value starts.
func (b *Builder) Append(src Source) error {
	if len(b.frames) > 0 {
		return ErrValueInProgress
	}
	ev, err := src.NextEvent()
	if err != nil {
		return err
	}
	return b.appendFrom(ev, src)
}

// appendFrom pushes ev and then events from src until the value ev starts is
// complete.
func (b *Builder) appendFrom(ev Event, src Source) error {
	switch ev.Kind {
	case EventListEnd, EventRecordEnd, EventFieldKey:
		return parseErrorf("unexpected %s where a value must start", ev.Kind)
	}
	base := len(b.frames)
	for {
		if err := b.Push(ev); err != nil {
			return err
		}
		if len(b.frames) == base {
			return nil
		}
		var err error
		ev, err = src.NextEvent()
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
	}
}

// Push applies one event.
func (b *Builder) Push(ev Event) error {
	switch ev.Kind {
	case EventNull:
		return b.Null()
	case EventBool:
		return b.Bool(ev.Bool)
	case EventInt64:
		return b.Integer(ev.Int)
	case EventFloat64:
		return b.Real(ev.Float)
	case EventString:
		return b.StringValue(ev.String)
	case EventListStart:
		return b.BeginList()
	case EventListEnd:
		return b.EndList()
	case EventRecordStart:
		return b.BeginRecord()
	case EventFieldKey:
		return b.Field(ev.String)
	case EventRecordEnd:
		return b.EndRecord()
	}
	return parseErrorf("unknown event kind %d", int(ev.Kind))
}

func (b *Builder) Null() error {
	return b.value(func(n node) node { return n.null() })
}

func (b *Builder) Bool(v bool) error {
	return b.value(func(n node) node { return n.boolean(v) })
}

func (b *Builder) Integer(v int64) error {
	return b.value(func(n node) node { return n.integer(v) })
}

func (b *Builder) Real(v float64) error {
	return b.value(func(n node) node { return n.real(v) })
}

func (b *Builder) StringValue(v string) error {
	return b.value(func(n node) node { return n.str(v) })
}

func (b *Builder) BeginList() error {
	if err := b.value(func(n node) node { return n.beginList() }); err != nil {
		return err
	}
	b.frames = append(b.frames, frame{})
	return nil
}

func (b *Builder) BeginRecord() error {
	if err := b.value(func(n node) node { return n.beginRecord() }); err != nil {
		return err
	}
	b.frames = append(b.frames, frame{record: true, expectingKey: true})
	return nil
}

func (b *Builder) Field(key string) error {
	top := b.top()
	switch {
	case top == nil || !top.record:
		return parseErrorf("field key %q outside a record", key)
	case !top.expectingKey:
		return parseErrorf("field key %q follows a key without a value", key)
	}
	top.expectingKey = false
	b.root.field(key)
	return nil
}

func (b *Builder) EndList() error {
	if top := b.top(); top == nil || top.record {
		return parseErrorf("list end without matching list start")
	}
	b.root.endList()
	b.pop()
	return nil
}

func (b *Builder) EndRecord() error {
	top := b.top()
	switch {
	case top == nil || !top.record:
		return parseErrorf("record end without matching record start")
	case !top.expectingKey:
		return parseErrorf("record end after a key without a value")
	}
	b.root.endRecord()
	b.pop()
	return nil
}

func (b *Builder) top() *frame {
	if len(b.frames) == 0 {
		return nil
	}
	return &b.frames[len(b.frames)-1]
}

// value checks that a value may start here, applies it to the root and
// completes the enclosing position when it is a top-level scalar.
func (b *Builder) value(apply func(node) node) error {
	if top := b.top(); top != nil && top.record {
		if top.expectingKey {
			return parseErrorf("record value without a field key")
		}
		top.expectingKey = true
	}
	b.root = apply(b.root)
	if len(b.frames) == 0 && !b.root.active() {
		b.count++
	}
	return nil
}

func (b *Builder) pop() {
	b.frames = b.frames[:len(b.frames)-1]
	if len(b.frames) == 0 {
		b.count++
	}
}
