package jsoncol

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/reoring/jsoncol/array"
)

// FromText builds an array from zero or more whitespace-separated JSON
// values. Each value becomes one element of an implicit outer list: an array
// value contributes its elements, any other value a single-element list. A
// single value yields that element directly, so `[1,2,3]` has length 3 and
// `{"x":1}` has length 1.
func FromText(text string, opts ...ParseOpt) (array.Array, error) {
	return FromBytes([]byte(text), opts...)
}

// FromBytes is FromText over a byte slice.
func FromBytes(b []byte, opts ...ParseOpt) (array.Array, error) {
	return FromSource(context.Background(), JSONBytes(b), opts...)
}

// FromReader builds an array from JSON text read from r.
func FromReader(ctx context.Context, r io.Reader, opts ...ParseOpt) (array.Array, error) {
	return FromSource(ctx, JSONReader(r), opts...)
}

// FromFile builds an array from a JSON file.
func FromFile(ctx context.Context, path string, opts ...ParseOpt) (array.Array, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromReader(ctx, f, opts...)
}

// FromSource builds an array from the values of src. Enforcement (depth,
// bytes, duplicate keys) and sentinel reinterpretation are applied per the
// options. The context is checked between top-level values.
func FromSource(ctx context.Context, src Source, opts ...ParseOpt) (array.Array, error) {
	opt := lastOpt(opts)
	log := opt.logger()
	var sink func(ParseError)
	if opt.OnDuplicateKey == Warn {
		sink = func(pe ParseError) {
			log.Warn("jsoncol: duplicate key", slog.String("path", pe.Path), slog.Int64("offset", pe.Offset))
		}
	}
	enforced, es := enforce(src, opt, sink)
	s := ReinterpretSentinels(enforced, opt.Sentinels)

	b := NewBuilder(opt)
	fragments := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ev, err := s.NextEvent()
		if errors.Is(err, io.EOF) {
			break
		}
		if err == nil {
			err = appendFragment(b, ev, s)
		}
		if err != nil {
			return nil, toParseError(err, es.Path(), s.Location())
		}
		fragments++
	}

	out, err := b.Snapshot()
	if err != nil {
		return nil, err
	}
	switch fragments {
	case 0:
		out = &array.Empty{}
	case 1:
		out = out.(*array.List).Content
	}
	log.Debug("jsoncol: built array", slog.Int("fragments", fragments), slog.Int("length", out.Len()), slog.String("type", array.TypeString(out)))
	return out, nil
}

// appendFragment adds one top-level value as one list element of b.
func appendFragment(b *Builder, ev Event, src Source) error {
	if ev.Kind == EventListStart {
		return b.appendFrom(ev, src)
	}
	if err := b.BeginList(); err != nil {
		return err
	}
	if err := b.appendFrom(ev, src); err != nil {
		return err
	}
	return b.EndList()
}

// ToNative materializes every position of a as native Go values.
func ToNative(a array.Array) []any { return array.ToList(a) }
