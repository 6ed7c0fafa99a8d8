package jsoncol

import (
	"errors"
	"io"
	"math"
	"strconv"
	"sync"

	eng "github.com/reoring/jsoncol/internal/engine"
	"github.com/reoring/jsoncol/source/gojson"
	jsonsrc "github.com/reoring/jsoncol/source/json"
)

// EventKind enumerates primitive parse events.
type EventKind int

const (
	EventNull EventKind = iota
	EventBool
	EventInt64
	EventFloat64
	EventString
	EventListStart
	EventListEnd
	EventRecordStart
	EventFieldKey
	EventRecordEnd
)

var eventKindNames = [...]string{
	EventNull:        "null",
	EventBool:        "bool",
	EventInt64:       "int64",
	EventFloat64:     "float64",
	EventString:      "string",
	EventListStart:   "list start",
	EventListEnd:     "list end",
	EventRecordStart: "record start",
	EventFieldKey:    "field key",
	EventRecordEnd:   "record end",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is one primitive parse event. String carries string values and field
// keys. Offset records the byte position when known (-1 otherwise).
type Event struct {
	Kind   EventKind
	Bool   bool
	Int    int64
	Float  float64
	String string
	Offset int64
}

// Source yields parse events in strict nesting order; NextEvent returns
// io.EOF once the input is exhausted between top-level values.
type Source interface {
	NextEvent() (Event, error)
	Location() int64 // byte offset; -1 if unknown
}

// JSONDriver converts JSON input into a Source via a pluggable SPI. The default
// implementation is based on encoding/json and may be swapped with SetJSONDriver.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default encoding/json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

// JSONDriverName reports the name of the driver currently in use.
func JSONDriverName() string { return getJSONDriver().Name() }

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// defaultJSONDriver wraps the encoding/json implementation.
type defaultJSONDriver struct{}

func (defaultJSONDriver) NewReader(r io.Reader) Source { return SourceFromEngine(jsonsrc.NewReader(r)) }
func (defaultJSONDriver) NewBytes(b []byte) Source     { return SourceFromEngine(jsonsrc.NewBytes(b)) }
func (defaultJSONDriver) Name() string                 { return "encoding/json" }

// GoJSONDriver returns the goccy/go-json backed driver. Binaries built
// without the gojson tag get the encoding/json fallback under the same API.
func GoJSONDriver() JSONDriver { return goJSONDriver{} }

type goJSONDriver struct{}

func (goJSONDriver) NewReader(r io.Reader) Source { return SourceFromEngine(gojson.NewReader(r)) }
func (goJSONDriver) NewBytes(b []byte) Source     { return SourceFromEngine(gojson.NewBytes(b)) }
func (goJSONDriver) Name() string                 { return gojson.Name }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return getJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return getJSONDriver().NewBytes(b) }

// SourceFromEngine wraps an engine.TokenSource as a Source, classifying
// numeric text into int64 or float64 events.
func SourceFromEngine(inner eng.TokenSource) Source {
	return &engineSourceAdapter{inner: inner}
}

type engineSourceAdapter struct {
	inner eng.TokenSource
}

func (s *engineSourceAdapter) NextEvent() (Event, error) {
	t, err := s.inner.NextToken()
	if err != nil {
		return Event{}, err
	}
	ev := Event{Offset: t.Offset}
	switch t.Kind {
	case eng.KindBeginObject:
		ev.Kind = EventRecordStart
	case eng.KindEndObject:
		ev.Kind = EventRecordEnd
	case eng.KindBeginArray:
		ev.Kind = EventListStart
	case eng.KindEndArray:
		ev.Kind = EventListEnd
	case eng.KindKey:
		ev.Kind, ev.String = EventFieldKey, t.String
	case eng.KindString:
		ev.Kind, ev.String = EventString, t.String
	case eng.KindBool:
		ev.Kind, ev.Bool = EventBool, t.Bool
	case eng.KindNumber:
		n, err := eng.ParseNumber(t.Number)
		if err != nil {
			msg := "invalid number "
			if errors.Is(err, strconv.ErrRange) {
				msg = "number out of range "
			}
			return Event{}, &ParseError{Code: CodeParseError, Offset: t.Offset, Message: msg + strconv.Quote(t.Number), Cause: err}
		}
		if n.IsInt {
			ev.Kind, ev.Int = EventInt64, n.Int
		} else {
			ev.Kind, ev.Float = EventFloat64, n.Float
		}
	default:
		ev.Kind = EventNull
	}
	return ev, nil
}

func (s *engineSourceAdapter) Location() int64 { return s.inner.Location() }

// EngineTokenSource exposes the engine.TokenSource view of a Source for internal users.
func EngineTokenSource(s Source) eng.TokenSource {
	// Fast-path: if s is already an engine-backed source, reuse the inner source.
	if ea, ok := s.(*engineSourceAdapter); ok {
		return ea.inner
	}
	return &tokenSourceAdapter{inner: s}
}

type tokenSourceAdapter struct{ inner Source }

func (a *tokenSourceAdapter) NextToken() (eng.Token, error) {
	ev, err := a.inner.NextEvent()
	if err != nil {
		return eng.Token{}, err
	}
	t := eng.Token{Offset: ev.Offset}
	switch ev.Kind {
	case EventRecordStart:
		t.Kind = eng.KindBeginObject
	case EventRecordEnd:
		t.Kind = eng.KindEndObject
	case EventListStart:
		t.Kind = eng.KindBeginArray
	case EventListEnd:
		t.Kind = eng.KindEndArray
	case EventFieldKey:
		t.Kind, t.String = eng.KindKey, ev.String
	case EventString:
		t.Kind, t.String = eng.KindString, ev.String
	case EventBool:
		t.Kind, t.Bool = eng.KindBool, ev.Bool
	case EventInt64:
		t.Kind, t.Number = eng.KindNumber, strconv.FormatInt(ev.Int, 10)
	case EventFloat64:
		t.Kind, t.Number = eng.KindNumber, formatFloatToken(ev.Float)
	default:
		t.Kind = eng.KindNull
	}
	return t, nil
}

func (a *tokenSourceAdapter) Location() int64 { return a.inner.Location() }

// formatFloatToken keeps float events floats after a trip through numeric text.
func formatFloatToken(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return string(eng.AppendFloat(nil, f))
}

// EnforceSource wraps a Source with runtime enforcement (duplicate keys, depth,
// bytes). Non-fatal issues are forwarded to sink when it is non-nil.
func EnforceSource(s Source, opt ParseOpt, sink func(ParseError)) Source {
	src, _ := enforce(s, opt, sink)
	return src
}

func enforce(s Source, opt ParseOpt, sink func(ParseError)) (Source, *eng.EnforcingSource) {
	var forward func(eng.SimpleIssue)
	if sink != nil {
		forward = func(si eng.SimpleIssue) {
			sink(ParseError{Code: si.Code, Path: si.Path, Offset: si.Offset, Message: si.Message})
		}
	}
	enforced := eng.WrapWithEnforcement(EngineTokenSource(s), eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		IssueSink:   forward,
	})
	return SourceFromEngine(enforced), enforced
}
