package jsoncol

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	gojson "github.com/goccy/go-json"

	eng "github.com/reoring/jsoncol/internal/engine"
)

// Error codes.
const (
	CodeParseError      = "parse_error"
	CodeDuplicateKey    = eng.CodeDuplicateKey
	CodeTooDeep         = eng.CodeTooDeep
	CodeTruncated       = eng.CodeTruncated
	CodeUnrepresentable = "unrepresentable_value"
)

// ErrValueInProgress is returned when a snapshot or a new top-level append is
// requested while a value is only partially built.
var ErrValueInProgress = errors.New("jsoncol: value in progress")

// ParseError reports malformed input. The Builder that produced it must be
// discarded.
type ParseError struct {
	Code    string
	Path    string // JSON pointer within the current top-level value.
	Offset  int64  // Byte offset in the input (-1 when unknown).
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	var b []byte
	b = fmt.Appendf(b, "%s at %s", e.Code, e.Path)
	if e.Offset >= 0 {
		b = fmt.Appendf(b, " (offset %d)", e.Offset)
	}
	if e.Message != "" {
		b = fmt.Appendf(b, ": %s", e.Message)
	}
	return string(b)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// UnrepresentableValueError reports a non-finite float met during
// serialization without a configured sentinel.
type UnrepresentableValueError struct {
	Value float64
	Path  string // JSON pointer of the value in the serialized output.
}

func (e *UnrepresentableValueError) Error() string {
	path := e.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s at %s: %s has no JSON representation; configure a sentinel string", CodeUnrepresentable, path, describeFloat(e.Value))
}

func describeFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return fmt.Sprint(f)
}

// AsParseError extracts a *ParseError from an error chain.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Code: CodeParseError, Offset: -1, Message: fmt.Sprintf(format, args...)}
}

// toParseError maps tokenizer, enforcement and builder failures onto
// *ParseError, filling position information where the error lacks it.
func toParseError(err error, path string, offset int64) error {
	if err == nil {
		return nil
	}
	if pe, ok := AsParseError(err); ok {
		if pe.Path == "" {
			pe.Path = path
		}
		if pe.Offset < 0 {
			pe.Offset = offset
		}
		return pe
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return &ParseError{Code: ie.Code, Path: ie.Path, Offset: ie.Offset, Message: ie.Message}
	}
	pe := &ParseError{Code: CodeParseError, Path: path, Offset: offset, Message: err.Error(), Cause: err}
	var se *json.SyntaxError
	var gse *gojson.SyntaxError
	switch {
	case errors.As(err, &se):
		pe.Offset = se.Offset
	case errors.As(err, &gse):
		pe.Offset = gse.Offset
	case errors.Is(err, io.ErrUnexpectedEOF):
		pe.Message = "unexpected end of input"
	}
	return pe
}
