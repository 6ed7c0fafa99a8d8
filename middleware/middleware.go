// Package middleware holds the framework-neutral parts of the HTTP adapters
// under middleware/echo and middleware/gin.
package middleware

import (
	"context"
	"errors"

	"github.com/reoring/jsoncol"
	"github.com/reoring/jsoncol/array"
)

type ctxKeyArray struct{}

// ContextWithArray attaches the array built from a request body.
func ContextWithArray(ctx context.Context, a array.Array) context.Context {
	return context.WithValue(ctx, ctxKeyArray{}, a)
}

// ArrayFromContext retrieves the array stored by ContextWithArray.
func ArrayFromContext(ctx context.Context) (array.Array, bool) {
	a, ok := ctx.Value(ctxKeyArray{}).(array.Array)
	return a, ok
}

// DefaultParseOpt returns a recommended default for HTTP JSON boundaries.
// - Duplicate keys are errors
// - Nesting and body size are bounded
func DefaultParseOpt() jsoncol.ParseOpt {
	return jsoncol.ParseOpt{
		OnDuplicateKey: jsoncol.Error,
		MaxDepth:       128,
		MaxBytes:       8 << 20,
	}
}

// Resolve returns opt, or DefaultParseOpt when opt is the zero value.
func Resolve(opt jsoncol.ParseOpt) jsoncol.ParseOpt {
	if opt == (jsoncol.ParseOpt{}) {
		return DefaultParseOpt()
	}
	return opt
}

// ErrorPayload shapes a build failure for JSON responses.
func ErrorPayload(err error) map[string]any {
	if pe, ok := jsoncol.AsParseError(err); ok {
		return map[string]any{"error": map[string]any{
			"code":    pe.Code,
			"path":    pe.Path,
			"offset":  pe.Offset,
			"message": pe.Message,
		}}
	}
	var ue *jsoncol.UnrepresentableValueError
	if errors.As(err, &ue) {
		return map[string]any{"error": map[string]any{
			"code":    jsoncol.CodeUnrepresentable,
			"path":    ue.Path,
			"message": ue.Error(),
		}}
	}
	return map[string]any{"error": map[string]any{"message": err.Error()}}
}
