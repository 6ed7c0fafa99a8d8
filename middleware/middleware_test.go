package middleware_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/jsoncol"
	"github.com/reoring/jsoncol/array"
	"github.com/reoring/jsoncol/middleware"
)

func TestContextRoundTrip(t *testing.T) {
	a := &array.Int64{Values: []int64{1, 2}}
	ctx := middleware.ContextWithArray(context.Background(), a)
	got, ok := middleware.ArrayFromContext(ctx)
	if !ok || got != array.Array(a) {
		t.Fatalf("got %v, %v", got, ok)
	}
	if _, ok := middleware.ArrayFromContext(context.Background()); ok {
		t.Fatal("empty context should not hold an array")
	}
}

func TestResolve(t *testing.T) {
	if got := middleware.Resolve(jsoncol.ParseOpt{}); got != middleware.DefaultParseOpt() {
		t.Fatalf("zero options should resolve to defaults, got %+v", got)
	}
	custom := jsoncol.ParseOpt{MaxDepth: 3}
	if got := middleware.Resolve(custom); got != custom {
		t.Fatalf("custom options replaced: %+v", got)
	}
}

func TestErrorPayload(t *testing.T) {
	_, err := jsoncol.FromText(`{"a":1,"a":2}`, middleware.DefaultParseOpt())
	got := middleware.ErrorPayload(err)["error"].(map[string]any)
	delete(got, "offset")
	want := map[string]any{
		"code":    jsoncol.CodeDuplicateKey,
		"path":    "/a",
		"message": "key 'a' duplicated",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	err = &jsoncol.UnrepresentableValueError{Value: math.NaN(), Path: "/0"}
	got = middleware.ErrorPayload(err)["error"].(map[string]any)
	if got["code"] != jsoncol.CodeUnrepresentable || got["path"] != "/0" {
		t.Fatalf("got %v", got)
	}

	got = middleware.ErrorPayload(errors.New("boom"))["error"].(map[string]any)
	if got["message"] != "boom" {
		t.Fatalf("got %v", got)
	}
}
