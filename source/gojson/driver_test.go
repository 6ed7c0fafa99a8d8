package gojson_test

import (
	"io"
	"testing"

	eng "github.com/reoring/jsoncol/internal/engine"
	"github.com/reoring/jsoncol/source/gojson"
)

func TestDriver_TokenizesRecord(t *testing.T) {
	src := gojson.NewBytes([]byte(`{"x": 1.5, "y": ["a", false]}`))
	var kinds []eng.Kind
	for {
		tok, err := src.NextToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", gojson.Name, err)
		}
		kinds = append(kinds, tok.Kind)
	}
	want := []eng.Kind{
		eng.KindBeginObject, eng.KindKey, eng.KindNumber,
		eng.KindKey, eng.KindBeginArray, eng.KindString, eng.KindBool, eng.KindEndArray,
		eng.KindEndObject,
	}
	if len(kinds) != len(want) {
		t.Fatalf("%s: want %v, got %v", gojson.Name, want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("%s: want %v, got %v", gojson.Name, want, kinds)
		}
	}
}
