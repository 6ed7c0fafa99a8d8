package json_test

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	eng "github.com/reoring/jsoncol/internal/engine"
	jsonsrc "github.com/reoring/jsoncol/source/json"
)

func drain(t *testing.T, src eng.TokenSource) ([]eng.Token, error) {
	t.Helper()
	var out []eng.Token
	for {
		tok, err := src.NextToken()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
}

func TestNextToken_KeysAndValues(t *testing.T) {
	toks, err := drain(t, jsonsrc.NewBytes([]byte(`{"a": "b", "c": [1, 2.5, true, null], "d": {}}`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []eng.Kind{
		eng.KindBeginObject,
		eng.KindKey, eng.KindString,
		eng.KindKey, eng.KindBeginArray, eng.KindNumber, eng.KindNumber, eng.KindBool, eng.KindNull, eng.KindEndArray,
		eng.KindKey, eng.KindBeginObject, eng.KindEndObject,
		eng.KindEndObject,
	}
	if len(toks) != len(want) {
		t.Fatalf("want %d tokens, got %d: %+v", len(want), len(toks), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d: want kind %d, got %+v", i, k, toks[i])
		}
	}
	if toks[1].String != "a" || toks[2].String != "b" || toks[6].Number != "2.5" {
		t.Fatalf("unexpected payloads: %+v", toks)
	}
	if toks[0].Offset != 1 {
		t.Fatalf("want offset 1, got %d", toks[0].Offset)
	}
}

func TestNextToken_ConcatenatedValues(t *testing.T) {
	toks, err := drain(t, jsonsrc.NewReader(strings.NewReader("{\"x\": 1}\n{\"x\": 2}\n  3 \"s\"")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 8 {
		t.Fatalf("want 8 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[6].Kind != eng.KindNumber || toks[7].Kind != eng.KindString {
		t.Fatalf("unexpected tail: %+v", toks[6:])
	}
}

func TestNextToken_SyntaxError(t *testing.T) {
	_, err := drain(t, jsonsrc.NewBytes([]byte(`[1, 2,, 3]`)))
	var se *json.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("want *json.SyntaxError, got %v", err)
	}
}
