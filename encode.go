package jsoncol

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/jsoncol/array"
	eng "github.com/reoring/jsoncol/internal/engine"
)

// ToText serializes a as a compact JSON array, one element per position.
func ToText(a array.Array, cfg SentinelConfig) (string, error) {
	b, err := AppendJSON(nil, a, cfg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteJSON serializes a to w. Nothing is written when serialization fails.
func WriteJSON(w io.Writer, a array.Array, cfg SentinelConfig) error {
	b, err := AppendJSON(nil, a, cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// AppendJSON appends the JSON text of a to dst. Non-finite floats are written
// as their configured sentinel strings; without one the result is an
// *UnrepresentableValueError naming the offending position.
func AppendJSON(dst []byte, a array.Array, cfg SentinelConfig) ([]byte, error) {
	e := encoder{cfg: cfg}
	dst = append(dst, '[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			dst = append(dst, ',')
		}
		var err error
		if dst, err = e.value(dst, a, i); err != nil {
			return nil, under(err, strconv.Itoa(i))
		}
	}
	return append(dst, ']'), nil
}

type encoder struct {
	cfg SentinelConfig
}

func (e encoder) value(dst []byte, a array.Array, i int) ([]byte, error) {
	switch x := a.(type) {
	case *array.Bool:
		return strconv.AppendBool(dst, x.Values[i]), nil
	case *array.Int64:
		return strconv.AppendInt(dst, x.Values[i], 10), nil
	case *array.Float64:
		return e.float(dst, x.Values[i])
	case *array.String:
		return e.quote(dst, x.Value(i))
	case *array.List:
		start, stop := x.Bounds(i)
		dst = append(dst, '[')
		for j := start; j < stop; j++ {
			if j > start {
				dst = append(dst, ',')
			}
			var err error
			if dst, err = e.value(dst, x.Content, j); err != nil {
				return nil, under(err, strconv.Itoa(j-start))
			}
		}
		return append(dst, ']'), nil
	case *array.Record:
		dst = append(dst, '{')
		for k, key := range x.Keys {
			if k > 0 {
				dst = append(dst, ',')
			}
			var err error
			if dst, err = e.quote(dst, key); err != nil {
				return nil, err
			}
			dst = append(dst, ':')
			if dst, err = e.value(dst, x.Contents[k], i); err != nil {
				return nil, under(err, eng.EscapePointerToken(key))
			}
		}
		return append(dst, '}'), nil
	case *array.Option:
		if !x.IsValid(i) {
			if s, ok := e.cfg.missingToken(); ok {
				return e.quote(dst, s)
			}
			return append(dst, "null"...), nil
		}
		return e.value(dst, x.Content, int(x.Index[i]))
	case *array.Union:
		return e.value(dst, x.Contents[x.Tags[i]], int(x.Index[i]))
	}
	return nil, fmt.Errorf("jsoncol: cannot serialize %T at position %d", a, i)
}

func (e encoder) float(dst []byte, f float64) ([]byte, error) {
	if !math.IsNaN(f) && !math.IsInf(f, 0) {
		return eng.AppendFloat(dst, f), nil
	}
	s, ok := e.cfg.stringFor(f)
	if !ok {
		return nil, &UnrepresentableValueError{Value: f}
	}
	return e.quote(dst, s)
}

func (e encoder) quote(dst []byte, s string) ([]byte, error) {
	q, err := gojson.MarshalNoEscape(s)
	if err != nil {
		return nil, err
	}
	return append(dst, q...), nil
}

// under prefixes the path of an unrepresentable value with one more pointer
// token while the error unwinds.
func under(err error, token string) error {
	var ue *UnrepresentableValueError
	if errors.As(err, &ue) {
		ue.Path = "/" + token + ue.Path
	}
	return err
}
