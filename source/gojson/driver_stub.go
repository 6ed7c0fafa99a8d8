//go:build !gojson

package gojson

import (
	"io"

	eng "github.com/reoring/jsoncol/internal/engine"
	jsonsrc "github.com/reoring/jsoncol/source/json"
)

// Name identifies the decoder backing this package.
const Name = "encoding/json (gojson stub)"

// NewReader delegates to the encoding/json driver when the gojson tag is not enabled.
func NewReader(r io.Reader) eng.TokenSource { return jsonsrc.NewReader(r) }

// NewBytes delegates to the encoding/json driver when the gojson tag is not enabled.
func NewBytes(b []byte) eng.TokenSource { return jsonsrc.NewBytes(b) }
