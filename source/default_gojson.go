// Package source makes the goccy/go-json driver the process-wide default when
// imported for side effects:
//
//	import _ "github.com/reoring/jsoncol/source"
//
// It lives outside the root package to avoid an import cycle.
package source

import "github.com/reoring/jsoncol"

func init() { jsoncol.SetJSONDriver(jsoncol.GoJSONDriver()) }
