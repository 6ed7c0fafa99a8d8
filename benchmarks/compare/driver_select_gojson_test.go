//go:build gojson

package compare_test

import _ "github.com/reoring/jsoncol/source"
