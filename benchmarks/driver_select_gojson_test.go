//go:build gojson

package jsoncol_test

// Run the benchmarks with `-tags gojson` to measure the goccy/go-json driver.
import _ "github.com/reoring/jsoncol/source"
