//go:build jscan

package compare_test

import (
	"testing"

	"github.com/romshark/jscan"

	"github.com/reoring/jsoncol"
)

// jscan: a validating tokenizer pass, the floor for any text-driven builder.
func Benchmark_Scan_jscan_HugeArray(b *testing.B) {
	data := generateHugeJSONArray(cmpHugeN, cmpHugeK)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := jscan.Begin()
		if err := it.Feed(data); err != nil {
			b.Fatal(err)
		}
		values := 0
		for it.Next() {
			_ = it.Value()
			values++
		}
		if err := it.Err(); err != nil {
			b.Fatal(err)
		}
		if values == 0 {
			b.Fatal("no values")
		}
	}
}

func Benchmark_Scan_jsoncolSource_HugeArray(b *testing.B) {
	data := generateHugeJSONArray(cmpHugeN, cmpHugeK)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := jsoncol.JSONBytes(data)
		for {
			if _, err := src.NextEvent(); err != nil {
				break
			}
		}
	}
}
