package compare_test

import (
	"bytes"
	"encoding/json"
	"strconv"
	"testing"

	sonic "github.com/bytedance/sonic"
	gojson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fastjson"

	"github.com/reoring/jsoncol"
)

// shared fixtures

func smallRecordJSON() []byte { return []byte(`{"id":"u_1","name":"alice","score":1.5}`) }

// generateHugeJSONArray builds records with a stable core plus extraFields
// string columns; "score" is missing from every fifth record.
func generateHugeJSONArray(numObjects int, extraFields int) []byte {
	var buf bytes.Buffer
	buf.Grow(numObjects * (64 + extraFields*16))
	buf.WriteByte('[')
	for i := 0; i < numObjects; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("{\"id\":\"obj_")
		buf.WriteString(strconv.Itoa(i))
		buf.WriteString("\",\"age\":")
		buf.WriteString(strconv.Itoa(i))
		if i%5 != 0 {
			buf.WriteString(",\"score\":")
			buf.WriteString(strconv.Itoa(i))
			buf.WriteString(".25")
		}
		buf.WriteString(",\"tags\":[")
		for t := 0; t < i%4; t++ {
			if t > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Itoa(t))
		}
		buf.WriteByte(']')
		for k := 0; k < extraFields; k++ {
			buf.WriteString(",\"k")
			buf.WriteString(strconv.Itoa(k))
			buf.WriteString("\":\"v")
			buf.WriteString(strconv.Itoa(i))
			buf.WriteString("\"")
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

const (
	cmpHugeN = 10000
	cmpHugeK = 8
)

// ---- Small record: bytes -> in-memory value ----

func Benchmark_Build_jsoncol_Small(b *testing.B) {
	data := smallRecordJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jsoncol.FromBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Build_stdlib_Small(b *testing.B) {
	data := smallRecordJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v map[string]any
		if err := json.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Build_gojson_Small(b *testing.B) {
	data := smallRecordJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v map[string]any
		if err := gojson.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

// ---- Huge array: row-oriented decoders vs the columnar builder ----

func Benchmark_Build_jsoncol_HugeArray(b *testing.B) {
	data := generateHugeJSONArray(cmpHugeN, cmpHugeK)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jsoncol.FromBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Build_stdlib_HugeArray(b *testing.B) {
	data := generateHugeJSONArray(cmpHugeN, cmpHugeK)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v []map[string]any
		if err := json.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Build_gojson_HugeArray(b *testing.B) {
	data := generateHugeJSONArray(cmpHugeN, cmpHugeK)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v []map[string]any
		if err := gojson.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Build_jsoniter_HugeArray(b *testing.B) {
	data := generateHugeJSONArray(cmpHugeN, cmpHugeK)
	ji := jsoniter.ConfigCompatibleWithStandardLibrary
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v []map[string]any
		if err := ji.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Build_sonic_HugeArray(b *testing.B) {
	data := generateHugeJSONArray(cmpHugeN, cmpHugeK)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v []map[string]any
		if err := sonic.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Build_fastjson_HugeArray(b *testing.B) {
	data := generateHugeJSONArray(cmpHugeN, cmpHugeK)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var p fastjson.Parser
		if _, err := p.ParseBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

// ---- Serialization back to text ----

func Benchmark_Text_jsoncol_HugeArray(b *testing.B) {
	a, err := jsoncol.FromBytes(generateHugeJSONArray(cmpHugeN, cmpHugeK))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jsoncol.AppendJSON(nil, a, jsoncol.SentinelConfig{}); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Text_sonic_HugeArray(b *testing.B) {
	var v []map[string]any
	if err := sonic.Unmarshal(generateHugeJSONArray(cmpHugeN, cmpHugeK), &v); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sonic.Marshal(v); err != nil {
			b.Fatal(err)
		}
	}
}

// The decoders must agree on the data before their timings mean anything.
func TestHugeArray_DecodersAgree(t *testing.T) {
	data := generateHugeJSONArray(100, 2)
	a, err := jsoncol.FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	text, err := jsoncol.ToText(a, jsoncol.SentinelConfig{})
	if err != nil {
		t.Fatal(err)
	}
	var fromCol, fromStd []map[string]any
	if err := sonic.UnmarshalString(text, &fromCol); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, &fromStd); err != nil {
		t.Fatal(err)
	}
	if len(fromCol) != len(fromStd) {
		t.Fatalf("length: %d vs %d", len(fromCol), len(fromStd))
	}
	for i := range fromStd {
		if _, ok := fromStd[i]["score"]; !ok && fromCol[i]["score"] != nil {
			t.Fatalf("record %d: missing score serialized as %v", i, fromCol[i]["score"])
		}
		if fromCol[i]["id"] != fromStd[i]["id"] {
			t.Fatalf("record %d: id %v vs %v", i, fromCol[i]["id"], fromStd[i]["id"])
		}
	}
}
