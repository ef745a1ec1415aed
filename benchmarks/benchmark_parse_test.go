package punt_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	punt "github.com/maartenvanvliet/punt"
	g "github.com/maartenvanvliet/punt/dsl"
)

// ---- Helpers ----

func smallUserParser() punt.Parser[map[string]any] {
	return g.OfMap(
		g.Field("id", g.Get("id", g.String())),
		g.Field("name", g.Get("name", g.String())),
	)
}

func smallUserJSON() []byte {
	return []byte(`{"id":"u_1","name":"alice"}`)
}

// generateHugeJSONArray returns a JSON array of objects of the form:
// [{"id":"obj_0","name":"n0","age":0,"active":true,"meta":{"score":0}}, ...]
func generateHugeJSONArray(numObjects int) []byte {
	var buf bytes.Buffer
	buf.Grow(numObjects * 72)
	buf.WriteByte('[')
	for i := 0; i < numObjects; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		fmt.Fprintf(&buf, "\"id\":\"obj_%d\",", i)
		fmt.Fprintf(&buf, "\"name\":\"n%d\",", i)
		fmt.Fprintf(&buf, "\"age\":%d,", i)
		if i%2 == 0 {
			buf.WriteString("\"active\":true,")
		} else {
			buf.WriteString("\"active\":false,")
		}
		fmt.Fprintf(&buf, "\"meta\":{\"score\":%d}", i)
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

func hugeItemParser() punt.Parser[map[string]any] {
	return g.OfMap(
		g.Field("id", g.Get("id", g.String())),
		g.Field("age", g.Get("age", g.Integer())),
		g.Field("active", g.Get("active", g.Boolean())),
		g.Field("score", g.GetIn([]string{"meta", "score"}, g.Integer())),
	)
}

// ---- Micro benchmarks (small inputs) ----

func Benchmark_Parse_Object_Small(b *testing.B) {
	p := smallUserParser()
	in, err := punt.JSONBytes(smallUserJSON())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(in); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Ingest_Object_Small_JSONBytes(b *testing.B) {
	data := smallUserJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := punt.JSONBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Parse_Array_String_Small(b *testing.B) {
	p := g.ListOf(g.String())
	in, err := punt.JSONBytes([]byte(`["a","b","c"]`))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(in); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Parse_OneOf_WorstCase(b *testing.B) {
	// every branch fails, forcing full accumulation
	p := g.OneOf(
		punt.Erase(g.Integer()),
		punt.Erase(g.String()),
		punt.Erase(g.Boolean()),
	)
	in := punt.Null()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(in); err == nil {
			b.Fatal("expected failure")
		}
	}
}

// ---- Macro benchmarks (huge arrays) ----

const hugeObjects = 10000

func Benchmark_Parse_HugeArray_Objects(b *testing.B) {
	p := g.ListOf(hugeItemParser())
	in, err := punt.JSONBytes(generateHugeJSONArray(hugeObjects))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(in); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Ingest_HugeArray_JSONBytes(b *testing.B) {
	data := generateHugeJSONArray(hugeObjects)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := punt.JSONBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

// ---- Generation ----

func Benchmark_Samples_OfMap(b *testing.B) {
	p := smallUserParser()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if vs := p.Samples(100); len(vs) != 100 {
			b.Fatal("short sample")
		}
	}
}

// ---- Baseline: encoding/json ----

func Benchmark_encodingJSON_Unmarshal_SmallObject(b *testing.B) {
	data := smallUserJSON()
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

func Benchmark_encodingJSON_Unmarshal_HugeArray(b *testing.B) {
	data := generateHugeJSONArray(hugeObjects)
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
