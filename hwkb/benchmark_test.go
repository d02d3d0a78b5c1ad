package hwkb

import (
	"testing"

	"github.com/paulmach/orb"
)

func benchPolygon() orb.Polygon {
	exterior := make(orb.Ring, 0, 101)
	for i := 0; i <= 100; i++ {
		exterior = append(exterior, orb.Point{float64(i%100) * 0.01, float64(i) * 0.005})
	}
	return orb.Polygon{
		exterior,
		{{0.1, 0.1}, {0.2, 0.1}, {0.2, 0.2}, {0.1, 0.1}},
	}
}

func BenchmarkSerializerEncode(b *testing.B) {
	s := NewSerializer(nil)
	g := benchPolygon()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Encode(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSerializerDecode(b *testing.B) {
	s := NewSerializer(nil)
	data, err := s.Encode(benchPolygon())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	s := NewSerializer(nil)
	data, err := s.Encode(benchPolygon())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Unmarshal(data); err != nil {
			b.Fatal(err)
		}
	}
}
