package hilbertgeom

import "testing"

// Kind values are wire discriminators; they must never shift.
func TestKindValues(t *testing.T) {
	tests := []struct {
		kind Kind
		want byte
		name string
	}{
		{KindPoint, 0, "Point"},
		{KindLineString, 1, "LineString"},
		{KindPolygon, 2, "Polygon"},
		{KindMultiPoint, 3, "MultiPoint"},
		{KindMultiLineString, 4, "MultiLineString"},
		{KindMultiPolygon, 5, "MultiPolygon"},
	}

	for _, tt := range tests {
		if byte(tt.kind) != tt.want {
			t.Errorf("%s: discriminator %d, want %d", tt.name, tt.kind, tt.want)
		}
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("Kind(%d).String(): got %q, want %q", tt.kind, got, tt.name)
		}
	}

	if got := Kind(42).String(); got != "Unknown" {
		t.Errorf("Kind(42).String(): got %q, want %q", got, "Unknown")
	}
}

func TestGeometryKind(t *testing.T) {
	tests := []struct {
		g    Geometry
		want Kind
	}{
		{Point(0), KindPoint},
		{LineString{1, 2}, KindLineString},
		{Polygon{{1, 2, 3}}, KindPolygon},
		{MultiPoint{1}, KindMultiPoint},
		{MultiLineString{{1}}, KindMultiLineString},
		{MultiPolygon{{{1}}}, KindMultiPolygon},
	}

	for _, tt := range tests {
		if got := tt.g.GeometryKind(); got != tt.want {
			t.Errorf("%T.GeometryKind(): got %v, want %v", tt.g, got, tt.want)
		}
	}
}
