package hilbertgeom

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/alamminsalo/hilbert-geometry/curve"
	hgerrors "github.com/alamminsalo/hilbert-geometry/errors"
)

// CoordCodec converts a single coordinate pair to a curve scalar and back.
// *curve.Codec is the production implementation; tests inject deterministic
// stand-ins.
type CoordCodec interface {
	EncodeCoord(x, y float64) float64
	DecodeCoord(s float64) (x, y float64)
}

// Transform converts between orb geometries and their Hilbert-encoded form.
// It is a pure structural mapper: element order, ring order and nesting are
// preserved exactly; only the per-coordinate curve encoding is applied.
//
// A Transform is stateless beyond its codec and safe for concurrent use.
type Transform struct {
	codec CoordCodec
}

// NewTransform creates a Transform over the given coordinate codec.
// A nil codec selects the default curve codec (geographic convention,
// Hilbert variant).
func NewTransform(codec CoordCodec) *Transform {
	if codec == nil {
		codec = curve.New(curve.Options{})
	}
	return &Transform{codec: codec}
}

var defaultTransform = NewTransform(nil)

// Encode converts a geometry to its Hilbert-encoded form using the default
// transform.
func Encode(g orb.Geometry) (Geometry, error) {
	return defaultTransform.Encode(g)
}

// Decode converts a Hilbert-encoded geometry back using the default
// transform.
func Decode(hg Geometry) (orb.Geometry, error) {
	return defaultTransform.Decode(hg)
}

// Encode converts a geometry of one of the six supported kinds (Point,
// LineString, Polygon and their Multi- variants) to its Hilbert-encoded
// form. Any other variant, including collections, rings and bounds, returns
// an unsupported-geometry error.
func (t *Transform) Encode(g orb.Geometry) (Geometry, error) {
	switch g := g.(type) {
	case orb.Point:
		return t.encodePoint(g), nil
	case orb.LineString:
		return LineString(t.encodeScalars([]orb.Point(g))), nil
	case orb.Polygon:
		return t.encodePolygon(g), nil
	case orb.MultiPoint:
		return MultiPoint(t.encodeScalars([]orb.Point(g))), nil
	case orb.MultiLineString:
		mls := make(MultiLineString, len(g))
		for i, ls := range g {
			mls[i] = LineString(t.encodeScalars([]orb.Point(ls)))
		}
		return mls, nil
	case orb.MultiPolygon:
		mp := make(MultiPolygon, len(g))
		for i, p := range g {
			mp[i] = t.encodePolygon(p)
		}
		return mp, nil
	case nil:
		return nil, hgerrors.UnsupportedGeometry("nil")
	default:
		return nil, hgerrors.UnsupportedGeometry(fmt.Sprintf("%T", g))
	}
}

// Decode converts a Hilbert-encoded geometry back to its orb counterpart.
// It is the structural inverse of Encode, case by case.
func (t *Transform) Decode(hg Geometry) (orb.Geometry, error) {
	switch hg := hg.(type) {
	case Point:
		return t.decodePoint(hg), nil
	case LineString:
		return orb.LineString(t.decodePoints([]Scalar(hg))), nil
	case Polygon:
		return t.decodePolygon(hg), nil
	case MultiPoint:
		return orb.MultiPoint(t.decodePoints([]Scalar(hg))), nil
	case MultiLineString:
		mls := make(orb.MultiLineString, len(hg))
		for i, ls := range hg {
			mls[i] = orb.LineString(t.decodePoints([]Scalar(ls)))
		}
		return mls, nil
	case MultiPolygon:
		mp := make(orb.MultiPolygon, len(hg))
		for i, p := range hg {
			mp[i] = t.decodePolygon(p)
		}
		return mp, nil
	case nil:
		return nil, hgerrors.Invariant(hgerrors.PhaseDecode, "nil hilbert geometry")
	default:
		return nil, hgerrors.Invariant(hgerrors.PhaseDecode,
			fmt.Sprintf("geometry %T outside the closed variant set", hg))
	}
}

func (t *Transform) encodePoint(p orb.Point) Point {
	return Point(t.codec.EncodeCoord(p.X(), p.Y()))
}

func (t *Transform) decodePoint(p Point) orb.Point {
	x, y := t.codec.DecodeCoord(float64(p))
	return orb.Point{x, y}
}

func (t *Transform) encodeScalars(pts []orb.Point) []Scalar {
	out := make([]Scalar, len(pts))
	for i, p := range pts {
		out[i] = Scalar(t.codec.EncodeCoord(p.X(), p.Y()))
	}
	return out
}

func (t *Transform) decodePoints(ss []Scalar) []orb.Point {
	out := make([]orb.Point, len(ss))
	for i, s := range ss {
		x, y := t.codec.DecodeCoord(float64(s))
		out[i] = orb.Point{x, y}
	}
	return out
}

// encodePolygon flattens the polygon into one ordered ring sequence with the
// exterior at index 0, which decodePolygon reverses.
func (t *Transform) encodePolygon(p orb.Polygon) Polygon {
	rings := make(Polygon, len(p))
	for i, r := range p {
		rings[i] = Ring(t.encodeScalars([]orb.Point(r)))
	}
	return rings
}

// decodePolygon rebuilds a polygon from its ring sequence. Zero rings is the
// empty polygon: no exterior, no holes.
func (t *Transform) decodePolygon(p Polygon) orb.Polygon {
	rings := make(orb.Polygon, len(p))
	for i, r := range p {
		rings[i] = orb.Ring(t.decodePoints([]Scalar(r)))
	}
	return rings
}
