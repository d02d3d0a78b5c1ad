package hilbertgeom

// Scalar is one curve position, produced by curve.Codec.EncodeCoord.
// Opaque: not comparable to raw coordinates, but ordered along the curve.
type Scalar float64

// Kind identifies a Geometry variant. Kind values double as the wire
// discriminator in package hwkb; changing them is a breaking format change.
type Kind byte

const (
	KindPoint Kind = iota
	KindLineString
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindPolygon:
		return "Polygon"
	case KindMultiPoint:
		return "MultiPoint"
	case KindMultiLineString:
		return "MultiLineString"
	case KindMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unknown"
	}
}

// Geometry is the Hilbert-encoded counterpart of an orb.Geometry. The
// variant set is closed: exactly the six kinds below, mirroring the source
// geometry's structure one-to-one. Values are immutable once constructed.
type Geometry interface {
	GeometryKind() Kind

	// keeps the variant set closed to this package
	private()
}

// Point is a single encoded coordinate.
type Point Scalar

// LineString is an ordered path of encoded coordinates. May be empty.
type LineString []Scalar

// Ring is one polygon boundary, point order preserved.
type Ring []Scalar

// Polygon is an ordered ring sequence: ring 0 is the exterior, the rest are
// holes. Zero rings is the empty polygon, not an error.
type Polygon []Ring

// MultiPoint is an ordered set of encoded coordinates.
type MultiPoint []Scalar

// MultiLineString is an ordered sequence of line strings.
type MultiLineString []LineString

// MultiPolygon is an ordered sequence of polygons.
type MultiPolygon []Polygon

func (Point) GeometryKind() Kind           { return KindPoint }
func (LineString) GeometryKind() Kind      { return KindLineString }
func (Polygon) GeometryKind() Kind         { return KindPolygon }
func (MultiPoint) GeometryKind() Kind      { return KindMultiPoint }
func (MultiLineString) GeometryKind() Kind { return KindMultiLineString }
func (MultiPolygon) GeometryKind() Kind    { return KindMultiPolygon }

func (Point) private()           {}
func (LineString) private()      {}
func (Polygon) private()         {}
func (MultiPoint) private()      {}
func (MultiLineString) private() {}
func (MultiPolygon) private()    {}
