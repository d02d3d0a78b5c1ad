// Package hilbertgeom converts 2D vector geometries to a compact,
// order-preserving representation built on Hilbert space-filling-curve
// positions, and back.
//
// Each coordinate pair becomes one opaque Scalar; nearby coordinates map to
// nearby scalars, so the encoded form sorts and clusters spatially while
// staying cheap to serialize. The structural shape of the input geometry
// (vertex order, ring order, nesting) is mirrored exactly.
//
// Six geometry kinds are supported: Point, LineString, Polygon and their
// Multi- variants. Collections are not.
//
//	hg, err := hilbertgeom.Encode(orb.Point{24.94, 60.17})
//	g, err := hilbertgeom.Decode(hg)
//
// Round-tripping a geometry whose coordinates have at most 7 fractional
// decimal digits reproduces it exactly; arbitrary-precision coordinates are
// off by less than 1e-6 per axis.
//
// Subpackages:
//
//	curve — coordinate ↔ curve-position codec and normalization conventions
//	hwkb  — binary serialization of the Hilbert-encoded form
package hilbertgeom
