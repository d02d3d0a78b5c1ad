// Package curve maps 2D coordinates to positions along a space-filling
// curve and back.
//
// A Codec pairs a normalization Convention (geographic wrap or Cartesian
// linear) with a curve Variant (Hilbert by default). Both are fixed at
// construction: the encoded form carries no record of either, so the
// encoding and decoding side of a pipeline must be built with the same
// Options or coordinates are corrupted silently.
//
//	c := curve.New(curve.Options{})
//	s := c.EncodeCoord(24.94, 60.17)
//	lon, lat := c.DecodeCoord(s)
//
// Scalars are opaque float64 values: not comparable to raw coordinates, but
// ordered along the curve, so sorting encoded geometries by scalar groups
// spatially nearby coordinates together.
//
// Round-trip fidelity: coordinates with at most 7 fractional decimal digits
// encode and decode to exactly themselves under the Geographic convention;
// arbitrary-precision coordinates lose at most half a grid step
// (5e-8 degrees) per axis.
package curve
