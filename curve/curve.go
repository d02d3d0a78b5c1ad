package curve

import "math"

// Variant selects the space-filling curve the codec maps coordinates onto.
// The variant is fixed at construction and never varies per call; scalars
// produced under one variant are meaningless under another.
type Variant int

const (
	// Hilbert is the default variant.
	Hilbert Variant = iota
	// ZOrder is the Morton-interleave alternative.
	ZOrder
)

func (v Variant) String() string {
	switch v {
	case Hilbert:
		return "hilbert"
	case ZOrder:
		return "zorder"
	default:
		return "unknown"
	}
}

// Grid resolution of the unit square. The curve walks an order-32 square
// grid, but normalized coordinates are quantized to decimal step counts so
// that under the Geographic convention one step is exactly 1e-7 degrees on
// both axes. Coordinates with at most 7 fractional digits therefore sit
// exactly on the grid and round-trip without loss; anything finer loses at
// most half a step per axis.
//
// ySteps < 2^31 keeps every curve position below 2^63, so positions always
// fit the non-negative float64 bit space (see Scalar packing below).
const (
	gridOrder = 32
	xSteps    = 3_600_000_000
	ySteps    = 1_800_000_000
)

// mapper is the curve walk over grid cells. Position order defines scalar
// order.
type mapper interface {
	pos(u, v uint64) uint64
	cell(pos uint64) (u, v uint64)
}

// Options configures a Codec. The zero value selects the Geographic
// convention and the Hilbert variant.
type Options struct {
	Convention Convention
	Variant    Variant
}

// Codec converts native coordinates to curve-position scalars and back.
// It owns the single normalization convention and grid scaling used
// throughout an encode/decode pipeline.
//
// A Codec is immutable after construction and safe for concurrent use.
type Codec struct {
	convention Convention
	mapper     mapper
}

// New creates a Codec. Unset options take their defaults.
func New(opts Options) *Codec {
	c := &Codec{convention: opts.Convention}
	if c.convention == nil {
		c.convention = Geographic{}
	}
	switch opts.Variant {
	case ZOrder:
		c.mapper = zorderMapper{}
	default:
		c.mapper = hilbertMapper{}
	}
	return c
}

// EncodeCoord maps a coordinate pair to its curve-position scalar.
//
// The mapping is total: coordinates whose normalized form falls outside the
// unit square clamp to its edge. Domain validation, if any, belongs to the
// chosen Convention's caller.
func (c *Codec) EncodeCoord(x, y float64) float64 {
	nx, ny := c.convention.Normalize(x, y)
	u := gridIndex(ny, ySteps)
	v := gridIndex(nx, xSteps)
	return packScalar(c.mapper.pos(u, v))
}

// DecodeCoord maps a scalar back to the coordinate pair at its grid step,
// rounded to 7 fractional digits by the convention.
func (c *Codec) DecodeCoord(s float64) (x, y float64) {
	u, v := c.mapper.cell(unpackScalar(s))
	nx := float64(v) / xSteps
	ny := float64(u) / ySteps
	return c.convention.Denormalize(nx, ny)
}

// gridIndex quantizes a normalized ordinate to its nearest grid step,
// clamping to [0, steps]. NaN clamps to 0.
func gridIndex(n float64, steps uint64) uint64 {
	if !(n > 0) {
		return 0
	}
	if n > 1 {
		n = 1
	}
	return uint64(math.Round(n * float64(steps)))
}

// Scalar packing. Curve positions occupy up to 63 bits, which a float64
// cannot hold exactly as a numeric value, so the position is carried in the
// scalar's bit pattern instead. IEEE 754 orders non-negative values exactly
// as their bit patterns, so scalars still sort in curve order. The grid
// bounds keep positions clear of the NaN/Inf band, and every packed scalar
// is a finite non-negative float64.
func packScalar(pos uint64) float64 {
	return math.Float64frombits(pos)
}

func unpackScalar(s float64) uint64 {
	// Mask the sign bit so hand-crafted scalars still map to some position
	// instead of poisoning the walk.
	return math.Float64bits(s) &^ (1 << 63)
}
