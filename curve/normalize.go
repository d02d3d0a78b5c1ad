package curve

import "math"

// precisionDigits is the fixed number of fractional decimal digits kept when
// denormalizing. The grid inverse is exact only up to float64 arithmetic
// noise; rounding to 7 digits absorbs it while staying far finer than any
// realistic input precision.
const precisionDigits = 7

var precisionScale = math.Pow(10, precisionDigits)

func roundDecimal(v float64) float64 {
	return math.Round(v*precisionScale) / precisionScale
}

// Convention maps native coordinates into the unit square consumed by the
// curve mapping, and back. Denormalize is the algebraic inverse of Normalize
// followed by rounding to 7 fractional digits.
//
// A Convention is fixed for the lifetime of an encoder/decoder pair. Mixing
// conventions between the encoding and decoding side corrupts coordinates
// silently: nothing in the encoded form records which convention was used.
type Convention interface {
	Normalize(x, y float64) (nx, ny float64)
	Denormalize(nx, ny float64) (x, y float64)
}

// Geographic normalizes longitude/latitude coordinates.
//
// Longitude is periodic: it folds into [-180, 180) regardless of how far
// out of range the input is, and +180 denormalizes to -180 (the same
// meridian). Latitude is not periodic, so it is mapped linearly with the
// poles at the unit interval's endpoints; inputs beyond a pole are clamped
// to that pole by the codec's grid quantization.
type Geographic struct{}

func (Geographic) Normalize(lon, lat float64) (nx, ny float64) {
	nx = math.Mod(lon+180, 360)
	if nx < 0 {
		nx += 360
	}
	nx /= 360
	ny = (lat + 90) / 180
	return nx, ny
}

func (Geographic) Denormalize(nx, ny float64) (lon, lat float64) {
	lon = roundDecimal(nx*360 - 180)
	lat = roundDecimal(ny*180 - 90)
	return lon, lat
}

// Cartesian normalizes planar coordinates over a fixed bounding box with a
// linear scale. Coordinates outside the box are clamped by the codec's grid
// quantization; validating the domain is the caller's business.
type Cartesian struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (c Cartesian) Normalize(x, y float64) (nx, ny float64) {
	nx = (x - c.MinX) / (c.MaxX - c.MinX)
	ny = (y - c.MinY) / (c.MaxY - c.MinY)
	return nx, ny
}

func (c Cartesian) Denormalize(nx, ny float64) (x, y float64) {
	x = roundDecimal(nx*(c.MaxX-c.MinX) + c.MinX)
	y = roundDecimal(ny*(c.MaxY-c.MinY) + c.MinY)
	return x, y
}
