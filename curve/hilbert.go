package curve

// hilbertMapper walks the Hilbert curve over the grid. Consecutive curve
// positions are always grid-adjacent, which is what gives encoded scalars
// their locality.
type hilbertMapper struct{}

func (hilbertMapper) pos(u, v uint64) uint64 {
	return xy2d(u, v)
}

func (hilbertMapper) cell(pos uint64) (u, v uint64) {
	return d2xy(pos)
}

// xy2d converts grid cell (x, y) to its position along the order-32 Hilbert
// curve. The quadrant index at each level is ((3*rx) XOR ry), then the
// coordinates are rotated into the quadrant's local frame. The reflection
// x = s-1-x may wrap in uint64 when higher bits of x are still present;
// that is fine because later levels only inspect bits below s, and for a
// power-of-two s those bits of the wrapped value equal (s-1-x) mod s.
func xy2d(x, y uint64) uint64 {
	var d uint64
	for s := uint64(1) << (gridOrder - 1); s > 0; s >>= 1 {
		var rx, ry uint64
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		if ry == 0 {
			if rx == 1 {
				x = s - 1 - x
				y = s - 1 - y
			}
			x, y = y, x
		}
	}
	return d
}

// d2xy converts a curve position back to its grid cell, undoing xy2d level
// by level from the bottom up.
func d2xy(d uint64) (x, y uint64) {
	t := d
	for s := uint64(1); s < 1<<gridOrder; s <<= 1 {
		rx := 1 & (t >> 1)
		ry := 1 & (t ^ rx)
		if ry == 0 {
			if rx == 1 {
				x = s - 1 - x
				y = s - 1 - y
			}
			x, y = y, x
		}
		x += s * rx
		y += s * ry
		t >>= 2
	}
	return x, y
}
