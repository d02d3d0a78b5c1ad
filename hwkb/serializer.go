package hwkb

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	hilbertgeom "github.com/alamminsalo/hilbert-geometry"
	hgerrors "github.com/alamminsalo/hilbert-geometry/errors"
	"github.com/alamminsalo/hilbert-geometry/hwkb/internal/binary"
)

// Serializer converts geometries straight to wire bytes and back, composing
// the Hilbert transform with the binary codec. The wire configuration is
// fixed and versionless; a Serializer holds no mutable state and is safe for
// concurrent use.
type Serializer struct {
	transform *hilbertgeom.Transform
}

// NewSerializer creates a Serializer over the given transform. A nil
// transform selects the default (geographic convention, Hilbert variant).
// Producer and consumer must be built over the same transform configuration;
// the wire format does not record it.
func NewSerializer(t *hilbertgeom.Transform) *Serializer {
	if t == nil {
		t = hilbertgeom.NewTransform(nil)
	}
	return &Serializer{transform: t}
}

// Encode transforms a geometry to its Hilbert-encoded form and serializes it.
func (s *Serializer) Encode(g orb.Geometry) ([]byte, error) {
	hg, err := s.transform.Encode(g)
	if err != nil {
		return nil, err
	}
	data, err := Marshal(hg)
	if err != nil {
		return nil, err
	}
	Logger().Debug("encoded geometry",
		zap.Stringer("kind", hg.GeometryKind()),
		zap.Int("bytes", len(data)))
	return data, nil
}

// Decode deserializes wire bytes and transforms the result back to a
// geometry.
func (s *Serializer) Decode(data []byte) (orb.Geometry, error) {
	hg, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	g, err := s.transform.Decode(hg)
	if err != nil {
		return nil, err
	}
	Logger().Debug("decoded geometry",
		zap.Stringer("kind", hg.GeometryKind()),
		zap.Int("bytes", len(data)))
	return g, nil
}

// Marshal serializes a Hilbert-encoded geometry.
//
// Wire layout: one discriminator byte (the geometry Kind), then the
// payload — scalars as little-endian float64, sequence lengths as unsigned
// LEB128 varints, nested in the same order as the value's structure.
func Marshal(hg hilbertgeom.Geometry) ([]byte, error) {
	w := binary.NewWriter()

	switch hg := hg.(type) {
	case hilbertgeom.Point:
		w.Byte(byte(hilbertgeom.KindPoint))
		w.WriteF64(float64(hg))
	case hilbertgeom.LineString:
		w.Byte(byte(hilbertgeom.KindLineString))
		writeScalars(w, hg)
	case hilbertgeom.Polygon:
		w.Byte(byte(hilbertgeom.KindPolygon))
		writeRings(w, hg)
	case hilbertgeom.MultiPoint:
		w.Byte(byte(hilbertgeom.KindMultiPoint))
		writeScalars(w, hg)
	case hilbertgeom.MultiLineString:
		w.Byte(byte(hilbertgeom.KindMultiLineString))
		w.WriteU64(uint64(len(hg)))
		for _, ls := range hg {
			writeScalars(w, ls)
		}
	case hilbertgeom.MultiPolygon:
		w.Byte(byte(hilbertgeom.KindMultiPolygon))
		w.WriteU64(uint64(len(hg)))
		for _, p := range hg {
			writeRings(w, p)
		}
	case nil:
		return nil, hgerrors.Invariant(hgerrors.PhaseEncode, "nil hilbert geometry")
	default:
		// Unreachable through this module's constructors; guards against
		// foreign implementations of the sealed interface.
		return nil, hgerrors.Invariant(hgerrors.PhaseEncode,
			fmt.Sprintf("geometry %T outside the closed variant set", hg))
	}

	return w.Bytes(), nil
}

// Unmarshal deserializes a Hilbert-encoded geometry. Trailing bytes after a
// complete value are ignored.
func Unmarshal(data []byte) (hilbertgeom.Geometry, error) {
	r := binary.NewReader(data)

	disc, err := r.ReadByte()
	if err != nil {
		return nil, hgerrors.Truncated(r.Position(), "discriminator", err)
	}

	switch hilbertgeom.Kind(disc) {
	case hilbertgeom.KindPoint:
		s, err := r.ReadF64()
		if err != nil {
			return nil, hgerrors.Truncated(r.Position(), "point scalar", err)
		}
		return hilbertgeom.Point(s), nil
	case hilbertgeom.KindLineString:
		ss, err := readScalars(r, "line string")
		if err != nil {
			return nil, err
		}
		return hilbertgeom.LineString(ss), nil
	case hilbertgeom.KindPolygon:
		rings, err := readRings(r)
		if err != nil {
			return nil, err
		}
		return hilbertgeom.Polygon(rings), nil
	case hilbertgeom.KindMultiPoint:
		ss, err := readScalars(r, "multi point")
		if err != nil {
			return nil, err
		}
		return hilbertgeom.MultiPoint(ss), nil
	case hilbertgeom.KindMultiLineString:
		count, err := readCount(r, "line string count", 1)
		if err != nil {
			return nil, err
		}
		mls := make(hilbertgeom.MultiLineString, count)
		for i := range mls {
			ss, err := readScalars(r, fmt.Sprintf("line string %d", i))
			if err != nil {
				return nil, err
			}
			mls[i] = hilbertgeom.LineString(ss)
		}
		return mls, nil
	case hilbertgeom.KindMultiPolygon:
		count, err := readCount(r, "polygon count", 1)
		if err != nil {
			return nil, err
		}
		mp := make(hilbertgeom.MultiPolygon, count)
		for i := range mp {
			rings, err := readRings(r)
			if err != nil {
				return nil, err
			}
			mp[i] = hilbertgeom.Polygon(rings)
		}
		return mp, nil
	default:
		return nil, hgerrors.InvalidDiscriminator(0, disc)
	}
}

func writeScalars(w *binary.Writer, ss []hilbertgeom.Scalar) {
	w.WriteU64(uint64(len(ss)))
	for _, s := range ss {
		w.WriteF64(float64(s))
	}
}

func writeRings(w *binary.Writer, rings []hilbertgeom.Ring) {
	w.WriteU64(uint64(len(rings)))
	for _, ring := range rings {
		writeScalars(w, ring)
	}
}

// readCount reads a sequence length and checks that minSize bytes per
// element still fit in the buffer, so corrupted lengths fail fast instead of
// allocating.
func readCount(r *binary.Reader, what string, minSize int) (uint64, error) {
	offset := r.Position()
	count, err := r.ReadU64()
	if err != nil {
		return 0, wireError(r.Position(), what, err)
	}
	if count > uint64(r.Remaining()/minSize) {
		return 0, hgerrors.LengthOutOfBounds(offset, count, r.Remaining())
	}
	return count, nil
}

func readScalars(r *binary.Reader, what string) ([]hilbertgeom.Scalar, error) {
	count, err := readCount(r, what+" length", 8)
	if err != nil {
		return nil, err
	}
	ss := make([]hilbertgeom.Scalar, count)
	for i := range ss {
		s, err := r.ReadF64()
		if err != nil {
			return nil, hgerrors.Truncated(r.Position(), what, err)
		}
		ss[i] = hilbertgeom.Scalar(s)
	}
	return ss, nil
}

func readRings(r *binary.Reader) ([]hilbertgeom.Ring, error) {
	// A ring costs at least one length byte.
	count, err := readCount(r, "ring count", 1)
	if err != nil {
		return nil, err
	}
	rings := make([]hilbertgeom.Ring, count)
	for i := range rings {
		ss, err := readScalars(r, fmt.Sprintf("ring %d", i))
		if err != nil {
			return nil, err
		}
		rings[i] = hilbertgeom.Ring(ss)
	}
	return rings, nil
}

func wireError(offset int, what string, err error) error {
	if errors.Is(err, binary.ErrUnexpectedEnd) {
		return hgerrors.Truncated(offset, what, err)
	}
	return &hgerrors.Error{
		Phase:  hgerrors.PhaseDecode,
		Kind:   hgerrors.KindLengthOutOfBounds,
		Offset: offset,
		Detail: what,
		Cause:  err,
	}
}
