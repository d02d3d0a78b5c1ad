package binary

import (
	"encoding/binary"
	"errors"
	"math"
)

// Errors returned by Reader. The hwkb package wraps them with offsets and
// structured kinds.
var (
	ErrUnexpectedEnd = errors.New("unexpected end of data")
	ErrOverflow      = errors.New("varint: overflow")
)

// Reader reads wire primitives from a byte slice with position tracking.
// Slice-backed so decoders can validate declared lengths against Remaining.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte offset.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrUnexpectedEnd
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadU64 reads an unsigned LEB128 encoded uint64.
func (r *Reader) ReadU64() (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 70 {
			return 0, ErrOverflow
		}
	}
}

// ReadF64 reads a little-endian float64 (fixed 8 bytes).
func (r *Reader) ReadF64() (float64, error) {
	if r.Remaining() < 8 {
		return 0, ErrUnexpectedEnd
	}
	bits := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return math.Float64frombits(bits), nil
}
