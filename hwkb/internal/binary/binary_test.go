package binary

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestReaderReadByte(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := NewReader(data)

	for i, want := range data {
		if r.Position() != i {
			t.Errorf("position before read %d: got %d, want %d", i, r.Position(), i)
		}
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte %d: %v", i, err)
		}
		if b != want {
			t.Errorf("ReadByte %d: got 0x%02x, want 0x%02x", i, b, want)
		}
	}

	if r.Position() != 3 {
		t.Errorf("final position: got %d, want 3", r.Position())
	}
	if r.Remaining() != 0 {
		t.Errorf("remaining: got %d, want 0", r.Remaining())
	}

	_, err := r.ReadByte()
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("expected ErrUnexpectedEnd, got %v", err)
	}
}

func TestReaderReadU64(t *testing.T) {
	tests := []struct {
		encoded []byte
		want    uint64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, 127},
		{[]byte{0x80, 0x01}, 128},
		{[]byte{0xff, 0x01}, 255},
		{[]byte{0xe5, 0x8e, 0x26}, 624485},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xFFFFFFFF},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, math.MaxUint64},
	}

	for _, tt := range tests {
		r := NewReader(tt.encoded)
		got, err := r.ReadU64()
		if err != nil {
			t.Errorf("ReadU64(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadU64(%v): got %d, want %d", tt.encoded, got, tt.want)
		}
	}
}

func TestReaderReadU64Overflow(t *testing.T) {
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	r := NewReader(data)
	_, err := r.ReadU64()
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestReaderReadU64Truncated(t *testing.T) {
	// Continuation bit set but no next byte.
	r := NewReader([]byte{0x80})
	_, err := r.ReadU64()
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("expected ErrUnexpectedEnd, got %v", err)
	}
}

func TestReaderReadF64(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, 3.141592653589793, math.MaxFloat64, math.SmallestNonzeroFloat64}

	for _, v := range values {
		w := NewWriter()
		w.WriteF64(v)
		r := NewReader(w.Bytes())
		got, err := r.ReadF64()
		if err != nil {
			t.Fatalf("ReadF64(%v): %v", v, err)
		}
		if got != v {
			t.Errorf("ReadF64: got %v, want %v", got, v)
		}
		if r.Remaining() != 0 {
			t.Errorf("ReadF64(%v): %d bytes left over", v, r.Remaining())
		}
	}
}

func TestReaderReadF64Truncated(t *testing.T) {
	r := NewReader([]byte{0x00, 0x00, 0x00, 0x00})
	_, err := r.ReadF64()
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("expected ErrUnexpectedEnd, got %v", err)
	}
	if r.Position() != 0 {
		t.Errorf("position advanced on failed read: got %d", r.Position())
	}
}

func TestWriterWriteU64(t *testing.T) {
	tests := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{255, []byte{0xff, 0x01}},
		{624485, []byte{0xe5, 0x8e, 0x26}},
	}

	for _, tt := range tests {
		w := NewWriter()
		w.WriteU64(tt.v)
		if !bytes.Equal(w.Bytes(), tt.want) {
			t.Errorf("WriteU64(%d): got %v, want %v", tt.v, w.Bytes(), tt.want)
		}
	}
}

func TestWriterRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16384, 1 << 32, math.MaxUint64}

	w := NewWriter()
	w.Byte(0xab)
	for _, v := range values {
		w.WriteU64(v)
	}
	w.WriteF64(-2.5)

	r := NewReader(w.Bytes())
	b, err := r.ReadByte()
	if err != nil || b != 0xab {
		t.Fatalf("ReadByte: got 0x%02x, %v", b, err)
	}
	for _, v := range values {
		got, err := r.ReadU64()
		if err != nil {
			t.Fatalf("ReadU64: %v", err)
		}
		if got != v {
			t.Errorf("ReadU64: got %d, want %d", got, v)
		}
	}
	f, err := r.ReadF64()
	if err != nil || f != -2.5 {
		t.Fatalf("ReadF64: got %v, %v", f, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("remaining: got %d, want 0", r.Remaining())
	}
	if w.Len() != len(w.Bytes()) {
		t.Errorf("Len: got %d, want %d", w.Len(), len(w.Bytes()))
	}
}
