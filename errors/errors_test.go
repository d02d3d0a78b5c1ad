package errors

import (
	stderrors "errors"
	"io"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "unsupported geometry",
			err:  UnsupportedGeometry("orb.Collection"),
			want: "[encode] unsupported_geometry: orb.Collection",
		},
		{
			name: "truncated with cause",
			err:  Truncated(9, "point scalar", io.ErrUnexpectedEOF),
			want: "[decode] truncated: unexpected end of data reading point scalar (offset 9) (caused by: unexpected EOF)",
		},
		{
			name: "invalid discriminator",
			err:  InvalidDiscriminator(0, 0x2a),
			want: "[decode] invalid_discriminator: unknown geometry discriminator 0x2a (offset 0)",
		},
		{
			name: "length out of bounds",
			err:  LengthOutOfBounds(1, 500, 16),
			want: "[decode] length_out_of_bounds: declared 500 elements but only 16 bytes remain (offset 1)",
		},
		{
			name: "path and geometry type",
			err: &Error{
				Phase:    PhaseDecode,
				Kind:     KindTruncated,
				GeomType: "Polygon",
				Offset:   17,
				Path:     []string{"polygon", "ring 2"},
				Detail:   "short ring",
			},
			want: "[decode] truncated at polygon.ring 2: Polygon - short ring (offset 17)",
		},
		{
			name: "invariant without offset",
			err:  Invariant(PhaseEncode, "nil hilbert geometry"),
			want: "[encode] invariant_violation: nil hilbert geometry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := Truncated(3, "ring 0", io.ErrUnexpectedEOF)

	if !stderrors.Is(err, &Error{Phase: PhaseDecode, Kind: KindTruncated}) {
		t.Error("expected match on phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseEncode, Kind: KindTruncated}) {
		t.Error("unexpected match across phases")
	}
	if stderrors.Is(err, &Error{Phase: PhaseDecode, Kind: KindInvalidDiscriminator}) {
		t.Error("unexpected match across kinds")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := Truncated(0, "discriminator", cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap: got %v, want %v", err.Unwrap(), cause)
	}

	if got := EncodingFailed("Point", nil).Unwrap(); got != nil {
		t.Errorf("Unwrap without cause: got %v, want nil", got)
	}
}
