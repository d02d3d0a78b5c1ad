// Package hwkb serializes Hilbert-encoded geometries to a compact binary
// wire format ("Hilbert well-known binary") and back.
//
// Use a Serializer for the full geometry ↔ bytes pipeline, or
// Marshal/Unmarshal to (de)serialize an already-transformed
// hilbertgeom.Geometry:
//
//	s := hwkb.NewSerializer(nil)
//	data, err := s.Encode(orb.Point{24.94, 60.17})
//	g, err := s.Decode(data)
//
// # Wire format
//
//	discriminator  1 byte, the hilbertgeom.Kind
//	scalar         8 bytes, little-endian float64
//	length         unsigned LEB128 varint
//
//	Point           scalar
//	LineString      length, then that many scalars
//	Polygon         ring count, then per ring: length + scalars
//	MultiPoint      length, then that many scalars
//	MultiLineString count, then that many LineString payloads
//	MultiPolygon    count, then that many Polygon payloads
//
// The format carries no version field and no record of the normalization
// convention or curve variant used by the producer; any structural change,
// or a consumer configured differently from the producer, is a silent
// breaking change. Trailing bytes after a complete value are ignored.
package hwkb
