// Package wire is the MessagePack boundary of the schemapack codec.
//
// It wraps the vmihailenco/msgpack encoder and decoder with the three
// things the typed layer above needs and the raw library does not
// provide directly:
//
//   - a Tag classification of format codes into the shapes the variant
//     resolver reasons about (nil, bool, int, uint, float32, float64,
//     string, binary, extension, array, map)
//   - a Writer bound to a caller-supplied fixed-capacity buffer that
//     reports overflow as a structured buffer_too_small error instead
//     of growing
//   - a Reader whose failures carry the codec's error taxonomy:
//     exhausted input surfaces as truncated_input, bounded string
//     reads as buffer_too_small, malformed values with their cause
//     preserved
//
// Numeric reads stay as lenient as the underlying decoder (integer
// families interchange, floats accept integer-coded values); strict
// tag discipline is the caller's job via PeekTag.
package wire
