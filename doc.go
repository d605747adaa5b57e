// Package schemapack is a type-directed codec layer over a
// MessagePack-compatible wire format.
//
// It serializes statically-typed structured values - structs with
// named fields, nested objects, collections, optional values, tagged
// unions, and fixed-capacity extension buffers - to and from a
// compact, self-describing binary encoding without hand-written
// per-type marshaling code. Type dispatch happens at compile time:
// the caller names a handler constructor per type, and composite
// handlers recurse through the element handlers they were built with.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	schemapack/          Root package: type handlers, field schemas,
//	│                    the composite codec, variant resolution, and
//	│                    buffer sessions
//	├── wire/            MessagePack boundary: tag classification and
//	│                    bounded reader/writer framing
//	├── errors/          Structured error types with phase, kind, and
//	│                    field-path context
//	├── cmd/inspect/     CLI for dumping and browsing encoded buffers
//	└── examples/basic/  End-to-end demo over a fixed-size buffer
//
// # Quick Start
//
// A composite type participates by declaring a schema, the ordered
// list of its field bindings:
//
//	type Point struct {
//	    X, Y int32
//	}
//
//	var pointSchema = schemapack.NewSchema(
//	    schemapack.F("x", schemapack.Int[int32](), func(p *Point) *int32 { return &p.X }),
//	    schemapack.F("y", schemapack.Int[int32](), func(p *Point) *int32 { return &p.Y }),
//	)
//
//	buf := make([]byte, 64)
//	n, err := schemapack.Encode(pointSchema, Point{X: 1, Y: 2}, buf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var out Point
//	if err := schemapack.Decode(pointSchema, buf[:n], &out); err != nil {
//	    log.Fatal(err)
//	}
//
// # Handler Constructors
//
// The constructor set is closed and covers, in resolution priority
// order: Bool, Uint, Int, Float32, Float64, String and StringMax,
// Binary, ExtensionOf, OptionalOf, ArrayOf, SliceOf, MapOf,
// VariantOf2/VariantOf3, and NewSchema as the terminal composite
// fallback. A type with no matching constructor cannot be spelled,
// which makes unsupported types a compile failure rather than a
// runtime one.
//
// # Compatibility Policy
//
// Composite decode is tolerant in both directions: wire keys absent
// from the schema are skipped, and schema fields absent from the wire
// keep their default values. Field order on the wire is declaration
// order, so encoding is deterministic byte for byte, but decode never
// depends on order.
//
// # Thread Safety
//
// Schemas are immutable after construction and safe for concurrent
// use without synchronization. A buffer session owns its buffer
// exclusively for the duration of one Encode or Decode call; callers
// must not alias a buffer between concurrent calls.
package schemapack
