package schemapack

import (
	"github.com/wippyai/schemapack/errors"
	"github.com/wippyai/schemapack/wire"
)

// Schema is the ordered, immutable field table of a composite type T,
// and at the same time T's handler: a composite encodes as a map of
// exactly len(fields) name/value pairs in declaration order, and
// decodes by matching wire keys against field names.
//
// Build one per type with NewSchema, typically in a package-level
// variable; schemas are read-only after construction and safe for
// unsynchronized concurrent use.
type Schema[T any] struct {
	index     map[string]int
	typeName  string
	fields    []Field[T]
	maxKeyLen int
}

// NewSchema builds the schema for T from its fields, in wire order.
// Field names must be unique within the schema; a duplicate panics at
// construction time, the runtime analogue of a compile failure.
func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{
		fields:   fields,
		index:    make(map[string]int, len(fields)),
		typeName: typeName[T](),
	}
	for i, f := range fields {
		if _, dup := s.index[f.name]; dup {
			panic(errors.DuplicateField(s.typeName, f.name))
		}
		s.index[f.name] = i
		if len(f.name) > s.maxKeyLen {
			s.maxKeyLen = len(f.name)
		}
	}
	return s
}

// Len returns the number of fields in the schema.
func (s *Schema[T]) Len() int { return len(s.fields) }

// Tag declares the composite shape; on the wire a composite appears
// as a map.
func (s *Schema[T]) Tag() wire.Tag { return wire.TagCustomObject }

// Write encodes v as a map of exactly len(fields) pairs, field names
// as string keys, values through each field's handler, in declaration
// order. Output is deterministic byte for byte.
func (s *Schema[T]) Write(w *wire.Writer, v T) error {
	if err := w.WriteMapHeader(len(s.fields)); err != nil {
		return err
	}
	for _, f := range s.fields {
		if err := w.WriteString(f.name); err != nil {
			return errors.Prefix(err, f.name)
		}
		if err := f.write(w, &v); err != nil {
			return errors.Prefix(err, f.name)
		}
	}
	return nil
}

// Read decodes a wire map into *into, which must already hold default
// field values. Keys are matched exactly and case-sensitively; an
// unknown key, or one longer than the schema's widest field name, has
// its paired value skipped recursively without error. Fields whose
// keys are absent keep their prior values. A wire head that is not a
// map fails with expected_map.
func (s *Schema[T]) Read(r *wire.Reader, into *T) error {
	tag, err := r.PeekTag()
	if err != nil {
		return err
	}
	if tag != wire.TagMap {
		return errors.ExpectedMap(nil, tag.String())
	}
	n, err := r.ReadMapHeader()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		key, usable, err := r.ReadKey(s.maxKeyLen)
		if err != nil {
			return err
		}
		if !usable {
			if err := r.Skip(); err != nil {
				return err
			}
			continue
		}
		idx, known := s.index[key]
		if !known {
			if err := r.Skip(); err != nil {
				return err
			}
			continue
		}
		if err := s.fields[idx].read(r, into); err != nil {
			return errors.Prefix(err, key)
		}
	}
	return nil
}
