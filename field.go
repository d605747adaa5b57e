package schemapack

import "github.com/wippyai/schemapack/wire"

// Field binds one named member of a composite type T to its handler.
// The member's static type is erased behind a closure pair at
// construction, so a schema can hold fields of mixed types in one
// slice without reflection.
type Field[T any] struct {
	write func(w *wire.Writer, v *T) error
	read  func(r *wire.Reader, v *T) error
	name  string
	tag   wire.Tag
}

// F constructs a field descriptor: name is the wire key, h the
// member's handler, and project selects the member inside T. The
// projection must be stable for the lifetime of the call it is used
// in; typically it is a one-line pointer selector:
//
//	F("name", String(), func(v *Report) *string { return &v.Name })
func F[T, M any](name string, h Handler[M], project func(*T) *M) Field[T] {
	return Field[T]{
		name: name,
		tag:  h.Tag(),
		write: func(w *wire.Writer, v *T) error {
			return h.Write(w, *project(v))
		},
		read: func(r *wire.Reader, v *T) error {
			return h.Read(r, project(v))
		},
	}
}

// Name returns the wire key the field encodes under.
func (f Field[T]) Name() string { return f.name }

// Tag returns the wire shape of the field's member type.
func (f Field[T]) Tag() wire.Tag { return f.tag }
