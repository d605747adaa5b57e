package schemapack

import (
	"fmt"

	"github.com/wippyai/schemapack/wire"
)

// Handler binds a static Go type T to its wire strategy. A handler is
// pure and stateless: one exists per distinct T, selected at compile
// time by which constructor the caller names, and composite handlers
// recurse through the element handlers they were built with.
//
// Tag declares the wire shape the handler produces and expects; the
// variant resolver matches peeked values against it. Write encodes v
// through the writer; Read decodes the next wire value into *into,
// which must already hold a default-initialized value.
type Handler[T any] interface {
	Tag() wire.Tag
	Write(w *wire.Writer, v T) error
	Read(r *wire.Reader, into *T) error
}

// typeName reports the Go type name of T for error context.
func typeName[T any]() string {
	return fmt.Sprintf("%T", *new(T))
}
