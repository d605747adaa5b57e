package schemapack

import "github.com/wippyai/schemapack/wire"

// OptionalOf returns the handler for an optional value represented as
// a pointer: nil encodes as wire Nil, non-nil delegates to the element
// handler. There is no separate presence marker beyond Nil vs non-Nil.
func OptionalOf[U any](elem Handler[U]) Handler[*U] {
	return optionalHandler[U]{elem: elem}
}

type optionalHandler[U any] struct {
	elem Handler[U]
}

// Tag declares the element's shape; a present optional is
// indistinguishable from a bare element on the wire.
func (h optionalHandler[U]) Tag() wire.Tag { return h.elem.Tag() }

func (h optionalHandler[U]) Write(w *wire.Writer, v *U) error {
	if v == nil {
		return w.WriteNil()
	}
	return h.elem.Write(w, *v)
}

func (h optionalHandler[U]) Read(r *wire.Reader, into **U) error {
	tag, err := r.PeekTag()
	if err != nil {
		return err
	}
	if tag == wire.TagNil {
		if err := r.ReadNil(); err != nil {
			return err
		}
		*into = nil
		return nil
	}
	if *into == nil {
		*into = new(U)
	}
	return h.elem.Read(r, *into)
}
