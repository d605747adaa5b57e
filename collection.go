package schemapack

import (
	"strconv"

	"github.com/wippyai/schemapack/errors"
	"github.com/wippyai/schemapack/wire"
)

// ArrayOf returns the handler for a fixed-size array carried as a
// slice of exactly length elements. Both directions enforce the
// count: encode fails if the slice length differs, decode fails with
// array_length_mismatch if the wire array does.
func ArrayOf[T any](length int, elem Handler[T]) Handler[[]T] {
	return arrayHandler[T]{length: length, elem: elem}
}

type arrayHandler[T any] struct {
	elem   Handler[T]
	length int
}

func (arrayHandler[T]) Tag() wire.Tag { return wire.TagArray }

func (h arrayHandler[T]) Write(w *wire.Writer, v []T) error {
	if len(v) != h.length {
		return errors.ArrayLengthMismatch(errors.PhaseEncode, nil, h.length, len(v))
	}
	if err := w.WriteArrayHeader(h.length); err != nil {
		return err
	}
	for i := range v {
		if err := h.elem.Write(w, v[i]); err != nil {
			return errors.Prefix(err, strconv.Itoa(i))
		}
	}
	return nil
}

func (h arrayHandler[T]) Read(r *wire.Reader, into *[]T) error {
	n, err := r.ReadArrayHeader()
	if err != nil {
		return err
	}
	if n != h.length {
		return errors.ArrayLengthMismatch(errors.PhaseDecode, nil, h.length, n)
	}
	if len(*into) != h.length {
		*into = make([]T, h.length)
	}
	for i := range *into {
		if err := h.elem.Read(r, &(*into)[i]); err != nil {
			return errors.Prefix(err, strconv.Itoa(i))
		}
	}
	return nil
}

// SliceOf returns the handler for a variable-length sequence. Decode
// resizes the slice to the wire count; elements start from their zero
// value, not from whatever the slice held before.
func SliceOf[T any](elem Handler[T]) Handler[[]T] {
	return sliceHandler[T]{elem: elem}
}

type sliceHandler[T any] struct {
	elem Handler[T]
}

func (sliceHandler[T]) Tag() wire.Tag { return wire.TagArray }

func (h sliceHandler[T]) Write(w *wire.Writer, v []T) error {
	if err := w.WriteArrayHeader(len(v)); err != nil {
		return err
	}
	for i := range v {
		if err := h.elem.Write(w, v[i]); err != nil {
			return errors.Prefix(err, strconv.Itoa(i))
		}
	}
	return nil
}

func (h sliceHandler[T]) Read(r *wire.Reader, into *[]T) error {
	n, err := r.ReadArrayHeader()
	if err != nil {
		return err
	}
	if n < 0 {
		*into = nil
		return nil
	}
	*into = make([]T, n)
	for i := range *into {
		if err := h.elem.Read(r, &(*into)[i]); err != nil {
			return errors.Prefix(err, strconv.Itoa(i))
		}
	}
	return nil
}

// MapOf returns the handler for a keyed mapping. Decode merges into
// the existing map by key, allocating it when nil; entries absent
// from the wire survive.
func MapOf[K comparable, V any](key Handler[K], value Handler[V]) Handler[map[K]V] {
	return mapHandler[K, V]{key: key, value: value}
}

type mapHandler[K comparable, V any] struct {
	key   Handler[K]
	value Handler[V]
}

func (mapHandler[K, V]) Tag() wire.Tag { return wire.TagMap }

func (h mapHandler[K, V]) Write(w *wire.Writer, v map[K]V) error {
	if err := w.WriteMapHeader(len(v)); err != nil {
		return err
	}
	for k, val := range v {
		if err := h.key.Write(w, k); err != nil {
			return err
		}
		if err := h.value.Write(w, val); err != nil {
			return err
		}
	}
	return nil
}

func (h mapHandler[K, V]) Read(r *wire.Reader, into *map[K]V) error {
	n, err := r.ReadMapHeader()
	if err != nil {
		return err
	}
	if n < 0 {
		return nil
	}
	if *into == nil {
		*into = make(map[K]V, n)
	}
	for i := 0; i < n; i++ {
		var k K
		if err := h.key.Read(r, &k); err != nil {
			return err
		}
		var val V
		if err := h.value.Read(r, &val); err != nil {
			return err
		}
		(*into)[k] = val
	}
	return nil
}
