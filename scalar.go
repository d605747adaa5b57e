package schemapack

import (
	"github.com/wippyai/schemapack/errors"
	"github.com/wippyai/schemapack/wire"
)

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bool returns the handler for bool values.
func Bool() Handler[bool] { return boolHandler{} }

type boolHandler struct{}

func (boolHandler) Tag() wire.Tag { return wire.TagBool }

func (boolHandler) Write(w *wire.Writer, v bool) error { return w.WriteBool(v) }

func (boolHandler) Read(r *wire.Reader, into *bool) error {
	v, err := r.ReadBool()
	if err != nil {
		return err
	}
	*into = v
	return nil
}

// Int returns the handler for a signed integer type. Encode routes
// through the signed writer, so non-negative values land in the wire's
// unsigned family per the MessagePack format rule. Decode accepts any
// integer-family value and truncates silently to T's width; callers
// needing strict width checking must add it themselves.
func Int[T signed]() Handler[T] { return intHandler[T]{} }

type intHandler[T signed] struct{}

func (intHandler[T]) Tag() wire.Tag { return wire.TagInt }

func (intHandler[T]) Write(w *wire.Writer, v T) error { return w.WriteInt(int64(v)) }

func (intHandler[T]) Read(r *wire.Reader, into *T) error {
	v, err := r.ReadInt()
	if err != nil {
		return err
	}
	*into = T(v)
	return nil
}

// Uint returns the handler for an unsigned integer type. Decode
// accepts any integer-family value and truncates silently to T's
// width.
func Uint[T unsigned]() Handler[T] { return uintHandler[T]{} }

type uintHandler[T unsigned] struct{}

func (uintHandler[T]) Tag() wire.Tag { return wire.TagUint }

func (uintHandler[T]) Write(w *wire.Writer, v T) error { return w.WriteUint(uint64(v)) }

func (uintHandler[T]) Read(r *wire.Reader, into *T) error {
	v, err := r.ReadUint()
	if err != nil {
		return err
	}
	*into = T(v)
	return nil
}

// Float32 returns the handler for float32 values. The declared tag is
// Float32 exactly; there is no promotion to or from Float64 at the
// tag level.
func Float32() Handler[float32] { return float32Handler{} }

type float32Handler struct{}

func (float32Handler) Tag() wire.Tag { return wire.TagFloat32 }

func (float32Handler) Write(w *wire.Writer, v float32) error { return w.WriteFloat32(v) }

func (float32Handler) Read(r *wire.Reader, into *float32) error {
	v, err := r.ReadFloat32()
	if err != nil {
		return err
	}
	*into = v
	return nil
}

// Float64 returns the handler for float64 values.
func Float64() Handler[float64] { return float64Handler{} }

type float64Handler struct{}

func (float64Handler) Tag() wire.Tag { return wire.TagFloat64 }

func (float64Handler) Write(w *wire.Writer, v float64) error { return w.WriteFloat64(v) }

func (float64Handler) Read(r *wire.Reader, into *float64) error {
	v, err := r.ReadFloat64()
	if err != nil {
		return err
	}
	*into = v
	return nil
}

// String returns the handler for unbounded string values.
func String() Handler[string] { return stringHandler{} }

// StringMax returns a string handler bounded to max bytes: encode
// truncates longer values, decode fails with buffer_too_small if the
// wire string exceeds the bound.
func StringMax(max int) Handler[string] { return stringHandler{max: max} }

type stringHandler struct {
	max int // 0 means unbounded
}

func (stringHandler) Tag() wire.Tag { return wire.TagString }

func (h stringHandler) Write(w *wire.Writer, v string) error {
	if h.max > 0 && len(v) > h.max {
		v = v[:h.max]
	}
	return w.WriteString(v)
}

func (h stringHandler) Read(r *wire.Reader, into *string) error {
	var v string
	var err error
	if h.max > 0 {
		v, err = r.ReadStringMax(h.max)
	} else {
		v, err = r.ReadString()
	}
	if err != nil {
		return err
	}
	*into = v
	return nil
}

// Binary returns the handler for raw byte blobs. Decode requires the
// bin family on the wire; strings do not alias into binary fields.
func Binary() Handler[[]byte] { return binaryHandler{} }

type binaryHandler struct{}

func (binaryHandler) Tag() wire.Tag { return wire.TagBinary }

func (binaryHandler) Write(w *wire.Writer, v []byte) error { return w.WriteBinary(v) }

func (binaryHandler) Read(r *wire.Reader, into *[]byte) error {
	tag, err := r.PeekTag()
	if err != nil {
		return err
	}
	if tag != wire.TagBinary {
		return errors.TypeMismatch(errors.PhaseDecode, nil, "[]byte", tag.String())
	}
	v, err := r.ReadBinary()
	if err != nil {
		return err
	}
	*into = v
	return nil
}
