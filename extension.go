package schemapack

import (
	"github.com/wippyai/schemapack/errors"
	"github.com/wippyai/schemapack/wire"
)

// Extension is a fixed-capacity byte buffer tagged with a small
// integer subtype, used for compact side-channel metadata alongside
// ordinary fields. The subtype travels in the value, not in the
// handler.
type Extension struct {
	Data []byte
	Type int8
}

// ExtensionOf returns the handler for extension values of the given
// payload capacity. The wire payload always spans exactly capacity
// bytes on encode, zero-padded past the value's data; encode fails if
// the data is longer than capacity, decode fails if the wire payload
// is.
func ExtensionOf(capacity int) Handler[Extension] {
	return extensionHandler{capacity: capacity}
}

type extensionHandler struct {
	capacity int
}

func (extensionHandler) Tag() wire.Tag { return wire.TagExtension }

func (h extensionHandler) Write(w *wire.Writer, v Extension) error {
	if len(v.Data) > h.capacity {
		return errors.BufferTooSmall(errors.PhaseEncode, nil, len(v.Data), h.capacity)
	}
	payload := make([]byte, h.capacity)
	copy(payload, v.Data)
	return w.WriteExtension(v.Type, payload)
}

func (h extensionHandler) Read(r *wire.Reader, into *Extension) error {
	tag, err := r.PeekTag()
	if err != nil {
		return err
	}
	if tag != wire.TagExtension {
		return errors.TypeMismatch(errors.PhaseDecode, nil, typeName[Extension](), tag.String())
	}
	typ, n, err := r.ReadExtensionHeader()
	if err != nil {
		return err
	}
	if n > h.capacity {
		return errors.BufferTooSmall(errors.PhaseDecode, nil, n, h.capacity)
	}
	data := make([]byte, h.capacity)
	if err := r.ReadRaw(data[:n]); err != nil {
		return err
	}
	into.Type = typ
	into.Data = data
	return nil
}
