package wire

import (
	"bytes"
	goerrors "errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/wippyai/schemapack/errors"
)

// Reader drives a MessagePack decoder over the full extent of a fixed
// buffer. Numeric reads are value-lenient the way the underlying
// decoder is; callers that need strict shapes peek first.
type Reader struct {
	dec *msgpack.Decoder
}

// NewReader binds a reader to buf.
func NewReader(buf []byte) *Reader {
	return &Reader{dec: msgpack.NewDecoder(bytes.NewReader(buf))}
}

// fail translates raw decoder failures into the structured taxonomy.
// Exhausted input is truncated_input; anything else unclassified keeps
// its cause under invalid_data. Structured errors pass through.
func (r *Reader) fail(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*errors.Error); ok {
		return e
	}
	if goerrors.Is(err, io.EOF) || goerrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.TruncatedInput(nil, err)
	}
	return errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "malformed value")
}

// PeekTag classifies the next value without consuming it.
func (r *Reader) PeekTag() (Tag, error) {
	code, err := r.dec.PeekCode()
	if err != nil {
		return TagInvalid, r.fail(err)
	}
	return Classify(code), nil
}

func (r *Reader) ReadNil() error { return r.fail(r.dec.DecodeNil()) }

func (r *Reader) ReadBool() (bool, error) {
	v, err := r.dec.DecodeBool()
	return v, r.fail(err)
}

// ReadInt reads any integer-family value as int64.
func (r *Reader) ReadInt() (int64, error) {
	v, err := r.dec.DecodeInt64()
	return v, r.fail(err)
}

// ReadUint reads any integer-family value as uint64. Negative values
// alias into unsigned space; width policy belongs to the caller.
func (r *Reader) ReadUint() (uint64, error) {
	v, err := r.dec.DecodeUint64()
	return v, r.fail(err)
}

func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.dec.DecodeFloat32()
	return v, r.fail(err)
}

func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.dec.DecodeFloat64()
	return v, r.fail(err)
}

func (r *Reader) ReadString() (string, error) {
	v, err := r.dec.DecodeString()
	return v, r.fail(err)
}

// readStringLimit reads one string value and reports its wire length.
// A string longer than max is consumed but not retained; the fixstr
// range is rejected from the header alone, before any allocation.
func (r *Reader) readStringLimit(max int) (string, int, error) {
	code, err := r.dec.PeekCode()
	if err != nil {
		return "", 0, r.fail(err)
	}
	if !msgpcode.IsString(code) {
		return "", 0, errors.TypeMismatch(errors.PhaseDecode, nil, "string", Classify(code).String())
	}
	if msgpcode.IsFixedString(code) {
		if n := int(code & msgpcode.FixedStrMask); n > max {
			return "", n, r.fail(r.dec.Skip())
		}
	}
	s, err := r.dec.DecodeString()
	if err != nil {
		return "", 0, r.fail(err)
	}
	if len(s) > max {
		return "", len(s), nil
	}
	return s, len(s), nil
}

// ReadKey reads a map key bounded by max bytes. The second result
// reports whether the key fit; oversized keys are consumed and
// reported unusable instead of failing the decode.
func (r *Reader) ReadKey(max int) (string, bool, error) {
	s, n, err := r.readStringLimit(max)
	if err != nil {
		return "", false, err
	}
	return s, n <= max, nil
}

// ReadStringMax reads a string that must fit within max bytes; a
// longer wire string fails with buffer_too_small.
func (r *Reader) ReadStringMax(max int) (string, error) {
	s, n, err := r.readStringLimit(max)
	if err != nil {
		return "", err
	}
	if n > max {
		return "", errors.BufferTooSmall(errors.PhaseDecode, nil, n, max)
	}
	return s, nil
}

func (r *Reader) ReadBinary() ([]byte, error) {
	v, err := r.dec.DecodeBytes()
	return v, r.fail(err)
}

func (r *Reader) ReadArrayHeader() (int, error) {
	n, err := r.dec.DecodeArrayLen()
	return n, r.fail(err)
}

func (r *Reader) ReadMapHeader() (int, error) {
	n, err := r.dec.DecodeMapLen()
	return n, r.fail(err)
}

// ReadExtensionHeader reads an extension header, returning its subtype
// and payload length. The payload itself follows via ReadRaw.
func (r *Reader) ReadExtensionHeader() (int8, int, error) {
	typ, n, err := r.dec.DecodeExtHeader()
	return typ, n, r.fail(err)
}

// ReadRaw fills p with the next len(p) bytes of the stream, used for
// extension payloads after their header has been read.
func (r *Reader) ReadRaw(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	_, err := io.ReadFull(r.dec.Buffered(), p)
	return r.fail(err)
}

// Skip discards exactly one value, recursing through nested structure.
func (r *Reader) Skip() error { return r.fail(r.dec.Skip()) }
