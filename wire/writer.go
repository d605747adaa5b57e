package wire

import (
	goerrors "errors"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/wippyai/schemapack/errors"
)

// overflowError marks a write past the sink capacity before it is
// translated into the structured error taxonomy.
type overflowError struct{}

func (overflowError) Error() string { return "write exceeds buffer capacity" }

// boundedSink is a fixed-capacity write target. Writes land at the
// front of the backing buffer; a write that would run past the end is
// refused whole rather than split.
type boundedSink struct {
	buf []byte
	n   int
}

func (s *boundedSink) Write(p []byte) (int, error) {
	if s.n+len(p) > len(s.buf) {
		return 0, overflowError{}
	}
	n := copy(s.buf[s.n:], p)
	s.n += n
	return n, nil
}

// Writer drives a MessagePack encoder over a caller-supplied
// fixed-capacity buffer. It never grows the buffer: an encoding that
// would exceed capacity fails with a buffer_too_small error and the
// session is dead from that point on.
type Writer struct {
	enc  *msgpack.Encoder
	sink boundedSink
}

// NewWriter binds a writer to buf. Encoded bytes accumulate at the
// front of buf; Len reports how many have been written.
func NewWriter(buf []byte) *Writer {
	w := &Writer{sink: boundedSink{buf: buf}}
	w.enc = msgpack.NewEncoder(&w.sink)
	return w
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.sink.n }

// Cap returns the capacity of the bound buffer.
func (w *Writer) Cap() int { return len(w.sink.buf) }

func (w *Writer) wrap(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.Is(err, overflowError{}) {
		return errors.New(errors.PhaseEncode, errors.KindBufferTooSmall).
			Detail("encoding exceeds buffer capacity %d", len(w.sink.buf)).
			Build()
	}
	return errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "write failed")
}

func (w *Writer) WriteNil() error { return w.wrap(w.enc.EncodeNil()) }

func (w *Writer) WriteBool(v bool) error { return w.wrap(w.enc.EncodeBool(v)) }

// WriteInt writes v in the smallest encoding. Non-negative values land
// in the wire's unsigned family per the MessagePack format rule.
func (w *Writer) WriteInt(v int64) error { return w.wrap(w.enc.EncodeInt(v)) }

func (w *Writer) WriteUint(v uint64) error { return w.wrap(w.enc.EncodeUint(v)) }

func (w *Writer) WriteFloat32(v float32) error { return w.wrap(w.enc.EncodeFloat32(v)) }

func (w *Writer) WriteFloat64(v float64) error { return w.wrap(w.enc.EncodeFloat64(v)) }

func (w *Writer) WriteString(v string) error { return w.wrap(w.enc.EncodeString(v)) }

// WriteBinary writes the bin family for any slice, including empty and
// nil, so binary fields never degrade to nil on the wire.
func (w *Writer) WriteBinary(v []byte) error {
	if err := w.enc.EncodeBytesLen(len(v)); err != nil {
		return w.wrap(err)
	}
	if len(v) == 0 {
		return nil
	}
	_, err := w.enc.Writer().Write(v)
	return w.wrap(err)
}

// WriteExtension writes an extension header carrying typ followed by
// the payload bytes.
func (w *Writer) WriteExtension(typ int8, payload []byte) error {
	if err := w.enc.EncodeExtHeader(typ, len(payload)); err != nil {
		return w.wrap(err)
	}
	if len(payload) == 0 {
		return nil
	}
	_, err := w.enc.Writer().Write(payload)
	return w.wrap(err)
}

func (w *Writer) WriteArrayHeader(n int) error { return w.wrap(w.enc.EncodeArrayLen(n)) }

func (w *Writer) WriteMapHeader(n int) error { return w.wrap(w.enc.EncodeMapLen(n)) }
