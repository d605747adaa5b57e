package schemapack

import "github.com/wippyai/schemapack/wire"

// Encode runs one encode pass of v through h into a caller-supplied
// fixed-capacity buffer and returns the number of bytes written. The
// buffer is never grown: an encoding that would exceed its capacity
// fails with buffer_too_small. The session owns buf exclusively for
// the duration of the call.
func Encode[T any](h Handler[T], v T, buf []byte) (int, error) {
	w := wire.NewWriter(buf)
	if err := h.Write(w, v); err != nil {
		return 0, err
	}
	return w.Len(), nil
}

// Decode runs one decode pass over buf's full extent through h into
// *into, which must already hold default-initialized values. Input
// that ends before a value completes fails with truncated_input;
// structural failures propagate as the first error encountered. A
// failed decode leaves *into partially overwritten: fields processed
// before the failure may already hold decoded values.
func Decode[T any](h Handler[T], buf []byte, into *T) error {
	r := wire.NewReader(buf)
	return h.Read(r, into)
}
