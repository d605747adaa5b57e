package schemapack

import (
	"testing"

	"github.com/wippyai/schemapack/errors"
)

// wantKind fails the test unless err is a structured error of the
// given kind.
func wantKind(t *testing.T, err error, kind errors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("got nil error, want kind %s", kind)
	}
	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("got %T (%v), want *errors.Error", err, err)
	}
	if e.Kind != kind {
		t.Fatalf("got kind %s (%v), want %s", e.Kind, e, kind)
	}
}

func TestEncodeReportsBytesUsed(t *testing.T) {
	v := testOuter{Name: "a", Inner: testInner{X: 1, Y: 2}}

	buf := make([]byte, 256)
	n, err := Encode[testOuter](outerSchema, v, buf)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if n <= 0 || n > len(buf) {
		t.Fatalf("Encode() = %d bytes, want within (0, %d]", n, len(buf))
	}

	var out testOuter
	if err := Decode[testOuter](outerSchema, buf[:n], &out); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if out != v {
		t.Errorf("round trip = %+v, want %+v", out, v)
	}
}

func TestEncodeExactCapacity(t *testing.T) {
	v := testOuter{Name: "a", Inner: testInner{X: 1, Y: 2}}

	big := make([]byte, 256)
	n, err := Encode[testOuter](outerSchema, v, big)
	if err != nil {
		t.Fatalf("sizing Encode() error = %v", err)
	}

	exact := make([]byte, n)
	got, err := Encode[testOuter](outerSchema, v, exact)
	if err != nil {
		t.Fatalf("Encode() into exact-size buffer error = %v", err)
	}
	if got != n {
		t.Errorf("Encode() = %d bytes, want %d", got, n)
	}
}

func TestEncodeBufferTooSmall(t *testing.T) {
	v := testOuter{Name: "a", Inner: testInner{X: 1, Y: 2}}

	big := make([]byte, 256)
	n, err := Encode[testOuter](outerSchema, v, big)
	if err != nil {
		t.Fatalf("sizing Encode() error = %v", err)
	}

	short := make([]byte, n-1)
	_, err = Encode[testOuter](outerSchema, v, short)
	wantKind(t, err, errors.KindBufferTooSmall)
}

func TestDecodeTruncatedInput(t *testing.T) {
	v := testOuter{Name: "abc", Inner: testInner{X: 100000, Y: -7}}

	buf := make([]byte, 256)
	n, err := Encode[testOuter](outerSchema, v, buf)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	// Every non-zero trailing truncation must fail, never decode a
	// silent wrong value.
	for cut := 1; cut < n; cut++ {
		var out testOuter
		if err := Decode[testOuter](outerSchema, buf[:n-cut], &out); err == nil {
			t.Errorf("Decode() of %d/%d bytes succeeded, want error", n-cut, n)
		}
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	var out testOuter
	err := Decode[testOuter](outerSchema, nil, &out)
	wantKind(t, err, errors.KindTruncatedInput)
}
