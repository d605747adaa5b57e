package schemapack

import (
	"bytes"
	"testing"

	"github.com/wippyai/schemapack/errors"
	"github.com/wippyai/schemapack/wire"
)

type testInner struct {
	X int32
	Y int32
}

type testOuter struct {
	Name  string
	Inner testInner
}

var innerSchema = NewSchema(
	F("x", Int[int32](), func(v *testInner) *int32 { return &v.X }),
	F("y", Int[int32](), func(v *testInner) *int32 { return &v.Y }),
)

var outerSchema = NewSchema(
	F("name", String(), func(v *testOuter) *string { return &v.Name }),
	F("inner", innerSchema, func(v *testOuter) *testInner { return &v.Inner }),
)

func TestNestedCompositeRoundTrip(t *testing.T) {
	v := testOuter{Name: "a", Inner: testInner{X: 1, Y: 2}}

	buf := make([]byte, 128)
	n, err := Encode[testOuter](outerSchema, v, buf)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var out testOuter
	if err := Decode[testOuter](outerSchema, buf[:n], &out); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if out.Name != "a" {
		t.Errorf("Name = %q, want %q", out.Name, "a")
	}
	if out.Inner.X != 1 || out.Inner.Y != 2 {
		t.Errorf("Inner = %+v, want {X:1 Y:2}", out.Inner)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	v := testOuter{Name: "det", Inner: testInner{X: 3, Y: 4}}

	a := make([]byte, 128)
	na, err := Encode[testOuter](outerSchema, v, a)
	if err != nil {
		t.Fatalf("first Encode() error = %v", err)
	}
	b := make([]byte, 128)
	nb, err := Encode[testOuter](outerSchema, v, b)
	if err != nil {
		t.Fatalf("second Encode() error = %v", err)
	}
	if !bytes.Equal(a[:na], b[:nb]) {
		t.Errorf("two encodes of the same value differ: %x vs %x", a[:na], b[:nb])
	}
}

func TestDecodeUnknownKeyTolerance(t *testing.T) {
	// Hand-build a wire map carrying the schema's keys plus an extra
	// one, with a nested value the decoder must skip recursively.
	buf := make([]byte, 128)
	w := wire.NewWriter(buf)
	if err := w.WriteMapHeader(3); err != nil {
		t.Fatal(err)
	}
	mustWrite(t, w.WriteString("name"))
	mustWrite(t, w.WriteString("a"))
	mustWrite(t, w.WriteString("extra"))
	mustWrite(t, w.WriteArrayHeader(2))
	mustWrite(t, w.WriteInt(7))
	mustWrite(t, w.WriteString("skipped"))
	mustWrite(t, w.WriteString("inner"))
	if err := innerSchema.Write(w, testInner{X: 1, Y: 2}); err != nil {
		t.Fatal(err)
	}

	var out testOuter
	if err := Decode[testOuter](outerSchema, buf[:w.Len()], &out); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if out.Name != "a" || out.Inner.X != 1 || out.Inner.Y != 2 {
		t.Errorf("decoded %+v, want {Name:a Inner:{X:1 Y:2}}", out)
	}
}

func TestDecodeOverlongKeySkipped(t *testing.T) {
	// "a_key_much_longer_than_any_field" exceeds the schema's widest
	// field name, so its value is discarded without error.
	buf := make([]byte, 128)
	w := wire.NewWriter(buf)
	mustWrite(t, w.WriteMapHeader(2))
	mustWrite(t, w.WriteString("a_key_much_longer_than_any_field"))
	mustWrite(t, w.WriteInt(99))
	mustWrite(t, w.WriteString("name"))
	mustWrite(t, w.WriteString("kept"))

	var out testOuter
	if err := Decode[testOuter](outerSchema, buf[:w.Len()], &out); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if out.Name != "kept" {
		t.Errorf("Name = %q, want %q", out.Name, "kept")
	}
}

func TestDecodeMissingKeyKeepsDefault(t *testing.T) {
	buf := make([]byte, 128)
	w := wire.NewWriter(buf)
	mustWrite(t, w.WriteMapHeader(1))
	mustWrite(t, w.WriteString("name"))
	mustWrite(t, w.WriteString("only"))

	out := testOuter{Inner: testInner{X: -1, Y: -1}}
	if err := Decode[testOuter](outerSchema, buf[:w.Len()], &out); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if out.Name != "only" {
		t.Errorf("Name = %q, want %q", out.Name, "only")
	}
	if out.Inner.X != -1 || out.Inner.Y != -1 {
		t.Errorf("Inner = %+v, want prior {X:-1 Y:-1}", out.Inner)
	}
}

func TestDecodeKeyOrderIndependent(t *testing.T) {
	// Wire order reversed from declaration order still decodes.
	buf := make([]byte, 128)
	w := wire.NewWriter(buf)
	mustWrite(t, w.WriteMapHeader(2))
	mustWrite(t, w.WriteString("y"))
	mustWrite(t, w.WriteInt(20))
	mustWrite(t, w.WriteString("x"))
	mustWrite(t, w.WriteInt(10))

	var out testInner
	if err := Decode[testInner](innerSchema, buf[:w.Len()], &out); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if out.X != 10 || out.Y != 20 {
		t.Errorf("decoded %+v, want {X:10 Y:20}", out)
	}
}

func TestDecodeExpectedMap(t *testing.T) {
	buf := make([]byte, 16)
	w := wire.NewWriter(buf)
	mustWrite(t, w.WriteInt(42))

	var out testOuter
	err := Decode[testOuter](outerSchema, buf[:w.Len()], &out)
	wantKind(t, err, errors.KindExpectedMap)
}

func TestNewSchemaDuplicateFieldPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("NewSchema() with duplicate names did not panic")
		}
		e, ok := r.(*errors.Error)
		if !ok {
			t.Fatalf("panic value = %T (%v), want *errors.Error", r, r)
		}
		if e.Kind != errors.KindDuplicateField {
			t.Errorf("panic kind = %s, want %s", e.Kind, errors.KindDuplicateField)
		}
	}()

	NewSchema(
		F("x", Int[int32](), func(v *testInner) *int32 { return &v.X }),
		F("x", Int[int32](), func(v *testInner) *int32 { return &v.Y }),
	)
}

func mustWrite(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("wire write error = %v", err)
	}
}
