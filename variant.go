package schemapack

import (
	"github.com/wippyai/schemapack/errors"
	"github.com/wippyai/schemapack/wire"
)

// Variant2 is a tagged union over two alternatives, represented as
// one pointer field per case. Exactly one non-nil pointer is the
// active alternative; all nil means no active case, which is an
// encode error. Use the setters to switch cases atomically.
type Variant2[A, B any] struct {
	A *A
	B *B
}

// SetA makes A the active alternative.
func (v *Variant2[A, B]) SetA(a A) {
	v.A = &a
	v.B = nil
}

// SetB makes B the active alternative.
func (v *Variant2[A, B]) SetB(b B) {
	v.A = nil
	v.B = &b
}

// VariantOf2 returns the resolver for Variant2[A, B]. Encode writes
// the active alternative directly, with no extra discriminant beyond
// what its own wire shape implies. Decode peeks the wire tag and
// tests alternatives in declared order; the first whose tag matches
// consumes the value, and no match fails with no_matching_variant.
//
// Two alternatives sharing a wire shape (two composites both
// appearing as maps) are not disambiguated further: the first
// declared always wins. Declared order is the tie-break policy.
func VariantOf2[A, B any](ha Handler[A], hb Handler[B]) Handler[Variant2[A, B]] {
	return variant2Handler[A, B]{ha: ha, hb: hb}
}

type variant2Handler[A, B any] struct {
	ha Handler[A]
	hb Handler[B]
}

// Tag is Invalid: a variant has no single wire shape of its own, so
// it cannot itself be an alternative of an enclosing variant.
func (variant2Handler[A, B]) Tag() wire.Tag { return wire.TagInvalid }

func (h variant2Handler[A, B]) Write(w *wire.Writer, v Variant2[A, B]) error {
	switch {
	case v.A != nil:
		return h.ha.Write(w, *v.A)
	case v.B != nil:
		return h.hb.Write(w, *v.B)
	}
	return errors.NoActiveCase(nil, typeName[Variant2[A, B]]())
}

func (h variant2Handler[A, B]) Read(r *wire.Reader, into *Variant2[A, B]) error {
	tag, err := r.PeekTag()
	if err != nil {
		return err
	}
	switch {
	case h.ha.Tag().Matches(tag):
		if into.A == nil {
			into.A = new(A)
		}
		into.B = nil
		return h.ha.Read(r, into.A)
	case h.hb.Tag().Matches(tag):
		if into.B == nil {
			into.B = new(B)
		}
		into.A = nil
		return h.hb.Read(r, into.B)
	}
	return errors.NoMatchingVariant(nil, typeName[Variant2[A, B]](), tag.String())
}

// Variant3 is a tagged union over three alternatives; see Variant2.
type Variant3[A, B, C any] struct {
	A *A
	B *B
	C *C
}

// SetA makes A the active alternative.
func (v *Variant3[A, B, C]) SetA(a A) {
	v.A = &a
	v.B = nil
	v.C = nil
}

// SetB makes B the active alternative.
func (v *Variant3[A, B, C]) SetB(b B) {
	v.A = nil
	v.B = &b
	v.C = nil
}

// SetC makes C the active alternative.
func (v *Variant3[A, B, C]) SetC(c C) {
	v.A = nil
	v.B = nil
	v.C = &c
}

// VariantOf3 returns the resolver for Variant3[A, B, C]; resolution
// rules are those of VariantOf2 extended to three declared
// alternatives.
func VariantOf3[A, B, C any](ha Handler[A], hb Handler[B], hc Handler[C]) Handler[Variant3[A, B, C]] {
	return variant3Handler[A, B, C]{ha: ha, hb: hb, hc: hc}
}

type variant3Handler[A, B, C any] struct {
	ha Handler[A]
	hb Handler[B]
	hc Handler[C]
}

func (variant3Handler[A, B, C]) Tag() wire.Tag { return wire.TagInvalid }

func (h variant3Handler[A, B, C]) Write(w *wire.Writer, v Variant3[A, B, C]) error {
	switch {
	case v.A != nil:
		return h.ha.Write(w, *v.A)
	case v.B != nil:
		return h.hb.Write(w, *v.B)
	case v.C != nil:
		return h.hc.Write(w, *v.C)
	}
	return errors.NoActiveCase(nil, typeName[Variant3[A, B, C]]())
}

func (h variant3Handler[A, B, C]) Read(r *wire.Reader, into *Variant3[A, B, C]) error {
	tag, err := r.PeekTag()
	if err != nil {
		return err
	}
	switch {
	case h.ha.Tag().Matches(tag):
		if into.A == nil {
			into.A = new(A)
		}
		into.B, into.C = nil, nil
		return h.ha.Read(r, into.A)
	case h.hb.Tag().Matches(tag):
		if into.B == nil {
			into.B = new(B)
		}
		into.A, into.C = nil, nil
		return h.hb.Read(r, into.B)
	case h.hc.Tag().Matches(tag):
		if into.C == nil {
			into.C = new(C)
		}
		into.A, into.B = nil, nil
		return h.hc.Read(r, into.C)
	}
	return errors.NoMatchingVariant(nil, typeName[Variant3[A, B, C]](), tag.String())
}
