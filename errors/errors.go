package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSchema Phase = "schema" // schema construction
	PhaseEncode Phase = "encode" // value to wire
	PhaseDecode Phase = "decode" // wire to value
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch        Kind = "type_mismatch"
	KindExpectedMap         Kind = "expected_map"
	KindNoMatchingVariant   Kind = "no_matching_variant"
	KindBufferTooSmall      Kind = "buffer_too_small"
	KindTruncatedInput      Kind = "truncated_input"
	KindArrayLengthMismatch Kind = "array_length_mismatch"
	KindInvalidVariant      Kind = "invalid_variant"
	KindDuplicateField      Kind = "duplicate_field"
	KindInvalidData         Kind = "invalid_data"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	WireType string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.WireType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.WireType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", wire type ")
			b.WriteString(e.WireType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("wire type ")
			b.WriteString(e.WireType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WireType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WireType sets the wire type name
func (b *Builder) WireType(t string) *Builder {
	b.err.WireType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, wireType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Path:     path,
		GoType:   goType,
		WireType: wireType,
	}
}

// ExpectedMap creates an error for a composite decode whose wire head is not a map
func ExpectedMap(path []string, wireType string) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindExpectedMap,
		Path:     path,
		WireType: wireType,
		Detail:   "expected a map",
	}
}

// NoMatchingVariant creates an error for a variant decode where no alternative matched
func NoMatchingVariant(path []string, goType, wireType string) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindNoMatchingVariant,
		Path:     path,
		GoType:   goType,
		WireType: wireType,
		Detail:   "no alternative matches the wire tag",
	}
}

// BufferTooSmall creates an error for a fixed-capacity target smaller than the payload
func BufferTooSmall(phase Phase, path []string, size, capacity int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBufferTooSmall,
		Path:   path,
		Detail: fmt.Sprintf("payload spans %d bytes, capacity %d", size, capacity),
		Value:  size,
	}
}

// TruncatedInput creates an error for wire data that ends before a value completes
func TruncatedInput(path []string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncatedInput,
		Path:   path,
		Detail: "unexpected end of input",
		Cause:  cause,
	}
}

// ArrayLengthMismatch creates an error for a fixed-size array with the wrong element count
func ArrayLengthMismatch(phase Phase, path []string, want, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindArrayLengthMismatch,
		Path:   path,
		Detail: fmt.Sprintf("array of %d elements, want %d", got, want),
		Value:  got,
	}
}

// NoActiveCase creates an error for encoding a variant with no active alternative
func NoActiveCase(path []string, goType string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindInvalidVariant,
		Path:   path,
		GoType: goType,
		Detail: "variant has no active case",
	}
}

// DuplicateField creates an error for a schema declaring the same field name twice
func DuplicateField(goType, fieldName string) *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindDuplicateField,
		GoType: goType,
		Detail: fmt.Sprintf("field %q declared more than once", fieldName),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Prefix prepends a path segment to err's field path when err is a
// structured Error, so errors surface with the full path from the root
// value as they cross composite and collection frames.
func Prefix(err error, segment string) error {
	if e, ok := err.(*Error); ok {
		e.Path = append([]string{segment}, e.Path...)
	}
	return err
}
