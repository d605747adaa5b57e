// Package errors provides structured error types for the schemapack library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/wire type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
//		Path("report", "groups", "name").
//		GoType("string").
//		WireType("int").
//		Detail("expected a string value").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseDecode, path, "string", "int")
//	err := errors.ArrayLengthMismatch(errors.PhaseDecode, path, 4, 7)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
