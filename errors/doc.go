// Package errors provides structured error types for the debug-renderer library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, target address, type name, and
// cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRead, errors.KindReadFailed).
//		Addr(0x7fff0010).
//		Detail("short read: got %d of %d bytes", n, want).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ReadFailed(addr, cause)
//	err := errors.InvalidRadix(1, "input radix must be at least 2")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
