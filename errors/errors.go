package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRead      Phase = "read"      // target memory access
	PhaseFormat    Phase = "format"    // numeric formatting
	PhaseTranscode Phase = "transcode" // character conversion
	PhaseParse     Phase = "parse"     // string literal parsing
	PhaseRender    Phase = "render"    // value dispatch
	PhaseOptions   Phase = "options"   // option/radix mutation
)

// Kind categorizes the error
type Kind string

const (
	KindReadFailed          Kind = "read_failed"
	KindMalformedEscape     Kind = "malformed_escape"
	KindInvalidRadix        Kind = "invalid_radix"
	KindInappropriateString Kind = "inappropriate_string"
	KindOutOfRange          Kind = "out_of_range"
	KindUnhandledTypeCode   Kind = "unhandled_type_code"
	KindInvalidData         Kind = "invalid_data"
	KindOutOfBounds         Kind = "out_of_bounds"
	KindUnsupported         Kind = "unsupported"
	KindCancelled           Kind = "cancelled"
)

// Error is the structured error type used throughout the renderer
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	TypeName string
	Addr     uint64
	HasAddr  bool
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
	} else if e.HasAddr {
		b.WriteString(fmt.Sprintf(" at 0x%x", e.Addr))
	}

	if e.TypeName != "" {
		b.WriteString(": type ")
		b.WriteString(e.TypeName)
	}

	if e.Detail != "" {
		if e.TypeName != "" {
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

// TypeName sets the target type's display name
func (b *Builder) TypeName(t string) *Builder {
	b.err.TypeName = t
	return b
}

// Addr sets the target address the error refers to
func (b *Builder) Addr(addr uint64) *Builder {
	b.err.Addr = addr
	b.err.HasAddr = true
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

// ReadFailed creates a memory read error at the given address
func ReadFailed(addr uint64, cause error) *Error {
	return &Error{
		Phase:   PhaseRead,
		Kind:    KindReadFailed,
		Addr:    addr,
		HasAddr: true,
		Detail:  "cannot access target memory",
		Cause:   cause,
	}
}

// MalformedEscape creates an escape-sequence parse error
func MalformedEscape(seq string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindMalformedEscape,
		Detail: fmt.Sprintf("malformed escape sequence %q", seq),
	}
}

// InvalidRadix creates an invalid radix error; the prior radix stays in effect
func InvalidRadix(value int, detail string) *Error {
	return &Error{
		Phase:  PhaseOptions,
		Kind:   KindInvalidRadix,
		Detail: detail,
		Value:  value,
	}
}

// InappropriateString reports a string read on a type with no textual elements
func InappropriateString(typeName string) *Error {
	return &Error{
		Phase:    PhaseRender,
		Kind:     KindInappropriateString,
		TypeName: typeName,
		Detail:   "not a string or array of characters",
	}
}

// OutOfRange reports a narrowing conversion that changed the value
func OutOfRange(value any, targetType string) *Error {
	return &Error{
		Phase:    PhaseRender,
		Kind:     KindOutOfRange,
		TypeName: targetType,
		Detail:   fmt.Sprintf("value %v does not fit in %s", value, targetType),
		Value:    value,
	}
}

// UnhandledTypeCode reports an internal invariant violation in the dispatcher
func UnhandledTypeCode(code fmt.Stringer) *Error {
	return &Error{
		Phase:  PhaseRender,
		Kind:   KindUnhandledTypeCode,
		Detail: fmt.Sprintf("unhandled type code %s", code),
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

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Cancelled wraps a context cancellation observed at a quiescent point
func Cancelled(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCancelled,
		Detail: "cancelled",
		Cause:  cause,
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
