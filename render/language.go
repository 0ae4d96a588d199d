package render

import (
	"context"
	"io"

	"github.com/wippyai/debug-renderer/typeinfo"
	"github.com/wippyai/debug-renderer/value"
)

// Decorations are the literal fragments a language contributes to
// rendered values.
type Decorations struct {
	ArrayStart    string
	ArrayEnd      string
	ComplexPrefix string
	ComplexInfix  string
	ComplexSuffix string
	VoidName      string
	TrueName      string
	FalseName     string
	StringQuote   byte
	CharQuote     byte
}

// OpPrint describes how a language spells an operator when printing
// type and member expressions.
type OpPrint struct {
	Text       string
	Precedence int
	RightAssoc bool
}

// Language customizes rendering for one source language. The
// dispatcher consults it after the availability and depth checks;
// ValPrint handles language-specific codes and falls back to
// Context.GenericValPrint for the rest.
type Language interface {
	Name() string
	Decor() Decorations

	// StructTooDeepEllipsis is emitted when nesting exceeds the depth
	// cap. Empty disables the cap for this language.
	StructTooDeepEllipsis() string

	// IsStringType reports whether values of this type render as
	// string literals rather than element by element.
	IsStringType(t *typeinfo.Type) bool

	// Op looks up the print form of a named operator. Value rendering
	// does not consult the table; it serves expression printing built
	// on top of the renderer.
	Op(name string) (OpPrint, bool)

	ValPrint(ctx context.Context, c *Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int, addr uint64, recurse int) error
}
