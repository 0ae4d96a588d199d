package render

import (
	"strconv"

	"go.uber.org/zap"

	debugrenderer "github.com/wippyai/debug-renderer"
	"github.com/wippyai/debug-renderer/bytecodec"
	"github.com/wippyai/debug-renderer/errors"
	"github.com/wippyai/debug-renderer/transcode"
)

// Options holds the formatting knobs. The zero value is not the
// default configuration; start from DefaultOptions.
type Options struct {
	// PrettyArrays breaks array elements onto indented lines.
	PrettyArrays bool
	// PrettyStructs breaks struct fields onto indented lines.
	PrettyStructs bool
	// Vtable prints virtual table pointers inside objects.
	Vtable bool
	// Unions prints union members; off renders unions as {...}.
	Unions bool
	// Addresses prints pointer values and reference addresses.
	Addresses bool
	// Object looks up the dynamic type of polymorphic objects.
	Object bool
	// MaxElements caps printed array elements and string characters.
	// Zero means unlimited.
	MaxElements uint
	// RepeatThreshold collapses longer runs of equal elements into
	// <repeats N times>. Zero disables compression.
	RepeatThreshold uint
	// OutputFormat is the radix-derived default format letter, set
	// through Context.SetOutputRadix.
	OutputFormat byte
	// Format is the per-command format letter and wins over
	// OutputFormat. Zero means no explicit format.
	Format byte
	// StopAtNull stops array printing at the first zero element.
	StopAtNull bool
	// PrintIndexes prints [i] = before each array element.
	PrintIndexes bool
	// DerefRef prints the referent of references after the address.
	DerefRef bool
	// Static prints static members of structs.
	Static bool
	// PascalStatic prints static members of Pascal objects. Languages
	// without that member form ignore it.
	PascalStatic bool
	// Raw bypasses registered pretty-printers.
	Raw bool
	// Summary abbreviates non-scalar values to "...".
	Summary bool
	// PrintSymbol resolves addresses to symbol names.
	PrintSymbol bool
	// MaxDepth bounds aggregate nesting before the deep ellipsis.
	MaxDepth int
	// Finish prints the value at all; off suppresses leaf output.
	Finish bool
}

// DefaultOptions returns the canonical defaults.
func DefaultOptions() Options {
	return Options{
		Unions:          true,
		Addresses:       true,
		MaxElements:     200,
		RepeatThreshold: 10,
		Static:          true,
		PascalStatic:    true,
		PrintSymbol:     true,
		MaxDepth:        20,
		Finish:          true,
	}
}

// Context is one renderer instance: options, radix pair, language,
// target access and the pretty-printer registry. Commands mutate a
// Context instead of process-wide state, so two sessions can render
// with different settings concurrently.
type Context struct {
	Opts Options
	Lang Language
	Mem  debugrenderer.TargetMemory
	Arch bytecodec.ByteOrder
	Enc  *transcode.Encodings
	Syms debugrenderer.SymbolResolver

	log         *zap.Logger
	printers    []PrettyPrinter
	inputRadix  int
	outputRadix int
}

// ContextOption configures a Context at construction.
type ContextOption func(*Context)

// WithMemory attaches target memory for address-located values.
func WithMemory(mem debugrenderer.TargetMemory) ContextOption {
	return func(c *Context) { c.Mem = mem }
}

// WithArch sets the architecture default byte order.
func WithArch(order bytecodec.ByteOrder) ContextOption {
	return func(c *Context) { c.Arch = order }
}

// WithCharsets resolves target charsets for string rendering.
func WithCharsets(p transcode.CharsetProvider) ContextOption {
	return func(c *Context) { c.Enc = transcode.NewEncodings(p) }
}

// WithSymbols attaches a symbol resolver for address printing.
func WithSymbols(s debugrenderer.SymbolResolver) ContextOption {
	return func(c *Context) { c.Syms = s }
}

// WithLogger replaces the default no-op logger.
func WithLogger(l *zap.Logger) ContextOption {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// NewContext builds a renderer with default options, input radix 10
// and output radix 10.
func NewContext(lang Language, opts ...ContextOption) *Context {
	c := &Context{
		Opts:        DefaultOptions(),
		Lang:        lang,
		Arch:        bytecodec.LittleEndian,
		log:         zap.NewNop(),
		inputRadix:  10,
		outputRadix: 10,
	}
	for _, o := range opts {
		o(c)
	}
	if c.Enc == nil {
		c.Enc = transcode.NewEncodings(nil)
	}
	return c
}

// InputRadix returns the radix used to parse numeric input.
func (c *Context) InputRadix() int { return c.inputRadix }

// OutputRadix returns the radix numeric output defaults to.
func (c *Context) OutputRadix() int { return c.outputRadix }

// SetInputRadix accepts any radix of at least 2. On error the prior
// value stays in effect.
func (c *Context) SetInputRadix(r int) error {
	if r < 2 {
		return errors.InvalidRadix(r, "input radix must be at least 2")
	}
	c.inputRadix = r
	return nil
}

// SetOutputRadix accepts 8, 10 or 16 and adjusts the derived default
// format letter. On error the prior value stays in effect.
func (c *Context) SetOutputRadix(r int) error {
	switch r {
	case 10:
		c.Opts.OutputFormat = 0
	case 16:
		c.Opts.OutputFormat = 'x'
	case 8:
		c.Opts.OutputFormat = 'o'
	default:
		return errors.InvalidRadix(r, "output radix must be 8, 10 or 16")
	}
	c.outputRadix = r
	return nil
}

// SetRadix sets both radixes, like the combined radix command.
func (c *Context) SetRadix(r int) error {
	if err := c.SetOutputRadix(r); err != nil {
		return err
	}
	return c.SetInputRadix(r)
}

// ParseInput parses a numeric literal in the input radix.
func (c *Context) ParseInput(s string) (int64, error) {
	v, err := strconv.ParseInt(s, c.inputRadix, 64)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseParse, errors.KindInvalidData, err, "parse integer "+strconv.Quote(s))
	}
	return v, nil
}
