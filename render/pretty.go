package render

import (
	"context"
	"io"

	"github.com/wippyai/debug-renderer/typeinfo"
	"github.com/wippyai/debug-renderer/value"
)

// PrettyPrinter takes over rendering for the types it matches.
// Printers registered later win. The raw option bypasses all of them.
type PrettyPrinter interface {
	Matches(t *typeinfo.Type) bool
	Print(ctx context.Context, c *Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int, addr uint64, recurse int) error
}

// RegisterPrinter adds a pretty-printer to this context.
func (c *Context) RegisterPrinter(p PrettyPrinter) {
	c.printers = append(c.printers, p)
}

func (c *Context) lookupPrinter(t *typeinfo.Type) PrettyPrinter {
	for i := len(c.printers) - 1; i >= 0; i-- {
		if c.printers[i].Matches(t) {
			return c.printers[i]
		}
	}
	return nil
}

// PrinterFunc adapts a match predicate and a print function into a
// PrettyPrinter.
type PrinterFunc struct {
	Match func(t *typeinfo.Type) bool
	Fn    func(ctx context.Context, c *Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int, addr uint64, recurse int) error
}

func (p PrinterFunc) Matches(t *typeinfo.Type) bool { return p.Match != nil && p.Match(t) }

func (p PrinterFunc) Print(ctx context.Context, c *Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int, addr uint64, recurse int) error {
	return p.Fn(ctx, c, w, t, v, embOff, addr, recurse)
}
