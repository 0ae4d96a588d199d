package render

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/debug-renderer/typeinfo"
	"github.com/wippyai/debug-renderer/value"
)

// ValuePrint renders a whole value, the top-level entry used by
// command handlers.
func (c *Context) ValuePrint(ctx context.Context, w io.Writer, v *value.Value) error {
	if v == nil || v.Type == nil {
		_, err := io.WriteString(w, "<no value>")
		return err
	}
	if !c.Opts.Finish {
		return nil
	}
	c.log.Debug("render value",
		zap.String("type", v.Type.String()),
		zap.Stringer("location", v.Location()),
	)
	return c.CommonValPrint(ctx, w, v, 0)
}

// CommonValPrint renders a value at the given recursion depth using
// the value's own type, embedded offset and address.
func (c *Context) CommonValPrint(ctx context.Context, w io.Writer, v *value.Value, recurse int) error {
	addr, _ := v.Addr()
	return c.ValPrint(ctx, w, v.Type, v, v.EmbeddedOffset(), addr, recurse)
}

// ValPrint is the dispatcher. The checks run in a fixed order: stub
// types, optimized-out and not-saved values, synthetic pointers,
// unavailable bytes, registered pretty-printers, summary mode, the
// depth cap, and finally the language's own printer.
func (c *Context) ValPrint(ctx context.Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int, addr uint64, recurse int) error {
	if t == nil {
		_, err := io.WriteString(w, "<unknown type>")
		return err
	}
	real := t.Resolve()
	if real.Stub {
		_, err := io.WriteString(w, "<incomplete type>")
		return err
	}
	length := real.Length

	if v.BitsAnyOptimizedOut(embOff*8, length*8) {
		marker := "<optimized out>"
		if v.Location() == value.LocRegister {
			marker = "<not saved>"
		}
		_, err := io.WriteString(w, marker)
		return err
	}
	if v.BytesAnySynthetic(embOff, length) && !real.Code.IsReference() {
		_, err := io.WriteString(w, "<synthetic pointer>")
		return err
	}
	if !v.BytesAvailable(embOff, length) {
		_, err := io.WriteString(w, "<unavailable>")
		return err
	}

	if !c.Opts.Raw {
		if p := c.lookupPrinter(real); p != nil {
			err := p.Print(ctx, c, w, t, v, embOff, addr, recurse)
			if err == nil {
				return nil
			}
			c.log.Debug("pretty-printer failed, falling back",
				zap.String("type", real.String()), zap.Error(err))
		}
	}

	if c.Opts.Summary && !real.Code.IsScalar() {
		_, err := io.WriteString(w, "...")
		return err
	}

	if ell := c.Lang.StructTooDeepEllipsis(); ell != "" &&
		recurse >= c.Opts.MaxDepth &&
		!real.Code.IsScalar() && !c.Lang.IsStringType(t) {
		_, err := io.WriteString(w, ell)
		return err
	}

	return c.Lang.ValPrint(ctx, c, w, t, v, embOff, addr, recurse)
}

// printError emits the partial-output error marker used when a leaf
// cannot fetch its bytes.
func printError(w io.Writer, err error) error {
	_, werr := fmt.Fprintf(w, "<error: %v>", err)
	return werr
}
