package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/wippyai/debug-renderer/errors"
	"github.com/wippyai/debug-renderer/typeinfo"
	"github.com/wippyai/debug-renderer/value"
)

// printArray walks the elements of a bounded array, collapsing runs
// of identical elements above the repeat threshold. Cancellation is
// observed between elements.
func (c *Context) printArray(ctx context.Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int, addr uint64, recurse int) error {
	elem := t.Target
	eltLen := elem.Resolve().Length
	count := t.ElemCount()
	d := c.Lang.Decor()

	if _, err := io.WriteString(w, d.ArrayStart); err != nil {
		return err
	}
	var printed uint
	for i := int64(0); i < count; {
		if err := ctx.Err(); err != nil {
			return errors.Cancelled(errors.PhaseRender, err)
		}
		if c.Opts.MaxElements > 0 && printed >= c.Opts.MaxElements {
			if _, err := io.WriteString(w, "..."); err != nil {
				return err
			}
			break
		}
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if c.Opts.PrettyArrays {
			if _, err := fmt.Fprintf(w, "\n%s", strings.Repeat(" ", 2+2*recurse)); err != nil {
				return err
			}
		}
		if c.Opts.PrintIndexes {
			if _, err := fmt.Fprintf(w, "[%s] = ", c.indexLabel(t, i)); err != nil {
				return err
			}
		}

		off := embOff + int(i)*eltLen
		_, fetchErr := v.Fetch(c.Mem, off, eltLen)
		reps := int64(1)
		if fetchErr == nil {
			reps = c.countReps(v, embOff, eltLen, i, count)
		}
		if err := c.ValPrint(ctx, w, elem, v, off, addr+uint64(int(i)*eltLen), recurse+1); err != nil {
			return err
		}
		if c.Opts.RepeatThreshold > 0 && reps > int64(c.Opts.RepeatThreshold) {
			if _, err := fmt.Fprintf(w, " <repeats %d times>", reps); err != nil {
				return err
			}
			i += reps
			printed += c.Opts.RepeatThreshold
		} else {
			i++
			printed++
		}
		if fetchErr != nil {
			// The element printer already surfaced the failure; the
			// rest of the array is behind the same bad read.
			break
		}
	}
	if c.Opts.PrettyArrays {
		if _, err := fmt.Fprintf(w, "\n%s", strings.Repeat(" ", 2*recurse)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, d.ArrayEnd)
	return err
}

// countReps measures the run of elements equal to element i. A fetch
// failure just ends the run.
func (c *Context) countReps(v *value.Value, embOff, eltLen int, i, count int64) int64 {
	cur, err := v.Fetch(c.Mem, embOff+int(i)*eltLen, eltLen)
	if err != nil {
		return 1
	}
	reps := int64(1)
	for i+reps < count {
		next, err := v.Fetch(c.Mem, embOff+int(i+reps)*eltLen, eltLen)
		if err != nil || !bytes.Equal(cur, next) {
			break
		}
		reps++
	}
	return reps
}

// indexLabel renders one array index. Enum-indexed arrays label
// positions with the literal at that position.
func (c *Context) indexLabel(t *typeinfo.Type, i int64) string {
	if idx := t.Index; idx != nil {
		r := idx.Resolve()
		if r.Code == typeinfo.CodeEnum && i < int64(len(r.Fields)) {
			return r.Fields[i].Name
		}
		if r.HasBounds {
			return fmt.Sprintf("%d", r.Low+i)
		}
	}
	return fmt.Sprintf("%d", i)
}
