package transcode

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/wippyai/debug-renderer/bytecodec"
	"github.com/wippyai/debug-renderer/errors"
	"github.com/wippyai/debug-renderer/typeinfo"
)

// PrintOptions controls string rendering.
type PrintOptions struct {
	// Quote surrounds printed runs, normally '"'.
	Quote byte
	// RepeatThreshold is the run length above which a run collapses
	// into 'x' <repeats N times>. Zero disables compression.
	RepeatThreshold uint
	// MaxElements caps the number of characters printed. Zero means
	// unlimited.
	MaxElements uint
	// DropTerminator removes one trailing NUL character before
	// printing, matching C string conventions.
	DropTerminator bool
	// ForceEllipsis appends "..." even when nothing was truncated,
	// used when the reader already clamped the string.
	ForceEllipsis bool
}

type run struct {
	unit  Unit
	count uint
}

// PrintString renders target bytes holding characters of the given
// kind. Equal adjacent characters collapse above the repeat threshold,
// malformed input renders as <incomplete sequence ...>, and output is
// cut with a trailing "..." once the element budget is spent.
func PrintString(ctx context.Context, w io.Writer, data []byte, kind typeinfo.CharKind, order bytecodec.ByteOrder, enc *Encodings, opts PrintOptions) error {
	if opts.Quote == 0 {
		opts.Quote = '"'
	}
	if opts.DropTerminator && !opts.ForceEllipsis {
		width := kind.Width()
		if len(data) >= width && allZero(data[len(data)-width:]) {
			data = data[:len(data)-width]
		}
	}
	if len(data) == 0 {
		_, err := fmt.Fprintf(w, "%c%c", opts.Quote, opts.Quote)
		return err
	}

	runs, err := collectRuns(ctx, data, kind, order, enc)
	if err != nil {
		return err
	}

	p := stringPrinter{w: w, quote: opts.Quote}
	var printed uint
	truncated := false
	for _, r := range runs {
		if opts.MaxElements > 0 && printed >= opts.MaxElements {
			truncated = true
			break
		}
		switch {
		case r.unit.Result == ResultIncomplete:
			if err := p.incomplete(r.unit); err != nil {
				return err
			}
		case opts.RepeatThreshold > 0 && r.count > opts.RepeatThreshold:
			if err := p.repeats(r.unit, r.count); err != nil {
				return err
			}
			printed += opts.RepeatThreshold
		default:
			n := r.count
			if opts.MaxElements > 0 && printed+n > opts.MaxElements {
				n = opts.MaxElements - printed
				truncated = true
			}
			if err := p.literal(r.unit, n); err != nil {
				return err
			}
			printed += n
		}
	}
	if err := p.close(); err != nil {
		return err
	}
	if truncated || opts.ForceEllipsis {
		if _, err := io.WriteString(w, "..."); err != nil {
			return err
		}
	}
	return nil
}

func collectRuns(ctx context.Context, data []byte, kind typeinfo.CharKind, order bytecodec.ByteOrder, enc *Encodings) ([]run, error) {
	it := NewIter(data, kind, order, enc)
	var runs []run
	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.Cancelled(errors.PhaseTranscode, err)
		}
		u := it.Next()
		if u.Result == ResultEOF {
			return runs, nil
		}
		if n := len(runs); n > 0 && sameUnit(runs[n-1].unit, u) {
			runs[n-1].count++
			continue
		}
		runs = append(runs, run{unit: u, count: 1})
	}
}

func sameUnit(a, b Unit) bool {
	return a.Result == b.Result && a.Result == ResultOK &&
		a.Rune == b.Rune && bytes.Equal(a.Bytes, b.Bytes)
}

// stringPrinter tracks quoting state across the segments of one
// string so adjacent literal runs share a quoted span.
type stringPrinter struct {
	w        io.Writer
	quote    byte
	esc      Escaper
	inQuotes bool
	wrote    bool
}

func (p *stringPrinter) literal(u Unit, n uint) error {
	if !p.inQuotes {
		if err := p.separator(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.w, "%c", p.quote); err != nil {
			return err
		}
		p.inQuotes = true
	}
	for i := uint(0); i < n; i++ {
		if err := p.esc.Emit(p.w, u, p.quote); err != nil {
			return err
		}
	}
	return nil
}

func (p *stringPrinter) repeats(u Unit, n uint) error {
	if err := p.closeQuotes(); err != nil {
		return err
	}
	if err := p.separator(); err != nil {
		return err
	}
	if _, err := io.WriteString(p.w, "'"); err != nil {
		return err
	}
	p.esc.Reset()
	if err := p.esc.Emit(p.w, u, '\''); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w, "' <repeats %d times>", n)
	return err
}

func (p *stringPrinter) incomplete(u Unit) error {
	if err := p.closeQuotes(); err != nil {
		return err
	}
	if err := p.separator(); err != nil {
		return err
	}
	if _, err := io.WriteString(p.w, "<incomplete sequence "); err != nil {
		return err
	}
	p.esc.Reset()
	for _, b := range u.Bytes {
		if _, err := fmt.Fprintf(p.w, "\\%03o", b); err != nil {
			return err
		}
	}
	_, err := io.WriteString(p.w, ">")
	return err
}

func (p *stringPrinter) separator() error {
	if !p.wrote {
		p.wrote = true
		return nil
	}
	_, err := io.WriteString(p.w, ", ")
	return err
}

func (p *stringPrinter) closeQuotes() error {
	if !p.inQuotes {
		return nil
	}
	p.inQuotes = false
	p.esc.Reset()
	_, err := fmt.Fprintf(p.w, "%c", p.quote)
	return err
}

func (p *stringPrinter) close() error { return p.closeQuotes() }

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
