package render

import (
	"context"
	"io"

	"github.com/wippyai/debug-renderer/bytecodec"
	"github.com/wippyai/debug-renderer/errors"
	"github.com/wippyai/debug-renderer/target"
	"github.com/wippyai/debug-renderer/transcode"
	"github.com/wippyai/debug-renderer/typeinfo"
	"github.com/wippyai/debug-renderer/value"
)

// GetString fetches the bytes of a string value. The type must be an
// array or pointer whose element classifies as a character kind, or a
// bare character type; anything else is an inappropriate-string error.
//
// For arrays the declared bound limits the read, except that an
// explicit length > 0 overrides it. That override deliberately reads
// past a declared bound of 1, preserving the trailing-array idiom
// where the real data follows the struct.
func (c *Context) GetString(ctx context.Context, v *value.Value, length int) (data []byte, elem *typeinfo.Type, kind typeinfo.CharKind, err error) {
	t := v.Type.Resolve()
	elem, ok := typeinfo.StringElem(t)
	if !ok {
		return nil, nil, 0, errors.InappropriateString(v.Type.String())
	}
	kind, _ = typeinfo.ClassifyChar(elem)
	width := kind.Width()

	switch t.Code {
	case typeinfo.CodeArray, typeinfo.CodeChar:
		count := t.ElemCount()
		if t.Code == typeinfo.CodeChar {
			count = 1
		}
		if length > 0 {
			count = int64(length)
		}
		units, uerr := bytecodec.LongestToInt(count)
		if uerr != nil {
			return nil, nil, 0, uerr
		}
		if contents := v.Contents(); contents != nil {
			// Locally held values are copied directly, bounded by the
			// declared array size unless the override asks for more
			// than the buffer holds.
			off := v.EmbeddedOffset()
			end := off + units*width
			if end > len(contents) {
				if length > 0 {
					return nil, nil, 0, errors.OutOfBounds(errors.PhaseRead, nil, end, len(contents))
				}
				end = len(contents)
			}
			return contents[off:end], elem, kind, nil
		}
		addr, hasAddr := v.Addr()
		if !hasAddr {
			return nil, nil, 0, errors.New(errors.PhaseRead, errors.KindReadFailed).
				Detail("value has no contents (%s)", v.Location()).
				Build()
		}
		res, rerr := target.ReadString(ctx, c.Mem, addr+uint64(v.EmbeddedOffset()), units, width, c.fetchLimit())
		return res.Data, elem, kind, rerr
	case typeinfo.CodePointer:
		buf, ferr := v.Fetch(c.Mem, v.EmbeddedOffset(), t.Length)
		if ferr != nil {
			return nil, nil, 0, ferr
		}
		ptr := bytecodec.ExtractAddress(buf, t.Order(c.Arch))
		if length <= 0 {
			length = -1
		}
		res, rerr := target.ReadString(ctx, c.Mem, ptr, length, width, c.fetchLimit())
		return res.Data, elem, kind, rerr
	default:
		return nil, nil, 0, errors.InappropriateString(v.Type.String())
	}
}

func (c *Context) fetchLimit() uint {
	return c.Opts.MaxElements
}

// printStringValue renders a character array as a quoted literal.
func (c *Context) printStringValue(ctx context.Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int) error {
	elem, _ := typeinfo.StringElem(t)
	kind, _ := typeinfo.ClassifyChar(elem)
	width := kind.Width()
	count := t.ElemCount()

	data, err := v.Fetch(c.Mem, embOff, int(count)*width)
	if err != nil && len(data) == 0 {
		return printError(w, err)
	}
	order := elem.Order(c.Arch)
	clamped := false
	if c.Opts.MaxElements > 0 && uint(len(data)/width) > c.Opts.MaxElements {
		data = data[:int(c.Opts.MaxElements)*width]
		clamped = true
	}
	if c.Opts.StopAtNull {
		if cut, found := cutAtZeroUnit(data, width); found {
			data = cut
			clamped = false
		}
	}
	perr := transcode.PrintString(ctx, w, data, kind, order, c.Enc, transcode.PrintOptions{
		Quote:           c.Lang.Decor().StringQuote,
		RepeatThreshold: c.Opts.RepeatThreshold,
		MaxElements:     c.Opts.MaxElements,
		DropTerminator:  true,
		ForceEllipsis:   clamped,
	})
	if perr != nil {
		return perr
	}
	if err != nil {
		// Partial fetch: the literal covers what was readable.
		return printError(w, err)
	}
	return nil
}

// printCString renders the text behind a character pointer.
func (c *Context) printCString(ctx context.Context, w io.Writer, addr uint64, elem *typeinfo.Type, kind typeinfo.CharKind) error {
	res, err := target.ReadString(ctx, c.Mem, addr, -1, kind.Width(), c.fetchLimit())
	if err != nil && len(res.Data) == 0 {
		return printError(w, err)
	}
	perr := transcode.PrintString(ctx, w, res.Data, kind, elem.Order(c.Arch), c.Enc, transcode.PrintOptions{
		Quote:           c.Lang.Decor().StringQuote,
		RepeatThreshold: c.Opts.RepeatThreshold,
		MaxElements:     c.Opts.MaxElements,
		ForceEllipsis:   res.Truncated,
	})
	if perr != nil {
		return perr
	}
	if err != nil {
		return printError(w, err)
	}
	return nil
}

func cutAtZeroUnit(data []byte, width int) ([]byte, bool) {
	for i := 0; i+width <= len(data); i += width {
		zero := true
		for j := 0; j < width; j++ {
			if data[i+j] != 0 {
				zero = false
				break
			}
		}
		if zero {
			return data[:i+width], true
		}
	}
	return data, false
}
