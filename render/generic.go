package render

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/wippyai/debug-renderer/bytecodec"
	"github.com/wippyai/debug-renderer/errors"
	"github.com/wippyai/debug-renderer/numfmt"
	"github.com/wippyai/debug-renderer/transcode"
	"github.com/wippyai/debug-renderer/typeinfo"
	"github.com/wippyai/debug-renderer/value"
)

// GenericValPrint renders the type codes whose form is shared across
// languages. Language printers delegate here after handling their own
// specials (strings, structs, unions).
func (c *Context) GenericValPrint(ctx context.Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int, addr uint64, recurse int) error {
	real := t.Resolve()
	switch real.Code {
	case typeinfo.CodeArray:
		if real.ElemCount() > 0 && real.Target != nil && real.Target.Resolve().Length > 0 {
			return c.printArray(ctx, w, real, v, embOff, addr, recurse)
		}
		// Zero-length and unbounded arrays decay to a pointer to the
		// first element.
		return c.printAddress(w, addr)
	case typeinfo.CodePointer:
		return c.printPointer(ctx, w, real, v, embOff)
	case typeinfo.CodeReference, typeinfo.CodeRValueReference:
		return c.printReference(ctx, w, real, v, embOff, recurse)
	case typeinfo.CodeMemberPointer, typeinfo.CodeMethodPointer, typeinfo.CodeSet:
		return c.printScalar(ctx, w, real, v, embOff)
	case typeinfo.CodeEnum:
		return c.printEnum(ctx, w, real, v, embOff)
	case typeinfo.CodeFlags:
		return c.printFlags(w, real, v, embOff)
	case typeinfo.CodeFunction, typeinfo.CodeMethod:
		if _, err := fmt.Fprintf(w, "{%s} ", real.String()); err != nil {
			return err
		}
		return c.PrintFunctionPointerAddress(w, addr)
	case typeinfo.CodeBool:
		return c.printBool(ctx, w, real, v, embOff)
	case typeinfo.CodeInt, typeinfo.CodeRange:
		return c.printScalar(ctx, w, real, v, embOff)
	case typeinfo.CodeChar:
		return c.printChar(ctx, w, real, v, embOff)
	case typeinfo.CodeFloat, typeinfo.CodeDecimalFloat:
		return c.printFloat(w, real, v, embOff)
	case typeinfo.CodeComplex:
		return c.printComplex(w, real, v, embOff)
	case typeinfo.CodeVoid:
		_, err := io.WriteString(w, c.Lang.Decor().VoidName)
		return err
	case typeinfo.CodeError:
		_, err := io.WriteString(w, "<error type>")
		return err
	case typeinfo.CodeUndef:
		_, err := io.WriteString(w, "<unknown type>")
		return err
	default:
		return errors.UnhandledTypeCode(real.Code)
	}
}

func (c *Context) fetch(t *typeinfo.Type, v *value.Value, embOff int) ([]byte, error) {
	return v.Fetch(c.Mem, embOff, t.Length)
}

// formatLetter resolves the effective format: the explicit per-command
// letter, then the radix-derived one, then plain decimal.
func (c *Context) formatLetter() byte {
	if c.Opts.Format != 0 {
		return c.Opts.Format
	}
	return c.Opts.OutputFormat
}

func (c *Context) printScalar(ctx context.Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int) error {
	buf, err := c.fetch(t, v, embOff)
	if err != nil {
		return printError(w, err)
	}
	order := t.Order(c.Arch)
	s, err := c.formatBytes(ctx, buf, order, !t.Unsigned, c.formatLetter())
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// formatBytes renders raw scalar bytes in one format letter. Zero
// means decimal in the type's signedness. The fixed-width letters
// b, h, w and g go through the host-integer formatter so they agree
// with the bitfield path.
func (c *Context) formatBytes(ctx context.Context, buf []byte, order bytecodec.ByteOrder, signed bool, format byte) (string, error) {
	switch format {
	case 0, 's':
		return numfmt.Decimal(ctx, buf, order, signed)
	case 'd':
		return numfmt.Decimal(ctx, buf, order, true)
	case 'u':
		return numfmt.Decimal(ctx, buf, order, false)
	case 'x':
		return numfmt.Hex(buf, order, false), nil
	case 'o':
		return numfmt.Octal(buf, order), nil
	case 't':
		return numfmt.Binary(buf, order, false), nil
	case 'b', 'h', 'w', 'g':
		return numfmt.Longest(format, true, bytecodec.ExtractSigned(buf, order))
	case 'a':
		return numfmt.Hex(buf, order, false), nil
	case 'f':
		return floatText(buf, order), nil
	case 'c':
		var sb strings.Builder
		var esc transcode.Escaper
		code := bytecodec.ExtractUnsigned(buf, order)
		sb.WriteByte('\'')
		if err := esc.EmitCode(&sb, code, typeinfo.CharNarrow, order, c.Enc, '\''); err != nil {
			return "", err
		}
		sb.WriteByte('\'')
		return sb.String(), nil
	default:
		return "", errors.Unsupported(errors.PhaseFormat, "format letter "+strconv.QuoteRune(rune(format)))
	}
}

func (c *Context) printPointer(ctx context.Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int) error {
	if f := c.Opts.Format; f != 0 && f != 's' {
		return c.printScalar(ctx, w, t, v, embOff)
	}
	buf, err := c.fetch(t, v, embOff)
	if err != nil {
		return printError(w, err)
	}
	ptr := bytecodec.ExtractAddress(buf, t.Order(c.Arch))
	pointee := t.Target
	if pointee != nil && pointee.Resolve().Code == typeinfo.CodeFunction {
		return c.PrintFunctionPointerAddress(w, ptr)
	}
	if err := c.printAddress(w, ptr); err != nil {
		return err
	}
	if c.Opts.PrintSymbol && c.Syms != nil {
		if err := c.printSymbol(w, ptr); err != nil {
			return err
		}
	}
	// Character pointers also show the text they point at.
	if pointee != nil && ptr != 0 {
		if kind, ok := typeinfo.ClassifyChar(pointee); ok && c.Mem != nil {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
			return c.printCString(ctx, w, ptr, pointee, kind)
		}
	}
	return nil
}

func (c *Context) printReference(ctx context.Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff, recurse int) error {
	buf, err := c.fetch(t, v, embOff)
	if err != nil {
		return printError(w, err)
	}
	ref := bytecodec.ExtractAddress(buf, t.Order(c.Arch))
	// Synthetic references have no meaningful address, so the @ADDR
	// prefix is skipped and the referent is printed directly.
	synthetic := v.BytesAnySynthetic(embOff, t.Length)
	if !synthetic {
		if c.Opts.Addresses {
			if _, err := fmt.Fprintf(w, "@0x%x", ref); err != nil {
				return err
			}
		}
		if !c.Opts.DerefRef {
			return nil
		}
		if c.Opts.Addresses {
			if _, err := io.WriteString(w, ": "); err != nil {
				return err
			}
		}
	}
	if t.Target == nil {
		_, err := io.WriteString(w, "???")
		return err
	}
	referent := value.AtAddress(t.Target, ref)
	return c.ValPrint(ctx, w, t.Target, referent, 0, ref, recurse+1)
}

func (c *Context) printEnum(ctx context.Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int) error {
	if c.formatLetter() != 0 {
		return c.printScalar(ctx, w, t, v, embOff)
	}
	buf, err := c.fetch(t, v, embOff)
	if err != nil {
		return printError(w, err)
	}
	order := t.Order(c.Arch)
	val := bytecodec.ExtractSigned(buf, order)
	if t.FlagEnum {
		return c.printFlagEnum(w, t, uint64(val))
	}
	for _, f := range t.Fields {
		if f.EnumVal == val {
			_, err := io.WriteString(w, f.Name)
			return err
		}
	}
	s, err := numfmt.Decimal(ctx, buf, order, !t.Unsigned)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func (c *Context) printFlagEnum(w io.Writer, t *typeinfo.Type, val uint64) error {
	if _, err := io.WriteString(w, "("); err != nil {
		return err
	}
	rest := val
	first := true
	for _, f := range t.Fields {
		mask := uint64(f.EnumVal)
		if mask != 0 && rest&mask == mask {
			if !first {
				if _, err := io.WriteString(w, " | "); err != nil {
					return err
				}
			}
			first = false
			if _, err := io.WriteString(w, f.Name); err != nil {
				return err
			}
			rest &^= mask
		}
	}
	if rest != 0 {
		if !first {
			if _, err := io.WriteString(w, " | "); err != nil {
				return err
			}
		}
		first = false
		if _, err := fmt.Fprintf(w, "unknown: 0x%x", rest); err != nil {
			return err
		}
	}
	if first {
		if _, err := io.WriteString(w, "0"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")")
	return err
}

func (c *Context) printFlags(w io.Writer, t *typeinfo.Type, v *value.Value, embOff int) error {
	buf, err := c.fetch(t, v, embOff)
	if err != nil {
		return printError(w, err)
	}
	val := bytecodec.ExtractUnsigned(buf, t.Order(c.Arch))
	_, err = io.WriteString(w, numfmt.FormatFlags(val, t))
	return err
}

func (c *Context) printBool(ctx context.Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int) error {
	if c.formatLetter() != 0 {
		return c.printScalar(ctx, w, t, v, embOff)
	}
	buf, err := c.fetch(t, v, embOff)
	if err != nil {
		return printError(w, err)
	}
	d := c.Lang.Decor()
	switch bytecodec.ExtractUnsigned(buf, t.Order(c.Arch)) {
	case 0:
		_, err = io.WriteString(w, d.FalseName)
	case 1:
		_, err = io.WriteString(w, d.TrueName)
	default:
		var s string
		s, err = numfmt.Decimal(ctx, buf, t.Order(c.Arch), false)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
	}
	return err
}

func (c *Context) printChar(ctx context.Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int) error {
	if f := c.formatLetter(); f != 0 && f != 'c' {
		return c.printScalar(ctx, w, t, v, embOff)
	}
	buf, err := c.fetch(t, v, embOff)
	if err != nil {
		return printError(w, err)
	}
	order := t.Order(c.Arch)
	dec, err := numfmt.Decimal(ctx, buf, order, !t.Unsigned)
	if err != nil {
		return err
	}
	kind, _ := typeinfo.ClassifyChar(t)
	code := bytecodec.ExtractUnsigned(buf, order)
	quote := c.Lang.Decor().CharQuote
	if _, err := fmt.Fprintf(w, "%s %c", dec, quote); err != nil {
		return err
	}
	var esc transcode.Escaper
	if err := esc.EmitCode(w, code, kind, order, c.Enc, quote); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%c", quote)
	return err
}

func (c *Context) printFloat(w io.Writer, t *typeinfo.Type, v *value.Value, embOff int) error {
	buf, err := c.fetch(t, v, embOff)
	if err != nil {
		return printError(w, err)
	}
	_, err = io.WriteString(w, floatText(buf, t.Order(c.Arch)))
	return err
}

func floatText(buf []byte, order bytecodec.ByteOrder) string {
	switch len(buf) {
	case 4:
		f := math.Float32frombits(uint32(bytecodec.ExtractUnsigned(buf, order)))
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	case 8:
		f := math.Float64frombits(bytecodec.ExtractUnsigned(buf, order))
		return strconv.FormatFloat(f, 'g', -1, 64)
	default:
		// Unknown float widths render as raw bytes.
		return numfmt.Hex(buf, order, true)
	}
}

func (c *Context) printComplex(w io.Writer, t *typeinfo.Type, v *value.Value, embOff int) error {
	comp := t.Target
	if comp == nil {
		return errors.UnhandledTypeCode(t.Code)
	}
	d := c.Lang.Decor()
	if _, err := io.WriteString(w, d.ComplexPrefix); err != nil {
		return err
	}
	if err := c.printFloat(w, comp, v, embOff); err != nil {
		return err
	}
	if _, err := io.WriteString(w, d.ComplexInfix); err != nil {
		return err
	}
	if err := c.printFloat(w, comp, v, embOff+comp.Length); err != nil {
		return err
	}
	_, err := io.WriteString(w, d.ComplexSuffix)
	return err
}

func (c *Context) printAddress(w io.Writer, addr uint64) error {
	_, err := fmt.Fprintf(w, "0x%x", addr)
	return err
}

func (c *Context) printSymbol(w io.Writer, addr uint64) error {
	name, off, ok := c.Syms.Resolve(addr)
	if !ok {
		return nil
	}
	if off != 0 {
		_, err := fmt.Fprintf(w, " <%s+%d>", name, off)
		return err
	}
	_, err := fmt.Fprintf(w, " <%s>", name)
	return err
}
