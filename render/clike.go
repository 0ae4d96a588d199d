package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/wippyai/debug-renderer/bytecodec"
	"github.com/wippyai/debug-renderer/numfmt"
	"github.com/wippyai/debug-renderer/typeinfo"
	"github.com/wippyai/debug-renderer/value"
)

// cLike renders values with C syntax: brace-wrapped aggregates,
// double-quoted strings and the usual escape forms.
type cLike struct{}

// CLike returns the C-family language.
func CLike() Language { return cLike{} }

func (cLike) Name() string { return "c" }

func (cLike) Decor() Decorations {
	return Decorations{
		ArrayStart:    "{",
		ArrayEnd:      "}",
		ComplexPrefix: "",
		ComplexInfix:  " + ",
		ComplexSuffix: " * I",
		VoidName:      "void",
		TrueName:      "true",
		FalseName:     "false",
		StringQuote:   '"',
		CharQuote:     '\'',
	}
}

func (cLike) StructTooDeepEllipsis() string { return "{...}" }

func (cLike) IsStringType(t *typeinfo.Type) bool {
	r := t.Resolve()
	if r.Code != typeinfo.CodeArray || r.Target == nil {
		return false
	}
	_, ok := typeinfo.ClassifyChar(r.Target)
	return ok
}

// cOps spells the C operators with their precedence, exposed through
// Language.Op for expression printers layered over value rendering.
var cOps = map[string]OpPrint{
	"*":  {Text: "*", Precedence: 14, RightAssoc: true},
	"&":  {Text: "&", Precedence: 14, RightAssoc: true},
	"[]": {Text: "[]", Precedence: 15},
	"()": {Text: "()", Precedence: 15},
	".":  {Text: ".", Precedence: 15},
	"->": {Text: "->", Precedence: 15},
	"|":  {Text: " | ", Precedence: 6},
}

func (cLike) Op(name string) (OpPrint, bool) {
	op, ok := cOps[name]
	return op, ok
}

func (l cLike) ValPrint(ctx context.Context, c *Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int, addr uint64, recurse int) error {
	real := t.Resolve()
	switch real.Code {
	case typeinfo.CodeArray:
		if l.IsStringType(real) && (c.Opts.Format == 0 || c.Opts.Format == 's') {
			return c.printStringValue(ctx, w, real, v, embOff)
		}
	case typeinfo.CodeStruct:
		return l.printFields(ctx, c, w, real, v, embOff, addr, recurse)
	case typeinfo.CodeUnion:
		if !c.Opts.Unions && recurse > 0 {
			_, err := io.WriteString(w, "{...}")
			return err
		}
		return l.printFields(ctx, c, w, real, v, embOff, addr, recurse)
	}
	return c.GenericValPrint(ctx, w, real, v, embOff, addr, recurse)
}

func (l cLike) printFields(ctx context.Context, c *Context, w io.Writer, t *typeinfo.Type, v *value.Value, embOff int, addr uint64, recurse int) error {
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}
	first := true
	for _, f := range t.Fields {
		if f.Static && !c.Opts.Static {
			continue
		}
		if strings.HasPrefix(f.Name, "_vptr") && !c.Opts.Vtable {
			continue
		}
		if !first {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		first = false
		if c.Opts.PrettyStructs {
			if _, err := fmt.Fprintf(w, "\n%s", strings.Repeat(" ", 2+2*recurse)); err != nil {
				return err
			}
		}
		if f.Static {
			if _, err := io.WriteString(w, "static "); err != nil {
				return err
			}
		}
		if f.Name != "" {
			if _, err := fmt.Fprintf(w, "%s = ", f.Name); err != nil {
				return err
			}
		}
		if f.BitSize > 0 {
			if err := l.printBitfield(c, w, t, f, v, embOff); err != nil {
				return err
			}
			continue
		}
		fieldOff := embOff + int(f.BitPos/8)
		fieldAddr := addr + f.BitPos/8
		if err := c.ValPrint(ctx, w, f.Type, v, fieldOff, fieldAddr, recurse+1); err != nil {
			return err
		}
	}
	if c.Opts.PrettyStructs && !first {
		if _, err := fmt.Fprintf(w, "\n%s", strings.Repeat(" ", 2*recurse)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}")
	return err
}

// printBitfield extracts a sub-byte field and prints it in the
// effective format.
func (l cLike) printBitfield(c *Context, w io.Writer, t *typeinfo.Type, f typeinfo.Field, v *value.Value, embOff int) error {
	start := int(f.BitPos / 8)
	end := int((f.BitPos + f.BitSize + 7) / 8)
	buf, err := v.Fetch(c.Mem, embOff+start, end-start)
	if err != nil {
		return printError(w, err)
	}
	order := t.Order(c.Arch)
	raw := bytecodec.ExtractUnsigned(buf, order)
	shift := f.BitPos % 8
	if order == bytecodec.BigEndian {
		shift = uint64(len(buf))*8 - (f.BitPos % 8) - f.BitSize
	}
	val := raw >> shift & (1<<f.BitSize - 1)

	signed := f.Type != nil && !f.Type.Resolve().Unsigned
	if signed && val&(1<<(f.BitSize-1)) != 0 {
		val |= ^uint64(0) << f.BitSize
	}
	format := byte('d')
	if !signed {
		format = 'u'
	}
	if fl := c.formatLetter(); fl != 0 {
		format = fl
	}
	s, err := numfmt.Longest(format, true, int64(val))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
