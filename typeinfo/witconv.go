package typeinfo

import (
	"strconv"

	"go.bytecodealliance.org/wit"
)

// WitConverter builds renderer type descriptors from WIT types, so
// values living in a wasm component's linear memory render with full
// type fidelity. Layout follows the Canonical ABI: wasm32 pointers are
// 4 bytes, strings and lists are (ptr, len) pairs, and discriminants
// size up with the case count.
type WitConverter struct {
	cache map[*wit.TypeDef]*Type
}

// NewWitConverter returns a converter with an empty typedef cache.
func NewWitConverter() *WitConverter {
	return &WitConverter{cache: make(map[*wit.TypeDef]*Type)}
}

const wasmPointerWidth = 4

// Convert maps a WIT type to a renderer type descriptor.
func (c *WitConverter) Convert(t wit.Type) *Type {
	switch typ := t.(type) {
	case wit.Bool:
		return NewBool("bool", 1)
	case wit.U8:
		return NewInt("u8", 1, true)
	case wit.S8:
		return NewInt("s8", 1, false)
	case wit.U16:
		return NewInt("u16", 2, true)
	case wit.S16:
		return NewInt("s16", 2, false)
	case wit.U32:
		return NewInt("u32", 4, true)
	case wit.S32:
		return NewInt("s32", 4, false)
	case wit.U64:
		return NewInt("u64", 8, true)
	case wit.S64:
		return NewInt("s64", 8, false)
	case wit.F32:
		return NewFloat("f32", 4)
	case wit.F64:
		return NewFloat("f64", 8)
	case wit.Char:
		// A Unicode scalar value stored as u32; width 4 classifies
		// as a 32-bit character kind.
		return NewChar("char", 4, true)
	case wit.String:
		return c.stringType()
	case *wit.TypeDef:
		return c.convertTypeDef(typ)
	default:
		return NewVoid()
	}
}

func (c *WitConverter) stringType() *Type {
	elem := NewChar("char8", 1, true)
	return NewStruct("string", 8, []Field{
		{Name: "data", Type: NewPointer(elem, wasmPointerWidth), BitPos: 0},
		{Name: "len", Type: NewInt("u32", 4, true), BitPos: 32},
	})
}

func (c *WitConverter) convertTypeDef(t *wit.TypeDef) *Type {
	if cached, ok := c.cache[t]; ok {
		return cached
	}

	var out *Type
	switch kind := t.Kind.(type) {
	case *wit.Record:
		out = c.convertRecord(t, kind)
	case *wit.List:
		elem := c.Convert(kind.Type)
		out = NewStruct(typeDefName(t, "list"), 8, []Field{
			{Name: "data", Type: NewPointer(elem, wasmPointerWidth), BitPos: 0},
			{Name: "len", Type: NewInt("u32", 4, true), BitPos: 32},
		})
	case *wit.Tuple:
		out = c.convertTuple(t, kind)
	case *wit.Enum:
		out = c.convertEnum(t, kind)
	case *wit.Flags:
		out = c.convertFlags(t, kind)
	case *wit.Variant:
		out = c.convertVariant(t, typeDefName(t, "variant"), casesOf(kind))
	case *wit.Option:
		out = c.convertVariant(t, typeDefName(t, "option"), []wit.Case{
			{Name: "none"}, {Name: "some", Type: kind.Type},
		})
	case *wit.Result:
		cases := []wit.Case{{Name: "ok", Type: kind.OK}, {Name: "err", Type: kind.Err}}
		out = c.convertVariant(t, typeDefName(t, "result"), cases)
	case *wit.Own, *wit.Borrow:
		out = NewInt(typeDefName(t, "handle"), 4, true)
	case wit.Type:
		out = c.Convert(kind)
	default:
		out = NewVoid()
	}

	if name := typeDefName(t, ""); name != "" && out.Name == "" {
		out.Name = name
	}
	c.cache[t] = out
	return out
}

func casesOf(v *wit.Variant) []wit.Case {
	cases := make([]wit.Case, len(v.Cases))
	copy(cases, v.Cases)
	return cases
}

func typeDefName(t *wit.TypeDef, fallback string) string {
	if t.Name != nil && *t.Name != "" {
		return *t.Name
	}
	return fallback
}

func (c *WitConverter) convertRecord(t *wit.TypeDef, r *wit.Record) *Type {
	fields := make([]Field, 0, len(r.Fields))
	maxAlign := 1
	offset := 0
	for _, f := range r.Fields {
		ft := c.Convert(f.Type)
		align := c.alignOf(f.Type)
		offset = alignUp(offset, align)
		fields = append(fields, Field{Name: f.Name, Type: ft, BitPos: uint64(offset) * 8})
		if align > maxAlign {
			maxAlign = align
		}
		offset += c.sizeOf(f.Type)
	}
	return NewStruct(typeDefName(t, "record"), alignUp(offset, maxAlign), fields)
}

func (c *WitConverter) convertTuple(t *wit.TypeDef, tup *wit.Tuple) *Type {
	fields := make([]Field, 0, len(tup.Types))
	maxAlign := 1
	offset := 0
	for i, elem := range tup.Types {
		ft := c.Convert(elem)
		align := c.alignOf(elem)
		offset = alignUp(offset, align)
		fields = append(fields, Field{Name: strconv.Itoa(i), Type: ft, BitPos: uint64(offset) * 8})
		if align > maxAlign {
			maxAlign = align
		}
		offset += c.sizeOf(elem)
	}
	return NewStruct(typeDefName(t, "tuple"), alignUp(offset, maxAlign), fields)
}

func (c *WitConverter) convertEnum(t *wit.TypeDef, e *wit.Enum) *Type {
	fields := make([]Field, len(e.Cases))
	for i, ec := range e.Cases {
		fields[i] = Field{Name: ec.Name, EnumVal: int64(i)}
	}
	return NewEnum(typeDefName(t, "enum"), discriminantSize(len(e.Cases)), fields)
}

func (c *WitConverter) convertFlags(t *wit.TypeDef, f *wit.Flags) *Type {
	fields := make([]Field, len(f.Flags))
	for i, fl := range f.Flags {
		fields[i] = Field{Name: fl.Name, BitPos: uint64(i), BitSize: 1, EnumVal: 1 << uint(i%64)}
	}
	numFlags := len(f.Flags)
	var size int
	switch {
	case numFlags == 0:
		size = 0
	case numFlags <= 8:
		size = 1
	case numFlags <= 16:
		size = 2
	case numFlags <= 32:
		size = 4
	case numFlags <= 64:
		size = 8
	default:
		size = ((numFlags + 31) / 32) * 4
	}
	return NewFlags(typeDefName(t, "flags"), size, fields)
}

// convertVariant renders a variant as a struct of a discriminant enum
// followed by a union of the case payloads, mirroring the canonical
// memory layout so the renderer walks real bytes.
func (c *WitConverter) convertVariant(t *wit.TypeDef, name string, cases []wit.Case) *Type {
	discSize := discriminantSize(len(cases))
	discFields := make([]Field, len(cases))
	maxAlign := discSize
	maxSize := 0

	unionFields := make([]Field, 0, len(cases))
	for i, cs := range cases {
		discFields[i] = Field{Name: cs.Name, EnumVal: int64(i)}
		if cs.Type == nil {
			continue
		}
		ct := c.Convert(cs.Type)
		if a := c.alignOf(cs.Type); a > maxAlign {
			maxAlign = a
		}
		if s := c.sizeOf(cs.Type); s > maxSize {
			maxSize = s
		}
		unionFields = append(unionFields, Field{Name: cs.Name, Type: ct})
	}

	disc := NewEnum(name+"-tag", discSize, discFields)
	payloadOffset := alignUp(discSize, maxAlign)
	total := alignUp(payloadOffset+maxSize, maxAlign)

	fields := []Field{{Name: "tag", Type: disc, BitPos: 0}}
	if len(unionFields) > 0 {
		payload := NewUnion(name+"-payload", maxSize, unionFields)
		fields = append(fields, Field{Name: "value", Type: payload, BitPos: uint64(payloadOffset) * 8})
	}
	return NewStruct(name, total, fields)
}

func (c *WitConverter) sizeOf(t wit.Type) int {
	return c.Convert(t).Length
}

func (c *WitConverter) alignOf(t wit.Type) int {
	switch typ := t.(type) {
	case wit.Bool, wit.U8, wit.S8:
		return 1
	case wit.U16, wit.S16:
		return 2
	case wit.U32, wit.S32, wit.F32, wit.Char, wit.String:
		return 4
	case wit.U64, wit.S64, wit.F64:
		return 8
	case *wit.TypeDef:
		switch kind := typ.Kind.(type) {
		case *wit.List, *wit.Own, *wit.Borrow:
			return 4
		case *wit.Enum:
			return discriminantSize(len(kind.Cases))
		case *wit.Flags:
			s := c.sizeOf(t)
			if s > 4 {
				return 4
			}
			if s < 1 {
				return 1
			}
			return s
		case *wit.Record:
			a := 1
			for _, f := range kind.Fields {
				if fa := c.alignOf(f.Type); fa > a {
					a = fa
				}
			}
			return a
		case *wit.Tuple:
			a := 1
			for _, e := range kind.Types {
				if ea := c.alignOf(e); ea > a {
					a = ea
				}
			}
			return a
		case *wit.Variant:
			a := discriminantSize(len(kind.Cases))
			for _, cs := range kind.Cases {
				if cs.Type != nil {
					if ca := c.alignOf(cs.Type); ca > a {
						a = ca
					}
				}
			}
			return a
		case *wit.Option:
			a := 1
			if ia := c.alignOf(kind.Type); ia > a {
				a = ia
			}
			return a
		case *wit.Result:
			a := 1
			if kind.OK != nil {
				if oa := c.alignOf(kind.OK); oa > a {
					a = oa
				}
			}
			if kind.Err != nil {
				if ea := c.alignOf(kind.Err); ea > a {
					a = ea
				}
			}
			return a
		case wit.Type:
			return c.alignOf(kind)
		}
	}
	return 1
}

func discriminantSize(numCases int) int {
	switch {
	case numCases <= 1<<8:
		return 1
	case numCases <= 1<<16:
		return 2
	default:
		return 4
	}
}

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}
