package typeinfo

import (
	"strconv"
	"strings"

	"github.com/wippyai/debug-renderer/bytecodec"
)

// Field describes one member of a struct, union, enum, or flags type.
// For enums and flags Type may be nil and EnumVal carries the literal's
// value (for flags, its mask).
type Field struct {
	Type    *Type
	Name    string
	BitPos  uint64 // bit offset from the start of the enclosing value
	BitSize uint64 // 0 means the field occupies Type.Length whole bytes
	EnumVal int64
	Static  bool
}

// Type is a descriptor for one target type.
type Type struct {
	Target *Type // pointee, element, typedef target, or function return
	Index  *Type // array index type: a range or enum subtype
	Fields []Field
	Name   string
	Length int // size in bytes

	// Range bounds; valid when HasBounds is set (range types and
	// array index types).
	Low, High int64
	HasBounds bool

	order    bytecodec.ByteOrder
	hasOrder bool

	Code     Code
	Unsigned bool
	Stub     bool
	FlagEnum bool
}

// Order returns the byte order scalars of this type are stored in.
// An explicit scalar storage order on the type wins over def, the
// architecture default.
func (t *Type) Order(def bytecodec.ByteOrder) bytecodec.ByteOrder {
	if t.hasOrder {
		return t.order
	}
	return def
}

// SetOrder declares an explicit scalar storage order for this type.
func (t *Type) SetOrder(o bytecodec.ByteOrder) *Type {
	t.order = o
	t.hasOrder = true
	return t
}

// HasExplicitOrder reports whether the type carries its own byte order.
func (t *Type) HasExplicitOrder() bool {
	return t.hasOrder
}

// Peel unwraps exactly one typedef step. Non-typedefs return themselves.
func (t *Type) Peel() *Type {
	if t.Code == CodeTypedef && t.Target != nil {
		return t.Target
	}
	return t
}

// Resolve strips all typedefs. The loop is bounded so that a malformed
// cyclic typedef chain cannot hang the renderer.
func (t *Type) Resolve() *Type {
	r := t
	for i := 0; i < 64 && r.Code == CodeTypedef && r.Target != nil; i++ {
		r = r.Target
	}
	return r
}

// ElemCount returns the number of elements of an array type, derived
// from its index subtype. Enum-indexed arrays count literal positions,
// not literal values.
func (t *Type) ElemCount() int64 {
	idx := t.Index
	if idx == nil {
		if t.Target != nil && t.Target.Length > 0 && t.Length > 0 {
			return int64(t.Length / t.Target.Length)
		}
		return 0
	}
	idx = idx.Resolve()
	if idx.Code == CodeEnum {
		return int64(len(idx.Fields))
	}
	if idx.HasBounds {
		return idx.High - idx.Low + 1
	}
	return 0
}

// String renders a readable type name for error messages and the
// {TYPE} prefix on function values.
func (t *Type) String() string {
	if t == nil {
		return "?"
	}
	switch t.Code {
	case CodePointer:
		return "*" + t.Target.String()
	case CodeReference:
		return t.Target.String() + " &"
	case CodeRValueReference:
		return t.Target.String() + " &&"
	case CodeArray:
		n := t.ElemCount()
		if n > 0 {
			return "[" + strconv.FormatInt(n, 10) + "]" + t.Target.String()
		}
		return "[]" + t.Target.String()
	case CodeFunction, CodeMethod:
		var b strings.Builder
		b.WriteString(t.Target.String())
		b.WriteString(" (")
		for i, f := range t.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Type.String())
		}
		b.WriteByte(')')
		return b.String()
	case CodeStruct:
		if t.Name != "" {
			return "struct " + t.Name
		}
		return "struct {...}"
	case CodeUnion:
		if t.Name != "" {
			return "union " + t.Name
		}
		return "union {...}"
	case CodeEnum, CodeFlags:
		if t.Name != "" {
			return "enum " + t.Name
		}
		return "enum {...}"
	}
	if t.Name != "" {
		return t.Name
	}
	return t.Code.String()
}

// constructors

// NewInt returns an integer type of the given byte length.
func NewInt(name string, length int, unsigned bool) *Type {
	return &Type{Code: CodeInt, Name: name, Length: length, Unsigned: unsigned}
}

// NewChar returns a character type. Width 1 is a narrow char; wider
// character kinds are expressed as typedefs named wchar_t, char16_t,
// or char32_t over an integer base (see CharKind).
func NewChar(name string, length int, unsigned bool) *Type {
	return &Type{Code: CodeChar, Name: name, Length: length, Unsigned: unsigned}
}

// NewBool returns a boolean type.
func NewBool(name string, length int) *Type {
	return &Type{Code: CodeBool, Name: name, Length: length, Unsigned: true}
}

// NewFloat returns a binary floating-point type.
func NewFloat(name string, length int) *Type {
	return &Type{Code: CodeFloat, Name: name, Length: length}
}

// NewComplex returns a complex type over the given component float type.
func NewComplex(name string, component *Type) *Type {
	return &Type{Code: CodeComplex, Name: name, Length: component.Length * 2, Target: component}
}

// NewPointer returns a pointer to target with the given pointer width.
func NewPointer(target *Type, width int) *Type {
	return &Type{Code: CodePointer, Length: width, Target: target, Unsigned: true}
}

// NewReference returns an lvalue reference to target.
func NewReference(target *Type, width int) *Type {
	return &Type{Code: CodeReference, Length: width, Target: target, Unsigned: true}
}

// NewRValueReference returns an rvalue reference to target.
func NewRValueReference(target *Type, width int) *Type {
	return &Type{Code: CodeRValueReference, Length: width, Target: target, Unsigned: true}
}

// NewRange returns an integer range subtype with inclusive bounds.
func NewRange(name string, base *Type, low, high int64) *Type {
	length := 0
	unsigned := low >= 0
	if base != nil {
		length = base.Length
		unsigned = base.Unsigned
	}
	return &Type{
		Code: CodeRange, Name: name, Length: length, Target: base,
		Low: low, High: high, HasBounds: true, Unsigned: unsigned,
	}
}

// NewArray returns an array of count elements, indexed 0..count-1.
func NewArray(elem *Type, count int64) *Type {
	idx := NewRange("", nil, 0, count-1)
	return &Type{
		Code:   CodeArray,
		Length: int(count) * elem.Length,
		Target: elem,
		Index:  idx,
	}
}

// NewArrayIndexed returns an array whose bounds come from an explicit
// index subtype (a range, or an enum whose positions index the array).
func NewArrayIndexed(elem, index *Type) *Type {
	t := &Type{Code: CodeArray, Target: elem, Index: index}
	t.Length = int(t.ElemCount()) * elem.Length
	return t
}

// NewStruct returns a struct type. Field bit positions are byte-derived
// when BitPos is left zero-valued in order of declaration; callers with
// real layouts set BitPos themselves.
func NewStruct(name string, length int, fields []Field) *Type {
	return &Type{Code: CodeStruct, Name: name, Length: length, Fields: fields}
}

// NewUnion returns a union type.
func NewUnion(name string, length int, fields []Field) *Type {
	return &Type{Code: CodeUnion, Name: name, Length: length, Fields: fields}
}

// NewEnum returns an enumerated type with the given literals.
func NewEnum(name string, length int, fields []Field) *Type {
	return &Type{Code: CodeEnum, Name: name, Length: length, Fields: fields, Unsigned: false}
}

// NewFlagEnum returns an enum whose literals are disjoint bit masks.
func NewFlagEnum(name string, length int, fields []Field) *Type {
	t := NewEnum(name, length, fields)
	t.FlagEnum = true
	return t
}

// NewFlags returns a flags type whose fields describe individual bits
// or bit ranges.
func NewFlags(name string, length int, fields []Field) *Type {
	return &Type{Code: CodeFlags, Name: name, Length: length, Fields: fields, Unsigned: true}
}

// NewFunction returns a function type with the given return type and
// parameter fields.
func NewFunction(ret *Type, params []Field) *Type {
	return &Type{Code: CodeFunction, Target: ret, Fields: params}
}

// NewTypedef returns a named alias for target.
func NewTypedef(name string, target *Type) *Type {
	return &Type{Code: CodeTypedef, Name: name, Length: target.Length, Target: target}
}

// NewVoid returns the void type.
func NewVoid() *Type {
	return &Type{Code: CodeVoid, Name: "void"}
}

// NewStub returns an opaque forward-declared type; values render as
// <incomplete type>.
func NewStub(code Code, name string) *Type {
	return &Type{Code: code, Name: name, Stub: true}
}

// Builtin returns a fresh descriptor for a primitive type name, or nil
// when the name is not a builtin. Character kind typedefs (wchar_t,
// char16_t, char32_t) are included.
func Builtin(name string) *Type {
	switch name {
	case "bool":
		return NewBool("bool", 1)
	case "char":
		return NewChar("char", 1, false)
	case "int8", "signed char":
		return NewInt("int8", 1, false)
	case "uint8", "unsigned char":
		return NewInt("uint8", 1, true)
	case "int16", "short":
		return NewInt("int16", 2, false)
	case "uint16", "unsigned short":
		return NewInt("uint16", 2, true)
	case "int32", "int":
		return NewInt("int32", 4, false)
	case "uint32", "unsigned int":
		return NewInt("uint32", 4, true)
	case "int64", "long long":
		return NewInt("int64", 8, false)
	case "uint64", "unsigned long long":
		return NewInt("uint64", 8, true)
	case "float32", "float":
		return NewFloat("float32", 4)
	case "float64", "double":
		return NewFloat("float64", 8)
	case "complex64":
		return NewComplex("complex64", NewFloat("float32", 4))
	case "complex128":
		return NewComplex("complex128", NewFloat("float64", 8))
	case "wchar_t":
		return NewTypedef("wchar_t", NewInt("int32", 4, false))
	case "char16_t":
		return NewTypedef("char16_t", NewInt("uint16", 2, true))
	case "char32_t":
		return NewTypedef("char32_t", NewInt("uint32", 4, true))
	case "void":
		return NewVoid()
	}
	return nil
}
