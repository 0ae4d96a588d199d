package typeinfo

// Code identifies what sort of type a descriptor is.
type Code uint8

const (
	CodeUndef Code = iota
	CodeInt
	CodeChar
	CodeBool
	CodeFloat
	CodeDecimalFloat
	CodeComplex
	CodeEnum
	CodeFlags
	CodeRange
	CodePointer
	CodeArray
	CodeReference
	CodeRValueReference
	CodeMemberPointer
	CodeFunction
	CodeMethod
	CodeMethodPointer
	CodeStruct
	CodeUnion
	CodeSet
	CodeString
	CodeVoid
	CodeError
	CodeTypedef
)

var codeNames = [...]string{
	CodeUndef:           "undef",
	CodeInt:             "int",
	CodeChar:            "char",
	CodeBool:            "bool",
	CodeFloat:           "float",
	CodeDecimalFloat:    "decimal-float",
	CodeComplex:         "complex",
	CodeEnum:            "enum",
	CodeFlags:           "flags",
	CodeRange:           "range",
	CodePointer:         "pointer",
	CodeArray:           "array",
	CodeReference:       "reference",
	CodeRValueReference: "rvalue-reference",
	CodeMemberPointer:   "member-pointer",
	CodeFunction:        "function",
	CodeMethod:          "method",
	CodeMethodPointer:   "method-pointer",
	CodeStruct:          "struct",
	CodeUnion:           "union",
	CodeSet:             "set",
	CodeString:          "string",
	CodeVoid:            "void",
	CodeError:           "error",
	CodeTypedef:         "typedef",
}

func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "unknown"
}

// IsScalar reports whether values of this code render without recursion.
// Scalars are exempt from summary mode and the depth cap.
func (c Code) IsScalar() bool {
	switch c {
	case CodeInt, CodeChar, CodeBool, CodeFloat, CodeDecimalFloat,
		CodeComplex, CodeEnum, CodeFlags, CodeRange, CodePointer,
		CodeMemberPointer, CodeVoid, CodeError, CodeUndef:
		return true
	}
	return false
}

// IsAggregate reports whether rendering descends into components.
func (c Code) IsAggregate() bool {
	switch c {
	case CodeArray, CodeStruct, CodeUnion, CodeSet:
		return true
	}
	return false
}

// IsReference reports reference-like codes.
func (c Code) IsReference() bool {
	return c == CodeReference || c == CodeRValueReference
}
