package typeinfo

// CharKind names the four character widths the renderer can transcode.
type CharKind uint8

const (
	CharNarrow CharKind = iota // target charset, 1-byte code units
	CharWide                   // target wide charset
	Char16                     // UTF-16 in the element type's byte order
	Char32                     // UTF-32 in the element type's byte order
)

var charKindNames = [...]string{
	CharNarrow: "narrow",
	CharWide:   "wide",
	Char16:     "char16",
	Char32:     "char32",
}

func (k CharKind) String() string {
	if int(k) < len(charKindNames) {
		return charKindNames[k]
	}
	return "unknown"
}

// Width returns the code unit width in bytes.
func (k CharKind) Width() int {
	switch k {
	case Char16:
		return 2
	case CharWide, Char32:
		return 4
	default:
		return 1
	}
}

// ClassifyChar determines the character kind of an element type.
//
// Typedefs are peeled one step at a time rather than resolved in one go:
// the wide character typedef is itself the kind carrier, and stripping
// all typedefs first would lose it.
func ClassifyChar(t *Type) (CharKind, bool) {
	for {
		switch t.Name {
		case "wchar_t":
			return CharWide, true
		case "char16_t":
			return Char16, true
		case "char32_t":
			return Char32, true
		}
		if t.Code != CodeTypedef || t.Target == nil {
			break
		}
		t = t.Peel()
	}
	if t.Code == CodeChar {
		switch t.Length {
		case 2:
			return Char16, true
		case 4:
			return Char32, true
		default:
			return CharNarrow, true
		}
	}
	// Plain one-byte integers hold narrow characters often enough that
	// string reads over them are accepted.
	if t.Code == CodeInt && t.Length == 1 {
		return CharNarrow, true
	}
	return CharNarrow, false
}

// StringElem returns the element type a string read over t would use:
// the target of an array or pointer, or t itself for a bare character.
// ok is false when t cannot carry a string.
func StringElem(t *Type) (elem *Type, ok bool) {
	r := t.Resolve()
	switch r.Code {
	case CodeArray, CodePointer:
		if r.Target == nil {
			return nil, false
		}
		if _, isChar := ClassifyChar(r.Target); !isChar {
			return nil, false
		}
		return r.Target, true
	case CodeChar:
		return r, true
	}
	return nil, false
}
