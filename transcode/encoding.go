package transcode

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/wippyai/debug-renderer/bytecodec"
	"github.com/wippyai/debug-renderer/typeinfo"
)

// CharsetProvider names the target's narrow and wide character sets.
// It mirrors the interface declared in the root package; callers that
// already hold a debugrenderer.CharsetProvider satisfy it directly.
type CharsetProvider interface {
	TargetCharset() string
	TargetWideCharset() string
}

// Encodings resolves target character sets to concrete codecs once and
// answers lookups per character kind. The zero value is not usable;
// construct with NewEncodings.
type Encodings struct {
	narrow encoding.Encoding
	wide   encoding.Encoding
}

// DefaultCharsets is a CharsetProvider for targets that never declared
// their character sets. Narrow text is treated as UTF-8 and wide text
// as UTF-32 in the element type's byte order.
type DefaultCharsets struct{}

func (DefaultCharsets) TargetCharset() string     { return "UTF-8" }
func (DefaultCharsets) TargetWideCharset() string { return "" }

// NewEncodings builds the codec table for a target. Unknown charset
// names fall back to Latin-1, which decodes every byte and keeps
// rendering alive on targets with exotic narrow charsets.
func NewEncodings(p CharsetProvider) *Encodings {
	if p == nil {
		p = DefaultCharsets{}
	}
	return &Encodings{
		narrow: lookupCharset(p.TargetCharset()),
		wide:   lookupCharsetOrNil(p.TargetWideCharset()),
	}
}

func lookupCharset(name string) encoding.Encoding {
	if e := lookupCharsetOrNil(name); e != nil {
		return e
	}
	return charmap.ISO8859_1
}

func lookupCharsetOrNil(name string) encoding.Encoding {
	if name == "" {
		return nil
	}
	e, err := ianaindex.IANA.Encoding(name)
	if err != nil || e == nil {
		return nil
	}
	return e
}

// For returns the codec used to encode host text as target bytes for
// the given character kind. UTF-16 and UTF-32 honour the element
// type's byte order rather than any global setting, so a big-endian
// char16_t string inside a little-endian core renders correctly.
func (e *Encodings) For(kind typeinfo.CharKind, order bytecodec.ByteOrder) encoding.Encoding {
	switch kind {
	case typeinfo.Char16:
		return unicode.UTF16(utf16Endian(order), unicode.IgnoreBOM)
	case typeinfo.Char32:
		return utf32.UTF32(utf32Endian(order), utf32.IgnoreBOM)
	case typeinfo.CharWide:
		if e.wide != nil {
			return e.wide
		}
		return utf32.UTF32(utf32Endian(order), utf32.IgnoreBOM)
	default:
		return e.narrow
	}
}

// Name reports the conventional charset name for a kind and order,
// used in diagnostics.
func Name(kind typeinfo.CharKind, order bytecodec.ByteOrder) string {
	switch kind {
	case typeinfo.Char16:
		if order == bytecodec.BigEndian {
			return "UTF-16BE"
		}
		return "UTF-16LE"
	case typeinfo.Char32, typeinfo.CharWide:
		if order == bytecodec.BigEndian {
			return "UTF-32BE"
		}
		return "UTF-32LE"
	default:
		return "target charset"
	}
}

func utf16Endian(order bytecodec.ByteOrder) unicode.Endianness {
	if order == bytecodec.BigEndian {
		return unicode.BigEndian
	}
	return unicode.LittleEndian
}

func utf32Endian(order bytecodec.ByteOrder) utf32.Endianness {
	if order == bytecodec.BigEndian {
		return utf32.BigEndian
	}
	return utf32.LittleEndian
}
