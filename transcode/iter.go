package transcode

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/wippyai/debug-renderer/bytecodec"
	"github.com/wippyai/debug-renderer/typeinfo"
)

// Result classifies one step of character iteration.
type Result uint8

const (
	// ResultOK means a complete character was decoded.
	ResultOK Result = iota
	// ResultInvalid means the bytes form no character in the target
	// charset. The original bytes are preserved for escape output.
	ResultInvalid
	// ResultIncomplete means the buffer ended mid-character.
	ResultIncomplete
	// ResultEOF means the buffer is exhausted.
	ResultEOF
)

var resultNames = [...]string{"ok", "invalid", "incomplete", "eof"}

func (r Result) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "unknown"
}

// Unit is one decoded character together with the target bytes it was
// decoded from. For invalid and incomplete units Rune is undefined and
// Bytes carries the offending input.
type Unit struct {
	Result Result
	Rune   rune
	Bytes  []byte
}

// Iter walks a buffer of target text one character at a time. UTF-16
// surrogate pairs decode as a single unit spanning four bytes.
type Iter struct {
	buf   []byte
	pos   int
	kind  typeinfo.CharKind
	order bytecodec.ByteOrder
	enc   *Encodings
}

// NewIter returns an iterator over buf holding characters of the given
// kind in the given byte order.
func NewIter(buf []byte, kind typeinfo.CharKind, order bytecodec.ByteOrder, enc *Encodings) *Iter {
	if enc == nil {
		enc = NewEncodings(nil)
	}
	return &Iter{buf: buf, kind: kind, order: order, enc: enc}
}

// Next decodes and consumes the next character.
func (it *Iter) Next() Unit {
	if it.pos >= len(it.buf) {
		return Unit{Result: ResultEOF}
	}
	switch it.kind {
	case typeinfo.Char16:
		return it.next16()
	case typeinfo.Char32, typeinfo.CharWide:
		return it.next32()
	default:
		return it.nextNarrow()
	}
}

func (it *Iter) nextNarrow() Unit {
	if cm, ok := it.enc.narrow.(*charmap.Charmap); ok {
		b := it.buf[it.pos : it.pos+1]
		it.pos++
		r := cm.DecodeByte(b[0])
		if r == utf8.RuneError {
			return Unit{Result: ResultInvalid, Bytes: b}
		}
		return Unit{Result: ResultOK, Rune: r, Bytes: b}
	}
	// Everything else is decoded as UTF-8. A malformed continuation
	// byte consumes only itself so its neighbours still decode.
	r, size := utf8.DecodeRune(it.buf[it.pos:])
	raw := it.buf[it.pos : it.pos+size]
	it.pos += size
	if r == utf8.RuneError && size == 1 {
		if !utf8.FullRune(it.buf[it.pos-1:]) {
			raw = it.buf[it.pos-1:]
			it.pos = len(it.buf)
			return Unit{Result: ResultIncomplete, Bytes: raw}
		}
		return Unit{Result: ResultInvalid, Bytes: raw}
	}
	return Unit{Result: ResultOK, Rune: r, Bytes: raw}
}

func (it *Iter) next16() Unit {
	if len(it.buf)-it.pos < 2 {
		raw := it.buf[it.pos:]
		it.pos = len(it.buf)
		return Unit{Result: ResultIncomplete, Bytes: raw}
	}
	raw := it.buf[it.pos : it.pos+2]
	u := uint16(bytecodec.ExtractUnsigned(raw, it.order))
	it.pos += 2
	switch {
	case u >= 0xd800 && u <= 0xdbff:
		if len(it.buf)-it.pos < 2 {
			if it.pos < len(it.buf) {
				raw = it.buf[it.pos-2:]
				it.pos = len(it.buf)
				return Unit{Result: ResultIncomplete, Bytes: raw}
			}
			return Unit{Result: ResultInvalid, Bytes: raw}
		}
		low := uint16(bytecodec.ExtractUnsigned(it.buf[it.pos:it.pos+2], it.order))
		if low < 0xdc00 || low > 0xdfff {
			return Unit{Result: ResultInvalid, Bytes: raw}
		}
		raw = it.buf[it.pos-2 : it.pos+2]
		it.pos += 2
		r := 0x10000 + (rune(u)-0xd800)<<10 + (rune(low) - 0xdc00)
		return Unit{Result: ResultOK, Rune: r, Bytes: raw}
	case u >= 0xdc00 && u <= 0xdfff:
		return Unit{Result: ResultInvalid, Bytes: raw}
	default:
		return Unit{Result: ResultOK, Rune: rune(u), Bytes: raw}
	}
}

func (it *Iter) next32() Unit {
	if len(it.buf)-it.pos < 4 {
		raw := it.buf[it.pos:]
		it.pos = len(it.buf)
		return Unit{Result: ResultIncomplete, Bytes: raw}
	}
	raw := it.buf[it.pos : it.pos+4]
	it.pos += 4
	u := bytecodec.ExtractUnsigned(raw, it.order)
	r := rune(u)
	if u > 0x10ffff || (r >= 0xd800 && r <= 0xdfff) {
		return Unit{Result: ResultInvalid, Bytes: raw}
	}
	return Unit{Result: ResultOK, Rune: r, Bytes: raw}
}
