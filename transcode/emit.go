package transcode

import (
	"fmt"
	"io"
	"unicode"

	"github.com/wippyai/debug-renderer/bytecodec"
	"github.com/wippyai/debug-renderer/typeinfo"
)

// Escaper writes characters to an output stream, escaping anything
// that would not survive as printable host text. It remembers when the
// previous character was emitted as a numeric escape so a following
// digit is escaped too instead of being absorbed into the sequence.
type Escaper struct {
	needEscape bool
}

var cEscapes = map[rune]byte{
	'\a': 'a',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\v': 'v',
}

// Emit writes one decoded unit. Printable characters pass through,
// except the quote character and backslash which get a backslash
// prefix. Control characters use their C escape when one exists;
// everything else, including invalid and incomplete input, is emitted
// as numeric escapes of the original target bytes.
func (e *Escaper) Emit(w io.Writer, u Unit, quote byte) error {
	if u.Result == ResultOK {
		r := u.Rune
		if r == rune(quote) || r == '\\' {
			e.needEscape = false
			_, err := fmt.Fprintf(w, "\\%c", r)
			return err
		}
		if esc, ok := cEscapes[r]; ok {
			e.needEscape = false
			_, err := fmt.Fprintf(w, "\\%c", esc)
			return err
		}
		if unicode.IsPrint(r) && !(e.needEscape && isDigit(r)) {
			e.needEscape = false
			_, err := fmt.Fprintf(w, "%c", r)
			return err
		}
	}
	return e.emitNumeric(w, u.Bytes)
}

// EmitCode packs a character code into its width and byte order, then
// emits it like any other decoded unit. Codes that do not round-trip
// through the target charset come out as numeric escapes.
func (e *Escaper) EmitCode(w io.Writer, code uint64, kind typeinfo.CharKind, order bytecodec.ByteOrder, enc *Encodings, quote byte) error {
	buf := make([]byte, kind.Width())
	bytecodec.Pack(buf, order, int64(code))
	it := NewIter(buf, kind, order, enc)
	for {
		u := it.Next()
		if u.Result == ResultEOF {
			return nil
		}
		if err := e.Emit(w, u, quote); err != nil {
			return err
		}
	}
}

// Reset clears the pending-escape state so the escaper can be reused
// for an unrelated string.
func (e *Escaper) Reset() { e.needEscape = false }

func (e *Escaper) emitNumeric(w io.Writer, raw []byte) error {
	for _, b := range raw {
		if _, err := fmt.Fprintf(w, "\\%03o", b); err != nil {
			return err
		}
	}
	e.needEscape = len(raw) > 0
	return nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
