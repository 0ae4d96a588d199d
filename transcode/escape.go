package transcode

import (
	"strings"

	"github.com/wippyai/debug-renderer/bytecodec"
	"github.com/wippyai/debug-renderer/errors"
	"github.com/wippyai/debug-renderer/typeinfo"
)

// ParseEscapes converts a host string literal body into target bytes
// holding characters of the given kind. Recognized escapes are \\,
// \xH... with at least one hex digit, one to three octal digits,
// \uHHHH and \UHHHHHHHH. Numeric escapes become a single code unit
// with that value; \u and \U denote code points and encode through
// the target charset like ordinary characters.
func ParseEscapes(s string, kind typeinfo.CharKind, order bytecodec.ByteOrder, enc *Encodings) ([]byte, error) {
	if enc == nil {
		enc = NewEncodings(nil)
	}
	var out []byte
	var plain strings.Builder

	flush := func() error {
		if plain.Len() == 0 {
			return nil
		}
		b, err := encodeChars(plain.String(), kind, order, enc)
		if err != nil {
			return err
		}
		out = append(out, b...)
		plain.Reset()
		return nil
	}

	for i := 0; i < len(s); {
		if s[i] != '\\' {
			plain.WriteByte(s[i])
			i++
			continue
		}
		if i+1 >= len(s) {
			return nil, errors.MalformedEscape(s[i:])
		}
		switch c := s[i+1]; {
		case c == '\\':
			plain.WriteByte('\\')
			i += 2
		case c == 'x':
			j := i + 2
			var v uint64
			for j < len(s) && isHex(s[j]) {
				v = v<<4 | uint64(hexVal(s[j]))
				j++
			}
			if j == i+2 {
				return nil, errors.MalformedEscape(s[i:min(i+3, len(s))])
			}
			if err := flush(); err != nil {
				return nil, err
			}
			out = append(out, packUnit(v, kind, order)...)
			i = j
		case c >= '0' && c <= '7':
			j := i + 1
			var v uint64
			for j < len(s) && j < i+4 && s[j] >= '0' && s[j] <= '7' {
				v = v<<3 | uint64(s[j]-'0')
				j++
			}
			if err := flush(); err != nil {
				return nil, err
			}
			out = append(out, packUnit(v, kind, order)...)
			i = j
		case c == 'u' || c == 'U':
			digits := 4
			if c == 'U' {
				digits = 8
			}
			if i+2+digits > len(s) {
				return nil, errors.MalformedEscape(s[i:])
			}
			var v uint64
			for _, d := range []byte(s[i+2 : i+2+digits]) {
				if !isHex(d) {
					return nil, errors.MalformedEscape(s[i : i+2+digits])
				}
				v = v<<4 | uint64(hexVal(d))
			}
			plain.WriteRune(rune(v))
			i += 2 + digits
		default:
			return nil, errors.MalformedEscape(s[i : i+2])
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeChars(s string, kind typeinfo.CharKind, order bytecodec.ByteOrder, enc *Encodings) ([]byte, error) {
	b, err := enc.For(kind, order).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseTranscode, errors.KindInvalidData, err, "encode string literal")
	}
	return b, nil
}

func packUnit(v uint64, kind typeinfo.CharKind, order bytecodec.ByteOrder) []byte {
	buf := make([]byte, kind.Width())
	bytecodec.Pack(buf, order, int64(v))
	return buf
}

func isHex(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}
