package numfmt

import (
	"context"
	"strings"

	"github.com/wippyai/debug-renderer/bytecodec"
	"github.com/wippyai/debug-renderer/errors"
)

// logicalByte returns byte i of buf counting from the most significant
// end under order.
func logicalByte(buf []byte, order bytecodec.ByteOrder, i int) byte {
	if order == bytecodec.BigEndian {
		return buf[i]
	}
	return buf[len(buf)-1-i]
}

// Binary renders buf as base-2 text, most significant bit first.
// Leading zero bits are stripped unless zeroPad is set; a zero value
// still renders as a single "0".
func Binary(buf []byte, order bytecodec.ByteOrder, zeroPad bool) string {
	var b strings.Builder
	b.Grow(len(buf) * 8)
	seen := zeroPad
	for i := 0; i < len(buf); i++ {
		c := logicalByte(buf, order, i)
		for bit := 7; bit >= 0; bit-- {
			if c&(1<<uint(bit)) != 0 {
				seen = true
			}
			if seen {
				b.WriteByte('0' + (c>>uint(bit))&1)
			}
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// Octal renders buf as base-8 text with the C "0" prefix. Digit groups
// align from the least significant bit, so the leading group may hold
// fewer than three bits; bit alignment is thereby preserved across byte
// boundaries for any length. Leading zero digits after the prefix are
// suppressed.
func Octal(buf []byte, order bytecodec.ByteOrder) string {
	bits := len(buf) * 8
	if bits == 0 {
		return "0"
	}

	// bitAt indexes from the least significant bit of the value.
	bitAt := func(idx int) byte {
		c := logicalByte(buf, order, len(buf)-1-idx/8)
		return (c >> uint(idx%8)) & 1
	}

	var b strings.Builder
	b.WriteByte('0')
	seen := false

	pos := bits
	take := bits % 3
	if take == 0 {
		take = 3
	}
	for pos > 0 {
		var d byte
		for i := 0; i < take; i++ {
			pos--
			d = d<<1 | bitAt(pos)
		}
		if d != 0 {
			seen = true
		}
		if seen {
			b.WriteByte('0' + d)
		}
		take = 3
	}
	return b.String()
}

// Decimal renders buf as base-10 text. When signed is set and the high
// bit of the most significant byte is set, the buffer is negated in a
// copy (1 + ^x with carry in the declared order) and a minus sign
// precedes the absolute value.
//
// The conversion accumulates a base-10 digit vector by multiplying the
// current representation by 16 and adding successive nibbles from the
// most significant end, re-carrying after each step. len*4 digits is a
// safe upper bound for the buffer. Cancellation is observed between
// byte cycles.
func Decimal(ctx context.Context, buf []byte, order bytecodec.ByteOrder, signed bool) (string, error) {
	if len(buf) == 0 {
		return "0", nil
	}

	negative := false
	if signed && logicalByte(buf, order, 0)&0x80 != 0 {
		negative = true
		buf = negate(buf, order)
	}

	digits := make([]byte, len(buf)*4)
	ndigits := 1

	for i := 0; i < len(buf); i++ {
		if err := ctx.Err(); err != nil {
			return "", errors.Cancelled(errors.PhaseFormat, err)
		}
		c := logicalByte(buf, order, i)
		for _, nib := range [2]byte{c >> 4, c & 0x0f} {
			carry := int(nib)
			for d := 0; (d < ndigits || carry > 0) && d < len(digits); d++ {
				v := int(digits[d])*16 + carry
				digits[d] = byte(v % 10)
				carry = v / 10
				if digits[d] != 0 && d+1 > ndigits {
					ndigits = d + 1
				}
			}
		}
	}
	for ndigits > 1 && digits[ndigits-1] == 0 {
		ndigits--
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for d := ndigits - 1; d >= 0; d-- {
		b.WriteByte('0' + digits[d])
	}
	return b.String(), nil
}

// negate returns a two's-complement negated copy of buf: 1 + ^x with
// carry propagated from the least significant byte in the declared
// order.
func negate(buf []byte, order bytecodec.ByteOrder) []byte {
	out := make([]byte, len(buf))
	carry := uint16(1)
	for i := len(buf) - 1; i >= 0; i-- {
		v := uint16(^logicalByte(buf, order, i)) + carry
		carry = v >> 8
		if order == bytecodec.BigEndian {
			out[i] = byte(v)
		} else {
			out[len(buf)-1-i] = byte(v)
		}
	}
	return out
}

// Hex renders buf with the 0x prefix. With zeroPad the output carries
// exactly two digits per byte; without it, leading zero bytes are
// dropped and the first emitted byte may be a single digit.
func Hex(buf []byte, order bytecodec.ByteOrder, zeroPad bool) string {
	const hexdigits = "0123456789abcdef"
	var b strings.Builder
	b.Grow(2 + len(buf)*2)
	b.WriteString("0x")
	seen := zeroPad
	for i := 0; i < len(buf); i++ {
		c := logicalByte(buf, order, i)
		if !seen {
			if c == 0 {
				continue
			}
			seen = true
			if c>>4 == 0 {
				b.WriteByte(hexdigits[c&0x0f])
				continue
			}
		}
		b.WriteByte(hexdigits[c>>4])
		b.WriteByte(hexdigits[c&0x0f])
	}
	if b.Len() == 2 {
		b.WriteByte('0')
	}
	return b.String()
}
