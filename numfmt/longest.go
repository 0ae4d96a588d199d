package numfmt

import (
	"fmt"
	"strconv"

	"github.com/wippyai/debug-renderer/errors"
)

// Longest formats a 64-bit value under one of the small-integer format
// letters:
//
//	d  signed decimal
//	u  unsigned decimal
//	x  hexadecimal (C prefix when cPrefix is set)
//	o  octal (C prefix when cPrefix is set)
//	b  2 hex digits   (byte)
//	h  4 hex digits   (half)
//	w  8 hex digits   (word)
//	g  16 hex digits  (giant)
func Longest(format byte, cPrefix bool, v int64) (string, error) {
	u := uint64(v)
	switch format {
	case 'd':
		return strconv.FormatInt(v, 10), nil
	case 'u':
		return strconv.FormatUint(u, 10), nil
	case 'x':
		if cPrefix {
			return "0x" + strconv.FormatUint(u, 16), nil
		}
		return strconv.FormatUint(u, 16), nil
	case 'o':
		if cPrefix {
			if u == 0 {
				return "0", nil
			}
			return "0" + strconv.FormatUint(u, 8), nil
		}
		return strconv.FormatUint(u, 8), nil
	case 'b':
		return fmt.Sprintf("%02x", uint8(u)), nil
	case 'h':
		return fmt.Sprintf("%04x", uint16(u)), nil
	case 'w':
		return fmt.Sprintf("%08x", uint32(u)), nil
	case 'g':
		return fmt.Sprintf("%016x", u), nil
	default:
		return "", errors.New(errors.PhaseFormat, errors.KindUnsupported).
			Detail("undefined format letter %q", string(format)).
			Build()
	}
}
