package numfmt

import (
	"strconv"
	"strings"

	"github.com/wippyai/debug-renderer/typeinfo"
)

// FormatFlags renders a flags-typed value as "[ a b=2 ]": one-bit
// boolean fields print their name when set, wider fields print
// name=value with the value masked to the field's bit width.
func FormatFlags(val uint64, typ *typeinfo.Type) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, f := range typ.Fields {
		width := f.BitSize
		if width == 0 && f.Type != nil {
			width = uint64(f.Type.Length) * 8
		}
		if width == 0 || width > 64 {
			continue
		}
		var mask uint64
		if width == 64 {
			mask = ^uint64(0)
		} else {
			mask = (uint64(1) << width) - 1
		}
		fieldVal := (val >> f.BitPos) & mask

		// One-bit fields are boolean: present or absent by name.
		if width == 1 {
			if fieldVal != 0 {
				b.WriteByte(' ')
				b.WriteString(f.Name)
			}
			continue
		}
		b.WriteByte(' ')
		b.WriteString(f.Name)
		b.WriteByte('=')
		b.WriteString(strconv.FormatUint(fieldVal, 10))
	}
	b.WriteString(" ]")
	return b.String()
}
