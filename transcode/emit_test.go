package transcode

import (
	"strings"
	"testing"

	"github.com/wippyai/debug-renderer/bytecodec"
	"github.com/wippyai/debug-renderer/typeinfo"
)

func emitCode(t *testing.T, code uint64, kind typeinfo.CharKind, quote byte) string {
	t.Helper()
	var sb strings.Builder
	var esc Escaper
	if err := esc.EmitCode(&sb, code, kind, bytecodec.LittleEndian, NewEncodings(nil), quote); err != nil {
		t.Fatalf("EmitCode(%#x): %v", code, err)
	}
	return sb.String()
}

func TestEmitCode(t *testing.T) {
	tests := []struct {
		name string
		code uint64
		kind typeinfo.CharKind
		want string
	}{
		{"printable", 'A', typeinfo.CharNarrow, "A"},
		{"bell", 0x07, typeinfo.CharNarrow, `\a`},
		{"newline", '\n', typeinfo.CharNarrow, `\n`},
		{"tab", '\t', typeinfo.CharNarrow, `\t`},
		{"backslash", '\\', typeinfo.CharNarrow, `\\`},
		{"escape char", 0x1b, typeinfo.CharNarrow, `\033`},
		{"nul", 0, typeinfo.CharNarrow, `\000`},
		{"high byte", 0xff, typeinfo.CharNarrow, `\377`},
		{"wide printable", 0x40e, typeinfo.Char16, "Ў"},
		{"char32 emoji", 0x1f600, typeinfo.Char32, "😀"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emitCode(t, tt.code, tt.kind, '\''); got != tt.want {
				t.Errorf("emit %#x = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestEmitQuoteEscaped(t *testing.T) {
	if got := emitCode(t, '\'', typeinfo.CharNarrow, '\''); got != `\'` {
		t.Errorf("single quote = %q, want \\'", got)
	}
	if got := emitCode(t, '"', typeinfo.CharNarrow, '"'); got != `\"` {
		t.Errorf("double quote = %q, want \\\"", got)
	}
	// A quote that is not the delimiter passes through.
	if got := emitCode(t, '"', typeinfo.CharNarrow, '\''); got != `"` {
		t.Errorf("non-delimiter quote = %q, want \"", got)
	}
}

func TestEmitDigitAfterNumericEscape(t *testing.T) {
	var sb strings.Builder
	var esc Escaper
	enc := NewEncodings(nil)
	for _, c := range []uint64{0x01, '7', '7', 'x'} {
		if err := esc.EmitCode(&sb, c, typeinfo.CharNarrow, bytecodec.LittleEndian, enc, '"'); err != nil {
			t.Fatal(err)
		}
	}
	// Digits following a numeric escape must be escaped too or a
	// reader could absorb them into the sequence. The run of escapes
	// ends at the first non-digit.
	if got := sb.String(); got != `\001\067\067x` {
		t.Errorf("sequence = %q, want \\001\\067\\067x", got)
	}
}
