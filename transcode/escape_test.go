package transcode

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/wippyai/debug-renderer/bytecodec"
	"github.com/wippyai/debug-renderer/errors"
	"github.com/wippyai/debug-renderer/typeinfo"
)

func TestParseEscapesNarrow(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"plain", "abc", []byte("abc")},
		{"backslash", `a\\b`, []byte(`a\b`)},
		{"hex", `\x41`, []byte{0x41}},
		{"hex long", `\xff`, []byte{0xff}},
		{"octal", `\101`, []byte{0x41}},
		{"octal short", `\0`, []byte{0}},
		{"octal stops at three", `\1234`, []byte{0123, '4'}},
		{"bmp escape", `é`, []byte{0xc3, 0xa9}},
		{"full escape", `\U0001F600`, []byte{0xf0, 0x9f, 0x98, 0x80}},
		{"mixed", `a\x42c`, []byte{'a', 0x42, 'c'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEscapes(tt.in, typeinfo.CharNarrow, bytecodec.LittleEndian, nil)
			if err != nil {
				t.Fatalf("ParseEscapes(%q): %v", tt.in, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ParseEscapes(%q) = % x, want % x", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseEscapesWide(t *testing.T) {
	got, err := ParseEscapes(`A\x263a`, typeinfo.Char16, bytecodec.LittleEndian, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x41, 0x00, 0x3a, 0x26}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}

	got, err = ParseEscapes(`\777`, typeinfo.Char32, bytecodec.BigEndian, nil)
	if err != nil {
		t.Fatal(err)
	}
	want = []byte{0x00, 0x00, 0x01, 0xff}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestParseEscapesMalformed(t *testing.T) {
	for _, in := range []string{`\`, `\x`, `\xg`, `\q`, `\u12`, `\u12zz`, `\U1234`} {
		_, err := ParseEscapes(in, typeinfo.CharNarrow, bytecodec.LittleEndian, nil)
		if err == nil {
			t.Errorf("ParseEscapes(%q) succeeded, want error", in)
			continue
		}
		var de *errors.Error
		if !stderrors.As(err, &de) || de.Kind != errors.KindMalformedEscape {
			t.Errorf("ParseEscapes(%q) error = %v, want malformed escape", in, err)
		}
	}
}
