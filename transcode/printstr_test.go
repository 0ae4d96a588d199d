package transcode

import (
	"context"
	"strings"
	"testing"

	"github.com/wippyai/debug-renderer/bytecodec"
	"github.com/wippyai/debug-renderer/typeinfo"
)

func printNarrow(t *testing.T, data []byte, opts PrintOptions) string {
	t.Helper()
	var sb strings.Builder
	err := PrintString(context.Background(), &sb, data, typeinfo.CharNarrow, bytecodec.LittleEndian, NewEncodings(nil), opts)
	if err != nil {
		t.Fatalf("PrintString: %v", err)
	}
	return sb.String()
}

func TestPrintStringPlain(t *testing.T) {
	got := printNarrow(t, []byte("hello"), PrintOptions{RepeatThreshold: 10})
	if got != `"hello"` {
		t.Errorf("got %q, want \"hello\"", got)
	}
}

func TestPrintStringEmpty(t *testing.T) {
	if got := printNarrow(t, nil, PrintOptions{}); got != `""` {
		t.Errorf("got %q, want empty quotes", got)
	}
}

func TestPrintStringRepeatCompression(t *testing.T) {
	data := append([]byte(strings.Repeat("A", 11)), 'B')
	got := printNarrow(t, data, PrintOptions{RepeatThreshold: 10})
	want := `'A' <repeats 11 times>, "B"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintStringRepeatAtThreshold(t *testing.T) {
	// Exactly at the threshold the run prints literally.
	data := []byte(strings.Repeat("A", 10))
	got := printNarrow(t, data, PrintOptions{RepeatThreshold: 10})
	if got != `"AAAAAAAAAA"` {
		t.Errorf("got %q, want literal run", got)
	}
}

func TestPrintStringRepeatMiddle(t *testing.T) {
	data := []byte("ab" + strings.Repeat("c", 20) + "de")
	got := printNarrow(t, data, PrintOptions{RepeatThreshold: 10})
	want := `"ab", 'c' <repeats 20 times>, "de"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintStringMaxElements(t *testing.T) {
	got := printNarrow(t, []byte("abcdefgh"), PrintOptions{MaxElements: 3})
	if got != `"abc"...` {
		t.Errorf("got %q, want \"abc\"...", got)
	}
}

func TestPrintStringForceEllipsis(t *testing.T) {
	got := printNarrow(t, []byte("ab"), PrintOptions{ForceEllipsis: true})
	if got != `"ab"...` {
		t.Errorf("got %q, want \"ab\"...", got)
	}
}

func TestPrintStringDropTerminator(t *testing.T) {
	got := printNarrow(t, []byte{'h', 'i', 0}, PrintOptions{DropTerminator: true})
	if got != `"hi"` {
		t.Errorf("got %q, want \"hi\"", got)
	}
	// Embedded NULs stay.
	got = printNarrow(t, []byte{'h', 0, 'i'}, PrintOptions{DropTerminator: true})
	if got != `"h\000i"` {
		t.Errorf("got %q, want \"h\\000i\"", got)
	}
}

func TestPrintStringEscapes(t *testing.T) {
	got := printNarrow(t, []byte("a\nb\"c"), PrintOptions{})
	if got != `"a\nb\"c"` {
		t.Errorf("got %q, want %q", got, `"a\nb\"c"`)
	}
}

func TestPrintStringIncompleteSequence(t *testing.T) {
	// Truncated UTF-8 at the end of the buffer.
	got := printNarrow(t, []byte{'a', 0xc3}, PrintOptions{})
	want := `"a", <incomplete sequence \303>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintStringUTF16(t *testing.T) {
	var sb strings.Builder
	data := []byte{0x00, 0x48, 0x00, 0x69} // "Hi" big endian
	err := PrintString(context.Background(), &sb, data, typeinfo.Char16, bytecodec.BigEndian, NewEncodings(nil), PrintOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if sb.String() != `"Hi"` {
		t.Errorf("got %q, want \"Hi\"", sb.String())
	}
}

func TestPrintStringCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var sb strings.Builder
	err := PrintString(ctx, &sb, []byte("abc"), typeinfo.CharNarrow, bytecodec.LittleEndian, NewEncodings(nil), PrintOptions{})
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}
