package numfmt

import (
	"context"
	"strconv"
	"testing"

	"github.com/wippyai/debug-renderer/bytecodec"
)

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

func TestBinary(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		order   bytecodec.ByteOrder
		zeroPad bool
		want    string
	}{
		{"one byte", []byte{0x05}, bytecodec.BigEndian, false, "101"},
		{"zero", []byte{0x00}, bytecodec.BigEndian, false, "0"},
		{"zero padded", []byte{0x05}, bytecodec.BigEndian, true, "00000101"},
		{"two bytes be", []byte{0x01, 0x80}, bytecodec.BigEndian, false, "110000000"},
		{"two bytes le", []byte{0x80, 0x01}, bytecodec.LittleEndian, false, "110000000"},
		{"padded width", []byte{0x00, 0xff}, bytecodec.BigEndian, true, "0000000011111111"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Binary(tt.buf, tt.order, tt.zeroPad); got != tt.want {
				t.Errorf("Binary = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOctal(t *testing.T) {
	tests := []struct {
		name  string
		buf   []byte
		order bytecodec.ByteOrder
		want  string
	}{
		{"0xff", []byte{0xff}, bytecodec.BigEndian, "0377"},
		{"zero", []byte{0x00}, bytecodec.BigEndian, "0"},
		{"one", []byte{0x01}, bytecodec.BigEndian, "01"},
		{"u16 be", []byte{0x01, 0xff}, bytecodec.BigEndian, "0777"},
		{"u16 le", []byte{0xff, 0x01}, bytecodec.LittleEndian, "0777"},
		{"u32", []byte{0xde, 0xad, 0xbe, 0xef}, bytecodec.BigEndian, "033653337357"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Octal(tt.buf, tt.order); got != tt.want {
				t.Errorf("Octal = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOctalPrefixInvariant(t *testing.T) {
	bufs := [][]byte{{0}, {1}, {0x80}, {0x12, 0x34}, {0xff, 0xff, 0xff}}
	for _, buf := range bufs {
		got := Octal(buf, bytecodec.BigEndian)
		if got[0] != '0' {
			t.Errorf("Octal(%x) = %q: missing 0 prefix", buf, got)
		}
		if len(got) > 1 && got[1] == '0' {
			t.Errorf("Octal(%x) = %q: leading zero after prefix", buf, got)
		}
	}
}

func TestDecimal(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		buf    []byte
		order  bytecodec.ByteOrder
		signed bool
		want   string
	}{
		{"minus one le", []byte{0xff, 0xff, 0xff, 0xff}, bytecodec.LittleEndian, true, "-1"},
		{"int32 min be", []byte{0x80, 0x00, 0x00, 0x00}, bytecodec.BigEndian, true, "-2147483648"},
		{"unsigned max u32", []byte{0xff, 0xff, 0xff, 0xff}, bytecodec.BigEndian, false, "4294967295"},
		{"zero", []byte{0x00, 0x00}, bytecodec.BigEndian, true, "0"},
		{"plain", []byte{0x30, 0x39}, bytecodec.BigEndian, true, "12345"},
		{"plain le", []byte{0x39, 0x30}, bytecodec.LittleEndian, true, "12345"},
		// 2^64 needs more than a machine word.
		{"beyond 64 bits", []byte{0x01, 0, 0, 0, 0, 0, 0, 0, 0}, bytecodec.BigEndian, false, "18446744073709551616"},
		{"negative 16 bytes", append([]byte{0xff}, make([]byte, 15)...), bytecodec.BigEndian, true, "-1329227995784915872903807060280344576"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decimal(ctx, tt.buf, tt.order, tt.signed)
			if err != nil {
				t.Fatalf("Decimal failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decimal = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	ctx := context.Background()
	values := []int64{0, 1, -1, 255, -256, 65535, -32768, 1<<31 - 1, -(1 << 31), 1<<62 + 12345, -(1<<62 + 12345)}
	for _, v := range values {
		for _, w := range []int{8} {
			for _, order := range []bytecodec.ByteOrder{bytecodec.LittleEndian, bytecodec.BigEndian} {
				buf := make([]byte, w)
				bytecodec.Pack(buf, order, v)
				got, err := Decimal(ctx, buf, order, true)
				if err != nil {
					t.Fatal(err)
				}
				parsed, err := strconv.ParseInt(got, 10, 64)
				if err != nil || parsed != v {
					t.Errorf("round trip %d via %q -> %d (%v)", v, got, parsed, err)
				}
			}
		}
	}
}

func TestDecimalCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Decimal(ctx, make([]byte, 64), bytecodec.BigEndian, false); err == nil {
		t.Error("cancelled context should abort wide decimal formatting")
	}
}

func TestNegationIdentity(t *testing.T) {
	// unsigned(negate(b)) == 2^(8*len) - unsigned(b) for high-bit-set b.
	bufs := [][]byte{{0x80}, {0xff, 0xfe}, {0x80, 0x00, 0x01}}
	for _, order := range []bytecodec.ByteOrder{bytecodec.LittleEndian, bytecodec.BigEndian} {
		for _, buf := range bufs {
			neg := negate(buf, order)
			u := bytecodec.ExtractUnsigned(buf, order)
			n := bytecodec.ExtractUnsigned(neg, order)
			modulus := uint64(1) << (8 * uint(len(buf)))
			if n != modulus-u {
				t.Errorf("negate(%x, %v) = %x: %d != %d", buf, order, neg, n, modulus-u)
			}
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		order   bytecodec.ByteOrder
		zeroPad bool
		want    string
	}{
		{"be", []byte{0x12, 0x34}, bytecodec.BigEndian, false, "0x1234"},
		{"le", []byte{0x12, 0x34}, bytecodec.LittleEndian, false, "0x3412"},
		{"leading zero byte dropped", []byte{0x00, 0x7f}, bytecodec.BigEndian, false, "0x7f"},
		{"first byte one digit", []byte{0x01, 0xff}, bytecodec.BigEndian, false, "0x1ff"},
		{"zero", []byte{0x00, 0x00}, bytecodec.BigEndian, false, "0x0"},
		{"padded", []byte{0x00, 0x7f}, bytecodec.BigEndian, true, "0x007f"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.buf, tt.order, tt.zeroPad); got != tt.want {
				t.Errorf("Hex = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHexZeroPadWidth(t *testing.T) {
	buf := []byte{0x00, 0x01, 0xab}
	got := Hex(buf, bytecodec.BigEndian, true)
	if len(got) != 2+2*len(buf) {
		t.Errorf("zero-padded hex %q should have %d digits", got, 2*len(buf))
	}
}

func TestEndiannessSymmetry(t *testing.T) {
	ctx := context.Background()
	bufs := [][]byte{
		{0x01},
		{0x12, 0x34},
		{0x80, 0x00, 0x00, 0x01},
		{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04, 0x05},
	}
	for _, buf := range bufs {
		rev := reverse(buf)
		if Binary(buf, bytecodec.BigEndian, false) != Binary(rev, bytecodec.LittleEndian, false) {
			t.Errorf("binary symmetry broken for %x", buf)
		}
		if Octal(buf, bytecodec.BigEndian) != Octal(rev, bytecodec.LittleEndian) {
			t.Errorf("octal symmetry broken for %x", buf)
		}
		if Hex(buf, bytecodec.BigEndian, false) != Hex(rev, bytecodec.LittleEndian, false) {
			t.Errorf("hex symmetry broken for %x", buf)
		}
		for _, signed := range []bool{false, true} {
			a, _ := Decimal(ctx, buf, bytecodec.BigEndian, signed)
			b, _ := Decimal(ctx, rev, bytecodec.LittleEndian, signed)
			if a != b {
				t.Errorf("decimal symmetry broken for %x signed=%v: %q vs %q", buf, signed, a, b)
			}
		}
	}
}
