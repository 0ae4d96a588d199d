package bytecodec

import (
	"encoding/binary"

	"github.com/wippyai/debug-renderer/errors"
)

// ByteOrder declares how multi-byte scalars are stored in target memory.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

var orderNames = [...]string{
	LittleEndian: "little",
	BigEndian:    "big",
}

func (o ByteOrder) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return "unknown"
}

// Binary returns the equivalent encoding/binary order.
func (o ByteOrder) Binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// MaxScalarWidth is the widest buffer the extract/pack routines accept.
const MaxScalarWidth = 8

// ExtractUnsigned reads buf as an unsigned integer under order.
// len(buf) must be in [1, MaxScalarWidth]; wider buffers belong to numfmt.
func ExtractUnsigned(buf []byte, order ByteOrder) uint64 {
	var v uint64
	if order == BigEndian {
		for _, b := range buf {
			v = v<<8 | uint64(b)
		}
		return v
	}
	for i := len(buf) - 1; i >= 0; i-- {
		v = v<<8 | uint64(buf[i])
	}
	return v
}

// ExtractSigned reads buf as a two's-complement integer under order,
// sign-extending from the buffer's most significant bit.
func ExtractSigned(buf []byte, order ByteOrder) int64 {
	v := ExtractUnsigned(buf, order)
	bits := uint(len(buf)) * 8
	if bits < 64 && v&(1<<(bits-1)) != 0 {
		v |= ^uint64(0) << bits
	}
	return int64(v)
}

// ExtractAddress reads a target address from buf. Addresses are unsigned
// and at most pointer width, so this is unsigned extraction.
func ExtractAddress(buf []byte, order ByteOrder) uint64 {
	return ExtractUnsigned(buf, order)
}

// Pack writes the low len(buf) bytes of v into buf under order,
// the inverse of ExtractSigned.
func Pack(buf []byte, order ByteOrder, v int64) {
	u := uint64(v)
	if order == BigEndian {
		for i := len(buf) - 1; i >= 0; i-- {
			buf[i] = byte(u)
			u >>= 8
		}
		return
	}
	for i := range buf {
		buf[i] = byte(u)
		u >>= 8
	}
}

// LongestToInt narrows a 64-bit value to int, failing when truncation
// would change the value.
func LongestToInt(v int64) (int, error) {
	n := int(v)
	if int64(n) != v {
		return 0, errors.OutOfRange(v, "int")
	}
	return n, nil
}
