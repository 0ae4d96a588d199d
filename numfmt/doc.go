// Package numfmt formats byte buffers of arbitrary length as binary,
// octal, decimal, and hexadecimal text.
//
// Every routine takes the buffer's byte order and produces output that
// depends only on the logical value: the same bytes render identically
// on any host. Buffers longer than 8 bytes are handled directly on the
// bytes; nothing here round-trips through a machine word.
package numfmt
