// Package bytecodec reads and writes scalar integers in target byte order.
//
// All extraction honors the byte order declared by the value's type, which
// may differ from the target architecture's default (scalar storage order
// in the debug-info ecosystem). Buffers wider than 8 bytes are not scalar
// material; the numfmt package formats those directly from bytes.
package bytecodec
