// Package value represents typed views of target data.
//
// A Value binds a type descriptor to a location: an address in target
// memory, a caller-provided contents buffer, the debugger's own memory,
// a register, or nowhere at all (optimized out, unavailable). Values
// carry per-byte and per-bit availability marks that the renderer
// consults before interpreting any content.
package value
