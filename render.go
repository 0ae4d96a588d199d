package debugrenderer

// TargetMemory is the single primitive through which the renderer reads
// bytes from a debug target. Implementations may be backed by a live
// process, a core dump, or a wasm instance's linear memory.
//
// ReadMemory fills buf starting at addr and returns the number of bytes
// actually read. A short read with a non-nil error means the prefix
// buf[:n] is valid; callers use this to render partially available
// values.
type TargetMemory interface {
	ReadMemory(addr uint64, buf []byte) (int, error)
}

// CharsetProvider names the character encodings of the debug target.
// The names follow the IANA style used by the encoding tables
// ("ISO-8859-1", "UTF-16LE", ...). The 16- and 32-bit encodings are not
// listed here: their names are derived from the element type's byte
// order.
type CharsetProvider interface {
	TargetCharset() string
	TargetWideCharset() string
}

// SymbolResolver maps a target address back to a symbol name, used when
// printing function pointers and, with print symbol enabled, data
// addresses. Resolve returns the symbol name and the offset of addr
// from the symbol's start; ok reports whether a symbol covers addr.
type SymbolResolver interface {
	Resolve(addr uint64) (name string, offset uint64, ok bool)
}
