// Package debugrenderer provides the value-rendering core of a source-level
// debugger: given a typed view of target memory, formatting options, and a
// language's decorations, it produces the textual form of the value.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	debugrenderer/       Root package with core TargetMemory and charset interfaces
//	├── render/          Dispatcher, options context, languages, array walker
//	├── typeinfo/        Type descriptors and char-kind classification
//	├── value/           Value views with per-byte/per-bit availability
//	├── bytecodec/       Scalar extraction under arbitrary byte order
//	├── numfmt/          Arbitrary-width binary/octal/decimal/hex formatting
//	├── transcode/       Character and string transcoding with escapes
//	├── target/          Memory backends and the bounded string reader
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Render a 32-bit integer out of a memory dump:
//
//	mem := target.NewBufferMemory(0x1000, dump)
//	typ := typeinfo.Builtin("int32")
//	val := value.AtAddress(typ, 0x1004)
//
//	ctx := render.NewContext(render.CLike(), render.WithMemory(mem))
//	var out strings.Builder
//	if err := ctx.ValuePrint(context.Background(), &out, val); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out.String())
//
// # Byte Order
//
// Every numeric extraction consults the type's own byte order first; the
// architecture default applies only when the type carries none. The same
// input bytes render identically regardless of host endianness.
//
// # Availability
//
// Values track which of their bytes and bits the target could actually
// provide. Optimized-out bits render as <optimized out>, missing bytes as
// <unavailable>, and synthetic pointers as <synthetic pointer>; these
// markers take precedence over normal rendering.
//
// # Thread Safety
//
// The rendering core is single-threaded and synchronous. A render.Context
// is NOT safe for concurrent use; give each goroutine its own. Long
// operations (string reads, array walks, wide decimal formatting) observe
// context.Context cancellation between iterations and return with partial
// output already flushed.
package debugrenderer
