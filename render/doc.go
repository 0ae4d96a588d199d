// Package render turns typed target values into text.
//
// A Context bundles everything one rendering session needs: the
// option set, the radix pair, the language, target memory and the
// pretty-printer registry. Nothing is process-global; a command loop
// owns a Context and mutates it in response to set-commands while
// other sessions keep their own.
//
// The dispatcher runs a fixed precedence chain before any leaf
// renderer sees the value: incomplete types, optimized-out and
// not-saved values, synthetic pointers and unavailable bytes all
// short-circuit with their marker, then pretty-printers, summary mode
// and the depth cap get their turn. Per-type-code leaves live in
// GenericValPrint; languages override the codes they spell
// differently.
//
// Rendering is synchronous. Long walks (arrays, strings, wide decimal
// conversions) observe context cancellation between elements and
// return with partial output already written.
package render
