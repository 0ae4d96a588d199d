// Package typeinfo describes target types to the renderer.
//
// A Type carries a code, a byte length, an optional byte-order override
// (scalar storage order), a target type where meaningful, and a field
// table for aggregates, enums, and flags. The renderer consumes types
// through accessors only; how debug info produced them is not this
// package's concern.
//
// Typedefs are preserved in the graph. Resolve strips them all; Peel
// unwraps exactly one, which character-kind classification relies on
// because the wide character typedef is itself the kind carrier.
package typeinfo
