// Package convert provides FfiConverter implementations for the primitive
// and generic compound types that every generated binding module builds on.
//
// Scalars (booleans, fixed-width integers, floats) cross the boundary as
// their own fixed-width FFI representation. Strings, byte arrays, time
// values and the generic compounds (Optional, Sequence, Map) have no
// natural fixed-width representation and use the buffer-based default
// strategy: serialized with Write into an owned wire.Buffer on the way out,
// reclaimed and strictly decoded on the way in.
//
// All converters are zero-size and parameterized by a namespace tag, so two
// generated modules hold independent implementations for the same Go type.
// Record, enum and error converters for user-defined types are emitted by
// the bindings generator in the same shape, composing these primitives
// through Write and TryRead.
package convert
