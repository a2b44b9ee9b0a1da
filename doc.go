// Package uniffi provides the runtime marshaling layer used by generated
// cross-language bindings to move values between Go and foreign-language
// code across a C-style FFI.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	uniffi/        Root package with the FfiConverter contract and namespace tags
//	├── wire/      Owned wire buffers and the bounds-checked byte cursor
//	├── convert/   Converter implementations for primitives and compounds
//	├── version/   Build-time generator/runtime compatibility gate
//	├── boundary/  Call status, error lowering and panic containment
//	├── errors/    Structured error types
//	└── docs/      Documentation metadata extracted from interface sources
//
// # The conversion contract
//
// FfiConverter is the contract every convertible type implements once per
// namespace tag: Lower and TryLift move whole values across the boundary as
// their FFI representation, Write and TryRead serialize them as fields of a
// larger compound value. Scalars cross as fixed-width values; everything
// else is serialized into a wire.Buffer.
//
//	conv := convert.String[bindings.Tag]{}
//	buf := conv.Lower("hello")        // ownership moves into the buffer
//	s, err := conv.TryLift(buf)       // buffer reclaimed and consumed
//
// # Namespace tags
//
// Several independently generated binding modules can be linked into one
// process, and a shared type may need a converter in each of them. The
// contract is therefore indexed by (type, tag): every generated module
// declares its own tag type and parameterizes its converters with it.
// Forward lets a module reuse another tag's converter verbatim, so a single
// serialization definition backs both tags and their wire bytes stay
// compatible.
//
// # Safety
//
// Implementing FfiConverter asserts that the chosen FFI representation
// matches, bit for bit, what the foreign-language mirror code expects. A
// mismatched implementation corrupts memory rather than merely misbehaving.
// Converter implementations should come from the bindings generator;
// hand-written ones need review at that severity.
//
// # Thread Safety
//
// The conversion layer is stateless per call and adds no locking. Foreign
// callers may invoke boundary entry points from any number of threads;
// exported object implementations must themselves be safe for concurrent
// use. Buffer ownership hand-off is single-writer by construction because
// ownership moves, never aliases.
package uniffi
