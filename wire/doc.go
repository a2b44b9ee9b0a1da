// Package wire implements the owned byte buffer and the bounds-checked
// cursor that compound values travel through at the FFI boundary.
//
// # Buffer ABI
//
// Buffer is the by-value descriptor handed across the boundary:
//
//	┌───────────────┬───────────────┬──────────────────────┐
//	│ capacity: i32 │ length: i32   │ data: owned ptr/null │
//	└───────────────┴───────────────┴──────────────────────┘
//
// Every foreign-language runtime mirrors this layout byte for byte.
// Changing field order, width, or the null-pointer policy is a breaking
// protocol change. Ownership of the pointed-to bytes is exclusive and moves
// exactly once per crossing: FromBytes transfers bytes in, IntoBytes
// reclaims them, Free destroys without reading. A descriptor is consumed by
// IntoBytes and Free and must not be reused.
//
// # Serialized encoding
//
// Writer and Reader fix the scalar conventions for everything serialized
// into a Buffer: big-endian byte order, two's-complement integers, IEEE-754
// floats. This is part of the cross-language wire contract; every generated
// foreign runtime encodes the same way.
//
// Reader never reads past its window. Every fixed-width read is preceded by
// CheckRemaining, so truncated input from the foreign side surfaces as an
// explicit underflow error instead of a panic.
package wire
