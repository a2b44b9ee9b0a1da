// Package errors provides structured error types for the marshaling runtime.
//
// Errors carry a Phase (which direction data was moving), a Kind (the
// failure category), the Go and FFI type names involved, and a field path
// into compound values, so a decode failure three levels deep in a record
// still produces an actionable message.
//
// Decode errors - failures while lifting or reading bytes received from the
// foreign side - are always recoverable values, never panics. Malformed
// input is a routine condition at a trust boundary.
package errors
