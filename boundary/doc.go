// Package boundary handles the last step before control returns to foreign
// code: turning Go failures into outcomes that are safe to hand across the
// FFI.
//
// Every boundary entry point fills a CallStatus out-parameter. Declared
// errors are lowered into its error buffer as typed values the foreign
// bindings reconstruct. Panics are contained: unwinding into a foreign call
// frame is undefined in most ABI conventions, so Call and CallWithError
// recover anything raised inside the call body, report it through the
// process-wide hook, and return normally with an unexpected-error status.
//
// One failure is not survivable. When a declared error cannot be recovered
// to its declared concrete type, code generation or linking has paired this
// call site with the wrong error - lowering whatever we do have could hand
// the foreign side a value that violates the agreed representation. That is
// handled by immediate process termination, not by reporting.
package boundary
