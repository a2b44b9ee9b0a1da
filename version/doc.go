// Package version gates generated scaffolding against the runtime it links
// with.
//
// A generator/runtime version mismatch means unpredictable representation
// skew, so it must fail at build time, never at first call. The runtime
// embeds its protocol token here; the generator embeds its own token into
// every generated module together with a compile-time assertion comparing
// the two (see Gate in version.go). Tokens are equal only when they are
// byte-identical, and are bounded to under 10 bytes so the check stays
// expressible in the weakest build-time facility any mirrored runtime has.
package version
