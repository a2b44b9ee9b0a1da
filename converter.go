package uniffi

import (
	"github.com/eigerco/uniffi-go/errors"
	"github.com/eigerco/uniffi-go/wire"
)

// Tag constrains the namespace tag types that index converter
// implementations. A tag is an identity, not a value: it is never
// instantiated, only used as a type parameter for dispatch. Generated
// binding modules declare one by embedding NamespaceTag:
//
//	type Tag struct{ uniffi.NamespaceTag }
type Tag interface {
	namespaceTag()
}

// NamespaceTag is embedded by generated modules to declare their tag type.
type NamespaceTag struct{}

func (NamespaceTag) namespaceTag() {}

// FfiConverter defines how values of type V cross the FFI as the low-level
// representation F. F must be a fixed-width scalar or a wire.Buffer; it is
// the binding contract with the foreign-language mirror code.
//
// Exactly one FFI representation exists per (convertible type, namespace
// tag) pair. Implementations are normally emitted by the bindings
// generator; see the package documentation for the safety contract.
type FfiConverter[V, F any] interface {
	// Lower consumes value and produces its FFI representation. Ownership
	// of any heap data inside value moves into the representation; the
	// caller must not reuse value afterward.
	Lower(value V) F

	// TryLift consumes a representation received from the untrusted
	// foreign side and reconstructs the value. Structurally invalid input
	// fails with a decode error, never undefined behavior.
	TryLift(repr F) (V, error)

	// Write serializes value by appending to w, for when the value is a
	// field of a larger compound type. Ownership semantics match Lower.
	Write(value V, w *wire.Writer)

	// TryRead decodes one value from r, advancing it to exactly the end of
	// the encoded value. It never reads past the cursor's declared end.
	TryRead(r *wire.Reader) (V, error)
}

// Object marks exported interface implementations that cross the boundary
// as shared, mutable capabilities. The marshaling layer performs no
// locking: implementations must be safe to share and mutate from multiple
// threads. This obligation is documented rather than enforced.
type Object interface {
	FfiObject()
}

// LowerIntoBuffer is the default lowering strategy for types without a
// natural fixed-width representation: serialize into a fresh accumulator
// and hand the bytes across as an owned wire.Buffer.
func LowerIntoBuffer[V, F any](conv FfiConverter[V, F], value V) wire.Buffer {
	w := wire.NewWriter()
	conv.Write(value, w)
	return wire.FromBytes(w.Bytes())
}

// LiftFromBuffer is the matching lifting strategy: reclaim the buffer's
// bytes, read exactly one value from the start, and require that nothing
// remains. The strict-length contract rejects buffers with trailing junk
// instead of silently ignoring it.
func LiftFromBuffer[V, F any](conv FfiConverter[V, F], buf wire.Buffer) (V, error) {
	var zero V
	if err := buf.Validate(); err != nil {
		return zero, err
	}
	r := wire.NewReader(buf.IntoBytes())
	value, err := conv.TryRead(r)
	if err != nil {
		return zero, err
	}
	if n := r.Remaining(); n != 0 {
		return zero, errors.TrailingBytes(n)
	}
	return value, nil
}

// Forward implements the contract for tag T by delegating every operation
// to an existing converter C defined under another tag. A module whose tag
// has no implementation for a foreign type reuses the owning module's
// definition this way instead of re-deriving it: one serialization
// definition backs both tags, so bytes produced under either tag decode
// under the other by construction.
type Forward[T Tag, V, F any, C FfiConverter[V, F]] struct {
	Inner C
}

func (f Forward[T, V, F, C]) Lower(value V) F {
	return f.Inner.Lower(value)
}

func (f Forward[T, V, F, C]) TryLift(repr F) (V, error) {
	return f.Inner.TryLift(repr)
}

func (f Forward[T, V, F, C]) Write(value V, w *wire.Writer) {
	f.Inner.Write(value, w)
}

func (f Forward[T, V, F, C]) TryRead(r *wire.Reader) (V, error) {
	return f.Inner.TryRead(r)
}
