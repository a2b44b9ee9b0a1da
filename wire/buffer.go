package wire

import (
	"math"
	"unsafe"

	"github.com/eigerco/uniffi-go/errors"
)

// Buffer is an owned, length-prefixed byte container that can be passed
// across the FFI by value while the underlying bytes stay heap-allocated.
// See the package documentation for the layout and ownership contract.
type Buffer struct {
	capacity int32
	length   int32
	data     *byte
}

// FromBytes takes ownership of b and wraps it in a Buffer descriptor.
// The caller must not reuse b afterward. Buffers larger than 2 GiB cannot
// be represented in the i32 descriptor fields and panic.
func FromBytes(b []byte) Buffer {
	if cap(b) > math.MaxInt32 {
		panic("wire: buffer exceeds i32 capacity field")
	}
	if cap(b) == 0 {
		return Buffer{}
	}
	return Buffer{
		capacity: int32(cap(b)),
		length:   int32(len(b)),
		data:     unsafe.SliceData(b),
	}
}

// IntoBytes reclaims ownership of the underlying bytes. The descriptor is
// consumed: the caller must not use b again, and the returned slice is the
// single owner of the allocation.
func (b Buffer) IntoBytes() []byte {
	if b.data == nil {
		return nil
	}
	return unsafe.Slice(b.data, b.capacity)[:b.length]
}

// Free destroys the buffer without reading it and invalidates the
// descriptor. Destruction must happen exactly once per buffer, on whichever
// side ends up holding it.
func (b *Buffer) Free() {
	b.capacity = 0
	b.length = 0
	b.data = nil
}

// Validate checks the descriptor invariants on a buffer received from the
// untrusted foreign side: non-negative fields, length <= capacity, and a
// nil data pointer only when capacity is zero.
func (b Buffer) Validate() error {
	if b.capacity < 0 || b.length < 0 {
		return errors.InvalidData(errors.PhaseLift, nil, "negative buffer descriptor field")
	}
	if b.length > b.capacity {
		return errors.New(errors.PhaseLift, errors.KindInvalidData).
			Detail("buffer length %d exceeds capacity %d", b.length, b.capacity).
			Build()
	}
	if b.data == nil && b.capacity != 0 {
		return errors.InvalidData(errors.PhaseLift, nil, "nil data pointer with nonzero capacity")
	}
	return nil
}

// Len returns the number of valid bytes.
func (b Buffer) Len() int {
	return int(b.length)
}

// Cap returns the allocation size.
func (b Buffer) Cap() int {
	return int(b.capacity)
}

// Data returns the raw data pointer. Nil only for capacity-zero buffers.
func (b Buffer) Data() *byte {
	return b.data
}
