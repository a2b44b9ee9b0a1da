package convert

import (
	uniffi "github.com/eigerco/uniffi-go"
	"github.com/eigerco/uniffi-go/errors"
	"github.com/eigerco/uniffi-go/wire"
)

// Bool crosses the boundary as an int8: 0 for false, 1 for true. Any other
// byte received from the foreign side is a decode error, never a truthy
// interpretation.
type Bool[T uniffi.Tag] struct{}

func (Bool[T]) Lower(value bool) int8 {
	if value {
		return 1
	}
	return 0
}

func (Bool[T]) TryLift(repr int8) (bool, error) {
	switch repr {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.New(errors.PhaseLift, errors.KindInvalidData).
			FfiType("i8").
			Detail("unexpected boolean value %d", repr).
			Value(repr).
			Build()
	}
}

func (c Bool[T]) Write(value bool, w *wire.Writer) {
	w.WriteI8(c.Lower(value))
}

func (Bool[T]) TryRead(r *wire.Reader) (bool, error) {
	v, err := r.ReadI8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.New(errors.PhaseRead, errors.KindInvalidData).
			FfiType("i8").
			Detail("unexpected boolean value %d", v).
			Value(v).
			Build()
	}
}

// U8 crosses as a uint8.
type U8[T uniffi.Tag] struct{}

func (U8[T]) Lower(value uint8) uint8 { return value }

func (U8[T]) TryLift(repr uint8) (uint8, error) { return repr, nil }

func (U8[T]) Write(value uint8, w *wire.Writer) { w.WriteU8(value) }

func (U8[T]) TryRead(r *wire.Reader) (uint8, error) { return r.ReadU8() }

// U16 crosses as a uint16.
type U16[T uniffi.Tag] struct{}

func (U16[T]) Lower(value uint16) uint16 { return value }

func (U16[T]) TryLift(repr uint16) (uint16, error) { return repr, nil }

func (U16[T]) Write(value uint16, w *wire.Writer) { w.WriteU16(value) }

func (U16[T]) TryRead(r *wire.Reader) (uint16, error) { return r.ReadU16() }

// U32 crosses as a uint32.
type U32[T uniffi.Tag] struct{}

func (U32[T]) Lower(value uint32) uint32 { return value }

func (U32[T]) TryLift(repr uint32) (uint32, error) { return repr, nil }

func (U32[T]) Write(value uint32, w *wire.Writer) { w.WriteU32(value) }

func (U32[T]) TryRead(r *wire.Reader) (uint32, error) { return r.ReadU32() }

// U64 crosses as a uint64.
type U64[T uniffi.Tag] struct{}

func (U64[T]) Lower(value uint64) uint64 { return value }

func (U64[T]) TryLift(repr uint64) (uint64, error) { return repr, nil }

func (U64[T]) Write(value uint64, w *wire.Writer) { w.WriteU64(value) }

func (U64[T]) TryRead(r *wire.Reader) (uint64, error) { return r.ReadU64() }

// I8 crosses as an int8.
type I8[T uniffi.Tag] struct{}

func (I8[T]) Lower(value int8) int8 { return value }

func (I8[T]) TryLift(repr int8) (int8, error) { return repr, nil }

func (I8[T]) Write(value int8, w *wire.Writer) { w.WriteI8(value) }

func (I8[T]) TryRead(r *wire.Reader) (int8, error) { return r.ReadI8() }

// I16 crosses as an int16.
type I16[T uniffi.Tag] struct{}

func (I16[T]) Lower(value int16) int16 { return value }

func (I16[T]) TryLift(repr int16) (int16, error) { return repr, nil }

func (I16[T]) Write(value int16, w *wire.Writer) { w.WriteI16(value) }

func (I16[T]) TryRead(r *wire.Reader) (int16, error) { return r.ReadI16() }

// I32 crosses as an int32.
type I32[T uniffi.Tag] struct{}

func (I32[T]) Lower(value int32) int32 { return value }

func (I32[T]) TryLift(repr int32) (int32, error) { return repr, nil }

func (I32[T]) Write(value int32, w *wire.Writer) { w.WriteI32(value) }

func (I32[T]) TryRead(r *wire.Reader) (int32, error) { return r.ReadI32() }

// I64 crosses as an int64.
type I64[T uniffi.Tag] struct{}

func (I64[T]) Lower(value int64) int64 { return value }

func (I64[T]) TryLift(repr int64) (int64, error) { return repr, nil }

func (I64[T]) Write(value int64, w *wire.Writer) { w.WriteI64(value) }

func (I64[T]) TryRead(r *wire.Reader) (int64, error) { return r.ReadI64() }

// F32 crosses as a float32 (IEEE-754 single).
type F32[T uniffi.Tag] struct{}

func (F32[T]) Lower(value float32) float32 { return value }

func (F32[T]) TryLift(repr float32) (float32, error) { return repr, nil }

func (F32[T]) Write(value float32, w *wire.Writer) { w.WriteF32(value) }

func (F32[T]) TryRead(r *wire.Reader) (float32, error) { return r.ReadF32() }

// F64 crosses as a float64 (IEEE-754 double).
type F64[T uniffi.Tag] struct{}

func (F64[T]) Lower(value float64) float64 { return value }

func (F64[T]) TryLift(repr float64) (float64, error) { return repr, nil }

func (F64[T]) Write(value float64, w *wire.Writer) { w.WriteF64(value) }

func (F64[T]) TryRead(r *wire.Reader) (float64, error) { return r.ReadF64() }
