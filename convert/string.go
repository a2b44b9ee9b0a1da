package convert

import (
	"math"
	"unicode/utf8"

	uniffi "github.com/eigerco/uniffi-go"
	"github.com/eigerco/uniffi-go/errors"
	"github.com/eigerco/uniffi-go/wire"
)

// String crosses the boundary as a wire.Buffer holding an i32 byte count
// followed by UTF-8 bytes. Bytes received from the foreign side are
// validated as UTF-8 before they become a Go string. Lowering a Go string
// that is not valid UTF-8 panics: the foreign mirror cannot represent it,
// so sending it would violate the representation contract.
type String[T uniffi.Tag] struct{}

func (c String[T]) Lower(value string) wire.Buffer {
	return uniffi.LowerIntoBuffer[string, wire.Buffer](c, value)
}

func (c String[T]) TryLift(repr wire.Buffer) (string, error) {
	return uniffi.LiftFromBuffer[string, wire.Buffer](c, repr)
}

func (String[T]) Write(value string, w *wire.Writer) {
	if !utf8.ValidString(value) {
		panic("convert: lowering a string that is not valid UTF-8")
	}
	if len(value) > math.MaxInt32 {
		panic("convert: string exceeds i32 length prefix")
	}
	w.WriteI32(int32(len(value)))
	w.WriteBytes([]byte(value))
}

func (String[T]) TryRead(r *wire.Reader) (string, error) {
	n, err := r.ReadI32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", errors.NegativeLength(nil, n)
	}
	data, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.InvalidUTF8(errors.PhaseRead, nil, data)
	}
	return string(data), nil
}

// Bytes crosses the boundary as a wire.Buffer holding an i32 byte count
// followed by the raw bytes.
type Bytes[T uniffi.Tag] struct{}

func (c Bytes[T]) Lower(value []byte) wire.Buffer {
	return uniffi.LowerIntoBuffer[[]byte, wire.Buffer](c, value)
}

func (c Bytes[T]) TryLift(repr wire.Buffer) ([]byte, error) {
	return uniffi.LiftFromBuffer[[]byte, wire.Buffer](c, repr)
}

func (Bytes[T]) Write(value []byte, w *wire.Writer) {
	if len(value) > math.MaxInt32 {
		panic("convert: byte array exceeds i32 length prefix")
	}
	w.WriteI32(int32(len(value)))
	w.WriteBytes(value)
}

func (Bytes[T]) TryRead(r *wire.Reader) ([]byte, error) {
	n, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.NegativeLength(nil, n)
	}
	return r.ReadBytes(int(n))
}
