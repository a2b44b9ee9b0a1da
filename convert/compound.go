package convert

import (
	"math"

	uniffi "github.com/eigerco/uniffi-go"
	"github.com/eigerco/uniffi-go/errors"
	"github.com/eigerco/uniffi-go/wire"
)

// Optional crosses *V as a wire.Buffer: an i8 flag (0 absent, 1 present)
// followed by the inner encoding when present. Any other flag byte from the
// foreign side is a decode error.
type Optional[T uniffi.Tag, V, F any, C uniffi.FfiConverter[V, F]] struct {
	Inner C
}

func (c Optional[T, V, F, C]) Lower(value *V) wire.Buffer {
	return uniffi.LowerIntoBuffer[*V, wire.Buffer](c, value)
}

func (c Optional[T, V, F, C]) TryLift(repr wire.Buffer) (*V, error) {
	return uniffi.LiftFromBuffer[*V, wire.Buffer](c, repr)
}

func (c Optional[T, V, F, C]) Write(value *V, w *wire.Writer) {
	if value == nil {
		w.WriteI8(0)
		return
	}
	w.WriteI8(1)
	c.Inner.Write(*value, w)
}

func (c Optional[T, V, F, C]) TryRead(r *wire.Reader) (*V, error) {
	flag, err := r.ReadI8()
	if err != nil {
		return nil, err
	}
	switch flag {
	case 0:
		return nil, nil
	case 1:
		value, err := c.Inner.TryRead(r)
		if err != nil {
			return nil, err
		}
		return &value, nil
	default:
		return nil, errors.InvalidDiscriminant(errors.PhaseRead, nil, uint32(uint8(flag)), 1)
	}
}

// initialSequenceCap bounds the capacity trusted from a foreign length
// prefix before any element has decoded, so a hostile count cannot force a
// huge allocation up front.
const initialSequenceCap = 4096

// Sequence crosses []V as a wire.Buffer: an i32 element count followed by
// each element's encoding.
type Sequence[T uniffi.Tag, V, F any, C uniffi.FfiConverter[V, F]] struct {
	Inner C
}

func (c Sequence[T, V, F, C]) Lower(value []V) wire.Buffer {
	return uniffi.LowerIntoBuffer[[]V, wire.Buffer](c, value)
}

func (c Sequence[T, V, F, C]) TryLift(repr wire.Buffer) ([]V, error) {
	return uniffi.LiftFromBuffer[[]V, wire.Buffer](c, repr)
}

func (c Sequence[T, V, F, C]) Write(value []V, w *wire.Writer) {
	if len(value) > math.MaxInt32 {
		panic("convert: sequence exceeds i32 length prefix")
	}
	w.WriteI32(int32(len(value)))
	for _, v := range value {
		c.Inner.Write(v, w)
	}
}

func (c Sequence[T, V, F, C]) TryRead(r *wire.Reader) ([]V, error) {
	n, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.NegativeLength(nil, n)
	}
	out := make([]V, 0, min(int(n), initialSequenceCap))
	for i := int32(0); i < n; i++ {
		v, err := c.Inner.TryRead(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Map crosses map[K]V as a wire.Buffer: an i32 entry count followed by
// key/value encodings. Iteration order is not part of the wire contract;
// the round-trip law for maps is value equality, not byte equality.
type Map[T uniffi.Tag, K comparable, FK, V, FV any, CK uniffi.FfiConverter[K, FK], CV uniffi.FfiConverter[V, FV]] struct {
	Key   CK
	Value CV
}

func (c Map[T, K, FK, V, FV, CK, CV]) Lower(value map[K]V) wire.Buffer {
	return uniffi.LowerIntoBuffer[map[K]V, wire.Buffer](c, value)
}

func (c Map[T, K, FK, V, FV, CK, CV]) TryLift(repr wire.Buffer) (map[K]V, error) {
	return uniffi.LiftFromBuffer[map[K]V, wire.Buffer](c, repr)
}

func (c Map[T, K, FK, V, FV, CK, CV]) Write(value map[K]V, w *wire.Writer) {
	if len(value) > math.MaxInt32 {
		panic("convert: map exceeds i32 length prefix")
	}
	w.WriteI32(int32(len(value)))
	for k, v := range value {
		c.Key.Write(k, w)
		c.Value.Write(v, w)
	}
}

func (c Map[T, K, FK, V, FV, CK, CV]) TryRead(r *wire.Reader) (map[K]V, error) {
	n, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.NegativeLength(nil, n)
	}
	out := make(map[K]V, min(int(n), initialSequenceCap))
	for i := int32(0); i < n; i++ {
		k, err := c.Key.TryRead(r)
		if err != nil {
			return nil, err
		}
		v, err := c.Value.TryRead(r)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
