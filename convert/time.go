package convert

import (
	"math"
	"time"

	uniffi "github.com/eigerco/uniffi-go"
	"github.com/eigerco/uniffi-go/errors"
	"github.com/eigerco/uniffi-go/wire"
)

const nanosPerSecond = 1_000_000_000

// Timestamp crosses the boundary as a wire.Buffer holding an i64 count of
// whole seconds since the Unix epoch (floored, so pre-epoch instants have a
// negative second count) followed by a u32 nanosecond remainder in
// [0, 1e9). Every instant representable by time.Time round-trips exactly,
// with two documented losses: the monotonic clock reading is dropped and
// lifted values are always in UTC.
type Timestamp[T uniffi.Tag] struct{}

func (c Timestamp[T]) Lower(value time.Time) wire.Buffer {
	return uniffi.LowerIntoBuffer[time.Time, wire.Buffer](c, value)
}

func (c Timestamp[T]) TryLift(repr wire.Buffer) (time.Time, error) {
	return uniffi.LiftFromBuffer[time.Time, wire.Buffer](c, repr)
}

func (Timestamp[T]) Write(value time.Time, w *wire.Writer) {
	w.WriteI64(value.Unix())
	w.WriteU32(uint32(value.Nanosecond()))
}

func (Timestamp[T]) TryRead(r *wire.Reader) (time.Time, error) {
	secs, err := r.ReadI64()
	if err != nil {
		return time.Time{}, err
	}
	nanos, err := r.ReadU32()
	if err != nil {
		return time.Time{}, err
	}
	if nanos >= nanosPerSecond {
		return time.Time{}, errors.New(errors.PhaseRead, errors.KindInvalidData).
			GoType("time.Time").
			Detail("nanosecond remainder %d out of range", nanos).
			Build()
	}
	return time.Unix(secs, int64(nanos)).UTC(), nil
}

// Duration crosses the boundary as a wire.Buffer holding a u64 count of
// whole seconds followed by a u32 nanosecond remainder. Negative durations
// have no wire representation and panic on the lowering path. Encodings
// past Go's int64-nanosecond range fail to lift with an overflow error.
type Duration[T uniffi.Tag] struct{}

func (c Duration[T]) Lower(value time.Duration) wire.Buffer {
	return uniffi.LowerIntoBuffer[time.Duration, wire.Buffer](c, value)
}

func (c Duration[T]) TryLift(repr wire.Buffer) (time.Duration, error) {
	return uniffi.LiftFromBuffer[time.Duration, wire.Buffer](c, repr)
}

func (Duration[T]) Write(value time.Duration, w *wire.Writer) {
	if value < 0 {
		panic("convert: lowering a negative duration")
	}
	w.WriteU64(uint64(value / time.Second))
	w.WriteU32(uint32(value % time.Second))
}

func (Duration[T]) TryRead(r *wire.Reader) (time.Duration, error) {
	secs, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	nanos, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	if nanos >= nanosPerSecond {
		return 0, errors.New(errors.PhaseRead, errors.KindInvalidData).
			GoType("time.Duration").
			Detail("nanosecond remainder %d out of range", nanos).
			Build()
	}
	if secs > (math.MaxInt64-uint64(nanos))/nanosPerSecond {
		return 0, errors.Overflow(errors.PhaseRead, nil, secs, "time.Duration")
	}
	return time.Duration(secs)*time.Second + time.Duration(nanos), nil
}
