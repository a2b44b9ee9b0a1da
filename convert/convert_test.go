package convert_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uniffi "github.com/eigerco/uniffi-go"
	"github.com/eigerco/uniffi-go/convert"
	"github.com/eigerco/uniffi-go/errors"
	"github.com/eigerco/uniffi-go/wire"
)

// testTag stands in for a generated binding module's namespace tag.
type testTag struct{ uniffi.NamespaceTag }

// roundTrip asserts the round-trip law for one converter and value: lifting
// a lowered value reproduces it, and reading a written value reproduces it
// while consuming the encoding exactly.
func roundTrip[V, F any](t *testing.T, conv uniffi.FfiConverter[V, F], value V) {
	t.Helper()

	lifted, err := conv.TryLift(conv.Lower(value))
	require.NoError(t, err)
	assert.Equal(t, value, lifted)

	w := wire.NewWriter()
	conv.Write(value, w)
	r := wire.NewReader(w.Bytes())
	read, err := conv.TryRead(r)
	require.NoError(t, err)
	assert.Equal(t, value, read)
	assert.Zero(t, r.Remaining(), "TryRead left unconsumed bytes")
}

func TestPrimitiveRoundTrips(t *testing.T) {
	roundTrip[bool, int8](t, convert.Bool[testTag]{}, true)
	roundTrip[bool, int8](t, convert.Bool[testTag]{}, false)

	roundTrip[uint8, uint8](t, convert.U8[testTag]{}, 0)
	roundTrip[uint8, uint8](t, convert.U8[testTag]{}, math.MaxUint8)
	roundTrip[uint16, uint16](t, convert.U16[testTag]{}, math.MaxUint16)
	roundTrip[uint32, uint32](t, convert.U32[testTag]{}, math.MaxUint32)
	roundTrip[uint64, uint64](t, convert.U64[testTag]{}, math.MaxUint64)

	roundTrip[int8, int8](t, convert.I8[testTag]{}, math.MinInt8)
	roundTrip[int16, int16](t, convert.I16[testTag]{}, math.MinInt16)
	roundTrip[int32, int32](t, convert.I32[testTag]{}, -1)
	roundTrip[int64, int64](t, convert.I64[testTag]{}, math.MinInt64)

	roundTrip[float32, float32](t, convert.F32[testTag]{}, float32(3.5))
	roundTrip[float64, float64](t, convert.F64[testTag]{}, -0.0)
	roundTrip[float64, float64](t, convert.F64[testTag]{}, math.MaxFloat64)
}

func TestBool_RejectsUnexpectedBytes(t *testing.T) {
	conv := convert.Bool[testTag]{}

	_, err := conv.TryLift(2)
	require.Error(t, err)
	assert.True(t, errors.IsDecodeError(err))

	_, err = conv.TryRead(wire.NewReader([]byte{0xff}))
	require.Error(t, err)
	assert.True(t, errors.IsDecodeError(err))
}

func TestString_RoundTrip(t *testing.T) {
	conv := convert.String[testTag]{}

	for _, s := range []string{"", "hello", "héllo wörld", "日本語", "a\x00b"} {
		roundTrip[string, wire.Buffer](t, conv, s)
	}
}

func TestString_InvalidUTF8(t *testing.T) {
	conv := convert.String[testTag]{}

	// length prefix 2, then an invalid sequence
	w := wire.NewWriter()
	w.WriteI32(2)
	w.WriteBytes([]byte{0xff, 0xfe})
	_, err := conv.TryLift(wire.FromBytes(w.Bytes()))
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseRead, Kind: errors.KindInvalidUTF8})

	assert.Panics(t, func() {
		conv.Lower(string([]byte{0xff, 0xfe}))
	})
}

func TestString_NegativeLength(t *testing.T) {
	conv := convert.String[testTag]{}

	w := wire.NewWriter()
	w.WriteI32(-1)
	_, err := conv.TryLift(wire.FromBytes(w.Bytes()))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseRead, Kind: errors.KindNegativeLength})
}

func TestString_TruncatedPayload(t *testing.T) {
	conv := convert.String[testTag]{}

	w := wire.NewWriter()
	w.WriteI32(10)
	w.WriteBytes([]byte("short"))
	_, err := conv.TryLift(wire.FromBytes(w.Bytes()))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseRead, Kind: errors.KindUnderflow})
}

func TestBytes_RoundTrip(t *testing.T) {
	conv := convert.Bytes[testTag]{}
	roundTrip[[]byte, wire.Buffer](t, conv, []byte{})
	roundTrip[[]byte, wire.Buffer](t, conv, []byte{0, 1, 2, 0xff})
}

func TestTimestamp_RoundTrip(t *testing.T) {
	conv := convert.Timestamp[testTag]{}

	tests := []struct {
		name  string
		value time.Time
	}{
		{"epoch", time.Unix(0, 0).UTC()},
		{"post-epoch with nanos", time.Unix(100, 100).UTC()},
		{"pre-epoch whole seconds", time.Unix(-100, 0).UTC()},
		{"pre-epoch with nanos", time.Unix(-100, 0).Add(-100 * time.Nanosecond).UTC()},
		{"sub-second pre-epoch", time.Unix(0, 0).Add(-time.Nanosecond).UTC()},
		{"far future", time.Date(3000, 1, 2, 3, 4, 5, 678, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roundTrip[time.Time, wire.Buffer](t, conv, tt.value)
		})
	}
}

func TestTimestamp_DropsMonotonicAndLocation(t *testing.T) {
	conv := convert.Timestamp[testTag]{}

	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2024, 6, 1, 12, 0, 0, 42, loc)
	out, err := conv.TryLift(conv.Lower(in))
	require.NoError(t, err)
	assert.True(t, in.Equal(out), "instant changed across the boundary")
	assert.Equal(t, time.UTC, out.Location())
}

func TestTimestamp_RejectsOversizedNanos(t *testing.T) {
	conv := convert.Timestamp[testTag]{}

	w := wire.NewWriter()
	w.WriteI64(0)
	w.WriteU32(1_000_000_000)
	_, err := conv.TryLift(wire.FromBytes(w.Bytes()))
	require.Error(t, err)
	assert.True(t, errors.IsDecodeError(err))
}

func TestDuration_RoundTrip(t *testing.T) {
	conv := convert.Duration[testTag]{}
	roundTrip[time.Duration, wire.Buffer](t, conv, 0)
	roundTrip[time.Duration, wire.Buffer](t, conv, 100*time.Second+100*time.Nanosecond)
	roundTrip[time.Duration, wire.Buffer](t, conv, time.Duration(math.MaxInt64))
}

func TestDuration_NegativePanics(t *testing.T) {
	conv := convert.Duration[testTag]{}
	assert.Panics(t, func() {
		conv.Lower(-time.Second)
	})
}

func TestDuration_OverflowingEncoding(t *testing.T) {
	conv := convert.Duration[testTag]{}

	w := wire.NewWriter()
	w.WriteU64(math.MaxUint64)
	w.WriteU32(0)
	_, err := conv.TryLift(wire.FromBytes(w.Bytes()))
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseRead, Kind: errors.KindOverflow})
}

func TestOptional_RoundTrip(t *testing.T) {
	conv := convert.Optional[testTag, uint32, uint32, convert.U32[testTag]]{}

	roundTrip[*uint32, wire.Buffer](t, conv, nil)
	v := uint32(7)
	roundTrip[*uint32, wire.Buffer](t, conv, &v)
}

func TestOptional_InvalidFlag(t *testing.T) {
	conv := convert.Optional[testTag, uint32, uint32, convert.U32[testTag]]{}

	w := wire.NewWriter()
	w.WriteI8(2)
	w.WriteU32(7)
	_, err := conv.TryLift(wire.FromBytes(w.Bytes()))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseRead, Kind: errors.KindInvalidVariant})
}

func TestSequence_RoundTrip(t *testing.T) {
	conv := convert.Sequence[testTag, string, wire.Buffer, convert.String[testTag]]{}

	roundTrip[[]string, wire.Buffer](t, conv, []string{})
	roundTrip[[]string, wire.Buffer](t, conv, []string{"a", "", "ccc"})
}

func TestSequence_HostileLengthPrefix(t *testing.T) {
	conv := convert.Sequence[testTag, uint64, uint64, convert.U64[testTag]]{}

	// claims a billion elements, carries one
	w := wire.NewWriter()
	w.WriteI32(1_000_000_000)
	w.WriteU64(1)
	_, err := conv.TryLift(wire.FromBytes(w.Bytes()))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseRead, Kind: errors.KindUnderflow})
}

func TestMap_RoundTrip(t *testing.T) {
	conv := convert.Map[testTag, string, wire.Buffer, int32, int32, convert.String[testTag], convert.I32[testTag]]{}

	roundTrip[map[string]int32, wire.Buffer](t, conv, map[string]int32{})
	roundTrip[map[string]int32, wire.Buffer](t, conv, map[string]int32{"a": 1, "b": -2, "": 0})
}

func TestNestedCompounds(t *testing.T) {
	inner := convert.Sequence[testTag, uint8, uint8, convert.U8[testTag]]{}
	conv := convert.Optional[testTag, []uint8, wire.Buffer, convert.Sequence[testTag, uint8, uint8, convert.U8[testTag]]]{Inner: inner}

	v := []uint8{1, 2, 3}
	roundTrip[*[]uint8, wire.Buffer](t, conv, &v)
}
