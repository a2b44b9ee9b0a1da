package wire

import (
	"encoding/binary"
	"math"

	"github.com/eigerco/uniffi-go/errors"
)

// Reader is a cursor over a byte window. TryRead implementations advance it
// and must leave it positioned exactly after the value they decode. Reads
// never go past the declared end: malformed length prefixes and truncated
// payloads from the foreign side surface as underflow errors.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader over b. The Reader takes ownership of b.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// CheckRemaining fails with an underflow error when fewer than n bytes
// remain. It is called before every fixed-width read so that a short buffer
// is an explicit decode error rather than an out-of-bounds panic.
func (r *Reader) CheckRemaining(n int) error {
	if r.Remaining() < n {
		return errors.Underflow(r.Remaining(), n)
	}
	return nil
}

func (r *Reader) ReadU8() (uint8, error) {
	if err := r.CheckRemaining(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *Reader) ReadU16() (uint16, error) {
	if err := r.CheckRemaining(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *Reader) ReadU32() (uint32, error) {
	if err := r.CheckRemaining(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *Reader) ReadU64() (uint64, error) {
	if err := r.CheckRemaining(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

func (r *Reader) ReadF32() (float32, error) {
	bits, err := r.ReadU32()
	return math.Float32frombits(bits), err
}

func (r *Reader) ReadF64() (float64, error) {
	bits, err := r.ReadU64()
	return math.Float64frombits(bits), err
}

// ReadBytes consumes n bytes and returns a copy, so the caller's bytes do
// not alias the Reader's window.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.NegativeLength(nil, int32(n))
	}
	if err := r.CheckRemaining(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}
