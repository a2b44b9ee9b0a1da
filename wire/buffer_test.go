package wire

import (
	"bytes"
	"testing"
)

func TestFromBytes_IntoBytes_Roundtrip(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"single byte", []byte{0x01}},
		{"short", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"with zeros", []byte{0, 0, 0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := FromBytes(tt.in)
			got := buf.IntoBytes()
			if !bytes.Equal(got, tt.in) {
				t.Errorf("IntoBytes() = %x, want %x", got, tt.in)
			}
		})
	}
}

func TestFromBytes_EmptyDescriptor(t *testing.T) {
	buf := FromBytes(nil)
	if buf.Cap() != 0 || buf.Len() != 0 || buf.Data() != nil {
		t.Errorf("empty buffer descriptor = {cap %d, len %d, data %p}", buf.Cap(), buf.Len(), buf.Data())
	}
	if err := buf.Validate(); err != nil {
		t.Errorf("empty buffer failed validation: %v", err)
	}
}

func TestFromBytes_KeepsSpareCapacity(t *testing.T) {
	b := make([]byte, 3, 8)
	copy(b, []byte{1, 2, 3})

	buf := FromBytes(b)
	if buf.Len() != 3 {
		t.Errorf("Len() = %d, want 3", buf.Len())
	}
	if buf.Cap() != 8 {
		t.Errorf("Cap() = %d, want 8", buf.Cap())
	}

	got := buf.IntoBytes()
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("IntoBytes() = %v", got)
	}
	if cap(got) != 8 {
		t.Errorf("reclaimed cap = %d, want 8", cap(got))
	}
}

func TestFromBytes_ZeroLengthWithCapacity(t *testing.T) {
	b := make([]byte, 0, 4)

	buf := FromBytes(b)
	if buf.Len() != 0 {
		t.Errorf("Len() = %d, want 0", buf.Len())
	}
	if buf.Cap() != 4 {
		t.Errorf("Cap() = %d, want 4", buf.Cap())
	}
	if buf.Data() == nil {
		t.Error("Data() = nil for a live allocation")
	}

	got := buf.IntoBytes()
	if len(got) != 0 || cap(got) != 4 {
		t.Errorf("IntoBytes() len %d cap %d, want 0 and 4", len(got), cap(got))
	}
}

func TestBuffer_Free(t *testing.T) {
	buf := FromBytes([]byte{1, 2, 3})
	buf.Free()
	if buf.Len() != 0 || buf.Cap() != 0 || buf.Data() != nil {
		t.Error("Free did not invalidate the descriptor")
	}
}

func TestBuffer_Validate(t *testing.T) {
	var d byte

	tests := []struct {
		name    string
		buf     Buffer
		wantErr bool
	}{
		{"zero value", Buffer{}, false},
		{"valid", Buffer{capacity: 4, length: 2, data: &d}, false},
		{"length equals capacity", Buffer{capacity: 2, length: 2, data: &d}, false},
		{"length exceeds capacity", Buffer{capacity: 1, length: 2, data: &d}, true},
		{"negative length", Buffer{capacity: 4, length: -1, data: &d}, true},
		{"negative capacity", Buffer{capacity: -4, length: 0, data: &d}, true},
		{"nil data with capacity", Buffer{capacity: 4, length: 0, data: nil}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.buf.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
