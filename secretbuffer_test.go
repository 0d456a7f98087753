package seededcrypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestSecretBuffer_HexRoundTrip(t *testing.T) {
	tests := [][]byte{
		{},
		{0x00},
		{0xde, 0xad, 0xbe, 0xef},
		make([]byte, 64),
	}
	for _, want := range tests {
		sb := NewSecretBufferFromBytes(want)
		hexStr := sb.ToHex()
		if len(hexStr) != 2*len(want) {
			t.Errorf("ToHex() len = %d, want %d", len(hexStr), 2*len(want))
		}
		for _, c := range hexStr {
			if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
				t.Errorf("ToHex() produced non [0-9a-f] character %q", c)
			}
		}
		roundTripped, err := NewSecretBufferFromHex(hexStr)
		if err != nil {
			t.Fatalf("NewSecretBufferFromHex() error = %v", err)
		}
		if !bytes.Equal(roundTripped.Bytes(), want) {
			t.Errorf("round trip = %x, want %x", roundTripped.Bytes(), want)
		}
	}
}

func TestSecretBuffer_FromHex_AcceptsUppercaseAndPrefix(t *testing.T) {
	sb, err := NewSecretBufferFromHex("0XDEADBEEF")
	if err != nil {
		t.Fatalf("NewSecretBufferFromHex() error = %v", err)
	}
	if !bytes.Equal(sb.Bytes(), []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Errorf("got %x", sb.Bytes())
	}
}

func TestSecretBuffer_FromHex_Invalid(t *testing.T) {
	tests := []string{"xyz", "abc", "0xgg"}
	for _, s := range tests {
		if _, err := NewSecretBufferFromHex(s); !errors.Is(err, ErrInvalidHexCharacter) {
			t.Errorf("NewSecretBufferFromHex(%q) error = %v, want ErrInvalidHexCharacter", s, err)
		}
	}
}

func TestSecretBuffer_ToUTF8String(t *testing.T) {
	sb := NewSecretBufferFromUTF8String("hello, world")
	if sb.ToUTF8String() != "hello, world" {
		t.Errorf("ToUTF8String() = %q", sb.ToUTF8String())
	}
}

func TestSecretBuffer_Close_ZeroesAndDisables(t *testing.T) {
	sb := NewSecretBufferFromBytes([]byte{1, 2, 3, 4})
	sb.Close()
	if sb.Bytes() != nil {
		t.Error("Bytes() after Close() should be nil")
	}
	// Closing twice must not panic.
	sb.Close()
}

func TestFixedLengthList_RoundTrip(t *testing.T) {
	a := NewSecretBufferFromBytes([]byte("first"))
	b := NewSecretBufferFromBytes([]byte{})
	c := NewSecretBufferFromBytes([]byte("third-field"))

	combined := CombineFixedLengthList(a, b, c)
	parts, err := combined.SplitFixedLengthList(3)
	if err != nil {
		t.Fatalf("SplitFixedLengthList() error = %v", err)
	}
	if string(parts[0].Bytes()) != "first" {
		t.Errorf("parts[0] = %q", parts[0].Bytes())
	}
	if len(parts[1].Bytes()) != 0 {
		t.Errorf("parts[1] should be empty, got %q", parts[1].Bytes())
	}
	if string(parts[2].Bytes()) != "third-field" {
		t.Errorf("parts[2] = %q", parts[2].Bytes())
	}
}

func TestFixedLengthList_TrailingBytesFail(t *testing.T) {
	combined := CombineFixedLengthList(NewSecretBufferFromBytes([]byte("a")))
	raw := append(combined.raw(), 0x00)
	wrapped := &SecretBuffer{data: raw}
	if _, err := wrapped.SplitFixedLengthList(1); !errors.Is(err, ErrMalformedData) {
		t.Errorf("error = %v, want ErrMalformedData", err)
	}
}

func TestFixedLengthList_UnderflowFails(t *testing.T) {
	wrapped := &SecretBuffer{data: []byte{0, 0, 0, 10, 1, 2}}
	if _, err := wrapped.SplitFixedLengthList(1); !errors.Is(err, ErrMalformedData) {
		t.Errorf("error = %v, want ErrMalformedData", err)
	}
}

func TestFixedLengthList_WrongArityFails(t *testing.T) {
	combined := CombineFixedLengthList(
		NewSecretBufferFromBytes([]byte("a")),
		NewSecretBufferFromBytes([]byte("b")),
	)
	if _, err := combined.SplitFixedLengthList(1); !errors.Is(err, ErrMalformedData) {
		t.Errorf("error = %v, want ErrMalformedData", err)
	}
}
