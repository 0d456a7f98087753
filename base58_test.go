package seededcrypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestSecretBuffer_Base58RoundTrip(t *testing.T) {
	want := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
	sb := NewSecretBufferFromBytes(want)
	encoded := sb.ToBase58()
	roundTripped, err := NewSecretBufferFromBase58(encoded)
	if err != nil {
		t.Fatalf("NewSecretBufferFromBase58() error = %v", err)
	}
	if !bytes.Equal(roundTripped.Bytes(), want) {
		t.Errorf("round trip = %x, want %x", roundTripped.Bytes(), want)
	}
}

func TestSecretBuffer_FromBase58_Invalid(t *testing.T) {
	if _, err := NewSecretBufferFromBase58("not valid base58!!"); !errors.Is(err, ErrInvalidBase58Character) {
		t.Errorf("error = %v, want ErrInvalidBase58Character", err)
	}
}
