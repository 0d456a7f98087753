package crypto

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// GenericHash computes a keyed BLAKE2b digest of outLen bytes over the
// concatenation of inputs, in order. A nil or empty key produces an
// unkeyed hash. Unlike a plain BLAKE2b checksum, outLen is not limited to
// 64 bytes: the hash runs in extendable-output (XOF) mode so callers can
// request arbitrarily long derived secrets.
func GenericHash(key []byte, outLen int, inputs ...[]byte) ([]byte, error) {
	x, err := blake2b.NewXOF(uint32(outLen), key)
	if err != nil {
		return nil, fmt.Errorf("generichash: %w", err)
	}
	for _, in := range inputs {
		if len(in) == 0 {
			continue
		}
		if _, err := x.Write(in); err != nil {
			return nil, fmt.Errorf("generichash: %w", err)
		}
	}
	out := make([]byte, outLen)
	if _, err := x.Read(out); err != nil {
		return nil, fmt.Errorf("generichash: %w", err)
	}
	return out, nil
}

// GenericHashState is an incremental form of GenericHash: feeding it the
// post-decryption instructions salt and then the message, in that fixed
// order, yields the same digest that DeterministicNonce computes in one
// call through GenericHash.
type GenericHashState struct {
	h blake2b.XOF
}

// NewGenericHashState starts a keyed BLAKE2b hash producing outLen bytes.
func NewGenericHashState(key []byte, outLen int) (*GenericHashState, error) {
	x, err := blake2b.NewXOF(uint32(outLen), key)
	if err != nil {
		return nil, fmt.Errorf("generichash: %w", err)
	}
	return &GenericHashState{h: x}, nil
}

// Update feeds additional bytes into the hash state. A zero-length input
// is a no-op, matching the source library's behavior of skipping empty
// salts rather than mixing in a zero-length update.
func (s *GenericHashState) Update(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if _, err := s.h.Write(data); err != nil {
		return fmt.Errorf("generichash: %w", err)
	}
	return nil
}

// Final returns the digest. It may only be called once.
func (s *GenericHashState) Final(outLen int) ([]byte, error) {
	out := make([]byte, outLen)
	if _, err := s.h.Read(out); err != nil {
		return nil, fmt.Errorf("generichash: %w", err)
	}
	return out, nil
}
