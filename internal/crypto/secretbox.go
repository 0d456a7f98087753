package crypto

import (
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// DeterministicNonce computes the secretbox nonce bound to (key, salt,
// message): a keyed BLAKE2b hash of salt||message, in that order, keyed
// by the secretbox key, computed by GenericHash with a
// SecretBoxNonceSize-byte output (XOF mode, not a truncated 64-byte
// digest). Equal
// (key, salt, message) triples always yield the same nonce; any change
// to any of the three changes it. salt may be empty, in which case it
// contributes nothing to the hash.
func DeterministicNonce(key, salt, message []byte) ([24]byte, error) {
	var nonce [24]byte
	if len(key) != SecretBoxKeySize {
		return nonce, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SecretBoxKeySize)
	}
	digest, err := GenericHash(key, SecretBoxNonceSize, salt, message)
	if err != nil {
		return nonce, err
	}
	copy(nonce[:], digest)
	return nonce, nil
}

// SecretBoxSeal authenticates and encrypts message under key and nonce,
// returning nonce||ciphertext so the result is self-contained.
func SecretBoxSeal(key []byte, nonce [24]byte, message []byte) ([]byte, error) {
	if len(key) != SecretBoxKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SecretBoxKeySize)
	}
	var k [32]byte
	copy(k[:], key)

	out := make([]byte, SecretBoxNonceSize, SecretBoxNonceSize+len(message)+SecretBoxMACSize)
	copy(out, nonce[:])
	return secretbox.Seal(out, message, &nonce, &k), nil
}

// SecretBoxOpen splits composite into its nonce and box, then verifies
// and decrypts the box under key. It fails with ErrAuthenticationFailed
// if the MAC does not verify.
func SecretBoxOpen(key []byte, composite []byte) ([]byte, error) {
	if len(key) != SecretBoxKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SecretBoxKeySize)
	}
	if len(composite) <= SecretBoxNonceSize+SecretBoxMACSize {
		return nil, fmt.Errorf("%w: composite too short", ErrInvalidCiphertextSize)
	}
	var k [32]byte
	copy(k[:], key)
	var nonce [24]byte
	copy(nonce[:], composite[:SecretBoxNonceSize])

	plaintext, ok := secretbox.Open(nil, composite[SecretBoxNonceSize:], &nonce, &k)
	if !ok {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}
