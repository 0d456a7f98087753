package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when a key has the wrong number of bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when a nonce has the wrong number of bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidCiphertextSize is returned when a ciphertext is too short to
	// contain its framing (nonce, ephemeral key, MAC).
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrAuthenticationFailed is returned when a secretbox MAC fails to
	// verify. A sealed box that fails to open reports ErrKeyExchangeFailed.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrSignatureVerificationFailed is returned when an Ed25519 signature
	// does not verify against the given message and public key.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")

	// ErrKeyExchangeFailed is returned when an anonymous box cannot be
	// opened: its MAC does not verify, which is the result both of a
	// recipient private key that does not match and of a tampered box.
	ErrKeyExchangeFailed = errors.New("key exchange failed")
)
