package crypto

import (
	"crypto/ed25519"
	"fmt"
)

// SignKeyPairFromSeed expands a 32-byte seed into the 64-byte Ed25519
// "secret key" (seed||publicKey) produced by a seeded key-pair
// generator, plus the 32-byte public key on its own.
func SignKeyPairFromSeed(seed []byte) (secretKey, publicKey []byte, err error) {
	if len(seed) != SignSeedSize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(seed), SignSeedSize)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	return []byte(priv), []byte(pub), nil
}

// SignPublicKeyFromSecret extracts the trailing 32-byte public key from
// a 64-byte Ed25519 secret key.
func SignPublicKeyFromSecret(secretKey []byte) ([]byte, error) {
	if len(secretKey) != SignSecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(secretKey), SignSecretKeySize)
	}
	pub := make([]byte, SignPublicKeySize)
	copy(pub, secretKey[SignSeedSize:])
	return pub, nil
}

// Sign produces a detached Ed25519 signature over message using the
// 64-byte secret key.
func Sign(secretKey, message []byte) ([]byte, error) {
	if len(secretKey) != SignSecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(secretKey), SignSecretKeySize)
	}
	return ed25519.Sign(ed25519.PrivateKey(secretKey), message), nil
}

// Verify reports whether signature is a valid detached Ed25519
// signature over message under publicKey. It never returns an error for
// a bad signature; mismatches simply report false.
func Verify(publicKey, message, signature []byte) bool {
	if len(publicKey) != SignPublicKeySize || len(signature) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), message, signature)
}
