package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
)

// randReader is the source of ephemeral randomness for BoxSeal. It
// defaults to crypto/rand and is only overridden in tests.
var randReader io.Reader = rand.Reader

// X25519KeyPairFromSeed returns a copy of seed as the private key and
// computes the matching public point. seed must be exactly
// BoxPrivateKeySize bytes. The returned private key is not clamped; the
// RFC 7748 clamping is applied by curve25519.X25519 (and by nacl/box)
// each time the scalar is used, so seeds that differ only in clamped
// bits yield the same key pair.
func X25519KeyPairFromSeed(seed []byte) (publicKey, privateKey []byte, err error) {
	if len(seed) != BoxPrivateKeySize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(seed), BoxPrivateKeySize)
	}
	privateKey = append([]byte{}, seed...)
	publicKey, err = curve25519.X25519(privateKey, curve25519.Basepoint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive x25519 public key: %w", err)
	}
	return publicKey, privateKey, nil
}

// BoxSeal anonymously seals message to the recipient's X25519 public
// key: it generates a fresh ephemeral key pair, derives a nonce by
// hashing ephemeralPublic||recipientPublic with BLAKE2b, and returns
// ephemeralPublic||secretbox(message). This mirrors libsodium's
// crypto_box_seal: the sender's identity is not authenticated, only the
// message's integrity and the recipient's ability to read it.
func BoxSeal(recipientPublic, message []byte) ([]byte, error) {
	if len(recipientPublic) != BoxPublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(recipientPublic), BoxPublicKeySize)
	}

	ephemeralPublic, ephemeralPrivate, err := box.GenerateKey(randReader)
	if err != nil {
		return nil, fmt.Errorf("generate ephemeral key pair: %w", err)
	}

	var recipientPub [32]byte
	copy(recipientPub[:], recipientPublic)

	nonce, err := sealedBoxNonce(ephemeralPublic[:], recipientPublic)
	if err != nil {
		return nil, err
	}

	out := make([]byte, BoxPublicKeySize, BoxPublicKeySize+len(message)+SecretBoxMACSize)
	copy(out, ephemeralPublic[:])
	return box.Seal(out, message, &nonce, &recipientPub, ephemeralPrivate), nil
}

// BoxOpen reverses BoxSeal using the recipient's private key and the
// embedded ephemeral public key.
func BoxOpen(recipientPrivate, recipientPublic, ciphertext []byte) ([]byte, error) {
	if len(recipientPrivate) != BoxPrivateKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(recipientPrivate), BoxPrivateKeySize)
	}
	if len(ciphertext) <= BoxSealOverhead {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrInvalidCiphertextSize)
	}

	ephemeralPublic := ciphertext[:BoxPublicKeySize]
	box_ := ciphertext[BoxPublicKeySize:]

	nonce, err := sealedBoxNonce(ephemeralPublic, recipientPublic)
	if err != nil {
		return nil, err
	}

	var ephemeralPub, recipientPriv [32]byte
	copy(ephemeralPub[:], ephemeralPublic)
	copy(recipientPriv[:], recipientPrivate)

	plaintext, ok := box.Open(nil, box_, &nonce, &ephemeralPub, &recipientPriv)
	if !ok {
		return nil, ErrKeyExchangeFailed
	}
	return plaintext, nil
}

// sealedBoxNonce derives the nonce used by the anonymous-box
// construction from the ephemeral and recipient public keys, exactly as
// libsodium's crypto_box_seal does.
func sealedBoxNonce(ephemeralPublic, recipientPublic []byte) ([24]byte, error) {
	var nonce [24]byte
	h, err := blake2b.New(SecretBoxNonceSize, nil)
	if err != nil {
		return nonce, err
	}
	h.Write(ephemeralPublic)
	h.Write(recipientPublic)
	copy(nonce[:], h.Sum(nil))
	return nonce, nil
}
