package seededcrypto

import (
	"crypto/sha256"

	"github.com/seedkeeper/seededcrypto/internal/crypto"
)

const symmetricKeyLengthInBytes = 32

// SymmetricKey wraps a 32-byte key used for deterministic-nonce
// authenticated sealing. Two keys derived from the same seed and
// options are byte-identical, and sealing the same (message, PDI) pair
// under such a key always yields the same ciphertext.
type SymmetricKey struct {
	keyBytes              *SecretBuffer
	derivationOptionsJSON string
}

// NewSymmetricKey derives a SymmetricKey from seedString and
// derivationOptionsJSON. It fails with ErrInvalidKeyLength if the
// options document requests a length other than 32 bytes.
func NewSymmetricKey(seedString, derivationOptionsJSON string) (*SymmetricKey, error) {
	keyBytes, err := deriveSeedBytes(seedString, derivationOptionsJSON, KeyTypeSymmetricKey, symmetricKeyLengthInBytes)
	if err != nil {
		return nil, err
	}
	if keyBytes.Len() != symmetricKeyLengthInBytes {
		lengthErr := &KeyLengthError{Label: "SymmetricKey", Got: keyBytes.Len(), Want: symmetricKeyLengthInBytes}
		keyBytes.Close()
		return nil, lengthErr
	}
	return &SymmetricKey{keyBytes: keyBytes, derivationOptionsJSON: derivationOptionsJSON}, nil
}

// SymmetricKeyFromBytes wraps pre-existing key bytes, for callers that
// already hold key material rather than a seed.
func SymmetricKeyFromBytes(keyBytes []byte, derivationOptionsJSON string) (*SymmetricKey, error) {
	if len(keyBytes) != symmetricKeyLengthInBytes {
		return nil, &KeyLengthError{Label: "SymmetricKey", Got: len(keyBytes), Want: symmetricKeyLengthInBytes}
	}
	return &SymmetricKey{keyBytes: NewSecretBufferFromBytes(keyBytes), derivationOptionsJSON: derivationOptionsJSON}, nil
}

// Close zeroes the key bytes.
func (k *SymmetricKey) Close() { k.keyBytes.Close() }

// DerivationOptionsJSON returns the document the key was derived with.
func (k *SymmetricKey) DerivationOptionsJSON() string { return k.derivationOptionsJSON }

// Seal authenticates and encrypts message, binding it to
// postDecryptionInstructions. The result is
// nonce(24) || secretbox(message)(len(message)+16), and is fully
// deterministic: sealing the same inputs twice yields the same bytes.
func (k *SymmetricKey) Seal(message []byte, postDecryptionInstructions string) ([]byte, error) {
	if len(message) == 0 {
		return nil, &MessageLengthError{Label: "message", Got: 0, Want: 1}
	}
	keyBytes := k.keyBytes.raw()
	nonce, err := crypto.DeterministicNonce(keyBytes, []byte(postDecryptionInstructions), message)
	if err != nil {
		return nil, err
	}
	return crypto.SecretBoxSeal(keyBytes, nonce, message)
}

// Unseal reverses Seal. It fails with ErrCryptographicVerificationFailure
// if the authentication tag does not verify, or if the recovered
// plaintext does not reproduce the ciphertext's nonce under
// postDecryptionInstructions — the latter check rejects a technically
// valid ciphertext unsealed with the wrong instructions.
func (k *SymmetricKey) Unseal(composite []byte, postDecryptionInstructions string) ([]byte, error) {
	if len(composite) <= crypto.SecretBoxNonceSize+crypto.SecretBoxMACSize {
		return nil, &MessageLengthError{Label: "ciphertext", Got: len(composite), Want: crypto.SecretBoxNonceSize + crypto.SecretBoxMACSize + 1}
	}
	keyBytes := k.keyBytes.raw()
	message, err := crypto.SecretBoxOpen(keyBytes, composite)
	if err != nil {
		return nil, &CryptographicVerificationError{Reason: "authentication tag did not verify"}
	}
	expectedNonce, err := crypto.DeterministicNonce(keyBytes, []byte(postDecryptionInstructions), message)
	if err != nil {
		return nil, err
	}
	var actualNonce [24]byte
	copy(actualNonce[:], composite[:crypto.SecretBoxNonceSize])
	if actualNonce != expectedNonce {
		return nil, &CryptographicVerificationError{Reason: "post-decryption-instructions binding failed"}
	}
	return message, nil
}

// SealToPackage seals message and wraps the ciphertext in a
// PackagedSealedMessage carrying the derivation options and
// postDecryptionInstructions needed to unseal it later, given only the
// original seed.
func (k *SymmetricKey) SealToPackage(message []byte, postDecryptionInstructions string) (*PackagedSealedMessage, error) {
	ciphertext, err := k.Seal(message, postDecryptionInstructions)
	if err != nil {
		return nil, err
	}
	return &PackagedSealedMessage{
		Ciphertext:            ciphertext,
		DerivationOptionsJSON: k.derivationOptionsJSON,
		UnsealingInstructions: postDecryptionInstructions,
	}, nil
}

// UnsealSymmetricPackage re-derives a SymmetricKey from seedString and
// the package's derivationOptionsJson, then unseals its ciphertext
// under its unsealingInstructions.
func UnsealSymmetricPackage(pkg *PackagedSealedMessage, seedString string) ([]byte, error) {
	key, err := NewSymmetricKey(seedString, pkg.DerivationOptionsJSON)
	if err != nil {
		return nil, err
	}
	defer key.Close()
	return key.Unseal(pkg.Ciphertext, pkg.UnsealingInstructions)
}

// sha256Sum is a small convenience used by the public-key sealing
// wrappers to mix post-decryption instructions into a box seal.
func sha256Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// ToSerializedBinaryForm encodes the key using the fixed-length list
// codec: [keyBytes, derivationOptionsJson-utf8].
func (k *SymmetricKey) ToSerializedBinaryForm() []byte {
	return combineFixedLengthList(k.keyBytes.raw(), []byte(k.derivationOptionsJSON))
}

// SymmetricKeyFromSerializedBinaryForm decodes a key produced by
// ToSerializedBinaryForm.
func SymmetricKeyFromSerializedBinaryForm(serialized []byte) (*SymmetricKey, error) {
	parts, err := splitFixedLengthList(serialized, 2)
	if err != nil {
		return nil, err
	}
	if len(parts[0]) != symmetricKeyLengthInBytes {
		return nil, &KeyLengthError{Label: "SymmetricKey", Got: len(parts[0]), Want: symmetricKeyLengthInBytes}
	}
	return &SymmetricKey{keyBytes: NewSecretBufferFromBytes(parts[0]), derivationOptionsJSON: string(parts[1])}, nil
}

// symmetricKeyJSON is the wire form of a SymmetricKey.
type symmetricKeyJSON struct {
	KeyBytes                 string `json:"keyBytes"`
	DerivationOptionsJSON    string `json:"derivationOptionsJson,omitempty"`
	KeyDerivationOptionsJSON string `json:"keyDerivationOptionsJson,omitempty"`
}

// ToJSON renders the SymmetricKey as its standard JSON form.
func (k *SymmetricKey) ToJSON() (string, error) {
	return marshalJSON(&symmetricKeyJSON{
		KeyBytes:              k.keyBytes.ToHex(),
		DerivationOptionsJSON: k.derivationOptionsJSON,
	})
}

// SymmetricKeyFromJSON parses a SymmetricKey back out of its standard
// JSON form. Both derivationOptionsJson and the legacy
// keyDerivationOptionsJson spelling are accepted; derivationOptionsJson
// wins if both are present.
func SymmetricKeyFromJSON(doc string) (*SymmetricKey, error) {
	var wire symmetricKeyJSON
	if err := unmarshalJSON(doc, &wire); err != nil {
		return nil, err
	}
	keyBytes, err := NewSecretBufferFromHex(wire.KeyBytes)
	if err != nil {
		return nil, err
	}
	if keyBytes.Len() != symmetricKeyLengthInBytes {
		lengthErr := &KeyLengthError{Label: "SymmetricKey", Got: keyBytes.Len(), Want: symmetricKeyLengthInBytes}
		keyBytes.Close()
		return nil, lengthErr
	}
	opts := wire.DerivationOptionsJSON
	if opts == "" {
		opts = wire.KeyDerivationOptionsJSON
	}
	return &SymmetricKey{keyBytes: keyBytes, derivationOptionsJSON: opts}, nil
}
