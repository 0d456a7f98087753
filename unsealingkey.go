package seededcrypto

import (
	"crypto/subtle"

	"github.com/seedkeeper/seededcrypto/internal/crypto"
)

const unsealingKeyLengthInBytes = 32

// UnsealingKey is the X25519 private half of an anonymous-sealing key
// pair, along with the cached public half so SealingKey can be handed
// out without re-deriving anything.
type UnsealingKey struct {
	unsealingKeyBytes     *SecretBuffer
	sealingKeyBytes       []byte
	derivationOptionsJSON string
}

// NewUnsealingKey derives an UnsealingKey from seedString and
// derivationOptionsJSON: 32 seed bytes via the standard derivation
// pipeline, clamped into an X25519 scalar, paired with its public
// point.
func NewUnsealingKey(seedString, derivationOptionsJSON string) (*UnsealingKey, error) {
	seedBytes, err := deriveSeedBytes(seedString, derivationOptionsJSON, KeyTypeUnsealingKey, unsealingKeyLengthInBytes)
	if err != nil {
		return nil, err
	}
	if seedBytes.Len() != unsealingKeyLengthInBytes {
		lengthErr := &KeyLengthError{Label: "UnsealingKey", Got: seedBytes.Len(), Want: unsealingKeyLengthInBytes}
		seedBytes.Close()
		return nil, lengthErr
	}
	publicKey, privateKey, err := crypto.X25519KeyPairFromSeed(seedBytes.raw())
	seedBytes.Close()
	if err != nil {
		return nil, err
	}
	return &UnsealingKey{
		unsealingKeyBytes:     NewSecretBufferFromBytes(privateKey),
		sealingKeyBytes:       publicKey,
		derivationOptionsJSON: derivationOptionsJSON,
	}, nil
}

// Close zeroes the private key bytes.
func (k *UnsealingKey) Close() { k.unsealingKeyBytes.Close() }

// DerivationOptionsJSON returns the document the key was derived with.
func (k *UnsealingKey) DerivationOptionsJSON() string { return k.derivationOptionsJSON }

// SealingKeyBytes returns a copy of the public key.
func (k *UnsealingKey) SealingKeyBytes() []byte {
	out := make([]byte, len(k.sealingKeyBytes))
	copy(out, k.sealingKeyBytes)
	return out
}

// GetSealingKey returns the public half as a standalone SealingKey
// that shares the same derivationOptionsJson, without re-deriving.
func (k *UnsealingKey) GetSealingKey() *SealingKey {
	return &SealingKey{sealingKeyBytes: k.SealingKeyBytes(), derivationOptionsJSON: k.derivationOptionsJSON}
}

// Unseal reverses SealingKey.Seal. postDecryptionInstructions must
// match what the sealer used, or verification fails.
func (k *UnsealingKey) Unseal(ciphertext []byte, postDecryptionInstructions string) ([]byte, error) {
	mixed, err := crypto.BoxOpen(k.unsealingKeyBytes.raw(), k.sealingKeyBytes, ciphertext)
	if err != nil {
		return nil, &CryptographicVerificationError{Reason: "anonymous box did not open"}
	}
	message, err := unmixPostDecryptionInstructions(mixed, postDecryptionInstructions)
	if err != nil {
		return nil, err
	}
	return message, nil
}

// UnsealPackage re-derives an UnsealingKey from seedString and the
// package's derivationOptionsJson, then unseals its ciphertext.
func UnsealPackage(pkg *PackagedSealedMessage, seedString string) ([]byte, error) {
	key, err := NewUnsealingKey(seedString, pkg.DerivationOptionsJSON)
	if err != nil {
		return nil, err
	}
	defer key.Close()
	return key.Unseal(pkg.Ciphertext, pkg.UnsealingInstructions)
}

// unsealingKeyJSON is the wire form of an UnsealingKey.
type unsealingKeyJSON struct {
	UnsealingKeyBytes     string `json:"unsealingKeyBytes"`
	SealingKeyBytes       string `json:"sealingKeyBytes"`
	DerivationOptionsJSON string `json:"derivationOptionsJson"`
}

// ToJSON renders the UnsealingKey as its standard JSON form.
func (k *UnsealingKey) ToJSON() (string, error) {
	return marshalJSON(&unsealingKeyJSON{
		UnsealingKeyBytes:     k.unsealingKeyBytes.ToHex(),
		SealingKeyBytes:       toHex(k.sealingKeyBytes),
		DerivationOptionsJSON: k.derivationOptionsJSON,
	})
}

// UnsealingKeyFromJSON parses an UnsealingKey back out of its standard
// JSON form.
func UnsealingKeyFromJSON(doc string) (*UnsealingKey, error) {
	var wire unsealingKeyJSON
	if err := unmarshalJSON(doc, &wire); err != nil {
		return nil, err
	}
	unsealingKeyBytes, err := NewSecretBufferFromHex(wire.UnsealingKeyBytes)
	if err != nil {
		return nil, err
	}
	if unsealingKeyBytes.Len() != unsealingKeyLengthInBytes {
		lengthErr := &KeyLengthError{Label: "UnsealingKey", Got: unsealingKeyBytes.Len(), Want: unsealingKeyLengthInBytes}
		unsealingKeyBytes.Close()
		return nil, lengthErr
	}
	sealingKeyBytes, err := fromHex(wire.SealingKeyBytes)
	if err != nil {
		unsealingKeyBytes.Close()
		return nil, err
	}
	return &UnsealingKey{
		unsealingKeyBytes:     unsealingKeyBytes,
		sealingKeyBytes:       sealingKeyBytes,
		derivationOptionsJSON: wire.DerivationOptionsJSON,
	}, nil
}

// ToSerializedBinaryForm encodes the key using the fixed-length list
// codec: [unsealingKeyBytes, sealingKeyBytes, derivationOptionsJson-utf8].
func (k *UnsealingKey) ToSerializedBinaryForm() []byte {
	return combineFixedLengthList(k.unsealingKeyBytes.raw(), k.sealingKeyBytes, []byte(k.derivationOptionsJSON))
}

// UnsealingKeyFromSerializedBinaryForm decodes a key produced by
// ToSerializedBinaryForm.
func UnsealingKeyFromSerializedBinaryForm(serialized []byte) (*UnsealingKey, error) {
	parts, err := splitFixedLengthList(serialized, 3)
	if err != nil {
		return nil, err
	}
	if len(parts[0]) != unsealingKeyLengthInBytes {
		return nil, &KeyLengthError{Label: "UnsealingKey", Got: len(parts[0]), Want: unsealingKeyLengthInBytes}
	}
	return &UnsealingKey{
		unsealingKeyBytes:     NewSecretBufferFromBytes(parts[0]),
		sealingKeyBytes:       parts[1],
		derivationOptionsJSON: string(parts[2]),
	}, nil
}

// SealingKey is the public half of an anonymous-sealing key pair.
// Unlike UnsealingKey it holds no secret material and needs no Close.
type SealingKey struct {
	sealingKeyBytes       []byte
	derivationOptionsJSON string
}

// NewSealingKey derives just the public half, when the caller has no
// need of the private key in this process.
func NewSealingKey(seedString, derivationOptionsJSON string) (*SealingKey, error) {
	key, err := NewUnsealingKey(seedString, derivationOptionsJSON)
	if err != nil {
		return nil, err
	}
	defer key.Close()
	return key.GetSealingKey(), nil
}

// DerivationOptionsJSON returns the document the key was derived with.
func (k *SealingKey) DerivationOptionsJSON() string { return k.derivationOptionsJSON }

// SealingKeyBytes returns a copy of the public key.
func (k *SealingKey) SealingKeyBytes() []byte {
	out := make([]byte, len(k.sealingKeyBytes))
	copy(out, k.sealingKeyBytes)
	return out
}

// Seal anonymously encrypts message to this key's public half, mixing
// in postDecryptionInstructions so UnsealingKey.Unseal can bind the
// two without associated data.
func (k *SealingKey) Seal(message []byte, postDecryptionInstructions string) ([]byte, error) {
	if len(message) == 0 {
		return nil, &MessageLengthError{Label: "message", Got: 0, Want: 1}
	}
	if len(k.sealingKeyBytes) != crypto.BoxPublicKeySize {
		return nil, &KeyLengthError{Label: "SealingKey", Got: len(k.sealingKeyBytes), Want: crypto.BoxPublicKeySize}
	}
	mixed := mixPostDecryptionInstructions(message, postDecryptionInstructions)
	return crypto.BoxSeal(k.sealingKeyBytes, mixed)
}

// SealToPackage seals message and wraps it in a PackagedSealedMessage
// carrying the metadata needed to unseal it given only the seed.
func (k *SealingKey) SealToPackage(message []byte, postDecryptionInstructions string) (*PackagedSealedMessage, error) {
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

// ToSerializedBinaryForm encodes the key using the fixed-length list
// codec: [sealingKeyBytes, derivationOptionsJson-utf8].
func (k *SealingKey) ToSerializedBinaryForm() []byte {
	return combineFixedLengthList(k.sealingKeyBytes, []byte(k.derivationOptionsJSON))
}

// SealingKeyFromSerializedBinaryForm decodes a key produced by
// ToSerializedBinaryForm.
func SealingKeyFromSerializedBinaryForm(serialized []byte) (*SealingKey, error) {
	parts, err := splitFixedLengthList(serialized, 2)
	if err != nil {
		return nil, err
	}
	return &SealingKey{sealingKeyBytes: parts[0], derivationOptionsJSON: string(parts[1])}, nil
}

// sealingKeyJSON is the wire form of a SealingKey.
type sealingKeyJSON struct {
	SealingKeyBytes       string `json:"sealingKeyBytes"`
	DerivationOptionsJSON string `json:"derivationOptionsJson"`
}

// ToJSON renders the SealingKey as its standard JSON form.
func (k *SealingKey) ToJSON() (string, error) {
	return marshalJSON(&sealingKeyJSON{
		SealingKeyBytes:       toHex(k.sealingKeyBytes),
		DerivationOptionsJSON: k.derivationOptionsJSON,
	})
}

// SealingKeyFromJSON parses a SealingKey back out of its standard JSON
// form.
func SealingKeyFromJSON(doc string) (*SealingKey, error) {
	var wire sealingKeyJSON
	if err := unmarshalJSON(doc, &wire); err != nil {
		return nil, err
	}
	sealingKeyBytes, err := fromHex(wire.SealingKeyBytes)
	if err != nil {
		return nil, err
	}
	return &SealingKey{sealingKeyBytes: sealingKeyBytes, derivationOptionsJSON: wire.DerivationOptionsJSON}, nil
}

// mixPostDecryptionInstructions prepends sha256(postDecryptionInstructions)
// to message before an anonymous-box seal, binding the instructions
// into the sealed payload without associated data. An empty
// instructions string still contributes its (fixed) hash, so the
// mixing is always present and always reversible by
// unmixPostDecryptionInstructions.
func mixPostDecryptionInstructions(message []byte, postDecryptionInstructions string) []byte {
	prefix := sha256Sum([]byte(postDecryptionInstructions))
	out := make([]byte, 0, len(prefix)+len(message))
	out = append(out, prefix...)
	out = append(out, message...)
	return out
}

// unmixPostDecryptionInstructions reverses mixPostDecryptionInstructions
// and fails with ErrCryptographicVerificationFailure if the recovered
// prefix does not match the hash of postDecryptionInstructions.
func unmixPostDecryptionInstructions(mixed []byte, postDecryptionInstructions string) ([]byte, error) {
	prefix := sha256Sum([]byte(postDecryptionInstructions))
	if len(mixed) < len(prefix) {
		return nil, &CryptographicVerificationError{Reason: "post-decryption-instructions binding failed"}
	}
	if subtle.ConstantTimeCompare(mixed[:len(prefix)], prefix) != 1 {
		return nil, &CryptographicVerificationError{Reason: "post-decryption-instructions binding failed"}
	}
	return mixed[len(prefix):], nil
}
