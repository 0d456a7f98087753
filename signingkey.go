package seededcrypto

import "github.com/seedkeeper/seededcrypto/internal/crypto"

const signingKeySeedLengthInBytes = 32

// SigningKey holds an Ed25519 secret key in its full 64-byte
// seed||publicKey form; every constructor expands a 32-byte seed to
// that form. Storing only the 32-byte seed is a serialization choice
// offered by ToJSON, not a property of the key itself: both forms sign
// identically.
type SigningKey struct {
	signingKeyBytes       *SecretBuffer // 64 bytes
	derivationOptionsJSON string
}

// NewSigningKey derives a SigningKey from seedString and
// derivationOptionsJSON: 32 seed bytes via the standard derivation
// pipeline, expanded to the full 64-byte Ed25519 secret key.
func NewSigningKey(seedString, derivationOptionsJSON string) (*SigningKey, error) {
	seedBytes, err := deriveSeedBytes(seedString, derivationOptionsJSON, KeyTypeSigningKey, signingKeySeedLengthInBytes)
	if err != nil {
		return nil, err
	}
	if seedBytes.Len() != signingKeySeedLengthInBytes {
		lengthErr := &KeyLengthError{Label: "SigningKey seed", Got: seedBytes.Len(), Want: signingKeySeedLengthInBytes}
		seedBytes.Close()
		return nil, lengthErr
	}
	secretKey, _, err := crypto.SignKeyPairFromSeed(seedBytes.raw())
	seedBytes.Close()
	if err != nil {
		return nil, err
	}
	return &SigningKey{signingKeyBytes: NewSecretBufferFromBytes(secretKey), derivationOptionsJSON: derivationOptionsJSON}, nil
}

// Close zeroes the key bytes.
func (k *SigningKey) Close() { k.signingKeyBytes.Close() }

// DerivationOptionsJSON returns the document the key was derived with.
func (k *SigningKey) DerivationOptionsJSON() string { return k.derivationOptionsJSON }

// expandedSecretKey returns the full 64-byte secret key regardless of
// which form is stored, expanding a 32-byte seed if necessary.
func (k *SigningKey) expandedSecretKey() ([]byte, error) {
	raw := k.signingKeyBytes.raw()
	switch len(raw) {
	case crypto.SignSecretKeySize:
		return raw, nil
	case crypto.SignSeedSize:
		secretKey, _, err := crypto.SignKeyPairFromSeed(raw)
		return secretKey, err
	default:
		return nil, &KeyLengthError{Label: "SigningKey", Got: len(raw), Want: crypto.SignSecretKeySize}
	}
}

// Sign produces a detached Ed25519 signature over message.
func (k *SigningKey) Sign(message []byte) ([]byte, error) {
	secretKey, err := k.expandedSecretKey()
	if err != nil {
		return nil, err
	}
	return crypto.Sign(secretKey, message)
}

// GetVerificationKey derives the VerificationKey corresponding to this
// SigningKey, without needing to re-derive from the seed.
func (k *SigningKey) GetVerificationKey() (*VerificationKey, error) {
	secretKey, err := k.expandedSecretKey()
	if err != nil {
		return nil, err
	}
	publicKey, err := crypto.SignPublicKeyFromSecret(secretKey)
	if err != nil {
		return nil, err
	}
	return &VerificationKey{keyBytes: publicKey, derivationOptionsJSON: k.derivationOptionsJSON}, nil
}

// signingKeyJSON is the wire form of a SigningKey.
type signingKeyJSON struct {
	SigningKeyBytes       string `json:"signingKeyBytes"`
	DerivationOptionsJSON string `json:"derivationOptionsJson"`
}

// ToJSON renders the SigningKey as its standard JSON form. Set
// minimizeSizeByStoringOnlySeedBytes to store just the 32-byte seed
// instead of the full 64-byte secret key.
func (k *SigningKey) ToJSON(minimizeSizeByStoringOnlySeedBytes bool) (string, error) {
	raw := k.signingKeyBytes.raw()
	if minimizeSizeByStoringOnlySeedBytes && len(raw) == crypto.SignSecretKeySize {
		raw = raw[:crypto.SignSeedSize]
	}
	return marshalJSON(&signingKeyJSON{
		SigningKeyBytes:       toHex(raw),
		DerivationOptionsJSON: k.derivationOptionsJSON,
	})
}

// SigningKeyFromJSON parses a SigningKey back out of its standard JSON
// form. A 32-byte stored key is treated as a seed and re-expanded; a
// 64-byte stored key is used as-is; any other length fails with
// ErrInvalidKeyLength.
func SigningKeyFromJSON(doc string) (*SigningKey, error) {
	var wire signingKeyJSON
	if err := unmarshalJSON(doc, &wire); err != nil {
		return nil, err
	}
	raw, err := fromHex(wire.SigningKeyBytes)
	if err != nil {
		return nil, err
	}
	switch len(raw) {
	case crypto.SignSeedSize:
		secretKey, _, err := crypto.SignKeyPairFromSeed(raw)
		if err != nil {
			return nil, err
		}
		raw = secretKey
	case crypto.SignSecretKeySize:
		// already full form
	default:
		return nil, &KeyLengthError{Label: "SigningKey", Got: len(raw), Want: crypto.SignSecretKeySize}
	}
	return &SigningKey{signingKeyBytes: NewSecretBufferFromBytes(raw), derivationOptionsJSON: wire.DerivationOptionsJSON}, nil
}

// ToSerializedBinaryForm encodes the key using the fixed-length list
// codec: [signingKeyBytes, derivationOptionsJson-utf8]. signingKeyBytes
// is the held 64-byte secret key; unlike ToJSON, the binary form has no
// seed-only mode.
func (k *SigningKey) ToSerializedBinaryForm() []byte {
	return combineFixedLengthList(k.signingKeyBytes.raw(), []byte(k.derivationOptionsJSON))
}

// SigningKeyFromSerializedBinaryForm decodes a key produced by
// ToSerializedBinaryForm. A 32-byte stored key is treated as a seed and
// re-expanded; a 64-byte stored key is used as-is; any other length
// fails with ErrInvalidKeyLength.
func SigningKeyFromSerializedBinaryForm(serialized []byte) (*SigningKey, error) {
	parts, err := splitFixedLengthList(serialized, 2)
	if err != nil {
		return nil, err
	}
	raw := parts[0]
	switch len(raw) {
	case crypto.SignSeedSize:
		secretKey, _, err := crypto.SignKeyPairFromSeed(raw)
		if err != nil {
			return nil, err
		}
		raw = secretKey
	case crypto.SignSecretKeySize:
		// already full form
	default:
		return nil, &KeyLengthError{Label: "SigningKey", Got: len(raw), Want: crypto.SignSecretKeySize}
	}
	return &SigningKey{signingKeyBytes: NewSecretBufferFromBytes(raw), derivationOptionsJSON: string(parts[1])}, nil
}

// VerificationKey is the public half of a SigningKey. It holds no
// secret material.
type VerificationKey struct {
	keyBytes              []byte
	derivationOptionsJSON string
}

// NewVerificationKey derives just the public half, when the caller has
// no need of the private key in this process.
func NewVerificationKey(seedString, derivationOptionsJSON string) (*VerificationKey, error) {
	key, err := NewSigningKey(seedString, derivationOptionsJSON)
	if err != nil {
		return nil, err
	}
	defer key.Close()
	return key.GetVerificationKey()
}

// DerivationOptionsJSON returns the document the key was derived with.
func (k *VerificationKey) DerivationOptionsJSON() string { return k.derivationOptionsJSON }

// Bytes returns a copy of the public key.
func (k *VerificationKey) Bytes() []byte {
	out := make([]byte, len(k.keyBytes))
	copy(out, k.keyBytes)
	return out
}

// Verify reports whether signature is a valid detached Ed25519
// signature over message under this key. It returns false, never an
// error, for a bad signature.
func (k *VerificationKey) Verify(message, signature []byte) bool {
	return crypto.Verify(k.keyBytes, message, signature)
}

// ToSerializedBinaryForm encodes the key using the fixed-length list
// codec: [signatureVerificationKeyBytes, derivationOptionsJson-utf8].
func (k *VerificationKey) ToSerializedBinaryForm() []byte {
	return combineFixedLengthList(k.keyBytes, []byte(k.derivationOptionsJSON))
}

// VerificationKeyFromSerializedBinaryForm decodes a key produced by
// ToSerializedBinaryForm.
func VerificationKeyFromSerializedBinaryForm(serialized []byte) (*VerificationKey, error) {
	parts, err := splitFixedLengthList(serialized, 2)
	if err != nil {
		return nil, err
	}
	if len(parts[0]) != crypto.SignPublicKeySize {
		return nil, &KeyLengthError{Label: "VerificationKey", Got: len(parts[0]), Want: crypto.SignPublicKeySize}
	}
	return &VerificationKey{keyBytes: parts[0], derivationOptionsJSON: string(parts[1])}, nil
}

// verificationKeyJSON is the wire form of a VerificationKey.
type verificationKeyJSON struct {
	SignatureVerificationKeyBytes string `json:"signatureVerificationKeyBytes"`
	DerivationOptionsJSON         string `json:"derivationOptionsJson"`
}

// ToJSON renders the VerificationKey as its standard JSON form.
func (k *VerificationKey) ToJSON() (string, error) {
	return marshalJSON(&verificationKeyJSON{
		SignatureVerificationKeyBytes: toHex(k.keyBytes),
		DerivationOptionsJSON:         k.derivationOptionsJSON,
	})
}

// VerificationKeyFromJSON parses a VerificationKey back out of its
// standard JSON form.
func VerificationKeyFromJSON(doc string) (*VerificationKey, error) {
	var wire verificationKeyJSON
	if err := unmarshalJSON(doc, &wire); err != nil {
		return nil, err
	}
	keyBytes, err := fromHex(wire.SignatureVerificationKeyBytes)
	if err != nil {
		return nil, err
	}
	if len(keyBytes) != crypto.SignPublicKeySize {
		return nil, &KeyLengthError{Label: "VerificationKey", Got: len(keyBytes), Want: crypto.SignPublicKeySize}
	}
	return &VerificationKey{keyBytes: keyBytes, derivationOptionsJSON: wire.DerivationOptionsJSON}, nil
}
