package seededcrypto

// defaultSecretLengthInBytes is used when a Secret's derivation
// options do not specify lengthInBytes.
const defaultSecretLengthInBytes = 32

// Secret is raw derived entropy: deterministic bytes with no
// structure imposed beyond length. It is the building block other key
// types are derived the same way as, but exposed directly for callers
// that need their own keying material (e.g. feeding an external KDF
// or HMAC).
type Secret struct {
	secretBytes           *SecretBuffer
	derivationOptionsJSON string
}

// NewSecret derives a Secret from seedString and derivationOptionsJSON.
// The document's "type" field, if present, must be "Secret".
func NewSecret(seedString, derivationOptionsJSON string) (*Secret, error) {
	secretBytes, err := deriveSeedBytes(seedString, derivationOptionsJSON, KeyTypeSecret, defaultSecretLengthInBytes)
	if err != nil {
		return nil, err
	}
	return &Secret{secretBytes: secretBytes, derivationOptionsJSON: derivationOptionsJSON}, nil
}

// SecretBytes returns a copy of the derived bytes.
func (s *Secret) SecretBytes() []byte { return s.secretBytes.Bytes() }

// DerivationOptionsJSON returns the document the Secret was derived
// with.
func (s *Secret) DerivationOptionsJSON() string { return s.derivationOptionsJSON }

// Close zeroes the derived bytes.
func (s *Secret) Close() { s.secretBytes.Close() }

// ToSerializedBinaryForm encodes the Secret using the fixed-length list
// codec: [secretBytes, derivationOptionsJson-utf8].
func (s *Secret) ToSerializedBinaryForm() []byte {
	return combineFixedLengthList(s.secretBytes.raw(), []byte(s.derivationOptionsJSON))
}

// SecretFromSerializedBinaryForm decodes a Secret produced by
// ToSerializedBinaryForm.
func SecretFromSerializedBinaryForm(serialized []byte) (*Secret, error) {
	parts, err := splitFixedLengthList(serialized, 2)
	if err != nil {
		return nil, err
	}
	return &Secret{secretBytes: NewSecretBufferFromBytes(parts[0]), derivationOptionsJSON: string(parts[1])}, nil
}

// secretJSON is the wire form of a Secret.
type secretJSON struct {
	SecretBytes           string `json:"secretBytes"`
	DerivationOptionsJSON string `json:"derivationOptionsJson,omitempty"`
}

// ToJSON renders the Secret as its standard JSON form: the derived
// bytes as hex, alongside the derivation options document that
// produced them.
func (s *Secret) ToJSON() (string, error) {
	return marshalJSON(&secretJSON{
		SecretBytes:           s.secretBytes.ToHex(),
		DerivationOptionsJSON: s.derivationOptionsJSON,
	})
}

// SecretFromJSON parses a Secret back out of its standard JSON form.
func SecretFromJSON(doc string) (*Secret, error) {
	var wire secretJSON
	if err := unmarshalJSON(doc, &wire); err != nil {
		return nil, err
	}
	secretBytes, err := NewSecretBufferFromHex(wire.SecretBytes)
	if err != nil {
		return nil, err
	}
	return &Secret{secretBytes: secretBytes, derivationOptionsJSON: wire.DerivationOptionsJSON}, nil
}
