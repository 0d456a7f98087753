package seededcrypto

import "github.com/mr-tron/base58/base58"

// ToBase58 encodes the buffer's contents as Base58 (Bitcoin alphabet),
// a denser and punctuation-free alternative to ToHex for contexts like
// QR codes or dictation where every character costs something.
func (b *SecretBuffer) ToBase58() string { return base58.Encode(b.data) }

// NewSecretBufferFromBase58 decodes a Base58 string into a new buffer.
func NewSecretBufferFromBase58(s string) (*SecretBuffer, error) {
	decoded, err := base58.Decode(s)
	if err != nil {
		return nil, &Base58DecodeError{Input: s}
	}
	return &SecretBuffer{data: decoded}, nil
}
