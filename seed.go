package seededcrypto

import "github.com/seedkeeper/seededcrypto/internal/crypto"

// deriveSeedBytes is the single entry point every key type funnels
// through to turn a seed string and a derivation-options document into
// deterministic output bytes. The same seedString and
// derivationOptionsJSON always yield the same bytes, on any host, in
// any process.
//
// The KDF input is seedString, a 0x00 separator, then
// derivationOptionsJSON verbatim. The separator exists so that no seed
// string can be extended with characters from an options document (or
// vice versa) to collide with a different (seed, options) pair.
func deriveSeedBytes(seedString, derivationOptionsJSON string, requestedKeyType KeyType, defaultLengthInBytes int) (*SecretBuffer, error) {
	opts, err := parseDerivationOptions(derivationOptionsJSON, requestedKeyType, defaultLengthInBytes)
	if err != nil {
		return nil, err
	}

	input := make([]byte, 0, len(seedString)+1+len(derivationOptionsJSON))
	input = append(input, seedString...)
	input = append(input, 0x00)
	input = append(input, derivationOptionsJSON...)

	derived, err := crypto.DeriveBytes(opts.hashFunction, input, opts.lengthInBytes, opts.argon2)
	if err != nil {
		return nil, err
	}
	return NewSecretBufferFromBytes(derived), nil
}
