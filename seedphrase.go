package seededcrypto

import "github.com/tyler-smith/go-bip39"

// GenerateSeedPhrase produces a fresh BIP-39 mnemonic with entropyBits
// bits of entropy (128-256, a multiple of 32) suitable for use as a
// human-memorable seedString. The phrase itself is the seed; no
// passphrase or wordlist-specific salt is mixed in, so two callers who
// write down the same words and pass the mnemonic verbatim as
// seedString will derive identical keys.
func GenerateSeedPhrase(entropyBits int) (string, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", &DerivationOptionError{Field: "entropyBits", Reason: err.Error()}
	}
	return bip39.NewMnemonic(entropy)
}

// ValidateSeedPhrase reports whether phrase is a well-formed BIP-39
// mnemonic (correct word count, valid wordlist words, correct checksum).
// It does not validate arbitrary seed strings — only ones intended to
// be BIP-39 phrases.
func ValidateSeedPhrase(phrase string) bool {
	return bip39.IsMnemonicValid(phrase)
}
