// Package seededcrypto derives symmetric secrets and public/private key
// pairs from a user-supplied seed string plus a small JSON options
// document, then offers authenticated sealing/unsealing and detached
// signing/verification over them.
//
// The defining property is reproducibility: given the same seed string
// and the same derivation-options JSON, every derived object is
// byte-identical across invocations and hosts, so a caller may discard
// the derived keys and reconstruct them on demand by re-supplying the
// seed and options.
//
// Basic usage:
//
//	key, err := seededcrypto.NewSymmetricKey("correct horse battery staple", `{"additionalSalt":"v1"}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	packaged, err := key.SealToPackage([]byte("hello"), `{"instructions":"burn after reading"}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := seededcrypto.UnsealSymmetricPackage(packaged, "correct horse battery staple")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Key types
//
//   - [Secret]: raw derived bytes with no cryptographic structure of
//     their own.
//   - [SymmetricKey]: deterministic-nonce authenticated sealing/unsealing.
//   - [UnsealingKey] / [SealingKey]: an X25519 key pair for anonymous
//     public-key sealing.
//   - [SigningKey] / [VerificationKey]: an Ed25519 key pair for detached
//     signatures.
//
// Every key type is immutable once constructed and is safe for
// unsynchronized concurrent reads; there are no mutating operations.
package seededcrypto
