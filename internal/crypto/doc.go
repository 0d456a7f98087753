// Package crypto wraps the low-level primitives the seeded-key model is
// built on: a keyed BLAKE2b generic hash (used both as a KDF and as the
// deterministic nonce derivation for symmetric sealing), Argon2id and
// chained SHA-256 as alternative KDFs, X25519 anonymous box sealing, and
// Ed25519 detached signatures.
//
// # Algorithm Suite
//
//   - BLAKE2b (via golang.org/x/crypto/blake2b): default key-derivation
//     hash and the nonce derivation used by symmetric sealing.
//   - Argon2id / SHA-256: alternative key-derivation hashes selectable
//     through DeriveBytes.
//   - XSalsa20-Poly1305 "secretbox" (via golang.org/x/crypto/nacl/secretbox):
//     authenticated symmetric encryption.
//   - X25519 (via golang.org/x/crypto/curve25519 and nacl/box): anonymous
//     public-key sealing.
//   - Ed25519 (via crypto/ed25519): detached signatures.
//
// # Determinism
//
// GenericHash, DeriveBytes, DeterministicNonce, and SecretBoxSeal are
// pure functions of their inputs: given the same arguments they always
// return the same bytes. BoxSeal is the one randomized operation in the
// package, by design — it generates a fresh ephemeral key pair on every
// call so that sealing the same message twice produces unlinkable
// ciphertexts.
package crypto
