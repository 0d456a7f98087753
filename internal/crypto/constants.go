package crypto

const (
	// SecretBoxKeySize is the size of a secretbox symmetric key in bytes.
	SecretBoxKeySize = 32
	// SecretBoxNonceSize is the size of a secretbox nonce in bytes.
	SecretBoxNonceSize = 24
	// SecretBoxMACSize is the size of the Poly1305 authenticator appended
	// to every secretbox ciphertext.
	SecretBoxMACSize = 16

	// BoxPublicKeySize is the size of an X25519 public key in bytes.
	BoxPublicKeySize = 32
	// BoxPrivateKeySize is the size of an X25519 private (scalar) key in bytes.
	BoxPrivateKeySize = 32
	// BoxSealOverhead is the number of bytes a sealed (anonymous) box adds
	// to a message: an ephemeral public key plus the secretbox MAC.
	BoxSealOverhead = BoxPublicKeySize + SecretBoxMACSize

	// SignSeedSize is the size of the seed used to derive an Ed25519 key pair.
	SignSeedSize = 32
	// SignSecretKeySize is the size of an Ed25519 "secret key" as produced by
	// a seeded key pair generator: the 32-byte seed followed by the 32-byte
	// public key.
	SignSecretKeySize = 64
	// SignPublicKeySize is the size of an Ed25519 public key in bytes.
	SignPublicKeySize = 32
	// SignatureSize is the size of a detached Ed25519 signature in bytes.
	SignatureSize = 64
)
