package crypto

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestX25519KeyPairFromSeed_Deterministic(t *testing.T) {
	seed := make([]byte, BoxPrivateKeySize)
	for i := range seed {
		seed[i] = byte(i)
	}

	pub1, priv1, err := X25519KeyPairFromSeed(seed)
	if err != nil {
		t.Fatalf("X25519KeyPairFromSeed() error = %v", err)
	}
	pub2, priv2, err := X25519KeyPairFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pub1, pub2) || !bytes.Equal(priv1, priv2) {
		t.Error("X25519KeyPairFromSeed is not deterministic")
	}
	if len(pub1) != BoxPublicKeySize {
		t.Errorf("public key len = %d, want %d", len(pub1), BoxPublicKeySize)
	}
}

func TestBoxSeal_Open_RoundTrip(t *testing.T) {
	seed := make([]byte, BoxPrivateKeySize)
	if _, err := rand.Read(seed); err != nil {
		t.Fatal(err)
	}
	pub, priv, err := X25519KeyPairFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}

	message := []byte("seal me")
	ciphertext, err := BoxSeal(pub, message)
	if err != nil {
		t.Fatalf("BoxSeal() error = %v", err)
	}

	plaintext, err := BoxOpen(priv, pub, ciphertext)
	if err != nil {
		t.Fatalf("BoxOpen() error = %v", err)
	}
	if !bytes.Equal(plaintext, message) {
		t.Errorf("plaintext = %q, want %q", plaintext, message)
	}
}

func TestBoxSeal_IsRandomized(t *testing.T) {
	seed := make([]byte, BoxPrivateKeySize)
	if _, err := rand.Read(seed); err != nil {
		t.Fatal(err)
	}
	pub, _, err := X25519KeyPairFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}

	message := []byte("seal me")
	a, err := BoxSeal(pub, message)
	if err != nil {
		t.Fatal(err)
	}
	b, err := BoxSeal(pub, message)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Error("two seals of the same message produced identical ciphertexts")
	}
}

func TestBoxOpen_WrongPrivateKeyFails(t *testing.T) {
	seedA := make([]byte, BoxPrivateKeySize)
	seedB := make([]byte, BoxPrivateKeySize)
	// X25519 clamping clears the low three bits of byte 0, so change a
	// byte clamping leaves alone to get a genuinely different key.
	seedB[1] = 1
	pubA, _, err := X25519KeyPairFromSeed(seedA)
	if err != nil {
		t.Fatal(err)
	}
	_, privB, err := X25519KeyPairFromSeed(seedB)
	if err != nil {
		t.Fatal(err)
	}

	ciphertext, err := BoxSeal(pubA, []byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := BoxOpen(privB, pubA, ciphertext); err == nil {
		t.Error("expected an error unsealing with the wrong private key")
	}
}

func TestBoxOpen_ShortCiphertext(t *testing.T) {
	seed := make([]byte, BoxPrivateKeySize)
	pub, priv, err := X25519KeyPairFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := BoxOpen(priv, pub, make([]byte, 10)); err == nil {
		t.Error("expected an error for a too-short ciphertext")
	}
}
