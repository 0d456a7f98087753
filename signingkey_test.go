package seededcrypto

import (
	"errors"
	"testing"
)

func TestSigningKey_VerificationKeyHasExpectedLength(t *testing.T) {
	k, err := NewSigningKey(testSeed, "{}")
	if err != nil {
		t.Fatalf("NewSigningKey() error = %v", err)
	}
	verificationKey, err := k.GetVerificationKey()
	if err != nil {
		t.Fatalf("GetVerificationKey() error = %v", err)
	}
	if len(verificationKey.Bytes()) != 32 {
		t.Errorf("len(Bytes()) = %d, want 32", len(verificationKey.Bytes()))
	}
}

func TestSigningKey_SignVerifyRoundTrip(t *testing.T) {
	k, err := NewSigningKey(testSeed, "{}")
	if err != nil {
		t.Fatalf("NewSigningKey() error = %v", err)
	}
	verificationKey, _ := k.GetVerificationKey()

	message := []byte("sign me")
	signature, err := k.Sign(message)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if !verificationKey.Verify(message, signature) {
		t.Error("Verify() of a valid signature returned false")
	}
	if verificationKey.Verify([]byte("sign me not"), signature) {
		t.Error("Verify() of a signature over a different message returned true")
	}
}

func TestSigningKey_CompactAndFullSerializationEquivalent(t *testing.T) {
	k, err := NewSigningKey(testSeed, "{}")
	if err != nil {
		t.Fatalf("NewSigningKey() error = %v", err)
	}

	compactDoc, err := k.ToJSON(true)
	if err != nil {
		t.Fatalf("ToJSON(compact) error = %v", err)
	}
	fullDoc, err := k.ToJSON(false)
	if err != nil {
		t.Fatalf("ToJSON(full) error = %v", err)
	}

	compact, err := SigningKeyFromJSON(compactDoc)
	if err != nil {
		t.Fatalf("SigningKeyFromJSON(compact) error = %v", err)
	}
	full, err := SigningKeyFromJSON(fullDoc)
	if err != nil {
		t.Fatalf("SigningKeyFromJSON(full) error = %v", err)
	}

	message := []byte("compact vs full")
	compactSig, err := compact.Sign(message)
	if err != nil {
		t.Fatalf("Sign() (compact) error = %v", err)
	}
	fullSig, err := full.Sign(message)
	if err != nil {
		t.Fatalf("Sign() (full) error = %v", err)
	}
	if string(compactSig) != string(fullSig) {
		t.Error("signatures from compact- and full-loaded keys differ")
	}

	compactVerification, err := compact.GetVerificationKey()
	if err != nil {
		t.Fatalf("GetVerificationKey() (compact) error = %v", err)
	}
	fullVerification, err := full.GetVerificationKey()
	if err != nil {
		t.Fatalf("GetVerificationKey() (full) error = %v", err)
	}
	if string(compactVerification.Bytes()) != string(fullVerification.Bytes()) {
		t.Error("verification keys from compact- and full-loaded keys differ")
	}
}

func TestSigningKeyFromJSON_RejectsWrongLength(t *testing.T) {
	doc := `{"signingKeyBytes":"deadbeef","derivationOptionsJson":""}`
	if _, err := SigningKeyFromJSON(doc); err == nil {
		t.Error("SigningKeyFromJSON() with a short key should fail")
	}
}

func TestSigningKey_BinaryRoundTrip(t *testing.T) {
	k, err := NewSigningKey(testSeed, `{"additionalSalt":"sig"}`)
	if err != nil {
		t.Fatalf("NewSigningKey() error = %v", err)
	}
	roundTripped, err := SigningKeyFromSerializedBinaryForm(k.ToSerializedBinaryForm())
	if err != nil {
		t.Fatalf("SigningKeyFromSerializedBinaryForm() error = %v", err)
	}
	message := []byte("binary round trip")
	want, err := k.Sign(message)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	got, err := roundTripped.Sign(message)
	if err != nil {
		t.Fatalf("Sign() with binary-round-tripped key error = %v", err)
	}
	if string(want) != string(got) {
		t.Error("signatures from original and binary-round-tripped keys differ")
	}
}

func TestSigningKeyFromSerializedBinaryForm_RejectsWrongLength(t *testing.T) {
	serialized := combineFixedLengthList([]byte("short"), nil)
	if _, err := SigningKeyFromSerializedBinaryForm(serialized); !errors.Is(err, ErrInvalidKeyLength) {
		t.Errorf("error = %v, want ErrInvalidKeyLength", err)
	}
}

func TestVerificationKey_BinaryRoundTrip(t *testing.T) {
	k, err := NewSigningKey(testSeed, "{}")
	if err != nil {
		t.Fatalf("NewSigningKey() error = %v", err)
	}
	verificationKey, err := k.GetVerificationKey()
	if err != nil {
		t.Fatalf("GetVerificationKey() error = %v", err)
	}
	roundTripped, err := VerificationKeyFromSerializedBinaryForm(verificationKey.ToSerializedBinaryForm())
	if err != nil {
		t.Fatalf("VerificationKeyFromSerializedBinaryForm() error = %v", err)
	}
	message := []byte("verify this")
	signature, _ := k.Sign(message)
	if !roundTripped.Verify(message, signature) {
		t.Error("Verify() with binary-round-tripped verification key returned false")
	}
}
