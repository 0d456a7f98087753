package seededcrypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const testSeed = "A1tB2rC3bD4lE5tF6bG1tH1tI1tJ1tK1tL1tM1tN1tO1tP1tR1tS1tT1tU1tV1tW1tX1tY1tZ1t"

func TestSecret_DeterministicAcrossCalls(t *testing.T) {
	opts := `{"type":"Secret","lengthInBytes":32}`
	a, err := NewSecret(testSeed, opts)
	if err != nil {
		t.Fatalf("NewSecret() error = %v", err)
	}
	b, err := NewSecret(testSeed, opts)
	if err != nil {
		t.Fatalf("NewSecret() error = %v", err)
	}
	if !bytes.Equal(a.SecretBytes(), b.SecretBytes()) {
		t.Error("same seed and options produced different secret bytes")
	}
	if len(a.SecretBytes()) != 32 {
		t.Errorf("len(SecretBytes()) = %d, want 32", len(a.SecretBytes()))
	}
}

func TestSecret_DifferentSeedsDiffer(t *testing.T) {
	opts := `{"lengthInBytes":32}`
	a, _ := NewSecret(testSeed, opts)
	b, _ := NewSecret(testSeed+"x", opts)
	if bytes.Equal(a.SecretBytes(), b.SecretBytes()) {
		t.Error("different seeds produced identical secret bytes")
	}
}

func TestSecret_DifferentOptionsDiffer(t *testing.T) {
	a, _ := NewSecret(testSeed, `{"lengthInBytes":32}`)
	b, _ := NewSecret(testSeed, `{"lengthInBytes":32,"additionalSalt":"x"}`)
	if bytes.Equal(a.SecretBytes(), b.SecretBytes()) {
		t.Error("different derivation options produced identical secret bytes")
	}
}

func TestSecret_TypeConflictRejected(t *testing.T) {
	_, err := NewSecret(testSeed, `{"type":"SymmetricKey"}`)
	if !errors.Is(err, ErrInvalidDerivationOptionType) {
		t.Errorf("error = %v, want ErrInvalidDerivationOptionType", err)
	}
}

func TestSecret_Argon2idProducesRequestedLength(t *testing.T) {
	opts := `{"type":"Secret","hashFunction":"Argon2id","lengthInBytes":96}`
	s, err := NewSecret(testSeed, opts)
	if err != nil {
		t.Fatalf("NewSecret() error = %v", err)
	}
	if len(s.SecretBytes()) != 96 {
		t.Errorf("len(SecretBytes()) = %d, want 96", len(s.SecretBytes()))
	}
	s2, err := NewSecret(testSeed, opts)
	if err != nil {
		t.Fatalf("NewSecret() error = %v", err)
	}
	if !bytes.Equal(s.SecretBytes(), s2.SecretBytes()) {
		t.Error("Argon2id derivation was not deterministic across calls")
	}
}

func TestSecret_JSONRoundTrip(t *testing.T) {
	s, err := NewSecret(testSeed, `{"lengthInBytes":32}`)
	if err != nil {
		t.Fatalf("NewSecret() error = %v", err)
	}
	doc, err := s.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	roundTripped, err := SecretFromJSON(doc)
	if err != nil {
		t.Fatalf("SecretFromJSON() error = %v", err)
	}
	if !bytes.Equal(s.SecretBytes(), roundTripped.SecretBytes()) {
		t.Error("round-tripped secret bytes differ")
	}
	if s.DerivationOptionsJSON() != roundTripped.DerivationOptionsJSON() {
		t.Error("round-tripped derivation options differ")
	}
}

func TestSecret_ToJSON_OmitsEmptyDerivationOptions(t *testing.T) {
	s, err := NewSecret(testSeed, "")
	if err != nil {
		t.Fatalf("NewSecret() error = %v", err)
	}
	doc, err := s.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if strings.Contains(doc, "derivationOptionsJson") {
		t.Errorf("ToJSON() = %q, want derivationOptionsJson omitted", doc)
	}
	roundTripped, err := SecretFromJSON(doc)
	if err != nil {
		t.Fatalf("SecretFromJSON() error = %v", err)
	}
	if roundTripped.DerivationOptionsJSON() != "" {
		t.Errorf("DerivationOptionsJSON() = %q, want empty", roundTripped.DerivationOptionsJSON())
	}
	if !bytes.Equal(s.SecretBytes(), roundTripped.SecretBytes()) {
		t.Error("round-tripped secret bytes differ")
	}
}

func TestSecret_BinaryRoundTrip(t *testing.T) {
	s, err := NewSecret(testSeed, `{"lengthInBytes":32,"additionalSalt":"x"}`)
	if err != nil {
		t.Fatalf("NewSecret() error = %v", err)
	}
	roundTripped, err := SecretFromSerializedBinaryForm(s.ToSerializedBinaryForm())
	if err != nil {
		t.Fatalf("SecretFromSerializedBinaryForm() error = %v", err)
	}
	if !bytes.Equal(s.SecretBytes(), roundTripped.SecretBytes()) {
		t.Error("binary-round-tripped secret bytes differ")
	}
	if s.DerivationOptionsJSON() != roundTripped.DerivationOptionsJSON() {
		t.Error("binary-round-tripped derivation options differ")
	}
}
