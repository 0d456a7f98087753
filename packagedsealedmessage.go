package seededcrypto

// PackagedSealedMessage is the wire artifact produced by sealing:
// ciphertext plus the metadata needed to re-derive the key that can
// unseal it, given only the original seed. It never carries the key
// or the seed itself.
type PackagedSealedMessage struct {
	Ciphertext            []byte
	DerivationOptionsJSON string
	UnsealingInstructions string
}

// NewPackagedSealedMessage constructs a PackagedSealedMessage from its
// three fields directly, for callers reconstructing one outside of a
// Seal call (e.g. in tests, or from a transport-specific envelope).
func NewPackagedSealedMessage(ciphertext []byte, derivationOptionsJSON, unsealingInstructions string) *PackagedSealedMessage {
	return &PackagedSealedMessage{
		Ciphertext:            ciphertext,
		DerivationOptionsJSON: derivationOptionsJSON,
		UnsealingInstructions: unsealingInstructions,
	}
}

// packagedSealedMessageJSON is the wire form of a PackagedSealedMessage.
type packagedSealedMessageJSON struct {
	Ciphertext            string `json:"ciphertext"`
	DerivationOptionsJSON string `json:"derivationOptionsJson"`
	UnsealingInstructions string `json:"unsealingInstructions"`
}

// ToJSON renders the package as its standard JSON form.
func (p *PackagedSealedMessage) ToJSON() (string, error) {
	return marshalJSON(&packagedSealedMessageJSON{
		Ciphertext:            toHex(p.Ciphertext),
		DerivationOptionsJSON: p.DerivationOptionsJSON,
		UnsealingInstructions: p.UnsealingInstructions,
	})
}

// PackagedSealedMessageFromJSON parses a package back out of its
// standard JSON form.
func PackagedSealedMessageFromJSON(doc string) (*PackagedSealedMessage, error) {
	var wire packagedSealedMessageJSON
	if err := unmarshalJSON(doc, &wire); err != nil {
		return nil, err
	}
	ciphertext, err := fromHex(wire.Ciphertext)
	if err != nil {
		return nil, err
	}
	return &PackagedSealedMessage{
		Ciphertext:            ciphertext,
		DerivationOptionsJSON: wire.DerivationOptionsJSON,
		UnsealingInstructions: wire.UnsealingInstructions,
	}, nil
}

// ToSerializedBinaryForm encodes the package using the fixed-length
// list codec: [ciphertext, derivationOptionsJson-utf8, unsealingInstructions-utf8].
func (p *PackagedSealedMessage) ToSerializedBinaryForm() []byte {
	return combineFixedLengthList(
		p.Ciphertext,
		[]byte(p.DerivationOptionsJSON),
		[]byte(p.UnsealingInstructions),
	)
}

// PackagedSealedMessageFromSerializedBinaryForm decodes a package
// produced by ToSerializedBinaryForm.
func PackagedSealedMessageFromSerializedBinaryForm(serialized []byte) (*PackagedSealedMessage, error) {
	parts, err := splitFixedLengthList(serialized, 3)
	if err != nil {
		return nil, err
	}
	return &PackagedSealedMessage{
		Ciphertext:            parts[0],
		DerivationOptionsJSON: string(parts[1]),
		UnsealingInstructions: string(parts[2]),
	}, nil
}
