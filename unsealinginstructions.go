package seededcrypto

// UnsealingInstructions wraps a post-decryption-instructions string
// that has been validated as well-formed JSON. It transports no
// structured fields of its own today; the whole string is what gets
// passed as the PDI to Seal and Unseal. Validating it up front lets
// callers building a PDI document catch a malformed one before it is
// baked into a sealed message that can never be unsealed with it.
type UnsealingInstructions struct {
	json string
}

// NewUnsealingInstructions validates json as well-formed JSON and
// wraps it. It fails with ErrJSONParsingFailure if json does not
// parse.
func NewUnsealingInstructions(json string) (*UnsealingInstructions, error) {
	if err := validateJSON(json); err != nil {
		return nil, err
	}
	return &UnsealingInstructions{json: json}, nil
}

// String returns the validated JSON document, for use as a PDI
// argument to Seal or Unseal.
func (u *UnsealingInstructions) String() string { return u.json }
