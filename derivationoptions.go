package seededcrypto

import "github.com/seedkeeper/seededcrypto/internal/crypto"

// KeyType identifies which kind of key a derivation-options document
// declares, via its optional "type" field.
type KeyType string

// Recognized key types for the "type" derivation-option field.
const (
	KeyTypeSecret       KeyType = "Secret"
	KeyTypeSymmetricKey KeyType = "SymmetricKey"
	KeyTypeUnsealingKey KeyType = "UnsealingKey"
	KeyTypeSigningKey   KeyType = "SigningKey"
)

// derivationOptions is the resolved view of a derivation-options JSON
// document: concrete hash function, output length, and KDF parameters.
type derivationOptions struct {
	declaredType   KeyType
	hashFunction   crypto.HashFunction
	lengthInBytes  int
	argon2         crypto.Argon2Params
	additionalSalt string
}

// parseDerivationOptions resolves derivationOptionsJson against the
// caller-asserted requestedKeyType. An empty document is treated as
// "{}" (all defaults). It fails with ErrInvalidDerivationOptionType if
// the document declares a "type" that differs from requestedKeyType.
func parseDerivationOptions(derivationOptionsJSON string, requestedKeyType KeyType, defaultLengthInBytes int) (*derivationOptions, error) {
	obj, err := parseJSONObject(derivationOptionsJSON)
	if err != nil {
		return nil, err
	}

	declaredType, err := jsonOptionalString(obj, "type", "")
	if err != nil {
		return nil, err
	}
	if declaredType != "" && KeyType(declaredType) != requestedKeyType {
		return nil, &DerivationOptionError{
			Field:        "type",
			Reason:       "declared type " + declaredType + " does not match requested type " + string(requestedKeyType),
			typeConflict: true,
		}
	}

	hashFunctionStr, err := jsonOptionalString(obj, "hashFunction", string(crypto.HashFunctionBlake2b))
	if err != nil {
		return nil, err
	}
	hashFunction := crypto.HashFunction(hashFunctionStr)
	switch hashFunction {
	case crypto.HashFunctionBlake2b, crypto.HashFunctionSHA256, crypto.HashFunctionArgon2id:
	default:
		return nil, &DerivationOptionError{Field: "hashFunction", Reason: "unrecognized hash function " + hashFunctionStr}
	}

	lengthInBytes, err := jsonOptionalPositiveInt(obj, "lengthInBytes", defaultLengthInBytes)
	if err != nil {
		return nil, err
	}

	memoryLimit, err := jsonOptionalPositiveInt(obj, "hashFunctionMemoryLimitInBytes", 0)
	if err != nil {
		return nil, err
	}
	passes, err := jsonOptionalPositiveInt(obj, "hashFunctionMemoryPasses", 0)
	if err != nil {
		return nil, err
	}

	additionalSalt, err := jsonOptionalString(obj, "additionalSalt", "")
	if err != nil {
		return nil, err
	}

	return &derivationOptions{
		declaredType:  KeyType(declaredType),
		hashFunction:  hashFunction,
		lengthInBytes: lengthInBytes,
		argon2: crypto.Argon2Params{
			Salt:               []byte(additionalSalt),
			MemoryLimitInBytes: uint32(memoryLimit),
			Passes:             uint32(passes),
		},
		additionalSalt: additionalSalt,
	}, nil
}
