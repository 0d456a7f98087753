package crypto

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// HashFunction identifies the key-derivation hash supported by DeriveBytes.
type HashFunction string

const (
	// HashFunctionBlake2b derives output as a single-pass keyless BLAKE2b
	// hash of the input, run in XOF mode so any output length is possible.
	HashFunctionBlake2b HashFunction = "BLAKE2b"
	// HashFunctionSHA256 derives output by chaining SHA-256 over
	// input||counter until enough bytes have been produced.
	HashFunctionSHA256 HashFunction = "SHA256"
	// HashFunctionArgon2id derives output using the memory-hard Argon2id
	// password hash.
	HashFunctionArgon2id HashFunction = "Argon2id"
)

// Argon2Params carries the memory-hardness parameters used when
// HashFunction is Argon2id. Threads is fixed at 1 so derivation stays
// reproducible regardless of the host's core count.
type Argon2Params struct {
	Salt               []byte
	MemoryLimitInBytes uint32
	Passes             uint32
}

const (
	defaultArgon2MemoryLimitInBytes = 64 * 1024 * 1024
	defaultArgon2Passes             = 2
	argon2Threads                   = 1
)

// DeriveBytes runs the selected KDF over input and returns lengthInBytes
// of derived output. For fixed inputs the output is identical across
// processes and hosts.
func DeriveBytes(fn HashFunction, input []byte, lengthInBytes int, argon2Params Argon2Params) ([]byte, error) {
	switch fn {
	case HashFunctionBlake2b, "":
		return GenericHash(nil, lengthInBytes, input)
	case HashFunctionSHA256:
		return sha256Chain(input, lengthInBytes), nil
	case HashFunctionArgon2id:
		mem := argon2Params.MemoryLimitInBytes
		if mem == 0 {
			mem = defaultArgon2MemoryLimitInBytes
		}
		passes := argon2Params.Passes
		if passes == 0 {
			passes = defaultArgon2Passes
		}
		return argon2.IDKey(input, argon2Params.Salt, passes, mem/1024, argon2Threads, uint32(lengthInBytes)), nil
	default:
		return nil, fmt.Errorf("unsupported hash function %q", fn)
	}
}

// sha256Chain produces lengthInBytes of output by repeatedly hashing
// input concatenated with a big-endian 32-bit counter, starting at zero,
// and appending successive digests until enough bytes are available.
func sha256Chain(input []byte, lengthInBytes int) []byte {
	out := make([]byte, 0, lengthInBytes+sha256.Size)
	counter := make([]byte, 4)
	for i := uint32(0); len(out) < lengthInBytes; i++ {
		binary.BigEndian.PutUint32(counter, i)
		block := sha256.Sum256(append(append([]byte{}, input...), counter...))
		out = append(out, block[:]...)
	}
	return out[:lengthInBytes]
}
