package crypto

import "io"

// SetRandReaderForTesting sets the random reader used by BoxSeal to
// generate its ephemeral key pair. Intended for tests only; returns a
// function that restores the original reader.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}
