package seededcrypto

import (
	"crypto/subtle"
	"encoding/binary"
)

// SecretBuffer is a fixed-length region holding sensitive bytes. It is
// never reallocated after construction, and Close overwrites its
// contents before the backing array is released to the garbage
// collector. Copies out of a SecretBuffer (via Bytes) are always
// explicit; nothing aliases the internal slice.
type SecretBuffer struct {
	data   []byte
	closed bool
}

// NewSecretBuffer allocates a zeroed buffer of the given length.
func NewSecretBuffer(length int) *SecretBuffer {
	return &SecretBuffer{data: make([]byte, length)}
}

// NewSecretBufferFromBytes copies src into a new buffer.
func NewSecretBufferFromBytes(src []byte) *SecretBuffer {
	data := make([]byte, len(src))
	copy(data, src)
	return &SecretBuffer{data: data}
}

// NewSecretBufferFromUTF8String copies the UTF-8 bytes of s into a new
// buffer. No validation beyond lossless byte transport is performed.
func NewSecretBufferFromUTF8String(s string) *SecretBuffer {
	return NewSecretBufferFromBytes([]byte(s))
}

// NewSecretBufferFromHex decodes a hex string into a new buffer. It
// fails with ErrInvalidHexCharacter on a non-hex byte or an odd-length
// input.
func NewSecretBufferFromHex(s string) (*SecretBuffer, error) {
	b, err := fromHex(s)
	if err != nil {
		return nil, err
	}
	return &SecretBuffer{data: b}, nil
}

// Len returns the buffer's length in bytes.
func (b *SecretBuffer) Len() int { return len(b.data) }

// Bytes returns a copy of the buffer's contents. It returns nil if the
// buffer has been closed.
func (b *SecretBuffer) Bytes() []byte {
	if b.closed {
		return nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// raw returns the buffer's backing slice without copying, for internal
// use by code that will not retain or mutate it beyond the call.
func (b *SecretBuffer) raw() []byte { return b.data }

// ToHex encodes the buffer's contents as lowercase hex.
func (b *SecretBuffer) ToHex() string { return toHex(b.data) }

// ToUTF8String returns the buffer's contents reinterpreted as a UTF-8
// string, with no validation beyond lossless transport.
func (b *SecretBuffer) ToUTF8String() string { return string(b.data) }

// Close overwrites the buffer's contents with zeros. It is idempotent;
// calling it more than once, or calling any other method afterward
// (other than Len, which reports 0), is safe.
func (b *SecretBuffer) Close() {
	if b.closed {
		return
	}
	secureZero(b.data)
	b.data = nil
	b.closed = true
}

// secureZero overwrites data with zeros using a constant-time copy so
// the compiler cannot optimize the write away.
func secureZero(data []byte) {
	if len(data) == 0 {
		return
	}
	zeros := make([]byte, len(data))
	subtle.ConstantTimeCopy(1, data, zeros)
}

// CombineFixedLengthList packs a sequence of SecretBuffers into a
// single SecretBuffer using the fixed-length-list codec.
func CombineFixedLengthList(buffers ...*SecretBuffer) *SecretBuffer {
	raw := make([][]byte, len(buffers))
	for i, b := range buffers {
		raw[i] = b.raw()
	}
	return &SecretBuffer{data: combineFixedLengthList(raw...)}
}

// SplitFixedLengthList unpacks exactly n length-prefixed elements from a
// SecretBuffer produced by CombineFixedLengthList.
func (b *SecretBuffer) SplitFixedLengthList(n int) ([]*SecretBuffer, error) {
	parts, err := splitFixedLengthList(b.data, n)
	if err != nil {
		return nil, err
	}
	out := make([]*SecretBuffer, len(parts))
	for i, p := range parts {
		out[i] = &SecretBuffer{data: p}
	}
	return out, nil
}

// combineFixedLengthList serializes buffers as the fixed-length-list
// codec: each element is emitted as a big-endian 32-bit length followed
// by its bytes, in order, with no overall count header.
func combineFixedLengthList(buffers ...[]byte) []byte {
	size := 0
	for _, buf := range buffers {
		size += 4 + len(buf)
	}
	out := make([]byte, 0, size)
	var lenPrefix [4]byte
	for _, buf := range buffers {
		binary.BigEndian.PutUint32(lenPrefix[:], uint32(len(buf)))
		out = append(out, lenPrefix[:]...)
		out = append(out, buf...)
	}
	return out
}

// splitFixedLengthList parses exactly n length-prefixed elements from
// serialized. It fails with ErrMalformedData if the data underflows or
// has bytes left over once n elements have been read.
func splitFixedLengthList(serialized []byte, n int) ([][]byte, error) {
	out := make([][]byte, 0, n)
	pos := 0
	for i := 0; i < n; i++ {
		if pos+4 > len(serialized) {
			return nil, &BinaryCodecError{Reason: "truncated length prefix"}
		}
		length := int(binary.BigEndian.Uint32(serialized[pos : pos+4]))
		pos += 4
		if pos+length > len(serialized) {
			return nil, &BinaryCodecError{Reason: "truncated element"}
		}
		elem := make([]byte, length)
		copy(elem, serialized[pos:pos+length])
		out = append(out, elem)
		pos += length
	}
	if pos != len(serialized) {
		return nil, &BinaryCodecError{Reason: "trailing bytes"}
	}
	return out, nil
}
