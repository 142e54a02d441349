package bitset

// BitVec is an append-only bit vector backed by a byte slice. Bits are
// packed MSB-first within each byte: bit 0 is the high bit of byte 0,
// bit 7 is the low bit of byte 0, bit 8 is the high bit of byte 1, and
// so on. This layout is load-bearing — it is exactly what the tier
// catalog format (base64 over these raw bytes) assumes on both ends.
//
// The zero value is an empty, ready-to-use BitVec.
type BitVec struct {
	length int
	bytes  []byte
}

// New returns an empty BitVec.
func New() *BitVec {
	return &BitVec{}
}

// FromBytes wraps an existing byte slice as a BitVec of the given bit
// length. The caller asserts bytes already holds at least
// ceil(length/8) bytes in the MSB-first packing BitVec uses; no copy is
// made. This is the deserialization entry point used by graph.FromString.
func FromBytes(bytes []byte, length int) *BitVec {
	return &BitVec{length: length, bytes: bytes}
}

// Len reports the number of bits pushed so far.
func (b *BitVec) Len() int {
	return b.length
}

// Bytes returns the packed backing bytes. The slice is owned by the
// BitVec; callers must not mutate it.
func (b *BitVec) Bytes() []byte {
	return b.bytes
}

// Push appends one bit to the end of the vector.
func (b *BitVec) Push(val bool) {
	word := b.length / 8
	if word >= len(b.bytes) {
		b.bytes = append(b.bytes, 0)
	}
	if val {
		bit := 7 - b.length%8
		b.bytes[word] |= 1 << uint(bit)
	}
	b.length++
}

// Get reads the bit at index. The caller must ensure 0 <= index <
// b.Len(); reading out of range is undefined behavior the caller must
// prevent, per the bit-packed edge store's contract.
func (b *BitVec) Get(index int) bool {
	word := index / 8
	bit := 7 - index%8

	return b.bytes[word]&(1<<uint(bit)) != 0
}
