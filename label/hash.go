package label

import (
	"encoding/binary"
	"hash/fnv"
)

// hashUint32s folds a sequence of u32 values into one u32 signature,
// using the standard library's FNV-1a: a stdlib-only, deterministic
// hash with no cryptographic pretensions — exactly what a structural
// fingerprint needs.
func hashUint32s(vals ...uint32) uint32 {
	h := fnv.New64a()
	var buf [4]byte
	for _, v := range vals {
		binary.BigEndian.PutUint32(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash.Hash.Write never errors
	}

	return uint32(h.Sum64())
}

// hashEvidence folds a vertex's previous label together with its sorted
// convolution evidence into the next-round label.
func hashEvidence(prevLabel uint32, ev []evidence) uint32 {
	h := fnv.New64a()
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], prevLabel)
	h.Write(buf[:]) //nolint:errcheck
	for _, e := range ev {
		binary.BigEndian.PutUint32(buf[:], e.dist)
		h.Write(buf[:]) //nolint:errcheck
		binary.BigEndian.PutUint32(buf[:], e.label)
		h.Write(buf[:]) //nolint:errcheck
	}

	return uint32(h.Sum64())
}
