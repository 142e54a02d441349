package graph

import (
	"encoding/base64"
	"fmt"

	"github.com/katalvlaran/graphtiers/bitset"
)

// encoding is standard-alphabet base64 with no padding, per the tier
// catalog format.
var encoding = base64.RawStdEncoding

// ToString serializes g's edges as unpadded standard base64 of the
// packed edge bytes. The vertex count is not embedded; readers must
// supply it out-of-band (see FromString).
func (g *Graph) ToString() string {
	return encoding.EncodeToString(g.edges.Bytes())
}

// AppendString appends g's base64 edge encoding to buf, avoiding an
// intermediate string allocation when writing many graphs in sequence.
func (g *Graph) AppendString(buf []byte) []byte {
	n := encoding.EncodedLen(len(g.edges.Bytes()))
	start := len(buf)
	for i := 0; i < n; i++ {
		buf = append(buf, 0)
	}
	encoding.Encode(buf[start:], g.edges.Bytes())

	return buf
}

// FromString decodes a base64-encoded edge sequence produced by
// ToString into a Graph on numVerts vertices. numVerts is required as a
// hint: the bit length is derived as numVerts*(numVerts-1)/2 and the
// byte count as ceil(bitLength/8).
func FromString(s string, numVerts int) (*Graph, error) {
	raw, err := encoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBase64, err)
	}

	bitLen := numVerts * (numVerts - 1) / 2

	return &Graph{numVerts: numVerts, edges: bitset.FromBytes(raw, bitLen)}, nil
}
