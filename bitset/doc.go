// Package bitset implements BitVec, an append-only, byte-packed bit
// vector tuned for the one access pattern this module needs: push a bit,
// read a bit by index, and hand the backing bytes straight to base64.
//
// Bits are packed MSB-first within each byte, to match the tier
// catalog format's base64-over-raw-bytes contract exactly.
package bitset
