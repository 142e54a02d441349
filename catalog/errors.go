package catalog

import "errors"

// ErrChunkCountMismatch is returned by VerifyTier when the number of
// chunks read back from disk does not match the tier written.
var ErrChunkCountMismatch = errors.New("catalog: chunk count mismatch after round-trip")

// ErrGraphCountMismatch is returned by VerifyTier when the total graph
// count read back from disk does not match the tier written.
var ErrGraphCountMismatch = errors.New("catalog: graph count mismatch after round-trip")
