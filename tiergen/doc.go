// Package tiergen implements the parallel tier generator:
// given tier T_n, fan out its representatives' extensions across a
// worker pool, discard children matching the forbidden-clique
// configuration, route survivors into a shared tier by their chunk
// signature, and deduplicate by isomorphism both periodically (while
// production is ongoing) and once more at the end.
//
// Configuration follows a functional-options convention:
// GenerateNextSize takes zero or more Option values layered over
// sensible defaults.
package tiergen
