// Package graph provides Graph, an immutable undirected simple graph on
// n vertices indexed 0..n-1, backed by a lower-triangle bitset.BitVec.
//
// A Graph is created once by NewGraph or FromString and never mutated
// afterward; extending it to n+1 vertices via Extensions produces
// brand-new Graph values. Its surface is deliberately small and
// read-only (vertex count + edge lookup) so that clique.Cliquer and
// label.Engine can consume it without caring how edges are stored.
package graph
