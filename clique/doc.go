// Package clique decides presence of a monochromatic clique in a graph.
//
// Detection is exposed as free functions over Cliquer, a small
// capability interface (vertex count + edge lookup), rather than as
// methods on graph.Graph: an algorithm that only needs a read-only
// view shouldn't own the representation it operates on, it should
// borrow a capability.
//
// Two families of queries are exposed: the general HasK(g, color, k),
// and HasKIncludingLast(g, color, k), which requires the
// highest-indexed vertex to participate. During tier extension only the
// new vertex can create a clique that wasn't already absent from the
// parent, so Forbids uses exclusively the "including last" form; the
// general form exists for tests and as a documented fallback.
package clique
