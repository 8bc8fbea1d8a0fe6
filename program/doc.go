// Package program defines the program graph: the typed, in-memory
// intermediate representation that the builder (package builder) populates
// from a parse tree and every analyzer (packages analysis, analysis/fragment,
// semantic) reads and annotates.
//
// The graph is a directed multigraph. Every node carries a stable string ID
// and belongs to exactly one of eight kinds (Rule, Atom, Token, Variable,
// Position, EGD, Condition, Aggregation); edges carry one of eleven kinds.
// Rather than a dynamic attribute bag per node/edge, each kind has a fixed Go
// struct of optional fields -- the same information the source's property-bag
// representation holds, with presence checked by a Go boolean instead of a
// map-membership test.
package program
