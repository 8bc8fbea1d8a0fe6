// Package builder implements the program-graph builder: a parsetree.Listener
// that turns one depth-first parse-tree walk into a populated program.Graph
// plus the symbol tables and parse/builder-level diagnostics that the
// downstream analyzers consume.
//
// The builder is a state machine, not a recursive visitor: the walker
// (production parser, or a test driver) calls Enter*/Exit* in source order,
// and the builder tracks "where am I" (head, body, fact, annotation,
// equality side, ...) with a handful of boolean/enum fields and counters,
// the same way a hand-written ANTLR listener accumulates state across
// callback invocations instead of threading it through return values.
package builder
