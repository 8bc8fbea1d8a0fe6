// Package adapter is the module's only externally-facing surface and its
// only I/O boundary: everything in analysis, semantic, decorator, builder,
// program, and diagnostic is a pure in-memory transform over a single
// document's worth of bytes. adapter wires the external parser, the fixed
// analyzer pipeline, and (optionally) a remote document store behind one
// Analyze entry point, mirroring the shape of analyzer.Analyzer in the
// reference package this module grew out of.
package adapter

import (
	"github.com/vadalog/dlanalyzer/parsetree"
)

// Parse drives a Listener over one document's source bytes in source
// order. The production embedding supplies its own grammar-driven parser;
// tests supply small hand-written functions that call the Listener directly.
type Parse func(source []byte, l parsetree.Listener) error

// Config holds the adapter's construction-time dependencies, mirroring
// inspector/info.Config's plain-struct-plus-DefaultConfig shape.
type Config struct {
	// Parse is required: Analyze has no grammar of its own.
	Parse Parse

	// DocBaseURL overrides diagnostic.DocBaseURL when non-empty, so an
	// embedding LSP can point diagnostic doc links at its own hosted docs.
	DocBaseURL string

	// DefaultFragment overrides DefaultFragment (Warded) when non-empty.
	DefaultFragment string
}

// DefaultConfig returns a Config with every optional field at its zero
// value; Parse must still be set by the caller before use.
func DefaultConfig() Config {
	return Config{}
}
