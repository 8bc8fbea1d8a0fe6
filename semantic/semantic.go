// Package semantic implements the orthogonal, non-fragment semantic checks:
// well-formedness rules that hold regardless of which decidable fragment a
// program is being checked against (undeclared atoms, binding/output
// wiring, condition-variable cycles, negation, temporal propagation, and
// the informational EGD hint). Each analyzer reads the program graph and,
// where an annotation-driven question is being asked, the builder's
// SymbolTables -- none of it depends on any fragment-analyzer output.
package semantic

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

func tokenRange(t *program.TokenData) diagnostic.Range {
	return diagnostic.Range{
		StartLine: t.Line,
		StartCol:  t.Column,
		EndLine:   t.Line,
		EndCol:    t.Column + t.Length,
	}
}

func ruleRange(r *program.RuleData) diagnostic.Range {
	return diagnostic.Range{
		StartLine: r.Range.StartLine,
		StartCol:  r.Range.StartCol,
		EndLine:   r.Range.EndLine,
		EndCol:    r.Range.EndCol,
	}
}

func egdRange(e *program.EGDData) diagnostic.Range {
	return diagnostic.Range{
		StartLine: e.EqualsRange.StartLine,
		StartCol:  e.EqualsRange.StartCol,
		EndLine:   e.EqualsRange.EndLine,
		EndCol:    e.EqualsRange.EndCol,
	}
}
