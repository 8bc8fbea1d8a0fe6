// Package fragment implements the nine decidable-fragment analyzers (Plain
// Datalog, Linear, Afrati-Linear, Guarded, Frontier-Guarded, Weakly-Guarded,
// Weakly-Frontier-Guarded, Warded, Shy). Each analyzer derives per-rule
// aggregate sets from the program graph, annotates rule/token/variable/
// position nodes with boolean fragment-membership flags, and emits
// diagnostics tagged with its own fragment name.
package fragment

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// Fragment names, used verbatim as diagnostic.Diagnostic.FragmentViolation
// and as the internal identifier adapter.ParseFragment resolves a display
// string to.
const (
	PlainDatalogName           = "Plain Datalog"
	LinearName                 = "Linear"
	AfratiLinearName            = "Afrati Linear"
	GuardedName                 = "Guarded"
	FrontierGuardedName         = "Frontier Guarded"
	WeaklyGuardedName           = "Weakly Guarded"
	WeaklyFrontierGuardedName   = "Weakly Frontier Guarded"
	WardedName                  = "Warded"
	ShyName                     = "Shy"
)

// tokenRange builds a diagnostic.Range from a token node's TokenData.
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
