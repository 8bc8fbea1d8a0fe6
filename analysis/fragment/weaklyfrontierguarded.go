package fragment

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// WeaklyFrontierGuarded flags every rule with no body atom-token whose
// variables cover the dangerous variables shared with the head. Since a
// dangerous variable occurs in the head by definition, this is the same
// underlying set as WeaklyGuarded's dangerousVariables, checked with a
// distinct guard-flag key and diagnostic code.
func WeaklyFrontierGuarded(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, ruleID := range ruleIDs(g) {
		dangerous := dangerousVariables(g, ruleID)
		guarded := false
		for _, tok := range bodyAtomTokens(g, ruleID) {
			if program.SetIncludes(atomTokenVariables(g, tok.ID), dangerous) {
				tok.Token.WeakFrontierGuard = true
				guarded = true
			}
		}
		rule := g.Node(ruleID)
		if guarded {
			rule.Rule.WeaklyFrontierGuarded = true
			continue
		}
		out = append(out, diagnostic.New("ERR_ATOM_NOT_IN_WEAKLY_FRONTIER_GUARDED_RULE", nil, ruleRange(rule.Rule), WeaklyFrontierGuardedName))
	}
	return out
}
