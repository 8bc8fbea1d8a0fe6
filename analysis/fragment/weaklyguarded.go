package fragment

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// WeaklyGuarded flags every rule with no body atom-token whose variables
// cover the rule's dangerous-variable subset. Must run after Warded, whose
// dangerousVariables computation this analyzer also performs (it is
// idempotent, so re-deriving it here does not change the result).
func WeaklyGuarded(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, ruleID := range ruleIDs(g) {
		dangerous := dangerousVariables(g, ruleID)
		guarded := false
		for _, tok := range bodyAtomTokens(g, ruleID) {
			if program.SetIncludes(atomTokenVariables(g, tok.ID), dangerous) {
				tok.Token.WeakGuard = true
				guarded = true
			}
		}
		rule := g.Node(ruleID)
		if guarded {
			rule.Rule.WeaklyGuarded = true
			continue
		}
		out = append(out, diagnostic.New("ERR_ATOM_NOT_IN_WEAKLY_GUARDED_RULE", nil, ruleRange(rule.Rule), WeaklyGuardedName))
	}
	return out
}
