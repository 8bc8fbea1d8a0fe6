package fragment

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// FrontierGuarded flags every rule with no body atom-token whose variables
// cover the rule's frontier (the universally quantified variables that
// actually occur in the head).
func FrontierGuarded(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, ruleID := range ruleIDs(g) {
		frontier := frontierVariables(g, ruleID)
		guarded := false
		for _, tok := range bodyAtomTokens(g, ruleID) {
			if program.SetIncludes(atomTokenVariables(g, tok.ID), frontier) {
				tok.Token.FrontierGuard = true
				guarded = true
			}
		}
		rule := g.Node(ruleID)
		if guarded {
			rule.Rule.FrontierGuarded = true
			continue
		}
		out = append(out, diagnostic.New("ERR_ATOM_NOT_IN_FRONTIER_GUARDED_RULE", nil, ruleRange(rule.Rule), FrontierGuardedName))
	}
	return out
}
