package fragment

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// Guarded flags every rule with no body atom-token whose variables cover
// the rule's full body-variable set.
func Guarded(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, ruleID := range ruleIDs(g) {
		bodyVars := bodyVariables(g, ruleID)
		guarded := false
		for _, tok := range bodyAtomTokens(g, ruleID) {
			if program.SetIncludes(atomTokenVariables(g, tok.ID), bodyVars) {
				tok.Token.Guard = true
				guarded = true
			}
		}
		rule := g.Node(ruleID)
		if guarded {
			rule.Rule.Guarded = true
			continue
		}
		out = append(out, diagnostic.New("ERR_ATOM_NOT_IN_GUARDED_RULE", nil, ruleRange(rule.Rule), GuardedName))
	}
	return out
}
