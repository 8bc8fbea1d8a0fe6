package fragment

import (
	"strconv"

	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// Linear flags every rule whose body holds more than one atom-token
// (repeated occurrences of the same atom each count).
func Linear(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, ruleID := range ruleIDs(g) {
		atoms := bodyAtomTokens(g, ruleID)
		if len(atoms) <= 1 {
			continue
		}
		rule := g.Node(ruleID)
		rule.Rule.NonLinear = true
		out = append(out, diagnostic.New("NON_LINEAR_RULE",
			map[string]string{"count": strconv.Itoa(len(atoms))}, ruleRange(rule.Rule), LinearName))
	}
	return out
}
