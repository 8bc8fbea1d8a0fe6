package semantic

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// GroundTag marks every rule that binds no variable at all as ground. It
// emits no diagnostics of its own and runs first in the C5 order; no other
// analyzer reads the ground flag.
func GroundTag(g *program.Graph) []diagnostic.Diagnostic {
	hasVariable := make(map[string]bool)
	for _, v := range g.NodesOfKind(program.KindVariable) {
		hasVariable[v.Variable.Rule] = true
	}
	for _, ruleID := range ruleIDs(g) {
		if !hasVariable[ruleID] {
			g.Node(ruleID).Rule.Ground = true
		}
	}
	return nil
}
