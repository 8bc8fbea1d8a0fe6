package semantic

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// EGDHint emits the informational HINT_EGD_0_1 hint at every EGD's `=`
// token, naming the two variables it equates. A VARIABLE_AT_EGD edge
// carries no left/right payload, so the two sides are told apart by
// insertion order: the left-hand variable's edge is always linked before
// the right-hand one, since the builder visits the equality sides in
// source order.
func EGDHint(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, egd := range g.NodesOfKind(program.KindEGD) {
		edges := g.EdgesTo(egd.ID, program.EdgeVariableAtEGD)
		if len(edges) < 2 {
			continue
		}
		lhs := g.Node(edges[0].From)
		rhs := g.Node(edges[1].From)
		if lhs == nil || lhs.Variable == nil || rhs == nil || rhs.Variable == nil {
			continue
		}
		out = append(out, diagnostic.New("HINT_EGD_0_1",
			map[string]string{"lhs": lhs.Variable.Name, "rhs": rhs.Variable.Name},
			egdRange(egd.EGD), ""))
	}
	return out
}
