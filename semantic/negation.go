package semantic

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// Negation flags every occurrence of a variable that appears both in the
// head and inside a negated body literal, unless it also has a binding
// occurrence in a non-negated body atom.
func Negation(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, v := range g.NodesOfKind(program.KindVariable) {
		if !occursInHead(g, v) {
			continue
		}
		negatedEdges := negatedBodyEdges(g, v)
		if len(negatedEdges) == 0 {
			continue
		}
		if occursInNonNegatedBody(g, v) {
			continue
		}
		for _, tok := range occurrenceTokensOf(g, v) {
			out = append(out, diagnostic.New("INVALID_NEGATION_POSITIVE_BODY_0",
				map[string]string{"variable": v.Variable.Name}, tokenRange(tok.Token), ""))
		}
	}
	return out
}

func negatedBodyEdges(g *program.Graph, v *program.Node) []*program.Edge {
	var out []*program.Edge
	for _, e := range g.EdgesFrom(v.ID, program.EdgeVariableAtPosition) {
		if !e.VariableAt.Head && e.VariableAt.Negated {
			out = append(out, e)
		}
	}
	return out
}

func occursInNonNegatedBody(g *program.Graph, v *program.Node) bool {
	for _, e := range g.EdgesFrom(v.ID, program.EdgeVariableAtPosition) {
		if !e.VariableAt.Head && !e.VariableAt.Negated {
			return true
		}
	}
	return false
}
