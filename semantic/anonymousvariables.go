package semantic

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// AnonymousVariables flags every universally quantified variable that
// occurs in exactly one body atom-token, not in the head, not in any
// condition or EGD, and not as an aggregation contributor: it carries no
// information anywhere in the rule.
func AnonymousVariables(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, v := range g.NodesOfKind(program.KindVariable) {
		if v.Variable.Existential {
			continue
		}
		if len(bodyAtomTokenIDsOf(g, v)) != 1 {
			continue
		}
		if occursInHead(g, v) {
			continue
		}
		if len(g.EdgesFrom(v.ID, program.EdgeVariableAtCondition)) > 0 {
			continue
		}
		if len(g.EdgesFrom(v.ID, program.EdgeVariableAtEGD)) > 0 {
			continue
		}
		if len(g.EdgesFrom(v.ID, program.EdgeContributorOfAggregation)) > 0 {
			continue
		}
		for _, tok := range occurrenceTokensOf(g, v) {
			tok.Token.Modifiers.Add("UNUSED")
			out = append(out, diagnostic.New("ANONYMOUS_VARIABLE",
				map[string]string{"variable": v.Variable.Name}, tokenRange(tok.Token), ""))
		}
	}
	return out
}
