package semantic

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// NoVariablesInFact flags every variable occurrence whose hosting atom-token
// is a fact: a fact is a ground atom, so every term must be a constant.
func NoVariablesInFact(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, v := range g.NodesOfKind(program.KindVariable) {
		for _, occ := range occurrenceTokensOf(g, v) {
			host := hostTokenOf(g, occ.ID)
			if host == nil || host.Token == nil || host.Token.Location != program.LocationFact {
				continue
			}
			atomName := atomNameOfToken(g, host.ID)
			out = append(out, diagnostic.New("ERR_NO_VARIABLES_IN_FACT",
				map[string]string{"atom": atomName}, tokenRange(occ.Token), ""))
		}
	}
	return out
}

// hostTokenOf follows a variable-occurrence token's TOKEN_OF edge to the
// sibling atom-token/Condition/EGD node it sits on, returning the sibling
// atom-token node if that sibling is itself a Token node.
func hostTokenOf(g *program.Graph, tokenID string) *program.Node {
	for _, e := range g.EdgesFrom(tokenID, program.EdgeTokenOf) {
		if target := g.Node(e.To); target != nil && target.Kind == program.KindToken {
			return target
		}
	}
	return nil
}
