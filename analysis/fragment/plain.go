package fragment

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// PlainDatalog flags every existential variable occurrence: Plain Datalog
// requires every head variable to already occur in the body.
func PlainDatalog(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, v := range g.NodesOfKind(program.KindVariable) {
		if !v.Variable.Existential {
			continue
		}
		for _, tok := range occurrenceTokensOf(g, v) {
			out = append(out, diagnostic.New("EXISTENTIAL_VARIABLE_IN_DATALOG",
				map[string]string{"variable": v.Variable.Name}, tokenRange(tok.Token), PlainDatalogName))
		}
	}
	return out
}
