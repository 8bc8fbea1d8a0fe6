package semantic

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// NoFactOutput flags every @output token naming an atom classified
// extensional (it has no deriving rule, only facts/@input).
func NoFactOutput(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, tok := range g.NodesOfKind(program.KindToken) {
		if tok.Token.Location != program.LocationOutput {
			continue
		}
		atomName := atomNameOfToken(g, tok.ID)
		atom := g.Node(program.AtomID(atomName))
		if atom == nil || atom.Atom == nil || !atom.Atom.IsEDB || atom.Atom.IsIDB {
			continue
		}
		out = append(out, diagnostic.New("ERR_NO_EXTENSIONAL_ATOM_AS_OUTPUT",
			map[string]string{"atom": atomName}, tokenRange(tok.Token), ""))
	}
	return out
}
