package semantic

import (
	"github.com/vadalog/dlanalyzer/builder"
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// BindOnUnknown flags every @bind/@qbind token naming an atom that is
// neither @input nor @output.
func BindOnUnknown(g *program.Graph, symbols builder.SymbolTables) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, tok := range g.NodesOfKind(program.KindToken) {
		if tok.Token.Location != program.LocationBinding {
			continue
		}
		atomName := atomNameOfToken(g, tok.ID)
		if symbols.InputAtomNames.Has(atomName) || symbols.OutputAtomNames.Has(atomName) {
			continue
		}
		out = append(out, diagnostic.New("ERR_BINDING_ON_UNKNOWN_ATOM",
			map[string]string{"atom": atomName}, tokenRange(tok.Token), ""))
	}
	return out
}
