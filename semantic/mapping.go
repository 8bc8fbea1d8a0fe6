package semantic

import (
	"strconv"

	"github.com/vadalog/dlanalyzer/builder"
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// AtomSignatureTerms flags every atom whose @mapping declarations do not
// account for exactly its arity.
func AtomSignatureTerms(g *program.Graph, symbols builder.SymbolTables) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for atomName, entries := range symbols.Mappings {
		arity := atomArity(g, atomName)
		if len(entries) == arity {
			continue
		}
		for _, tok := range g.NodesOfKind(program.KindToken) {
			if tok.Token.Location != program.LocationMapping || atomNameOfToken(g, tok.ID) != atomName {
				continue
			}
			out = append(out, diagnostic.New("ERR_ATOM_SIGNATURE_TERMS_MISMATCH", map[string]string{
				"atom":     atomName,
				"declared": strconv.Itoa(len(entries)),
				"actual":   strconv.Itoa(arity),
			}, tokenRange(tok.Token), ""))
		}
	}
	return out
}
