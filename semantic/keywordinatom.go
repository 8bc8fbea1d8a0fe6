package semantic

import (
	"strings"

	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// reservedKeyword lists the identifiers the language reserves for
// annotations and aggregation expressions, matching annotationArity and
// aggregationKeyword in package builder.
var reservedKeyword = program.NewSet(
	"output", "input", "module", "bind", "qbind", "mapping", "post", "exports", "temporal",
	"sum", "prod", "avg", "count", "min", "max", "set", "list", "union",
	"msum", "mprod", "mcount", "mmin", "mmax", "munion",
	"true", "false", "not",
)

// KeywordInAtomName flags every atom name colliding with a reserved
// keyword.
func KeywordInAtomName(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, atom := range g.NodesOfKind(program.KindAtom) {
		if !reservedKeyword.Has(strings.ToLower(atom.Atom.Name)) {
			continue
		}
		for _, tok := range atomTokensOf(g, atom.Atom.Name) {
			out = append(out, diagnostic.New("ERR_KEYWORD_USED_AS_ATOM_NAME",
				map[string]string{"atom": atom.Atom.Name}, tokenRange(tok.Token), ""))
		}
	}
	return out
}
