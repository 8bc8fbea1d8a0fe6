package fragment

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// AfratiLinear marks atoms intensional (appearing in some head) and, in
// every rule whose body holds two or more intensional atom-tokens, flags
// each of those tokens.
func AfratiLinear(g *program.Graph) []diagnostic.Diagnostic {
	for _, atom := range g.NodesOfKind(program.KindAtom) {
		atom.Atom.Intensional = atom.Atom.IsIDB
	}

	var out []diagnostic.Diagnostic
	for _, ruleID := range ruleIDs(g) {
		var intensional []*program.Node
		for _, tok := range bodyAtomTokens(g, ruleID) {
			name := atomNameOfToken(g, tok.ID)
			atom := g.Node(program.AtomID(name))
			if atom != nil && atom.Atom != nil && atom.Atom.Intensional {
				intensional = append(intensional, tok)
			}
		}
		if len(intensional) < 2 {
			continue
		}
		for _, tok := range intensional {
			tok.Token.AfratiNonLinearJoin = true
			out = append(out, diagnostic.New("NON_AFRATI_LINEAR_JOIN",
				map[string]string{"token": tok.Token.Text}, tokenRange(tok.Token), AfratiLinearName))
		}
	}
	return out
}
