package decorator

import "github.com/vadalog/dlanalyzer/program"

// isAtomToken reports whether tokenID's TOKEN_OF edge targets an Atom node
// directly, i.e. it is an atom-name token rather than an occurrence token
// sitting on one.
func isAtomToken(g *program.Graph, tokenID string) bool {
	for _, e := range g.EdgesFrom(tokenID, program.EdgeTokenOf) {
		if target := g.Node(e.To); target != nil && target.Kind == program.KindAtom {
			return true
		}
	}
	return false
}

// atomNameOfToken follows an atom-name token's TOKEN_OF edge back to its
// owning Atom node. It returns "" for an occurrence token, whose TOKEN_OF
// edge targets the atom-name token instead.
func atomNameOfToken(g *program.Graph, tokenID string) string {
	for _, e := range g.EdgesFrom(tokenID, program.EdgeTokenOf) {
		if target := g.Node(e.To); target != nil && target.Kind == program.KindAtom {
			return target.Atom.Name
		}
	}
	return ""
}

// hostAtomNameOf resolves the owning atom name of any token that sits
// somewhere inside an atom's term list -- the atom-name token itself, or
// one of its term-occurrence tokens, which are one TOKEN_OF hop further
// out (pointing at the atom-name token, not the Atom node).
func hostAtomNameOf(g *program.Graph, tokenID string) string {
	if name := atomNameOfToken(g, tokenID); name != "" {
		return name
	}
	for _, e := range g.EdgesFrom(tokenID, program.EdgeTokenOf) {
		if sibling := g.Node(e.To); sibling != nil && sibling.Kind == program.KindToken {
			if name := atomNameOfToken(g, sibling.ID); name != "" {
				return name
			}
		}
	}
	return ""
}

// atomTokensOf returns every atom-name token occurrence of atomName.
func atomTokensOf(g *program.Graph, atomName string) []*program.Node {
	var out []*program.Node
	for _, tok := range g.NodesOfKind(program.KindToken) {
		if atomNameOfToken(g, tok.ID) == atomName {
			out = append(out, tok)
		}
	}
	return out
}

// occurrenceTokensOf returns every lexical token representing an occurrence
// of v, excluding atom-name tokens.
func occurrenceTokensOf(g *program.Graph, v *program.Node) []*program.Node {
	var out []*program.Node
	for _, tok := range g.NodesOfKind(program.KindToken) {
		if tok.Token.Rule != v.Variable.Rule || tok.Token.Text != v.Variable.Name {
			continue
		}
		if isAtomToken(g, tok.ID) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
