package semantic

import "github.com/vadalog/dlanalyzer/program"

// ruleIDs returns every Rule node id, in insertion (declaration) order.
func ruleIDs(g *program.Graph) []string {
	var out []string
	for _, r := range g.NodesOfKind(program.KindRule) {
		out = append(out, r.ID)
	}
	return out
}

func isAtomToken(g *program.Graph, tokenID string) bool {
	for _, e := range g.EdgesFrom(tokenID, program.EdgeTokenOf) {
		if target := g.Node(e.To); target != nil && target.Kind == program.KindAtom {
			return true
		}
	}
	return false
}

// atomNameOfToken follows an atom-token's TOKEN_OF edge back to its owning
// Atom node and returns the atom name, or "" if tokenID is not an atom
// token.
func atomNameOfToken(g *program.Graph, tokenID string) string {
	for _, e := range g.EdgesFrom(tokenID, program.EdgeTokenOf) {
		if target := g.Node(e.To); target != nil && target.Kind == program.KindAtom {
			return target.Atom.Name
		}
	}
	return ""
}

// atomTokensOf returns every atom-token occurrence of atomName, across all
// locations.
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

// bodyAtomTokenIDsOf returns the distinct body atom-token ids that v
// occupies (via VARIABLE_AT_ATOM_TOKEN edges with Head=false).
func bodyAtomTokenIDsOf(g *program.Graph, v *program.Node) program.Set[string] {
	out := program.NewSet[string]()
	for _, e := range g.EdgesFrom(v.ID, program.EdgeVariableAtAtomToken) {
		if !e.VariableAt.Head {
			out.Add(e.To)
		}
	}
	return out
}

// occursInHead reports whether v has at least one head VARIABLE_AT_POSITION
// edge.
func occursInHead(g *program.Graph, v *program.Node) bool {
	for _, e := range g.EdgesFrom(v.ID, program.EdgeVariableAtPosition) {
		if e.VariableAt.Head {
			return true
		}
	}
	return false
}

// atomArity returns the number of distinct term positions atomName occupies
// across the program, derived from its Position nodes.
func atomArity(g *program.Graph, atomName string) int {
	max := -1
	for _, pos := range g.NodesOfKind(program.KindPosition) {
		if pos.Position.Atom != atomName {
			continue
		}
		if pos.Position.Index > max {
			max = pos.Position.Index
		}
	}
	return max + 1
}
