package fragment

import "github.com/vadalog/dlanalyzer/program"

// bodyAtomTokens returns every Body-location atom-token belonging to
// ruleID: a Token node whose only TOKEN_OF edge points at an Atom node
// (variable/literal tokens instead point at a Variable, EGD, Condition, or
// Aggregation node and are excluded here).
func bodyAtomTokens(g *program.Graph, ruleID string) []*program.Node {
	var out []*program.Node
	for _, tok := range g.NodesOfKind(program.KindToken) {
		if tok.Token.Rule != ruleID || tok.Token.Location != program.LocationBody {
			continue
		}
		if isAtomToken(g, tok.ID) {
			out = append(out, tok)
		}
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

// bodyVariables returns the set of variable names with at least one body
// VARIABLE_AT_POSITION edge in ruleID.
func bodyVariables(g *program.Graph, ruleID string) program.Set[string] {
	out := program.NewSet[string]()
	for _, v := range g.NodesOfKind(program.KindVariable) {
		if v.Variable.Rule != ruleID {
			continue
		}
		for _, e := range g.EdgesFrom(v.ID, program.EdgeVariableAtPosition) {
			if !e.VariableAt.Head {
				out.Add(v.Variable.Name)
				break
			}
		}
	}
	return out
}

// frontierVariables returns the set of universally quantified variable
// names of ruleID that occur in the head (the "frontier").
func frontierVariables(g *program.Graph, ruleID string) program.Set[string] {
	out := program.NewSet[string]()
	for _, v := range g.NodesOfKind(program.KindVariable) {
		if v.Variable.Rule != ruleID || v.Variable.Existential {
			continue
		}
		for _, e := range g.EdgesFrom(v.ID, program.EdgeVariableAtPosition) {
			if e.VariableAt.Head {
				out.Add(v.Variable.Name)
				break
			}
		}
	}
	return out
}

// dangerousVariables returns the set of variable names of ruleID that are
// universally quantified, occur exclusively in affected body positions,
// and also occur in the head.
func dangerousVariables(g *program.Graph, ruleID string) program.Set[string] {
	out := program.NewSet[string]()
	for _, v := range g.NodesOfKind(program.KindVariable) {
		if v.Variable.Rule != ruleID || v.Variable.Existential {
			continue
		}
		bodyEdges := g.EdgesFrom(v.ID, program.EdgeVariableAtPosition)
		harmful, inHead, anyBody := true, false, false
		for _, e := range bodyEdges {
			if e.VariableAt.Head {
				inHead = true
				continue
			}
			anyBody = true
			pos := g.Node(e.To)
			if pos == nil || pos.Position == nil || !pos.Position.Affected {
				harmful = false
			}
		}
		if anyBody && harmful {
			v.Variable.Harmful = true
		}
		if anyBody && harmful && inHead {
			v.Variable.Dangerous = true
			out.Add(v.Variable.Name)
		}
	}
	return out
}

// atomTokenVariables returns the set of variable names occurring at the
// given atom-token via VARIABLE_AT_ATOM_TOKEN edges.
func atomTokenVariables(g *program.Graph, tokenID string) program.Set[string] {
	out := program.NewSet[string]()
	for _, e := range g.EdgesTo(tokenID, program.EdgeVariableAtAtomToken) {
		if v := g.Node(e.From); v != nil && v.Variable != nil {
			out.Add(v.Variable.Name)
		}
	}
	return out
}

// ruleIDs returns every Rule node id, in insertion (declaration) order.
func ruleIDs(g *program.Graph) []string {
	var out []string
	for _, r := range g.NodesOfKind(program.KindRule) {
		out = append(out, r.ID)
	}
	return out
}

// occurrenceTokensOf returns every lexical token representing an occurrence
// of v (in a body/head atom term, a condition, or an EGD head) -- every
// Token node sharing v's owning rule and name, excluding atom-name tokens
// (whose TOKEN_OF edge points directly at an Atom node rather than a
// sibling Token).
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

// ruleHasEGD reports whether ruleID owns at least one EGD node.
func ruleHasEGD(g *program.Graph, ruleID string) bool {
	return len(g.EdgesTo(ruleID, program.EdgeEGDOf)) > 0
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
