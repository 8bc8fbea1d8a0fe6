// Package analysis runs the base analyzer: the five seed passes every
// fragment and semantic analyzer depends on (existential variables,
// affected positions, undeclared condition variables, token enrichment).
// It runs exactly once per document, strictly before any fragment or
// semantic analyzer.
package analysis

import "github.com/vadalog/dlanalyzer/program"

// Run executes the five base passes in their fixed order against g,
// mutating node attributes in place. It never returns diagnostics of its
// own; downstream analyzers read the flags it sets.
func Run(g *program.Graph) {
	markExistentialVariables(g)
	seedAffectedPositions(g)
	propagateAffected(g)
	markUndeclaredConditionVariables(g)
	enrichTokens(g)
}

// markExistentialVariables implements step 1: a variable is existential
// iff it has a head VARIABLE_AT_POSITION edge and no body occurrence in
// the same rule.
func markExistentialVariables(g *program.Graph) {
	for _, v := range g.NodesOfKind(program.KindVariable) {
		edges := g.EdgesFrom(v.ID, program.EdgeVariableAtPosition)
		hasHead, hasBody := false, false
		for _, e := range edges {
			if e.VariableAt.Head {
				hasHead = true
			} else {
				hasBody = true
			}
		}
		if hasHead && !hasBody {
			v.Variable.Existential = true
		}
	}

	// Host each existential variable's name on every atom-token it reaches
	// via VARIABLE_AT_ATOM_TOKEN, so the decorator can surface it without
	// a second graph traversal.
	for _, v := range g.NodesOfKind(program.KindVariable) {
		if !v.Variable.Existential {
			continue
		}
		for _, e := range g.EdgesFrom(v.ID, program.EdgeVariableAtAtomToken) {
			tok := g.Node(e.To)
			if tok == nil || tok.Token == nil {
				continue
			}
			tok.Token.ExistentialVariables = append(tok.Token.ExistentialVariables, v.Variable.Name)
		}
	}
}

// seedAffectedPositions implements step 2.
func seedAffectedPositions(g *program.Graph) {
	for _, v := range g.NodesOfKind(program.KindVariable) {
		if !v.Variable.Existential {
			continue
		}
		for _, e := range g.EdgesFrom(v.ID, program.EdgeVariableAtPosition) {
			if pos := g.Node(e.To); pos != nil && pos.Position != nil {
				pos.Position.Affected = true
			}
		}
	}
}

// propagateAffected implements step 3 as a worklist fixpoint: a newly
// affected position re-examines every universally quantified variable
// that occupies it, since that variable's other head positions may now
// qualify.
func propagateAffected(g *program.Graph) {
	worklist := make([]*program.Node, 0)
	for _, pos := range g.NodesOfKind(program.KindPosition) {
		if pos.Position.Affected {
			worklist = append(worklist, pos)
		}
	}

	seen := map[string]bool{}
	for _, pos := range worklist {
		seen[pos.ID] = true
	}

	for len(worklist) > 0 {
		pos := worklist[0]
		worklist = worklist[1:]

		for _, e := range g.EdgesTo(pos.ID, program.EdgeVariableAtPosition) {
			v := g.Node(e.From)
			if v == nil || v.Variable == nil || v.Variable.Existential {
				continue
			}
			if !bodyFullyAffected(g, v) {
				continue
			}
			for _, he := range g.EdgesFrom(v.ID, program.EdgeVariableAtPosition) {
				if !he.VariableAt.Head {
					continue
				}
				headPos := g.Node(he.To)
				if headPos == nil || headPos.Position == nil || headPos.Position.Affected {
					continue
				}
				headPos.Position.Affected = true
				if !seen[headPos.ID] {
					seen[headPos.ID] = true
					worklist = append(worklist, headPos)
				}
			}
		}
	}
}

// bodyFullyAffected reports whether v has at least one body
// VARIABLE_AT_POSITION edge and every such edge points to an affected
// position.
func bodyFullyAffected(g *program.Graph, v *program.Node) bool {
	any := false
	for _, e := range g.EdgesFrom(v.ID, program.EdgeVariableAtPosition) {
		if e.VariableAt.Head {
			continue
		}
		any = true
		pos := g.Node(e.To)
		if pos == nil || pos.Position == nil || !pos.Position.Affected {
			return false
		}
	}
	return any
}

// markUndeclaredConditionVariables implements step 4.
func markUndeclaredConditionVariables(g *program.Graph) {
	for _, v := range g.NodesOfKind(program.KindVariable) {
		condEdges := g.EdgesFrom(v.ID, program.EdgeVariableAtCondition)
		if len(condEdges) == 0 {
			continue
		}
		isLHSSomewhere := false
		for _, e := range condEdges {
			if e.VariableAtCondition != nil && e.VariableAtCondition.LeftHandSideOfAnEqCondition {
				isLHSSomewhere = true
			}
		}
		if isLHSSomewhere {
			continue
		}
		if occursInNonNegatedBody(g, v) {
			continue
		}
		v.Variable.Undeclared = true
	}
}

func occursInNonNegatedBody(g *program.Graph, v *program.Node) bool {
	for _, e := range g.EdgesFrom(v.ID, program.EdgeVariableAtPosition) {
		if !e.VariableAt.Head && !e.VariableAt.Negated {
			return true
		}
	}
	return false
}

// enrichTokens implements step 5: propagate each atom-token's existential
// variable list up to its owning Atom node, so atom-level consumers (e.g.
// a hover over the atom name) see the full set without re-deriving it.
func enrichTokens(g *program.Graph) {
	for _, tok := range g.NodesOfKind(program.KindToken) {
		if len(tok.Token.ExistentialVariables) == 0 {
			continue
		}
		for _, e := range g.EdgesFrom(tok.ID, program.EdgeTokenOf) {
			atom := g.Node(e.To)
			if atom == nil || atom.Atom == nil {
				continue
			}
			atom.Atom.ExistentialVariables = program.SortedStrings(program.Union(
				program.NewSet(atom.Atom.ExistentialVariables...),
				program.NewSet(tok.Token.ExistentialVariables...),
			))
		}
	}
}
