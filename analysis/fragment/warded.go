package fragment

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// Warded runs the full warded-fragment decision procedure: ward-breaking,
// tainted-position seeding and propagation, tainted-join detection,
// tainted-filter detection, and the two literal/constant tainted-position
// checks. It carries the largest violation budget of any fragment
// analyzer.
func Warded(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	out = append(out, wardBreaking(g)...)
	seedTaintedPositions(g)
	propagateTainted(g)
	out = append(out, taintedJoin(g)...)
	out = append(out, taintedFilter(g)...)
	out = append(out, literalsInTaintedPositions(g)...)
	out = append(out, constantsInEGDTaintedPositions(g)...)
	return out
}

// wardBreaking groups each rule's dangerous variables by the body
// atom-token they occupy; if more than one such atom-token exists, every
// dangerous variable occupying any of them is unwarded.
func wardBreaking(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, ruleID := range ruleIDs(g) {
		dangerous := dangerousVariables(g, ruleID)
		if len(dangerous) == 0 {
			continue
		}

		var dangerousVars []*program.Node
		atomTokens := program.NewSet[string]()
		for _, v := range g.NodesOfKind(program.KindVariable) {
			if v.Variable.Rule != ruleID || !dangerous.Has(v.Variable.Name) {
				continue
			}
			dangerousVars = append(dangerousVars, v)
			for id := range bodyAtomTokenIDsOf(g, v) {
				atomTokens.Add(id)
			}
		}
		if len(atomTokens) <= 1 {
			continue
		}
		for _, v := range dangerousVars {
			for _, tok := range occurrenceTokensOf(g, v) {
				if tok.Token.Location != program.LocationBody {
					continue
				}
				out = append(out, diagnostic.New("ERR_VARIABLE_IS_UNWARDED_0",
					map[string]string{"variable": v.Variable.Name}, tokenRange(tok.Token), WardedName))
			}
		}
	}
	return out
}

// seedTaintedPositions marks every body position occupied by a variable
// that also occurs in an EGD as tainted.
func seedTaintedPositions(g *program.Graph) {
	for _, v := range g.NodesOfKind(program.KindVariable) {
		if len(g.EdgesFrom(v.ID, program.EdgeVariableAtEGD)) == 0 {
			continue
		}
		for _, e := range g.EdgesFrom(v.ID, program.EdgeVariableAtPosition) {
			if e.VariableAt.Head {
				continue
			}
			if pos := g.Node(e.To); pos != nil && pos.Position != nil {
				pos.Position.Tainted = true
			}
		}
	}
}

// propagateTainted is the bidirectional fixpoint of §4.4.7 step 4: a
// variable with a tainted head position taints all its body positions, and
// a variable with a tainted body position taints all its head positions.
// EDB positions never accept taintedness.
func propagateTainted(g *program.Graph) {
	for changed := true; changed; {
		changed = false
		for _, v := range g.NodesOfKind(program.KindVariable) {
			edges := g.EdgesFrom(v.ID, program.EdgeVariableAtPosition)
			headTainted, bodyTainted := false, false
			for _, e := range edges {
				pos := g.Node(e.To)
				if pos == nil || pos.Position == nil || !pos.Position.Tainted {
					continue
				}
				if e.VariableAt.Head {
					headTainted = true
				} else {
					bodyTainted = true
				}
			}
			if !headTainted && !bodyTainted {
				continue
			}
			for _, e := range edges {
				pos := g.Node(e.To)
				if pos == nil || pos.Position == nil || pos.Position.Tainted {
					continue
				}
				if isEDBPosition(g, pos) {
					continue
				}
				wantTaint := (e.VariableAt.Head && bodyTainted) || (!e.VariableAt.Head && headTainted)
				if wantTaint {
					pos.Position.Tainted = true
					changed = true
				}
			}
		}
	}
}

func isEDBPosition(g *program.Graph, pos *program.Node) bool {
	atom := g.Node(program.AtomID(pos.Position.Atom))
	return atom != nil && atom.Atom != nil && atom.Atom.IsEDB
}

// taintedVariablesOfRule returns every variable of ruleID occupying at
// least one tainted body position.
func taintedVariablesOfRule(g *program.Graph, ruleID string) []*program.Node {
	var out []*program.Node
	for _, v := range g.NodesOfKind(program.KindVariable) {
		if v.Variable.Rule != ruleID {
			continue
		}
		for _, e := range g.EdgesFrom(v.ID, program.EdgeVariableAtPosition) {
			if e.VariableAt.Head {
				continue
			}
			if pos := g.Node(e.To); pos != nil && pos.Position != nil && pos.Position.Tainted {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// taintedJoin flags, in every non-EGD rule, every body atom-token a
// tainted variable reaches when it reaches more than one.
func taintedJoin(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, ruleID := range ruleIDs(g) {
		if ruleHasEGD(g, ruleID) {
			continue
		}
		for _, v := range taintedVariablesOfRule(g, ruleID) {
			tokenIDs := bodyAtomTokenIDsOf(g, v)
			if len(tokenIDs) <= 1 {
				continue
			}
			for id := range tokenIDs {
				tok := g.Node(id)
				if tok == nil || tok.Token == nil {
					continue
				}
				tok.Token.UsedInTaintedJoin = true
				out = append(out, diagnostic.New("ERR_VARIABLE_IS_EGD_HARMFUL_0",
					map[string]string{"variable": v.Variable.Name}, tokenRange(tok.Token), WardedName))
			}
		}
	}
	return out
}

// taintedFilter flags every occurrence of a tainted variable used in a
// condition.
func taintedFilter(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, ruleID := range ruleIDs(g) {
		for _, v := range taintedVariablesOfRule(g, ruleID) {
			if len(g.EdgesFrom(v.ID, program.EdgeVariableAtCondition)) == 0 {
				continue
			}
			for _, t := range occurrenceTokensOf(g, v) {
				t.Token.UsedInTaintedFilter = true
				out = append(out, diagnostic.New("ERR_VARIABLE_IN_TAINTED_POSITION_IS_USED_IN_FILTER_0",
					map[string]string{"variable": v.Variable.Name}, tokenRange(t.Token), WardedName))
			}
		}
	}
	return out
}

// literalsInTaintedPositions flags every literal occupying a tainted
// position.
func literalsInTaintedPositions(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, e := range g.FilterEdges(func(e *program.Edge) bool { return e.Kind == program.EdgeTokenAtPosition }) {
		pos := g.Node(e.To)
		if pos == nil || pos.Position == nil || !pos.Position.Tainted {
			continue
		}
		tok := g.Node(e.From)
		if tok == nil || tok.Token == nil || !tok.Token.IsLiteral {
			continue
		}
		tok.Token.IsLiteralUsedInTaintedPositions = true
		out = append(out, diagnostic.New("ERR_LITERAL_IN_TAINTED_POSITION",
			map[string]string{"literal": tok.Token.Text}, tokenRange(tok.Token), WardedName))
	}
	return out
}

// constantsInEGDTaintedPositions flags every literal occupying a tainted
// position of a rule that itself defines an EGD.
func constantsInEGDTaintedPositions(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, e := range g.FilterEdges(func(e *program.Edge) bool { return e.Kind == program.EdgeTokenAtPosition }) {
		pos := g.Node(e.To)
		if pos == nil || pos.Position == nil || !pos.Position.Tainted {
			continue
		}
		tok := g.Node(e.From)
		if tok == nil || tok.Token == nil || !tok.Token.IsLiteral {
			continue
		}
		if !ruleHasEGD(g, tok.Token.Rule) {
			continue
		}
		out = append(out, diagnostic.New("ERR_CONSTANT_USED_IN_TAINTED_POSITION",
			map[string]string{"literal": tok.Token.Text}, tokenRange(tok.Token), WardedName))
	}
	return out
}
