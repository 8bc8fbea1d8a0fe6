package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadalog/dlanalyzer/program"
)

func newToken(g *program.Graph, id string, line, col, length int, text string, loc program.TokenLocation, rule string) *program.Node {
	n := &program.Node{ID: id, Kind: program.KindToken, Token: &program.TokenData{
		Line: line, Column: col, Length: length, Text: text,
		Location: loc, Rule: rule, Modifiers: program.NewSet[string](),
	}}
	g.AddNode(n)
	return n
}

func TestLinearFlagsMultiAtomBody(t *testing.T) {
	g := program.NewGraph()
	ruleID := program.RuleID(0)
	g.AddNode(&program.Node{ID: ruleID, Kind: program.KindRule, Rule: &program.RuleData{}})
	g.AddNode(&program.Node{ID: program.AtomID("s"), Kind: program.KindAtom, Atom: &program.AtomData{Name: "s"}})
	g.AddNode(&program.Node{ID: program.AtomID("g"), Kind: program.KindAtom, Atom: &program.AtomData{Name: "g"}})

	sTok := newToken(g, "tok:s", 0, 8, 1, "s", program.LocationBody, ruleID)
	g.AddEdge(&program.Edge{From: sTok.ID, To: program.AtomID("s"), Kind: program.EdgeTokenOf})
	gTok := newToken(g, "tok:g", 0, 11, 1, "g", program.LocationBody, ruleID)
	g.AddEdge(&program.Edge{From: gTok.ID, To: program.AtomID("g"), Kind: program.EdgeTokenOf})

	diags := Linear(g)
	require.Len(t, diags, 1)
	assert.Equal(t, LinearName, diags[0].FragmentViolation)
	assert.True(t, g.Node(ruleID).Rule.NonLinear)
}

func TestLinearSingleBodyAtomNotFlagged(t *testing.T) {
	g := program.NewGraph()
	ruleID := program.RuleID(0)
	g.AddNode(&program.Node{ID: ruleID, Kind: program.KindRule, Rule: &program.RuleData{}})
	g.AddNode(&program.Node{ID: program.AtomID("s"), Kind: program.KindAtom, Atom: &program.AtomData{Name: "s"}})

	sTok := newToken(g, "tok:s", 0, 8, 1, "s", program.LocationBody, ruleID)
	g.AddEdge(&program.Edge{From: sTok.ID, To: program.AtomID("s"), Kind: program.EdgeTokenOf})

	diags := Linear(g)
	assert.Empty(t, diags)
}

// buildGuardedFixture builds `t(X,Y):-s(X,Y),g(X).` where s guards the
// rule's body variables {X,Y} but g alone does not.
func buildGuardedFixture() (*program.Graph, string) {
	g := program.NewGraph()
	ruleID := program.RuleID(0)
	g.AddNode(&program.Node{ID: ruleID, Kind: program.KindRule, Rule: &program.RuleData{}})
	g.AddNode(&program.Node{ID: program.AtomID("s"), Kind: program.KindAtom, Atom: &program.AtomData{Name: "s"}})
	g.AddNode(&program.Node{ID: program.AtomID("g"), Kind: program.KindAtom, Atom: &program.AtomData{Name: "g"}})

	sTok := newToken(g, "tok:s", 0, 8, 1, "s", program.LocationBody, ruleID)
	g.AddEdge(&program.Edge{From: sTok.ID, To: program.AtomID("s"), Kind: program.EdgeTokenOf})
	gTok := newToken(g, "tok:g", 0, 20, 1, "g", program.LocationBody, ruleID)
	g.AddEdge(&program.Edge{From: gTok.ID, To: program.AtomID("g"), Kind: program.EdgeTokenOf})

	addVarAtAtomToken := func(name, atomTokenID string, posIdx int, head bool) {
		varID := program.VariableID(name, ruleID)
		g.UpdateNode(varID, program.KindVariable, func(n *program.Node) {
			n.Variable.Name = name
			n.Variable.Rule = ruleID
		})
		posID := program.PositionID("_", posIdx)
		attrs := &program.VariableAtAttrs{Head: head}
		g.AddEdge(&program.Edge{From: varID, To: posID, Kind: program.EdgeVariableAtPosition, VariableAt: attrs})
		g.AddEdge(&program.Edge{From: varID, To: atomTokenID, Kind: program.EdgeVariableAtAtomToken, VariableAt: attrs})
	}

	addVarAtAtomToken("X", sTok.ID, 0, false)
	addVarAtAtomToken("Y", sTok.ID, 1, false)
	addVarAtAtomToken("X", gTok.ID, 2, false)

	return g, ruleID
}

func TestGuardedFlagsAtomCoveringAllBodyVariables(t *testing.T) {
	g, ruleID := buildGuardedFixture()
	diags := Guarded(g)
	assert.Empty(t, diags)
	assert.True(t, g.Node(ruleID).Rule.Guarded)

	sTok := g.Node("tok:s")
	assert.True(t, sTok.Token.Guard)
	gTok := g.Node("tok:g")
	assert.False(t, gTok.Token.Guard)
}

func TestGuardedEmptyBodyVacuouslyUnguarded(t *testing.T) {
	g := program.NewGraph()
	ruleID := program.RuleID(0)
	g.AddNode(&program.Node{ID: ruleID, Kind: program.KindRule, Rule: &program.RuleData{}})
	g.AddNode(&program.Node{ID: program.AtomID("s"), Kind: program.KindAtom, Atom: &program.AtomData{Name: "s"}})
	sTok := newToken(g, "tok:s", 0, 8, 1, "s", program.LocationBody, ruleID)
	g.AddEdge(&program.Edge{From: sTok.ID, To: program.AtomID("s"), Kind: program.EdgeTokenOf})

	diags := Guarded(g)
	require.Len(t, diags, 1)
	assert.False(t, g.Node(ruleID).Rule.Guarded)
}

func TestPlainDatalogFlagsExistentialOccurrences(t *testing.T) {
	g := program.NewGraph()
	ruleID := program.RuleID(0)
	g.AddNode(&program.Node{ID: ruleID, Kind: program.KindRule, Rule: &program.RuleData{}})

	varID := program.VariableID("Y", ruleID)
	g.AddNode(&program.Node{ID: varID, Kind: program.KindVariable, Variable: &program.VariableData{
		Name: "Y", Rule: ruleID, Existential: true, AttackedBy: program.NewSet[string](),
	}})
	tok := newToken(g, program.TokenID(0, 2, 1), 0, 2, 1, "Y", program.LocationHead, ruleID)

	diags := PlainDatalog(g)
	require.Len(t, diags, 1)
	assert.Equal(t, PlainDatalogName, diags[0].FragmentViolation)
	_ = tok
}
