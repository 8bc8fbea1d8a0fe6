package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadalog/dlanalyzer/program"
)

// graph for `p(X,Y):-q(X).` where Y is existential (head-only).
func existentialFixture() (*program.Graph, string) {
	g := program.NewGraph()
	ruleID := program.RuleID(0)
	g.AddNode(&program.Node{ID: ruleID, Kind: program.KindRule, Rule: &program.RuleData{}})

	varY := program.VariableID("Y", ruleID)
	g.AddNode(&program.Node{ID: varY, Kind: program.KindVariable, Variable: &program.VariableData{Name: "Y", Rule: ruleID}})
	posP1 := program.PositionID("p", 1)
	g.AddNode(&program.Node{ID: posP1, Kind: program.KindPosition, Position: &program.PositionData{Atom: "p", Index: 1}})
	tokY := program.TokenID(0, 2, 1)
	g.AddNode(&program.Node{ID: tokY, Kind: program.KindToken, Token: &program.TokenData{Modifiers: program.NewSet[string]()}})
	g.AddEdge(&program.Edge{From: varY, To: posP1, Kind: program.EdgeVariableAtPosition, VariableAt: &program.VariableAtAttrs{Head: true}})
	g.AddEdge(&program.Edge{From: varY, To: tokY, Kind: program.EdgeVariableAtAtomToken, VariableAt: &program.VariableAtAttrs{Head: true}})

	varX := program.VariableID("X", ruleID)
	g.AddNode(&program.Node{ID: varX, Kind: program.KindVariable, Variable: &program.VariableData{Name: "X", Rule: ruleID}})
	posP0 := program.PositionID("p", 0)
	g.AddNode(&program.Node{ID: posP0, Kind: program.KindPosition, Position: &program.PositionData{Atom: "p", Index: 0}})
	posQ0 := program.PositionID("q", 0)
	g.AddNode(&program.Node{ID: posQ0, Kind: program.KindPosition, Position: &program.PositionData{Atom: "q", Index: 0}})
	g.AddEdge(&program.Edge{From: varX, To: posP0, Kind: program.EdgeVariableAtPosition, VariableAt: &program.VariableAtAttrs{Head: true}})
	g.AddEdge(&program.Edge{From: varX, To: posQ0, Kind: program.EdgeVariableAtPosition, VariableAt: &program.VariableAtAttrs{}})

	return g, ruleID
}

func TestMarkExistentialVariables(t *testing.T) {
	g, ruleID := existentialFixture()
	markExistentialVariables(g)

	assert.True(t, g.Node(program.VariableID("Y", ruleID)).Variable.Existential)
	assert.False(t, g.Node(program.VariableID("X", ruleID)).Variable.Existential)
}

func TestPropagateAffectedReachesHeadThroughFullyAffectedBody(t *testing.T) {
	g, ruleID := existentialFixture()
	markExistentialVariables(g)
	seedAffectedPositions(g)
	propagateAffected(g)

	require.True(t, g.Node(program.PositionID("p", 1)).Position.Affected)
	// X's single body position q[0] is NOT affected, so p[0] must stay clean.
	assert.False(t, g.Node(program.PositionID("p", 0)).Position.Affected)
	_ = ruleID
}

func TestUndeclaredConditionVariable(t *testing.T) {
	g := program.NewGraph()
	ruleID := program.RuleID(0)
	cond := program.ConditionID(ruleID, 0)
	g.AddNode(&program.Node{ID: cond, Kind: program.KindCondition, Condition: &program.ConditionData{Equality: true}})

	v := program.VariableID("Z", ruleID)
	g.AddNode(&program.Node{ID: v, Kind: program.KindVariable, Variable: &program.VariableData{Name: "Z", Rule: ruleID}})
	g.AddEdge(&program.Edge{From: v, To: cond, Kind: program.EdgeVariableAtCondition, VariableAtCondition: &program.VariableAtConditionAttrs{}})

	markUndeclaredConditionVariables(g)
	assert.True(t, g.Node(v).Variable.Undeclared)
}
