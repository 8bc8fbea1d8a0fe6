package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadalog/dlanalyzer/builder"
	"github.com/vadalog/dlanalyzer/parsetree"
	"github.com/vadalog/dlanalyzer/program"
)

func tok(line, col int, text string) parsetree.Token {
	return parsetree.Token{Line: line, Column: col, Length: len(text), Text: text}
}

func TestGroundTagMarksVariableFreeRule(t *testing.T) {
	g := program.NewGraph()
	ruleID := program.RuleID(0)
	g.AddNode(&program.Node{ID: ruleID, Kind: program.KindRule, Rule: &program.RuleData{}})

	GroundTag(g)
	assert.True(t, g.Node(ruleID).Rule.Ground)
}

func TestGroundTagLeavesVariableBearingRuleUntagged(t *testing.T) {
	g := program.NewGraph()
	ruleID := program.RuleID(0)
	g.AddNode(&program.Node{ID: ruleID, Kind: program.KindRule, Rule: &program.RuleData{}})
	g.AddNode(&program.Node{ID: program.VariableID("X", ruleID), Kind: program.KindVariable, Variable: &program.VariableData{
		Name: "X", Rule: ruleID, AttackedBy: program.NewSet[string](),
	}})

	GroundTag(g)
	assert.False(t, g.Node(ruleID).Rule.Ground)
}

// buildFactWithVariable drives `a(X).`, an (invalid) fact carrying a
// variable term.
func buildFactWithVariable(b *builder.Builder) {
	start := tok(0, 0, "a")
	b.EnterRule(start)
	b.EnterFact()
	b.EnterAtom(tok(0, 0, "a"))
	b.VarTerm(tok(0, 2, "X"))
	b.ExitAtom()
	b.ExitFact()
	b.ExitRule(tok(0, 4, "."), true)
}

func TestNoVariablesInFactFlagsFactVariable(t *testing.T) {
	b := builder.New()
	buildFactWithVariable(b)
	res := b.Result()

	diags := NoVariablesInFact(res.Graph)
	require.Len(t, diags, 1)
	assert.Equal(t, "1012", diags[0].Code)
	assert.Contains(t, diags[0].Message, "a")
}

func TestDuplicateOutputFlagsBothOccurrences(t *testing.T) {
	b := builder.New()
	for i := 0; i < 2; i++ {
		at := tok(i, 0, "@")
		b.EnterRule(at)
		b.EnterAnnotation("output", at)
		b.AnnotationArgument(tok(i, 8, `"a"`))
		b.ExitAnnotation()
		b.ExitRule(tok(i, 11, "."), true)
	}
	res := b.Result()

	diags := DuplicateOutput(res.Graph, res.Symbols)
	assert.Len(t, diags, 2)
}

func TestBindOnUnknownFlagsBindingWithoutInputOrOutput(t *testing.T) {
	b := builder.New()
	at := tok(0, 0, "@")
	b.EnterRule(at)
	b.EnterAnnotation("bind", at)
	b.AnnotationArgument(tok(0, 8, `"a"`))
	b.AnnotationArgument(tok(0, 12, `"src"`))
	b.AnnotationArgument(tok(0, 18, `"outer"`))
	b.AnnotationArgument(tok(0, 26, `"inner"`))
	b.ExitAnnotation()
	b.ExitRule(tok(0, 34, "."), true)
	res := b.Result()

	diags := BindOnUnknown(res.Graph, res.Symbols)
	require.Len(t, diags, 1)
	assert.Equal(t, "1014", diags[0].Code)
	assert.Contains(t, diags[0].Message, "a")
}

func buildEGDFixture(b *builder.Builder) {
	start := tok(0, 0, "X")
	b.EnterRule(start)
	eq := tok(0, 2, "=")
	b.EnterEGD(eq)
	b.EnterEqualitySide(parsetree.SideLHS)
	b.VarTerm(tok(0, 0, "X"))
	b.ExitEqualitySide()
	b.EnterEqualitySide(parsetree.SideRHS)
	b.VarTerm(tok(0, 4, "Y"))
	b.ExitEqualitySide()
	b.ExitEGD()
	b.ExitRule(tok(0, 5, "."), true)
}

func TestEGDHintNamesBothSides(t *testing.T) {
	b := builder.New()
	buildEGDFixture(b)
	res := b.Result()

	diags := EGDHint(res.Graph)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "X")
	assert.Contains(t, diags[0].Message, "Y")
}

func TestAnonymousVariableFlaggedWhenSingleBodyOccurrence(t *testing.T) {
	b := builder.New()
	start := tok(0, 0, "a")
	b.EnterRule(start)
	b.EnterHead()
	b.EnterAtom(tok(0, 0, "a"))
	b.ConstantTerm(tok(0, 2, "1"))
	b.ExitAtom()
	b.ExitHead()
	b.EnterBody()
	b.EnterAtom(tok(0, 8, "b"))
	b.VarTerm(tok(0, 10, "X"))
	b.ExitAtom()
	b.ExitBody()
	b.ExitRule(tok(0, 12, "."), true)
	res := b.Result()

	diags := AnonymousVariables(res.Graph)
	require.Len(t, diags, 1)
	assert.Equal(t, "1011", diags[0].Code)
}

func TestConditionVariableCyclesFlagsTwoWayEquality(t *testing.T) {
	g := program.NewGraph()
	ruleID := program.RuleID(0)
	g.AddNode(&program.Node{ID: ruleID, Kind: program.KindRule, Rule: &program.RuleData{}})

	cond1 := program.ConditionID(ruleID, 0)
	g.AddNode(&program.Node{ID: cond1, Kind: program.KindCondition, Condition: &program.ConditionData{Equality: true}})
	cond2 := program.ConditionID(ruleID, 1)
	g.AddNode(&program.Node{ID: cond2, Kind: program.KindCondition, Condition: &program.ConditionData{Equality: true}})

	addVar := func(name string) string {
		id := program.VariableID(name, ruleID)
		g.AddNode(&program.Node{ID: id, Kind: program.KindVariable, Variable: &program.VariableData{
			Name: name, Rule: ruleID, AttackedBy: program.NewSet[string](),
		}})
		return id
	}
	xID := addVar("X")
	yID := addVar("Y")

	g.AddEdge(&program.Edge{From: xID, To: cond1, Kind: program.EdgeVariableAtCondition, VariableAtCondition: &program.VariableAtConditionAttrs{LeftHandSideOfAnEqCondition: true}})
	g.AddEdge(&program.Edge{From: yID, To: cond1, Kind: program.EdgeVariableAtCondition, VariableAtCondition: &program.VariableAtConditionAttrs{LeftHandSideOfAnEqCondition: false}})
	g.AddEdge(&program.Edge{From: yID, To: cond2, Kind: program.EdgeVariableAtCondition, VariableAtCondition: &program.VariableAtConditionAttrs{LeftHandSideOfAnEqCondition: true}})
	g.AddEdge(&program.Edge{From: xID, To: cond2, Kind: program.EdgeVariableAtCondition, VariableAtCondition: &program.VariableAtConditionAttrs{LeftHandSideOfAnEqCondition: false}})

	g.AddNode(&program.Node{ID: "tok:x", Kind: program.KindToken, Token: &program.TokenData{
		Rule: ruleID, Text: "X", Modifiers: program.NewSet[string](),
	}})
	g.AddEdge(&program.Edge{From: "tok:x", To: cond1, Kind: program.EdgeTokenOf})
	g.AddNode(&program.Node{ID: "tok:y", Kind: program.KindToken, Token: &program.TokenData{
		Rule: ruleID, Text: "Y", Modifiers: program.NewSet[string](),
	}})
	g.AddEdge(&program.Edge{From: "tok:y", To: cond1, Kind: program.EdgeTokenOf})

	diags := ConditionVariableCycles(g)
	assert.NotEmpty(t, diags)
}
