package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadalog/dlanalyzer/parsetree"
	"github.com/vadalog/dlanalyzer/program"
)

func tok(line, col int, text string) parsetree.Token {
	return parsetree.Token{Line: line, Column: col, Length: len(text), Text: text}
}

// buildFact drives the listener through `name(arg).` as a one-atom fact.
func buildFact(b *Builder, name, arg string, line int) {
	start := tok(line, 0, name)
	b.EnterRule(start)
	b.EnterFact()
	b.EnterAtom(tok(line, 0, name))
	b.ConstantTerm(tok(line, len(name)+1, arg))
	b.ExitAtom()
	b.ExitFact()
	b.ExitRule(tok(line, len(name)+len(arg)+2, "."), true)
}

func TestFactCreatesAtomAndTokenNodes(t *testing.T) {
	b := New()
	buildFact(b, "a", "1", 0)

	res := b.Result()
	require.True(t, res.Graph.HasNode(program.AtomID("a")))
	atom := res.Graph.Node(program.AtomID("a"))
	assert.True(t, atom.Atom.IsEDB)
	assert.False(t, atom.Atom.IsIDB)
}

func TestOutputAnnotationSuppressesArgumentToken(t *testing.T) {
	b := New()
	at := tok(0, 0, "@")
	b.EnterRule(at)
	b.EnterAnnotation("output", at)
	arg := tok(0, 8, `"a"`)
	b.AnnotationArgument(arg)
	b.ExitAnnotation()
	b.ExitRule(tok(0, 11, "."), true)

	res := b.Result()
	assert.True(t, res.Symbols.OutputAtomNames.Has("a"))
	for _, vt := range res.Tokens {
		assert.NotEqual(t, arg.ID(), vt.ID(), "suppressed annotation-argument token must not appear in the visible list")
	}
}

func TestDuplicateOutputIsRecorded(t *testing.T) {
	b := New()
	for i := 0; i < 2; i++ {
		at := tok(i, 0, "@")
		b.EnterRule(at)
		b.EnterAnnotation("output", at)
		b.AnnotationArgument(tok(i, 8, `"a"`))
		b.ExitAnnotation()
		b.ExitRule(tok(i, 11, "."), true)
	}

	res := b.Result()
	assert.Len(t, res.Symbols.DuplicateOutputRules["a"], 1)
}

func TestRuleHeadBodyWiresVariableAtPosition(t *testing.T) {
	b := New()
	start := tok(0, 0, "a")
	b.EnterRule(start)
	b.EnterHead()
	b.EnterAtom(tok(0, 0, "a"))
	b.VarTerm(tok(0, 2, "X"))
	b.ExitAtom()
	b.ExitHead()
	b.EnterBody()
	b.EnterAtom(tok(0, 8, "b"))
	b.VarTerm(tok(0, 10, "X"))
	b.ExitAtom()
	b.ExitBody()
	b.ExitRule(tok(0, 12, "."), true)

	res := b.Result()
	ruleID := program.RuleID(0)
	varID := program.VariableID("X", ruleID)
	edges := res.Graph.EdgesFrom(varID, program.EdgeVariableAtPosition)
	require.Len(t, edges, 2)

	var sawHead, sawBody bool
	for _, e := range edges {
		if e.VariableAt.Head {
			sawHead = true
		} else {
			sawBody = true
		}
	}
	assert.True(t, sawHead)
	assert.True(t, sawBody)
}

func TestModuleAnnotationFlagsInvalidPath(t *testing.T) {
	b := New()
	at := tok(0, 0, "@")
	b.EnterRule(at)
	b.EnterAnnotation("module", at)
	b.AnnotationArgument(tok(0, 8, `"not a valid path!!"`))
	b.ExitAnnotation()
	b.ExitRule(tok(0, 30, "."), true)

	res := b.Result()
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "1037", res.Diagnostics[0].Code)
}

func TestAggregationContributorsLinkInOrder(t *testing.T) {
	b := New()
	start := tok(0, 0, "r")
	b.EnterRule(start)
	b.EnterHead()
	b.EnterAtom(tok(0, 0, "r"))
	b.EnterAggregation(tok(0, 2, "count"))
	b.AggregationContributor(tok(0, 8, "X"))
	b.AggregationContributor(tok(0, 10, "Y"))
	b.ExitAggregation()
	b.ExitAtom()
	b.ExitHead()
	b.ExitRule(tok(0, 12, "."), true)

	res := b.Result()
	aggID := program.AggregationID(program.RuleID(0), 0)
	contributors := res.Graph.EdgesTo(aggID, program.EdgeContributorOfAggregation)
	require.Len(t, contributors, 2)
	assert.Equal(t, 0, contributors[0].Contributor.Index)
	assert.Equal(t, 1, contributors[1].Contributor.Index)
}
