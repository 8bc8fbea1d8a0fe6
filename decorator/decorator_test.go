package decorator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadalog/dlanalyzer/analysis"
	"github.com/vadalog/dlanalyzer/builder"
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/parsetree"
)

func tok(line, col int, text string) parsetree.Token {
	return parsetree.Token{Line: line, Column: col, Length: len(text), Text: text}
}

// buildExistentialRule drives `a(X,Y):-b(X).`, where Y occurs only in the
// head, making it existential and its head position affected.
func buildExistentialRule(b *builder.Builder) {
	start := tok(0, 0, "a")
	b.EnterRule(start)
	b.EnterHead()
	b.EnterAtom(tok(0, 0, "a"))
	b.VarTerm(tok(0, 2, "X"))
	b.VarTerm(tok(0, 4, "Y"))
	b.ExitAtom()
	b.ExitHead()
	b.EnterBody()
	b.EnterAtom(tok(0, 9, "b"))
	b.VarTerm(tok(0, 11, "X"))
	b.ExitAtom()
	b.ExitBody()
	b.ExitRule(tok(0, 13, "."), true)
}

func TestDecorateAppendsExistentialModifierOnAffectedPosition(t *testing.T) {
	b := builder.New()
	buildExistentialRule(b)
	res := b.Result()
	analysis.Run(res.Graph)

	out := Decorate(res.Graph, res.Tokens)

	var yToken *parsetree.Token
	for _, t := range out {
		if t.Text == "Y" {
			yToken = t
		}
	}
	require.NotNil(t, yToken)
	assert.Contains(t, yToken.Modifiers, "EXISTENTIAL")
}

func TestDecorateSortsTokensByLineThenColumn(t *testing.T) {
	b := builder.New()
	buildExistentialRule(b)
	res := b.Result()
	analysis.Run(res.Graph)

	out := Decorate(res.Graph, res.Tokens)
	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1], out[i]
		if prev.Line == cur.Line {
			assert.LessOrEqual(t, prev.Column, cur.Column)
		} else {
			assert.Less(t, prev.Line, cur.Line)
		}
	}
}

func TestFilterDiagnosticsKeepsBaseAndMatchingFragmentOnly(t *testing.T) {
	base := diagnostic.New("ERR_UNUSED_ATOM", map[string]string{"atom": "a"}, diagnostic.Range{}, "")
	wardedViolation := diagnostic.New("ERR_VARIABLE_IS_UNWARDED_0", map[string]string{"variable": "X"}, diagnostic.Range{}, "Warded")
	shyViolation := diagnostic.New("ERR_ATOM_NOT_VIOLATING_SHY_S1_CONDITION", map[string]string{"variable": "X"}, diagnostic.Range{}, "Shy")

	filtered := FilterDiagnostics([]diagnostic.Diagnostic{base, wardedViolation, shyViolation}, "Warded")
	require.Len(t, filtered, 2)
	assert.Contains(t, filtered, base)
	assert.Contains(t, filtered, wardedViolation)
}

func TestFilterDiagnosticsShowAllKeepsEverything(t *testing.T) {
	base := diagnostic.New("ERR_UNUSED_ATOM", map[string]string{"atom": "a"}, diagnostic.Range{}, "")
	shyViolation := diagnostic.New("ERR_ATOM_NOT_VIOLATING_SHY_S1_CONDITION", map[string]string{"variable": "X"}, diagnostic.Range{}, "Shy")

	filtered := FilterDiagnostics([]diagnostic.Diagnostic{base, shyViolation}, ShowAllViolations)
	assert.Len(t, filtered, 2)
}
