package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadalog/dlanalyzer/parsetree"
)

func tok(line, col int, text string) parsetree.Token {
	return parsetree.Token{Line: line, Column: col, Length: len(text), Text: text}
}

// fakeExistentialRuleParser drives `a(X,Y):-b(X).` directly against the
// supplied Listener, standing in for a real grammar-driven parser.
func fakeExistentialRuleParser(_ []byte, l parsetree.Listener) error {
	l.EnterProgram()
	l.EnterRule(tok(0, 0, "a"))
	l.EnterHead()
	l.EnterAtom(tok(0, 0, "a"))
	l.VarTerm(tok(0, 2, "X"))
	l.VarTerm(tok(0, 4, "Y"))
	l.ExitAtom()
	l.ExitHead()
	l.EnterBody()
	l.EnterAtom(tok(0, 9, "b"))
	l.VarTerm(tok(0, 11, "X"))
	l.ExitAtom()
	l.ExitBody()
	l.ExitRule(tok(0, 13, "."), true)
	l.ExitProgram()
	return nil
}

func TestAnalyzeDecoratesExistentialTokenEndToEnd(t *testing.T) {
	a := NewAnalyzer(WithParse(fakeExistentialRuleParser))
	doc, err := a.Analyze([]byte("a(X,Y):-b(X)."), "")
	require.NoError(t, err)

	var yToken *parsetree.Token
	for _, tk := range doc.Tokens {
		if tk.Text == "Y" {
			yToken = tk
		}
	}
	require.NotNil(t, yToken)
	assert.Contains(t, yToken.Modifiers, "EXISTENTIAL")
}

func TestAnalyzeDefaultFragmentIsWarded(t *testing.T) {
	a := NewAnalyzer(WithParse(fakeExistentialRuleParser))
	doc, err := a.Analyze([]byte("a(X,Y):-b(X)."), "")
	require.NoError(t, err)

	for _, d := range doc.Diagnostics {
		assert.True(t, d.FragmentViolation == "" || d.FragmentViolation == DefaultFragment)
	}
}

func TestAnalyzeDatalogExistentialFragmentStripsFragmentDiagnostics(t *testing.T) {
	a := NewAnalyzer(WithParse(fakeExistentialRuleParser))
	doc, err := a.Analyze([]byte("a(X,Y):-b(X)."), DatalogExistentialName)
	require.NoError(t, err)

	for _, d := range doc.Diagnostics {
		assert.Empty(t, d.FragmentViolation)
	}
}

func TestAnalyzePanicsWithoutParse(t *testing.T) {
	a := NewAnalyzer()
	assert.Panics(t, func() {
		_, _ = a.Analyze([]byte("a(X)."), "")
	})
}

func TestGetAtomReferencesReturnsEveryOccurrenceSorted(t *testing.T) {
	a := NewAnalyzer(WithParse(fakeExistentialRuleParser))
	doc, err := a.Analyze([]byte("a(X,Y):-b(X)."), "")
	require.NoError(t, err)

	refs := doc.GetAtomReferences("a")
	require.Len(t, refs, 3)
	assert.Equal(t, "a", refs[0].Token.Text)
	assert.Equal(t, "X", refs[1].Token.Text)
	assert.Equal(t, "Y", refs[2].Token.Text)
}

func TestGetRuleAtCursorFindsEnclosingRule(t *testing.T) {
	a := NewAnalyzer(WithParse(fakeExistentialRuleParser))
	doc, err := a.Analyze([]byte("a(X,Y):-b(X)."), "")
	require.NoError(t, err)

	rule := doc.GetRuleAtCursor(0, 5)
	require.NotNil(t, rule)

	assert.Nil(t, doc.GetRuleAtCursor(5, 0))
}

func TestParseFragmentDefaultsToWarded(t *testing.T) {
	assert.Equal(t, DefaultFragment, ParseFragment(""))
}

func TestParseFragmentPanicsOnUnknownName(t *testing.T) {
	assert.Panics(t, func() { ParseFragment("not a real fragment") })
}

func TestIsAnalyzableCellMatchesLanguageID(t *testing.T) {
	assert.True(t, IsAnalyzableCell("datalog+"))
	assert.False(t, IsAnalyzableCell("python"))
}
