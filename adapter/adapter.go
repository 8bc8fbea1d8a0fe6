package adapter

import (
	"fmt"

	"github.com/vadalog/dlanalyzer/analysis"
	"github.com/vadalog/dlanalyzer/analysis/fragment"
	"github.com/vadalog/dlanalyzer/builder"
	"github.com/vadalog/dlanalyzer/decorator"
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/parsetree"
	"github.com/vadalog/dlanalyzer/program"
	"github.com/vadalog/dlanalyzer/semantic"
)

// Analyzer is the module's entry point: one Analyzer is constructed per
// embedding (editor extension, notebook kernel, CLI) and reused across
// every document it analyzes, the way analyzer.Analyzer is constructed
// once per language/repository pairing.
type Analyzer struct {
	cfg Config
}

// Option configures an Analyzer at construction time, mirroring
// analyzer.Option's functional-options shape.
type Option func(*Analyzer)

// WithParse sets the external parser. Required: NewAnalyzer panics on
// Analyze if it was never supplied.
func WithParse(p Parse) Option {
	return func(a *Analyzer) { a.cfg.Parse = p }
}

// WithDocBaseURL overrides diagnostic.DocBaseURL, so an embedding LSP can
// point diagnostic doc links at its own hosted docs.
func WithDocBaseURL(url string) Option {
	return func(a *Analyzer) { a.cfg.DocBaseURL = url }
}

// WithDefaultFragment overrides the fragment ParseFragment resolves an
// empty targetFragment to, in place of Warded.
func WithDefaultFragment(name string) Option {
	return func(a *Analyzer) { a.cfg.DefaultFragment = name }
}

// NewAnalyzer returns an Analyzer configured by options, applied over
// DefaultConfig in order.
func NewAnalyzer(options ...Option) *Analyzer {
	a := &Analyzer{cfg: DefaultConfig()}
	for _, opt := range options {
		opt(a)
	}
	if a.cfg.DocBaseURL != "" {
		diagnostic.DocBaseURL = a.cfg.DocBaseURL
	}
	return a
}

// Document is one analyzed source file: the decorated token list, the
// filtered diagnostic list, and the underlying graph/symbol state the
// query helpers (query.go) read.
type Document struct {
	Graph       *program.Graph
	Symbols     builder.SymbolTables
	AtomVadoc   map[string]string
	Tokens      []*parsetree.Token
	Diagnostics []diagnostic.Diagnostic
}

// Analyze runs the full fixed pipeline over source: builder walk, base
// fixpoints, semantic checks, fragment-membership checks, then the token
// decorator and diagnostic filter. targetFragment is one of the display
// strings ParseFragment accepts; an empty string means Warded.
func (a *Analyzer) Analyze(source []byte, targetFragment string) (*Document, error) {
	if a.cfg.Parse == nil {
		panic("adapter: Analyzer has no Parse configured")
	}

	b := builder.New()
	if err := a.cfg.Parse(source, b); err != nil {
		return nil, fmt.Errorf("adapter: parse: %w", err)
	}
	res := b.Result()

	analysis.Run(res.Graph)

	var diags []diagnostic.Diagnostic
	diags = append(diags, res.Diagnostics...)

	// Semantic analyzers, fixed order per §5.
	diags = append(diags, semantic.GroundTag(res.Graph)...)
	diags = append(diags, semantic.NoFactOutput(res.Graph)...)
	diags = append(diags, semantic.BindOnUnknown(res.Graph, res.Symbols)...)
	diags = append(diags, semantic.NoVariablesInFact(res.Graph)...)
	diags = append(diags, semantic.AnonymousVariables(res.Graph)...)
	diags = append(diags, semantic.Negation(res.Graph)...)
	diags = append(diags, semantic.KeywordInAtomName(res.Graph)...)
	diags = append(diags, semantic.ConditionVariableCycles(res.Graph)...)

	// Supplemented atom-declaration/binding/output and mapping-arity
	// checks, run alongside the named semantic order since §5 does not
	// position them relative to it.
	diags = append(diags, semantic.UndeclaredAtom(res.Graph)...)
	diags = append(diags, semantic.InputAtomInHead(res.Graph, res.Symbols)...)
	diags = append(diags, semantic.DuplicateOutput(res.Graph, res.Symbols)...)
	diags = append(diags, semantic.NonExistingOutput(res.Graph, res.Symbols)...)
	diags = append(diags, semantic.UnboundBindings(res.Graph, res.Symbols)...)
	diags = append(diags, semantic.UnusedAtom(res.Graph, res.Symbols)...)
	diags = append(diags, semantic.AtomSignatureTerms(res.Graph, res.Symbols)...)
	diags = append(diags, semantic.EGDHint(res.Graph)...)
	diags = append(diags, semantic.TemporalPropagation(res.Graph, res.Symbols, res.AtomDependency)...)

	// Fragment analyzers, fixed order per §5: Warded must precede
	// Weakly-Guarded/Weakly-Frontier-Guarded because those read the
	// dangerous-variable flags Warded sets.
	diags = append(diags, fragment.PlainDatalog(res.Graph)...)
	diags = append(diags, fragment.Linear(res.Graph)...)
	diags = append(diags, fragment.AfratiLinear(res.Graph)...)
	diags = append(diags, fragment.Warded(res.Graph)...)
	diags = append(diags, fragment.Guarded(res.Graph)...)
	diags = append(diags, fragment.WeaklyGuarded(res.Graph)...)
	diags = append(diags, fragment.FrontierGuarded(res.Graph)...)
	diags = append(diags, fragment.WeaklyFrontierGuarded(res.Graph)...)
	diags = append(diags, fragment.Shy(res.Graph)...)

	tokens := decorator.Decorate(res.Graph, res.Tokens)

	fragmentName := a.resolveFragment(targetFragment)
	diags = decorator.FilterDiagnostics(diags, fragmentName)

	return &Document{
		Graph:       res.Graph,
		Symbols:     res.Symbols,
		AtomVadoc:   res.AtomVadoc,
		Tokens:      tokens,
		Diagnostics: diags,
	}, nil
}

func (a *Analyzer) resolveFragment(targetFragment string) string {
	if targetFragment == "" && a.cfg.DefaultFragment != "" {
		return ParseFragment(a.cfg.DefaultFragment)
	}
	return ParseFragment(targetFragment)
}

// analyzableLanguageID is the notebook cell language identifier this
// module claims.
const analyzableLanguageID = "datalog+"

// IsAnalyzableCell reports whether a notebook cell with the given
// language identifier is one Analyze should be run against.
func IsAnalyzableCell(languageID string) bool {
	return languageID == analyzableLanguageID
}
