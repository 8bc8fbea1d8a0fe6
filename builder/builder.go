package builder

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/parsetree"
	"github.com/vadalog/dlanalyzer/program"
)

// Builder implements parsetree.Listener, accumulating a program.Graph, its
// SymbolTables, and a diagnostic list as the walker drives it through one
// document. It is single-use: construct a fresh Builder per document with
// New and discard it once Result has been read, mirroring the one-graph-
// per-document lifecycle of the analyzer as a whole.
type Builder struct {
	graph       *program.Graph
	symbols     SymbolTables
	diagnostics []diagnostic.Diagnostic
	tokens      []*parsetree.Token
	suppressed  map[string]bool

	// atomDependency maps a head atom name to the set of body atom names
	// appearing in the same rule, used only for temporal-attribute
	// propagation (never read by the core graph traversals).
	atomDependency map[string]program.Set[string]

	// state machine
	visitingAnnotation      bool
	annotationName          string
	annotationStart         parsetree.Token
	annotationArgs          []parsetree.Token

	visitingHead            bool
	visitingBody            bool
	visitingFact            bool
	visitingNegationLiteral bool
	equalitySide            parsetree.EqualitySide

	ruleIndex                int
	ruleID                   string
	ruleStart                parsetree.Token
	bodyConjunctiveQueryTerm int
	termPositionBeingVisited int
	inCollection             bool
	currentAggregationIndex  int

	atomTokenBeingVisited string // current atom-token node ID
	atomNameBeingVisited  string
	atomInHeadBeingVisited string // head atom name of the rule currently being built
	lastExitedAtom        string

	egdBeingVisited       string // current EGD node id, "" if none
	conditionBeingVisited string // current Condition node id, "" if none
	aggregationBeingVisited string
	egdIndex              int
	conditionIndex        int

	activeBlockComment string
	atomVadoc          map[string]string
}

var _ parsetree.Listener = (*Builder)(nil)

// New returns a Builder ready to receive one document's Enter*/Exit* walk.
func New() *Builder {
	return &Builder{
		graph:          program.NewGraph(),
		symbols:        newSymbolTables(),
		suppressed:     make(map[string]bool),
		atomDependency: make(map[string]program.Set[string]),
		atomVadoc:      make(map[string]string),
	}
}

// Result is everything a single build run produced, ready for the base
// analyzer (package analysis) to consume.
type Result struct {
	Graph       *program.Graph
	Symbols     SymbolTables
	Diagnostics []diagnostic.Diagnostic
	Tokens      []*parsetree.Token
	AtomVadoc   map[string]string
	AtomDependency map[string]program.Set[string]
}

// Result returns the accumulated graph, symbol tables, diagnostics, and the
// flat token list with suppressed annotation-argument tokens removed.
func (b *Builder) Result() Result {
	visible := make([]*parsetree.Token, 0, len(b.tokens))
	for _, t := range b.tokens {
		if !b.suppressed[t.ID()] {
			visible = append(visible, t)
		}
	}
	return Result{
		Graph:          b.graph,
		Symbols:        b.symbols,
		Diagnostics:    b.diagnostics,
		Tokens:         visible,
		AtomVadoc:      b.atomVadoc,
		AtomDependency: b.atomDependency,
	}
}

func (b *Builder) emit(name string, data map[string]string, tok parsetree.Token, fragment string) {
	b.diagnostics = append(b.diagnostics, diagnostic.New(name, data, diagnostic.Range{
		StartLine: tok.Line,
		StartCol:  tok.Column,
		EndLine:   tok.Line,
		EndCol:    tok.EndColumn(),
	}, fragment))
}

func (b *Builder) trackToken(t parsetree.Token) {
	cp := t
	b.tokens = append(b.tokens, &cp)
}

func (b *Builder) suppress(t parsetree.Token) {
	b.suppressed[t.ID()] = true
	if n := b.graph.Node(program.TokenID(t.Line, t.Column, t.Length)); n != nil && n.Token != nil {
		n.Token.Suppressed = true
	}
}

// EnterProgram / ExitProgram bracket the whole document; nothing to do
// beyond resetting per-document state, which New already establishes.
func (b *Builder) EnterProgram() {}
func (b *Builder) ExitProgram()  {}

// EnterRule opens one rule/annotation/fact: assign it a fresh rule index,
// create its Rule node, and reset the per-rule counters.
func (b *Builder) EnterRule(start parsetree.Token) {
	b.ruleStart = start
	b.ruleID = program.RuleID(b.ruleIndex)
	b.graph.AddNode(&program.Node{ID: b.ruleID, Kind: program.KindRule, Rule: &program.RuleData{
		Range: program.Range{StartLine: start.Line, StartCol: start.Column},
	}})
	b.bodyConjunctiveQueryTerm = 0
	b.currentAggregationIndex = 0
	b.atomInHeadBeingVisited = ""
	b.egdIndex = 0
	b.conditionIndex = 0
}

// ExitRule closes the current rule, recording its terminating '.' token
// when the parse was well-formed, and advances to the next rule index.
func (b *Builder) ExitRule(dot parsetree.Token, hasDot bool) {
	b.graph.UpdateNode(b.ruleID, program.KindRule, func(n *program.Node) {
		n.Rule.HasDot = hasDot
		if hasDot {
			n.Rule.DotToken = program.Range{StartLine: dot.Line, StartCol: dot.Column, EndLine: dot.Line, EndCol: dot.EndColumn()}
			n.Rule.Range.EndLine = dot.Line
			n.Rule.Range.EndCol = dot.EndColumn()
		}
	})
	b.ruleIndex++
}
