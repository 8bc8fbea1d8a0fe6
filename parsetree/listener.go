package parsetree

// EqualitySide classifies which side of an equality condition a variable
// occurrence is on, matching the builder's visitingEqualityCondition state.
type EqualitySide int

const (
	SideNone EqualitySide = iota
	SideLHS
	SideRHS
)

// Listener receives a depth-first walk of one parsed document: enter/exit
// pairs bracket every construct, and a leaf callback reports each term as
// it is reached. An external walker (the production parser, or a test
// that calls the methods by hand) calls these methods in source order;
// the builder (package builder) is the only production implementation.
//
// The method set mirrors the builder's internal state machine almost one
// for one: every Enter/Exit pair corresponds to a state the builder pushes
// and pops.
type Listener interface {
	EnterProgram()
	ExitProgram()

	// EnterRule/ExitRule bracket one rule, fact, or annotation. start is the
	// construct's first token; dot is its closing '.' token, valid iff
	// hasDot (a syntactically incomplete rule may be missing it).
	EnterRule(start Token)
	ExitRule(dot Token, hasDot bool)

	// EnterAnnotation/ExitAnnotation bracket an `@name(...)` annotation.
	// name is the annotation identifier, lowercased, without the '@'.
	EnterAnnotation(name string, at Token)
	ExitAnnotation()
	// AnnotationArgument reports one positional argument token of the
	// enclosing annotation, in order. Quoting (if any) is still present in
	// raw.Text; the builder is responsible for unquoting.
	AnnotationArgument(raw Token)

	EnterHead()
	ExitHead()
	EnterBody()
	ExitBody()
	EnterFact()
	ExitFact()

	EnterNegationLiteral()
	ExitNegationLiteral()

	// EnterAtom/ExitAtom bracket one atom occurrence (in a head, body, or
	// fact). name is the atom-name token.
	EnterAtom(name Token)
	ExitAtom()

	// VarTerm reports a variable term at the current position within the
	// atom, condition, EGD, or aggregation being visited.
	VarTerm(name Token)
	// ConstantTerm reports a constant term at the current position.
	ConstantTerm(value Token)

	// EnterCollection/ExitCollection bracket a list/set literal passed as a
	// single term; elements within are reported via ConstantTerm/VarTerm but
	// must not advance the enclosing atom's term-position counter.
	EnterCollection()
	ExitCollection()

	EnterCondition()
	// ConditionEquality marks the condition just entered as an equality
	// condition (`=`), as opposed to another comparison operator.
	ConditionEquality()
	ExitCondition()

	// EnterEqualitySide/ExitEqualitySide bracket one side of an equality
	// condition or an EGD head, matching the LHS/RHS visiting state.
	EnterEqualitySide(side EqualitySide)
	ExitEqualitySide()

	// EnterEGD opens one equality-generating-dependency head. eq is the `=`
	// token itself, so the EGD hint diagnostic (C5) can point at it.
	EnterEGD(eq Token)
	ExitEGD()

	// EnterAggregation/ExitAggregation bracket one aggregation expression.
	// kind is the aggregation keyword token (e.g. "count", "sum").
	EnterAggregation(kind Token)
	ExitAggregation()
	// AggregationContributor reports one contributor variable of the
	// aggregation currently being visited, in order.
	AggregationContributor(name Token)

	// Comment reports one source comment, in source order, so the builder
	// can track the active Vadoc block.
	Comment(text string, start Token)

	// ParseError reports a parser-level diagnostic (unexpected token, EOF,
	// extraneous input) that must be propagated into the final
	// diagnostic list unchanged.
	ParseError(message string, at Token)
}

// BaseListener implements Listener with no-op bodies, so a caller that only
// needs a handful of callbacks (tests, tooling) can embed it and override
// what it needs, the same way a generated ANTLR BaseListener works.
type BaseListener struct{}

func (BaseListener) EnterProgram()                       {}
func (BaseListener) ExitProgram()                        {}
func (BaseListener) EnterRule(Token)                     {}
func (BaseListener) ExitRule(Token, bool)                {}
func (BaseListener) EnterAnnotation(string, Token)       {}
func (BaseListener) ExitAnnotation()                     {}
func (BaseListener) AnnotationArgument(Token)            {}
func (BaseListener) EnterHead()                          {}
func (BaseListener) ExitHead()                           {}
func (BaseListener) EnterBody()                          {}
func (BaseListener) ExitBody()                           {}
func (BaseListener) EnterFact()                          {}
func (BaseListener) ExitFact()                           {}
func (BaseListener) EnterNegationLiteral()                {}
func (BaseListener) ExitNegationLiteral()                 {}
func (BaseListener) EnterAtom(Token)                     {}
func (BaseListener) ExitAtom()                           {}
func (BaseListener) VarTerm(Token)                       {}
func (BaseListener) ConstantTerm(Token)                  {}
func (BaseListener) EnterCollection()                    {}
func (BaseListener) ExitCollection()                     {}
func (BaseListener) EnterCondition()                     {}
func (BaseListener) ConditionEquality()                  {}
func (BaseListener) ExitCondition()                      {}
func (BaseListener) EnterEqualitySide(EqualitySide)      {}
func (BaseListener) ExitEqualitySide()                   {}
func (BaseListener) EnterEGD(Token)                      {}
func (BaseListener) ExitEGD()                            {}
func (BaseListener) EnterAggregation(Token)              {}
func (BaseListener) ExitAggregation()                    {}
func (BaseListener) AggregationContributor(Token)        {}
func (BaseListener) Comment(string, Token)               {}
func (BaseListener) ParseError(string, Token)            {}
