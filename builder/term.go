package builder

import (
	"github.com/vadalog/dlanalyzer/parsetree"
	"github.com/vadalog/dlanalyzer/program"
)

// EnterCollection / ExitCollection bracket a list/set literal passed as a
// single term. Elements inside are still reported via VarTerm/ConstantTerm
// but must not advance the position counter of the enclosing atom.
func (b *Builder) EnterCollection() {
	b.inCollection = true
}

func (b *Builder) ExitCollection() {
	b.inCollection = false
}

// VarTerm records a variable occurrence at the current position, in
// whichever construct is active: an atom term, a condition side, or an EGD
// equality side. Aggregation contributors arrive through
// AggregationContributor instead.
func (b *Builder) VarTerm(name parsetree.Token) {
	b.trackToken(name)

	switch {
	case b.conditionBeingVisited != "":
		b.linkVariableAtCondition(name)
	case b.egdBeingVisited != "":
		b.linkVariableAtEGD(name)
	case b.aggregationBeingVisited != "":
		// contributor handling happens in AggregationContributor; a bare
		// VarTerm inside an aggregation's own argument list (its grouping
		// key) is treated the same as an ordinary atom term below.
		fallthrough
	default:
		b.linkVariableAtAtomTerm(name)
	}
}

// ConstantTerm records a constant occurrence at the current position.
func (b *Builder) ConstantTerm(value parsetree.Token) {
	b.trackToken(value)

	if b.conditionBeingVisited != "" || b.egdBeingVisited != "" || b.aggregationBeingVisited != "" {
		b.advanceIfPositional()
		return
	}

	if b.atomTokenBeingVisited == "" {
		b.advanceIfPositional()
		return
	}

	tokenID := program.TokenID(value.Line, value.Column, value.Length)
	b.graph.AddNode(&program.Node{ID: tokenID, Kind: program.KindToken, Token: &program.TokenData{
		Line: value.Line, Column: value.Column, Length: value.Length, Text: value.Text,
		Location: b.currentLocation(), Rule: b.ruleID, IsLiteral: true,
		AtomPositionIndex: b.termPositionBeingVisited, HasAtomPosition: true,
		Modifiers: program.NewSet[string](),
	}})
	b.graph.AddEdge(&program.Edge{From: tokenID, To: b.atomTokenBeingVisited, Kind: program.EdgeTokenOf})

	if b.visitingBody {
		posID := program.PositionID(b.atomNameIfKnown(), b.termPositionBeingVisited)
		b.graph.UpdateNode(posID, program.KindPosition, func(n *program.Node) {
			n.Position.Atom = b.atomNameIfKnown()
			n.Position.Index = b.termPositionBeingVisited
		})
		b.graph.AddEdge(&program.Edge{From: tokenID, To: posID, Kind: program.EdgeTokenAtPosition})
	}

	b.advanceIfPositional()
}

func (b *Builder) atomNameIfKnown() string {
	return b.atomNameBeingVisited
}

func (b *Builder) advanceIfPositional() {
	if !b.inCollection {
		b.termPositionBeingVisited++
	}
}

func (b *Builder) linkVariableAtAtomTerm(name parsetree.Token) {
	if b.atomTokenBeingVisited == "" {
		b.advanceIfPositional()
		return
	}
	atomName := b.atomNameBeingVisited
	posIndex := b.termPositionBeingVisited
	posID := program.PositionID(atomName, posIndex)
	varID := program.VariableID(name.Text, b.ruleID)

	b.graph.UpdateNode(posID, program.KindPosition, func(n *program.Node) {
		n.Position.Atom = atomName
		n.Position.Index = posIndex
	})
	b.graph.UpdateNode(varID, program.KindVariable, func(n *program.Node) {
		n.Variable.Name = name.Text
		n.Variable.Rule = b.ruleID
	})

	tokenID := program.TokenID(name.Line, name.Column, name.Length)
	b.graph.AddNode(&program.Node{ID: tokenID, Kind: program.KindToken, Token: &program.TokenData{
		Line: name.Line, Column: name.Column, Length: name.Length, Text: name.Text,
		Location: b.currentLocation(), Rule: b.ruleID,
		AtomPositionIndex: posIndex, HasAtomPosition: true,
		Modifiers: program.NewSet[string](),
	}})
	b.graph.AddEdge(&program.Edge{From: tokenID, To: b.atomTokenBeingVisited, Kind: program.EdgeTokenOf})

	attrs := &program.VariableAtAttrs{
		Head:                     b.visitingHead,
		BodyConjunctiveQueryTerm: b.visitingBody,
		Negated:                  b.visitingNegationLiteral,
	}
	b.graph.AddEdge(&program.Edge{From: varID, To: posID, Kind: program.EdgeVariableAtPosition, VariableAt: attrs})
	b.graph.AddEdge(&program.Edge{From: varID, To: b.atomTokenBeingVisited, Kind: program.EdgeVariableAtAtomToken, VariableAt: attrs})

	b.advanceIfPositional()
}

func (b *Builder) linkVariableAtCondition(name parsetree.Token) {
	varID := program.VariableID(name.Text, b.ruleID)
	b.graph.UpdateNode(varID, program.KindVariable, func(n *program.Node) {
		n.Variable.Name = name.Text
		n.Variable.Rule = b.ruleID
	})
	tokenID := program.TokenID(name.Line, name.Column, name.Length)
	b.graph.AddNode(&program.Node{ID: tokenID, Kind: program.KindToken, Token: &program.TokenData{
		Line: name.Line, Column: name.Column, Length: name.Length, Text: name.Text,
		Location: program.LocationBody, Rule: b.ruleID, Modifiers: program.NewSet[string](),
	}})
	b.graph.AddEdge(&program.Edge{From: tokenID, To: b.conditionBeingVisited, Kind: program.EdgeTokenOf})
	b.graph.AddEdge(&program.Edge{From: varID, To: b.conditionBeingVisited, Kind: program.EdgeVariableAtCondition, VariableAtCondition: &program.VariableAtConditionAttrs{
		LeftHandSideOfAnEqCondition: b.equalitySide == parsetree.SideLHS,
	}})
}

func (b *Builder) linkVariableAtEGD(name parsetree.Token) {
	varID := program.VariableID(name.Text, b.ruleID)
	b.graph.UpdateNode(varID, program.KindVariable, func(n *program.Node) {
		n.Variable.Name = name.Text
		n.Variable.Rule = b.ruleID
	})
	tokenID := program.TokenID(name.Line, name.Column, name.Length)
	b.graph.AddNode(&program.Node{ID: tokenID, Kind: program.KindToken, Token: &program.TokenData{
		Line: name.Line, Column: name.Column, Length: name.Length, Text: name.Text,
		Location: program.LocationHead, Rule: b.ruleID, EGD: true, Modifiers: program.NewSet[string](),
	}})
	b.graph.AddEdge(&program.Edge{From: tokenID, To: b.egdBeingVisited, Kind: program.EdgeTokenOf})
	b.graph.AddEdge(&program.Edge{From: varID, To: b.egdBeingVisited, Kind: program.EdgeVariableAtEGD})
}
