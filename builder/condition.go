package builder

import (
	"github.com/vadalog/dlanalyzer/parsetree"
	"github.com/vadalog/dlanalyzer/program"
)

// EnterCondition opens one body condition, creating its Condition node.
func (b *Builder) EnterCondition() {
	b.conditionBeingVisited = program.ConditionID(b.ruleID, b.conditionIndex)
	b.graph.AddNode(&program.Node{ID: b.conditionBeingVisited, Kind: program.KindCondition, Condition: &program.ConditionData{}})
}

// ConditionEquality marks the condition just entered as an equality (`=`)
// condition rather than another comparison operator.
func (b *Builder) ConditionEquality() {
	id := b.conditionBeingVisited
	b.graph.UpdateNode(id, program.KindCondition, func(n *program.Node) {
		n.Condition.Equality = true
	})
}

func (b *Builder) ExitCondition() {
	b.conditionBeingVisited = ""
	b.conditionIndex++
	if b.visitingBody {
		b.bodyConjunctiveQueryTerm++
	}
}

// EnterEqualitySide / ExitEqualitySide bracket one side of an equality
// condition or an EGD head.
func (b *Builder) EnterEqualitySide(side parsetree.EqualitySide) {
	b.equalitySide = side
}

func (b *Builder) ExitEqualitySide() {
	b.equalitySide = parsetree.SideNone
}

// EnterEGD opens one equality-generating-dependency head, creating its EGD
// node and wiring it to the owning rule. eq is the `=` token, kept so the
// EGD hint diagnostic (package semantic) can point at it.
func (b *Builder) EnterEGD(eq parsetree.Token) {
	b.egdBeingVisited = program.EGDID(b.ruleID, b.egdIndex)
	eqRange := program.Range{StartLine: eq.Line, StartCol: eq.Column, EndLine: eq.Line, EndCol: eq.EndColumn()}
	b.graph.AddNode(&program.Node{ID: b.egdBeingVisited, Kind: program.KindEGD, EGD: &program.EGDData{Rule: b.ruleID, EqualsRange: eqRange}})
	b.graph.AddEdge(&program.Edge{From: b.egdBeingVisited, To: b.ruleID, Kind: program.EdgeEGDOf})
}

func (b *Builder) ExitEGD() {
	b.egdBeingVisited = ""
	b.egdIndex++
}
