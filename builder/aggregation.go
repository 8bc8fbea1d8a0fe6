package builder

import (
	"strings"

	"github.com/vadalog/dlanalyzer/parsetree"
	"github.com/vadalog/dlanalyzer/program"
)

var aggregationKeyword = map[string]program.AggregationType{
	"sum":    program.AggSum,
	"prod":   program.AggProd,
	"avg":    program.AggAvg,
	"count":  program.AggCount,
	"min":    program.AggMin,
	"max":    program.AggMax,
	"set":    program.AggSet,
	"list":   program.AggList,
	"union":  program.AggUnion,
	"msum":   program.AggMSum,
	"mprod":  program.AggMProd,
	"mcount": program.AggMCount,
	"mmin":   program.AggMMin,
	"mmax":   program.AggMMax,
	"munion": program.AggMUnion,
}

// EnterAggregation opens one aggregation expression, creating its
// Aggregation node and wiring it to the owning rule.
func (b *Builder) EnterAggregation(kind parsetree.Token) {
	id := program.AggregationID(b.ruleID, b.currentAggregationIndex)
	aggType := aggregationKeyword[strings.ToLower(kind.Text)]

	b.graph.AddNode(&program.Node{ID: id, Kind: program.KindAggregation, Aggregation: &program.AggregationData{
		Text: kind.Text, AggregationType: aggType,
	}})
	b.graph.AddEdge(&program.Edge{From: id, To: b.ruleID, Kind: program.EdgeAggregationOfRule})

	b.aggregationBeingVisited = id
	b.trackToken(kind)
}

func (b *Builder) ExitAggregation() {
	b.aggregationBeingVisited = ""
	b.currentAggregationIndex++
}

// AggregationContributor records one contributor variable of the
// aggregation currently being visited, in order. MAX/MIN/MMAX/MMIN take no
// contributors per their AggregationType.HasContributors rule, but the
// builder links a contributor for any aggregation kind if the parse tree
// reports one, and later passes read those edges without checking the kind.
func (b *Builder) AggregationContributor(name parsetree.Token) {
	if b.aggregationBeingVisited == "" {
		return
	}
	aggID := b.aggregationBeingVisited

	varID := program.VariableID(name.Text, b.ruleID)
	b.graph.UpdateNode(varID, program.KindVariable, func(n *program.Node) {
		n.Variable.Name = name.Text
		n.Variable.Rule = b.ruleID
	})

	index := len(b.graph.EdgesTo(aggID, program.EdgeContributorOfAggregation))
	b.graph.AddEdge(&program.Edge{From: varID, To: aggID, Kind: program.EdgeContributorOfAggregation, Contributor: &program.ContributorAttrs{Index: index}})
	b.trackToken(name)
}
