package semantic

import (
	"strings"

	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// ConditionVariableCycles builds a directed graph over condition variables
// (an edge from an equality condition's left-hand variable to every
// right-hand variable of the same condition) and flags every variable that
// participates in a cycle of that graph. A variable that is only connected
// to a cycle, without lying on one, is not flagged.
func ConditionVariableCycles(g *program.Graph) []diagnostic.Diagnostic {
	adj := conditionVariableGraph(g)
	cycles := stronglyConnectedCycles(adj)

	var out []diagnostic.Diagnostic
	for _, scc := range cycles {
		names := make([]string, 0, len(scc))
		for _, varID := range scc {
			if v := g.Node(varID); v != nil && v.Variable != nil {
				names = append(names, v.Variable.Name)
			}
		}
		cycle := strings.Join(names, ", ")
		for _, varID := range scc {
			v := g.Node(varID)
			if v == nil || v.Variable == nil {
				continue
			}
			for _, tok := range occurrenceTokensOf(g, v) {
				out = append(out, diagnostic.New("ERR_CYCLE_IN_CONDITION_VARIABLES",
					map[string]string{"cycle": cycle}, tokenRange(tok.Token), ""))
			}
		}
	}
	return out
}

// conditionVariableGraph groups VARIABLE_AT_CONDITION edges by the owning
// equality condition and links LHS -> every RHS.
func conditionVariableGraph(g *program.Graph) map[string][]string {
	adj := make(map[string][]string)
	for _, cond := range g.NodesOfKind(program.KindCondition) {
		if cond.Condition == nil || !cond.Condition.Equality {
			continue
		}
		var lhs []string
		var rhs []string
		for _, e := range g.EdgesTo(cond.ID, program.EdgeVariableAtCondition) {
			if e.VariableAtCondition != nil && e.VariableAtCondition.LeftHandSideOfAnEqCondition {
				lhs = append(lhs, e.From)
			} else {
				rhs = append(rhs, e.From)
			}
		}
		for _, l := range lhs {
			adj[l] = append(adj[l], rhs...)
		}
	}
	return adj
}

// stronglyConnectedCycles runs Tarjan's algorithm and returns every
// strongly connected component that constitutes a cycle: size > 1, or a
// single node with a self-loop.
func stronglyConnectedCycles(adj map[string][]string) [][]string {
	index := 0
	indices := map[string]int{}
	lowlink := map[string]int{}
	onStack := map[string]bool{}
	var stack []string
	var out [][]string

	nodes := program.NewSet[string]()
	for from, tos := range adj {
		nodes.Add(from)
		for _, to := range tos {
			nodes.Add(to)
		}
	}

	var strongconnect func(v string)
	strongconnect = func(v string) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range adj[v] {
			if _, seen := indices[w]; !seen {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] {
				if indices[w] < lowlink[v] {
					lowlink[v] = indices[w]
				}
			}
		}

		if lowlink[v] == indices[v] {
			var scc []string
			for {
				n := len(stack) - 1
				w := stack[n]
				stack = stack[:n]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			if len(scc) > 1 || hasSelfLoop(adj, scc[0]) {
				out = append(out, scc)
			}
		}
	}

	for _, id := range program.SortedStrings(nodes) {
		if _, seen := indices[id]; !seen {
			strongconnect(id)
		}
	}
	return out
}

func hasSelfLoop(adj map[string][]string, id string) bool {
	for _, to := range adj[id] {
		if to == id {
			return true
		}
	}
	return false
}
