package semantic

import (
	"github.com/vadalog/dlanalyzer/builder"
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// TemporalPropagation marks every atom that derives, directly or
// transitively, from a @temporal atom as temporal too, then tags every
// token of every temporal atom with the TEMPORAL modifier. It emits no
// diagnostics; the modifier is purely a decoration consumed by the token
// decorator.
func TemporalPropagation(g *program.Graph, symbols builder.SymbolTables, atomDependency map[string]program.Set[string]) []diagnostic.Diagnostic {
	forward := make(map[string][]string)
	for head, bodies := range atomDependency {
		for body := range bodies {
			forward[body] = append(forward[body], head)
		}
	}

	temporal := program.NewSet[string]()
	var worklist []string
	for name := range symbols.Temporal {
		if temporal.Add(name) {
			worklist = append(worklist, name)
		}
	}

	for len(worklist) > 0 {
		name := worklist[0]
		worklist = worklist[1:]
		for _, dependent := range forward[name] {
			if temporal.Add(dependent) {
				worklist = append(worklist, dependent)
			}
		}
	}

	for name := range temporal {
		g.UpdateNode(program.AtomID(name), program.KindAtom, func(n *program.Node) {
			n.Atom.Name = name
			n.Atom.Temporal = true
		})
		for _, tok := range atomTokensOf(g, name) {
			tok.Token.Modifiers.Add("TEMPORAL")
		}
	}
	return nil
}
