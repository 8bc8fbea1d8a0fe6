package adapter

import (
	"github.com/vadalog/dlanalyzer/builder"
	"github.com/vadalog/dlanalyzer/program"
)

func atomNameOfToken(g *program.Graph, tokenID string) string {
	for _, e := range g.EdgesFrom(tokenID, program.EdgeTokenOf) {
		if target := g.Node(e.To); target != nil && target.Kind == program.KindAtom {
			return target.Atom.Name
		}
	}
	return ""
}

// hostAtomNameOf resolves the owning atom name of any token inside an
// atom's term list: the atom-name token itself, or one of its term
// occurrences, one TOKEN_OF hop further out.
func hostAtomNameOf(g *program.Graph, tokenID string) string {
	if name := atomNameOfToken(g, tokenID); name != "" {
		return name
	}
	for _, e := range g.EdgesFrom(tokenID, program.EdgeTokenOf) {
		if sibling := g.Node(e.To); sibling != nil && sibling.Kind == program.KindToken {
			if name := atomNameOfToken(g, sibling.ID); name != "" {
				return name
			}
		}
	}
	return ""
}

// GetAtomReferences returns every token belonging to an occurrence of the
// named atom -- the atom-name token and its term tokens, in every head,
// body, and fact occurrence -- sorted the way decorator.Decorate sorts its
// output (ascending by line, then column).
func (d *Document) GetAtomReferences(name string) []*program.Node {
	var out []*program.Node
	for _, tok := range d.Graph.NodesOfKind(program.KindToken) {
		if hostAtomNameOf(d.Graph, tok.ID) == name {
			out = append(out, tok)
		}
	}
	sortTokenNodes(out)
	return out
}

func sortTokenNodes(nodes []*program.Node) {
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0; j-- {
			a, b := nodes[j-1].Token, nodes[j].Token
			if a.Line < b.Line || (a.Line == b.Line && a.Column <= b.Column) {
				break
			}
			nodes[j-1], nodes[j] = nodes[j], nodes[j-1]
		}
	}
}

// GetAtomVadocBlock returns the Vadoc comment block immediately preceding
// the named atom's first head or fact occurrence, or "" if it has none.
func (d *Document) GetAtomVadocBlock(name string) string {
	return d.AtomVadoc[name]
}

// GetBindings returns every @bind/@qbind declaration recorded for name.
func (d *Document) GetBindings(name string) []builder.Binding {
	return d.Symbols.Bindings[name]
}

// GetMappings returns every @mapping column declaration recorded for name.
func (d *Document) GetMappings(name string) []builder.MappingEntry {
	return d.Symbols.Mappings[name]
}

// GetRuleAtCursor returns the narrowest Rule node whose source range
// contains (line, col), or nil if the cursor is outside every rule.
func (d *Document) GetRuleAtCursor(line, col int) *program.Node {
	var best *program.Node
	for _, r := range d.Graph.NodesOfKind(program.KindRule) {
		rng := r.Rule.Range
		if !rangeContains(rng, line, col) {
			continue
		}
		if best == nil || rangeNarrower(rng, best.Rule.Range) {
			best = r
		}
	}
	return best
}

func rangeContains(rng program.Range, line, col int) bool {
	if line < rng.StartLine || line > rng.EndLine {
		return false
	}
	if line == rng.StartLine && col < rng.StartCol {
		return false
	}
	if line == rng.EndLine && col > rng.EndCol {
		return false
	}
	return true
}

func rangeNarrower(a, b program.Range) bool {
	aSpan := (a.EndLine-a.StartLine)*1_000_000 + (a.EndCol - a.StartCol)
	bSpan := (b.EndLine-b.StartLine)*1_000_000 + (b.EndCol - b.StartCol)
	return aSpan < bSpan
}
