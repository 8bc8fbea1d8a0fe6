// Package decorator implements the final pipeline stage (C7): once every
// base, fragment, and semantic analyzer has run, it folds their per-node
// findings onto the flat lexical token list the parser handed in, the way
// analyzer.buildIRGraph flattens a PackageModel's typed identifiers and
// data-flow edges into a generic IRNode/IREdge projection for export.
package decorator

import (
	"sort"

	"github.com/vadalog/dlanalyzer/parsetree"
	"github.com/vadalog/dlanalyzer/program"
)

// Decorate merges variable- and atom-node attributes onto their occurrence
// tokens, appends the EXISTENTIAL/TEMPORAL/UNUSED modifiers, and returns the
// tokens sorted ascending by (line, column). tokens is expected to already
// have suppressed annotation-argument tokens removed, which is
// builder.Result's job.
func Decorate(g *program.Graph, tokens []*parsetree.Token) []*parsetree.Token {
	mergeVariableAttributes(g)
	mergeAtomAttributes(g)
	appendModifiers(g)

	out := make([]*parsetree.Token, len(tokens))
	copy(out, tokens)
	for _, t := range out {
		if data := g.Node(t.ID()); data != nil && data.Token != nil {
			for _, mod := range program.SortedStrings(data.Token.Modifiers) {
				t.AddModifier(mod)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Column < out[j].Column
	})
	return out
}

// mergeVariableAttributes implements decorator step 1: existential, harmful,
// dangerous, protected, and attackedBy are computed once per Variable node
// by the fixpoint analyzers; here they are copied onto every lexical token
// that is an occurrence of that variable.
func mergeVariableAttributes(g *program.Graph) {
	for _, v := range g.NodesOfKind(program.KindVariable) {
		attackedBy := program.SortedStrings(v.Variable.AttackedBy)
		for _, tok := range occurrenceTokensOf(g, v) {
			tok.Token.Existential = v.Variable.Existential
			tok.Token.Harmful = v.Variable.Harmful
			tok.Token.Dangerous = v.Variable.Dangerous
			tok.Token.Protected = v.Variable.Protected
			tok.Token.AttackedBy = attackedBy
		}
	}
}

// mergeAtomAttributes implements decorator step 2's isEDB/isIDB half; guard,
// weakGuard, frontierGuard, weakFrontierGuard, and existentialVariables are
// already written directly onto each atom token by the fragment and base
// analyzers, so there is nothing left to copy for those.
func mergeAtomAttributes(g *program.Graph) {
	for _, atom := range g.NodesOfKind(program.KindAtom) {
		for _, tok := range atomTokensOf(g, atom.Atom.Name) {
			tok.Token.IsEDB = atom.Atom.IsEDB
			tok.Token.IsIDB = atom.Atom.IsIDB
		}
	}
}

// appendModifiers implements decorator step 3. TEMPORAL and UNUSED are
// already appended directly to a token's Modifiers set by
// semantic.TemporalPropagation and semantic.AnonymousVariables as they run;
// only EXISTENTIAL, which depends on the affected-position fixpoint that
// runs earlier in package analysis, is computed here.
func appendModifiers(g *program.Graph) {
	for _, tok := range g.NodesOfKind(program.KindToken) {
		if !tok.Token.HasAtomPosition {
			continue
		}
		atomName := hostAtomNameOf(g, tok.ID)
		if atomName == "" {
			continue
		}
		pos := g.Node(program.PositionID(atomName, tok.Token.AtomPositionIndex))
		if pos == nil || pos.Position == nil || !pos.Position.Affected {
			continue
		}
		tok.Token.Modifiers.Add("EXISTENTIAL")
	}
}
