package semantic

import (
	"github.com/vadalog/dlanalyzer/builder"
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// UndeclaredAtom flags every atom occurrence of a name that is never
// declared in a rule head, a fact, or an @input.
func UndeclaredAtom(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, atom := range g.NodesOfKind(program.KindAtom) {
		if atom.Atom.IsIDB || atom.Atom.IsEDB {
			continue
		}
		for _, tok := range atomTokensOf(g, atom.Atom.Name) {
			out = append(out, diagnostic.New("ERR_UNDECLARED_ATOM_0",
				map[string]string{"atom": atom.Atom.Name}, tokenRange(tok.Token), ""))
		}
	}
	return out
}

// InputAtomInHead flags every @input atom that also appears in a rule head.
func InputAtomInHead(g *program.Graph, symbols builder.SymbolTables) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, tok := range g.NodesOfKind(program.KindToken) {
		if tok.Token.Location != program.LocationHead {
			continue
		}
		atomName := atomNameOfToken(g, tok.ID)
		if !symbols.InputAtomNames.Has(atomName) {
			continue
		}
		out = append(out, diagnostic.New("ERR_INPUT_ATOM_IN_HEAD_0",
			map[string]string{"atom": atomName}, tokenRange(tok.Token), ""))
	}
	return out
}

// DuplicateOutput flags every @output token of an atom declared @output
// more than once, including the first declaration.
func DuplicateOutput(g *program.Graph, symbols builder.SymbolTables) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for atomName, extra := range symbols.DuplicateOutputRules {
		if len(extra) == 0 {
			continue
		}
		for _, tok := range g.NodesOfKind(program.KindToken) {
			if tok.Token.Location != program.LocationOutput || atomNameOfToken(g, tok.ID) != atomName {
				continue
			}
			out = append(out, diagnostic.New("ERR_ATOM_0_ALREADY_OUTPUT",
				map[string]string{"atom": atomName}, tokenRange(tok.Token), ""))
		}
	}
	return out
}

// NonExistingOutput flags every @output naming an atom that is neither
// declared nor an @input.
func NonExistingOutput(g *program.Graph, symbols builder.SymbolTables) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, tok := range g.NodesOfKind(program.KindToken) {
		if tok.Token.Location != program.LocationOutput {
			continue
		}
		atomName := atomNameOfToken(g, tok.ID)
		atom := g.Node(program.AtomID(atomName))
		declared := atom != nil && atom.Atom != nil && (atom.Atom.IsIDB || atom.Atom.IsEDB)
		if declared || symbols.InputAtomNames.Has(atomName) {
			continue
		}
		out = append(out, diagnostic.New("ERR_NON_EXISTING_OUTPUT_0",
			map[string]string{"atom": atomName}, tokenRange(tok.Token), ""))
	}
	return out
}

// UnboundBindings flags every @input with no @bind (warning) and every
// @output with no @bind (hint), except an @output of an atom that appears
// in a rule head.
func UnboundBindings(g *program.Graph, symbols builder.SymbolTables) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, tok := range g.NodesOfKind(program.KindToken) {
		atomName := atomNameOfToken(g, tok.ID)
		switch tok.Token.Location {
		case program.LocationInput:
			if symbols.AtomBindings.Has(atomName) {
				continue
			}
			out = append(out, diagnostic.New("ERR_NO_BINDINGS_FOR_INPUT_0",
				map[string]string{"atom": atomName}, tokenRange(tok.Token), ""))
		case program.LocationOutput:
			if symbols.AtomBindings.Has(atomName) {
				continue
			}
			if atom := g.Node(program.AtomID(atomName)); atom != nil && atom.Atom != nil && atom.Atom.IsIDB {
				// A rule-derived atom gets its data from evaluation, not a
				// binding; only a purely extensional @output needs one.
				continue
			}
			out = append(out, diagnostic.New("NO_BINDINGS_FOR_OUTPUT_0",
				map[string]string{"atom": atomName}, tokenRange(tok.Token), ""))
		}
	}
	return out
}

// UnusedAtom flags every atom that is used in no body and is not declared
// @output, declared @input, or annotated @exports.
func UnusedAtom(g *program.Graph, symbols builder.SymbolTables) []diagnostic.Diagnostic {
	usedInBody := program.NewSet[string]()
	for _, tok := range g.NodesOfKind(program.KindToken) {
		if tok.Token.Location == program.LocationBody {
			usedInBody.Add(atomNameOfToken(g, tok.ID))
		}
	}

	var out []diagnostic.Diagnostic
	for _, atom := range g.NodesOfKind(program.KindAtom) {
		name := atom.Atom.Name
		if usedInBody.Has(name) || symbols.OutputAtomNames.Has(name) || symbols.Exports.Has(name) || symbols.InputAtomNames.Has(name) {
			continue
		}
		for _, tok := range atomTokensOf(g, name) {
			out = append(out, diagnostic.New("ERR_UNUSED_ATOM",
				map[string]string{"atom": name}, tokenRange(tok.Token), ""))
		}
	}
	return out
}
