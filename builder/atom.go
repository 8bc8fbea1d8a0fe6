package builder

import (
	"github.com/vadalog/dlanalyzer/parsetree"
	"github.com/vadalog/dlanalyzer/program"
)

// EnterHead marks the rule's head as being visited; the first atom
// encountered becomes atomInHeadBeingVisited, the dependency-graph source
// for every body atom in the same rule.
func (b *Builder) EnterHead() {
	b.visitingHead = true
	b.atomInHeadBeingVisited = ""
}

func (b *Builder) ExitHead() {
	b.visitingHead = false
}

func (b *Builder) EnterBody() {
	b.visitingBody = true
	b.bodyConjunctiveQueryTerm = 0
}

func (b *Builder) ExitBody() {
	b.visitingBody = false
}

func (b *Builder) EnterFact() {
	b.visitingFact = true
}

func (b *Builder) ExitFact() {
	b.visitingFact = false
}

func (b *Builder) EnterNegationLiteral() {
	b.visitingNegationLiteral = true
}

func (b *Builder) ExitNegationLiteral() {
	b.visitingNegationLiteral = false
}

func (b *Builder) currentLocation() program.TokenLocation {
	switch {
	case b.visitingFact:
		return program.LocationFact
	case b.visitingHead:
		return program.LocationHead
	default:
		return program.LocationBody
	}
}

// EnterAtom opens one atom occurrence in a head, body, or fact. It creates
// the Atom node if missing, a Token node for the occurrence, and a TOKEN_OF
// edge carrying the current location; it also wires the atom-dependency
// edge used only for temporal-attribute propagation.
func (b *Builder) EnterAtom(name parsetree.Token) {
	b.termPositionBeingVisited = 0
	atomName := name.Text
	location := b.currentLocation()

	tokenID := b.addAtomToken(atomName, name, location)
	b.atomTokenBeingVisited = tokenID
	b.atomNameBeingVisited = atomName

	b.graph.UpdateNode(program.AtomID(atomName), program.KindAtom, func(n *program.Node) {
		switch location {
		case program.LocationHead:
			n.Atom.IsIDB = true
		case program.LocationFact, program.LocationInput:
			if !n.Atom.IsIDB {
				n.Atom.IsEDB = true
			}
		}
	})

	if location == program.LocationHead {
		if b.atomInHeadBeingVisited == "" {
			b.atomInHeadBeingVisited = atomName
		}
	} else if b.visitingBody && b.atomInHeadBeingVisited != "" {
		deps, ok := b.atomDependency[b.atomInHeadBeingVisited]
		if !ok {
			deps = program.NewSet[string]()
			b.atomDependency[b.atomInHeadBeingVisited] = deps
		}
		deps.Add(atomName)
	}
}

func (b *Builder) ExitAtom() {
	b.lastExitedAtom = b.atomNameBeingVisited
	b.atomTokenBeingVisited = ""
	b.atomNameBeingVisited = ""
	if b.visitingBody {
		b.bodyConjunctiveQueryTerm++
	}
}

// addAtomToken creates the atom node (if missing) and a token node for one
// occurrence, linking them with TOKEN_OF, and returns the token node's ID.
func (b *Builder) addAtomToken(atomName string, tok parsetree.Token, location program.TokenLocation) string {
	b.graph.UpdateNode(program.AtomID(atomName), program.KindAtom, func(n *program.Node) {
		n.Atom.Name = atomName
	})

	tokenID := program.TokenID(tok.Line, tok.Column, tok.Length)
	b.graph.AddNode(&program.Node{ID: tokenID, Kind: program.KindToken, Token: &program.TokenData{
		Line: tok.Line, Column: tok.Column, Length: tok.Length, Text: tok.Text,
		Location: location, Rule: b.ruleID, Modifiers: program.NewSet[string](),
	}})
	b.graph.AddEdge(&program.Edge{From: tokenID, To: program.AtomID(atomName), Kind: program.EdgeTokenOf})
	b.trackToken(tok)

	if (location == program.LocationHead || location == program.LocationFact) && b.activeBlockComment != "" {
		if _, recorded := b.atomVadoc[atomName]; !recorded {
			b.atomVadoc[atomName] = b.activeBlockComment
		}
	}

	return tokenID
}
