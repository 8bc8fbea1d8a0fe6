package builder

import (
	"strconv"
	"strings"

	"golang.org/x/mod/module"

	"github.com/vadalog/dlanalyzer/parsetree"
	"github.com/vadalog/dlanalyzer/program"
)

// annotationArity is the fixed argument count the builder expects for each
// recognized annotation. A mismatch is ERR_ANNOTATION_PARAMETERS_ARITY
// rather than a hard parse failure, per the catch-and-continue policy.
var annotationArity = map[string]int{
	"output":  1,
	"input":   1,
	"module":  1,
	"bind":    4,
	"qbind":   4,
	"mapping": 4,
	"post":    1,
	"exports": 1,
	"temporal": 1,
}

func unquote(text string) string {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return text[1 : len(text)-1]
	}
	return text
}

// EnterAnnotation opens `@name(...)`, resetting the annotation state. It
// creates no node of its own; the Rule node for the annotation comes from
// the EnterRule call that brackets it, as for any other top-level construct.
func (b *Builder) EnterAnnotation(name string, at parsetree.Token) {
	b.visitingAnnotation = true
	b.annotationName = strings.ToLower(name)
	b.annotationStart = at
	b.annotationArgs = nil
}

// AnnotationArgument records one positional argument token; ExitAnnotation
// unquotes it. For output/input/bind/qbind/mapping/temporal, ExitAnnotation
// turns the first argument into a suppressed atom-token, since it names an
// atom that is also reachable from the program graph and must not
// double-render; module and exports arguments get no atom-token.
func (b *Builder) AnnotationArgument(raw parsetree.Token) {
	b.annotationArgs = append(b.annotationArgs, raw)
	b.trackToken(raw)
}

// ExitAnnotation dispatches on the annotation name, validating arity and
// non-emptiness before updating symbol tables.
func (b *Builder) ExitAnnotation() {
	defer func() {
		b.visitingAnnotation = false
		b.annotationName = ""
		b.annotationArgs = nil
	}()

	name := b.annotationName
	args := make([]string, len(b.annotationArgs))
	for i, t := range b.annotationArgs {
		args[i] = unquote(t.Text)
		if args[i] == "" {
			b.emit("ERR_EMPTY_DEFINITION", nil, t, "")
		}
	}

	if want, ok := annotationArity[name]; ok && len(args) != want {
		b.emit("ERR_ANNOTATION_PARAMETERS_ARITY", map[string]string{
			"annotation": name,
			"expected":   strconv.Itoa(want),
			"actual":     strconv.Itoa(len(args)),
		}, b.annotationStart, "")
	}

	switch name {
	case "output":
		b.handleOutput(args)
	case "input":
		b.handleInput(args)
	case "module":
		b.handleModule(args)
	case "bind":
		b.handleBind(args, false)
	case "qbind":
		b.handleBind(args, true)
	case "mapping":
		b.handleMapping(args)
	case "exports":
		if len(args) > 0 {
			b.symbols.Exports.Add(args[0])
		}
	case "temporal":
		b.handleTemporal(args)
	}
}

func (b *Builder) firstArgAtomToken() (parsetree.Token, bool) {
	if len(b.annotationArgs) == 0 {
		return parsetree.Token{}, false
	}
	return b.annotationArgs[0], true
}

func (b *Builder) handleOutput(args []string) {
	if len(args) == 0 {
		return
	}
	tok, _ := b.firstArgAtomToken()
	atom := args[0]
	b.addAtomToken(atom, tok, program.LocationOutput)
	b.suppress(tok)

	if b.symbols.OutputAtomNames.Has(atom) {
		b.symbols.DuplicateOutputRules[atom] = append(b.symbols.DuplicateOutputRules[atom], tok.ID())
	} else {
		b.symbols.OutputAtomNames.Add(atom)
	}
}

func (b *Builder) handleInput(args []string) {
	if len(args) == 0 {
		return
	}
	tok, _ := b.firstArgAtomToken()
	atom := args[0]
	b.addAtomToken(atom, tok, program.LocationInput)
	b.graph.UpdateNode(program.AtomID(atom), program.KindAtom, func(n *program.Node) {
		if !n.Atom.IsIDB {
			n.Atom.IsEDB = true
		}
	})
	b.suppress(tok)
	b.symbols.InputAtomNames.Add(atom)
}

func (b *Builder) handleModule(args []string) {
	if len(args) == 0 {
		return
	}
	path := args[0]
	b.symbols.ModulePath = path
	b.symbols.HasModulePath = true
	if err := module.CheckPath(path); err != nil {
		tok, _ := b.firstArgAtomToken()
		b.emit("ERR_MODULE_PATH_INVALID", map[string]string{
			"path":   path,
			"reason": err.Error(),
		}, tok, "")
	}
}

func (b *Builder) handleBind(args []string, isQuery bool) {
	if len(args) == 0 {
		return
	}
	tok, _ := b.firstArgAtomToken()
	atom := args[0]
	b.addAtomToken(atom, tok, program.LocationBinding)
	b.suppress(tok)
	b.symbols.AtomBindings.Add(atom)

	bind := Binding{AtomName: atom, IsQuery: isQuery}
	if len(args) > 1 {
		bind.DataSource = args[1]
	}
	if len(args) > 2 {
		bind.OutermostContainer = args[2]
	}
	if len(args) > 3 {
		bind.InnermostContainer = args[3]
	}
	b.symbols.Bindings[atom] = append(b.symbols.Bindings[atom], bind)
}

func (b *Builder) handleMapping(args []string) {
	if len(args) == 0 {
		return
	}
	tok, _ := b.firstArgAtomToken()
	atom := args[0]
	b.addAtomToken(atom, tok, program.LocationMapping)
	b.suppress(tok)

	if len(args) < 4 {
		return
	}
	pos, err := strconv.Atoi(args[1])
	if err != nil || pos < 0 {
		b.emit("ERR_MAPPING_POSITION_MUST_BE_INDEX", map[string]string{"position": args[1]}, tok, "")
		return
	}
	if !isKnownColumnType(args[3]) {
		b.emit("ERR_UNKNOWN_MAPPING_COLUMN_TYPE", map[string]string{"type": args[3]}, tok, "")
	}
	b.symbols.Mappings[atom] = append(b.symbols.Mappings[atom], MappingEntry{
		Position:   pos,
		ColumnName: args[2],
		ColumnType: args[3],
	})
}

func (b *Builder) handleTemporal(args []string) {
	if len(args) == 0 {
		return
	}
	tok, _ := b.firstArgAtomToken()
	atom := args[0]
	b.addAtomToken(atom, tok, program.LocationTemporal)
	b.suppress(tok)
	b.symbols.Temporal.Add(atom)
}

func isKnownColumnType(t string) bool {
	switch strings.ToLower(t) {
	case "string", "int", "double", "boolean", "date":
		return true
	default:
		return false
	}
}
