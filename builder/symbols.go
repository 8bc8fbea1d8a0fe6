package builder

import "github.com/vadalog/dlanalyzer/program"

// Binding is one @bind/@qbind declaration for an atom: where its data comes
// from and, for @qbind, the query container nesting the source resolves
// through.
type Binding struct {
	AtomName            string
	DataSource          string
	OutermostContainer  string
	InnermostContainer  string
	IsQuery             bool
}

// MappingEntry is one positional column of an @mapping declaration.
type MappingEntry struct {
	Position   int
	ColumnName string
	ColumnType string
}

// SymbolTables accumulates the builder's annotation-driven bookkeeping,
// separate from the program graph because none of it is itself graph data:
// it exists purely to answer query-helper and semantic-analyzer questions
// like "does this atom have a binding" without a graph traversal.
type SymbolTables struct {
	OutputAtomNames program.Set[string]
	InputAtomNames  program.Set[string]
	AtomBindings    program.Set[string]

	Bindings map[string][]Binding
	Mappings map[string][]MappingEntry

	// DuplicateOutputRules maps an atom name to every @output token beyond
	// the first, so the semantic analyzer can flag all of them at once.
	DuplicateOutputRules map[string][]string // token IDs

	ModulePath    string
	HasModulePath bool

	// Exports records atoms declared via @exports, consulted by the
	// unused-atom semantic check alongside @output.
	Exports program.Set[string]

	// Temporal records atoms declared via @temporal, consulted by the
	// temporal-propagation semantic check.
	Temporal program.Set[string]
}

func newSymbolTables() SymbolTables {
	return SymbolTables{
		OutputAtomNames:      program.NewSet[string](),
		InputAtomNames:       program.NewSet[string](),
		AtomBindings:         program.NewSet[string](),
		Bindings:             make(map[string][]Binding),
		Mappings:             make(map[string][]MappingEntry),
		DuplicateOutputRules: make(map[string][]string),
		Exports:              program.NewSet[string](),
		Temporal:             program.NewSet[string](),
	}
}
