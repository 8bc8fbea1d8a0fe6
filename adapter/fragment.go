package adapter

import (
	"fmt"

	"github.com/vadalog/dlanalyzer/analysis/fragment"
	"github.com/vadalog/dlanalyzer/decorator"
)

// DatalogExistentialName is the internal identifier for "Datalog ∃": the
// unrestricted language, with no decidable-fragment membership check
// applied. It never appears as a diagnostic.Diagnostic.FragmentViolation
// value, since no analyzer targets it.
const DatalogExistentialName = "Datalog ∃"

// fragmentDisplayNames maps the closed set of targetFragment display
// strings (§6) to the internal fragment identifier used as
// diagnostic.Diagnostic.FragmentViolation.
var fragmentDisplayNames = map[string]string{
	decorator.ShowAllViolations:        decorator.ShowAllViolations,
	fragment.PlainDatalogName:          fragment.PlainDatalogName,
	fragment.LinearName:                fragment.LinearName,
	fragment.AfratiLinearName:          fragment.AfratiLinearName,
	fragment.WardedName:                fragment.WardedName,
	fragment.ShyName:                   fragment.ShyName,
	fragment.GuardedName:               fragment.GuardedName,
	fragment.WeaklyGuardedName:         fragment.WeaklyGuardedName,
	fragment.WeaklyFrontierGuardedName: fragment.WeaklyFrontierGuardedName,
	fragment.FrontierGuardedName:       fragment.FrontierGuardedName,
	DatalogExistentialName:             DatalogExistentialName,
}

// DefaultFragment is Warded, per §6.
const DefaultFragment = fragment.WardedName

// ParseFragment resolves a targetFragment display string to its internal
// identifier. An empty string resolves to DefaultFragment. An unrecognized
// display string is a programming error in the caller (the adapter is only
// ever supposed to pass one of its own enum values), so it panics rather
// than returning a sentinel a caller might silently ignore.
func ParseFragment(display string) string {
	if display == "" {
		return DefaultFragment
	}
	name, ok := fragmentDisplayNames[display]
	if !ok {
		panic(fmt.Sprintf("adapter: unrecognized target fragment %q", display))
	}
	return name
}
