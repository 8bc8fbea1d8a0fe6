package decorator

import "github.com/vadalog/dlanalyzer/diagnostic"

// ShowAllViolations is the display name meaning "do not filter by
// fragment", matching the adapter's targetFragment vocabulary.
const ShowAllViolations = "Show all violations"

// FilterDiagnostics implements decorator step 5: when a target fragment is
// selected, keep every base/semantic diagnostic (FragmentViolation == "")
// plus only the fragment diagnostics whose FragmentViolation matches it.
// An empty or ShowAllViolations target leaves the list untouched.
func FilterDiagnostics(diags []diagnostic.Diagnostic, targetFragment string) []diagnostic.Diagnostic {
	if targetFragment == "" || targetFragment == ShowAllViolations {
		return diags
	}
	out := make([]diagnostic.Diagnostic, 0, len(diags))
	for _, d := range diags {
		if d.FragmentViolation == "" || d.FragmentViolation == targetFragment {
			out = append(out, d)
		}
	}
	return out
}
