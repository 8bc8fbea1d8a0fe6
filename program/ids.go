package program

import "fmt"

// Node ids are human-readable by convention (a position id literally
// contains "atomName[index]", a variable id names its owning rule) so a
// debugger can read a graph dump without a side table. This file funnels
// every construction through one function per kind, tagged so ids never
// collide across kinds, instead of ad-hoc Sprintf calls scattered through
// the builder.

// RuleID returns the node ID for the ruleIndex'th rule (0-based).
func RuleID(ruleIndex int) string {
	return fmt.Sprintf("rule:%d", ruleIndex)
}

// AtomID returns the node ID for the atom named name.
func AtomID(name string) string {
	return "atom:" + name
}

// PositionID returns the node ID for the position atomName[index].
func PositionID(atomName string, index int) string {
	return fmt.Sprintf("pos:%s[%d]", atomName, index)
}

// VariableID returns the node ID for variable name within rule ruleID.
func VariableID(name, ruleID string) string {
	return fmt.Sprintf("var:%s@%s", name, ruleID)
}

// TokenID returns the node ID for a lexical occurrence at (line, column)
// with the given text length.
func TokenID(line, column, length int) string {
	return fmt.Sprintf("tok:L%dC%dL%d", line, column, length)
}

// EGDID returns the node ID for the n'th EGD head (0-based) of ruleID.
func EGDID(ruleID string, n int) string {
	return fmt.Sprintf("egd:%s#%d", ruleID, n)
}

// ConditionID returns the node ID for the n'th condition (0-based) of ruleID.
func ConditionID(ruleID string, n int) string {
	return fmt.Sprintf("cond:%s#%d", ruleID, n)
}

// AggregationID returns the node ID for the n'th aggregation (0-based) of ruleID.
func AggregationID(ruleID string, n int) string {
	return fmt.Sprintf("agg:%s#%d", ruleID, n)
}
