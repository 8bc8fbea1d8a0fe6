package fragment

import (
	"github.com/vadalog/dlanalyzer/diagnostic"
	"github.com/vadalog/dlanalyzer/program"
)

// Shy runs the invasion/attack/protection analysis of the Shy-fragment
// literature: §4.4.8.
func Shy(g *program.Graph) []diagnostic.Diagnostic {
	seedInvasion(g)
	propagateInvasion(g)
	computeAttackAndProtection(g)

	var out []diagnostic.Diagnostic
	out = append(out, s1Condition(g)...)
	out = append(out, s2Condition(g)...)
	return out
}

// seedInvasion marks every head position invadedBy the existential
// variables occupying it.
func seedInvasion(g *program.Graph) {
	for _, v := range g.NodesOfKind(program.KindVariable) {
		if !v.Variable.Existential {
			continue
		}
		for _, e := range g.EdgesFrom(v.ID, program.EdgeVariableAtPosition) {
			if !e.VariableAt.Head {
				continue
			}
			if pos := g.Node(e.To); pos != nil && pos.Position != nil {
				pos.Position.InvadedBy.Add(v.ID)
			}
		}
	}
}

// propagateInvasion is the fixpoint of step 2: a universally quantified
// body variable whose body positions are all invaded propagates the union
// of its body invaders to each of its head positions.
func propagateInvasion(g *program.Graph) {
	for changed := true; changed; {
		changed = false
		for _, v := range g.NodesOfKind(program.KindVariable) {
			if v.Variable.Existential {
				continue
			}
			bodyEdges := g.EdgesFrom(v.ID, program.EdgeVariableAtPosition)
			invaders := program.NewSet[string]()
			anyBody := false
			allInvaded := true
			for _, e := range bodyEdges {
				if e.VariableAt.Head {
					continue
				}
				anyBody = true
				pos := g.Node(e.To)
				if pos == nil || pos.Position == nil || len(pos.Position.InvadedBy) == 0 {
					allInvaded = false
					continue
				}
				invaders = program.Union(invaders, pos.Position.InvadedBy)
			}
			if !anyBody || !allInvaded || len(invaders) == 0 {
				continue
			}
			for _, e := range bodyEdges {
				if !e.VariableAt.Head {
					continue
				}
				pos := g.Node(e.To)
				if pos == nil || pos.Position == nil {
					continue
				}
				for id := range invaders {
					if pos.Position.InvadedBy.Add(id) {
						changed = true
					}
				}
			}
		}
	}
}

// computeAttackAndProtection implements step 3: x is attacked by y iff
// every body position of x is invaded by y; a variable with no attacker is
// protected.
func computeAttackAndProtection(g *program.Graph) {
	for _, v := range g.NodesOfKind(program.KindVariable) {
		if v.Variable.Existential {
			continue
		}
		bodyEdges := g.EdgesFrom(v.ID, program.EdgeVariableAtPosition)
		var bodyInvaders []program.Set[string]
		for _, e := range bodyEdges {
			if e.VariableAt.Head {
				continue
			}
			pos := g.Node(e.To)
			if pos == nil || pos.Position == nil {
				bodyInvaders = append(bodyInvaders, program.NewSet[string]())
				continue
			}
			bodyInvaders = append(bodyInvaders, pos.Position.InvadedBy)
		}
		if len(bodyInvaders) == 0 {
			continue
		}

		attackers := bodyInvaders[0]
		for _, s := range bodyInvaders[1:] {
			intersection := program.NewSet[string]()
			for id := range attackers {
				if s.Has(id) {
					intersection.Add(id)
				}
			}
			attackers = intersection
		}
		v.Variable.AttackedBy = attackers
		v.Variable.Protected = len(attackers) == 0
	}
}

// s1Condition flags every occurrence of a multiply-occurring, unprotected
// body variable.
func s1Condition(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, v := range g.NodesOfKind(program.KindVariable) {
		if v.Variable.Existential || v.Variable.Protected {
			continue
		}
		if len(bodyAtomTokenIDsOf(g, v)) <= 1 {
			continue
		}
		for _, tok := range occurrenceTokensOf(g, v) {
			out = append(out, diagnostic.New("ERR_ATOM_NOT_VIOLATING_SHY_S1_CONDITION",
				map[string]string{"variable": v.Variable.Name}, tokenRange(tok.Token), ShyName))
		}
	}
	return out
}

// s2Condition flags every pair of attacked variables in the same rule that
// share a common attacker, both occur in the head, and both occur in more
// than one distinct body atom-token.
func s2Condition(g *program.Graph) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, ruleID := range ruleIDs(g) {
		var attacked []*program.Node
		for _, v := range g.NodesOfKind(program.KindVariable) {
			if v.Variable.Rule != ruleID || v.Variable.Existential {
				continue
			}
			if len(v.Variable.AttackedBy) == 0 {
				continue
			}
			if !occursInHead(g, v) || len(bodyAtomTokenIDsOf(g, v)) <= 1 {
				continue
			}
			attacked = append(attacked, v)
		}

		for i := 0; i < len(attacked); i++ {
			for j := i + 1; j < len(attacked); j++ {
				x, y := attacked[i], attacked[j]
				if !sharesAttacker(x.Variable.AttackedBy, y.Variable.AttackedBy) {
					continue
				}
				data := map[string]string{"lhs": x.Variable.Name, "rhs": y.Variable.Name}
				for _, tok := range occurrenceTokensOf(g, x) {
					out = append(out, diagnostic.New("ERR_ATOM_NOT_VIOLATING_SHY_S2_CONDITION", data, tokenRange(tok.Token), ShyName))
				}
				for _, tok := range occurrenceTokensOf(g, y) {
					out = append(out, diagnostic.New("ERR_ATOM_NOT_VIOLATING_SHY_S2_CONDITION", data, tokenRange(tok.Token), ShyName))
				}
			}
		}
	}
	return out
}

func sharesAttacker(a, b program.Set[string]) bool {
	for id := range a {
		if b.Has(id) {
			return true
		}
	}
	return false
}
