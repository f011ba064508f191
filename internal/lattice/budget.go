package lattice

import "binomial-pricer/internal/model"

// Nodes is the number of option values one Price call computes at steps.
// Step counts the pricer would reject count as zero.
func (lp *LatticePricer) Nodes(steps int) int64 {
	if steps < 1 || steps > lp.Limit() {
		return 0
	}
	n := int64(steps)
	if lp.representation() == model.RepresentationRecombining {
		return (n + 1) * (n + 2) / 2
	}
	return 1<<(n+1) - 1
}

// CheckBudget fails when pricing once per entry of steps would compute
// more than maxNodes nodes in total. maxNodes <= 0 disables the check.
func (lp *LatticePricer) CheckBudget(steps []int, maxNodes int64) error {
	if maxNodes <= 0 {
		return nil
	}
	var total int64
	for _, s := range steps {
		total += lp.Nodes(s)
	}
	if total > maxNodes {
		return &model.WorkBudgetError{Nodes: total, MaxNodes: maxNodes}
	}
	return nil
}
