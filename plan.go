package ppo

import (
	"fmt"

	"github.com/etnz/ppo/knapsack"
)

// Plan is the optimal portfolio of a catalog for a budget.
//
// Plans are derived values, they are recomputed by each Optimize call.
type Plan struct {
	catalog    *Catalog
	budget     int
	maxBenefit int
	chosen     []int // ascending catalog positions
	required   []int // ascending catalog positions, a subset of chosen
}

// solverOptions keeps two dp rows and one decision bit per cell, so that a
// budget of MaxBudget stays within a few tens of megabytes.
var solverOptions = &knapsack.Options{MemoryMode: knapsack.DecisionBits}

// Optimize computes the portfolio of c with the maximum total benefit whose
// total cost is within budget.
//
// A budget that is not positive is rejected with ErrInvalidBudget before any
// computation. Among several portfolios with the same benefit, the one
// reported is fixed by the catalog order: a later project is only preferred
// when it strictly improves the benefit.
func Optimize(c *Catalog, budget int) (*Plan, error) {
	return OptimizeRequired(c, budget)
}

// OptimizeRequired is Optimize with projects that must be funded.
//
// The required projects are paid first, and the rest of the budget is
// optimized over the other projects. It fails with ErrUnknownProject for a
// name that is not in c, and with ErrInvalidBudget when the required projects
// alone cost more than budget. Duplicate names count once.
func OptimizeRequired(c *Catalog, budget int, required ...string) (*Plan, error) {
	if err := checkBudget(budget); err != nil {
		return nil, err
	}

	forced := make([]bool, c.Len())
	left, benefit := budget, 0
	for _, name := range required {
		i, ok := c.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProject, name)
		}
		if forced[i] {
			continue
		}
		forced[i] = true
		left -= c.At(i).cost
		benefit += c.At(i).benefit
	}
	if left < 0 {
		return nil, fmt.Errorf("%w: required projects cost %d, more than %d", ErrInvalidBudget, budget-left, budget)
	}

	// optimize the remaining budget over the projects that are not required
	items := c.items()
	free := make([]knapsack.Item, 0, len(items))
	positions := make([]int, 0, len(items))
	for i, it := range items {
		if !forced[i] {
			free = append(free, it)
			positions = append(positions, i)
		}
	}
	sol := knapsack.SolveWithOptions(free, left, solverOptions)

	taken := make([]bool, len(forced))
	copy(taken, forced)
	for _, j := range sol.Chosen {
		taken[positions[j]] = true
	}
	p := &Plan{
		catalog:    c,
		budget:     budget,
		maxBenefit: benefit + sol.MaxBenefit,
		chosen:     make([]int, 0, len(items)),
	}
	for i := range taken {
		if taken[i] {
			p.chosen = append(p.chosen, i)
		}
		if forced[i] {
			p.required = append(p.required, i)
		}
	}
	return p, nil
}

// Catalog returns the catalog the plan was computed from.
func (p *Plan) Catalog() *Catalog { return p.catalog }

// Budget returns the budget the plan was computed for.
func (p *Plan) Budget() int { return p.budget }

// MaxBenefit returns the total benefit of the chosen projects.
func (p *Plan) MaxBenefit() int { return p.maxBenefit }

// Chosen returns the catalog positions of the chosen projects, ascending.
func (p *Plan) Chosen() []int {
	res := make([]int, len(p.chosen))
	copy(res, p.chosen)
	return res
}

// Required returns the projects that had to be funded, in catalog order.
func (p *Plan) Required() []Project {
	res := make([]Project, 0, len(p.required))
	for _, i := range p.required {
		res = append(res, p.catalog.At(i))
	}
	return res
}

// Projects returns the chosen projects in catalog order.
func (p *Plan) Projects() []Project {
	res := make([]Project, 0, len(p.chosen))
	for _, i := range p.chosen {
		res = append(res, p.catalog.At(i))
	}
	return res
}

// IsEmpty returns true when no project fits in the budget.
func (p *Plan) IsEmpty() bool { return len(p.chosen) == 0 }

// UsedBudget returns the total cost of the chosen projects.
func (p *Plan) UsedBudget() int {
	used := 0
	for _, i := range p.chosen {
		used += p.catalog.At(i).cost
	}
	return used
}

// UnusedBudget returns the part of the budget left over.
func (p *Plan) UnusedBudget() int { return p.budget - p.UsedBudget() }

// Utilization returns the used budget as a percentage of the budget.
func (p *Plan) Utilization() Percent {
	return PercentOf(p.UsedBudget(), p.budget)
}

// MarshalJSON implements the json.Marshaler interface.
func (p *Plan) MarshalJSON() ([]byte, error) {
	chosen := make([]jsonChosen, 0, len(p.chosen))
	for _, i := range p.chosen {
		chosen = append(chosen, jsonChosen{index: i, project: p.catalog.At(i)})
	}
	var w jsonObjectWriter
	w.Append("budget", p.budget)
	w.Append("maxBenefit", p.maxBenefit)
	w.Append("usedBudget", p.UsedBudget())
	w.Append("unusedBudget", p.UnusedBudget())
	w.Append("chosen", chosen)
	w.Optional("required", names(p.Required()))
	return w.MarshalJSON()
}

// names returns the names of projects, nil when there is none.
func names(projects []Project) []string {
	var res []string
	for _, p := range projects {
		res = append(res, p.name)
	}
	return res
}

// jsonChosen is a chosen project with its catalog position.
type jsonChosen struct {
	index   int
	project Project
}

func (c jsonChosen) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("index", c.index)
	w.EmbedFrom(c.project)
	return w.MarshalJSON()
}
