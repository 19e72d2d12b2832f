package renderer

import (
	"github.com/etnz/ppo"
)

// PlanView is the data behind the plan report.
type PlanView struct {
	Budget      ppo.Money
	MaxBenefit  int
	Chosen      []ProjectRow
	Used        ppo.Money
	Unused      ppo.Money
	Utilization ppo.Percent
}

// NewPlanView creates the plan report data, amounts in currency.
func NewPlanView(p *ppo.Plan, currency string) *PlanView {
	v := &PlanView{
		Budget:      ppo.M(p.Budget(), currency),
		MaxBenefit:  p.MaxBenefit(),
		Chosen:      make([]ProjectRow, 0),
		Used:        ppo.M(p.UsedBudget(), currency),
		Unused:      ppo.M(p.UnusedBudget(), currency),
		Utilization: p.Utilization(),
	}
	for _, project := range p.Projects() {
		v.Chosen = append(v.Chosen, NewProjectRow(project, currency))
	}
	return v
}
