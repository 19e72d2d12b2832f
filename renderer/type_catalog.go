package renderer

import (
	"github.com/etnz/ppo"
)

// CatalogView is the data behind the catalog report.
// Amounts are ppo.Money so that they print in the report currency.
type CatalogView struct {
	Rows         []ProjectRow
	TotalCost    ppo.Money
	TotalBenefit int
}

// ProjectRow is one project line of a report.
type ProjectRow struct {
	Name       string
	Cost       ppo.Money
	Benefit    int
	Efficiency string // benefit per cost, "-" for free projects
}

// NewProjectRow creates the report line of p.
func NewProjectRow(p ppo.Project, currency string) ProjectRow {
	efficiency := "-"
	if ratio, ok := p.Efficiency(); ok {
		efficiency = ratio.StringFixed(2)
	}
	return ProjectRow{
		Name:       p.Name(),
		Cost:       ppo.M(p.Cost(), currency),
		Benefit:    p.Benefit(),
		Efficiency: efficiency,
	}
}

// NewCatalogView creates the catalog report data, amounts in currency.
func NewCatalogView(c *ppo.Catalog, currency string) *CatalogView {
	v := &CatalogView{
		Rows:         make([]ProjectRow, 0, c.Len()),
		TotalCost:    ppo.M(c.TotalCost(), currency),
		TotalBenefit: c.TotalBenefit(),
	}
	for _, p := range c.Projects() {
		v.Rows = append(v.Rows, NewProjectRow(p, currency))
	}
	return v
}
