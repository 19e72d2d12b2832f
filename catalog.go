package ppo

import (
	"errors"
	"fmt"

	"github.com/etnz/ppo/knapsack"
)

// ErrDuplicateProject is returned when two projects of a catalog share a name.
var ErrDuplicateProject = errors.New("duplicate project")

// ErrUnknownProject is returned for a project name that is not in the catalog.
var ErrUnknownProject = errors.New("unknown project")

// Catalog is an ordered list of projects with unique names.
//
// The order does not change the optimal benefit, but it decides which of
// several equally good portfolios is reported, and the display order.
type Catalog struct {
	projects []Project
	index    map[string]int
}

// NewCatalog creates a catalog from projects, in that order.
func NewCatalog(projects ...Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, 0, len(projects)),
		index:    make(map[string]int, len(projects)),
	}
	for _, p := range projects {
		if p.name == "" {
			return nil, fmt.Errorf("%w: empty name at position %d", ErrInvalidProject, len(c.projects))
		}
		if _, exists := c.index[p.name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateProject, p.name)
		}
		c.index[p.name] = len(c.projects)
		c.projects = append(c.projects, p)
	}
	return c, nil
}

// DefaultCatalog returns the built-in demo catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		mustProject("Proj_A", 4, 10),
		mustProject("Proj_B", 6, 12),
		mustProject("Proj_C", 5, 8),
		mustProject("Proj_D", 3, 7),
		mustProject("Proj_E", 2, 4),
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of projects.
func (c *Catalog) Len() int { return len(c.projects) }

// At returns the i-th project.
func (c *Catalog) At(i int) Project { return c.projects[i] }

// Projects returns a copy of the projects, in catalog order.
func (c *Catalog) Projects() []Project {
	res := make([]Project, len(c.projects))
	copy(res, c.projects)
	return res
}

// Lookup returns the position of the project named name.
func (c *Catalog) Lookup(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// TotalCost returns the cost of funding every project.
func (c *Catalog) TotalCost() int {
	total := 0
	for _, p := range c.projects {
		total += p.cost
	}
	return total
}

// TotalBenefit returns the benefit of funding every project.
func (c *Catalog) TotalBenefit() int {
	total := 0
	for _, p := range c.projects {
		total += p.benefit
	}
	return total
}

// items converts the catalog into knapsack items, index for index.
func (c *Catalog) items() []knapsack.Item {
	items := make([]knapsack.Item, len(c.projects))
	for i, p := range c.projects {
		items[i] = knapsack.Item{Cost: p.cost, Benefit: p.benefit}
	}
	return items
}
