package ppo

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidProject is returned when a project definition is out of the supported domain.
var ErrInvalidProject = errors.New("invalid project")

// Project is a candidate of the portfolio. It is immutable.
type Project struct {
	name    string
	cost    int
	benefit int
}

// NewProject returns a new Project, cost and benefit must be non-negative.
func NewProject(name string, cost, benefit int) (Project, error) {
	if name == "" {
		return Project{}, fmt.Errorf("%w: empty name", ErrInvalidProject)
	}
	if cost < 0 {
		return Project{}, fmt.Errorf("%w: %q has a negative cost %d", ErrInvalidProject, name, cost)
	}
	if benefit < 0 {
		return Project{}, fmt.Errorf("%w: %q has a negative benefit %d", ErrInvalidProject, name, benefit)
	}
	return Project{name: name, cost: cost, benefit: benefit}, nil
}

// mustProject is NewProject for static definitions.
func mustProject(name string, cost, benefit int) Project {
	p, err := NewProject(name, cost, benefit)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Project) Name() string { return p.name }
func (p Project) Cost() int    { return p.cost }
func (p Project) Benefit() int { return p.benefit }

// Efficiency returns the benefit per unit of cost.
// ok is false for a project that costs nothing.
func (p Project) Efficiency() (ratio decimal.Decimal, ok bool) {
	if p.cost == 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(int64(p.benefit)).Div(decimal.NewFromInt(int64(p.cost))), true
}

func (p Project) String() string {
	return fmt.Sprintf("%s(cost=%d, benefit=%d)", p.name, p.cost, p.benefit)
}

// MarshalJSON implements the json.Marshaler interface.
func (p Project) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", p.name)
	w.Append("cost", p.cost)
	w.Append("benefit", p.benefit)
	return w.MarshalJSON()
}
