package ppo

import (
	"fmt"

	"github.com/etnz/ppo/knapsack"
)

// SweepPoint is the best benefit reachable with one budget.
type SweepPoint struct {
	Budget     int
	MaxBenefit int
	// Gain is the benefit added since the previous point of the sweep.
	Gain int
}

// Sweep returns the best benefit for the budgets step, 2*step, ... up to
// limit. The last point is always limit.
//
// All points come from a single pass of the dynamic programming recurrence
// that keeps only the last row, so a sweep costs about as much as one
// Optimize call for limit. MaxBenefit never decreases along the sweep.
func Sweep(c *Catalog, limit, step int) ([]SweepPoint, error) {
	if err := checkBudget(limit); err != nil {
		return nil, err
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step %d must be greater than zero", ErrInvalidBudget, step)
	}
	frontier := knapsack.Frontier(c.items(), limit)
	points := make([]SweepPoint, 0, SweepLen(limit, step))
	previous := 0
	for w := step; ; w += step {
		if w > limit {
			w = limit
		}
		points = append(points, SweepPoint{
			Budget:     w,
			MaxBenefit: frontier[w],
			Gain:       frontier[w] - frontier[previous],
		})
		previous = w
		if w == limit {
			return points, nil
		}
	}
}

// SweepLen returns the number of points of a sweep up to limit by step.
func SweepLen(limit, step int) int {
	if limit <= 0 || step <= 0 {
		return 0
	}
	return (limit + step - 1) / step
}

// Saturation returns the smallest budget of the sweep at which it reaches its
// best benefit, or 0 for an empty sweep.
func Saturation(points []SweepPoint) int {
	if len(points) == 0 {
		return 0
	}
	best := points[len(points)-1].MaxBenefit
	for _, p := range points {
		if p.MaxBenefit == best {
			return p.Budget
		}
	}
	return 0
}
