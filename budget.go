package ppo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidBudget is returned for a budget that cannot be optimized for.
var ErrInvalidBudget = errors.New("invalid budget")

// MaxBudget bounds the budget. Solving for it keeps two rows of MaxBudget+1
// benefits in memory.
const MaxBudget = 1_000_000

// ParseBudget parses a user supplied budget.
//
// The budget must be a positive whole number not above MaxBudget. Spaces
// around the number and trailing zero decimals ("10.0") are accepted.
func ParseBudget(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidBudget)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidBudget, s)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidBudget, s)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: %q must be greater than zero", ErrInvalidBudget, s)
	}
	if d.GreaterThan(decimal.NewFromInt(MaxBudget)) {
		return 0, fmt.Errorf("%w: %q exceeds the maximum of %d", ErrInvalidBudget, s, MaxBudget)
	}
	return int(d.IntPart()), nil
}

// checkBudget is the in-process version of ParseBudget.
func checkBudget(budget int) error {
	if budget <= 0 {
		return fmt.Errorf("%w: %d must be greater than zero", ErrInvalidBudget, budget)
	}
	if budget > MaxBudget {
		return fmt.Errorf("%w: %d exceeds the maximum of %d", ErrInvalidBudget, budget, MaxBudget)
	}
	return nil
}
