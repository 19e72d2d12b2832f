package knapsack

import "fmt"

// Solve returns the maximum total benefit of a subset of items whose total
// cost does not exceed budget, and the indices of that subset.
//
// A negative budget is handled as 0. Solve panics if an item has a negative cost.
//
// Example:
//
//	items := []Item{{Cost: 4, Benefit: 10}, {Cost: 6, Benefit: 12}}
//	sol := Solve(items, 10)
//	fmt.Println(sol.MaxBenefit, sol.Chosen) // 22 [0 1]
func Solve(items []Item, budget int) Solution {
	return SolveWithOptions(items, budget, nil)
}

// SolveWithOptions is Solve with an explicit storage strategy.
// Every MemoryMode returns the same Solution.
func SolveWithOptions(items []Item, budget int, opts *Options) Solution {
	checkItems(items)
	if budget < 0 {
		budget = 0
	}
	mode := FullTable
	if opts != nil {
		mode = opts.MemoryMode
	}
	switch mode {
	case DecisionBits:
		return solveBits(items, budget)
	default:
		t := NewTable(items, budget)
		return Solution{MaxBenefit: t.Best(budget), Chosen: t.Chosen(budget)}
	}
}

// Table is a filled dp table: rows[i][w] is the best benefit using the first
// i items with a total cost of at most w.
type Table struct {
	items []Item
	rows  [][]int
}

// NewTable fills the dp table for items up to budget.
// A negative budget is handled as 0. NewTable panics if an item has a negative cost.
func NewTable(items []Item, budget int) *Table {
	checkItems(items)
	if budget < 0 {
		budget = 0
	}
	n := len(items)
	rows := make([][]int, n+1)
	for i := range rows {
		rows[i] = make([]int, budget+1)
	}

	for i := 1; i <= n; i++ {
		cost, benefit := items[i-1].Cost, items[i-1].Benefit
		prev, curr := rows[i-1], rows[i]
		for w := 0; w <= budget; w++ {
			curr[w] = prev[w]
			if w >= cost {
				if candidate := prev[w-cost] + benefit; candidate > curr[w] {
					curr[w] = candidate
				}
			}
		}
	}
	return &Table{items: items, rows: rows}
}

// Budget returns the largest budget the table was filled for.
func (t *Table) Budget() int { return len(t.rows[0]) - 1 }

// Best returns the best benefit for budget w, 0 <= w <= t.Budget().
func (t *Table) Best(w int) int { return t.rows[len(t.items)][w] }

// Frontier returns the best benefit for every budget from 0 to t.Budget().
// It is non-decreasing.
func (t *Table) Frontier() []int {
	last := t.rows[len(t.items)]
	frontier := make([]int, len(last))
	copy(frontier, last)
	return frontier
}

// Frontier returns the best benefit for every budget from 0 to budget,
// the same values as NewTable(items, budget).Frontier(), keeping only two rows.
func Frontier(items []Item, budget int) []int {
	checkItems(items)
	if budget < 0 {
		budget = 0
	}
	prev := make([]int, budget+1)
	curr := make([]int, budget+1)
	for _, it := range items {
		for w := 0; w <= budget; w++ {
			curr[w] = prev[w]
			if w >= it.Cost {
				if candidate := prev[w-it.Cost] + it.Benefit; candidate > curr[w] {
					curr[w] = candidate
				}
			}
		}
		prev, curr = curr, prev
	}
	return prev
}

// Chosen reconstructs the ascending indices of the items behind Best(w).
func (t *Table) Chosen(w int) []int {
	chosen := make([]int, 0, len(t.items))
	for i := len(t.items); i >= 1; i-- {
		if t.rows[i][w] != t.rows[i-1][w] {
			chosen = append(chosen, i-1)
			w -= t.items[i-1].Cost
		}
	}
	reverse(chosen)
	return chosen
}

func checkItems(items []Item) {
	for i, it := range items {
		if it.Cost < 0 {
			panic(fmt.Sprintf("knapsack: item %d has negative cost %d", i, it.Cost))
		}
	}
}

// reverse reverses s in place.
func reverse(s []int) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
