package knapsack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// demoItems is the catalog of the ppo demo: A(4,10) B(6,12) C(5,8) D(3,7) E(2,4).
var demoItems = []Item{
	{Cost: 4, Benefit: 10},
	{Cost: 6, Benefit: 12},
	{Cost: 5, Benefit: 8},
	{Cost: 3, Benefit: 7},
	{Cost: 2, Benefit: 4},
}

var modes = []MemoryMode{FullTable, DecisionBits}

// bruteForce enumerates every subset and returns the best benefit within budget.
func bruteForce(items []Item, budget int) int {
	best := 0
	for mask := 0; mask < 1<<len(items); mask++ {
		cost, benefit := 0, 0
		for i, it := range items {
			if mask&(1<<i) != 0 {
				cost += it.Cost
				benefit += it.Benefit
			}
		}
		if cost <= budget && benefit > best {
			best = benefit
		}
	}
	return best
}

func TestSolve_Golden(t *testing.T) {
	tests := []struct {
		budget int
		want   Solution
	}{
		{0, Solution{0, []int{}}},
		{1, Solution{0, []int{}}},
		{2, Solution{4, []int{4}}},
		{3, Solution{7, []int{3}}},
		{5, Solution{11, []int{3, 4}}},
		{7, Solution{17, []int{0, 3}}},
		{9, Solution{21, []int{0, 3, 4}}},
		{10, Solution{22, []int{0, 1}}},
		{12, Solution{26, []int{0, 1, 4}}},
		{15, Solution{33, []int{0, 1, 3, 4}}},
		{20, Solution{41, []int{0, 1, 2, 3, 4}}},
		{30, Solution{41, []int{0, 1, 2, 3, 4}}},
	}
	for _, mode := range modes {
		for _, tc := range tests {
			got := SolveWithOptions(demoItems, tc.budget, &Options{MemoryMode: mode})
			assert.Equal(t, tc.want, got, "mode=%s budget=%d", mode, tc.budget)
		}
	}
}

func TestSolve_TiesFavorExclusion(t *testing.T) {
	// Z alone ties X+Y at budget 4: Z is not strictly better, so X and Y are reported.
	items := []Item{{Cost: 2, Benefit: 5}, {Cost: 2, Benefit: 5}, {Cost: 4, Benefit: 10}}
	for _, mode := range modes {
		opts := &Options{MemoryMode: mode}
		assert.Equal(t, Solution{10, []int{0, 1}}, SolveWithOptions(items, 4, opts), mode.String())
		assert.Equal(t, Solution{15, []int{0, 2}}, SolveWithOptions(items, 6, opts), mode.String())
	}
}

func TestSolve_Degenerate(t *testing.T) {
	for _, mode := range modes {
		opts := &Options{MemoryMode: mode}

		sol := SolveWithOptions(nil, 10, opts)
		assert.Equal(t, 0, sol.MaxBenefit)
		require.NotNil(t, sol.Chosen)
		assert.Empty(t, sol.Chosen)

		sol = SolveWithOptions(demoItems, 0, opts)
		assert.Equal(t, Solution{0, []int{}}, sol)

		sol = SolveWithOptions(demoItems, -3, opts)
		assert.Equal(t, Solution{0, []int{}}, sol)
	}
}

func TestSolve_ZeroCost(t *testing.T) {
	items := []Item{{Cost: 0, Benefit: 3}, {Cost: 0, Benefit: 0}, {Cost: 1, Benefit: 0}}
	for _, mode := range modes {
		opts := &Options{MemoryMode: mode}
		assert.Equal(t, Solution{3, []int{0}}, SolveWithOptions(items, 0, opts))
		assert.Equal(t, Solution{3, []int{0}}, SolveWithOptions(items, 1, opts))
	}
}

func TestSolve_NegativeCostPanics(t *testing.T) {
	assert.Panics(t, func() { Solve([]Item{{Cost: -1, Benefit: 1}}, 5) })
}

func TestSolve_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(13)
		items := make([]Item, n)
		for i := range items {
			items[i] = Item{Cost: rng.Intn(15), Benefit: rng.Intn(30)}
		}
		budget := rng.Intn(40)

		full := SolveWithOptions(items, budget, &Options{MemoryMode: FullTable})
		bits := SolveWithOptions(items, budget, &Options{MemoryMode: DecisionBits})
		require.Equal(t, full, bits, "memory modes disagree on %v budget=%d", items, budget)

		require.Equal(t, bruteForce(items, budget), full.MaxBenefit, "items=%v budget=%d", items, budget)

		cost, benefit := 0, 0
		for k, idx := range full.Chosen {
			if k > 0 {
				require.Greater(t, idx, full.Chosen[k-1], "chosen not strictly ascending: %v", full.Chosen)
			}
			cost += items[idx].Cost
			benefit += items[idx].Benefit
		}
		require.LessOrEqual(t, cost, budget)
		require.Equal(t, full.MaxBenefit, benefit)
	}
}

func TestTable_Frontier(t *testing.T) {
	table := NewTable(demoItems, 20)
	want := []int{0, 0, 4, 7, 10, 11, 14, 17, 17, 21, 22, 23, 26, 29, 29, 33, 33, 34, 37, 37, 41}
	assert.Equal(t, want, table.Frontier())
	assert.Equal(t, 20, table.Budget())

	frontier := table.Frontier()
	for w := 1; w < len(frontier); w++ {
		assert.GreaterOrEqual(t, frontier[w], frontier[w-1], "frontier decreases at budget %d", w)
		assert.Equal(t, frontier[w], Solve(demoItems, w).MaxBenefit)
		assert.Equal(t, Solve(demoItems, w).Chosen, table.Chosen(w))
	}

	// the returned frontier is a copy
	frontier[20] = -1
	assert.Equal(t, 41, table.Best(20))
}

func TestFrontier(t *testing.T) {
	assert.Equal(t, NewTable(demoItems, 20).Frontier(), Frontier(demoItems, 20))
	assert.Equal(t, []int{0}, Frontier(demoItems, -3))
	assert.Equal(t, []int{0, 0, 0}, Frontier(nil, 2))

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 100; trial++ {
		items := make([]Item, rng.Intn(8))
		for i := range items {
			items[i] = Item{Cost: rng.Intn(7), Benefit: rng.Intn(20)}
		}
		budget := rng.Intn(25)
		require.Equal(t, NewTable(items, budget).Frontier(), Frontier(items, budget), "items=%v budget=%d", items, budget)
	}
}

func TestMemoryMode_String(t *testing.T) {
	assert.Equal(t, "full-table", FullTable.String())
	assert.Equal(t, "decision-bits", DecisionBits.String())
	assert.Equal(t, "unknown", MemoryMode(7).String())
}
