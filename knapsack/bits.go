package knapsack

// bitset is a fixed size set of bits.
type bitset []uint64

func newBitset(n int) bitset { return make(bitset, (n+63)/64) }

func (b bitset) set(i int)      { b[i/64] |= 1 << (uint(i) % 64) }
func (b bitset) has(i int) bool { return b[i/64]&(1<<(uint(i)%64)) != 0 }

// solveBits runs the same recurrence as NewTable with two value rows, and
// records per cell whether item i was taken. A cell is marked exactly when
// the strict comparison succeeds, which is when dp[i][w] != dp[i-1][w].
func solveBits(items []Item, budget int) Solution {
	n := len(items)
	prev := make([]int, budget+1)
	curr := make([]int, budget+1)
	taken := make([]bitset, n+1)

	for i := 1; i <= n; i++ {
		cost, benefit := items[i-1].Cost, items[i-1].Benefit
		row := newBitset(budget + 1)
		for w := 0; w <= budget; w++ {
			curr[w] = prev[w]
			if w >= cost {
				if candidate := prev[w-cost] + benefit; candidate > curr[w] {
					curr[w] = candidate
					row.set(w)
				}
			}
		}
		taken[i] = row
		prev, curr = curr, prev
	}

	chosen := make([]int, 0, n)
	w := budget
	for i := n; i >= 1; i-- {
		if taken[i].has(w) {
			chosen = append(chosen, i-1)
			w -= items[i-1].Cost
		}
	}
	reverse(chosen)
	return Solution{MaxBenefit: prev[budget], Chosen: chosen}
}
