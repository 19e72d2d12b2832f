// Package knapsack solves the 0/1 knapsack problem by dynamic programming.
//
// Given items with an integer cost and an integer benefit, and a budget,
// Solve returns the best achievable total benefit and the indices of the
// items that reach it.
//
// Algorithm Outline:
//  1. Allocate dp[0..n][0..budget], dp[0][w] = 0.
//  2. For i = 1..n and w = 0..budget:
//     dp[i][w] = dp[i-1][w]
//     if w >= cost[i] and dp[i-1][w-cost[i]] + benefit[i] > dp[i-1][w]:
//     dp[i][w] = dp[i-1][w-cost[i]] + benefit[i]
//  3. MaxBenefit = dp[n][budget].
//  4. Walk i = n..1 at w = budget: item i-1 is chosen iff dp[i][w] != dp[i-1][w],
//     then w -= cost[i-1]. Reverse to get ascending indices.
//
// The comparison in step 2 is strict, so an item whose inclusion only ties
// the row above is left out. The chosen set is therefore fully determined
// by the item order.
//
// Memory Modes:
//   - FullTable: keep every dp row. Memory: O(n·budget) ints.
//   - DecisionBits: keep two rows of values and one inclusion bit per cell.
//     Memory: O(budget) ints + O(n·budget) bits. Same chosen set as FullTable.
//
// Frontier runs the same recurrence with two rows only, for callers that
// need the best benefit of every budget but no chosen set.
//
// Complexity:
//
//	Time   = O(n·budget)
//	Memory = see Memory Modes
//
// Solve is a pure function: every call owns its table, so concurrent calls
// on independent inputs need no synchronization.
package knapsack
