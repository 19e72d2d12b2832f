// Package ppo selects the project portfolio that brings the most benefit
// within a budget.
//
// The core functionalities include:
//   - Catalog: an ordered, immutable list of candidate projects, each with a
//     cost and an expected benefit. DefaultCatalog is the built-in demo list.
//   - Budget validation: ParseBudget is the boundary check applied to user
//     input before any optimization runs.
//   - Optimization: Optimize solves the 0/1 knapsack problem over a catalog
//     and returns a Plan with the chosen projects, used and unused budget.
//   - Sweep: the best benefit for every budget up to a limit, computed from a
//     single dynamic programming table.
//   - JSON: plans encode to a stable, ordered JSON form that Query can
//     inspect with JSONPath expressions.
//
// The algorithm itself lives in package knapsack. This package serves as the
// foundational logic for the `ppo` command-line tool.
package ppo
