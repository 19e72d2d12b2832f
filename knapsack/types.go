package knapsack

// Item is one candidate of the selection.
type Item struct {
	Cost    int
	Benefit int
}

// Solution is the result of Solve.
//
// Chosen holds 0-based item indices in strictly ascending order. It is never nil.
type Solution struct {
	MaxBenefit int
	Chosen     []int
}

// MemoryMode controls how the dp table is stored.
type MemoryMode int

const (
	// FullTable keeps all n+1 rows of benefits.
	FullTable MemoryMode = iota

	// DecisionBits keeps two rows of benefits and a bitset of inclusion decisions.
	DecisionBits
)

func (m MemoryMode) String() string {
	switch m {
	case FullTable:
		return "full-table"
	case DecisionBits:
		return "decision-bits"
	default:
		return "unknown"
	}
}

// Options configures SolveWithOptions. A nil *Options means FullTable.
type Options struct {
	MemoryMode MemoryMode
}
