// SPDX-License-Identifier: MIT

package split

// Label is the three-state node classification shared by the whole pipeline.
// The numeric values are part of the contract: splitters return binary
// Fine/Coarse arrays, and CoarseMap sums the Coarse indicator directly.
type Label uint8

const (
	// Fine marks a fine-grid node (F-node).
	Fine Label = 0

	// Coarse marks a coarse-grid node (C-node).
	Coarse Label = 1

	// Unassigned marks a node not yet classified. Splitters never return it.
	Unassigned Label = 2
)

// String implements fmt.Stringer for diagnostics.
func (l Label) String() string {
	switch l {
	case Fine:
		return "F"
	case Coarse:
		return "C"
	case Unassigned:
		return "U"
	default:
		return "?"
	}
}

// Splitting is a per-node label array, mutated in place by the splitters.
type Splitting []Label

// NewSplitting returns an all-Unassigned splitting for n nodes.
func NewSplitting(n int) Splitting {
	s := make(Splitting, n)
	for i := range s {
		s[i] = Unassigned
	}

	return s
}

// NumCoarse reports the number of Coarse nodes.
//
// Complexity: O(n).
func (s Splitting) NumCoarse() int {
	nc := 0
	for _, l := range s {
		if l == Coarse {
			nc++
		}
	}

	return nc
}

// Assigned reports whether every node is Coarse or Fine.
func (s Splitting) Assigned() bool {
	for _, l := range s {
		if l != Coarse && l != Fine {
			return false
		}
	}

	return true
}

// CoarseMap returns the exclusive prefix sum of the Coarse indicator — the
// contiguous coarse-grid index of every Coarse node — together with the
// total coarse count. Entries at Fine positions are meaningless and must not
// be consulted.
//
// Complexity: O(n) time and memory.
func (s Splitting) CoarseMap() (coarse []int, numCoarse int) {
	coarse = make([]int, len(s))
	sum := 0
	for i, l := range s {
		coarse[i] = sum
		if l == Coarse {
			sum++
		}
	}

	return coarse, sum
}
