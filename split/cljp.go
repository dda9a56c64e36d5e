// SPDX-License-Identifier: MIT

package split

import (
	"math/rand"

	"github.com/katalvlaran/coarsen/sparse"
)

// DefaultCLJPSeed seeds the pseudo-random weight initialization. Fixed so
// repeated runs over the same strength graph split identically.
const DefaultCLJPSeed int64 = 2448422

// CLJPOption configures the CLJP splitter's weight initialization.
type CLJPOption func(*cljpOptions)

type cljpOptions struct {
	seed     int64
	coloring []int
}

// WithRandomSeed overrides the fixed default seed of the pseudo-random
// weight initialization.
func WithRandomSeed(seed int64) CLJPOption {
	return func(o *cljpOptions) { o.seed = seed }
}

// WithColoring initializes weights from a proper vertex coloring supplied by
// the caller (color index divided by the number of colors), making the
// split independent of any random source. The coloring must cover every
// node with a non-negative color.
func WithColoring(coloring []int) CLJPOption {
	return func(o *cljpOptions) { o.coloring = coloring }
}

// CLJP computes a coarse/fine splitting with the round-based weighted
// maximal-independent-set algorithm of Cleary–Luby–Jones–Plassmann, from the
// strength matrix s and its transpose t.
//
// Weight initialization: a fractional tie-breaker in [0,1) — either
// color/ncolors from a supplied coloring or a seeded pseudo-random draw —
// plus one unit per strong dependent (each off-diagonal entry (i,j) of s
// adds one to weight(j)).
//
// Rounds, until no node is Unassigned:
//  1. Selection: an Unassigned node joins the round's independent set when
//     its (weight, id) pair is strictly greater than that of every
//     Unassigned neighbor in s and t. Members become Coarse only after the
//     whole round is scanned, so every decision sees the round-start state.
//  2. Pass P5: each not-yet-removed s edge from a new Coarse node to an
//     Unassigned neighbor j is removed and weight(j) drops by one; a weight
//     below one demotes j to Fine on the spot.
//  3. Pass P6: for each new Coarse node c, each Unassigned j depending on c
//     records c; then every not-yet-removed s edge k→j where k is
//     Unassigned and also depends on c is removed, decrementing weight(k)
//     with the same below-one demotion.
//
// Tie handling: selection on strict weight maxima alone can stall forever
// when neighboring weights tie exactly, so ties are broken by node id,
// which preserves the independent-set property and guarantees termination. Any node still Unassigned when the
// rounds converge is forced Fine as a defensive fallback.
//
// Complexity: O(rounds × (n + nnz)) time, O(n + nnz) memory.
func CLJP(s, t *sparse.Matrix, splitting Splitting, opts ...CLJPOption) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	n := s.N
	if t.N != n || len(splitting) != n {
		return ErrDimensionMismatch
	}

	o := cljpOptions{seed: DefaultCLJPSeed}
	for _, set := range opts {
		set(&o)
	}

	weight := make([]float64, n)
	if o.coloring != nil {
		if len(o.coloring) != n {
			return ErrBadColoring
		}
		ncolors := 0
		for _, c := range o.coloring {
			if c < 0 {
				return ErrBadColoring
			}
			if c+1 > ncolors {
				ncolors = c + 1
			}
		}
		for i, c := range o.coloring {
			weight[i] = float64(c) / float64(ncolors)
		}
	} else {
		rng := rand.New(rand.NewSource(o.seed))
		for i := range weight {
			weight[i] = rng.Float64()
		}
	}
	// One unit of weight per strong dependent.
	for i := 0; i < n; i++ {
		for jj := s.RowPtr[i]; jj < s.RowPtr[i+1]; jj++ {
			if j := s.ColInd[jj]; j != i {
				weight[j]++
			}
		}
	}

	for i := range splitting {
		splitting[i] = Unassigned
	}
	unassigned := n

	edgeMark := make([]bool, s.NNZ()) // true once an s edge is removed
	inSet := make([]bool, n)
	dList := make([]int, 0, n)
	cDep := make([]int, n) // last Coarse node each node was seen depending on
	for i := range cDep {
		cDep[i] = -1
	}

	// beats reports whether node a outranks node b; exact weight ties fall
	// back to the node id.
	beats := func(a, b int) bool {
		if weight[a] != weight[b] {
			return weight[a] > weight[b]
		}

		return a > b
	}

	for unassigned > 0 {
		// Select the round's independent set against the round-start state.
		dList = dList[:0]
		for i := 0; i < n; i++ {
			if splitting[i] != Unassigned {
				inSet[i] = false
				continue
			}
			inSet[i] = true
			for jj := s.RowPtr[i]; jj < s.RowPtr[i+1]; jj++ {
				if j := s.ColInd[jj]; j != i && splitting[j] == Unassigned && beats(j, i) {
					inSet[i] = false
					break
				}
			}
			if inSet[i] {
				for jj := t.RowPtr[i]; jj < t.RowPtr[i+1]; jj++ {
					if j := t.ColInd[jj]; j != i && splitting[j] == Unassigned && beats(j, i) {
						inSet[i] = false
						break
					}
				}
			}
			if inSet[i] {
				dList = append(dList, i)
				unassigned--
			}
		}
		for _, c := range dList {
			splitting[c] = Coarse
		}

		// P5: neighbors that influence new Coarse nodes lose weight.
		for _, c := range dList {
			for jj := s.RowPtr[c]; jj < s.RowPtr[c+1]; jj++ {
				j := s.ColInd[jj]
				if splitting[j] != Unassigned || edgeMark[jj] {
					continue
				}
				edgeMark[jj] = true
				weight[j]--
				if weight[j] < 1 {
					splitting[j] = Fine
					unassigned--
				}
			}
		}

		// P6: if j and k both depend on a new Coarse node c and k
		// influences j, k is a less valuable Coarse candidate.
		for _, c := range dList {
			for jj := t.RowPtr[c]; jj < t.RowPtr[c+1]; jj++ {
				if j := t.ColInd[jj]; splitting[j] == Unassigned {
					cDep[j] = c
				}
			}
			for jj := t.RowPtr[c]; jj < t.RowPtr[c+1]; jj++ {
				j := t.ColInd[jj]
				for kk := s.RowPtr[j]; kk < s.RowPtr[j+1]; kk++ {
					k := s.ColInd[kk]
					if splitting[k] != Unassigned || edgeMark[kk] || cDep[k] != c {
						continue
					}
					edgeMark[kk] = true
					weight[k]--
					if weight[k] < 1 {
						splitting[k] = Fine
						unassigned--
					}
				}
			}
		}
	}

	// Defensive fallback; unreachable when the weight updates behave.
	for i := range splitting {
		if splitting[i] == Unassigned {
			splitting[i] = Fine
		}
	}

	return nil
}
