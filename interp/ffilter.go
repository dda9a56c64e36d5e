// SPDX-License-Identifier: MIT

package interp

import (
	"github.com/katalvlaran/coarsen/sparse"
	"github.com/katalvlaran/coarsen/split"
)

// FilterStrongFF zeroes the value of every strong Fine–Fine connection whose
// endpoints share no strong Coarse neighbor. The sparsity structure of s is
// untouched, so the operation is idempotent: the dependence test reads
// structure and labels only, never the values being zeroed.
//
// ModifiedStandard assumes this filter has run; without it the modified
// formula has no derivation for such connections.
//
// Steps:
//
//  1. For each Fine row i and each strong Fine neighbor j.
//  2. Scan row i's strong Coarse neighbors and test membership in row j.
//  3. No common Coarse neighbor ⇒ s.Values at (i,j) becomes 0.
//
// Complexity: O(Σ_i nnz(S_i)² · max row) in the worst case; in practice rows
// are short and the first common neighbor ends the scan.
func FilterStrongFF(s *sparse.Matrix, splitting split.Splitting) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if len(splitting) != s.N {
		return ErrDimensionMismatch
	}
	if !splitting.Assigned() {
		return ErrUnassignedSplitting
	}

	for i := 0; i < s.N; i++ {
		if splitting[i] != split.Fine {
			continue
		}
		lo, hi := s.RowPtr[i], s.RowPtr[i+1]
		for jj := lo; jj < hi; jj++ {
			j := s.ColInd[jj]
			if splitting[j] != split.Fine {
				continue
			}
			if !shareCoarseNeighbor(s, splitting, i, j) {
				s.Values[jj] = 0
			}
		}
	}

	return nil
}

// shareCoarseNeighbor reports whether some strong Coarse neighbor of i also
// appears in row j of s.
func shareCoarseNeighbor(s *sparse.Matrix, splitting split.Splitting, i, j int) bool {
	icols, _ := s.Row(i)
	jcols, _ := s.Row(j)
	for _, c := range icols {
		if splitting[c] != split.Coarse {
			continue
		}
		for _, jc := range jcols {
			if jc == c {
				return true
			}
		}
	}

	return false
}
