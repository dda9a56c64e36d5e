// SPDX-License-Identifier: MIT

package interp

import (
	"github.com/katalvlaran/coarsen/sparse"
	"github.com/katalvlaran/coarsen/split"
)

// Direct builds the direct interpolation operator: each Fine row draws only
// from its strong Coarse neighbors, with the classical two-ratio scaling
//
//	alpha = Σ_all a_ij^- / Σ_strongC a_ij^-   (negative couplings)
//	beta  = Σ_all a_ij^+ / Σ_strongC a_ij^+   (positive couplings)
//	w_ij  = -alpha·a_ij/a_ii  or  -beta·a_ij/a_ii
//
// When a row has no strong positive Coarse coupling, its positive mass is
// folded into the diagonal and beta is zeroed. Negative couplings get no such
// fallback: a row whose negative mass has no strong Coarse counterpart
// divides by zero and produces non-finite weights, which is the classical
// formula's behavior on inputs that violate its heuristic assumptions.
//
// s must hold the values of a on its surviving entries. Coarse rows
// interpolate by injection. Column indices of the result are coarse-grid ids.
//
// Complexity: O(n + nnz(A) + nnz(S)).
func Direct(a, s *sparse.Matrix, splitting split.Splitting) (*sparse.Matrix, error) {
	if err := validate(a, s, splitting); err != nil {
		return nil, err
	}

	p := newProlongator(a.N, distanceOnePass1(s, splitting))
	for i := 0; i < a.N; i++ {
		if splitting[i] == split.Coarse {
			p.ColInd[p.RowPtr[i]] = i
			p.Values[p.RowPtr[i]] = 1

			continue
		}

		// Strong Coarse couplings, split by sign.
		var sumStrongNeg, sumStrongPos float64
		scols, svals := s.Row(i)
		for idx, j := range scols {
			if splitting[j] != split.Coarse || j == i {
				continue
			}
			if svals[idx] < 0 {
				sumStrongNeg += svals[idx]
			} else {
				sumStrongPos += svals[idx]
			}
		}

		// Full row of A, split by sign, diagonal separate.
		var sumAllNeg, sumAllPos, diag float64
		acols, avals := a.Row(i)
		for idx, j := range acols {
			switch {
			case j == i:
				diag += avals[idx]
			case avals[idx] < 0:
				sumAllNeg += avals[idx]
			default:
				sumAllPos += avals[idx]
			}
		}

		alpha := sumAllNeg / sumStrongNeg
		beta := sumAllPos / sumStrongPos
		if sumStrongPos == 0 {
			diag += sumAllPos
			beta = 0
		}
		negCoeff := -alpha / diag
		posCoeff := -beta / diag

		nnz := p.RowPtr[i]
		for idx, j := range scols {
			if splitting[j] != split.Coarse || j == i {
				continue
			}
			p.ColInd[nnz] = j
			if svals[idx] < 0 {
				p.Values[nnz] = negCoeff * svals[idx]
			} else {
				p.Values[nnz] = posCoeff * svals[idx]
			}
			nnz++
		}
	}
	remapColumns(p, splitting)

	return p, nil
}
