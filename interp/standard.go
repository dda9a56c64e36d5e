// SPDX-License-Identifier: MIT

package interp

import (
	"math"

	"github.com/katalvlaran/coarsen/sparse"
	"github.com/katalvlaran/coarsen/split"
)

// Standard builds the classical Ruge–Stüben interpolation operator. A Fine
// row interpolates from its strong Coarse neighbors; each strong Fine
// neighbor k redistributes its coupling a_ik through k's connections to the
// row's strong Coarse set:
//
//	w_ij = -( a_ij + Σ_k a_ik·a_kj / Σ_l a_kl ) / ( a_ii + Σ_weak a_im )
//
// with k over strong Fine neighbors and l over the row's strong Coarse
// neighbors. s must hold the values of a on its surviving entries.
//
// Near-zero denominators are tallied in the returned Diagnostics; the
// division proceeds regardless, so a degenerate input yields non-finite
// weights rather than an error.
func Standard(a, s *sparse.Matrix, splitting split.Splitting) (*sparse.Matrix, Diagnostics, error) {
	return standardInterpolation(a, s, splitting, false)
}

// ModifiedStandard builds the standard operator with sign filtering: any
// second-level coupling a_kj or a_kl whose sign matches k's diagonal a_kk is
// discarded. The modification covers strong Fine–Fine connections without a
// common Coarse neighbor, so FilterStrongFF must run on s first.
func ModifiedStandard(a, s *sparse.Matrix, splitting split.Splitting) (*sparse.Matrix, Diagnostics, error) {
	return standardInterpolation(a, s, splitting, true)
}

func standardInterpolation(a, s *sparse.Matrix, splitting split.Splitting, signFilter bool) (*sparse.Matrix, Diagnostics, error) {
	var diag Diagnostics
	if err := validate(a, s, splitting); err != nil {
		return nil, diag, err
	}

	p := newProlongator(a.N, distanceOnePass1(s, splitting))
	for i := 0; i < a.N; i++ {
		if splitting[i] == split.Coarse {
			p.ColInd[p.RowPtr[i]] = i
			p.Values[p.RowPtr[i]] = 1

			continue
		}

		// Outer denominator: a_ii plus the weak couplings, i.e. the full row
		// of A minus the strong off-diagonal connections.
		var denominator float64
		_, avals := a.Row(i)
		for _, v := range avals {
			denominator += v
		}
		scols, svals := s.Row(i)
		for idx, j := range scols {
			if j != i {
				denominator -= svals[idx]
			}
		}

		nnz := p.RowPtr[i]
		for idx, j := range scols {
			if splitting[j] != split.Coarse {
				continue
			}
			p.ColInd[nnz] = j

			numerator := svals[idx]
			for kdx, k := range scols {
				if splitting[k] != split.Fine || k == i {
					continue
				}
				aik := svals[kdx]
				akj, akk := coeffAndDiag(a, k, j)
				if signFilter {
					akj = signFiltered(akj, akk)
				}
				if math.Abs(akj) <= degenerateEps {
					continue
				}
				var inner float64
				if signFilter {
					inner = filteredInner(a, splitting, scols, k, akk)
				} else {
					inner = plainInner(a, splitting, scols, k)
				}
				diag.checkInner(inner)
				numerator += aik * akj / inner
			}

			diag.checkOuter(denominator)
			p.Values[nnz] = -numerator / denominator
			nnz++
		}
	}
	remapColumns(p, splitting)

	return p, diag, nil
}

// plainInner sums a_kl over the row's strong Coarse neighbors l, accumulating
// every stored duplicate of a column.
func plainInner(a *sparse.Matrix, splitting split.Splitting, scols []int, k int) float64 {
	var inner float64
	acols, avals := a.Row(k)
	for _, l := range scols {
		if splitting[l] != split.Coarse {
			continue
		}
		for idx, c := range acols {
			if c == l {
				inner += avals[idx]
			}
		}
	}

	return inner
}

// filteredInner is plainInner restricted to couplings whose sign differs from
// the diagonal a_kk; only the first stored entry of a column counts.
func filteredInner(a *sparse.Matrix, splitting split.Splitting, scols []int, k int, akk float64) float64 {
	var inner float64
	for _, l := range scols {
		if splitting[l] != split.Coarse {
			continue
		}
		inner += signFiltered(a.At(k, l), akk)
	}

	return inner
}
