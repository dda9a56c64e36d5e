// SPDX-License-Identifier: MIT

package interp

import (
	"math"

	"github.com/katalvlaran/coarsen/sparse"
	"github.com/katalvlaran/coarsen/split"
)

// Extended builds the distance-two "extended" interpolation operator. A Fine
// row interpolates from its strong Coarse neighbors and, through each strong
// Fine neighbor, from that neighbor's strong Coarse set. All second-level
// couplings are sign-filtered against the fine neighbor's diagonal, as in
// ModifiedStandard. s must hold the values of a on its surviving entries.
//
// The outer denominator removes from the weak-connection sum any distance-two
// Coarse target that also happens to be a distance-one weak connection; the
// subtraction is applied once per path, so a target reachable through several
// Fine neighbors is subtracted several times, exactly as the formula
// prescribes for the unmerged path expansion.
//
// Coarse columns reachable along several paths produce one P entry per path;
// duplicates carry consistent weights and sum correctly under any CSR
// consumer that accumulates duplicates.
func Extended(a, s *sparse.Matrix, splitting split.Splitting) (*sparse.Matrix, Diagnostics, error) {
	return extendedInterpolation(a, s, splitting, false)
}

// ExtendedPlusSelf builds the "extended+i" variant: each strong Fine
// neighbor's back-coupling a_ki to the row is folded into the inner
// denominators, and the outer denominator gains Σ_k a_ik·a_ki / inner(k)
// over the strong Fine neighbors.
func ExtendedPlusSelf(a, s *sparse.Matrix, splitting split.Splitting) (*sparse.Matrix, Diagnostics, error) {
	return extendedInterpolation(a, s, splitting, true)
}

func extendedInterpolation(a, s *sparse.Matrix, splitting split.Splitting, plusSelf bool) (*sparse.Matrix, Diagnostics, error) {
	var diag Diagnostics
	if err := validate(a, s, splitting); err != nil {
		return nil, diag, err
	}

	p := newProlongator(a.N, distanceTwoPass1(s, splitting))
	for i := 0; i < a.N; i++ {
		if splitting[i] == split.Coarse {
			p.ColInd[p.RowPtr[i]] = i
			p.Values[p.RowPtr[i]] = 1

			continue
		}
		scols, svals := s.Row(i)

		// Outer denominator: full row of A, minus strong off-diagonal
		// connections, minus distance-two Coarse targets still sitting among
		// the weak connections.
		var denominator float64
		_, avals := a.Row(i)
		for _, v := range avals {
			denominator += v
		}
		for idx, j := range scols {
			if j != i {
				denominator -= svals[idx]
			}
			if splitting[j] == split.Fine && j != i {
				d2cols, _ := s.Row(j)
				for _, d2 := range d2cols {
					if splitting[d2] == split.Coarse {
						denominator -= a.At(i, d2)
					}
				}
			}
		}

		if plusSelf {
			for kdx, k := range scols {
				if splitting[k] != split.Fine || k == i {
					continue
				}
				aik := svals[kdx]
				aki, akk := coeffAndDiag(a, k, i)
				aki = signFiltered(aki, akk)
				if math.Abs(aki) <= degenerateEps {
					continue
				}
				inner := d2Inner(a, s, splitting, scols, i, k, akk) + aki
				diag.checkInner(inner)
				denominator += aik * aki / inner
			}
		}

		nnz := p.RowPtr[i]
		for jdx, neighbor := range scols {
			switch {
			case splitting[neighbor] == split.Coarse:
				numerator := extendedNumerator(a, s, splitting, scols, svals, i, neighbor, svals[jdx], plusSelf, &diag)
				diag.checkOuter(denominator)
				p.ColInd[nnz] = neighbor
				p.Values[nnz] = -numerator / denominator
				nnz++
			case neighbor != i:
				d2cols, _ := s.Row(neighbor)
				for _, neighbor2 := range d2cols {
					if splitting[neighbor2] != split.Coarse {
						continue
					}
					numerator := extendedNumerator(a, s, splitting, scols, svals, i, neighbor2, a.At(i, neighbor2), plusSelf, &diag)
					diag.checkOuter(denominator)
					p.ColInd[nnz] = neighbor2
					p.Values[nnz] = -numerator / denominator
					nnz++
				}
			}
		}
	}
	remapColumns(p, splitting)

	return p, diag, nil
}

// extendedNumerator accumulates the interpolation numerator for coarse target
// column j of fine row i, starting from the direct coupling a_ij and folding
// in each strong Fine neighbor's sign-filtered contribution.
func extendedNumerator(a, s *sparse.Matrix, splitting split.Splitting, scols []int, svals []float64,
	i, j int, aij float64, plusSelf bool, diag *Diagnostics) float64 {
	numerator := aij
	for kdx, k := range scols {
		if splitting[k] != split.Fine || k == i {
			continue
		}
		aik := svals[kdx]
		akj, akk := coeffAndDiag(a, k, j)
		akj = signFiltered(akj, akk)
		if math.Abs(akj) <= degenerateEps {
			continue
		}
		inner := d2Inner(a, s, splitting, scols, i, k, akk)
		if plusSelf {
			inner += signFiltered(a.At(k, i), akk)
		}
		diag.checkInner(inner)
		numerator += aik * akj / inner
	}

	return numerator
}

// d2Inner sums the sign-filtered couplings from row k of A to the
// interpolation set of fine row i: i's strong Coarse neighbors plus the
// strong Coarse neighbors of i's strong Fine neighbors.
func d2Inner(a, s *sparse.Matrix, splitting split.Splitting, scols []int, i, k int, akk float64) float64 {
	var inner float64
	for _, l := range scols {
		switch {
		case splitting[l] == split.Coarse:
			inner += signFiltered(a.At(k, l), akk)
		case l != i:
			d2cols, _ := s.Row(l)
			for _, d2 := range d2cols {
				if splitting[d2] == split.Coarse {
					inner += signFiltered(a.At(k, d2), akk)
				}
			}
		}
	}

	return inner
}
