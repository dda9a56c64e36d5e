// SPDX-License-Identifier: MIT
// Package interp: shared plumbing of the interpolation builders — input
// validation, the first-pass sizing walks, and the coarse-column remap.

package interp

import (
	"github.com/katalvlaran/coarsen/sparse"
	"github.com/katalvlaran/coarsen/split"
)

// validate runs the shared precondition checks of every builder: structurally
// sound CSR inputs, matching dimensions, and a binary splitting.
func validate(a, s *sparse.Matrix, splitting split.Splitting) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if a.N != s.N || len(splitting) != a.N {
		return ErrDimensionMismatch
	}
	if !splitting.Assigned() {
		return ErrUnassignedSplitting
	}

	return nil
}

// distanceOnePass1 sizes P for the distance-one builders (Direct, Standard,
// ModifiedStandard): one entry per Coarse row, and one entry per strong
// Coarse neighbor (excluding self) per Fine row. Returns P's row pointer.
//
// Complexity: O(n + nnz(S)).
func distanceOnePass1(s *sparse.Matrix, splitting split.Splitting) []int {
	rowPtr := make([]int, s.N+1)
	nnz := 0
	for i := 0; i < s.N; i++ {
		if splitting[i] == split.Coarse {
			nnz++
		} else {
			cols, _ := s.Row(i)
			for _, j := range cols {
				if splitting[j] == split.Coarse && j != i {
					nnz++
				}
			}
		}
		rowPtr[i+1] = nnz
	}

	return rowPtr
}

// distanceTwoPass1 sizes P for the extended builders: a Fine row additionally
// gets one entry per strong Coarse neighbor of each of its strong Fine
// neighbors. Coarse nodes reachable along several paths are counted once per
// path; the second pass fills every slot the same way.
//
// Complexity: O(n + Σ_i Σ_{k∈S_i} nnz(S_k)).
func distanceTwoPass1(s *sparse.Matrix, splitting split.Splitting) []int {
	rowPtr := make([]int, s.N+1)
	nnz := 0
	for i := 0; i < s.N; i++ {
		if splitting[i] == split.Coarse {
			nnz++
			rowPtr[i+1] = nnz
			continue
		}
		cols, _ := s.Row(i)
		for _, j := range cols {
			switch {
			case splitting[j] == split.Coarse:
				nnz++
			case j != i:
				d2cols, _ := s.Row(j)
				for _, d2 := range d2cols {
					if splitting[d2] == split.Coarse {
						nnz++
					}
				}
			}
		}
		rowPtr[i+1] = nnz
	}

	return rowPtr
}

// newProlongator allocates P to the exact size the sizing pass computed.
func newProlongator(n int, rowPtr []int) *sparse.Matrix {
	nnz := rowPtr[n]

	return &sparse.Matrix{
		N:      n,
		RowPtr: rowPtr,
		ColInd: make([]int, nnz),
		Values: make([]float64, nnz),
	}
}

// remapColumns rewrites P's column indices from fine-grid numbering to
// contiguous coarse-grid ids via the exclusive prefix sum over the Coarse
// indicator. Final step of every builder.
func remapColumns(p *sparse.Matrix, splitting split.Splitting) {
	coarse, _ := splitting.CoarseMap()
	for idx, j := range p.ColInd {
		p.ColInd[idx] = coarse[j]
	}
}

// signOf reports the sign of x with zero counted as positive, matching the
// convention of the sign-filtered formulas.
func signOf(x float64) int {
	if x < 0 {
		return -1
	}

	return 1
}

// signFiltered returns v, or 0 when v's sign matches the diagonal akk.
func signFiltered(v, akk float64) float64 {
	if signOf(v) == signOf(akk) {
		return 0
	}

	return v
}

// coeffAndDiag scans row k of a once and returns a_kj and the diagonal a_kk.
// When j == k the value is reported as a_kj and the diagonal stays 0.
func coeffAndDiag(a *sparse.Matrix, k, j int) (akj, akk float64) {
	cols, vals := a.Row(k)
	for idx, c := range cols {
		if c == j {
			akj = vals[idx]
		} else if c == k {
			akk = vals[idx]
		}
	}

	return akj, akk
}
