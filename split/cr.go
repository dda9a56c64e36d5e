// SPDX-License-Identifier: MIT

package split

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/coarsen/sparse"
)

// CompatibleRelaxation refines an existing coarse/fine splitting from the
// residual behavior of a relaxation sweep (steps 3.1d–3.1f of the
// Falgout–Brannick compatible-relaxation coarsening).
//
// Inputs:
//
//	a        — the operator, used only for its adjacency structure
//	b        — target near-null-space vector; must be nonzero at fine nodes
//	e        — relaxed error vector; overwritten at fine positions with |e/b|
//	indices  — permutation array of length n+1: indices[0] holds the fine
//	           count nf, indices[1..nf] the fine ids, indices[nf+1..n] the
//	           coarse ids; rebuilt on return (fine prefix ascending, coarse
//	           suffix filled from the back)
//	splitting— existing binary splitting, promoted in place
//	thetaCS  — candidate threshold in [0, 1]
//
// Steps:
//  1. At each fine node set e ← |e/b| and take the infinity norm over them.
//  2. Candidate measure gamma = e/‖e‖∞; fine nodes with gamma > thetaCS
//     form the candidate set.
//  3. Candidate weight omega = (number of still-fine a-neighbors) + gamma.
//     Greedily promote the candidate with the largest positive weight to
//     Coarse, zero its gamma and the weight of all its a-neighbors, then
//     give +1 to each neighbor-of-removed-neighbor whose weight is still
//     nonzero. Stop when no positive weight remains.
//  4. Rebuild the index permutation from the updated splitting.
//
// Returns ErrZeroTarget when b vanishes at a fine node; the remaining
// sentinels cover shape mismatches. A splitting containing Unassigned nodes
// is rejected with ErrUnassignedLabel.
//
// Complexity: O(n + nnz + promotions × nnz-neighborhood) time, O(n) memory.
func CompatibleRelaxation(a *sparse.Matrix, b, e []float64, indices []int, splitting Splitting, thetaCS float64) error {
	if err := a.Validate(); err != nil {
		return err
	}
	n := a.N
	if len(b) != n || len(e) != n || len(splitting) != n {
		return ErrDimensionMismatch
	}
	if !splitting.Assigned() {
		return ErrUnassignedLabel
	}
	if len(indices) != n+1 || indices[0] < 0 || indices[0] > n {
		return ErrBadIndices
	}
	if math.IsNaN(thetaCS) || thetaCS < 0 || thetaCS > 1 {
		return ErrBadThetaCS
	}

	nf := indices[0]
	if nf == 0 {
		return nil // nothing fine to refine
	}

	// Candidate measure: e ← |e/b| on the fine set, scaled by its inf-norm.
	scratch := make([]float64, 0, nf)
	for _, pt := range indices[1 : nf+1] {
		if b[pt] == 0 {
			return ErrZeroTarget
		}
		e[pt] = math.Abs(e[pt] / b[pt])
		scratch = append(scratch, e[pt])
	}
	infNorm := floats.Max(scratch)

	gamma := make([]float64, n)
	candidates := make([]int, 0, nf)
	for _, pt := range indices[1 : nf+1] {
		gamma[pt] = e[pt] / infNorm
		if gamma[pt] > thetaCS {
			candidates = append(candidates, pt)
		}
	}

	// omega_i = |N_i ∩ F| + gamma_i for candidates.
	omega := make([]float64, n)
	for _, pt := range candidates {
		fineNeighbors := 0
		for jj := a.RowPtr[pt]; jj < a.RowPtr[pt+1]; jj++ {
			if splitting[a.ColInd[jj]] == Fine {
				fineNeighbors++
			}
		}
		omega[pt] = float64(fineNeighbors) + gamma[pt]
	}

	// Greedy maximal-weight independent set over the candidates.
	for {
		maxWeight, newPt := 0.0, -1
		for _, pt := range candidates {
			if omega[pt] > maxWeight {
				maxWeight = omega[pt]
				newPt = pt
			}
		}
		if newPt < 0 {
			break
		}
		splitting[newPt] = Coarse
		gamma[newPt] = 0

		// Knock the new Coarse node's neighborhood out of the running,
		// and boost the second ring that just lost a competitor.
		neighbors := a.ColInd[a.RowPtr[newPt]:a.RowPtr[newPt+1]]
		for _, nb := range neighbors {
			omega[nb] = 0
		}
		for _, nb := range neighbors {
			for jj := a.RowPtr[nb]; jj < a.RowPtr[nb+1]; jj++ {
				if k := a.ColInd[jj]; omega[k] != 0 {
					omega[k]++
				}
			}
		}
	}

	// Rebuild the permutation: fine prefix in ascending scan order, coarse
	// suffix from the back (largest id first).
	nf = 0
	nextF, nextC := 1, n
	for i := 0; i < n; i++ {
		if splitting[i] == Fine {
			indices[nextF] = i
			nextF++
			nf++
		} else {
			indices[nextC] = i
			nextC--
		}
	}
	indices[0] = nf

	return nil
}
