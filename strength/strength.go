// SPDX-License-Identifier: MIT

package strength

import (
	"math"

	"github.com/katalvlaran/coarsen/sparse"
)

// Classic computes the classical strength-of-connection matrix S of a.
//
// Steps:
//  1. Validate a and theta (O(n + nnz)).
//  2. Per row: find the maximum off-diagonal measure; the row threshold is
//     theta times that maximum.
//  3. Per entry, in stored order: keep an off-diagonal entry iff its measure
//     meets the threshold; keep the diagonal unconditionally. Kept entries
//     carry their original a values.
//
// The result is freshly allocated with capacity a.NNZ() (S is a subset of a)
// and shares no storage with a. Isolated rows — no off-diagonal entries —
// retain only their diagonal: the absolute measure seeds the row maximum
// with the smallest positive double, the negative-part measure with zero,
// so no spurious off-diagonal can pass.
//
// Returns ErrBadTheta for theta outside [0, 1], or a sparse sentinel when a
// is malformed.
//
// Complexity: O(n + nnz) time.
func Classic(a *sparse.Matrix, theta float64, opts ...Option) (*sparse.Matrix, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(theta) || theta < 0 || theta > 1 {
		return nil, ErrBadTheta
	}
	o := gatherOptions(opts...)

	s := sparse.NewWithCapacity(a.N, a.NNZ())
	for i := 0; i < a.N; i++ {
		rowStart, rowEnd := a.RowPtr[i], a.RowPtr[i+1]

		maxOffdiag := sentinel(o.measure)
		for jj := rowStart; jj < rowEnd; jj++ {
			if a.ColInd[jj] != i {
				if v := measure(o.measure, a.Values[jj]); v > maxOffdiag {
					maxOffdiag = v
				}
			}
		}
		threshold := theta * maxOffdiag

		for jj := rowStart; jj < rowEnd; jj++ {
			if a.ColInd[jj] == i {
				// The diagonal is always strong.
				s.AppendEntry(i, a.Values[jj])
				continue
			}
			if measure(o.measure, a.Values[jj]) >= threshold {
				s.AppendEntry(a.ColInd[jj], a.Values[jj])
			}
		}
		s.RowPtr[i+1] = len(s.ColInd)
	}

	return s, nil
}

// measure applies the configured influence measure to one entry.
func measure(m Measure, a float64) float64 {
	if m == MeasureNegative {
		return -a
	}

	return math.Abs(a)
}

// sentinel seeds the running row maximum. The absolute measure starts from
// the smallest positive double so an isolated row's threshold stays
// positive; the negative-part measure floors the maximum at zero.
func sentinel(m Measure) float64 {
	if m == MeasureNegative {
		return 0
	}

	return math.SmallestNonzeroFloat64
}
