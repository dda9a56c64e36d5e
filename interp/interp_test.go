// SPDX-License-Identifier: MIT

package interp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/coarsen/interp"
	"github.com/katalvlaran/coarsen/sparse"
	"github.com/katalvlaran/coarsen/split"
)

// laplacian builds the n×n 1D Poisson operator: diagonal 2, off-diagonals −1.
func laplacian(t *testing.T, n int) *sparse.Matrix {
	t.Helper()
	rowPtr := make([]int, n+1)
	var cols []int
	var vals []float64
	for i := 0; i < n; i++ {
		if i > 0 {
			cols = append(cols, i-1)
			vals = append(vals, -1)
		}
		cols = append(cols, i)
		vals = append(vals, 2)
		if i < n-1 {
			cols = append(cols, i+1)
			vals = append(vals, -1)
		}
		rowPtr[i+1] = len(cols)
	}
	a, err := sparse.New(n, rowPtr, cols, vals)
	require.NoError(t, err)

	return a
}

// triangle builds a dense 3×3 operator with diagonal 2; a20 sets the
// coupling from node 2 back to node 0, every other off-diagonal is −1.
func triangle(t *testing.T, a20 float64) *sparse.Matrix {
	t.Helper()
	a, err := sparse.New(3,
		[]int{0, 3, 6, 9},
		[]int{0, 1, 2, 0, 1, 2, 0, 1, 2},
		[]float64{2, -1, -1, -1, 2, -1, a20, -1, 2})
	require.NoError(t, err)

	return a
}

// TestDirect_Tridiagonal: on the 3-node operator with diagonal 4 and
// couplings −1, splitting {F,C,F}, both fine rows interpolate with weight
// 1/4 from the single coarse node.
func TestDirect_Tridiagonal(t *testing.T) {
	a, err := sparse.New(3,
		[]int{0, 2, 5, 7},
		[]int{0, 1, 0, 1, 2, 1, 2},
		[]float64{4, -1, -1, 4, -1, -1, 4})
	require.NoError(t, err)
	splitting := split.Splitting{split.Fine, split.Coarse, split.Fine}

	p, err := interp.Direct(a, a, splitting)
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2, 3}, p.RowPtr)
	require.Equal(t, []int{0, 0, 0}, p.ColInd)
	require.True(t, floats.EqualApprox([]float64{0.25, 1, 0.25}, p.Values, 1e-15))
}

// TestDirect_AlternatingPath: on the 1D Laplacian with every other node
// coarse, each fine row splits its unit weight evenly between its two coarse
// neighbors and every row of P sums to one.
func TestDirect_AlternatingPath(t *testing.T) {
	a := laplacian(t, 7)
	splitting := split.Splitting{
		split.Coarse, split.Fine, split.Coarse, split.Fine,
		split.Coarse, split.Fine, split.Coarse,
	}

	p, err := interp.Direct(a, a, splitting)
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	nc := splitting.NumCoarse()
	for _, j := range p.ColInd {
		require.Less(t, j, nc)
	}
	for i := 0; i < p.N; i++ {
		_, vals := p.Row(i)
		require.InDelta(t, 1.0, floats.Sum(vals), 1e-15, "row %d", i)
	}
}

// TestStandard_Triangle: on the symmetric triangle with coarse node 0, the
// fine–fine coupling redistributes through the common coarse neighbor and
// each fine row interpolates with full weight 1.
func TestStandard_Triangle(t *testing.T) {
	a := triangle(t, -1)
	splitting := split.Splitting{split.Coarse, split.Fine, split.Fine}

	p, diag, err := interp.Standard(a, a, splitting)
	require.NoError(t, err)
	require.False(t, diag.Degenerate())

	require.Equal(t, []int{0, 1, 2, 3}, p.RowPtr)
	require.Equal(t, []int{0, 0, 0}, p.ColInd)
	require.True(t, floats.EqualApprox([]float64{1, 1, 1}, p.Values, 1e-15))
}

// TestModifiedStandard_SignFilter: flipping a20 positive makes node 2's
// coupling to the coarse node share the sign of its diagonal. The modified
// formula discards that path, halving node 1's weight; the plain standard
// formula keeps it.
func TestModifiedStandard_SignFilter(t *testing.T) {
	a := triangle(t, 1)
	splitting := split.Splitting{split.Coarse, split.Fine, split.Fine}

	std, _, err := interp.Standard(a, a, splitting)
	require.NoError(t, err)
	mod, diag, err := interp.ModifiedStandard(a, a, splitting)
	require.NoError(t, err)
	require.False(t, diag.Degenerate())

	require.InDelta(t, 1.0, std.Values[1], 1e-15)
	require.InDelta(t, 0.5, mod.Values[1], 1e-15)
}

// TestStandard_ZeroInnerDiagnostics: node 2's couplings to the two coarse
// nodes cancel exactly, so both interpolation targets of node 1 hit a zero
// inner denominator. The weights go non-finite and the count comes back in
// Diagnostics instead of an error.
func TestStandard_ZeroInnerDiagnostics(t *testing.T) {
	a, err := sparse.New(4,
		[]int{0, 1, 5, 9, 10},
		[]int{0, 0, 1, 2, 3, 0, 1, 2, 3, 3},
		[]float64{2, -1, 2, -1, 0.5, 1, -1, 2, -1, 2})
	require.NoError(t, err)
	splitting := split.Splitting{split.Coarse, split.Fine, split.Fine, split.Coarse}

	p, diag, err := interp.Standard(a, a, splitting)
	require.NoError(t, err)

	require.True(t, diag.Degenerate())
	require.Equal(t, 2, diag.ZeroInnerDenominators)
	require.Equal(t, 0, diag.ZeroOuterDenominators)

	// Row 1 holds the two poisoned weights.
	_, vals := p.Row(1)
	require.True(t, math.IsInf(vals[0], 1))
	require.True(t, math.IsInf(vals[1], -1))

	// Row 2 is untouched by the degeneracy.
	_, vals = p.Row(2)
	require.True(t, floats.EqualApprox([]float64{0.5, 0}, vals, 1e-15))
}

// TestExtended_PathFiveNodes: with coarse endpoints only, the middle node
// has no distance-one coarse neighbor and interpolates purely through its
// fine neighbors' coarse connections.
func TestExtended_PathFiveNodes(t *testing.T) {
	a := laplacian(t, 5)
	splitting := split.Splitting{
		split.Coarse, split.Fine, split.Fine, split.Fine, split.Coarse,
	}

	p, diag, err := interp.Extended(a, a, splitting)
	require.NoError(t, err)
	require.False(t, diag.Degenerate())

	require.Equal(t, []int{0, 1, 2, 4, 5, 6}, p.RowPtr)
	require.Equal(t, []int{0, 0, 0, 1, 1, 1}, p.ColInd)
	require.True(t, floats.EqualApprox([]float64{1, 0.5, 0.5, 0.5, 0.5, 1}, p.Values, 1e-15))
}

// TestExtendedPlusSelf_PathFiveNodes: folding the back-couplings into the
// denominators shrinks the outer denominator of the edge-adjacent fine rows
// and doubles their weights relative to Extended; the middle row is
// unchanged.
func TestExtendedPlusSelf_PathFiveNodes(t *testing.T) {
	a := laplacian(t, 5)
	splitting := split.Splitting{
		split.Coarse, split.Fine, split.Fine, split.Fine, split.Coarse,
	}

	p, diag, err := interp.ExtendedPlusSelf(a, a, splitting)
	require.NoError(t, err)
	require.False(t, diag.Degenerate())

	require.Equal(t, []int{0, 1, 2, 4, 5, 6}, p.RowPtr)
	require.Equal(t, []int{0, 0, 0, 1, 1, 1}, p.ColInd)
	require.True(t, floats.EqualApprox([]float64{1, 1, 0.5, 0.5, 1, 1}, p.Values, 1e-15))
}

// TestFilterStrongFF: on the 4-node path with coarse endpoints, the two
// middle fine nodes share no coarse neighbor, so their mutual couplings are
// zeroed while the structure survives. Running the filter twice changes
// nothing.
func TestFilterStrongFF(t *testing.T) {
	s := laplacian(t, 4)
	splitting := split.Splitting{split.Coarse, split.Fine, split.Fine, split.Coarse}
	before := s.Clone()

	require.NoError(t, interp.FilterStrongFF(s, splitting))

	require.Equal(t, before.RowPtr, s.RowPtr)
	require.Equal(t, before.ColInd, s.ColInd)
	require.Equal(t, 0.0, s.At(1, 2))
	require.Equal(t, 0.0, s.At(2, 1))
	require.Equal(t, -1.0, s.At(1, 0))
	require.Equal(t, -1.0, s.At(2, 3))
	require.Equal(t, 2.0, s.At(1, 1))

	again := s.Clone()
	require.NoError(t, interp.FilterStrongFF(s, splitting))
	require.Equal(t, again.Values, s.Values)
}

// TestFilterStrongFF_CommonCoarseNeighborKept: in the triangle both fine
// nodes see coarse node 0, so their mutual coupling passes the dependence
// test and survives.
func TestFilterStrongFF_CommonCoarseNeighborKept(t *testing.T) {
	s := triangle(t, -1)
	splitting := split.Splitting{split.Coarse, split.Fine, split.Fine}

	require.NoError(t, interp.FilterStrongFF(s, splitting))

	require.Equal(t, -1.0, s.At(1, 2))
	require.Equal(t, -1.0, s.At(2, 1))
}

// TestInterp_ColumnsWithinCoarseRange: every builder remaps columns into the
// contiguous coarse index space.
func TestInterp_ColumnsWithinCoarseRange(t *testing.T) {
	a := laplacian(t, 9)
	splitting := make(split.Splitting, 9)
	for i := 0; i < 9; i += 2 {
		splitting[i] = split.Coarse
	}
	nc := splitting.NumCoarse()

	builders := map[string]func() (*sparse.Matrix, error){
		"direct": func() (*sparse.Matrix, error) { return interp.Direct(a, a, splitting) },
		"standard": func() (*sparse.Matrix, error) {
			p, _, err := interp.Standard(a, a, splitting)
			return p, err
		},
		"modified": func() (*sparse.Matrix, error) {
			p, _, err := interp.ModifiedStandard(a, a, splitting)
			return p, err
		},
		"extended": func() (*sparse.Matrix, error) {
			p, _, err := interp.Extended(a, a, splitting)
			return p, err
		},
		"extended+i": func() (*sparse.Matrix, error) {
			p, _, err := interp.ExtendedPlusSelf(a, a, splitting)
			return p, err
		},
	}
	for name, build := range builders {
		p, err := build()
		require.NoError(t, err, name)
		require.NoError(t, p.Validate(), name)
		require.Equal(t, a.N+1, len(p.RowPtr), name)
		for _, j := range p.ColInd {
			require.GreaterOrEqual(t, j, 0, name)
			require.Less(t, j, nc, name)
		}
	}
}

func TestInterp_BadInputs(t *testing.T) {
	a := laplacian(t, 3)
	binary := split.Splitting{split.Coarse, split.Fine, split.Fine}

	_, err := interp.Direct(a, a, split.Splitting{split.Coarse, split.Fine})
	require.ErrorIs(t, err, interp.ErrDimensionMismatch)

	_, err = interp.Direct(a, a, split.NewSplitting(3))
	require.ErrorIs(t, err, interp.ErrUnassignedSplitting)

	_, _, err = interp.Standard(a, a, split.NewSplitting(3))
	require.ErrorIs(t, err, interp.ErrUnassignedSplitting)

	_, _, err = interp.Extended(a, a, split.Splitting{split.Coarse})
	require.ErrorIs(t, err, interp.ErrDimensionMismatch)

	require.ErrorIs(t, interp.FilterStrongFF(a, split.NewSplitting(3)), interp.ErrUnassignedSplitting)

	bad := &sparse.Matrix{N: 2, RowPtr: []int{0, 1}}
	_, err = interp.Direct(bad, a, binary)
	require.ErrorIs(t, err, sparse.ErrBadRowPtr)
}
