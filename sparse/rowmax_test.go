// SPDX-License-Identifier: MIT

package sparse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxRowValues_Tridiagonal(t *testing.T) {
	m := tridiag(t)
	require.Equal(t, []float64{4, 4, 4}, MaxRowValues(m))
}

func TestMaxRowValues_MagnitudeNotSign(t *testing.T) {
	// [ 1 -7 ]
	// [ 0  2 ]
	m, err := New(2, []int{0, 2, 3}, []int{0, 1, 1}, []float64{1, -7, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{7, 2}, MaxRowValues(m))
}

func TestMaxRowValues_EmptyRowSentinel(t *testing.T) {
	// Row 0 stores nothing; it must report the positive sentinel, not 0.
	m, err := New(2, []int{0, 0, 1}, []int{1}, []float64{3})
	require.NoError(t, err)

	x := MaxRowValues(m)
	require.Equal(t, math.SmallestNonzeroFloat64, x[0])
	require.Equal(t, 3.0, x[1])
}
