// SPDX-License-Identifier: MIT

package sparse

import "math"

// MaxRowValues returns, per row, the maximum-magnitude entry of m (diagonal
// included). Rows with no stored entries report the sentinel
// math.SmallestNonzeroFloat64, so downstream theta×max thresholds stay
// positive and degenerate rows keep nothing but their diagonal.
//
// Complexity: O(n + nnz) time, O(n) memory.
func MaxRowValues(m *Matrix) []float64 {
	x := make([]float64, m.N)
	for i := 0; i < m.N; i++ {
		maxEntry := math.SmallestNonzeroFloat64
		for jj := m.RowPtr[i]; jj < m.RowPtr[i+1]; jj++ {
			if v := math.Abs(m.Values[jj]); v > maxEntry {
				maxEntry = v
			}
		}
		x[i] = maxEntry
	}

	return x
}
