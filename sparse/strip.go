// SPDX-License-Identifier: MIT

package sparse

// WithoutDiagonal returns a freshly allocated copy of m with every diagonal
// entry removed. Splitting heuristics rank a node by how many other nodes
// depend on it, so the strength matrix is stripped of self-couplings before
// it is handed to them.
//
// Complexity: O(n + nnz).
func (m *Matrix) WithoutDiagonal() *Matrix {
	out := NewWithCapacity(m.N, m.NNZ())
	for i := 0; i < m.N; i++ {
		cols, vals := m.Row(i)
		for idx, j := range cols {
			if j != i {
				out.AppendEntry(j, vals[idx])
			}
		}
		out.RowPtr[i+1] = len(out.ColInd)
	}

	return out
}
