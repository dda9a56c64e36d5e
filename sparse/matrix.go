// SPDX-License-Identifier: MIT

package sparse

// Matrix is a square CSR matrix of dimension N with float64 entries.
// Fields are exported so numeric kernels can walk the raw arrays; any
// Matrix accepted from a caller must pass Validate first.
type Matrix struct {
	// N is the number of rows (and columns; all pipeline matrices are
	// square except the prolongator, whose columns are remapped last).
	N int

	// RowPtr has length N+1; entries of row i live at [RowPtr[i], RowPtr[i+1]).
	RowPtr []int

	// ColInd holds one column index per stored entry.
	ColInd []int

	// Values holds one value per stored entry, parallel to ColInd.
	Values []float64
}

// New wraps the raw CSR triple (rowPtr, colInd, values) of an n×n matrix and
// validates it. The slices are adopted, not copied: the returned Matrix
// aliases the caller's storage.
//
// Returns ErrBadDimension, ErrBadRowPtr, ErrLengthMismatch or
// ErrColOutOfRange on malformed input.
//
// Complexity: O(n + nnz).
func New(n int, rowPtr, colInd []int, values []float64) (*Matrix, error) {
	m := &Matrix{N: n, RowPtr: rowPtr, ColInd: colInd, Values: values}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// NewWithCapacity allocates an empty n×n matrix whose ColInd/Values have
// length 0 and capacity nnzCap. Builders that know an upper bound on their
// output (e.g. strength of connection is a subset of A) grow into it without
// reallocating.
//
// Complexity: O(n) time, O(n + nnzCap) memory.
func NewWithCapacity(n, nnzCap int) *Matrix {
	return &Matrix{
		N:      n,
		RowPtr: make([]int, n+1),
		ColInd: make([]int, 0, nnzCap),
		Values: make([]float64, 0, nnzCap),
	}
}

// Validate checks the structural CSR invariants:
//
//  1. N ≥ 0 and len(RowPtr) == N+1.
//  2. RowPtr[0] == 0, RowPtr monotone non-decreasing, RowPtr[N] == nnz.
//  3. len(ColInd) == len(Values) == nnz.
//  4. Every stored column index lies in [0, N).
//
// Complexity: O(n + nnz).
func (m *Matrix) Validate() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.N < 0 {
		return ErrBadDimension
	}
	if len(m.RowPtr) != m.N+1 || m.RowPtr[0] != 0 {
		return ErrBadRowPtr
	}
	for i := 0; i < m.N; i++ {
		if m.RowPtr[i+1] < m.RowPtr[i] {
			return ErrBadRowPtr
		}
	}
	nnz := m.RowPtr[m.N]
	if len(m.ColInd) != nnz || len(m.Values) != nnz {
		return ErrLengthMismatch
	}
	for _, j := range m.ColInd {
		if j < 0 || j >= m.N {
			return ErrColOutOfRange
		}
	}

	return nil
}

// NNZ reports the number of stored entries.
func (m *Matrix) NNZ() int { return m.RowPtr[m.N] }

// Row returns the column-index and value slices of row i. The slices alias
// the matrix storage; callers must not grow them.
//
// Complexity: O(1).
func (m *Matrix) Row(i int) (cols []int, vals []float64) {
	lo, hi := m.RowPtr[i], m.RowPtr[i+1]

	return m.ColInd[lo:hi], m.Values[lo:hi]
}

// At returns the entry at (i, j), or 0 when no entry is stored — the
// "missing entry implies zero" semantics the interpolation formulas rely on.
// Rows carry no ordering guarantee, so the lookup is a linear scan.
//
// Complexity: O(nnz of row i).
func (m *Matrix) At(i, j int) float64 {
	for jj := m.RowPtr[i]; jj < m.RowPtr[i+1]; jj++ {
		if m.ColInd[jj] == j {
			return m.Values[jj]
		}
	}

	return 0
}

// Transpose returns a freshly allocated transpose of m, built by a counting
// sort over columns. The result's rows are sorted by column index as a side
// effect of the construction; no stage depends on that.
//
// Complexity: O(n + nnz) time and memory.
func (m *Matrix) Transpose() *Matrix {
	nnz := m.NNZ()
	t := &Matrix{
		N:      m.N,
		RowPtr: make([]int, m.N+1),
		ColInd: make([]int, nnz),
		Values: make([]float64, nnz),
	}

	// Count entries per column of m (= per row of t).
	for _, j := range m.ColInd {
		t.RowPtr[j+1]++
	}
	for i := 0; i < m.N; i++ {
		t.RowPtr[i+1] += t.RowPtr[i]
	}

	// Scatter; next[j] tracks the write cursor of t's row j.
	next := make([]int, m.N)
	copy(next, t.RowPtr[:m.N])
	for i := 0; i < m.N; i++ {
		for jj := m.RowPtr[i]; jj < m.RowPtr[i+1]; jj++ {
			j := m.ColInd[jj]
			dst := next[j]
			t.ColInd[dst] = i
			t.Values[dst] = m.Values[jj]
			next[j]++
		}
	}

	return t
}

// Clone returns a deep copy of m that shares no storage with it.
//
// Complexity: O(n + nnz).
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		N:      m.N,
		RowPtr: make([]int, len(m.RowPtr)),
		ColInd: make([]int, len(m.ColInd)),
		Values: make([]float64, len(m.Values)),
	}
	copy(c.RowPtr, m.RowPtr)
	copy(c.ColInd, m.ColInd)
	copy(c.Values, m.Values)

	return c
}

// AppendEntry adds one entry to the last open row during a streaming build.
// Builders close row i by setting RowPtr[i+1] = len(ColInd) afterwards.
func (m *Matrix) AppendEntry(col int, val float64) {
	m.ColInd = append(m.ColInd, col)
	m.Values = append(m.Values, val)
}
