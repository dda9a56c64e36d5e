// Package sparse provides the compressed-sparse-row (CSR) matrix container
// shared by every stage of the coarsening pipeline: the input operator A, the
// strength matrix S, its transpose T, and the prolongation operator P.
//
// A Matrix is the classic offset/index/value triple:
//
//	RowPtr — length n+1, monotone non-decreasing, RowPtr[0]=0, RowPtr[n]=nnz
//	ColInd — length nnz, column index per stored entry (no intra-row ordering)
//	Values — length nnz, numeric value per stored entry
//
// The container is deliberately thin: fields are exported so kernels can index
// the raw arrays directly, and Validate turns every structural precondition
// (offsets in range, lengths matching, columns in bounds) into a checked,
// recoverable error instead of undefined behavior. A missing entry always
// reads as zero (At performs a linear scan of the row; rows need not be
// sorted and duplicates are not assumed).
//
// Sentinel errors:
//
//	– ErrNilMatrix      nil *Matrix receiver or argument
//	– ErrBadDimension   negative row count
//	– ErrBadRowPtr      offset array malformed (length, first/last, monotonicity)
//	– ErrLengthMismatch ColInd and Values lengths disagree with RowPtr[n]
//	– ErrColOutOfRange  a stored column index lies outside [0, n)
//
// Complexity: Validate and Transpose are O(n + nnz); At is O(row nnz);
// MaxRowValues is O(nnz).
package sparse
