// Package strength builds the classical Ruge–Stüben strength-of-connection
// matrix S from a CSR operator A.
//
// An off-diagonal entry A[i,j] is strong when its measure meets the row
// threshold:
//
//	measure(A[i,j]) >= theta * max_{k != i} measure(A[i,k])
//
// Strong entries are retained with their original A values; the diagonal is
// always retained regardless of magnitude; everything else is dropped. S is
// therefore a same-valued subset of A, with at most A's nnz entries. Rows
// with no off-diagonal entries keep only their diagonal.
//
// Two measures are available:
//
//	– absolute value (default): measure(a) = |a|, the textbook definition
//	– negative part:            measure(a) = -a, floored at zero via the
//	  row maximum — only sufficiently negative couplings count as strong
//
// The choice is made with WithAbsoluteMeasure / WithNegativeMeasure.
//
// Sentinel errors:
//
//	– ErrBadTheta when theta lies outside [0, 1]
//	– sparse.Err* when A fails structural validation
//
// Complexity: O(n + nnz) time, O(n + nnz) memory for the result.
package strength
