// Package interp builds the prolongation operator P that interpolates
// coarse-grid values back to the fine grid, given the operator A, the
// strength matrix S (same values as A), and a binary coarse/fine splitting.
//
// Every builder follows the same two-pass contract: pass 1 walks S and the
// splitting to compute P's exact row-offset array (no numeric work), storage
// is allocated to precisely that size, and pass 2 fills column indices and
// weights. Column indices are produced in fine-grid numbering and remapped
// to contiguous coarse-grid ids by an exclusive prefix sum over the Coarse
// indicator as the final step. A Coarse row always interpolates by
// injection: a single entry of weight 1 at its own coarse column.
//
// Variants:
//
//   - Direct — a fine row draws only from its strong Coarse neighbors,
//     scaling negative and positive couplings by separate row ratios.
//   - Standard — the classical Ruge–Stüben formula: strong Fine neighbors
//     contribute through a second-level sum over their couplings to the
//     row's strong Coarse set.
//   - ModifiedStandard — Standard with sign filtering: second-level terms
//     whose sign matches the corresponding diagonal are discarded. Requires
//     FilterStrongFF to have been applied to S first.
//   - Extended / ExtendedPlusSelf — distance-two formulas that also
//     interpolate from Coarse nodes reached through one strong Fine
//     neighbor; the plus-self variant folds each fine neighbor's
//     back-connection to the row into the denominators.
//
// FilterStrongFF prunes strong Fine–Fine connections lacking a common
// strong Coarse neighbor by zeroing their S values (structure untouched,
// idempotent); it is a prerequisite for ModifiedStandard.
//
// Numerical degeneracies — inner or outer denominators smaller than 1e-16
// in magnitude — are deliberately non-fatal: the division proceeds exactly
// as the formulas prescribe and may yield non-finite weights. Each
// occurrence is tallied in the returned Diagnostics so callers can reject a
// degenerate operator.
//
// Sentinel errors:
//
//	– ErrDimensionMismatch   A, S, and the splitting disagree on n
//	– ErrUnassignedSplitting the splitting still contains Unassigned nodes
//	– sparse.Err*            structural CSR validation failures
//
// Complexity: Direct is O(n + nnz); Standard and the distance-two variants
// are bounded by the product of row sizes along i → k → l paths.
package interp
