// Package split assigns every node of a strength graph to the coarse or fine
// grid. It provides the two classical coarse/fine splitting algorithms plus
// an error-driven refinement pass:
//
//   - RugeStuben — the sequential bucket-queue algorithm: nodes are coarsened
//     in descending order of lambda (the number of nodes that strongly depend
//     on them), with amortized O(1) re-prioritization through an interval
//     bucket structure over the bounded priorities 0..n−1.
//   - CLJP — a round-based weighted maximal-independent-set algorithm in the
//     style of Cleary–Luby–Jones–Plassmann: per round, local weight maxima
//     become coarse and the weights of their neighborhoods are reduced until
//     every node is assigned.
//   - CompatibleRelaxation — augments an existing splitting using a relaxed
//     error vector: poorly damped fine nodes become coarse candidates and a
//     greedy weighted independent set of them is promoted.
//
// All three mutate a caller-owned Splitting in place and guarantee on return
// that no node is left Unassigned. RugeStuben and CLJP take the strength
// matrix S and its transpose T; both are read-only here.
//
// Label convention: one enumeration for the whole pipeline — Fine=0,
// Coarse=1, Unassigned=2. Compatible relaxation consumes and produces the
// same enumeration; there is no reversed convention anywhere.
//
// Sentinel errors:
//
//	– ErrDimensionMismatch  S, T, and the splitting disagree on n
//	– ErrBadColoring        coloring length/values unusable for CLJP weights
//	– ErrBadThetaCS         candidate threshold outside [0, 1]
//	– ErrBadIndices         compatible-relaxation index permutation malformed
//	– ErrUnassignedLabel    compatible relaxation fed a non-binary splitting
//	– ErrZeroTarget         target vector zero at a fine node
//
// Violated internal invariants (promoting a node that is not Unassigned in
// RugeStuben) panic: they indicate a programmer error, not bad input.
package split
