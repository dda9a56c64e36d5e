// SPDX-License-Identifier: MIT
// Package split: sentinel error set.
// User-triggered conditions return these sentinels (match with errors.Is);
// panics are reserved for violated internal invariants.

package split

import "errors"

var (
	// ErrDimensionMismatch indicates S, T, and the splitting array disagree
	// on the node count, or an auxiliary vector has the wrong length.
	ErrDimensionMismatch = errors.New("split: dimension mismatch")

	// ErrBadColoring indicates a CLJP coloring of the wrong length or with
	// a negative color index.
	ErrBadColoring = errors.New("split: unusable coloring")

	// ErrBadThetaCS indicates a compatible-relaxation candidate threshold
	// outside [0, 1].
	ErrBadThetaCS = errors.New("split: thetacs must lie in [0, 1]")

	// ErrBadIndices indicates a malformed index-permutation array: wrong
	// length, or a fine-point count outside [0, n].
	ErrBadIndices = errors.New("split: malformed index permutation")

	// ErrUnassignedLabel indicates compatible relaxation received a
	// splitting that still contains Unassigned nodes.
	ErrUnassignedLabel = errors.New("split: splitting must be binary")

	// ErrZeroTarget indicates the target vector is zero at a fine node, so
	// the candidate measure e/B is undefined there.
	ErrZeroTarget = errors.New("split: target vector zero at fine node")
)
