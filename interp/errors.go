// SPDX-License-Identifier: MIT
// Package interp: sentinel error set.

package interp

import "errors"

var (
	// ErrDimensionMismatch indicates A, S, and the splitting disagree on
	// the node count.
	ErrDimensionMismatch = errors.New("interp: dimension mismatch")

	// ErrUnassignedSplitting indicates the splitting still contains
	// Unassigned nodes; interpolation needs a binary coarse/fine partition.
	ErrUnassignedSplitting = errors.New("interp: splitting must be binary")
)
