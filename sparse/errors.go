// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All structural failures surface as these sentinels and are matched with
// errors.Is. No routine in this package panics on user-supplied data.

package sparse

import "errors"

var (
	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrBadDimension indicates a negative row count.
	ErrBadDimension = errors.New("sparse: dimension must be non-negative")

	// ErrBadRowPtr indicates a malformed row-offset array: wrong length,
	// RowPtr[0] != 0, a decreasing step, or RowPtr[n] disagreeing with the
	// stored entry count.
	ErrBadRowPtr = errors.New("sparse: malformed row pointer")

	// ErrLengthMismatch indicates ColInd and Values differ in length, or
	// their common length disagrees with RowPtr[n].
	ErrLengthMismatch = errors.New("sparse: index/value length mismatch")

	// ErrColOutOfRange indicates a stored column index outside [0, n).
	ErrColOutOfRange = errors.New("sparse: column index out of range")
)
