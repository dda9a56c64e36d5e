// SPDX-License-Identifier: MIT
// Package strength: sentinel error set.

package strength

import "errors"

// ErrBadTheta is returned when the strength threshold lies outside [0, 1].
var ErrBadTheta = errors.New("strength: theta must lie in [0, 1]")
