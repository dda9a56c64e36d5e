// SPDX-License-Identifier: MIT

package coarsen

import (
	"errors"

	"github.com/katalvlaran/coarsen/interp"
	"github.com/katalvlaran/coarsen/sparse"
	"github.com/katalvlaran/coarsen/split"
	"github.com/katalvlaran/coarsen/strength"
)

// DefaultTheta is the classical strength threshold used when no option
// overrides it.
const DefaultTheta = 0.25

// Method selects the interpolation builder of the pipeline.
type Method uint8

const (
	// DirectInterpolation interpolates from strong coarse neighbors only.
	DirectInterpolation Method = iota

	// StandardInterpolation redistributes strong fine couplings through the
	// coarse set (classical Ruge–Stüben).
	StandardInterpolation

	// ModifiedStandardInterpolation is StandardInterpolation with sign
	// filtering; the pipeline runs the strong fine–fine filter first.
	ModifiedStandardInterpolation

	// ExtendedInterpolation reaches coarse nodes at distance two.
	ExtendedInterpolation

	// ExtendedPlusSelfInterpolation additionally folds back-couplings into
	// the denominators.
	ExtendedPlusSelfInterpolation
)

// Splitter selects the coarse/fine selector of the pipeline.
type Splitter uint8

const (
	// RugeStubenSplitter is the sequential two-pass selector (the default).
	RugeStubenSplitter Splitter = iota

	// CLJPSplitter is the parallel-style weighted independent-set selector.
	CLJPSplitter
)

var (
	// ErrUnknownMethod indicates a Method value outside the defined set.
	ErrUnknownMethod = errors.New("coarsen: unknown interpolation method")

	// ErrUnknownSplitter indicates a Splitter value outside the defined set.
	ErrUnknownSplitter = errors.New("coarsen: unknown splitter")
)

// Option mutates pipeline options. Setters are idempotent; last writer wins.
type Option func(*options)

type options struct {
	theta        float64
	strengthOpts []strength.Option
	splitter     Splitter
	cljpOpts     []split.CLJPOption
	method       Method
	filterFF     bool
}

// WithTheta sets the strength threshold in [0, 1].
func WithTheta(theta float64) Option {
	return func(o *options) { o.theta = theta }
}

// WithNegativeMeasure thresholds on -a instead of |a|, so only negative
// couplings count as strong.
func WithNegativeMeasure() Option {
	return func(o *options) {
		o.strengthOpts = append(o.strengthOpts, strength.WithNegativeMeasure())
	}
}

// WithCLJP selects the CLJP splitter, forwarding any of its options
// (split.WithColoring, split.WithRandomSeed).
func WithCLJP(opts ...split.CLJPOption) Option {
	return func(o *options) {
		o.splitter = CLJPSplitter
		o.cljpOpts = append(o.cljpOpts, opts...)
	}
}

// WithInterpolation selects the interpolation builder.
func WithInterpolation(m Method) Option {
	return func(o *options) { o.method = m }
}

// WithStrongFFFilter prunes strong fine–fine connections without a common
// coarse neighbor before interpolation. Implied by
// ModifiedStandardInterpolation.
func WithStrongFFFilter() Option {
	return func(o *options) { o.filterFF = true }
}

func gatherOptions(user ...Option) options {
	o := options{theta: DefaultTheta}
	for _, set := range user {
		set(&o)
	}

	return o
}

// Result bundles the artifacts of one coarsening run.
type Result struct {
	// Strength is the thresholded operator (values of A on surviving
	// entries, diagonal always kept). If the fine–fine filter ran, its
	// zeroed values show here.
	Strength *sparse.Matrix

	// Splitting labels every node Fine or Coarse.
	Splitting split.Splitting

	// P is the prolongation operator; its columns are contiguous
	// coarse-grid ids in [0, NumCoarse).
	P *sparse.Matrix

	// NumCoarse is the coarse-grid size.
	NumCoarse int

	// Diagnostics reports degenerate denominators met while filling P.
	// Always zero for DirectInterpolation.
	Diagnostics interp.Diagnostics
}

// Coarsen runs the full setup pipeline on the operator a:
//
//  1. Threshold a into the strength matrix S.
//  2. Strip S's diagonal and transpose it, so the splitter ranks nodes by
//     how many others depend on them.
//  3. Select the coarse set (Ruge–Stüben by default).
//  4. Optionally prune strong fine–fine connections.
//  5. Build P with the chosen interpolation method and remap its columns
//     to coarse-grid ids.
//
// Errors from the stages propagate unwrapped, so callers can match the
// subpackages' sentinels with errors.Is.
func Coarsen(a *sparse.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	s, err := strength.Classic(a, o.theta, o.strengthOpts...)
	if err != nil {
		return nil, err
	}

	offDiag := s.WithoutDiagonal()
	transpose := offDiag.Transpose()
	splitting := split.NewSplitting(a.N)
	switch o.splitter {
	case RugeStubenSplitter:
		err = split.RugeStuben(offDiag, transpose, splitting)
	case CLJPSplitter:
		err = split.CLJP(offDiag, transpose, splitting, o.cljpOpts...)
	default:
		err = ErrUnknownSplitter
	}
	if err != nil {
		return nil, err
	}

	if o.filterFF || o.method == ModifiedStandardInterpolation {
		if err = interp.FilterStrongFF(s, splitting); err != nil {
			return nil, err
		}
	}

	var (
		p    *sparse.Matrix
		diag interp.Diagnostics
	)
	switch o.method {
	case DirectInterpolation:
		p, err = interp.Direct(a, s, splitting)
	case StandardInterpolation:
		p, diag, err = interp.Standard(a, s, splitting)
	case ModifiedStandardInterpolation:
		p, diag, err = interp.ModifiedStandard(a, s, splitting)
	case ExtendedInterpolation:
		p, diag, err = interp.Extended(a, s, splitting)
	case ExtendedPlusSelfInterpolation:
		p, diag, err = interp.ExtendedPlusSelf(a, s, splitting)
	default:
		err = ErrUnknownMethod
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Strength:    s,
		Splitting:   splitting,
		P:           p,
		NumCoarse:   splitting.NumCoarse(),
		Diagnostics: diag,
	}, nil
}
