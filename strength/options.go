// SPDX-License-Identifier: MIT

// Package strength: functional configuration for the strength builder.
// Defaults mirror the classical absolute-value measure; the negative-part
// measure is the "min" variant used for M-matrix style problems where only
// negative couplings should coarsen.

package strength

// Measure selects how an off-diagonal entry's influence is quantified.
type Measure uint8

const (
	// MeasureAbsolute uses |a| — the classical Ruge–Stüben measure.
	MeasureAbsolute Measure = iota

	// MeasureNegative uses -a with the row maximum floored at zero, so
	// positive couplings are never strong.
	MeasureNegative
)

// Option mutates builder options. Setters are idempotent; last writer wins.
type Option func(*options)

type options struct {
	measure Measure
}

// WithAbsoluteMeasure selects the |a| measure (the default).
func WithAbsoluteMeasure() Option {
	return func(o *options) { o.measure = MeasureAbsolute }
}

// WithNegativeMeasure selects the negative-part measure.
func WithNegativeMeasure() Option {
	return func(o *options) { o.measure = MeasureNegative }
}

func gatherOptions(user ...Option) options {
	o := options{measure: MeasureAbsolute}
	for _, set := range user {
		set(&o)
	}

	return o
}
