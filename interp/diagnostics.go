// SPDX-License-Identifier: MIT

package interp

// degenerateEps is the magnitude below which a denominator is reported as
// numerically zero. The division still proceeds.
const degenerateEps = 1e-16

// Diagnostics tallies numerical degeneracies encountered while filling P.
// Counts are per occurrence: a zero outer denominator on a row with three
// interpolation entries is reported three times, once per affected weight.
type Diagnostics struct {
	// ZeroInnerDenominators counts near-zero second-level denominators
	// (the Σ a_kl sums over a fine neighbor's strong coarse couplings).
	ZeroInnerDenominators int

	// ZeroOuterDenominators counts near-zero row denominators
	// (diagonal plus weak couplings).
	ZeroOuterDenominators int
}

// Degenerate reports whether any near-zero denominator was encountered;
// weights of the produced operator may be non-finite in that case.
func (d Diagnostics) Degenerate() bool {
	return d.ZeroInnerDenominators > 0 || d.ZeroOuterDenominators > 0
}

// merge accumulates counts from a sub-computation.
func (d *Diagnostics) merge(other Diagnostics) {
	d.ZeroInnerDenominators += other.ZeroInnerDenominators
	d.ZeroOuterDenominators += other.ZeroOuterDenominators
}

// checkInner tallies a near-zero inner denominator.
func (d *Diagnostics) checkInner(v float64) {
	if v < degenerateEps && v > -degenerateEps {
		d.ZeroInnerDenominators++
	}
}

// checkOuter tallies a near-zero outer denominator.
func (d *Diagnostics) checkOuter(v float64) {
	if v < degenerateEps && v > -degenerateEps {
		d.ZeroOuterDenominators++
	}
}
