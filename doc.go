// Package coarsen is an in-memory toolkit for the setup phase of classical
// algebraic multigrid: deciding which unknowns of a sparse operator survive
// to the coarse grid, and how the rest interpolate from them.
//
// 🚀 What is coarsen?
//
//	A library that brings together the classical coarsening pipeline:
//		• Strength of connection: absolute and signed threshold measures
//		• C/F splitting: Ruge–Stüben and CLJP selectors
//		• Refinement: compatible relaxation over a target vector
//		• Filtering: strong fine–fine pruning without a common coarse neighbor
//		• Interpolation: direct, standard, modified and distance-two builders
//
// ✨ Why choose coarsen?
//
//   - Exact-size passes – every operator is sized before a single weight is computed
//   - Honest numerics – degenerate denominators are reported, never papered over
//   - Sentinel errors – every failure mode matches with errors.Is
//   - Composable – run the one-call pipeline, or drive each stage yourself
//
// Under the hood, everything is organized under four subpackages:
//
//	sparse/   — the square CSR container every stage speaks
//	strength/ — strength-of-connection thresholding
//	split/    — Ruge–Stüben, CLJP and compatible-relaxation splitting
//	interp/   — fine–fine filtering and the interpolation operator builders
//
// The root package wires them into a single call:
//
//	res, err := coarsen.Coarsen(a,
//		coarsen.WithTheta(0.25),
//		coarsen.WithInterpolation(coarsen.StandardInterpolation))
//
// which thresholds A, splits the nodes, builds P, and hands back the lot.
package coarsen
