// Package whittaker is a fast, allocation-light toolkit for denoising
// weighted, regularly-sampled time series with the Whittaker smoother —
// from the raw pentadiagonal solver up to automatic V-curve tuning and
// asymmetric envelope fitting.
//
// 🚀 What is the Whittaker smoother?
//
//	A penalized least-squares fit that balances fidelity to weighted
//	observations against a second-difference roughness penalty.
//	It is the workhorse behind large-scale satellite index smoothing:
//		• one solve per series, O(n) time and memory
//		• zero-weight slots are interpolated, not dropped
//		• smoothness controlled by a single parameter λ
//		• λ tuned automatically from the data via the V-curve
//
// ✨ Why choose this library?
//
//   - O(n) everywhere – banded LDLᵀ factorization, never a dense matrix
//   - Allocation-light – optional workspaces for per-pixel batch loops
//   - Pure Go – no cgo, no hidden deps
//   - Embarrassingly parallel – every call is pure; fan out across pixels
//
// Under the hood, everything is organized into four subpackages:
//
//	banded/  — symmetric pentadiagonal LDLᵀ solver (the O(n) core)
//	smooth/  — fixed-λ smoothing + fixed-λ asymmetric envelope fitting
//	vcurve/  — automatic λ selection (V-curve) + asymmetric optimization
//	lagcorr/ — gap-aware lag-1 autocorrelation for grid pre-selection
//
// Quick ASCII example:
//
//	y: ·  ·     ·   x        ·  ·      (x = outlier, weight 0)
//	z: ────────────────────────────    (smooth curve through the gap)
//
// A typical per-pixel pipeline:
//
//	llas := vcurve.AutoGrid(y, nodata)
//	res, err := vcurve.OptimizeAsymmetric(y, w, llas, 0.90, nil)
//	// res.Z is the upper-envelope fit, res.Lambda the chosen λ
//
//	go get github.com/katalvlaran/whittaker
package whittaker
