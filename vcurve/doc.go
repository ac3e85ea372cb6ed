// Package vcurve selects the Whittaker smoothing parameter λ automatically
// with the V-curve method, and wraps the selection in an iterative
// reweighting loop for asymmetric envelope fitting.
//
// 🚀 What is the V-curve?
//
//	Sweep λ over a grid of log10 candidates and fit once per candidate.
//	Each fit yields two log-scale scores:
//		• F(v) = log10 of the weighted residual sum of squares (fidelity)
//		• R(v) = log10 of the summed squared second differences (roughness)
//	Plotted against each other they trace a V-shaped curve; its sharpest
//	corner — the point of maximum curvature — is the best trade-off
//	between chasing the data and flattening it. One O(n) solve per
//	candidate, no held-out data, no cross-validation folds: cheap enough
//	to run once per pixel over a whole satellite archive.
//
// ✨ Key features:
//   - Optimize: V-curve selection over a caller-supplied log10(λ) grid
//   - OptimizeAsymmetric: residual-sign reweighting around the optimizer,
//     biasing the fit toward an upper (p>0.5) or lower (p<0.5) envelope
//   - AutoGrid: picks the operational default grid from the series' lag-1
//     autocorrelation, the way production pipelines do
//
// ⚙️ Usage:
//
//	llas := vcurve.AutoGrid(y, nodata) // or your own log10(λ) candidates
//	res, err := vcurve.Optimize(y, w, llas)
//	if err != nil {
//	  // ErrGridTooShort, ErrGridNotAscending, ErrDegenerateCurve,
//	  // or a smooth.* validation error
//	}
//	_ = res.Z         // fitted series at the chosen λ
//	_ = res.Lambda    // chosen λ
//	_ = res.LogLambda // log10(λ), handy for persisting parameter grids
//
// Selection policy: curvature is approximated at interior grid points by
// central finite differences of F and R with respect to v,
//
//	κ = (F′·R″ − R′·F″) / (F′² + R′²)^(3/2)
//
// endpoints are excluded (no curvature without both neighbors), the
// candidate with maximum |κ| wins, and ties resolve to the smallest λ
// (first hit in the ascending scan). The policy is deterministic:
// identical inputs always produce identical results.
//
// Performance: O(n·len(llas)) time, O(n + len(llas)) memory.
package vcurve
