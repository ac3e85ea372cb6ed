// Package lagcorr computes the lag-1 autocorrelation of gappy series: a
// Pearson correlation between a series and its one-step shift that skips
// every pair touching a nodata sentinel.
//
// Upstream pipelines use this as a cheap pre-check before smoothing: a
// strongly autocorrelated series carries real temporal signal and deserves
// a low smoothing-parameter search grid, while a noise-dominated one gets
// a higher grid (see vcurve.AutoGrid).
//
// ⚙️ Usage:
//
//	r, err := lagcorr.Lag1(y[:len(y)-1], y[1:], nodata)
//	if err != nil {
//	  // ErrLengthMismatch or ErrInsufficientData
//	}
//
// A pair (y1[i], y2[i]) enters the statistic only when neither value equals
// the sentinel; means, variances and the cross-product are computed over
// the surviving pairs alone. Fewer than two valid pairs, or zero variance
// on either margin, yields ErrInsufficientData instead of a silent NaN.
//
// Complexity: O(n) time, O(1) memory.
package lagcorr
