package lagcorr

import (
	"errors"
	"math"
)

var (
	// ErrLengthMismatch indicates the two series differ in length.
	ErrLengthMismatch = errors.New("lagcorr: series must have the same length")

	// ErrInsufficientData indicates fewer than two sentinel-free pairs, or
	// zero variance on one margin, so the correlation is undefined.
	ErrInsufficientData = errors.New("lagcorr: not enough valid pairs for a correlation")
)

// Lag1 returns the Pearson correlation between y1 and y2, restricted to
// index pairs where neither value equals the nodata sentinel. Callers
// typically pass one-sample-shifted views of the same series:
//
//	r, err := lagcorr.Lag1(y[:n-1], y[1:], nodata)
//
// On degenerate input (fewer than two valid pairs, or a constant margin)
// it returns (0, ErrInsufficientData) rather than propagating NaN.
func Lag1(y1, y2 []float64, nodata float64) (float64, error) {
	if len(y1) != len(y2) {
		return 0, ErrLengthMismatch
	}

	var count int
	var sum1, sum2 float64
	for i := range y1 {
		if y1[i] == nodata || y2[i] == nodata {
			continue
		}
		count++
		sum1 += y1[i]
		sum2 += y2[i]
	}
	if count < 2 {
		return 0, ErrInsufficientData
	}

	mean1 := sum1 / float64(count)
	mean2 := sum2 / float64(count)

	var ss1, ss2, cross float64
	for i := range y1 {
		if y1[i] == nodata || y2[i] == nodata {
			continue
		}
		d1 := y1[i] - mean1
		d2 := y2[i] - mean2
		ss1 += d1 * d1
		ss2 += d2 * d2
		cross += d1 * d2
	}
	if ss1 == 0 || ss2 == 0 {
		return 0, ErrInsufficientData
	}

	return cross / math.Sqrt(ss1*ss2), nil
}
