package smooth

import "errors"

var (
	// ErrLengthMismatch indicates y, w and the output buffer differ in length.
	ErrLengthMismatch = errors.New("smooth: y, w and output must have the same length")
	// ErrTooShort indicates the series has fewer than 3 samples.
	ErrTooShort = errors.New("smooth: series must have at least 3 samples")
	// ErrNonPositiveLambda indicates lambda is not a positive finite number.
	ErrNonPositiveLambda = errors.New("smooth: lambda must be a positive finite number")
	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("smooth: weights must be non-negative")
	// ErrNonFiniteWeight indicates a NaN or infinite weight.
	ErrNonFiniteWeight = errors.New("smooth: weights must be finite")
	// ErrAllWeightsZero indicates no positive weight, so the normal system
	// is singular and the fit is undefined.
	ErrAllWeightsZero = errors.New("smooth: at least one weight must be positive")
	// ErrAsymmetryOutOfRange indicates the asymmetry parameter p is outside (0, 1).
	ErrAsymmetryOutOfRange = errors.New("smooth: asymmetry parameter p must lie in (0, 1)")
)
