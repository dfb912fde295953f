package gmix

import "errors"

// Sentinel errors for gmix operations.  Kernels never return errors;
// these surface only from constructors and shape-validating operations.
var (
	// ErrBadDeterminant indicates a covariance matrix with det <= 0
	// (degenerate or non-positive-definite Gaussian).
	ErrBadDeterminant = errors.New("gmix: covariance determinant must be > 0")

	// ErrBadParamCount indicates a parameter slice whose length does not
	// match what the target mixture or model requires.
	ErrBadParamCount = errors.New("gmix: wrong number of parameters")

	// ErrEmptyMixture indicates a mixture with no components where at
	// least one is required.
	ErrEmptyMixture = errors.New("gmix: mixture must have at least one component")

	// ErrRangeShear indicates a reduced shear with |g| >= 1, outside the
	// physical unit disc.
	ErrRangeShear = errors.New("gmix: reduced shear magnitude must be < 1")

	// ErrRangeEllip indicates an ellipticity with |e| >= 1.
	ErrRangeEllip = errors.New("gmix: ellipticity magnitude must be < 1")

	// ErrUnsupportedModel indicates an unknown or unimplemented model
	// profile identifier.
	ErrUnsupportedModel = errors.New("gmix: unsupported model")

	// ErrNonPositiveT indicates a mixture whose weighted size T is not
	// positive, so ellipticities are undefined.
	ErrNonPositiveT = errors.New("gmix: weighted size T must be > 0")

	// ErrBadShape indicates non-positive image dimensions.
	ErrBadShape = errors.New("gmix: image dimensions must be positive")

	// ErrBadSubgrid indicates a sub-pixel grid factor below 1.
	ErrBadSubgrid = errors.New("gmix: sub-pixel grid factor must be >= 1")

	// ErrSizeMismatch indicates image and weight matrices of different
	// dimensions.
	ErrSizeMismatch = errors.New("gmix: image and weight must have the same shape")
)
