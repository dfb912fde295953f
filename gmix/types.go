// Package gmix core types: the Gauss2D component record, the GMix
// container, and the model-profile identifiers.
package gmix

// MaxChi2 is the quadratic-form cutoff: a component whose chi² at a pixel
// reaches this value contributes exactly zero there.  e^(-12.5) ≈ 3.7e-6
// of the peak is negligible against typical flux ranges and float noise,
// and skipping the exponential for such tails is the main optimization of
// the evaluation loop.
const MaxChi2 = 25.0

// parsPerGauss is the length of one component's slot in a "full"
// parameter vector: [p, row, col, irr, irc, icc].
const parsPerGauss = 6

// Gauss2D is one elliptical 2-D Gaussian term of a mixture.
//
// P, Row, Col and the covariance entries Irr/Irc/Icc are the free
// parameters.  Det, the precision entries Drr/Drc/Dcc, Norm and Pnorm are
// derived — populated by the construction layer (NewGauss2D, GMix.Fill)
// and treated as already valid by every kernel.  If you change a free
// parameter directly, the derived fields are stale until the component is
// rebuilt.
type Gauss2D struct {
	P   float64 // weight (flux contribution)
	Row float64 // center row
	Col float64 // center col

	Irr float64 // covariance <row·row>
	Irc float64 // covariance <row·col>
	Icc float64 // covariance <col·col>

	Det float64 // covariance determinant, > 0 for a valid component

	Drr float64 // precision entry, Irr/Det
	Drc float64 // precision entry, Irc/Det
	Dcc float64 // precision entry, Icc/Det

	Norm  float64 // 1 / (2π·√Det)
	Pnorm float64 // P·Norm, precomputed for the per-pixel loop
}

// GMix is an ordered sequence of Gauss2D components.  Order does not
// affect the value of the mixture (summation is commutative up to
// floating-point rounding) but is preserved for reproducibility.
type GMix []Gauss2D

// Model identifies a named mixture profile: a fixed decomposition of a
// galaxy/PSF light profile into Gaussians, filled from a 6-parameter
// vector [row, col, g1, g2, T, counts].
type Model int

const (
	// ModelFull is a free-form mixture given by a full 6n parameter vector.
	ModelFull Model = iota
	// ModelGauss is a single Gaussian.
	ModelGauss
	// ModelTurb is a 3-Gaussian fit to a turbulent (Kolmogorov) PSF.
	ModelTurb
	// ModelExp is a 6-Gaussian fit to an exponential-disk profile.
	ModelExp
	// ModelDev is a 10-Gaussian fit to a de Vaucouleurs profile.
	ModelDev
)

// String returns the canonical short name of the model.
func (m Model) String() string {
	switch m {
	case ModelFull:
		return "full"
	case ModelGauss:
		return "gauss"
	case ModelTurb:
		return "turb"
	case ModelExp:
		return "exp"
	case ModelDev:
		return "dev"
	default:
		return "unknown"
	}
}
