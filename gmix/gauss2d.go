package gmix

import (
	"math"

	"github.com/kstory8/ngmix/fastexp"
)

// twoPi saves a multiply against math.Pi in the normalization.
const twoPi = 2 * math.Pi

// NewGauss2D builds a component from its free parameters and derives the
// determinant, precision entries and normalizations.
// Returns ErrBadDeterminant when irr·icc - irc² <= 0.
func NewGauss2D(p, row, col, irr, irc, icc float64) (Gauss2D, error) {
	var g Gauss2D
	if err := g.set(p, row, col, irr, irc, icc); err != nil {
		return Gauss2D{}, err
	}
	return g, nil
}

// set populates all fields of g, validating the determinant.  Every path
// that writes a component goes through here, so the derived-field
// invariant holds everywhere downstream.
func (g *Gauss2D) set(p, row, col, irr, irc, icc float64) error {
	det := irr*icc - irc*irc
	if det <= 0 {
		return ErrBadDeterminant
	}

	g.P = p
	g.Row = row
	g.Col = col
	g.Irr = irr
	g.Irc = irc
	g.Icc = icc

	g.Det = det

	idet := 1.0 / det
	g.Drr = irr * idet
	g.Drc = irc * idet
	g.Dcc = icc * idet
	g.Norm = 1.0 / (twoPi * math.Sqrt(det))

	g.Pnorm = g.P * g.Norm

	return nil
}

// Chi2 returns the quadratic form of the component at (row, col):
// Dcc·u² + Drr·v² - 2·Drc·u·v with u = row-Row, v = col-Col.  The Dcc/Drr
// slot assignment follows the construction layer's convention; the two
// compose to the correct Mahalanobis distance (pinned by the symmetry and
// accuracy tests).
func (g *Gauss2D) Chi2(row, col float64) float64 {
	u := row - g.Row
	v := col - g.Col
	return g.Dcc*u*u + g.Drr*v*v - 2*g.Drc*u*v
}

// Eval returns the component's Gaussian density at (row, col), or exactly
// 0 when chi² ≥ MaxChi2.  No validation: the component must carry valid
// derived fields.  The single cutoff comparison also keeps the argument of
// fastexp.Exp inside its (-26, 0] domain.
func (g *Gauss2D) Eval(row, col float64) float64 {
	chi2 := g.Chi2(row, col)
	if chi2 >= MaxChi2 {
		return 0
	}
	return g.Pnorm * fastexp.Exp(-0.5*chi2)
}
