package gmix

import "math"

// Shear/ellipticity conversions.  Both live on the unit disc; they are
// related through the conformal parameter eta: e = tanh(eta), g = tanh(eta/2).

// G1G2ToE1E2 converts reduced shear (g1, g2) to ellipticity (e1, e2).
// Returns ErrRangeShear when g1²+g2² >= 1.
func G1G2ToE1E2(g1, g2 float64) (e1, e2 float64, err error) {
	g := math.Sqrt(g1*g1 + g2*g2)
	if g >= 1 {
		return 0, 0, ErrRangeShear
	}
	if g == 0 {
		return 0, 0, nil
	}

	eta := 2 * math.Atanh(g)
	e := math.Tanh(eta)
	if e >= 1 {
		// tanh saturates just below 1 in exact arithmetic; clamp the
		// rounded value back inside the disc.
		e = 0.99999999
	}

	fac := e / g
	return fac * g1, fac * g2, nil
}

// E1E2ToG1G2 converts ellipticity (e1, e2) to reduced shear (g1, g2), the
// inverse of G1G2ToE1E2.  Returns ErrRangeEllip when e1²+e2² >= 1.
func E1E2ToG1G2(e1, e2 float64) (g1, g2 float64, err error) {
	e := math.Sqrt(e1*e1 + e2*e2)
	if e >= 1 {
		return 0, 0, ErrRangeEllip
	}
	if e == 0 {
		return 0, 0, nil
	}

	eta := math.Atanh(e)
	g := math.Tanh(0.5 * eta)
	if g >= 1 {
		g = 0.99999999
	}

	fac := g / e
	return fac * e1, fac * e2, nil
}
