package gmix

import "math"

// New returns a zeroed mixture of n components, to be populated with Fill.
// Returns ErrEmptyMixture when n <= 0.
func New(n int) (GMix, error) {
	if n <= 0 {
		return nil, ErrEmptyMixture
	}
	return make(GMix, n), nil
}

// NewFromPars builds a mixture from a full parameter vector
// [p1,row1,col1,irr1,irc1,icc1, p2,...], 6 values per component.
// Returns ErrBadParamCount for an empty or non-multiple-of-6 slice and
// ErrBadDeterminant for any degenerate covariance.
func NewFromPars(pars []float64) (GMix, error) {
	if len(pars) == 0 || len(pars)%parsPerGauss != 0 {
		return nil, ErrBadParamCount
	}
	g := make(GMix, len(pars)/parsPerGauss)
	if err := g.Fill(pars); err != nil {
		return nil, err
	}
	return g, nil
}

// Fill repopulates the mixture in place from a full parameter vector.
// The vector length must be exactly 6·Len().
func (g GMix) Fill(pars []float64) error {
	if len(pars) != parsPerGauss*len(g) {
		return ErrBadParamCount
	}
	for i := range g {
		beg := i * parsPerGauss
		err := g[i].set(pars[beg], pars[beg+1], pars[beg+2], pars[beg+3], pars[beg+4], pars[beg+5])
		if err != nil {
			return err
		}
	}
	return nil
}

// FullPars returns the free parameters of every component as a flat
// [p,row,col,irr,irc,icc]×n vector, the inverse of Fill.
func (g GMix) FullPars() []float64 {
	pars := make([]float64, parsPerGauss*len(g))
	for i := range g {
		beg := i * parsPerGauss
		pars[beg] = g[i].P
		pars[beg+1] = g[i].Row
		pars[beg+2] = g[i].Col
		pars[beg+3] = g[i].Irr
		pars[beg+4] = g[i].Irc
		pars[beg+5] = g[i].Icc
	}
	return pars
}

// Copy returns an independent copy of the mixture.
func (g GMix) Copy() GMix {
	out := make(GMix, len(g))
	copy(out, g)
	return out
}

// Len returns the number of components.
func (g GMix) Len() int { return len(g) }

// Psum returns the total weight Σp.
func (g GMix) Psum() float64 {
	sum := 0.0
	for i := range g {
		sum += g[i].P
	}
	return sum
}

// SetPsum rescales all weights so Σp equals psum, keeping Pnorm
// consistent.
func (g GMix) SetPsum(psum float64) {
	rat := psum / g.Psum()
	for i := range g {
		g[i].P *= rat
		g[i].Pnorm = g[i].P * g[i].Norm
	}
}

// Cen returns the weight-averaged center of the mixture.
func (g GMix) Cen() (row, col float64) {
	psum := 0.0
	for i := range g {
		p := g[i].P
		row += p * g[i].Row
		col += p * g[i].Col
		psum += p
	}
	return row / psum, col / psum
}

// SetCen translates the whole mixture so its weighted center lands at
// (row, col).  Centers are free parameters, so no derived field goes
// stale.
func (g GMix) SetCen(row, col float64) {
	curRow, curCol := g.Cen()
	dRow := row - curRow
	dCol := col - curCol
	for i := range g {
		g[i].Row += dRow
		g[i].Col += dCol
	}
}

// T returns the weighted mean size Σp·(irr+icc) / Σp.
func (g GMix) T() float64 {
	t := 0.0
	psum := 0.0
	for i := range g {
		p := g[i].P
		t += p * (g[i].Irr + g[i].Icc)
		psum += p
	}
	return t / psum
}

// E1E2T returns the weighted ellipticity components and size of the
// mixture.  Only meaningful when the component centers coincide.
// Returns ErrNonPositiveT when the weighted size is not positive.
func (g GMix) E1E2T() (e1, e2, t float64, err error) {
	var irr, irc, icc, psum float64
	for i := range g {
		p := g[i].P
		irr += p * g[i].Irr
		irc += p * g[i].Irc
		icc += p * g[i].Icc
		psum += p
	}

	ipsum := 1.0 / psum
	irr *= ipsum
	irc *= ipsum
	icc *= ipsum

	t = irr + icc
	if t <= 0 {
		return 0, 0, t, ErrNonPositiveT
	}
	e1 = (icc - irr) / t
	e2 = 2 * irc / t
	return e1, e2, t, nil
}

// G1G2T is E1E2T expressed as reduced shear.
func (g GMix) G1G2T() (g1, g2, t float64, err error) {
	e1, e2, t, err := g.E1E2T()
	if err != nil {
		return 0, 0, t, err
	}
	g1, g2, err = E1E2ToG1G2(e1, e2)
	return g1, g2, t, err
}

// Convolve returns the closed-form convolution of the mixture with a PSF
// mixture: one component per (object, psf) pair, with covariances added,
// centers offset by the PSF component's offset from the PSF center, and
// weights multiplied by the PSF weights normalized to unit sum.
// Returns ErrEmptyMixture when either input is empty.
func (g GMix) Convolve(psf GMix) (GMix, error) {
	if len(g) == 0 || len(psf) == 0 {
		return nil, ErrEmptyMixture
	}

	psfRow, psfCol := psf.Cen()
	psfIpsum := 1.0 / psf.Psum()

	out := make(GMix, len(g)*len(psf))
	k := 0
	for i := range g {
		for j := range psf {
			p := g[i].P * psf[j].P * psfIpsum

			row := g[i].Row + (psf[j].Row - psfRow)
			col := g[i].Col + (psf[j].Col - psfCol)

			irr := g[i].Irr + psf[j].Irr
			irc := g[i].Irc + psf[j].Irc
			icc := g[i].Icc + psf[j].Icc

			if err := out[k].set(p, row, col, irr, irc, icc); err != nil {
				return nil, err
			}
			k++
		}
	}
	return out, nil
}

// Wmomsum returns Σp·(irr+icc), the unnormalized weighted moment sum.
func (g GMix) Wmomsum() float64 {
	sum := 0.0
	for i := range g {
		sum += g[i].P * (g[i].Irr + g[i].Icc)
	}
	return sum
}

// Verify reports whether every component carries a positive determinant.
// Intended for debug assertions at module boundaries; kernels never call
// it.
func (g GMix) Verify() error {
	for i := range g {
		if g[i].Det <= 0 || math.IsNaN(g[i].Det) {
			return ErrBadDeterminant
		}
	}
	return nil
}
