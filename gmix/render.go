package gmix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kstory8/ngmix/fastexp"
	"github.com/kstory8/ngmix/jacobian"
)

// RenderOptions configures mixture rendering.
//
// Fields:
//   - Nsub — sub-pixel integration grid: each pixel's value is the area
//     average of Nsub×Nsub evaluations across the pixel.  1 (the default)
//     samples the pixel center only.
//   - Jac  — optional coordinate transform: when set, the mixture is
//     defined in (u, v) space and each sample point is mapped through it.
type RenderOptions struct {
	Nsub int
	Jac  *jacobian.Jacobian
}

// DefaultRenderOptions returns RenderOptions with Nsub=1 and no transform.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Nsub: 1}
}

// Render evaluates the mixture over a new nrows×ncols image.
// Returns ErrBadShape for non-positive dimensions, ErrBadSubgrid for
// Nsub < 1, ErrEmptyMixture for an empty mixture.
func (g GMix) Render(nrows, ncols int, opts RenderOptions) (*mat.Dense, error) {
	if nrows <= 0 || ncols <= 0 {
		return nil, ErrBadShape
	}
	img := mat.NewDense(nrows, ncols, nil)
	if err := g.RenderInto(img, opts); err != nil {
		return nil, err
	}
	return img, nil
}

// RenderInto adds the mixture's values into an existing image (zero it
// first if an absolute rendering is wanted).  The inner loop uses the
// cubic lookup exponential, whose ~0.3% accuracy is well below the
// sub-pixel discretization error it is averaged under.
//
// Complexity: O(nrows·ncols·Nsub²·Len()).
func (g GMix) RenderInto(img *mat.Dense, opts RenderOptions) error {
	if len(g) == 0 {
		return ErrEmptyMixture
	}
	nsub := opts.Nsub
	if nsub < 1 {
		return ErrBadSubgrid
	}

	nrows, ncols := img.Dims()
	step := 1.0 / float64(nsub)
	offset := float64(nsub-1) * step / 2
	areafac := 1.0 / float64(nsub*nsub)

	if opts.Jac != nil {
		g.renderJacob(img, nrows, ncols, nsub, step, offset, areafac, *opts.Jac)
		return nil
	}

	for row := 0; row < nrows; row++ {
		for col := 0; col < ncols; col++ {
			tval := 0.0
			trow := float64(row) - offset
			for irsub := 0; irsub < nsub; irsub++ {
				tcol := float64(col) - offset
				for icsub := 0; icsub < nsub; icsub++ {
					tval += g.evalExp3(trow, tcol)
					tcol += step
				}
				trow += step
			}
			img.Set(row, col, img.At(row, col)+tval*areafac)
		}
	}
	return nil
}

// renderJacob is RenderInto's transformed path: sample points are mapped
// to (u, v) once per sub-row, then stepped by the column derivatives per
// sub-column.
func (g GMix) renderJacob(img *mat.Dense, nrows, ncols, nsub int, step, offset, areafac float64, jac jacobian.Jacobian) {
	ustep := step * jac.DudCol
	vstep := step * jac.DvdCol

	for row := 0; row < nrows; row++ {
		for col := 0; col < ncols; col++ {
			tval := 0.0
			trow := float64(row) - offset
			lowcol := float64(col) - offset

			for irsub := 0; irsub < nsub; irsub++ {
				// restart from the low column, then step u,v
				u, v := jac.Apply(trow, lowcol)
				for icsub := 0; icsub < nsub; icsub++ {
					tval += g.evalExp3(u, v)
					u += ustep
					v += vstep
				}
				trow += step
			}
			img.Set(row, col, img.At(row, col)+tval*areafac)
		}
	}
}

// evalExp3 is the rendering/likelihood inner kernel: same quadratic form
// and cutoff as Eval, but with the cheaper cubic exponential and a
// chi² ≥ 0 guard against stale derived fields producing a table index out
// of range.
func (g GMix) evalExp3(row, col float64) float64 {
	val := 0.0
	for i := range g {
		chi2 := g[i].Chi2(row, col)
		if chi2 < MaxChi2 && chi2 >= 0 {
			val += g[i].Pnorm * fastexp.Exp3(-0.5*chi2)
		}
	}
	return val
}
