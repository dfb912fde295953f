package gmix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kstory8/ngmix/jacobian"
)

// LogLikeResult carries the Gaussian log-likelihood of a mixture against
// an image, plus the signal-to-noise accumulators needed by callers that
// estimate S/N = S2NNumer/√S2NDenom.
type LogLikeResult struct {
	// LogLike is -½ Σ w·(model - pixel)² over pixels with weight > 0.
	LogLike float64
	// S2NNumer is Σ w·pixel·model.
	S2NNumer float64
	// S2NDenom is Σ w·model².
	S2NDenom float64
}

// LogLike computes the weighted log-likelihood of the mixture against an
// image and its inverse-variance weight map.  Pixels with weight <= 0 are
// skipped (masked).  When jac is non-nil the model is evaluated in the
// transformed (u, v) frame.
//
// Returns ErrEmptyMixture for an empty mixture and ErrSizeMismatch when
// image and weight dimensions differ.
//
// Complexity: O(nrows·ncols·Len()).
func (g GMix) LogLike(image, weight *mat.Dense, jac *jacobian.Jacobian) (LogLikeResult, error) {
	var res LogLikeResult
	if len(g) == 0 {
		return res, ErrEmptyMixture
	}
	nrows, ncols := image.Dims()
	wrows, wcols := weight.Dims()
	if nrows != wrows || ncols != wcols {
		return res, ErrSizeMismatch
	}

	if jac != nil {
		g.loglikeJacob(&res, image, weight, nrows, ncols, *jac)
	} else {
		g.loglikePixel(&res, image, weight, nrows, ncols)
	}

	res.LogLike *= -0.5
	return res, nil
}

// loglikePixel accumulates the sums with the model evaluated directly in
// pixel coordinates.
func (g GMix) loglikePixel(res *LogLikeResult, image, weight *mat.Dense, nrows, ncols int) {
	for row := 0; row < nrows; row++ {
		for col := 0; col < ncols; col++ {
			ivar := weight.At(row, col)
			if ivar <= 0 {
				continue
			}

			model := g.evalExp3(float64(row), float64(col))
			pix := image.At(row, col)
			diff := model - pix

			res.LogLike += diff * diff * ivar
			res.S2NNumer += pix * model * ivar
			res.S2NDenom += model * model * ivar
		}
	}
}

// loglikeJacob accumulates the sums in the transformed frame, stepping
// (u, v) by the column derivatives across each row.  Masked pixels still
// advance the running coordinates.
func (g GMix) loglikeJacob(res *LogLikeResult, image, weight *mat.Dense, nrows, ncols int, jac jacobian.Jacobian) {
	for row := 0; row < nrows; row++ {
		u, v := jac.Apply(float64(row), 0)
		for col := 0; col < ncols; col++ {
			if ivar := weight.At(row, col); ivar > 0 {
				model := g.evalExp3(u, v)
				pix := image.At(row, col)
				diff := model - pix

				res.LogLike += diff * diff * ivar
				res.S2NNumer += pix * model * ivar
				res.S2NDenom += model * model * ivar
			}

			u += jac.DudCol
			v += jac.DvdCol
		}
	}
}
