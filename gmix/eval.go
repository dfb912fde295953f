package gmix

// Eval returns the total intensity of the mixture at pixel (row, col).
//
// Per component: chi² = Dcc·u² + Drr·v² - 2·Drc·u·v with u, v the offsets
// from the component center; components with chi² ≥ MaxChi2 contribute
// exactly 0 and skip the exponential entirely; the rest contribute
// Pnorm·exp(-chi²/2) via the table approximation.  Contributions are
// accumulated in component order.
//
// This is the hot path of image fitting — called once per pixel per
// iteration.  It performs no validation, no allocation, and branches only
// on the cutoff; components must carry valid derived fields.  The result
// is a finite non-negative sum for any (row, col).
//
// Complexity: O(Len()).
func (g GMix) Eval(row, col float64) float64 {
	val := 0.0
	for i := range g {
		val += g[i].Eval(row, col)
	}
	return val
}
