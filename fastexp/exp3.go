package fastexp

import "math"

// Exp3 approximates e^x with an integer-grid lookup and a third-order
// Taylor factor.
//
// Description:
//
//	x is split into the nearest integer i and the fraction f = x - i with
//	|f| ≤ 1/2.  Then e^x = e^i · e^f, where e^i comes from a 27-entry
//	table covering i = -26..0 and e^f is approximated by the cubic
//	Taylor factor (6 + f·(6 + f·(3 + f)))/6.
//
// Coarser than Exp (relative error below ~0.3%, worst at |f| = 1/2) but
// cheap and branch-free; the rendering and log-likelihood loops in gmix
// use it, matching the accuracy that subpixel integration needs.
//
// Contract: valid for x in [-26, 0]; no input validation is performed and
// the result is unspecified (or panics on an out-of-range table index)
// outside that interval.
//
// Complexity: O(1).
func Exp3(x float64) float64 {
	i := int(x - 0.5) // nearest integer for x ≤ 0
	f := x - float64(i)

	return exp3Table[i-exp3I0] * (6 + f*(6+f*(3+f))) * 0.16666666
}

// exp3I0 is the lowest integer covered by the lookup table.
const exp3I0 = -26

// exp3Table holds e^i for i = exp3I0..0.
var exp3Table = buildExp3Table()

func buildExp3Table() [1 - exp3I0]float64 {
	var tbl [1 - exp3I0]float64
	for i := range tbl {
		tbl[i] = math.Exp(float64(exp3I0 + i))
	}
	return tbl
}
