package fastexp

import "math"

// Exp approximates e^x via a table-driven reconstruction of the IEEE-754
// bit pattern.
//
// Description:
//
//	Write x = n·ln(2)/2048 + t with n an integer and t a small residual.
//	Then e^x = 2^(n/2048) · e^(-t').  The 2^(n/2048) factor is assembled
//	directly as a bit pattern: the exponent field comes from n/2048 and
//	the mantissa from a 2048-entry table of 2^(i/2048) fractions; the
//	residual factor is a cubic polynomial in t.
//
// Algorithm Outline:
//  1. d = x·a + b, where a = 2048/ln(2) and b = 3·2^51.  Adding b forces
//     round-to-nearest of x·a into the low mantissa bits of d, so the
//     bit pattern of d carries n = round(x·a) as an integer.
//  2. The low 11 bits of n index the mantissa table; the remaining bits,
//     rebased by adj, become the exponent field.
//  3. t = (d-b)·ra - x recovers the rounding residual; the polynomial
//     y = (C3-t)·t²·C2 - t + C1 approximates e^(-t) near t = 0.
//  4. The result is y times the reconstructed power of two.
//
// Contract: valid for x in (-26, 0]; no input validation is performed and
// the result is unspecified outside that interval.  Relative error is on
// the order of 1e-9 (pinned by tests at 1e-8).
//
// Complexity: O(1) — one table lookup, a handful of float multiplies/adds,
// and two bit reinterpretations.  No branches, no allocation.
func Exp(x float64) float64 {
	d := x*expA + expB
	i := math.Float64bits(d)
	iax := expTable[i&expMask]

	t := (d-expB)*expRA - x
	u := ((i + expAdj) >> expSBit) << 52
	y := (expC3-t)*(t*t)*expC2 - t + expC1

	return y * math.Float64frombits(u|iax)
}

// Fixed constants of the approximation.  Together with the table size they
// define the accuracy/speed tradeoff; changing any of them requires
// re-validating the error bound in fastexp_test.go.
const (
	// expSBit is the number of mantissa-table index bits.
	expSBit = 11
	// expSize is the mantissa table size, 2^expSBit.
	expSize = 1 << expSBit
	// expMask selects the table-index bits of the biased integer.
	expMask = expSize - 1
	// expAdj rebases the exponent field after the table bits are shifted
	// out: expAdj>>expSBit equals the IEEE-754 double bias, 1023.
	expAdj = (1 << (expSBit + 10)) - (1 << expSBit)

	// expB is 3·2^51: adding it to a double of magnitude below 2^51
	// places the rounded integer part in the low mantissa bits.
	expB = 6755399441055744.0

	// expC1..expC3 are the minimax cubic coefficients approximating
	// e^(-t) for the small residual t.
	expC1 = 1.0
	expC2 = 0.16666666685227835064
	expC3 = 3.0000000027955394
)

var (
	// expA scales x so that one unit of the rounded integer corresponds
	// to 2^(1/expSize).
	expA = expSize / math.Ln2
	// expRA is 1/expA, used to recover the residual.
	expRA = 1 / expA

	// expTable holds the 52-bit mantissa fraction of 2^(i/expSize) for
	// each of the expSize subdivisions of one exponent unit.  Built once
	// here; read-only thereafter.
	expTable = buildExpTable()
)

func buildExpTable() [expSize]uint64 {
	const mantissaMask = (uint64(1) << 52) - 1
	var tbl [expSize]uint64
	for i := range tbl {
		tbl[i] = math.Float64bits(math.Pow(2, float64(i)/expSize)) & mantissaMask
	}
	return tbl
}
