package gmix_test

import (
	"math"
	"testing"

	"github.com/kstory8/ngmix/gmix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalTol is the relative tolerance inherited from the fastexp.Exp
// accuracy bound.
const evalTol = 1e-8

// mustGauss builds a component or fails the test.
func mustGauss(t *testing.T, p, row, col, irr, irc, icc float64) gmix.Gauss2D {
	t.Helper()
	g, err := gmix.NewGauss2D(p, row, col, irr, irc, icc)
	require.NoError(t, err)
	return g
}

// unitGauss is the reference component: centered at the origin,
// identity covariance, unit weight, so Pnorm = 1/(2π) and
// chi2(row,col) = row² + col².
func unitGauss(t *testing.T) gmix.Gauss2D {
	t.Helper()
	return mustGauss(t, 1, 0, 0, 1, 0, 1)
}

// TestEval_ConcreteScenario pins the reference case: the peak value is
// 1/(2π) and a point just past the cutoff yields exactly zero.
func TestEval_ConcreteScenario(t *testing.T) {
	g := gmix.GMix{unitGauss(t)}

	assert.InDelta(t, 1/(2*math.Pi), g.Eval(0, 0), 1e-6, "peak must be ≈ 0.159155")

	// chi2 = row² = 25.0001 ≥ MaxChi2 ⇒ exact zero
	row := math.Sqrt(25.0001)
	assert.Zero(t, g.Eval(row, 0), "past the cutoff the contribution is exactly 0")
}

// TestEval_CutoffConsistency sweeps chi² across the cutoff for a single
// component: exact zero at and above 25, ε-close to pnorm·exp(-chi²/2)
// below.
func TestEval_CutoffConsistency(t *testing.T) {
	c := unitGauss(t)
	g := gmix.GMix{c}

	for chi2 := 0.5; chi2 < 30; chi2 += 0.25 {
		row := math.Sqrt(chi2)
		got := g.Eval(row, 0)
		if chi2 >= gmix.MaxChi2 {
			assert.Zero(t, got, "chi2=%v must be cut off", chi2)
			continue
		}
		want := c.Pnorm * math.Exp(-0.5*chi2)
		assert.InEpsilon(t, want, got, evalTol, "chi2=%v", chi2)
	}

	// exactly at the threshold
	assert.Zero(t, g.Eval(5, 0), "chi2 == 25 is already cut off")
}

// TestEval_EllipticalMatchesExact checks a sheared, off-center component
// against the analytic density computed with math.Exp.
func TestEval_EllipticalMatchesExact(t *testing.T) {
	c := mustGauss(t, 2.5, 10, 12, 4.0, 1.5, 2.5)
	g := gmix.GMix{c}

	for _, pt := range [][2]float64{
		{10, 12}, {11, 12.5}, {9.3, 10.7}, {12, 14}, {8, 11},
	} {
		u := pt[0] - c.Row
		v := pt[1] - c.Col
		chi2 := c.Dcc*u*u + c.Drr*v*v - 2*c.Drc*u*v
		require.Less(t, chi2, gmix.MaxChi2)

		want := c.Pnorm * math.Exp(-0.5*chi2)
		assert.InEpsilon(t, want, g.Eval(pt[0], pt[1]), evalTol, "point %v", pt)
	}
}

// TestEval_Additivity verifies that evaluating a concatenated mixture
// equals the sum of the parts within floating-point rounding.
func TestEval_Additivity(t *testing.T) {
	a := gmix.GMix{
		mustGauss(t, 1.0, 5, 5, 2, 0.3, 2),
		mustGauss(t, 0.5, 6, 4, 1, 0, 1.5),
	}
	b := gmix.GMix{
		mustGauss(t, 2.0, 5.5, 5.5, 3, -0.4, 2.5),
		mustGauss(t, 0.1, 4, 6, 0.5, 0, 0.5),
		mustGauss(t, 0.7, 5, 5, 8, 1, 6),
	}
	both := append(append(gmix.GMix{}, a...), b...)

	for _, pt := range [][2]float64{{5, 5}, {4.5, 5.5}, {6, 6}, {3, 7}} {
		sum := a.Eval(pt[0], pt[1]) + b.Eval(pt[0], pt[1])
		assert.InEpsilon(t, sum, both.Eval(pt[0], pt[1]), 1e-14, "point %v", pt)
	}
}

// TestEval_Symmetry verifies reflection symmetry of an isotropic
// component: mirrored displacements about the center give identical
// values (the quadratic form is even in (u, v)).
func TestEval_Symmetry(t *testing.T) {
	g := gmix.GMix{mustGauss(t, 1.3, 7, 9, 2, 0, 2)}

	for _, d := range [][2]float64{{1, 2}, {0.25, -0.75}, {3, 0}, {-1.5, -1.5}} {
		plus := g.Eval(7+d[0], 9+d[1])
		minus := g.Eval(7-d[0], 9-d[1])
		assert.Equal(t, plus, minus, "displacement %v", d)
	}
}

// TestEval_EmptyMixture returns zero: the kernel has no components to sum.
func TestEval_EmptyMixture(t *testing.T) {
	assert.Zero(t, gmix.GMix{}.Eval(1, 2))
}

// TestEval_NonNegative spot-checks the kernel contract: the sum is finite and
// non-negative everywhere, including deep in the tails.
func TestEval_NonNegative(t *testing.T) {
	g := gmix.GMix{
		mustGauss(t, 1, 0, 0, 1, 0.4, 1),
		mustGauss(t, 3, 2, -1, 5, -2, 3),
	}
	for row := -20.0; row <= 20; row += 2.5 {
		for col := -20.0; col <= 20; col += 2.5 {
			val := g.Eval(row, col)
			assert.False(t, math.IsNaN(val) || math.IsInf(val, 0), "finite at (%v,%v)", row, col)
			assert.GreaterOrEqual(t, val, 0.0, "non-negative at (%v,%v)", row, col)
		}
	}
}

// TestGauss2D_Chi2PositiveDefinite: for valid components the quadratic
// form is non-negative everywhere.
func TestGauss2D_Chi2PositiveDefinite(t *testing.T) {
	c := mustGauss(t, 1, 0, 0, 4, 1.9, 1)
	for row := -6.0; row <= 6; row += 0.5 {
		for col := -6.0; col <= 6; col += 0.5 {
			assert.GreaterOrEqual(t, c.Chi2(row, col), 0.0, "(%v,%v)", row, col)
		}
	}
}
