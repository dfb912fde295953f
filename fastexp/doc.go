// Package fastexp provides approximate exponential functions for the
// negative half-line, tuned for the inner loop of Gaussian-mixture
// image evaluation.
//
// 🚀 What is fastexp?
//
//	Evaluating exp(-chi²/2) dominates the cost of rendering and fitting
//	Gaussian mixtures.  fastexp trades a small, bounded accuracy loss for
//	a large speedup over math.Exp:
//	  • Exp  — 2048-entry mantissa table + cubic residual correction,
//	    relative error on the order of 1e-9 over (-26, 0]
//	  • Exp3 — 27-entry integer table + third-order Taylor factor,
//	    relative error below ~0.3% over [-26, 0], fully branch-free
//
// ⚙️ Usage:
//
//	import "github.com/kstory8/ngmix/fastexp"
//
//	y := fastexp.Exp(-0.5 * chi2) // chi2 in [0, 25)
//
// ⚠️ Contract:
//
//	Neither function validates its argument.  Exp is specified only for
//	x in (-26, 0]; Exp3 only for x in [-26, 0].  Outside those domains
//	the result is unspecified.  Callers (see gmix.Eval) guarantee the
//	domain by construction via the chi² < 25 cutoff.
//
// Both functions are pure: the lookup tables are built once at package
// initialization and never mutated, so concurrent use needs no
// synchronization.
package fastexp
