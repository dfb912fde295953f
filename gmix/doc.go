// Package gmix models images as weighted sums of 2-D elliptical Gaussians
// and evaluates them fast.
//
// 🚀 What is gmix?
//
//	A GMix is an ordered sequence of Gauss2D components, each carrying its
//	covariance (Irr, Irc, Icc) together with precomputed derived fields:
//	the precision-matrix entries (Drr, Drc, Dcc), the determinant, the
//	normalization 1/(2π√det) and the weighted normalization Pnorm.  With
//	those in place, evaluating the mixture at a pixel is one quadratic
//	form and one approximate exponential per component:
//	  • chi² = Dcc·u² + Drr·v² - 2·Drc·u·v     (u, v: offsets from center)
//	  • chi² ≥ 25 ⇒ the component contributes exactly 0 (tail cutoff)
//	  • otherwise: Pnorm · fastexp.Exp(-chi²/2)
//
// ✨ Key features:
//
//   - Eval — the per-pixel kernel: pure, allocation-free, O(#components)
//   - construction layer: NewGauss2D / Fill validate det > 0 and derive
//     the precision and normalization fields; kernels never recompute them
//   - moments: center, psum, T = ⟨irr+icc⟩, e1/e2 ellipticity
//   - closed-form convolution of a mixture with a PSF mixture
//   - named profiles: gauss, turb, exp, dev model fills from 6 parameters
//   - Render / LogLike over gonum mat.Dense images, with optional
//     jacobian coordinate transform and sub-pixel integration
//
// ⚙️ Usage:
//
//	g, err := gmix.NewModel([]float64{16, 16, 0.2, -0.1, 8.0, 100}, gmix.ModelExp)
//	if err != nil { ... }
//	val := g.Eval(16, 16)
//
// ⚠️ Contracts:
//
//	Kernels (Eval, Render, LogLike inner loops) perform no validation:
//	components must come from the construction layer (det > 0, derived
//	fields consistent).  Errors are reported only by constructors and by
//	operations that take user-shaped input, always as package sentinel
//	errors checked via errors.Is.
//
// All operations are pure or mutate only their receiver; a GMix is safe
// for concurrent reads.
package gmix
