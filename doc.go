// Package ngmix is a fast, pure-Go toolkit for modeling astronomical
// images as mixtures of 2-D elliptical Gaussians.
//
// 🚀 What is ngmix?
//
//	Galaxy and point-spread-function images are well approximated by a
//	weighted sum of elliptical Gaussians.  Fitting such models means
//	evaluating the mixture at every pixel, every iteration — so the
//	per-pixel kernel must be as cheap as possible.  ngmix provides:
//	  • a table-driven approximate exponential (several× a transcendental call)
//	  • the mixture evaluation kernel with a chi² cutoff for negligible tails
//	  • the Gauss2D/GMix data model with moments, shapes and convolution
//	  • rendering and log-likelihood over gonum image matrices
//
// ✨ Why choose ngmix?
//
//   - Hot-path first — no allocation, no I/O, no validation inside kernels
//   - Thread-safe by construction — every function is pure and stateless
//   - Controlled accuracy — approximation error is bounded and pinned by tests
//   - Pure Go — no cgo, no assembly
//
// Everything is organized under three subpackages:
//
//	fastexp/  — approximate exponentials: fastexp.Exp and fastexp.Exp3
//	gmix/     — Gauss2D, GMix, model profiles, Eval/Render/LogLike kernels
//	jacobian/ — affine (row,col) ↔ (u,v) coordinate transforms
//
// Quick example:
//
//	g, _ := gmix.NewFromPars([]float64{
//	    1.0, 16, 16, 4.0, 0.0, 4.0, // p, row, col, irr, irc, icc
//	})
//	val := g.Eval(16, 16) // peak surface brightness
//
// Higher-level concerns — parameter fitting (LM, EM, MCMC), image I/O,
// observation containers — live outside this module and consume these
// kernels.
package ngmix
