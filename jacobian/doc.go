// Package jacobian defines the affine transform between pixel (row, col)
// coordinates and a model's intrinsic (u, v) coordinates.
//
// A Jacobian carries the transform center (Row0, Col0), the four partial
// derivatives DudRow/DudCol/DvdRow/DvdCol, and the derived determinant and
// scale (√det).  The mixture kernels in gmix accept an optional Jacobian
// when rendering or computing likelihoods on images whose world coordinate
// system is not aligned with the pixel grid; the transform is applied by
// the caller's loop, never inside the per-Gaussian evaluation itself.
//
// Values are plain records: construct with New or NewUnit, copy by
// assignment.
package jacobian
