package jacobian

import "math"

// Jacobian is an affine mapping from pixel (row, col) space to intrinsic
// (u, v) space:
//
//	u = DudRow·(row - Row0) + DudCol·(col - Col0)
//	v = DvdRow·(row - Row0) + DvdCol·(col - Col0)
//
// Det and SDet are derived from the four partials by New; mutate the
// partials only by constructing a new value.
type Jacobian struct {
	Row0, Col0 float64

	DudRow, DudCol float64
	DvdRow, DvdCol float64

	// Det is |DudRow·DvdCol - DudCol·DvdRow|; SDet is its square root,
	// the linear scale of the transform.
	Det, SDet float64
}

// New constructs a Jacobian centered at (row0, col0) with the given
// partial derivatives, computing Det and SDet.
func New(row0, col0, dudrow, dudcol, dvdrow, dvdcol float64) Jacobian {
	det := math.Abs(dudrow*dvdcol - dudcol*dvdrow)
	return Jacobian{
		Row0:   row0,
		Col0:   col0,
		DudRow: dudrow,
		DudCol: dudcol,
		DvdRow: dvdrow,
		DvdCol: dvdcol,
		Det:    det,
		SDet:   math.Sqrt(det),
	}
}

// NewUnit returns the identity transform centered at (row0, col0):
// u = row - row0, v = col - col0.
func NewUnit(row0, col0 float64) Jacobian {
	return New(row0, col0, 1, 0, 0, 1)
}

// Apply maps a pixel location to intrinsic (u, v) coordinates.
func (j Jacobian) Apply(row, col float64) (u, v float64) {
	dr := row - j.Row0
	dc := col - j.Col0
	return j.DudRow*dr + j.DudCol*dc, j.DvdRow*dr + j.DvdCol*dc
}

// Cen returns the transform center.
func (j Jacobian) Cen() (row0, col0 float64) {
	return j.Row0, j.Col0
}

// SetCen moves the transform center without touching the partials.
func (j *Jacobian) SetCen(row0, col0 float64) {
	j.Row0 = row0
	j.Col0 = col0
}

// Scale returns the linear scale of the transform, √det.
func (j Jacobian) Scale() float64 {
	return j.SDet
}
