package gmix_test

import (
	"fmt"

	"github.com/kstory8/ngmix/gmix"
)

// ExampleGMix_Eval evaluates a unit circular Gaussian at its center: the
// peak of a normalized Gaussian with unit weight is 1/(2π).
func ExampleGMix_Eval() {
	g, err := gmix.NewFromPars([]float64{
		1.0, 0, 0, 1.0, 0.0, 1.0, // p, row, col, irr, irc, icc
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.6f\n", g.Eval(0, 0))
	// Output:
	// 0.159155
}

// ExampleNewModel builds a 6-Gaussian exponential-disk decomposition and
// reads back its aggregate properties.
func ExampleNewModel() {
	g, err := gmix.NewModel([]float64{16, 16, 0.0, 0.0, 8.0, 100.0}, gmix.ModelExp)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("ngauss:", g.Len())
	fmt.Printf("flux: %.1f\n", g.Psum())
	fmt.Printf("T: %.2f\n", g.T())
	// Output:
	// ngauss: 6
	// flux: 100.0
	// T: 8.00
}

// ExampleGMix_Convolve convolves a galaxy model with a PSF model: sizes
// add, flux is preserved.
func ExampleGMix_Convolve() {
	galaxy, _ := gmix.NewFromPars([]float64{2.0, 10, 10, 2.0, 0.0, 2.0}) // T = 4
	psf, _ := gmix.NewFromPars([]float64{1.0, 0, 0, 1.0, 0.0, 1.0})     // T = 2

	conv, err := galaxy.Convolve(psf)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("T: %.0f\n", conv.T())
	fmt.Printf("flux: %.0f\n", conv.Psum())
	// Output:
	// T: 6
	// flux: 2
}
