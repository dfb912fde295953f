package gmix

// Named model profiles: fixed Gaussian decompositions of common light
// profiles.  Each profile is a pair of tables (fvals: relative sizes,
// pvals: relative weights) applied to the 6-parameter model vector
// [row, col, g1, g2, T, counts].

// modelNpars is the parameter count for every simple (non-full) profile.
const modelNpars = 6

var gaussFvals = []float64{1.0}
var gaussPvals = []float64{1.0}

var turbFvals = []float64{
	0.5793612389470884, 1.621860687127999, 7.019347162356363,
}
var turbPvals = []float64{
	0.596510042804182, 0.4034898268889178, 1.303069003078001e-07,
}

var expFvals = []float64{
	0.002467115141477932,
	0.018147435573256168,
	0.07944063151366336,
	0.27137669897479122,
	0.79782256866993773,
	2.1623306025075739,
}
var expPvals = []float64{
	0.00061601229677880041,
	0.0079461395724623237,
	0.053280454055540001,
	0.21797364640726541,
	0.45496740582554868,
	0.26521634184240478,
}

var devFvals = []float64{
	2.9934935706271918e-07,
	3.4651596338231207e-06,
	2.4807910570562753e-05,
	0.00014307404300535354,
	0.000727531692982395,
	0.003458246439442726,
	0.0160866454407191,
	0.077006776775654429,
	0.41012562102501476,
	2.9812509778548648,
}
var devPvals = []float64{
	6.5288960012625658e-05,
	0.00044199216814302695,
	0.0020859587871659754,
	0.0075913681418996841,
	0.02260266219257237,
	0.056532254390212859,
	0.11939049233042602,
	0.20969545753234975,
	0.29254151133139222,
	0.28905301416582552,
}

// modelTables returns the (fvals, pvals) pair for a simple profile, or
// nil slices for ModelFull / unknown models.
func modelTables(m Model) (fvals, pvals []float64) {
	switch m {
	case ModelGauss:
		return gaussFvals, gaussPvals
	case ModelTurb:
		return turbFvals, turbPvals
	case ModelExp:
		return expFvals, expPvals
	case ModelDev:
		return devFvals, devPvals
	default:
		return nil, nil
	}
}

// NumPars returns the parameter-vector length the model expects, or -1
// for ModelFull (any multiple of 6).
func (m Model) NumPars() int {
	if m == ModelFull {
		return -1
	}
	return modelNpars
}

// NumGauss returns the number of components the model produces, or -1 for
// ModelFull.
func (m Model) NumGauss() int {
	fvals, _ := modelTables(m)
	if fvals == nil {
		return -1
	}
	return len(fvals)
}

// NewModel builds a mixture for a named profile.
//
// For simple profiles, pars is [row, col, g1, g2, T, counts]: component i
// gets size T·fvals[i], weight counts·pvals[i], and the covariance implied
// by the reduced shear (g1, g2):
//
//	irr = (T_i/2)·(1-e1),  irc = (T_i/2)·e2,  icc = (T_i/2)·(1+e1)
//
// For ModelFull, pars is a full 6n vector as for NewFromPars.
//
// Returns ErrUnsupportedModel for an unknown model, ErrBadParamCount for
// a wrong-length vector, ErrRangeShear for |g| >= 1, and
// ErrBadDeterminant if the implied covariance is degenerate (T <= 0 or
// extreme shear).
func NewModel(pars []float64, model Model) (GMix, error) {
	if model == ModelFull {
		return NewFromPars(pars)
	}

	fvals, pvals := modelTables(model)
	if fvals == nil {
		return nil, ErrUnsupportedModel
	}
	if len(pars) != modelNpars {
		return nil, ErrBadParamCount
	}

	g := make(GMix, len(fvals))
	if err := g.fillSimple(pars, fvals, pvals); err != nil {
		return nil, err
	}
	return g, nil
}

// fillSimple populates a mixture from a 6-parameter model vector and a
// profile's size/weight tables.
func (g GMix) fillSimple(pars, fvals, pvals []float64) error {
	row := pars[0]
	col := pars[1]
	g1 := pars[2]
	g2 := pars[3]
	t := pars[4]
	counts := pars[5]

	e1, e2, err := G1G2ToE1E2(g1, g2)
	if err != nil {
		return err
	}

	for i := range g {
		ti := t * fvals[i]
		countsi := counts * pvals[i]

		half := ti / 2
		err = g[i].set(countsi, row, col, half*(1-e1), half*e2, half*(1+e1))
		if err != nil {
			return err
		}
	}
	return nil
}
