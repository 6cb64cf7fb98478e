package vehicle

// Matrices holds the assembled mass, damping, and stiffness matrices of the
// linear half-car model. Rows and columns follow the generalized coordinate
// order [ys, theta, yu1, yu2]. Assembled once per Params and never mutated;
// re-derive with Assemble if parameters change.
type Matrices struct {
	M    [4]float64 // diagonal of the mass matrix
	MInv [4]float64 // elementwise reciprocal of M
	C    [4][4]float64
	K    [4][4]float64
}

// Assemble derives the model matrices from the vehicle parameters.
func Assemble(p Params) Matrices {
	var m Matrices

	m.M = [4]float64{p.Ms, p.Is, p.Mu1, p.Mu2}
	for i, v := range m.M {
		m.MInv[i] = 1.0 / v
	}

	m.K = [4][4]float64{
		{p.Ks1 + p.Ks2, -p.Ks1*p.L1 + p.Ks2*p.L2, -p.Ks1, -p.Ks2},
		{-p.Ks1*p.L1 + p.Ks2*p.L2, p.Ks1*p.L1*p.L1 + p.Ks2*p.L2*p.L2, p.Ks1 * p.L1, -p.Ks2 * p.L2},
		{-p.Ks1, p.Ks1 * p.L1, p.Ks1 + p.Kt1, 0},
		{-p.Ks2, -p.Ks2 * p.L2, 0, p.Ks2 + p.Kt2},
	}

	// Same coupling structure as K with the damping coefficients, except the
	// wheel diagonals: tires contribute stiffness only, no damping.
	m.C = [4][4]float64{
		{p.Cs1 + p.Cs2, -p.Cs1*p.L1 + p.Cs2*p.L2, -p.Cs1, -p.Cs2},
		{-p.Cs1*p.L1 + p.Cs2*p.L2, p.Cs1*p.L1*p.L1 + p.Cs2*p.L2*p.L2, p.Cs1 * p.L1, -p.Cs2 * p.L2},
		{-p.Cs1, p.Cs1 * p.L1, p.Cs1, 0},
		{-p.Cs2, -p.Cs2 * p.L2, 0, p.Cs2},
	}

	return m
}
