package vehicle

import (
	"fmt"

	"github.com/san-kum/halfcar/internal/dynamo"
)

// Params bundles the physical constants of one vehicle. All values are
// strictly positive; Validate rejects anything else.
type Params struct {
	Name string

	Ms float64 // sprung (body) mass [kg]
	Is float64 // pitch moment of inertia [kg m^2]

	Mu1 float64 // front unsprung mass [kg]
	Mu2 float64 // rear unsprung mass [kg]

	Ks1 float64 // front suspension stiffness [N/m]
	Ks2 float64 // rear suspension stiffness [N/m]
	Kt1 float64 // front tire stiffness [N/m]
	Kt2 float64 // rear tire stiffness [N/m]

	Cs1 float64 // front suspension damping [N s/m]
	Cs2 float64 // rear suspension damping [N s/m]

	L1 float64 // CG to front axle [m]
	L2 float64 // CG to rear axle [m]
	H  float64 // CG height [m]
}

func (p Params) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"ms", p.Ms}, {"is", p.Is},
		{"mu1", p.Mu1}, {"mu2", p.Mu2},
		{"ks1", p.Ks1}, {"ks2", p.Ks2},
		{"kt1", p.Kt1}, {"kt2", p.Kt2},
		{"cs1", p.Cs1}, {"cs2", p.Cs2},
		{"l1", p.L1}, {"l2", p.L2}, {"h", p.H},
	}
	for _, f := range fields {
		if f.v <= 0 {
			return fmt.Errorf("%w: %s = %g", dynamo.ErrInvalidParameter, f.name, f.v)
		}
	}
	return nil
}
