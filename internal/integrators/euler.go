package integrators

import "github.com/san-kum/halfcar/internal/dynamo"

// Euler is the explicit first-order integrator. Kept for accuracy
// comparisons against RK4; the longitudinal speed/position bookkeeping in
// the simulation driver uses the same forward-Euler update inline.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t float64, dt float64) dynamo.State {
	dx := dyn.Derive(x, u, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
