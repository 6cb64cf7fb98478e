package dynamo

import "math"

// State is the simulation state vector. For the half-car model it is the
// 8-vector [ys, theta, yu1, yu2, ys', theta', yu1', yu2'].
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Control is the input vector. The half-car model takes a single entry,
// the commanded longitudinal acceleration in m/s^2.
type Control []float64

// System is a continuous-time ODE system dX/dt = f(X, u, t).
type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
	ControlDim() int
}

// Integrator advances a system by one fixed step. The control vector is
// held constant for the whole step, including every internal stage.
type Integrator interface {
	Step(dyn System, x State, u Control, t float64, dt float64) State
}

// Cycle is a driving-cycle policy: the commanded longitudinal acceleration
// for the step starting at time t with current absolute speed v.
type Cycle interface {
	Accel(t, v float64) float64
}

// SpeedLimiter is an optional Cycle capability. A cycle that brings the
// vehicle to a stop implements it to clamp residual speed to exactly zero.
type SpeedLimiter interface {
	LimitSpeed(v float64) float64
}

// Resettable is an optional capability for stateful cycles so repeated
// runs start from the same initial conditions.
type Resettable interface {
	Reset()
}

// Configurable allows runtime parameter adjustment, e.g. for tuning sweeps.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

type Metric interface {
	Name() string
	Observe(x State, u Control, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(x State, u Control, t float64)
}
