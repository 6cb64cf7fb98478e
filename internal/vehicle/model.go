package vehicle

import (
	"fmt"

	"github.com/san-kum/halfcar/internal/dynamo"
)

// State vector indices.
const (
	IdxHeave = iota // body heave ys [m]
	IdxPitch        // body pitch theta [rad], counter-clockwise positive
	IdxFront        // front unsprung displacement yu1 [m]
	IdxRear         // rear unsprung displacement yu2 [m]

	// Rates occupy indices 4..7 in the same order.
	IdxHeaveRate
	IdxPitchRate
	IdxFrontRate
	IdxRearRate
)

// Model is the linear half-car [dynamo.System]: 4 generalized coordinates
// (heave, pitch, front and rear unsprung displacement) driven by the pitch
// moment of longitudinal acceleration.
type Model struct {
	p Params
	m Matrices
}

// New validates the parameters and assembles the model matrices.
func New(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Model{p: p, m: Assemble(p)}, nil
}

func (m *Model) Params() Params     { return m.p }
func (m *Model) Matrices() Matrices { return m.m }
func (m *Model) StateDim() int      { return 8 }
func (m *Model) ControlDim() int    { return 1 }

// ExternalForce is the generalized force of a longitudinal acceleration:
// a pure pitch moment ms*accel*h, counter-clockwise positive. Heave and
// wheel coordinates see no direct force.
func (m *Model) ExternalForce(accel float64) [4]float64 {
	return [4]float64{0, m.p.Ms * accel * m.p.H, 0, 0}
}

// Derive converts M*q'' + C*q' + K*q = F to first order: the returned
// 8-vector is [q', M^-1 (F - C q' - K q)]. Time is unused; the commanded
// acceleration arrives already resolved in u[0].
func (m *Model) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	accel := 0.0
	if len(u) > 0 {
		accel = u[0]
	}
	f := m.ExternalForce(accel)

	dx := make(dynamo.State, 8)
	for i := 0; i < 4; i++ {
		dx[i] = x[4+i]
	}
	for i := 0; i < 4; i++ {
		sum := f[i]
		for j := 0; j < 4; j++ {
			sum -= m.m.C[i][j]*x[4+j] + m.m.K[i][j]*x[j]
		}
		dx[4+i] = sum * m.m.MInv[i]
	}
	return dx
}

// Energy is the mechanical energy of the ride state: kinetic energy of body
// and wheels plus strain energy in the suspension springs and tires.
func (m *Model) Energy(x dynamo.State) float64 {
	ke := 0.5 * (m.p.Ms*x[IdxHeaveRate]*x[IdxHeaveRate] +
		m.p.Is*x[IdxPitchRate]*x[IdxPitchRate] +
		m.p.Mu1*x[IdxFrontRate]*x[IdxFrontRate] +
		m.p.Mu2*x[IdxRearRate]*x[IdxRearRate])

	// Suspension deflections at the body attachment points.
	front := x[IdxHeave] - m.p.L1*x[IdxPitch] - x[IdxFront]
	rear := x[IdxHeave] + m.p.L2*x[IdxPitch] - x[IdxRear]

	pe := 0.5 * (m.p.Ks1*front*front + m.p.Ks2*rear*rear +
		m.p.Kt1*x[IdxFront]*x[IdxFront] + m.p.Kt2*x[IdxRear]*x[IdxRear])

	return ke + pe
}

// GetParams exposes the tunable parameters for sweeps.
func (m *Model) GetParams() map[string]float64 {
	return map[string]float64{
		"ms": m.p.Ms, "is": m.p.Is,
		"mu1": m.p.Mu1, "mu2": m.p.Mu2,
		"ks1": m.p.Ks1, "ks2": m.p.Ks2,
		"kt1": m.p.Kt1, "kt2": m.p.Kt2,
		"cs1": m.p.Cs1, "cs2": m.p.Cs2,
		"l1": m.p.L1, "l2": m.p.L2, "h": m.p.H,
	}
}

// SetParam updates one parameter and re-derives the matrices.
func (m *Model) SetParam(name string, value float64) error {
	p := m.p
	switch name {
	case "ms":
		p.Ms = value
	case "is":
		p.Is = value
	case "mu1":
		p.Mu1 = value
	case "mu2":
		p.Mu2 = value
	case "ks1":
		p.Ks1 = value
	case "ks2":
		p.Ks2 = value
	case "kt1":
		p.Kt1 = value
	case "kt2":
		p.Kt2 = value
	case "cs1":
		p.Cs1 = value
	case "cs2":
		p.Cs2 = value
	case "l1":
		p.L1 = value
	case "l2":
		p.L2 = value
	case "h":
		p.H = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	m.p = p
	m.m = Assemble(p)
	return nil
}
