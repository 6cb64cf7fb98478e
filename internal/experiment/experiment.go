package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/halfcar/internal/sim"
)

// Config names everything one run needs; Setup resolves the names through
// a Registry and builds the simulator.
type Config struct {
	Vehicle     string
	Integrator  string
	Cycle       string
	Dt          float64
	Steps       int
	CycleParams map[string]float64
	Overrides   map[string]float64
}

type Experiment struct {
	cfg       Config
	simulator *sim.Simulator
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(r *Registry) error {
	dyn, err := r.GetVehicle(e.cfg.Vehicle, e.cfg.Overrides)
	if err != nil {
		return err
	}
	integ, err := r.GetIntegrator(e.cfg.Integrator)
	if err != nil {
		return err
	}
	cyc, err := r.GetCycle(e.cfg.Cycle, e.cfg.CycleParams)
	if err != nil {
		return err
	}

	e.simulator = sim.New(dyn, integ, cyc)
	for _, m := range r.DefaultMetrics() {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, sim.Config{Dt: e.cfg.Dt, Steps: e.cfg.Steps, ValidateState: true})
}

// Simulator returns the underlying simulator for adding observers.
func (e *Experiment) Simulator() *sim.Simulator {
	return e.simulator
}
