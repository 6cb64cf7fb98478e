package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/halfcar/internal/dynamo"
)

// Simulator loops a fixed-step integrator over a driving cycle. Each call
// to Run is independent: state starts at rest and stateful cycles are
// reset, so identical inputs produce identical output.
type Simulator struct {
	dyn       dynamo.System
	integ     dynamo.Integrator
	cycle     dynamo.Cycle
	metrics   []dynamo.Metric
	observers []dynamo.Observer
}

func New(dyn dynamo.System, integ dynamo.Integrator, cycle dynamo.Cycle) *Simulator {
	return &Simulator{
		dyn:       dyn,
		integ:     integ,
		cycle:     cycle,
		metrics:   make([]dynamo.Metric, 0),
		observers: make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	s.reset()

	result := &Result{
		Records: make([]Record, 0, cfg.Steps),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	x := make(dynamo.State, s.dyn.StateDim())
	u := make(dynamo.Control, 1)
	t, v, pos := 0.0, 0.0, 0.0

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		accel := s.cycle.Accel(t, v)
		if lim, ok := s.cycle.(dynamo.SpeedLimiter); ok {
			v = lim.LimitSpeed(v)
		}
		u[0] = accel

		for _, m := range s.metrics {
			m.Observe(x, u, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(x, u, t)
		}

		// Record the state before advancing, then step the ride dynamics
		// and accumulate the longitudinal state by forward Euler.
		result.Records = append(result.Records, newRecord(t, x, v, pos))

		x = s.integ.Step(s.dyn, x, u, t, cfg.Dt)

		if cfg.ValidateState && !x.IsValid() {
			err := dynamo.SimError{Step: i, Time: t, Message: "invalid state (NaN/Inf)"}
			result.Errors = append(result.Errors, err)
			break
		}

		v += accel * cfg.Dt
		pos += v * cfg.Dt
		t += cfg.Dt
		result.StepsTaken++
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback streams records instead of collecting them. The callback
// returns false to stop early.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(Record) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}
	s.reset()

	x := make(dynamo.State, s.dyn.StateDim())
	u := make(dynamo.Control, 1)
	t, v, pos := 0.0, 0.0, 0.0

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		accel := s.cycle.Accel(t, v)
		if lim, ok := s.cycle.(dynamo.SpeedLimiter); ok {
			v = lim.LimitSpeed(v)
		}
		u[0] = accel

		if !callback(newRecord(t, x, v, pos)) {
			return nil
		}

		x = s.integ.Step(s.dyn, x, u, t, cfg.Dt)

		if cfg.ValidateState && !x.IsValid() {
			return dynamo.SimError{Step: i, Time: t, Message: "invalid state (NaN/Inf)"}
		}

		v += accel * cfg.Dt
		pos += v * cfg.Dt
		t += cfg.Dt
	}

	return nil
}

func (s *Simulator) reset() {
	for _, m := range s.metrics {
		m.Reset()
	}
	if r, ok := s.cycle.(dynamo.Resettable); ok {
		r.Reset()
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	return nil
}
