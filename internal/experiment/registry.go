package experiment

import (
	"fmt"

	"github.com/san-kum/halfcar/internal/cycle"
	"github.com/san-kum/halfcar/internal/dynamo"
	"github.com/san-kum/halfcar/internal/integrators"
	"github.com/san-kum/halfcar/internal/metrics"
	"github.com/san-kum/halfcar/internal/vehicle"
)

// Registry binds names to vehicle, integrator, and cycle constructors so
// the CLI and config files can select them by string.
type Registry struct {
	integrators map[string]func() dynamo.Integrator
	cycles      map[string]func(params map[string]float64) dynamo.Cycle
}

func NewRegistry() *Registry {
	r := &Registry{
		integrators: make(map[string]func() dynamo.Integrator),
		cycles:      make(map[string]func(map[string]float64) dynamo.Cycle),
	}

	r.integrators["euler"] = func() dynamo.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() dynamo.Integrator { return integrators.NewRK4() }

	r.cycles["target_speed"] = func(params map[string]float64) dynamo.Cycle {
		c := cycle.NewTargetSpeed(paramOr(params, "target_kmh", cycle.DefaultTargetKmh))
		if v, ok := params["drive"]; ok && v != 0 {
			c.Drive = v
		}
		if v, ok := params["brake"]; ok && v != 0 {
			c.Brake = v
		}
		if v, ok := params["stop_speed"]; ok && v != 0 {
			c.StopV = v
		}
		return c
	}
	r.cycles["windowed"] = func(params map[string]float64) dynamo.Cycle {
		c := cycle.NewWindowed()
		if v, ok := params["drive"]; ok && v != 0 {
			c.Drive = v
		}
		if v, ok := params["brake"]; ok && v != 0 {
			c.Brake = v
		}
		if v, ok := params["drive_start"]; ok && v != 0 {
			c.DriveStart = v
		}
		if v, ok := params["drive_end"]; ok && v != 0 {
			c.DriveEnd = v
		}
		if v, ok := params["brake_start"]; ok && v != 0 {
			c.BrakeStart = v
		}
		if v, ok := params["brake_end"]; ok && v != 0 {
			c.BrakeEnd = v
		}
		return c
	}

	return r
}

// GetVehicle builds a validated model from the preset catalog, applying
// any parameter overrides on top.
func (r *Registry) GetVehicle(name string, overrides map[string]float64) (*vehicle.Model, error) {
	p, err := vehicle.Get(name)
	if err != nil {
		return nil, err
	}
	m, err := vehicle.New(p)
	if err != nil {
		return nil, err
	}
	for k, v := range overrides {
		if err := m.SetParam(k, v); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("%w: integrator %q", dynamo.ErrUnknownName, name)
	}
	return fn(), nil
}

func (r *Registry) GetCycle(name string, params map[string]float64) (dynamo.Cycle, error) {
	fn, ok := r.cycles[name]
	if !ok {
		return nil, fmt.Errorf("%w: cycle %q", dynamo.ErrUnknownName, name)
	}
	return fn(params), nil
}

// DefaultMetrics is the standard ride metric set attached to every run.
func (r *Registry) DefaultMetrics() []dynamo.Metric {
	return []dynamo.Metric{
		metrics.NewPeakHeave(),
		metrics.NewPeakPitch(),
		metrics.NewRMSPitchRate(),
		metrics.NewStability(1.0),
	}
}

func paramOr(params map[string]float64, key string, fallback float64) float64 {
	if v, ok := params[key]; ok && v != 0 {
		return v
	}
	return fallback
}
