package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/halfcar/internal/cycle"
	"github.com/san-kum/halfcar/internal/dynamo"
)

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"euler", "rk4"} {
		if _, err := r.GetIntegrator(name); err != nil {
			t.Errorf("GetIntegrator(%s): %v", name, err)
		}
	}
	if _, err := r.GetIntegrator("rk5"); !errors.Is(err, dynamo.ErrUnknownName) {
		t.Errorf("unknown integrator: %v", err)
	}

	for _, name := range []string{"target_speed", "windowed"} {
		if _, err := r.GetCycle(name, nil); err != nil {
			t.Errorf("GetCycle(%s): %v", name, err)
		}
	}
	if _, err := r.GetCycle("chirp", nil); !errors.Is(err, dynamo.ErrUnknownName) {
		t.Errorf("unknown cycle: %v", err)
	}
}

func TestRegistryCycleParams(t *testing.T) {
	r := NewRegistry()

	c, err := r.GetCycle("target_speed", map[string]float64{
		"target_kmh": 100,
		"drive":      2.2,
		"brake":      -6.0,
	})
	if err != nil {
		t.Fatal(err)
	}

	ts, ok := c.(*cycle.TargetSpeed)
	if !ok {
		t.Fatalf("got %T, want *cycle.TargetSpeed", c)
	}
	if ts.Target != 100.0/3.6 || ts.Drive != 2.2 || ts.Brake != -6.0 {
		t.Errorf("cycle params not applied: %+v", ts)
	}
	// Unset params keep defaults.
	if ts.StopV != cycle.DefaultStopSpeed {
		t.Errorf("StopV = %g, want default", ts.StopV)
	}
}

func TestGetVehicleOverrides(t *testing.T) {
	r := NewRegistry()

	m, err := r.GetVehicle("gr86", map[string]float64{"cs1": 1800})
	if err != nil {
		t.Fatal(err)
	}
	if m.Params().Cs1 != 1800 {
		t.Errorf("Cs1 = %g, want 1800", m.Params().Cs1)
	}

	if _, err := r.GetVehicle("gr86", map[string]float64{"cs1": -1}); err == nil {
		t.Error("expected error for invalid override")
	}
	if _, err := r.GetVehicle("nope", nil); !errors.Is(err, dynamo.ErrUnknownName) {
		t.Errorf("unknown vehicle: %v", err)
	}
}

func TestExperimentRun(t *testing.T) {
	exp := New(Config{
		Vehicle:    "gr86",
		Integrator: "rk4",
		Cycle:      "target_speed",
		Dt:         0.001,
		Steps:      500,
	})

	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("Run before Setup should fail")
	}

	if err := exp.Setup(NewRegistry()); err != nil {
		t.Fatal(err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.StepsTaken != 500 {
		t.Errorf("StepsTaken = %d, want 500", result.StepsTaken)
	}

	for _, name := range []string{"peak_heave", "peak_pitch", "rms_pitch_rate", "stability"} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("missing default metric %s", name)
		}
	}
}

func TestExperimentSetupErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad vehicle", Config{Vehicle: "nope", Integrator: "rk4", Cycle: "target_speed"}},
		{"bad integrator", Config{Vehicle: "gr86", Integrator: "nope", Cycle: "target_speed"}},
		{"bad cycle", Config{Vehicle: "gr86", Integrator: "rk4", Cycle: "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := New(tt.cfg).Setup(NewRegistry()); err == nil {
				t.Error("expected setup error")
			}
		})
	}
}
