package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt    = 0.001
	DefaultSteps = 9000
)

// Config describes one simulation scenario: which vehicle, which
// integrator, the driving cycle and its parameters, and the time grid.
type Config struct {
	Vehicle    string             `yaml:"vehicle"`
	Integrator string             `yaml:"integrator"`
	Cycle      CycleConfig        `yaml:"cycle"`
	Dt         float64            `yaml:"dt"`
	Steps      int                `yaml:"steps"`
	Overrides  map[string]float64 `yaml:"params,omitempty"`
}

// CycleConfig selects and parameterizes the driving cycle. Unused fields
// are ignored by the cycle that does not read them.
type CycleConfig struct {
	Type       string  `yaml:"type"` // target_speed | windowed
	TargetKmh  float64 `yaml:"target_kmh"`
	Drive      float64 `yaml:"drive"`
	Brake      float64 `yaml:"brake"`
	StopSpeed  float64 `yaml:"stop_speed"`
	DriveStart float64 `yaml:"drive_start"`
	DriveEnd   float64 `yaml:"drive_end"`
	BrakeStart float64 `yaml:"brake_start"`
	BrakeEnd   float64 `yaml:"brake_end"`
}

func DefaultConfig() *Config {
	return &Config{
		Vehicle:    "gr86",
		Integrator: "rk4",
		Cycle: CycleConfig{
			Type:      "target_speed",
			TargetKmh: 65.0,
			Drive:     3.3,
			Brake:     -8.5,
			StopSpeed: 0.1,
		},
		Dt:    DefaultDt,
		Steps: DefaultSteps,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CycleParams flattens the cycle section into the registry's parameter map.
func (c *Config) CycleParams() map[string]float64 {
	return map[string]float64{
		"target_kmh":  c.Cycle.TargetKmh,
		"drive":       c.Cycle.Drive,
		"brake":       c.Cycle.Brake,
		"stop_speed":  c.Cycle.StopSpeed,
		"drive_start": c.Cycle.DriveStart,
		"drive_end":   c.Cycle.DriveEnd,
		"brake_start": c.Cycle.BrakeStart,
		"brake_end":   c.Cycle.BrakeEnd,
	}
}
