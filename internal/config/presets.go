package config

var Presets = map[string]map[string]*Config{
	"gr86": {
		"sprint": {
			Vehicle: "gr86", Integrator: "rk4", Dt: 0.001, Steps: 9000,
			Cycle: CycleConfig{Type: "target_speed", TargetKmh: 65, Drive: 3.3, Brake: -8.5, StopSpeed: 0.1},
		},
		"launch": {
			Vehicle: "gr86", Integrator: "rk4", Dt: 0.001, Steps: 5000,
			Cycle: CycleConfig{Type: "windowed", Drive: 3.0, Brake: -6.0, DriveStart: 0.5, DriveEnd: 2.5, BrakeStart: 3.0, BrakeEnd: 4.0},
		},
	},
	"lexusls": {
		"sprint": {
			Vehicle: "lexusls", Integrator: "rk4", Dt: 0.001, Steps: 9000,
			Cycle: CycleConfig{Type: "target_speed", TargetKmh: 65, Drive: 3.3, Brake: -8.5, StopSpeed: 0.1},
		},
		"cruise": {
			Vehicle: "lexusls", Integrator: "rk4", Dt: 0.001, Steps: 12000,
			Cycle: CycleConfig{Type: "target_speed", TargetKmh: 100, Drive: 2.2, Brake: -6.0, StopSpeed: 0.1},
		},
	},
	"samber": {
		"sprint": {
			Vehicle: "samber", Integrator: "rk4", Dt: 0.001, Steps: 9000,
			Cycle: CycleConfig{Type: "target_speed", TargetKmh: 65, Drive: 3.3, Brake: -8.5, StopSpeed: 0.1},
		},
	},
	"sedan": {
		"launch": {
			Vehicle: "sedan", Integrator: "rk4", Dt: 0.001, Steps: 5000,
			Cycle: CycleConfig{Type: "windowed", Drive: 3.0, Brake: -6.0, DriveStart: 0.5, DriveEnd: 2.5, BrakeStart: 3.0, BrakeEnd: 4.0},
		},
	},
}

func GetPreset(vehicle, preset string) *Config {
	vehiclePresets, ok := Presets[vehicle]
	if !ok {
		return nil
	}
	cfg, ok := vehiclePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(vehicle string) []string {
	vehiclePresets, ok := Presets[vehicle]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(vehiclePresets))
	for name := range vehiclePresets {
		names = append(names, name)
	}
	return names
}
