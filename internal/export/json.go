package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/halfcar/internal/sim"
)

type ExportData struct {
	Vehicle    string             `json:"vehicle"`
	Integrator string             `json:"integrator"`
	Cycle      string             `json:"cycle"`
	Dt         float64            `json:"dt"`
	Steps      int                `json:"steps"`
	Records    []sim.Record       `json:"records"`
	Metrics    map[string]float64 `json:"metrics"`
}

func writeJSON(w io.Writer, vehicle, integrator, cycle string, dt float64, result *sim.Result) error {
	data := ExportData{
		Vehicle:    vehicle,
		Integrator: integrator,
		Cycle:      cycle,
		Dt:         dt,
		Steps:      len(result.Records),
		Records:    result.Records,
		Metrics:    result.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path, vehicle, integrator, cycle string, dt float64, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeJSON(file, vehicle, integrator, cycle, dt, result)
}

func ExportJSONStdout(vehicle, integrator, cycle string, dt float64, result *sim.Result) error {
	return writeJSON(os.Stdout, vehicle, integrator, cycle, dt, result)
}
