package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/halfcar/internal/sim"
)

func sampleResult() *sim.Result {
	return &sim.Result{
		Records: []sim.Record{
			{T: 0, VAbs: 0},
			{T: 0.001, Ys: -1.7e-5, Theta: 0.0003, VAbs: 0.0033, XAbs: 3.3e-6},
		},
		Metrics:    map[string]float64{"peak_pitch": 0.0186, "stability": 1},
		StepsTaken: 2,
	}
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save("GR86", 0.001, 9000, "rk4", "target_speed", sampleResult())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(runID, "GR86_") {
		t.Errorf("runID = %q, want GR86_<timestamp>", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Vehicle != "GR86" || meta.Integrator != "rk4" || meta.Cycle != "target_speed" {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Dt != 0.001 || meta.Steps != 9000 {
		t.Errorf("time grid mismatch: dt=%g steps=%d", meta.Dt, meta.Steps)
	}
	if meta.Metrics["stability"] != 1 {
		t.Errorf("Metrics = %v", meta.Metrics)
	}

	records, err := st.LoadRecords(runID)
	if err != nil {
		t.Fatal(err)
	}
	want := sampleResult().Records
	if len(records) != len(want) {
		t.Fatalf("len(records) = %d, want %d", len(records), len(want))
	}
	for i := range records {
		if records[i] != want[i] {
			t.Errorf("record %d: got %+v, want %+v", i, records[i], want[i])
		}
	}
}

func TestRunDirectoryLayout(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save("Sedan", 0.001, 100, "euler", "windowed", sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"metadata.json", "records.csv"} {
		if _, err := os.Stat(filepath.Join(dir, runID, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("fresh store should be empty, got %d runs", len(runs))
	}

	if _, err := st.Save("GR86", 0.001, 100, "rk4", "target_speed", sampleResult()); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}
	if runs[0].Vehicle != "GR86" {
		t.Errorf("Vehicle = %q", runs[0].Vehicle)
	}
}

func TestListMissingBaseDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "never-created"))
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("len(runs) = %d, want 0", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope_0"); err == nil {
		t.Error("expected error for unknown run")
	}
	if _, err := st.LoadRecords("nope_0"); err == nil {
		t.Error("expected error for unknown run records")
	}
}
