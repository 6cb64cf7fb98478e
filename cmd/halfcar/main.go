package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/halfcar/internal/config"
	"github.com/san-kum/halfcar/internal/experiment"
	"github.com/san-kum/halfcar/internal/export"
	"github.com/san-kum/halfcar/internal/optim"
	"github.com/san-kum/halfcar/internal/sim"
	"github.com/san-kum/halfcar/internal/storage"
	"github.com/san-kum/halfcar/internal/vehicle"
	"github.com/san-kum/halfcar/internal/viz"
)

var (
	dataDir    string
	dt         float64
	steps      int
	integrator string
	cycleName  string
	targetKmh  float64
	drive      float64
	brake      float64
	stopSpeed  float64
	configFile string
	preset     string
	// fleet / export
	outPath string
	// plot
	column      string
	graphHeight int
	graphWidth  int
	// tune
	metricName string
	tuneLo     float64
	tuneHi     float64
	tuneStep   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "halfcar",
		Short: "half-car ride dynamics simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".halfcar", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [vehicle]",
		Short: "simulate one vehicle and store the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario config file (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")

	fleetCmd := &cobra.Command{
		Use:   "fleet",
		Short: "simulate every catalog vehicle in parallel, one CSV each",
		RunE:  runFleet,
	}
	addScenarioFlags(fleetCmd)
	fleetCmd.Flags().StringVar(&outPath, "out", "csv", "output directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run column in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&column, "column", "v_abs", "column to plot (ys|theta|yu1|yu2|v_abs|x_abs)")
	plotCmd.Flags().IntVar(&graphHeight, "height", 12, "graph height")
	plotCmd.Flags().IntVar(&graphWidth, "width", 100, "graph width")

	liveCmd := &cobra.Command{
		Use:   "live [vehicle]",
		Short: "animate a run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outPath, "out", "", "output file (default <run_id>.csv)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [vehicle]",
		Short: "list preset scenarios for a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for vehicle: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	tuneCmd := &cobra.Command{
		Use:   "tune [vehicle]",
		Short: "grid-search suspension damping against a ride metric",
		Args:  cobra.ExactArgs(1),
		RunE:  tuneDamping,
	}
	addScenarioFlags(tuneCmd)
	tuneCmd.Flags().StringVar(&metricName, "metric", "peak_pitch", "metric to minimize")
	tuneCmd.Flags().Float64Var(&tuneLo, "lo", 1000, "damping range low [N s/m]")
	tuneCmd.Flags().Float64Var(&tuneHi, "hi", 4000, "damping range high [N s/m]")
	tuneCmd.Flags().Float64Var(&tuneStep, "step", 500, "damping range step [N s/m]")

	benchCmd := &cobra.Command{
		Use:   "bench [vehicle]",
		Short: "time a full run",
		Args:  cobra.ExactArgs(1),
		RunE:  benchVehicle,
	}
	addScenarioFlags(benchCmd)

	rootCmd.AddCommand(runCmd, fleetCmd, listCmd, plotCmd, liveCmd, exportCSVCmd, exportJSONCmd, presetsCmd, tuneCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep [s]")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (rk4|euler)")
	cmd.Flags().StringVar(&cycleName, "cycle", "target_speed", "driving cycle (target_speed|windowed)")
	cmd.Flags().Float64Var(&targetKmh, "target", 65.0, "target speed [km/h]")
	cmd.Flags().Float64Var(&drive, "drive", 0, "drive acceleration override [m/s^2]")
	cmd.Flags().Float64Var(&brake, "brake", 0, "brake deceleration override [m/s^2]")
	cmd.Flags().Float64Var(&stopSpeed, "stop-speed", 0, "stop threshold override [m/s]")
}

func cycleParams() map[string]float64 {
	return map[string]float64{
		"target_kmh": targetKmh,
		"drive":      drive,
		"brake":      brake,
		"stop_speed": stopSpeed,
	}
}

func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("dt") {
		dt = cfg.Dt
	}
	if !cmd.Flags().Changed("steps") {
		steps = cfg.Steps
	}
	if !cmd.Flags().Changed("integrator") {
		integrator = cfg.Integrator
	}
	if !cmd.Flags().Changed("cycle") && cfg.Cycle.Type != "" {
		cycleName = cfg.Cycle.Type
	}
	if !cmd.Flags().Changed("target") && cfg.Cycle.TargetKmh != 0 {
		targetKmh = cfg.Cycle.TargetKmh
	}
	if !cmd.Flags().Changed("drive") {
		drive = cfg.Cycle.Drive
	}
	if !cmd.Flags().Changed("brake") {
		brake = cfg.Cycle.Brake
	}
	if !cmd.Flags().Changed("stop-speed") {
		stopSpeed = cfg.Cycle.StopSpeed
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	vehicleName := args[0]

	if preset != "" {
		cfg := config.GetPreset(vehicleName, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(vehicleName))
		}
		applyConfig(cmd, cfg)
	}

	var overrides map[string]float64
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cmd, cfg)
		overrides = cfg.Overrides
		if cfg.Vehicle != "" {
			vehicleName = cfg.Vehicle
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp := experiment.New(experiment.Config{
		Vehicle:     vehicleName,
		Integrator:  integrator,
		Cycle:       cycleName,
		Dt:          dt,
		Steps:       steps,
		CycleParams: cycleParams(),
		Overrides:   overrides,
	})
	if err := exp.Setup(experiment.NewRegistry()); err != nil {
		return err
	}

	fmt.Printf("running %s (%s, %s)...\n", vehicleName, cycleName, integrator)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(vehicleName, dt, steps, integrator, cycleName, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runFleet(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	catalog := vehicle.Catalog()
	specs := make([]sim.RunSpec, 0, len(catalog))
	for _, p := range catalog {
		dyn, err := vehicle.New(p)
		if err != nil {
			return err
		}
		integ, err := registry.GetIntegrator(integrator)
		if err != nil {
			return err
		}
		cyc, err := registry.GetCycle(cycleName, cycleParams())
		if err != nil {
			return err
		}
		specs = append(specs, sim.RunSpec{Name: p.Name, Dyn: dyn, Integ: integ, Cycle: cyc})
	}

	if err := os.MkdirAll(outPath, 0755); err != nil {
		return err
	}

	cfg := sim.Config{Dt: dt, Steps: steps, ValidateState: true}
	results := sim.RunParallel(context.Background(), specs, cfg)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "vehicle\tfile\tsteps")
	for _, fr := range results {
		if fr.Err != nil {
			return fmt.Errorf("%s: %w", fr.Name, fr.Err)
		}
		path := filepath.Join(outPath, fr.Name+"_sim.csv")
		if err := export.WriteRecordsFile(path, fr.Result.Records); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", fr.Name, path, fr.Result.StepsTaken)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tvehicle\tcycle\tintegrator\tdt\tsteps")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%d\n", r.ID, r.Vehicle, r.Cycle, r.Integrator, r.Dt, r.Steps)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	records, err := st.LoadRecords(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("run %s has no records", args[0])
	}

	values, err := columnValues(records, column)
	if err != nil {
		return err
	}

	// Downsample to the graph width; asciigraph plots one point per column.
	if len(values) > graphWidth {
		stride := len(values) / graphWidth
		sampled := make([]float64, 0, graphWidth)
		for i := 0; i < len(values); i += stride {
			sampled = append(sampled, values[i])
		}
		values = sampled
	}

	fmt.Println(asciigraph.Plot(values,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(fmt.Sprintf("%s: %s", args[0], column))))
	return nil
}

func columnValues(records []sim.Record, col string) ([]float64, error) {
	values := make([]float64, len(records))
	for i, r := range records {
		switch col {
		case "ys":
			values[i] = r.Ys
		case "theta":
			values[i] = r.Theta
		case "yu1":
			values[i] = r.Yu1
		case "yu2":
			values[i] = r.Yu2
		case "v_abs":
			values[i] = r.VAbs
		case "x_abs":
			values[i] = r.XAbs
		default:
			return nil, fmt.Errorf("unknown column: %s", col)
		}
	}
	return values, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	dyn, err := registry.GetVehicle(args[0], nil)
	if err != nil {
		return err
	}
	integ, err := registry.GetIntegrator(integrator)
	if err != nil {
		return err
	}
	cyc, err := registry.GetCycle(cycleName, cycleParams())
	if err != nil {
		return err
	}

	return viz.Run(viz.NewModel(dyn, integ, cyc, dt, steps))
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	records, err := st.LoadRecords(args[0])
	if err != nil {
		return err
	}

	path := outPath
	if path == "" {
		path = args[0] + ".csv"
	}
	if err := export.WriteRecordsFile(path, records); err != nil {
		return err
	}
	fmt.Printf("exported %d records to %s\n", len(records), path)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	records, err := st.LoadRecords(args[0])
	if err != nil {
		return err
	}

	result := &sim.Result{Records: records, Metrics: meta.Metrics}
	return export.ExportJSONStdout(meta.Vehicle, meta.Integrator, meta.Cycle, meta.Dt, result)
}

func tuneDamping(cmd *cobra.Command, args []string) error {
	vehicleName := args[0]
	registry := experiment.NewRegistry()

	search := optim.NewGridSearch(
		[]string{"cs1", "cs2"},
		[][]float64{optim.Span(tuneLo, tuneHi, tuneStep), optim.Span(tuneLo, tuneHi, tuneStep)},
	)

	build := func(overrides map[string]float64) (*experiment.Experiment, error) {
		exp := experiment.New(experiment.Config{
			Vehicle:     vehicleName,
			Integrator:  integrator,
			Cycle:       cycleName,
			Dt:          dt,
			Steps:       steps,
			CycleParams: cycleParams(),
			Overrides:   overrides,
		})
		if err := exp.Setup(registry); err != nil {
			return nil, err
		}
		return exp, nil
	}

	fmt.Printf("sweeping cs1, cs2 in [%g, %g] step %g against %s...\n", tuneLo, tuneHi, tuneStep, metricName)

	best, value, err := search.Search(context.Background(), build, metricName)
	if err != nil {
		return err
	}
	if best == nil {
		return fmt.Errorf("no candidate completed")
	}

	fmt.Printf("best %s: %.6f\n", metricName, value)
	for name, val := range best {
		fmt.Printf("  %s: %g\n", name, val)
	}
	return nil
}

func benchVehicle(cmd *cobra.Command, args []string) error {
	exp := experiment.New(experiment.Config{
		Vehicle:     args[0],
		Integrator:  integrator,
		Cycle:       cycleName,
		Dt:          dt,
		Steps:       steps,
		CycleParams: cycleParams(),
	})
	if err := exp.Setup(experiment.NewRegistry()); err != nil {
		return err
	}

	start := time.Now()
	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("%d steps in %v (%.0f steps/s)\n",
		result.StepsTaken, elapsed, float64(result.StepsTaken)/elapsed.Seconds())
	return nil
}
