package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/orbitx/internal/analysis"
	"github.com/san-kum/orbitx/internal/config"
	"github.com/san-kum/orbitx/internal/effects"
	"github.com/san-kum/orbitx/internal/integrators"
	"github.com/san-kum/orbitx/internal/metrics"
	"github.com/san-kum/orbitx/internal/sim"
	"github.com/san-kum/orbitx/internal/storage"
	"github.com/san-kum/orbitx/internal/sweep"
	"github.com/san-kum/orbitx/internal/viz"
)

var (
	dataDir     string
	configFile  string
	preset      string
	dt          float64
	duration    float64
	integrator  string
	recordEvery int
	exportPath  string
	sweepTaus   []float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitx",
		Short: "N-body simulation with per-step effect operators",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitx", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a configured simulation",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().StringVar(&integrator, "integrator", "leapfrog", "integrator")
	runCmd.Flags().IntVar(&recordEvery, "record-every", 10, "sample cadence in steps")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "kepler", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot tracked semi-major axes",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&exportPath, "out", "", "output path (default stdout)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "drift and oscillation statistics for tracked series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep migration timescales and compare final bounds",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "migrating", "use preset configuration")
	sweepCmd.Flags().Float64SliceVar(&sweepTaus, "tau", []float64{100, 500, 1000}, "migration timescales")

	effectsCmd := &cobra.Command{
		Use:   "effects",
		Short: "list available effects",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range effects.NewRegistry().List() {
				fmt.Println(name)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, analyzeCmd, sweepCmd, effectsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves preset, config file, then flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("record-every") {
		cfg.RecordEvery = recordEvery
	}
	return cfg, nil
}

// buildSimulator wires bodies, integrator and effects from a config.
func buildSimulator(cfg *config.Config) (*sim.Simulator, []string, error) {
	system, err := cfg.BuildSimulation()
	if err != nil {
		return nil, nil, err
	}

	integ, err := integrators.New(cfg.Integrator)
	if err != nil {
		return nil, nil, err
	}

	simulator := sim.New(system, integ)

	registry := effects.NewRegistry()
	var names []string
	for _, ec := range cfg.Effects {
		op, timing, err := registry.Get(ec.Name, effects.Params{
			Primary: ec.Primary,
			TauA:    ec.TauA,
			Bodies:  ec.Bodies,
		})
		if err != nil {
			return nil, nil, err
		}
		simulator.AddOperator(op, timing)
		names = append(names, ec.Name)
	}

	simulator.AddMetric(metrics.NewEnergyDrift())
	simulator.AddMetric(metrics.NewAngularMomentumDrift())
	return simulator, names, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	simulator, effectNames, err := buildSimulator(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("running %d bodies for t=%.2f (dt=%.2g, %s)...\n",
		simulator.Simulation().N(), cfg.Duration, cfg.Dt, cfg.Integrator)
	start := time.Now()

	result, err := simulator.Run(context.Background(), sim.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		ValidateState: true,
		RecordEvery:   cfg.RecordEvery,
	})
	if err != nil {
		return err
	}

	runID, err := st.Save(preset, cfg.Integrator, cfg.Dt, cfg.Duration, effectNames, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}

	for i, b := range result.Bounds {
		fmt.Printf("body %d: min_a=%.9f max_a=%.9f\n", i, b.MinA, b.MaxA)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.3e\n", name, val)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	simulator, _, err := buildSimulator(cfg)
	if err != nil {
		return err
	}
	return viz.RunLive(simulator, cfg.Dt)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tDURATION\tDT\tINTEG\tEFFECTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2g\t%s\t%v\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
			run.Effects,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.LoadMetadata(args[0])
	if err != nil {
		return err
	}
	times, axes, err := st.LoadAxes(args[0])
	if err != nil {
		return err
	}
	if len(axes) == 0 {
		return fmt.Errorf("no tracked series to plot")
	}

	fmt.Printf("run: %s\n\n", meta.ID)
	fmt.Print(viz.PlotAxes(times, axes))

	for body, b := range meta.Bounds {
		fmt.Printf("body %s: min_a=%.9f max_a=%.9f\n", body, b.MinA, b.MaxA)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	points := sweep.TauA(context.Background(), cfg, sweepTaus)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TAU_A\tBODY\tMIN_A\tMAX_A")
	for _, p := range points {
		if p.Err != nil {
			fmt.Fprintf(w, "%.4g\terror: %v\t\t\n", p.TauA, p.Err)
			continue
		}
		for body, b := range p.Result.Bounds {
			fmt.Fprintf(w, "%.4g\t%d\t%.9f\t%.9f\n", p.TauA, body, b.MinA, b.MaxA)
		}
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(args[0], exportPath)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, axes, err := st.LoadAxes(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tMIN\tMAX\tRANGE\tDRIFT/T\tAMPLITUDE")
	for body, series := range axes {
		// series may have gaps; align against the leading times
		n := len(series)
		if n > len(times) {
			n = len(times)
		}
		stats, err := analysis.Analyze(times[:n], series[:n])
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%d\t%.6g\t%.6g\t%.3g\t%.3g\t%.3g\n",
			body, stats.Min, stats.Max, stats.Range, stats.DriftRate, stats.Amplitude)
	}
	return w.Flush()
}
