// Command heavytop runs and inspects generalized-alpha simulations of
// a constrained rigid body pivoting under gravity.
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/ddement/openturbine/internal/config"
	"github.com/ddement/openturbine/internal/dynlog"
	"github.com/ddement/openturbine/internal/linalg"
	"github.com/ddement/openturbine/internal/runstore"
)

var (
	dataDir      string
	configFile   string
	preset       string
	dt           float64
	numSteps     int
	maxIter      int
	precondition bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "heavytop",
		Short: "generalized-alpha simulation of a pivoted rigid body",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".heavytop", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and save the result",
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario config file (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "named preset scenario")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "override time step")
	runCmd.Flags().IntVar(&numSteps, "steps", 0, "override number of steps")
	runCmd.Flags().IntVar(&maxIter, "max-iter", 0, "override Newton-Raphson iteration cap")
	runCmd.Flags().BoolVar(&precondition, "precondition", false, "enable Bottasso et al. diagonal preconditioning")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a run's metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's generalized coordinates and velocity",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's state history as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVCmd,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available preset scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, showCmd, plotCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadScenarioConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config

	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	default:
		cfg = config.DefaultConfig()
	}

	if cmd.Flags().Changed("dt") {
		cfg.TimeStepper.Dt = dt
	}
	if cmd.Flags().Changed("steps") {
		cfg.TimeStepper.NumSteps = numSteps
	}
	if cmd.Flags().Changed("max-iter") {
		cfg.TimeStepper.MaxIterations = maxIter
	}
	if cmd.Flags().Changed("precondition") {
		cfg.Integrator.Precondition = precondition
	}

	return cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenarioConfig(cmd)
	if err != nil {
		return err
	}

	scenario, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build scenario: %w", err)
	}

	dynlog.Info("starting run", "steps", cfg.TimeStepper.NumSteps, "dt", cfg.TimeStepper.Dt)

	lambda0 := linalg.NewVector(scenario.Assembler.NumConstraints())
	history, err := scenario.Integrator.Integrate(scenario.Initial, lambda0, scenario.Assembler.Residual, scenario.Assembler.IterationMatrix)
	if err != nil {
		return fmt.Errorf("integration failed: %w", err)
	}

	energy, err := scenario.Assembler.Energy(history[len(history)-1])
	if err != nil {
		return fmt.Errorf("failed to compute final energy: %w", err)
	}

	st := runstore.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(*cfg, history, scenario.Integrator.Converged(), scenario.Integrator.Stepper.TotalNumberOfIterations())
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("steps: %d\n", len(history)-1)
	fmt.Printf("converged: %v\n", scenario.Integrator.Converged())
	fmt.Printf("final energy: %.6f\n", energy)

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := runstore.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSTEPS\tDT\tCONVERGED\tNEWTON ITERS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.4f\t%v\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.NumSteps,
			run.Config.TimeStepper.Dt,
			run.Converged,
			run.TotalNewton,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := runstore.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := runstore.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, states, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}
	_ = times

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(states))

	labels := []string{"x", "y", "z", "q0", "q1", "q2", "q3", "vx", "vy", "vz", "wx", "wy", "wz"}

	for varIdx, label := range labels {
		if varIdx >= len(states[0]) {
			break
		}
		data := make([]float64, len(states))
		for i := range states {
			data[i] = states[i][varIdx]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(label),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSVCmd(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := runstore.New(dataDir)
	times, states, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range states[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
