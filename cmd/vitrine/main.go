package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/ndelcros/vitrine/internal/config"
	"github.com/ndelcros/vitrine/internal/field"
	"github.com/ndelcros/vitrine/internal/gui"
	"github.com/ndelcros/vitrine/internal/loop"
	"github.com/ndelcros/vitrine/internal/metrics"
	"github.com/ndelcros/vitrine/internal/storage"
	"github.com/ndelcros/vitrine/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	duration   float64
	seed       int64
	count      int
	width      int
	height     int
	frameRate  int
	realtime   bool
	metricName string
)

// main registers the commands and launches the interactive window when no
// subcommand is given. It exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "vitrine",
		Short: "portfolio backdrop renderer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".vitrine", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().IntVar(&count, "count", 0, "particle count (0 = pick from width)")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "viewport width")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "viewport height")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the field headless and record metrics",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "duration in seconds")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "pace frames on the wall clock")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the field with a terminal visualization",
		RunE:  runLive,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot recorded metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&metricName, "metric", "", "plot a single metric by name")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file, and CLI flags, in that order of
// increasing precedence. Flags only win when set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
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

	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("count") {
		cfg.Field.Count = count
	}
	if cmd.Flags().Changed("width") {
		cfg.Window.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Window.Height = height
	}
	if cmd.Flags().Changed("fps") {
		cfg.Window.FPS = frameRate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newField(cfg *config.Config) *field.Field {
	w := float64(cfg.Window.Width)
	h := float64(cfg.Window.Height)
	var f *field.Field
	if cfg.Field.Count > 0 {
		f = field.NewWithCount(w, h, cfg.Field.Count, cfg.Seed)
	} else {
		f = field.New(w, h, cfg.Seed)
	}
	f.SetDrift(field.NewDrift(cfg.Field.DriftScale, cfg.Field.DriftRate, cfg.Field.DriftStrength, cfg.Seed))
	return f
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	f := newField(cfg)
	mets := metrics.Defaults()

	names := make([]string, len(mets))
	for i, m := range mets {
		names[i] = m.Name()
	}
	series := &storage.Series{Names: names}

	frames := int(duration * float64(cfg.Window.FPS))
	dt := 1.0 / float64(cfg.Window.FPS)

	observe := func(t float64) {
		f.Step(field.NoPointer(), t)
		row := make([]float64, len(mets))
		for i, m := range mets {
			m.Observe(f, t)
			row[i] = m.Value()
		}
		series.Times = append(series.Times, t)
		series.Rows = append(series.Rows, row)
	}

	fmt.Printf("running field for %.1fs (%d frames)...\n", duration, frames)
	start := time.Now()

	if realtime {
		l, err := loop.New(cfg.Window.FPS, observe)
		if err != nil {
			return err
		}
		if err := l.Start(); err != nil {
			return err
		}
		time.Sleep(time.Duration(duration * float64(time.Second)))
		l.Stop()
		l.Dispose()
	} else {
		for frame := 1; frame <= frames; frame++ {
			observe(float64(frame) * dt)
		}
	}

	elapsed := time.Since(start)

	final := make(map[string]float64, len(mets))
	for _, m := range mets {
		final[m.Name()] = m.Value()
	}

	runID, err := st.Save(storage.RunMetadata{
		Preset:    preset,
		Seed:      cfg.Seed,
		FPS:       cfg.Window.FPS,
		Duration:  duration,
		Width:     float64(cfg.Window.Width),
		Height:    float64(cfg.Window.Height),
		Particles: len(f.Particles),
		Metrics:   final,
	}, series)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(series.Rows))
	fmt.Println("\nmetrics:")
	for _, m := range mets {
		fmt.Printf("  %s: %.6f\n", m.Name(), m.Value())
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(cfg))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
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
	fmt.Fprintln(w, "ID\tTIME\tDURATION\tFPS\tPARTICLES\tPRESET")

	for _, run := range runs {
		presetName := run.Preset
		if presetName == "" {
			presetName = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%.2fs\t%d\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.FPS,
			run.Particles,
			presetName,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(series.Rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d\n\n", len(series.Rows))

	names := series.Names
	if metricName != "" {
		names = []string{metricName}
	}

	for _, name := range names {
		data := series.Column(name)
		if data == nil {
			return fmt.Errorf("unknown metric: %s (available: %v)", name, series.Names)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(series.Rows) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.ExportCSV(os.Stdout, series)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, series)
}
