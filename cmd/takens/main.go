package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/takens/internal/config"
	"github.com/san-kum/takens/internal/embed"
	"github.com/san-kum/takens/internal/estimate"
	"github.com/san-kum/takens/internal/fractal"
	"github.com/san-kum/takens/internal/series"
	"github.com/san-kum/takens/internal/store"
	"github.com/san-kum/takens/internal/synth"
	"github.com/san-kum/takens/internal/tui"
)

var (
	dimension int
	delay     int
	maxRadius float64
	numRadii  int
	column    int
	header    bool
	jsonOut   string
	csvOut    string
	withCurve bool
	// Config file and preset
	configFile string
	preset     string
	// gen parameters
	genN         int
	genPeriod    float64
	genAmplitude float64
	genDt        float64
	genR         float64
	genX0        float64
	genOut       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "takens",
		Short: "delay embedding and correlation dimension analysis",
	}

	embedCmd := &cobra.Command{
		Use:   "embed [series.csv]",
		Short: "reconstruct delay vectors from a scalar series",
		Args:  cobra.ExactArgs(1),
		RunE:  runEmbed,
	}
	addAnalysisFlags(embedCmd)
	embedCmd.Flags().StringVar(&csvOut, "csv", "", "write embedded vectors to CSV file")

	delayCmd := &cobra.Command{
		Use:   "delay [series.csv]",
		Short: "estimate embedding delay from the autocorrelation function",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelay,
	}
	addInputFlags(delayCmd)

	dimCmd := &cobra.Command{
		Use:   "dim [series.csv]",
		Short: "estimate embedding dimension from series length",
		Args:  cobra.ExactArgs(1),
		RunE:  runDim,
	}
	addInputFlags(dimCmd)

	corrdimCmd := &cobra.Command{
		Use:   "corrdim [series.csv]",
		Short: "estimate correlation dimension of the embedded attractor",
		Args:  cobra.ExactArgs(1),
		RunE:  runCorrDim,
	}
	addAnalysisFlags(corrdimCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze [series.csv]",
		Short: "full pipeline: parameters, embedding, correlation dimension",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	addAnalysisFlags(analyzeCmd)
	analyzeCmd.Flags().StringVar(&jsonOut, "json", "", "write report JSON to file ('-' for stdout)")
	analyzeCmd.Flags().BoolVar(&withCurve, "curve", false, "include the radius curve in the report")

	liveCmd := &cobra.Command{
		Use:   "live [series.csv]",
		Short: "watch the radius sweep in a live terminal view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addAnalysisFlags(liveCmd)

	genCmd := &cobra.Command{
		Use:   "gen [sine|logistic|lorenz]",
		Short: "generate a synthetic series with known dynamics",
		Args:  cobra.ExactArgs(1),
		RunE:  runGen,
	}
	genCmd.Flags().IntVar(&genN, "n", 2000, "number of samples")
	genCmd.Flags().Float64Var(&genPeriod, "period", 20, "sine period in samples")
	genCmd.Flags().Float64Var(&genAmplitude, "amplitude", 1.0, "sine amplitude")
	genCmd.Flags().Float64Var(&genDt, "dt", 0.01, "lorenz integration timestep")
	genCmd.Flags().Float64Var(&genR, "r", 4.0, "logistic map parameter")
	genCmd.Flags().Float64Var(&genX0, "x0", 0.3, "logistic map initial value")
	genCmd.Flags().StringVar(&genOut, "out", "", "output CSV path (required)")
	genCmd.MarkFlagRequired("out")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named analysis presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%s: dimension=%d delay=%d max_radius=%g\n",
					name, p.Dimension, p.Delay, p.MaxRadius)
			}
			return nil
		},
	}

	rootCmd.AddCommand(embedCmd, delayCmd, dimCmd, corrdimCmd, analyzeCmd, liveCmd, genCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&column, "column", 0, "CSV column holding the series")
	cmd.Flags().BoolVar(&header, "header", false, "skip the first CSV row")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
}

func addAnalysisFlags(cmd *cobra.Command) {
	addInputFlags(cmd)
	cmd.Flags().IntVar(&dimension, "dim", 0, "embedding dimension (0 = auto)")
	cmd.Flags().IntVar(&delay, "tau", 0, "embedding delay (0 = auto)")
	cmd.Flags().Float64Var(&maxRadius, "max-radius", config.DefaultMaxRadius, "largest sweep radius")
	cmd.Flags().IntVar(&numRadii, "radii", config.DefaultNumRadii, "number of sweep radii")
}

// resolveConfig layers preset, config file, and explicit flags, flags
// winning over the file and the file over the preset.
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

	if cmd.Flags().Changed("dim") {
		cfg.Dimension = dimension
	}
	if cmd.Flags().Changed("tau") {
		cfg.Delay = delay
	}
	if cmd.Flags().Changed("max-radius") {
		cfg.MaxRadius = maxRadius
	}
	if cmd.Flags().Changed("radii") {
		cfg.NumRadii = numRadii
	}
	if cmd.Flags().Changed("column") {
		cfg.Input.Column = column
	}
	if cmd.Flags().Changed("header") {
		cfg.Input.Header = header
	}

	return cfg, cfg.Validate()
}

func loadSeries(path string, cfg *config.Config) (series.Series, error) {
	s, err := store.LoadCSV(path, cfg.Input.Column, cfg.Input.Header)
	if err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return nil, fmt.Errorf("%s: no samples in column %d", path, cfg.Input.Column)
	}
	if !s.IsValid() {
		return nil, fmt.Errorf("%s: series contains NaN or Inf", path)
	}
	return s, nil
}

func runEmbed(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := loadSeries(args[0], cfg)
	if err != nil {
		return err
	}

	points, m, tau, err := embed.Auto(s, embed.Options{Dimension: cfg.Dimension, Delay: cfg.Delay})
	if err != nil {
		return err
	}

	fmt.Printf("embedded %d samples -> %d vectors (dimension %d, delay %d)\n",
		len(s), len(points), m, tau)
	if len(points) == 0 {
		fmt.Println("series too short for this geometry; no vectors produced")
		return nil
	}

	if csvOut != "" {
		if err := store.ExportPointsCSV(csvOut, points); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvOut)
	}
	return nil
}

func runDelay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := loadSeries(args[0], cfg)
	if err != nil {
		return err
	}

	maxLag := len(s) / 4
	if maxLag > estimate.MaxDelayLag {
		maxLag = estimate.MaxDelayLag
	}
	table := estimate.ACF(s, maxLag)
	if len(table) > 0 {
		values := make([]float64, len(table))
		for i, row := range table {
			values[i] = row.Value
		}
		graph := asciigraph.Plot(values,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("autocorrelation by lag"),
		)
		fmt.Println(graph)
	}

	fmt.Printf("estimated delay: %d\n", estimate.Delay(s))
	return nil
}

func runDim(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := loadSeries(args[0], cfg)
	if err != nil {
		return err
	}
	fmt.Printf("estimated embedding dimension: %d (from %d samples)\n",
		estimate.Dimension(s), len(s))
	return nil
}

func runCorrDim(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := loadSeries(args[0], cfg)
	if err != nil {
		return err
	}

	points, m, tau, err := embed.Auto(s, embed.Options{Dimension: cfg.Dimension, Delay: cfg.Delay})
	if err != nil {
		return err
	}
	fcfg := fractal.Config{MaxRadius: cfg.MaxRadius, NumRadii: cfg.NumRadii}

	curve := fractal.CorrelationCurve(points, fcfg)
	if len(curve) > 1 {
		logC := make([]float64, len(curve))
		for i, rc := range curve {
			logC[i] = math.Log10(rc.Fraction)
		}
		graph := asciigraph.Plot(logC,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("log10 C(r) across the radius sweep"),
		)
		fmt.Println(graph)
	}

	d := fractal.FitSlope(curve)
	if len(points) < 2 {
		d = 0
	}
	fmt.Printf("correlation dimension: %.4f (dimension %d, delay %d, %d vectors)\n",
		d, m, tau, len(points))
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := loadSeries(args[0], cfg)
	if err != nil {
		return err
	}

	points, m, tau, err := embed.Auto(s, embed.Options{Dimension: cfg.Dimension, Delay: cfg.Delay})
	if err != nil {
		return err
	}
	fcfg := fractal.Config{MaxRadius: cfg.MaxRadius, NumRadii: cfg.NumRadii}
	corrDim := fractal.CorrelationDimension(points, fcfg)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "source\t%s\n", args[0])
	fmt.Fprintf(w, "samples\t%d\n", len(s))
	fmt.Fprintf(w, "mean\t%.6g\n", s.Mean())
	fmt.Fprintf(w, "variance\t%.6g\n", s.Variance())
	fmt.Fprintf(w, "embedding dimension\t%d\n", m)
	fmt.Fprintf(w, "delay\t%d\n", tau)
	fmt.Fprintf(w, "embedded vectors\t%d\n", len(points))
	fmt.Fprintf(w, "correlation dimension\t%.4f\n", corrDim)
	w.Flush()

	if jsonOut != "" {
		rep := &store.Report{
			Source:       args[0],
			SeriesLength: len(s),
			Dimension:    m,
			Delay:        tau,
			PointCount:   len(points),
			CorrDim:      corrDim,
		}
		if withCurve {
			rep.Curve = fractal.CorrelationCurve(points, fcfg)
		}
		path := jsonOut
		if path == "-" {
			path = ""
		}
		if err := store.ExportReportJSON(path, rep); err != nil {
			return err
		}
		if path != "" {
			fmt.Printf("wrote %s\n", path)
		}
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := loadSeries(args[0], cfg)
	if err != nil {
		return err
	}

	points, m, tau, err := embed.Auto(s, embed.Options{Dimension: cfg.Dimension, Delay: cfg.Delay})
	if err != nil {
		return err
	}
	if len(points) < 2 {
		return fmt.Errorf("only %d embedded vectors; nothing to sweep", len(points))
	}

	fcfg := fractal.Config{MaxRadius: cfg.MaxRadius, NumRadii: cfg.NumRadii}
	return tui.Run(points, m, tau, len(s), fcfg)
}

func runGen(cmd *cobra.Command, args []string) error {
	var s series.Series
	switch args[0] {
	case "sine":
		s = synth.Sine(genN, genPeriod, genAmplitude)
	case "logistic":
		s = synth.Logistic(genN, genR, genX0)
	case "lorenz":
		s = synth.LorenzX(genN, genDt)
	default:
		return fmt.Errorf("unknown generator: %s (want sine, logistic, or lorenz)", args[0])
	}

	if err := store.SaveCSV(genOut, s); err != nil {
		return err
	}
	fmt.Printf("wrote %d samples to %s\n", len(s), genOut)
	return nil
}

