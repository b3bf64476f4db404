package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/hexfield/internal/config"
	"github.com/san-kum/hexfield/internal/export"
	"github.com/san-kum/hexfield/internal/geom"
	"github.com/san-kum/hexfield/internal/grid"
	"github.com/san-kum/hexfield/internal/gui"
	"github.com/san-kum/hexfield/internal/render"
	"github.com/san-kum/hexfield/internal/tui"
	"github.com/san-kum/hexfield/internal/viz"
	"github.com/san-kum/hexfield/internal/world"
)

const (
	defaultRenderWidth  = 800
	defaultRenderHeight = 600
)

var (
	configFile string
	preset     string
	width      float64
	height     float64
	hexSize    float64
	ratio      float64
	radius     float64
	interval   int
	seed       int64
	theme      string
	// Plain terminal size in cells
	cols int
	rows int
	// Recording
	frames int
	// Grid listing
	listColumns bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers commands and flags. The terminal view runs when no
// subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "hexfield",
		Short:        "twinkling dots on a hexagonal lattice",
		SilenceUsage: true,
		RunE:         runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Float64Var(&width, "width", config.FitOutput, "viewport width (negative = fit output)")
	pf.Float64Var(&height, "height", config.FitOutput, "viewport height (negative = fit output)")
	pf.Float64Var(&hexSize, "hex-size", config.DefaultHexSize, "hexagon size")
	pf.Float64Var(&ratio, "ratio", config.DefaultDotRatio, "fraction of lattice points lit per tick")
	pf.Float64Var(&radius, "radius", config.DefaultDotRadius, "dot radius")
	pf.IntVar(&interval, "interval", config.DefaultIntervalMs, "tick interval in milliseconds")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, fmt.Sprintf("panel theme (%s)", strings.Join(viz.ThemeNames(), ", ")))

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the field in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}

	plainCmd := &cobra.Command{
		Use:   "plain",
		Short: "animate with plain ANSI redraws (no alt screen)",
		Args:  cobra.NoArgs,
		RunE:  runPlain,
	}
	plainCmd.Flags().IntVar(&cols, "cols", 80, "canvas width in cells")
	plainCmd.Flags().IntVar(&rows, "rows", 24, "canvas height in cells")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate the field in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}

	renderCmd := &cobra.Command{
		Use:   "render [file.svg|file.png]",
		Short: "render the initial frame to a file",
		Args:  cobra.ExactArgs(1),
		RunE:  renderFrame,
	}

	recordCmd := &cobra.Command{
		Use:   "record [file.gif]",
		Short: "record ticks to an animated gif",
		Args:  cobra.ExactArgs(1),
		RunE:  recordGIF,
	}
	recordCmd.Flags().IntVar(&frames, "frames", 30, "number of frames")

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "show lattice statistics",
		Args:  cobra.NoArgs,
		RunE:  gridStats,
	}
	gridCmd.Flags().BoolVar(&listColumns, "columns", false, "list every column")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tHEX\tRATIO\tINTERVAL\tCOLORS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.1f\t%.2f\t%dms\t%s on %s\n",
					name, p.HexSize, p.DotRatio, p.IntervalMs, p.Colors.Dot, p.Colors.Background)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, plainCmd, guiCmd, renderCmd, recordCmd, gridCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOnto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("hex-size") {
		cfg.HexSize = hexSize
	}
	if flags.Changed("ratio") {
		cfg.DotRatio = ratio
	}
	if flags.Changed("radius") {
		cfg.DotRadius = radius
	}
	if flags.Changed("interval") {
		cfg.IntervalMs = interval
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func worldParams(cfg *config.Config) (world.Params, error) {
	bg, dot, err := cfg.Palette()
	if err != nil {
		return world.Params{}, err
	}
	return world.Params{
		HexSize:    cfg.HexSize,
		DotRatio:   cfg.DotRatio,
		DotRadius:  cfg.DotRadius,
		Interval:   cfg.Interval(),
		Background: bg,
		DotColor:   dot,
		Seed:       cfg.Seed,
	}, nil
}

func setup(cmd *cobra.Command) (*config.Config, world.Params, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, world.Params{}, err
	}
	params, err := worldParams(cfg)
	if err != nil {
		return nil, world.Params{}, err
	}
	return cfg, params, nil
}

// renderSize falls back to a fixed frame for each dimension left to fit.
func renderSize(cfg *config.Config) (float64, float64) {
	w, h := cfg.Width, cfg.Height
	if w < 0 {
		w = defaultRenderWidth
	}
	if h < 0 {
		h = defaultRenderHeight
	}
	return w, h
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, params, err := setup(cmd)
	if err != nil {
		return err
	}
	return viz.Run(params, viz.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		CellScale: cfg.Terminal.CellScale,
		Theme:     cfg.Theme,
	})
}

func runPlain(cmd *cobra.Command, args []string) error {
	cfg, params, err := setup(cmd)
	if err != nil {
		return err
	}

	canvas, w, h := plainCanvas(cfg, cols, rows)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	renderer := tui.NewLiveRenderer(out, canvas, "hexfield")
	renderer.Start()
	defer renderer.Stop()

	wd := world.New(canvas, w, h, params)
	wd.AddObserver(renderer)
	wd.Init()

	if err := wd.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Fprintf(out, "\nstopped after %d ticks\n", wd.Ticks())
	return nil
}

// plainCanvas sizes the canvas from --cols/--rows, except along a dimension
// the viewport fixes.
func plainCanvas(cfg *config.Config, cols, rows int) (*render.Canvas, float64, float64) {
	scale := cfg.Terminal.CellScale
	w, h := float64(cols*2)*scale, float64(rows*4)*scale
	if cfg.Width >= 0 {
		w, cols = cfg.Width, cellsFor(cfg.Width, 2*scale)
	}
	if cfg.Height >= 0 {
		h, rows = cfg.Height, cellsFor(cfg.Height, 4*scale)
	}
	return render.NewCanvas(cols, rows, scale), w, h
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, params, err := setup(cmd)
	if err != nil {
		return err
	}
	return gui.Run(params, int(cfg.Width), int(cfg.Height))
}

func renderFrame(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := export.FormatFor(path)
	if err != nil {
		return err
	}

	cfg, params, err := setup(cmd)
	if err != nil {
		return err
	}
	w, h := renderSize(cfg)

	var dots int
	switch format {
	case export.PNG:
		img := render.NewImage(int(w), int(h))
		wd := world.New(img, w, h, params)
		wd.Init()
		dots = len(wd.Dots())
		err = export.SavePNG(path, img)
	case export.SVG:
		err = export.ToFile(path, func(out io.Writer) error {
			s := render.NewSVG(out, w, h, "hexfield")
			wd := world.New(s, w, h, params)
			wd.Init()
			dots = len(wd.Dots())
			s.Close()
			return nil
		})
	default:
		return fmt.Errorf("%w: use record for %s", export.ErrUnknownFormat, format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rendered %d dots (%.0fx%.0f, seed %d) to %s\n", dots, w, h, params.Seed, path)
	return nil
}

func recordGIF(cmd *cobra.Command, args []string) error {
	path := args[0]
	if format, err := export.FormatFor(path); err != nil {
		return err
	} else if format != export.GIF {
		return fmt.Errorf("%w: record writes gif, got %s", export.ErrUnknownFormat, format)
	}
	if frames < 1 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}

	cfg, params, err := setup(cmd)
	if err != nil {
		return err
	}
	w, h := renderSize(cfg)

	img := render.NewImage(int(w), int(h))
	rec := export.NewRecorder(img, params.Interval, export.Palette(params.Background, params.DotColor))

	wd := world.New(img, w, h, params)
	wd.Init()
	rec.Capture()
	wd.AddObserver(rec)

	start := time.Now()
	for i := 1; i < frames; i++ {
		wd.Animate()
	}

	if err := export.ToFile(path, rec.WriteGIF); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "recorded %d frames in %v to %s\n", rec.Frames(), time.Since(start).Round(time.Millisecond), path)
	return nil
}

func gridStats(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	w, h := renderSize(cfg)

	columns := grid.Columns(w, h, cfg.HexSize)
	points := 0
	counts := make([]float64, len(columns))
	for i, c := range columns {
		points += c.Count
		counts[i] = float64(c.Count)
	}
	hexW, hexH := grid.Dims(cfg.HexSize)

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "viewport\t%.0fx%.0f\n", w, h)
	fmt.Fprintf(tw, "hex\t%.2fx%.2f (size %.1f)\n", hexW, hexH, cfg.HexSize)
	fmt.Fprintf(tw, "columns\t%d\n", len(columns))
	fmt.Fprintf(tw, "points\t%d\n", points)
	fmt.Fprintf(tw, "dots/tick\t%d\n", geom.SubsetCount(points, cfg.DotRatio))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(counts) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(counts,
			asciigraph.Height(6),
			asciigraph.Width(60),
			asciigraph.Caption("points per column")))
	}

	if listColumns {
		fmt.Fprintln(out)
		tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "COL\tX\tTYPE\tSTART\tPOINTS")
		for _, c := range columns {
			fmt.Fprintf(tw, "%d\t%.1f\t%d\t%.2f\t%d\n", c.Index, c.X, c.Type, c.Start, c.Count)
		}
		return tw.Flush()
	}
	return nil
}

func cellsFor(extent, unitsPerCell float64) int {
	n := int(extent/unitsPerCell + 0.999999)
	if n < 1 {
		return 1
	}
	return n
}
