package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/camadj/internal/camera"
	"github.com/san-kum/camadj/internal/codegen"
	"github.com/san-kum/camadj/internal/config"
	"github.com/san-kum/camadj/internal/export"
	"github.com/san-kum/camadj/internal/gui"
	"github.com/san-kum/camadj/internal/render"
	"github.com/san-kum/camadj/internal/scene"
	"github.com/san-kum/camadj/internal/storage"
	"github.com/san-kum/camadj/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	workers    int

	// Camera parameters
	elevation float64
	azimuth   float64
	roll      float64
	fsd       float64
	fcd       float64
	screenW   float64
	screenH   float64
	boxX      float64
	boxY      float64
	boxZ      float64

	// Output
	outFile       string
	surfaceWidth  int
	surfaceHeight int
	pixelsPerUnit float64
	border        bool
	cols          int
	rows          int
	setupName     string
	benchFrames   int
	asJSON        bool
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "camadj",
		Short: "camera and screen adjustment lab",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", env.DataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", env.Config, "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset camera placement")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", env.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", env.Workers, "rasterization workers")
	addCameraFlags(rootCmd)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the wireframe to a png",
		RunE:  renderPNG,
	}
	addCameraFlags(renderCmd)
	addSurfaceFlags(renderCmd)
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "frame.png", "output file")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "print the wireframe as braille",
		RunE:  preview,
	}
	addCameraFlags(previewCmd)
	previewCmd.Flags().IntVar(&cols, "cols", 80, "terminal columns")
	previewCmd.Flags().IntVar(&rows, "rows", 24, "terminal rows")
	previewCmd.Flags().BoolVar(&border, "border", true, "draw the viewport frame")

	adjustCmd := &cobra.Command{
		Use:   "adjust",
		Short: "adjust the camera interactively in the terminal",
		RunE:  adjust,
	}
	addCameraFlags(adjustCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "adjust the camera in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}
	addCameraFlags(guiCmd)

	snippetCmd := &cobra.Command{
		Use:   "snippet",
		Short: "print the camera as a C initializer",
		RunE:  snippet,
	}
	addCameraFlags(snippetCmd)
	snippetCmd.Flags().Float64Var(&pixelsPerUnit, "ppu", config.DefaultPixelsPerUnit, "pixels per world unit")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "export the projected wireframe as svg",
		RunE:  exportSVG,
	}
	addCameraFlags(svgCmd)
	addSurfaceFlags(svgCmd)
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "frame.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list camera presets",
		RunE:  listPresets,
	}

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "save the camera setup",
		RunE:  saveSetup,
	}
	addCameraFlags(saveCmd)
	saveCmd.Flags().StringVar(&setupName, "name", "", "setup name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved setups",
		RunE:  listSetups,
	}

	showCmd := &cobra.Command{
		Use:   "show [setup_id]",
		Short: "show a saved setup",
		Args:  cobra.ExactArgs(1),
		RunE:  showSetup,
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "print derived geometry as json")

	deleteCmd := &cobra.Command{
		Use:   "delete [setup_id]",
		Short: "delete a saved setup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.New(dataDir).Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted %s\n", args[0])
			return nil
		},
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot the stroke coverage falloff",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(viz.ProfilePlot(8, 60, 12))
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark frame rendering",
		RunE:  bench,
	}
	addCameraFlags(benchCmd)
	addSurfaceFlags(benchCmd)
	benchCmd.Flags().IntVar(&benchFrames, "frames", 20, "frames per worker count")

	rootCmd.AddCommand(renderCmd, previewCmd, adjustCmd, guiCmd, snippetCmd, svgCmd,
		presetsCmd, saveCmd, listCmd, showCmd, deleteCmd, profileCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func addCameraFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&elevation, "elevation", 0, "elevation angle (deg)")
	f.Float64Var(&azimuth, "azimuth", 0, "azimuth angle (deg)")
	f.Float64Var(&roll, "roll", 0, "screen roll angle (deg)")
	f.Float64Var(&fsd, "fsd", config.DefaultFocalScreenDistance, "focal screen distance")
	f.Float64Var(&fcd, "fcd", config.DefaultFocalCameraDistance, "focal camera distance")
	f.Float64Var(&screenW, "screen-width", config.DefaultScreenSize, "screen width")
	f.Float64Var(&screenH, "screen-height", config.DefaultScreenSize, "screen height")
	f.Float64Var(&boxX, "box-x", config.DefaultBoxSize, "box size along x")
	f.Float64Var(&boxY, "box-y", config.DefaultBoxSize, "box size along y")
	f.Float64Var(&boxZ, "box-z", config.DefaultBoxSize, "box size along z")
}

func addSurfaceFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&surfaceWidth, "width", config.DefaultSurfaceWidth, "surface width (px)")
	f.IntVar(&surfaceHeight, "height", config.DefaultSurfaceHeight, "surface height (px)")
	f.BoolVar(&border, "border", true, "draw the viewport frame")
}

// resolveConfig layers preset or config file, then explicitly set flags, and
// validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg.Camera = p.Camera
	}

	f := cmd.Flags()
	overrides := []struct {
		flag string
		dst  *float64
		src  float64
	}{
		{"elevation", &cfg.Camera.Elevation, elevation},
		{"azimuth", &cfg.Camera.Azimuth, azimuth},
		{"roll", &cfg.Camera.Roll, roll},
		{"fsd", &cfg.Camera.FocalScreenDistance, fsd},
		{"fcd", &cfg.Camera.FocalCameraDistance, fcd},
		{"screen-width", &cfg.Camera.ScreenWidth, screenW},
		{"screen-height", &cfg.Camera.ScreenHeight, screenH},
		{"box-x", &cfg.Camera.BoxSizeX, boxX},
		{"box-y", &cfg.Camera.BoxSizeY, boxY},
		{"box-z", &cfg.Camera.BoxSizeZ, boxZ},
		{"ppu", &cfg.Render.PixelsPerUnit, pixelsPerUnit},
	}
	for _, o := range overrides {
		if f.Lookup(o.flag) != nil && f.Changed(o.flag) {
			*o.dst = o.src
		}
	}
	if f.Lookup("width") != nil && f.Changed("width") {
		cfg.Render.SurfaceWidth = surfaceWidth
	}
	if f.Lookup("height") != nil && f.Changed("height") {
		cfg.Render.SurfaceHeight = surfaceHeight
	}
	if f.Lookup("border") != nil && f.Changed("border") {
		cfg.Render.Border = border
	}
	if configFile == "" || f.Changed("workers") {
		cfg.Render.Workers = workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("config resolved", "preset", preset, "config", configFile, "camera", cfg.Camera)
	return cfg, nil
}

func renderOptions(cfg *config.Config) render.Options {
	return render.Options{Workers: cfg.Render.Workers, Border: cfg.Render.Border}
}

func renderPNG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	surface, err := render.Composite(cmd.Context(), cfg.Camera, cfg.Render.SurfaceWidth, cfg.Render.SurfaceHeight, renderOptions(cfg))
	if err != nil {
		return err
	}
	slog.Info("rendered", "width", surface.Width, "height", surface.Height, "elapsed", time.Since(start))

	if err := export.SavePNG(outFile, surface); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", outFile)
	return nil
}

func preview(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	surface, err := render.Composite(cmd.Context(), cfg.Camera, cols*2, rows*4, renderOptions(cfg))
	if err != nil {
		return err
	}
	fmt.Print(viz.FromBuffer(surface, 64).Render())
	fmt.Println(viz.Legend())
	return nil
}

func adjust(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	final, err := viz.RunAdjuster(cfg)
	if err != nil {
		return err
	}
	if err := final.Validate(); err != nil {
		return err
	}
	return codegen.Write(os.Stdout, final.Camera, final.Render.PixelsPerUnit)
}

func snippet(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return codegen.Write(os.Stdout, cfg.Camera, cfg.Render.PixelsPerUnit)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	st := camera.Derive(cfg.Camera)
	svg := export.WireframeSVG(st, scene.Wireframe(cfg.Camera.BoxSize()), cfg.Render.SurfaceWidth, cfg.Render.SurfaceHeight)
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", outFile)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tELEV\tAZIM\tROLL\tFSD\tFCD\tSCREEN")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%.2f\t%.2f\t%.2fx%.2f\n",
			name, p.Elevation, p.Azimuth, p.Roll,
			p.FocalScreenDistance, p.FocalCameraDistance, p.ScreenWidth, p.ScreenHeight)
	}
	return w.Flush()
}

func saveSetup(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	name := setupName
	if name == "" {
		name = preset
	}
	id, err := st.Save(name, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("saved setup %s\n", id)
	return nil
}

func listSetups(cmd *cobra.Command, args []string) error {
	setups, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	if len(setups) == 0 {
		fmt.Println("no setups found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tELEV\tAZIM\tROLL")
	for _, s := range setups {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.1f\t%.1f\n",
			s.ID,
			s.Name,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Camera.Elevation,
			s.Camera.Azimuth,
			s.Camera.Roll,
		)
	}
	return w.Flush()
}

func showSetup(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	cfg, err := st.LoadConfig(args[0])
	if err != nil {
		return err
	}

	if asJSON {
		return export.WriteGeometryJSON(os.Stdout, cfg.Camera, cfg.Render.SurfaceWidth, cfg.Render.SurfaceHeight)
	}

	fmt.Printf("%s (%s)\n", meta.ID, meta.Name)
	fmt.Printf("saved:           %s\n", meta.Timestamp.Format(time.RFC3339))
	fmt.Printf("camera position: %+.6f\n", meta.CameraPosition)
	fmt.Printf("screen center:   %+.6f\n\n", meta.ScreenCenter)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return codegen.Write(os.Stdout, cfg.Camera, cfg.Render.PixelsPerUnit)
}

func bench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %dx%d, %d frames\n\n", cfg.Render.SurfaceWidth, cfg.Render.SurfaceHeight, benchFrames)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORKERS\tFRAMES\tTIME\tFRAMES/SEC")

	ctx := context.Background()
	for _, n := range []int{1, 2, 4, 8} {
		opts := renderOptions(cfg)
		opts.Workers = n

		start := time.Now()
		for i := 0; i < benchFrames; i++ {
			if _, err := render.Frame(ctx, cfg.Camera, cfg.Render.SurfaceWidth, cfg.Render.SurfaceHeight, opts); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%v\t%.1f\n", n, benchFrames, elapsed, float64(benchFrames)/elapsed.Seconds())
	}
	return w.Flush()
}
