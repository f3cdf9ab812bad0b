package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/lokwai/hkaqi/internal/config"
	"github.com/lokwai/hkaqi/internal/dataset"
	"github.com/lokwai/hkaqi/internal/export"
	"github.com/lokwai/hkaqi/internal/gui"
	"github.com/lokwai/hkaqi/internal/storage"
	"github.com/lokwai/hkaqi/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir   string
	seed      int64
	frameRate int
	particles int
	district  string
	// Config file
	configFile string
	// Preset name
	preset string
	// SVG output size
	svgWidth  int
	svgHeight int
)

// main registers commands and flags, launching the animated GUI when no
// subcommand is given. It exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "hkaqi",
		Short: "animated hong kong air quality timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".hkaqi", "data directory")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	rootCmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "particle count")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "terminal animation of the timeline",
		RunE:  runLive,
	}
	liveCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot yearly mean AQI",
		RunE:  plotTimeline,
	}
	plotCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	plotCmd.Flags().StringVar(&district, "district", "", "plot a single district instead of the city-wide mean")

	legendCmd := &cobra.Command{
		Use:   "legend",
		Short: "print the AQI level guide",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(viz.RenderLegend())
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export the generated dataset to CSV",
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export the generated dataset to JSON",
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "export the timeline as an SVG chart",
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 900, "chart width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 300, "chart height")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "save a dataset snapshot",
		RunE:  saveSnapshot,
	}
	snapshotCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved snapshots",
		RunE:  listSnapshots,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	rootCmd.AddCommand(liveCmd, plotCmd, legendCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, snapshotCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file and CLI flags, with flags
// taking precedence over the file and the file over the preset.
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

	if cmd.Flags().Changed("fps") {
		cfg.Window.FPS = frameRate
	}
	if cmd.Flags().Changed("particles") {
		cfg.Particles = particles
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	cfg.Window.FPS = frameRate
	return viz.RunLive(cfg, seed)
}

func plotTimeline(cmd *cobra.Command, args []string) error {
	gen := dataset.New(seed)

	var samples map[int]dataset.YearlySample
	caption := "yearly mean AQI"
	if district == "" {
		samples = gen.Yearly()
	} else {
		byDistrict := gen.ByDistrict()
		s, ok := byDistrict[district]
		if !ok {
			return fmt.Errorf("unknown district: %s", district)
		}
		samples = s
		caption = fmt.Sprintf("yearly mean AQI: %s", district)
	}

	data := make([]float64, 0, dataset.LastYear-dataset.FirstYear+1)
	for year := dataset.FirstYear; year <= dataset.LastYear; year++ {
		data = append(data, samples[year].Mean())
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	fmt.Printf("\nyears %d-%d\n", dataset.FirstYear, dataset.LastYear)

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	gen := dataset.New(seed)
	return export.WriteCSV(os.Stdout, gen.Yearly(), gen.ByDistrict())
}

func exportJSON(cmd *cobra.Command, args []string) error {
	gen := dataset.New(seed)
	return export.WriteJSON(os.Stdout, seed, gen.Yearly(), gen.ByDistrict())
}

func exportSVG(cmd *cobra.Command, args []string) error {
	gen := dataset.New(seed)
	svg := export.TimelineSVG(gen.Yearly(), svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("invalid chart size %dx%d", svgWidth, svgHeight)
	}
	fmt.Println(svg)
	return nil
}

func saveSnapshot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	gen := dataset.New(seed)
	id, err := st.Save(seed, gen.Yearly(), gen.ByDistrict())
	if err != nil {
		return err
	}

	fmt.Printf("snapshot id: %s\n", id)
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	snaps, err := st.List()
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSEED\tYEARS\tDISTRICTS")

	for _, snap := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d-%d\t%d\n",
			snap.ID,
			snap.Timestamp.Format("2006-01-02 15:04:05"),
			snap.Seed,
			snap.FirstYear,
			snap.LastYear,
			snap.Districts,
		)
	}

	return w.Flush()
}
