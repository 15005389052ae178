package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/shvets-d/lifelab/internal/analysis"
	"github.com/shvets-d/lifelab/internal/config"
	"github.com/shvets-d/lifelab/internal/engine"
	"github.com/shvets-d/lifelab/internal/grid"
	"github.com/shvets-d/lifelab/internal/preset"
	"github.com/shvets-d/lifelab/internal/viz"
)

var (
	dataDir    string
	configFile string
	// run / analyze
	steps       int
	untilStable bool
	maxSteps    int
	workers     int
	saveAs      string
	// new
	sizeName string
	width    int
	height   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lifelab",
		Short: "Conway's Game of Life lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default "+config.DefaultDataDir+")")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	showCmd := &cobra.Command{
		Use:   "show [preset]",
		Short: "display a preset",
		Args:  cobra.ExactArgs(1),
		RunE:  showPreset,
	}

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "advance a preset and display the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreset,
	}
	runCmd.Flags().IntVar(&steps, "steps", 1, "generations to advance")
	runCmd.Flags().BoolVar(&untilStable, "until-stable", false, "run until a fixed point or cycle is reached")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 1000, "generation limit for --until-stable")
	runCmd.Flags().IntVar(&workers, "workers", 0, "step workers (0 = one per cpu)")
	runCmd.Flags().StringVar(&saveAs, "save", "", "save the final grid as a user preset")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [preset]",
		Short: "plot population over generations",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzePreset,
	}
	analyzeCmd.Flags().IntVar(&steps, "steps", 50, "generations to simulate")
	analyzeCmd.Flags().IntVar(&workers, "workers", 0, "step workers (0 = one per cpu)")

	exportCmd := &cobra.Command{
		Use:   "export [preset]",
		Short: "write a preset to stdout in the text format",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPreset,
	}

	importCmd := &cobra.Command{
		Use:   "import [name] [file]",
		Short: "validate a preset file and store it under a name",
		Args:  cobra.ExactArgs(2),
		RunE:  importPreset,
	}

	newCmd := &cobra.Command{
		Use:   "new [name]",
		Short: "create an empty preset",
		Args:  cobra.ExactArgs(1),
		RunE:  newPreset,
	}
	newCmd.Flags().StringVar(&sizeName, "size", "", "named size: "+fmt.Sprint(config.ListSizes()))
	newCmd.Flags().IntVar(&width, "width", 0, "grid width (overrides --size)")
	newCmd.Flags().IntVar(&height, "height", 0, "grid height (overrides --size)")

	rootCmd.AddCommand(presetsCmd, showCmd, runCmd, analyzeCmd, exportCmd, importCmd, newCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: YAML file if given,
// defaults otherwise, with the --data flag taking precedence.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

func openStore() (*preset.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return preset.New(cfg.PresetDir()), nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	infos, err := st.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tCELLS\tSOURCE")
	for _, info := range infos {
		source := "user"
		if info.Builtin {
			source = "builtin"
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\n",
			info.Name, info.Width, info.Height, info.Population, source)
	}
	return w.Flush()
}

func showPreset(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	g, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(args[0], g, 0))
	fmt.Println(viz.RenderGrid(g))
	return nil
}

func runPreset(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	g, err := st.Load(args[0])
	if err != nil {
		return err
	}

	e := engine.New(workers)
	tracker := analysis.NewTracker()

	var generations int
	if untilStable {
		tracker.OnGeneration(0, g)
		for generations < maxSteps && !tracker.Settled() {
			g = e.Step(g)
			generations++
			tracker.OnGeneration(generations, g)
		}
	} else {
		e.AddObserver(tracker)
		g, err = e.Run(cmd.Context(), g, steps)
		if err != nil {
			return err
		}
		generations = steps
	}

	fmt.Println(viz.Summary(args[0], g, generations))
	fmt.Println(viz.RenderGrid(g))
	fmt.Println(viz.Sparkline(tracker.Populations(), 60))

	if start, period, ok := tracker.Cycle(); ok {
		switch period {
		case 1:
			fmt.Printf("fixed point from generation %d\n", start)
		default:
			fmt.Printf("cycle of period %d from generation %d\n", period, start)
		}
	} else if untilStable {
		fmt.Printf("no cycle within %d generations\n", maxSteps)
	}

	if saveAs != "" {
		if err := st.Save(saveAs, g); err != nil {
			return err
		}
		fmt.Printf("saved as %q\n", saveAs)
	}
	return nil
}

func analyzePreset(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	g, err := st.Load(args[0])
	if err != nil {
		return err
	}

	e := engine.New(workers)
	tracker := analysis.NewTracker()
	e.AddObserver(tracker)

	if _, err := e.Run(cmd.Context(), g, steps); err != nil {
		return err
	}

	pops := tracker.Populations()
	data := make([]float64, len(pops))
	for i, p := range pops {
		data[i] = float64(p)
	}

	fmt.Println(viz.Summary(args[0], g, 0))
	fmt.Println()
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption("population vs generation"),
	))
	fmt.Println()

	if start, period, ok := tracker.Cycle(); ok {
		fmt.Printf("settles into a period-%d cycle at generation %d\n", period, start)
	} else {
		fmt.Printf("no recurrence within %d generations\n", steps)
	}
	return nil
}

func exportPreset(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	g, err := st.Load(args[0])
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(preset.Marshal(g))
	return err
}

func importPreset(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	g, err := preset.Unmarshal(data)
	if err != nil {
		return err
	}

	if err := st.Save(args[0], g); err != nil {
		return err
	}
	fmt.Printf("imported %q (%dx%d, %d cells)\n", args[0], g.Width(), g.Height(), g.Population())
	return nil
}

func newPreset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w, h := cfg.Grid.Width, cfg.Grid.Height
	if sizeName != "" {
		size := config.GetSize(sizeName)
		if size == nil {
			return fmt.Errorf("unknown size %q (available: %v)", sizeName, config.ListSizes())
		}
		w, h = size.Width, size.Height
	}
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}

	g, err := grid.New(w, h)
	if err != nil {
		return err
	}

	st := preset.New(cfg.PresetDir())
	if err := st.Save(args[0], g); err != nil {
		return err
	}
	fmt.Printf("created %q (%dx%d)\n", args[0], w, h)
	return nil
}
