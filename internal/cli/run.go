package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/collectorsed/collectorsed/pkg/pipeline"
	"github.com/collectorsed/collectorsed/pkg/scenario"
)

// runOpts holds the command-line flags for the run command.
// Every slider of the reference dashboard has a matching flag; flags that the
// user sets override the scenario file.
type runOpts struct {
	name            string  // scenario label for summaries and the archive
	cutDepth        float64 // collector cut depth per pass
	extraSettledCut float64 // additional settled-only pre-cut depth
	riser           float64 // proportion of collected mass removed up the riser
	ratio           float64 // left share of the redistributed mass
	settle          float64 // share of incoming mass that settles in place
	settledDensity  float64 // mass per thickness of settled sediment
	baseDensity     float64 // mass per thickness of bed material
	cells           int     // number of cells in the section
	bedTop          float64 // initial seafloor elevation
	bedBottom       float64 // bed exhaustion floor
	start           int     // first cell of the collector's range
	stop            int     // one past the last cell of the range
	extraCells      []int   // extra collector passes after the range
	output          string  // output base path (extension added per format)
	refresh         bool    // bypass the result cache
	noCache         bool    // disable the result cache entirely
	noArchive       bool    // skip the run archive
}

// runCommand creates the run command, the primary entry point: simulate a
// scenario and export the flattened report.
func (c *CLI) runCommand() *cobra.Command {
	var formatsStr string
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run [scenario.toml]",
		Short: "Run a collector scenario and export the report",
		Long: `Run simulates the collector vehicle over a sediment section and exports
the flattened layer report. Without a scenario file the reference parameter
set is used; flags override individual parameters either way.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(cmd, args, &opts)
			if err != nil {
				return err
			}
			return c.execute(cmd, sc, pipeline.Options{
				Scenario:  sc,
				Formats:   parseFormats(formatsStr),
				Refresh:   opts.refresh,
				NoArchive: opts.noArchive,
			}, &opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "scenario label for the summary and archive")
	cmd.Flags().Float64Var(&opts.cutDepth, "cut-depth", 0, "collector cut depth per pass")
	cmd.Flags().Float64Var(&opts.extraSettledCut, "extra-settled-cut", 0, "additional settled-only pre-cut depth")
	cmd.Flags().Float64Var(&opts.riser, "riser", 0, "proportion of collected mass removed up the riser [0,1]")
	cmd.Flags().Float64Var(&opts.ratio, "ratio", 0, "left share of the redistributed mass [0,1]")
	cmd.Flags().Float64Var(&opts.settle, "settle", 0, "share of incoming mass settling in place [0,1]")
	cmd.Flags().Float64Var(&opts.settledDensity, "settled-density", 0, "mass per thickness of settled sediment")
	cmd.Flags().Float64Var(&opts.baseDensity, "base-density", 0, "mass per thickness of bed material")
	cmd.Flags().IntVar(&opts.cells, "cells", 0, "number of cells in the section")
	cmd.Flags().Float64Var(&opts.bedTop, "bed-top", 0, "initial seafloor elevation")
	cmd.Flags().Float64Var(&opts.bedBottom, "bed-bottom", 0, "bed exhaustion floor")
	cmd.Flags().IntVar(&opts.start, "start", 0, "first cell of the collector's range")
	cmd.Flags().IntVar(&opts.stop, "stop", 0, "one past the last cell of the range")
	cmd.Flags().IntSliceVar(&opts.extraCells, "extra", nil, "extra collector passes after the range (comma-separated cell indices)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), csv (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (extension added per format)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when the run is cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.noArchive, "no-archive", false, "skip the run archive")

	return cmd
}

// loadScenario reads the scenario file (or starts from the defaults) and
// applies every flag the user set on top.
func loadScenario(cmd *cobra.Command, args []string, opts *runOpts) (scenario.Scenario, error) {
	sc := scenario.Default()
	if len(args) == 1 {
		var err error
		sc, err = scenario.Load(args[0])
		if err != nil {
			return scenario.Scenario{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		sc.Name = opts.name
	}
	if flags.Changed("cut-depth") {
		sc.CutDepth = opts.cutDepth
	}
	if flags.Changed("extra-settled-cut") {
		sc.ExtraSettledCutDepth = opts.extraSettledCut
	}
	if flags.Changed("riser") {
		sc.ProportionUpRiser = opts.riser
	}
	if flags.Changed("ratio") {
		sc.LeftRightRatio = opts.ratio
	}
	if flags.Changed("settle") {
		sc.PercentToSettle = opts.settle
	}
	if flags.Changed("settled-density") {
		sc.SettledDensity = opts.settledDensity
	}
	if flags.Changed("base-density") {
		sc.BaseDensity = opts.baseDensity
	}
	if flags.Changed("cells") {
		sc.CellCount = opts.cells
	}
	if flags.Changed("bed-top") {
		sc.BedTop = opts.bedTop
	}
	if flags.Changed("bed-bottom") {
		sc.BedBottom = opts.bedBottom
	}
	if flags.Changed("start") {
		start := opts.start
		sc.Start = &start
	}
	if flags.Changed("stop") {
		stop := opts.stop
		sc.Stop = &stop
	}
	if flags.Changed("extra") {
		sc.ExtraCells = opts.extraCells
	}
	return sc, nil
}

// execute runs the pipeline and writes the artifacts and summary.
func (c *CLI) execute(cmd *cobra.Command, sc scenario.Scenario, pipeOpts pipeline.Options, opts *runOpts, args []string) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close(ctx)

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Simulated %d cells", sc.CellCount))

	base := outputBase(opts.output, args)
	for _, format := range pipeOpts.Formats {
		path := base + "." + format
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}

	printSummary(sc, result)
	return nil
}

// writeArtifact writes one exported encoding to disk.
func writeArtifact(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// outputBase derives the output base path from the --output flag or the
// scenario file name, falling back to "report".
func outputBase(output string, args []string) string {
	if output != "" {
		ext := filepath.Ext(output)
		if ext == ".json" || ext == ".csv" {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	if len(args) == 1 {
		return strings.TrimSuffix(args[0], filepath.Ext(args[0]))
	}
	return "report"
}
