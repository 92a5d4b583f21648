package cli

import (
	"github.com/spf13/cobra"

	"github.com/collectorsed/collectorsed/pkg/pipeline"
	"github.com/collectorsed/collectorsed/pkg/scenario"
)

// replayCommand creates the replay command: run a scenario and then send the
// collector back over specific cells, the way the dashboard replays a pass
// when a cell is clicked.
func (c *CLI) replayCommand() *cobra.Command {
	var formatsStr string
	var cells []int
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "replay [scenario.toml]",
		Short: "Run a scenario with extra collector passes over listed cells",
		Long: `Replay simulates the scenario's primary collector range and then replays
the collector over the listed cells, in order. Each replayed pass cuts
again, deposits a new settled layer, and redistributes like any other pass;
layer labels continue the scenario's sequence.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadReplayScenario(args, cells)
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

	cmd.Flags().IntSliceVar(&cells, "cells", nil, "cells to replay after the primary range (comma-separated, required)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), csv (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (extension added per format)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when the run is cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.noArchive, "no-archive", false, "skip the run archive")
	_ = cmd.MarkFlagRequired("cells")

	return cmd
}

// loadReplayScenario reads the scenario (or the defaults) and appends the
// replayed cells to its extra-pass list.
func loadReplayScenario(args []string, cells []int) (scenario.Scenario, error) {
	sc := scenario.Default()
	if len(args) == 1 {
		var err error
		sc, err = scenario.Load(args[0])
		if err != nil {
			return scenario.Scenario{}, err
		}
	}
	sc.ExtraCells = append(sc.ExtraCells, cells...)
	return sc, nil
}
