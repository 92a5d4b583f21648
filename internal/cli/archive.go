package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/collectorsed/collectorsed/pkg/errors"
	sedio "github.com/collectorsed/collectorsed/pkg/io"
	"github.com/collectorsed/collectorsed/pkg/store"
)

// archiveCommand creates the run archive management command. All subcommands
// need the --mongo flag, since the archive lives in MongoDB.
func (c *CLI) archiveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Manage archived runs",
	}

	cmd.AddCommand(c.archiveListCommand())
	cmd.AddCommand(c.archiveExportCommand())
	cmd.AddCommand(c.archiveDeleteCommand())

	return cmd
}

// openStore opens the configured archive, failing with a usable message when
// --mongo was not given.
func (c *CLI) openStore(cmd *cobra.Command) (store.Store, error) {
	st, err := c.newStore(cmd.Context())
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "the archive needs --mongo <uri>")
	}
	return st, nil
}

// archiveListCommand creates the "archive list" subcommand.
func (c *CLI) archiveListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close(cmd.Context())

			summaries, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				printInfo("Archive is empty")
				return nil
			}
			for _, s := range summaries {
				name := s.Name
				if name == "" {
					name = "(unnamed)"
				}
				printKeyValue(s.CreatedAt.Format("2006-01-02 15:04"),
					fmt.Sprintf("%s  %s  %d cells, %d passes", s.ID, name, s.CellCount, s.Passes))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list (0 for all)")
	return cmd
}

// archiveExportCommand creates the "archive export" subcommand: re-export an
// archived run's report without re-simulating.
func (c *CLI) archiveExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <run-id>",
		Short: "Export an archived run's report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close(cmd.Context())

			run, err := st.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = run.ID + ".json"
			}
			if err := sedio.ExportJSON(run.Rows, path); err != nil {
				return err
			}
			printSuccess("Exported run %s", run.ID)
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to <run-id>.json)")
	return cmd
}

// archiveDeleteCommand creates the "archive delete" subcommand.
func (c *CLI) archiveDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close(cmd.Context())

			if err := st.DeleteRun(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted run %s", args[0])
			return nil
		},
	}
}
