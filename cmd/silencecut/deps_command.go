package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"silencecut/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Check that the binaries the generated command needs are on PATH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := ctx.encoderProfile()
			if err != nil {
				return err
			}
			statuses := deps.CheckBinaries(deps.ProfileRequirements(profile))

			if jsonOutput {
				if err := writeJSON(cmd.OutOrStdout(), statuses); err != nil {
					return err
				}
			} else {
				printDepsTable(cmd.OutOrStdout(), statuses)
			}

			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("required dependency missing: %s", missing[0].Detail)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func printDepsTable(out io.Writer, statuses []deps.Status) {
	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		state := "ok"
		location := s.Path
		if !s.Available {
			state = "missing"
			location = s.Detail
		}
		rows = append(rows, []string{s.Name, s.Command, state, location})
	}
	fmt.Fprintln(out, tableSpec{
		headers: []string{"Dependency", "Command", "Status", "Location"},
		rows:    rows,
	}.render())
}
