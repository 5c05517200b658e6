package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"silencecut/internal/silencedetect"
)

type intervalView struct {
	Index           int     `json:"index"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	DurationSeconds float64 `json:"duration_seconds"`
	Expression      string  `json:"expression"`
}

type intervalsReport struct {
	InputFile    string         `json:"input_file,omitempty"`
	Intervals    []intervalView `json:"intervals"`
	KeptSeconds  float64        `json:"kept_seconds"`
	DroppedStart int            `json:"dropped_starts"`
	Merged       int            `json:"merged_silences"`
	Lines        int            `json:"lines"`
}

func newIntervalsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "intervals",
		Short: "List the non-silent intervals found in a silencedetect log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ctx.logger(cmd)
			result, err := ctx.extract(cmd, logger)
			if err != nil {
				return err
			}
			report, err := buildIntervalsReport(result)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}

			out := cmd.OutOrStdout()
			if len(report.Intervals) == 0 {
				fmt.Fprintln(out, "No non-silent intervals found")
				return nil
			}
			rows := make([][]string, 0, len(report.Intervals))
			for _, iv := range report.Intervals {
				rows = append(rows, []string{
					strconv.Itoa(iv.Index),
					iv.Start,
					iv.End,
					formatSeconds(iv.DurationSeconds),
				})
			}
			fmt.Fprintln(out, tableSpec{
				headers: []string{"#", "Start", "End", "Duration"},
				aligns:  []columnAlignment{alignRight, alignRight, alignRight, alignRight},
				rows:    rows,
				footer:  []string{"", "", "Kept", formatSeconds(report.KeptSeconds)},
			}.render())
			if report.InputFile != "" {
				fmt.Fprintf(out, "Input: %s\n", report.InputFile)
			}
			fmt.Fprintf(out, "Kept: %ss across %d intervals\n", formatSeconds(report.KeptSeconds), len(report.Intervals))
			if report.Merged > 0 {
				fmt.Fprintf(out, "Short silences joined: %d\n", report.Merged)
			}
			if report.DroppedStart > 0 {
				fmt.Fprintf(out, "Unterminated starts ignored: %d\n", report.DroppedStart)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func buildIntervalsReport(result silencedetect.Result) (intervalsReport, error) {
	report := intervalsReport{
		InputFile:    result.InputFile,
		Intervals:    make([]intervalView, 0, len(result.Intervals)),
		DroppedStart: result.Dropped,
		Merged:       result.Merged,
		Lines:        result.Lines,
	}
	for i, iv := range result.Intervals {
		duration, err := iv.Duration()
		if err != nil {
			return intervalsReport{}, fmt.Errorf("interval %d: %w", i+1, err)
		}
		report.Intervals = append(report.Intervals, intervalView{
			Index:           i + 1,
			Start:           iv.Start,
			End:             iv.End,
			DurationSeconds: duration,
			Expression:      iv.Expression(),
		})
		report.KeptSeconds += duration
	}
	return report, nil
}

func formatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', 3, 64)
}
