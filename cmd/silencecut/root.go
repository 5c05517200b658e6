package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"silencecut/internal/ffcmd"
	"silencecut/internal/logging"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:   "silencecut",
		Short: "Build an ffmpeg command that cuts silence out of a video",
		Long: "Reads ffmpeg silencedetect output and prints an ffmpeg command that keeps only the non-silent parts.\n\n" +
			"  ffmpeg -i clip.mp4 -af silencedetect -f null - 2>&1 | silencecut",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCut(cmd, ctx)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.logPath, "log", "", "Read the silencedetect log from a file instead of stdin")
	pf.StringVar(&flags.logLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")
	pf.Float64Var(&flags.minSilence, minSilenceFlag, 0, "Join intervals separated by a silence shorter than this many seconds (0 disables)")
	pf.StringVar(&flags.profile, "profile", "", fmt.Sprintf("Encoder profile (%s)", joinNames(ffcmd.ProfileNames())))

	rootCmd.AddCommand(newIntervalsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newDepsCommand(ctx))

	return rootCmd
}

func runCut(cmd *cobra.Command, ctx *commandContext) error {
	logger := ctx.logger(cmd)

	profile, err := ctx.encoderProfile()
	if err != nil {
		return err
	}

	result, err := ctx.extract(cmd, logger)
	if err != nil {
		return err
	}

	if !result.HasInputFile {
		logging.WarnWithContext(logger, "no input filename found in log", "input_file_missing",
			logging.String(logging.FieldErrorHint, "pipe the full ffmpeg stderr, including the Input #0 header"),
			logging.String(logging.FieldImpact, "command has an empty -i argument"),
		)
	}
	if len(result.Intervals) == 0 {
		logging.WarnWithContext(logger, "no non-silent intervals found in log", "intervals_missing",
			logging.String(logging.FieldErrorHint, "run ffmpeg with -af silencedetect and check its noise/duration settings"),
			logging.String(logging.FieldImpact, "command selects nothing"),
		)
	}

	command := ffcmd.Build(profile, result.InputFile, result.Intervals)
	logger.Info("command assembled",
		logging.String("profile", profile.Name),
		logging.Int("intervals", len(result.Intervals)),
		logging.Int("args", len(command.Args)),
	)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), command.String())
	return err
}
