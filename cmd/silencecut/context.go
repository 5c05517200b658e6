package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"silencecut/internal/config"
	"silencecut/internal/ffcmd"
	"silencecut/internal/logging"
	"silencecut/internal/silencedetect"
)

type globalFlags struct {
	config   string
	logPath  string
	logLevel   string
	profile    string
	minSilence float64
}

const minSilenceFlag = "min-silence"

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	log        *slog.Logger
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger writes to the command's stderr. Construction failures fall back to
// a no-op logger; configuration errors are reported by ensureConfig.
func (c *commandContext) logger(cmd *cobra.Command) *slog.Logger {
	c.loggerOnce.Do(func() {
		opts := logging.Options{Level: "warn", Format: "console", Writer: cmd.ErrOrStderr()}
		if cfg, err := c.ensureConfig(); err == nil {
			opts.Level = cfg.Logging.Level
			opts.Format = cfg.Logging.Format
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			opts.Level = level
		}
		logger, err := logging.New(opts)
		if err != nil {
			logger = logging.NewNop()
		}
		c.log = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
	})
	return c.log
}

// encoderProfile applies --profile over the configured encoder settings.
func (c *commandContext) encoderProfile() (ffcmd.Profile, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return ffcmd.Profile{}, err
	}
	if name := strings.TrimSpace(c.flags.profile); name != "" {
		override := *cfg
		override.Encoder.Profile = name
		return override.EncoderProfile()
	}
	return cfg.EncoderProfile()
}

func (c *commandContext) extract(cmd *cobra.Command, logger *slog.Logger) (silencedetect.Result, error) {
	input, closeInput, err := c.openLog(cmd, logger)
	if err != nil {
		return silencedetect.Result{}, err
	}
	defer closeInput()
	opts, err := c.detectionOptions(cmd)
	if err != nil {
		return silencedetect.Result{}, err
	}
	return silencedetect.Extract(cmd.Context(), input, opts, logger)
}

// detectionOptions applies --min-silence over the configured detection settings.
func (c *commandContext) detectionOptions(cmd *cobra.Command) (silencedetect.Options, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return silencedetect.Options{}, err
	}
	opts := silencedetect.Options{MinSilence: cfg.Detection.MinSilence}
	if flag := cmd.Flags().Lookup(minSilenceFlag); flag != nil && flag.Changed {
		if c.flags.minSilence < 0 {
			return silencedetect.Options{}, fmt.Errorf("--%s must not be negative, got %v", minSilenceFlag, c.flags.minSilence)
		}
		opts.MinSilence = c.flags.minSilence
	}
	return opts, nil
}

func (c *commandContext) openLog(cmd *cobra.Command, logger *slog.Logger) (io.Reader, func(), error) {
	path := strings.TrimSpace(c.flags.logPath)
	if path == "" || path == "-" {
		stdin := cmd.InOrStdin()
		if isTerminal(stdin) {
			logging.WarnWithContext(logger, "reading silencedetect log from terminal", "stdin_is_terminal",
				logging.String(logging.FieldErrorHint, "pipe ffmpeg output in: ffmpeg -i clip.mp4 -af silencedetect -f null - 2>&1 | silencecut"),
				logging.String(logging.FieldImpact, "waiting for input until EOF (Ctrl-D)"),
			)
		}
		return stdin, func() {}, nil
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve log path: %w", err)
	}
	file, err := os.Open(expanded)
	if err != nil {
		return nil, nil, fmt.Errorf("open silencedetect log: %w", err)
	}
	logger.Debug("reading silencedetect log", logging.String("path", expanded))
	return file, func() { _ = file.Close() }, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
