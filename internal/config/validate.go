package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEncoder(); err != nil {
		return err
	}
	if c.Detection.MinSilence < 0 {
		return fmt.Errorf("detection.min_silence must not be negative, got %v", c.Detection.MinSilence)
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateEncoder() error {
	if _, err := c.EncoderProfile(); err != nil {
		return err
	}
	if strings.ContainsAny(c.Encoder.OutputPrefix, `/\`) {
		return fmt.Errorf("encoder.output_prefix must not contain path separators, got %q", c.Encoder.OutputPrefix)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
