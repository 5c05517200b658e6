package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeEncoder()
	c.normalizeLogging()
}

func (c *Config) normalizeEncoder() {
	if value, ok := os.LookupEnv(profileEnvVar); ok && strings.TrimSpace(value) != "" {
		c.Encoder.Profile = value
	}
	c.Encoder.Profile = strings.ToLower(strings.TrimSpace(c.Encoder.Profile))
	if c.Encoder.Profile == "" {
		c.Encoder.Profile = defaultProfile
	}
	c.Encoder.Binary = strings.TrimSpace(c.Encoder.Binary)
	c.Encoder.HWAccel = strings.TrimSpace(c.Encoder.HWAccel)
	c.Encoder.VideoCodec = strings.TrimSpace(c.Encoder.VideoCodec)
	c.Encoder.Preset = strings.TrimSpace(c.Encoder.Preset)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
