package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"silencecut/internal/ffcmd"
)

//go:embed sample_config.toml
var sampleConfig string

// Encoder contains the ffmpeg command settings. Empty fields inherit the
// values of the selected profile.
type Encoder struct {
	Profile      string `toml:"profile"`
	Binary       string `toml:"binary"`
	HWAccel      string `toml:"hwaccel"`
	VideoCodec   string `toml:"video_codec"`
	Preset       string `toml:"preset"`
	OutputPrefix string `toml:"output_prefix"`
}

// Detection contains configuration for interpreting silencedetect output.
type Detection struct {
	// MinSilence is the shortest silence, in seconds, kept as a cut. Zero
	// keeps every silence ffmpeg reports.
	MinSilence float64 `toml:"min_silence"`
}

// Logging contains configuration for diagnostic output on stderr.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for silencecut.
type Config struct {
	Encoder   Encoder   `toml:"encoder"`
	Detection Detection `toml:"detection"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EncoderProfile resolves the configured profile and applies field overrides.
func (c *Config) EncoderProfile() (ffcmd.Profile, error) {
	profile, err := ffcmd.ProfileByName(c.Encoder.Profile)
	if err != nil {
		return ffcmd.Profile{}, fmt.Errorf("encoder.profile: %w", err)
	}
	if c.Encoder.Binary != "" {
		profile.Binary = c.Encoder.Binary
	}
	if c.Encoder.HWAccel != "" {
		profile.HWAccel = c.Encoder.HWAccel
	}
	if c.Encoder.VideoCodec != "" {
		profile.VideoCodec = c.Encoder.VideoCodec
	}
	if c.Encoder.Preset != "" {
		profile.Preset = c.Encoder.Preset
	}
	if c.Encoder.OutputPrefix != "" {
		profile.OutputPrefix = c.Encoder.OutputPrefix
	}
	return profile, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
