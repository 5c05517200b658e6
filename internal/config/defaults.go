package config

const (
	defaultConfigPath = "~/.config/silencecut/config.toml"
	projectConfigName = "silencecut.toml"
	defaultProfile    = "nvenc"
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"

	profileEnvVar = "SILENCECUT_PROFILE"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Encoder: Encoder{
			Profile: defaultProfile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
