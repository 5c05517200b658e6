// Package config loads, normalizes, and validates silencecut configuration.
//
// It supplies defaults that reproduce the stock NVENC command line, expands
// user paths (including tilde shortcuts), reads TOML files, and honours the
// SILENCECUT_PROFILE environment fallback. A missing configuration file is
// not an error; defaults are used instead.
package config
