// Package logging assembles the slog loggers silencecut writes diagnostics
// with.
//
// Stdout is reserved for the generated command, so every handler built here
// writes to the supplied writer (stderr in the CLI). The console handler
// prints `LEVEL component: message key=value`; the JSON handler uses ts/level/msg
// keys. NewNop gives tests and optional wiring a logger that drops everything.
package logging
