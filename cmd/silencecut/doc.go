// Package main hosts the silencecut CLI entrypoint and command graph.
//
// The root command reads ffmpeg silencedetect output (stdin or --log), hands
// it to the silencedetect extractor, and prints one ffmpeg command that keeps
// only the non-silent intervals. It never runs that command. The intervals
// subcommand shows what was extracted, and config scaffolds or checks the
// TOML configuration.
//
// Stdout carries only command output; diagnostics go to stderr through the
// logging package.
package main
