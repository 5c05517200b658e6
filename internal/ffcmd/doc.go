// Package ffcmd assembles ffmpeg command lines that keep only selected intervals.
//
// Key types:
//   - Profile: encoder selection (binary, hardware decode, codec, preset)
//   - Command: the argument tokens of one ffmpeg invocation
//
// Primary entry point:
//   - Build: renders intervals into select/aselect filter graphs and returns
//     the Command; Command.String quotes tokens for a POSIX shell.
//
// This package never executes ffmpeg.
package ffcmd
