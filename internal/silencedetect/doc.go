// Package silencedetect turns ffmpeg silencedetect log output into the
// non-silent intervals between detected silences.
//
// The log is consumed one line at a time with constant working state: the
// first input filename announced by ffmpeg, and the interval currently in
// progress. A `silence_end:` marker opens a non-silent interval and a
// `silence_start:` marker closes it. The stream is assumed to begin outside
// silence, so the first interval opens at 0.
//
// Timestamps are kept as the literal text ffmpeg printed, including a leading
// minus sign. A log that opens with `silence_start: -0.00133` therefore
// yields `between(t,0,-0.00133)`, an interval that selects nothing.
//
// Options.MinSilence, off by default, joins intervals separated by a silence
// shorter than the given number of seconds.
//
// An interval still open when the log ends is never emitted. Callers that
// build ffmpeg select expressions rely on the encoder running to end of file
// once the last selection is exhausted.
package silencedetect
