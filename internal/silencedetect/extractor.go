package silencedetect

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"silencecut/internal/logging"
)

const initialStart = "0"

// Options tunes interval extraction. The zero value keeps every silence
// reported by ffmpeg and never merges intervals.
type Options struct {
	// MinSilence, in seconds, is the shortest silence that splits two
	// intervals. A shorter silence joins its neighbours into one interval.
	MinSilence float64
}

// Result is the outcome of a pass over a silencedetect log.
type Result struct {
	InputFile    string     `json:"input_file"`
	HasInputFile bool       `json:"has_input_file"`
	Intervals    []Interval `json:"intervals"`
	// Lines is the number of lines consumed.
	Lines int `json:"lines"`
	// Dropped counts interval starts that never received an end, either
	// because a later silence_end replaced them or because the log ended.
	Dropped int `json:"dropped"`
	// Merged counts silences shorter than Options.MinSilence that were
	// bridged by joining the surrounding intervals.
	Merged int `json:"merged"`
}

// Extractor accumulates intervals from log lines fed in order.
type Extractor struct {
	opts      Options
	open      bool
	fromLog   bool
	start     string
	inputFile string
	hasInput  bool
	intervals []Interval
	lines     int
	dropped   int
	merged    int
}

// NewExtractor returns an extractor whose first interval is open at 0.
func NewExtractor(opts Options) *Extractor {
	return &Extractor{opts: opts, open: true, start: initialStart}
}

// Feed consumes one log line.
func (e *Extractor) Feed(line string) {
	e.lines++
	for _, ev := range Classify(line) {
		switch ev.Kind {
		case EventIntervalStart:
			if e.open && e.fromLog {
				e.dropped++
			}
			if !e.open && e.bridgeShortSilence(ev.Value) {
				continue
			}
			e.start = ev.Value
			e.open = true
			e.fromLog = true
		case EventIntervalEnd:
			if !e.open {
				continue
			}
			e.intervals = append(e.intervals, Interval{Start: e.start, End: ev.Value})
			e.open = false
		case EventInputFile:
			if !e.hasInput {
				e.inputFile = ev.Value
				e.hasInput = true
			}
		}
	}
}

// bridgeShortSilence reopens the last interval when the silence ending at
// silenceEnd is shorter than MinSilence.
func (e *Extractor) bridgeShortSilence(silenceEnd string) bool {
	if e.opts.MinSilence <= 0 || len(e.intervals) == 0 {
		return false
	}
	last := e.intervals[len(e.intervals)-1]
	end, err := strconv.ParseFloat(silenceEnd, 64)
	if err != nil {
		return false
	}
	start, err := strconv.ParseFloat(last.End, 64)
	if err != nil || end-start >= e.opts.MinSilence {
		return false
	}
	e.intervals = e.intervals[:len(e.intervals)-1]
	e.start = last.Start
	e.open = true
	e.fromLog = true
	e.merged++
	return true
}

// Result reports what has been accumulated so far. An interval still open is
// counted as dropped but not emitted.
func (e *Extractor) Result() Result {
	dropped := e.dropped
	if e.open && e.fromLog {
		dropped++
	}
	intervals := make([]Interval, len(e.intervals))
	copy(intervals, e.intervals)
	return Result{
		InputFile:    e.inputFile,
		HasInputFile: e.hasInput,
		Intervals:    intervals,
		Lines:        e.lines,
		Dropped:      dropped,
		Merged:       e.merged,
	}
}

// Extract reads r line by line and returns the accumulated result. Lines of
// any length are accepted.
func Extract(ctx context.Context, r io.Reader, opts Options, logger *slog.Logger) (Result, error) {
	logger = logging.NewComponentLogger(logger, "silencedetect")
	extractor := NewExtractor(opts)

	reader := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		line, err := reader.ReadString('\n')
		if line != "" {
			extractor.Feed(strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("read silencedetect log: %w", err)
		}
	}

	result := extractor.Result()
	logger.Debug("silencedetect log parsed",
		logging.Int("lines", result.Lines),
		logging.Int("intervals", len(result.Intervals)),
		logging.Int("dropped", result.Dropped),
		logging.Int("merged", result.Merged),
		logging.Float64("min_silence", opts.MinSilence),
		logging.Bool("has_input_file", result.HasInputFile),
	)
	return result, nil
}
