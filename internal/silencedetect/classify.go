package silencedetect

import "regexp"

var (
	// Example: [silencedetect @ 0x55d5c1c0] silence_end: 4.25 | silence_duration: 2.75
	silenceEndRX = regexp.MustCompile(`silence_end: (-?[0-9]+(?:\.[0-9]+)?)`)
	// Example: [silencedetect @ 0x55d5c1c0] silence_start: 1.5
	silenceStartRX = regexp.MustCompile(`silence_start: (-?[0-9]+(?:\.[0-9]+)?)`)
	// Example: Input #0, mov,mp4,m4a,3gp,3g2,mj2, from 'clip.mp4':
	inputFileRX = regexp.MustCompile(`Input .+ from '(.+)':`)
)

// EventKind identifies the marker a log line carries.
type EventKind int8

const (
	EventUnrecognized EventKind = iota
	// EventInputFile carries the name ffmpeg reports for its input.
	EventInputFile
	// EventIntervalStart comes from a silence_end marker.
	EventIntervalStart
	// EventIntervalEnd comes from a silence_start marker.
	EventIntervalEnd
)

func (k EventKind) String() string {
	switch k {
	case EventInputFile:
		return "input_file"
	case EventIntervalStart:
		return "interval_start"
	case EventIntervalEnd:
		return "interval_end"
	default:
		return "unrecognized"
	}
}

// Event is a single marker extracted from a log line.
type Event struct {
	Kind  EventKind
	Value string
}

// Classify returns every marker found on line. All matchers run on every
// line; the order is interval start, interval end, input file. A line with
// no markers yields nil.
func Classify(line string) []Event {
	var events []Event
	if m := silenceEndRX.FindStringSubmatch(line); m != nil {
		events = append(events, Event{Kind: EventIntervalStart, Value: m[1]})
	}
	if m := silenceStartRX.FindStringSubmatch(line); m != nil {
		events = append(events, Event{Kind: EventIntervalEnd, Value: m[1]})
	}
	if m := inputFileRX.FindStringSubmatch(line); m != nil {
		events = append(events, Event{Kind: EventInputFile, Value: m[1]})
	}
	return events
}
