package silencedetect

import (
	"fmt"
	"strconv"
)

// Interval is a non-silent span. Boundaries keep the literal decimal text
// from the log so rendered expressions match ffmpeg's own precision.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Expression renders the interval as an ffmpeg select predicate.
func (i Interval) Expression() string {
	return "between(t," + i.Start + "," + i.End + ")"
}

// Duration returns End-Start in seconds.
func (i Interval) Duration() (float64, error) {
	start, err := strconv.ParseFloat(i.Start, 64)
	if err != nil {
		return 0, fmt.Errorf("parse interval start %q: %w", i.Start, err)
	}
	end, err := strconv.ParseFloat(i.End, 64)
	if err != nil {
		return 0, fmt.Errorf("parse interval end %q: %w", i.End, err)
	}
	return end - start, nil
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s]", i.Start, i.End)
}
