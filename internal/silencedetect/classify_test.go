package silencedetect_test

import (
	"testing"

	"silencecut/internal/silencedetect"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []silencedetect.Event
	}{
		{
			name: "silence end opens interval",
			line: "[silencedetect @ 0x55d5c1c0a2c0] silence_end: 4.250000 | silence_duration: 2.750000",
			want: []silencedetect.Event{{Kind: silencedetect.EventIntervalStart, Value: "4.250000"}},
		},
		{
			name: "silence start closes interval",
			line: "[silencedetect @ 0x55d5c1c0a2c0] silence_start: 1.5",
			want: []silencedetect.Event{{Kind: silencedetect.EventIntervalEnd, Value: "1.5"}},
		},
		{
			name: "integer timestamp",
			line: "[silencedetect @ 0x1] silence_start: 0",
			want: []silencedetect.Event{{Kind: silencedetect.EventIntervalEnd, Value: "0"}},
		},
		{
			name: "negative timestamp",
			line: "[silencedetect @ 0x1] silence_start: -0.00133",
			want: []silencedetect.Event{{Kind: silencedetect.EventIntervalEnd, Value: "-0.00133"}},
		},
		{
			name: "input file",
			line: "Input #0, mov,mp4,m4a,3gp,3g2,mj2, from 'clip.mp4':",
			want: []silencedetect.Event{{Kind: silencedetect.EventInputFile, Value: "clip.mp4"}},
		},
		{
			name: "input file with spaces",
			line: "Input #0, matroska,webm, from '/videos/my talk.mkv':",
			want: []silencedetect.Event{{Kind: silencedetect.EventInputFile, Value: "/videos/my talk.mkv"}},
		},
		{
			name: "unrelated line",
			line: "  Duration: 00:10:00.00, start: 0.000000, bitrate: 1200 kb/s",
			want: nil,
		},
		{
			name: "marker without number",
			line: "silence_start: n/a",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := silencedetect.Classify(tt.line)
			if len(got) != len(tt.want) {
				t.Fatalf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("event %d: got %+v want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestClassifyRunsEveryMatcher(t *testing.T) {
	events := silencedetect.Classify("silence_end: 2.0 silence_start: 3.0")
	if len(events) != 2 {
		t.Fatalf("expected two events, got %v", events)
	}
	if events[0].Kind != silencedetect.EventIntervalStart || events[1].Kind != silencedetect.EventIntervalEnd {
		t.Fatalf("unexpected event order: %v", events)
	}
}

func TestEventKindString(t *testing.T) {
	if got := silencedetect.EventIntervalStart.String(); got != "interval_start" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := silencedetect.EventKind(42).String(); got != "unrecognized" {
		t.Fatalf("unexpected name %q", got)
	}
}
