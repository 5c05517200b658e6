package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestIntervalsTable(t *testing.T) {
	log := sampleLog + "[silencedetect @ 0x1] silence_end: 6.0 | silence_duration: 1.75\n[silencedetect @ 0x1] silence_start: 8.5\n"
	out, _, err := runCLI(t, []string{"intervals"}, log)
	if err != nil {
		t.Fatalf("intervals: %v", err)
	}
	for _, want := range []string{"Start", "1.500000", "4.250000", "2.750", "2.500", "Input: clip.mp4", "Kept: 5.250s across 2 intervals"} {
		requireContains(t, out, want)
	}
}

func TestIntervalsJSON(t *testing.T) {
	out, _, err := runCLI(t, []string{"intervals", "--json"}, sampleLog+"[silencedetect @ 0x1] silence_end: 9.1\n")
	if err != nil {
		t.Fatalf("intervals --json: %v", err)
	}
	var report intervalsReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode json: %v (%s)", err, out)
	}
	if report.InputFile != "clip.mp4" || len(report.Intervals) != 1 {
		t.Fatalf("unexpected report %+v", report)
	}
	iv := report.Intervals[0]
	if iv.Expression != "between(t,1.500000,4.250000)" || iv.DurationSeconds != 2.75 {
		t.Fatalf("unexpected interval %+v", iv)
	}
	if report.DroppedStart != 1 {
		t.Fatalf("expected trailing start to be reported as dropped, got %d", report.DroppedStart)
	}
}

func TestIntervalsEmpty(t *testing.T) {
	out, _, err := runCLI(t, []string{"intervals"}, "no markers\n")
	if err != nil {
		t.Fatalf("intervals: %v", err)
	}
	if strings.TrimSpace(out) != "No non-silent intervals found" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestIntervalsReportsMergedSilences(t *testing.T) {
	out, _, err := runCLI(t, []string{"intervals", "--min-silence", "0.2"}, shortGapLog)
	if err != nil {
		t.Fatalf("intervals: %v", err)
	}
	requireContains(t, out, "Short silences joined: 1")
	requireContains(t, out, "Kept: 4.000s across 1 intervals")
}
