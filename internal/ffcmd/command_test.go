package ffcmd_test

import (
	"errors"
	"strings"
	"testing"

	"silencecut/internal/ffcmd"
	"silencecut/internal/silencedetect"
)

func TestBuildMatchesReferenceLine(t *testing.T) {
	intervals := []silencedetect.Interval{{Start: "1.500000", End: "4.250000"}}
	cmd := ffcmd.Build(ffcmd.NVENCProfile(), "clip.mp4", intervals)

	want := `ffmpeg -hwaccel cuda -i clip.mp4 -vf "select='between(t,1.500000,4.250000)',setpts=N/FRAME_RATE/TB" -af "aselect='between(t,1.500000,4.250000)',asetpts=N/SR/TB" -c:v h264_nvenc -preset p1 outfile_clip.mp4`
	if got := cmd.String(); got != want {
		t.Fatalf("unexpected command\n got: %s\nwant: %s", got, want)
	}
}

func TestBuildArgs(t *testing.T) {
	intervals := []silencedetect.Interval{{Start: "0", End: "1"}}
	cmd := ffcmd.Build(ffcmd.NVENCProfile(), "in.mkv", intervals)
	want := []string{
		"ffmpeg", "-hwaccel", "cuda", "-i", "in.mkv",
		"-vf", "select='between(t,0,1)',setpts=N/FRAME_RATE/TB",
		"-af", "aselect='between(t,0,1)',asetpts=N/SR/TB",
		"-c:v", "h264_nvenc", "-preset", "p1", "outfile_in.mkv",
	}
	if len(cmd.Args) != len(want) {
		t.Fatalf("got %q want %q", cmd.Args, want)
	}
	for i := range want {
		if cmd.Args[i] != want[i] {
			t.Fatalf("arg %d: got %q want %q", i, cmd.Args[i], want[i])
		}
	}
}

func TestSelectionExpressionJoinsInOrder(t *testing.T) {
	got := ffcmd.SelectionExpression([]silencedetect.Interval{
		{Start: "1.0", End: "3.0"},
		{Start: "4.0", End: "9.5"},
	})
	want := "'between(t,1.0,3.0)+between(t,4.0,9.5)'"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestBuildWithoutIntervalsOrFilename(t *testing.T) {
	cmd := ffcmd.Build(ffcmd.NVENCProfile(), "", nil)
	got := cmd.String()
	for _, fragment := range []string{`-i "" `, `"select='',setpts=N/FRAME_RATE/TB"`, " outfile_"} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in %s", fragment, got)
		}
	}
}

func TestBuildX264OmitsHWAccel(t *testing.T) {
	cmd := ffcmd.Build(ffcmd.X264Profile(), "a.mp4", []silencedetect.Interval{{Start: "1", End: "2"}})
	got := cmd.String()
	if strings.Contains(got, "-hwaccel") {
		t.Fatalf("unexpected hwaccel flag: %s", got)
	}
	if !strings.HasSuffix(got, "-c:v libx264 -preset ultrafast outfile_a.mp4") {
		t.Fatalf("unexpected encoder flags: %s", got)
	}
}

func TestBuildDefaultsBinary(t *testing.T) {
	profile := ffcmd.NVENCProfile()
	profile.Binary = " "
	cmd := ffcmd.Build(profile, "a.mp4", nil)
	if cmd.Args[0] != "ffmpeg" {
		t.Fatalf("expected ffmpeg binary, got %q", cmd.Args[0])
	}
}

func TestStringQuotesShellSpecialFilenames(t *testing.T) {
	cmd := ffcmd.Build(ffcmd.NVENCProfile(), `my "best" $talk.mp4`, nil)
	got := cmd.String()
	if !strings.Contains(got, `-i "my \"best\" \$talk.mp4"`) {
		t.Fatalf("filename not quoted: %s", got)
	}
	if !strings.HasSuffix(got, `"outfile_my \"best\" \$talk.mp4"`) {
		t.Fatalf("output not quoted: %s", got)
	}
}

func TestProfileByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "", want: ffcmd.ProfileNVENC},
		{name: "NVENC", want: ffcmd.ProfileNVENC},
		{name: " x264 ", want: ffcmd.ProfileX264},
		{name: "vaapi", wantErr: true},
	}
	for _, tt := range tests {
		profile, err := ffcmd.ProfileByName(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ffcmd.ErrUnknownProfile) {
				t.Fatalf("ProfileByName(%q): expected ErrUnknownProfile, got %v", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ProfileByName(%q) returned error: %v", tt.name, err)
		}
		if profile.Name != tt.want {
			t.Fatalf("ProfileByName(%q) = %q, want %q", tt.name, profile.Name, tt.want)
		}
	}
}

func TestProfileNamesSorted(t *testing.T) {
	names := ffcmd.ProfileNames()
	if len(names) != 2 || names[0] != ffcmd.ProfileNVENC || names[1] != ffcmd.ProfileX264 {
		t.Fatalf("unexpected profile names %v", names)
	}
}
