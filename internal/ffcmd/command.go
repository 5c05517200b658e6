package ffcmd

import (
	"strings"

	"silencecut/internal/silencedetect"
)

const (
	videoTimestampReset = "setpts=N/FRAME_RATE/TB"
	audioTimestampReset = "asetpts=N/SR/TB"
)

// Command is one ffmpeg invocation as argument tokens. Args[0] is the binary.
type Command struct {
	Args []string
}

// SelectionExpression joins interval predicates with + and wraps the result
// in single quotes. An empty list yields ''.
func SelectionExpression(intervals []silencedetect.Interval) string {
	exprs := make([]string, 0, len(intervals))
	for _, iv := range intervals {
		exprs = append(exprs, iv.Expression())
	}
	return "'" + strings.Join(exprs, "+") + "'"
}

// VideoFilter selects frames matching selection and renumbers timestamps.
func VideoFilter(selection string) string {
	return "select=" + selection + "," + videoTimestampReset
}

// AudioFilter selects samples matching selection and renumbers timestamps.
func AudioFilter(selection string) string {
	return "aselect=" + selection + "," + audioTimestampReset
}

// Build assembles the ffmpeg command that keeps only intervals of input.
// An empty input or interval list still produces a command.
func Build(profile Profile, input string, intervals []silencedetect.Interval) Command {
	profile = profile.withDefaults()
	selection := SelectionExpression(intervals)

	args := []string{profile.Binary}
	if hw := strings.TrimSpace(profile.HWAccel); hw != "" {
		args = append(args, "-hwaccel", hw)
	}
	args = append(args,
		"-i", input,
		"-vf", VideoFilter(selection),
		"-af", AudioFilter(selection),
	)
	if codec := strings.TrimSpace(profile.VideoCodec); codec != "" {
		args = append(args, "-c:v", codec)
	}
	if preset := strings.TrimSpace(profile.Preset); preset != "" {
		args = append(args, "-preset", preset)
	}
	args = append(args, OutputName(profile, input))
	return Command{Args: args}
}

// OutputName prefixes the input filename with the profile's output prefix.
func OutputName(profile Profile, input string) string {
	return profile.OutputPrefix + input
}

// String renders the command as a single shell line.
func (c Command) String() string {
	quoted := make([]string, len(c.Args))
	for i, arg := range c.Args {
		quoted[i] = shellQuote(arg)
	}
	return strings.Join(quoted, " ")
}

const shellSpecial = " \t\n'\"\\$`|&;()<>*?[]{}#~!,="

func shellQuote(arg string) string {
	if arg == "" {
		return `""`
	}
	if !strings.ContainsAny(arg, shellSpecial) {
		return arg
	}
	var b strings.Builder
	b.Grow(len(arg) + 2)
	b.WriteByte('"')
	for _, r := range arg {
		switch r {
		case '"', '\\', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
