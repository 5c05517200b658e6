package ffcmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownProfile is returned by ProfileByName for unregistered names.
var ErrUnknownProfile = errors.New("unknown encoder profile")

const (
	ProfileNVENC = "nvenc"
	ProfileX264  = "x264"

	defaultBinary       = "ffmpeg"
	defaultOutputPrefix = "outfile_"
)

// Profile selects the ffmpeg binary and encoder flags.
type Profile struct {
	Name         string
	Binary       string
	HWAccel      string
	VideoCodec   string
	Preset       string
	OutputPrefix string
}

// NVENCProfile decodes with CUDA and encodes with h264_nvenc at preset p1.
func NVENCProfile() Profile {
	return Profile{
		Name:         ProfileNVENC,
		Binary:       defaultBinary,
		HWAccel:      "cuda",
		VideoCodec:   "h264_nvenc",
		Preset:       "p1",
		OutputPrefix: defaultOutputPrefix,
	}
}

// X264Profile is the software fallback for hosts without an NVIDIA GPU.
func X264Profile() Profile {
	return Profile{
		Name:         ProfileX264,
		Binary:       defaultBinary,
		VideoCodec:   "libx264",
		Preset:       "ultrafast",
		OutputPrefix: defaultOutputPrefix,
	}
}

var profiles = map[string]func() Profile{
	ProfileNVENC: NVENCProfile,
	ProfileX264:  X264Profile,
}

// ProfileByName resolves a case-insensitive profile name. An empty name
// selects the NVENC profile.
func ProfileByName(name string) (Profile, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return NVENCProfile(), nil
	}
	fn, ok := profiles[key]
	if !ok {
		return Profile{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownProfile, name, strings.Join(ProfileNames(), ", "))
	}
	return fn(), nil
}

// ProfileNames lists the registered profile names in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p Profile) withDefaults() Profile {
	if strings.TrimSpace(p.Binary) == "" {
		p.Binary = defaultBinary
	}
	return p
}
