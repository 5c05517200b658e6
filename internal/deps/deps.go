// Package deps reports whether the external binaries a generated command
// needs are available on PATH. Nothing is executed.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"silencecut/internal/ffcmd"
)

// Requirement defines an external binary a generated command relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description,omitempty"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Path        string `json:"path,omitempty"`
	Detail      string `json:"detail,omitempty"`
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// ProfileRequirements lists what the command built from profile needs.
func ProfileRequirements(profile ffcmd.Profile) []Requirement {
	binary := strings.TrimSpace(profile.Binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     binary,
			Description: fmt.Sprintf("Runs the generated %s command", profile.Name),
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := lookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = path
		results = append(results, status)
	}
	return results
}

// MissingRequired returns the required statuses that are unavailable.
func MissingRequired(statuses []Status) []Status {
	var missing []Status
	for _, s := range statuses {
		if !s.Available && !s.Optional {
			missing = append(missing, s)
		}
	}
	return missing
}
