package preflight

import (
	"audio2mp4/internal/config"
	"audio2mp4/internal/placeholder"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the filesystem checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckPlaceholderDir("Placeholder directory", cfg.Paths.PlaceholderDir),
		CheckPlaceholderImage("Placeholder image", cfg.PlaceholderPath()),
	}
}

// CheckPlaceholderImage reports whether the cached placeholder is present and
// valid. A missing image passes because the next conversion creates it.
func CheckPlaceholderImage(name, path string) Result {
	if err := placeholder.Verify(path); err != nil {
		if !fileExists(path) {
			return Result{Name: name, Passed: true, Detail: "not cached yet (created on first conversion)"}
		}
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: path + " (cached)"}
}
