package deps

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrEncoderNotFound reports that the encoder could not be resolved on PATH.
var ErrEncoderNotFound = errors.New("encoder not found")

// Requirements lists the executables used by a conversion. ffprobe only feeds
// the post-conversion report, so it is optional.
func Requirements(ffmpegBinary, ffprobeBinary string) []Requirement {
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     ffmpegBinary,
			Description: "Required for placeholder generation and encoding",
		},
		{
			Name:        "FFprobe",
			Command:     ffprobeBinary,
			Description: "Reports duration and resolution of the produced file",
			Optional:    true,
		},
	}
}

// ResolveEncoder looks up the encoder binary on PATH and returns its absolute
// location. The error carries install guidance for the running platform.
func ResolveEncoder(binary string) (string, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	resolved, err := exec.LookPath(binary)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not on PATH\n%s", ErrEncoderNotFound, binary, InstallHint(runtime.GOOS))
	}
	return resolved, nil
}

// InstallHint returns human-readable instructions for installing FFmpeg on goos.
func InstallHint(goos string) string {
	var lines []string
	switch goos {
	case "darwin":
		lines = []string{"brew install ffmpeg"}
	case "windows":
		lines = []string{"winget install ffmpeg", "choco install ffmpeg"}
	case "linux":
		lines = []string{
			"Debian/Ubuntu: sudo apt install ffmpeg",
			"Fedora:        sudo dnf install ffmpeg",
			"Arch:          sudo pacman -S ffmpeg",
		}
	default:
		lines = []string{"download a build from https://ffmpeg.org/download.html"}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Install FFmpeg on %s:", platformLabel(goos))
	for _, line := range lines {
		b.WriteString("\n  ")
		b.WriteString(line)
	}
	return b.String()
}

func platformLabel(goos string) string {
	switch goos {
	case "darwin":
		return "macOS"
	case "":
		return "this platform"
	}
	return cases.Title(language.English).String(goos)
}
