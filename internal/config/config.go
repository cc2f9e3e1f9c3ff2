package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	PlaceholderDir string `toml:"placeholder_dir"`
}

// Encoder describes the external encoder and the fixed still-image recipe.
type Encoder struct {
	Binary         string `toml:"binary"`
	FFprobeBinary  string `toml:"ffprobe_binary"`
	VideoCodec     string `toml:"video_codec"`
	Tune           string `toml:"tune"`
	AudioCodec     string `toml:"audio_codec"`
	AudioBitrate   string `toml:"audio_bitrate"`
	PixelFormat    string `toml:"pixel_format"`
	Width          int    `toml:"width"`
	Height         int    `toml:"height"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	ProbeOutput    bool   `toml:"probe_output"`
}

// Output controls how the output file name is derived.
type Output struct {
	Suffix string `toml:"suffix"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for audio2mp4.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Encoder Encoder `toml:"encoder"`
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// PlaceholderPath returns the full path of the cached placeholder image.
func (c *Config) PlaceholderPath() string {
	return filepath.Join(c.Paths.PlaceholderDir, PlaceholderFileName)
}

// EncoderTimeout returns the per-run encoder timeout; zero means unbounded.
func (c *Config) EncoderTimeout() time.Duration {
	if c.Encoder.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Encoder.TimeoutSeconds) * time.Second
}

// FFmpegBinary returns the encoder executable name.
func (c *Config) FFmpegBinary() string {
	return c.Encoder.Binary
}

// FFprobeBinary returns the ffprobe executable name used for output inspection.
func (c *Config) FFprobeBinary() string {
	return c.Encoder.FFprobeBinary
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// defaultPlaceholderDir mirrors the historical layout: the image lives next to
// the installed tool.
func defaultPlaceholderDir() string {
	exe, err := os.Executable()
	if err != nil {
		return os.TempDir()
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
