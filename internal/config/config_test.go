package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"audio2mp4/internal/config"
)

func TestLoadDefaultConfigWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("AUDIO2MP4_PLACEHOLDER_DIR", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "audio2mp4", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	if cfg.Encoder.Binary != "ffmpeg" {
		t.Fatalf("unexpected encoder binary: %q", cfg.Encoder.Binary)
	}
	if cfg.Encoder.Width != 640 || cfg.Encoder.Height != 480 {
		t.Fatalf("unexpected frame size: %dx%d", cfg.Encoder.Width, cfg.Encoder.Height)
	}
	if cfg.Encoder.AudioBitrate != "128k" {
		t.Fatalf("unexpected audio bitrate: %q", cfg.Encoder.AudioBitrate)
	}
	if cfg.Encoder.PixelFormat != "yuv420p" {
		t.Fatalf("unexpected pixel format: %q", cfg.Encoder.PixelFormat)
	}
	if cfg.Output.Suffix != "_for_metanote" {
		t.Fatalf("unexpected suffix: %q", cfg.Output.Suffix)
	}
	if !filepath.IsAbs(cfg.Paths.PlaceholderDir) {
		t.Fatalf("expected absolute placeholder dir, got %q", cfg.Paths.PlaceholderDir)
	}
	if cfg.EncoderTimeout() != 0 {
		t.Fatalf("expected no encoder timeout by default, got %s", cfg.EncoderTimeout())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "audio2mp4.toml")
	t.Setenv("AUDIO2MP4_PLACEHOLDER_DIR", "")

	type payload struct {
		Paths struct {
			PlaceholderDir string `toml:"placeholder_dir"`
		} `toml:"paths"`
		Encoder struct {
			Binary         string `toml:"binary"`
			Width          int    `toml:"width"`
			Height         int    `toml:"height"`
			TimeoutSeconds int    `toml:"timeout_seconds"`
		} `toml:"encoder"`
		Output struct {
			Suffix string `toml:"suffix"`
		} `toml:"output"`
	}
	custom := payload{}
	custom.Paths.PlaceholderDir = filepath.Join(tempDir, "assets")
	custom.Encoder.Binary = "/opt/ffmpeg/bin/ffmpeg"
	custom.Encoder.Width = 1280
	custom.Encoder.Height = 720
	custom.Encoder.TimeoutSeconds = 90
	custom.Output.Suffix = " _ingest "
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.PlaceholderDir != custom.Paths.PlaceholderDir {
		t.Fatalf("unexpected placeholder dir: %q", cfg.Paths.PlaceholderDir)
	}
	if cfg.PlaceholderPath() != filepath.Join(custom.Paths.PlaceholderDir, config.PlaceholderFileName) {
		t.Fatalf("unexpected placeholder path: %q", cfg.PlaceholderPath())
	}
	if cfg.FFmpegBinary() != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("unexpected encoder binary: %q", cfg.FFmpegBinary())
	}
	if cfg.Encoder.Width != 1280 || cfg.Encoder.Height != 720 {
		t.Fatalf("unexpected frame size: %dx%d", cfg.Encoder.Width, cfg.Encoder.Height)
	}
	if cfg.EncoderTimeout() != 90*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.EncoderTimeout())
	}
	if cfg.Output.Suffix != "_ingest" {
		t.Fatalf("expected trimmed suffix, got %q", cfg.Output.Suffix)
	}
	// Unset fields keep their defaults.
	if cfg.Encoder.AudioCodec != "aac" {
		t.Fatalf("expected default audio codec, got %q", cfg.Encoder.AudioCodec)
	}
}

func TestEnvOverridesPlaceholderDir(t *testing.T) {
	envDir := t.TempDir()
	t.Setenv("AUDIO2MP4_PLACEHOLDER_DIR", envDir)

	configPath := filepath.Join(t.TempDir(), "audio2mp4.toml")
	body := "[paths]\nplaceholder_dir = \"/somewhere/else\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.PlaceholderDir != envDir {
		t.Fatalf("expected env placeholder dir %q, got %q", envDir, cfg.Paths.PlaceholderDir)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(configPath, []byte("[encoder\nwidth = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "_for_metanote") {
		t.Fatalf("sample config missing default suffix: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Encoder.Width != 640 || cfg.Encoder.Height != 480 {
		t.Fatalf("sample frame size drifted from defaults: %dx%d", cfg.Encoder.Width, cfg.Encoder.Height)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero width", func(c *config.Config) { c.Encoder.Width = -2 }},
		{"odd height", func(c *config.Config) { c.Encoder.Height = 481 }},
		{"negative timeout", func(c *config.Config) { c.Encoder.TimeoutSeconds = -1 }},
		{"suffix with separator", func(c *config.Config) { c.Output.Suffix = "../x" }},
		{"unknown log format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"unknown log level", func(c *config.Config) { c.Logging.Level = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}
