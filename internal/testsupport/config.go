// Package testsupport provides fixtures shared by audio2mp4 tests: temp
// configurations, stub executables on PATH, and media fixtures.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"audio2mp4/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a normalized config whose placeholder directory lives in
// a unique temp directory. Probing is disabled unless an option re-enables it.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.PlaceholderDir = filepath.Join(base, "assets")
	cfgVal.Encoder.ProbeOutput = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Normalize(); err != nil {
		t.Fatalf("normalize test config: %v", err)
	}
	return builder.cfg
}

// WithFakeFFmpeg installs the fake encoder from WriteFakeFFmpeg on PATH.
func WithFakeFFmpeg() ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "bin")
		WriteFakeFFmpeg(b.t, binDir)
		PrependPath(b.t, binDir)
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. Each stub exits with status 0 and does nothing else.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "stubs")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := []byte("#!/bin/sh\nexit 0\n")
		for _, name := range names {
			target := filepath.Join(binDir, name)
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}
		PrependPath(b.t, binDir)
	}
}

// WithEmptyPath points PATH at an empty directory so no encoder resolves.
func WithEmptyPath() ConfigOption {
	return func(b *configBuilder) {
		empty := filepath.Join(b.baseDir, "empty-bin")
		if err := os.MkdirAll(empty, 0o755); err != nil {
			b.t.Fatalf("mkdir empty bin: %v", err)
		}
		setenv(b.t, "PATH", empty)
	}
}

// PrependPath puts dir in front of PATH for the duration of the test.
func PrependPath(t testing.TB, dir string) {
	t.Helper()
	oldPath := os.Getenv("PATH")
	setenv(t, "PATH", dir+string(os.PathListSeparator)+oldPath)
}

func setenv(t testing.TB, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("set %s: %v", key, err)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}
