package main

import (
	"os"
	"path/filepath"
	"testing"

	"audio2mp4/internal/config"
	"audio2mp4/internal/testsupport"
)

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	stdout, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, stdout, "Wrote sample configuration to "+target)

	if _, _, _, err := config.Load(target); err != nil {
		t.Fatalf("sample config should load: %v", err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShowCommand(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Output.Suffix = "_for_review"
	configPath := writeTestConfig(t, cfg)

	stdout, _, err := runCLI(t, []string{"config", "show"}, configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, stdout, "# loaded from "+configPath)
	requireContains(t, stdout, "[encoder]")
	requireContains(t, stdout, "_for_review")
	requireContains(t, stdout, cfg.Paths.PlaceholderDir)
}

func TestConfigShowWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	missing := filepath.Join(t.TempDir(), "absent.toml")

	stdout, _, err := runCLI(t, []string{"config", "show"}, missing)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, stdout, "showing defaults")
	requireContains(t, stdout, "_for_metanote")
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Fatalf("show must not create the config file: %v", err)
	}
}
