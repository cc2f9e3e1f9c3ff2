package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"audio2mp4/internal/config"
	"audio2mp4/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckPlaceholderDir_WillBeCreated(t *testing.T) {
	result := CheckPlaceholderDir("test", filepath.Join(t.TempDir(), "a", "b"))
	if !result.Passed {
		t.Fatalf("expected pass for creatable dir, got: %s", result.Detail)
	}
}

func TestCheckPlaceholderImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.PlaceholderFileName)

	if r := CheckPlaceholderImage("img", path); !r.Passed {
		t.Fatalf("missing image should pass, got: %s", r.Detail)
	}

	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if r := CheckPlaceholderImage("img", path); r.Passed {
		t.Fatal("corrupt image should fail")
	}

	if err := os.WriteFile(path, testsupport.BlackPNG(t, 2), 0o644); err != nil {
		t.Fatal(err)
	}
	if r := CheckPlaceholderImage("img", path); !r.Passed {
		t.Fatalf("valid image should pass, got: %s", r.Detail)
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	if results := RunAll(nil); results != nil {
		t.Fatalf("expected nil results, got %v", results)
	}
}

func TestRunAll_MinimalConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	results := RunAll(cfg)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Fatalf("expected %s to pass, got: %s", r.Name, r.Detail)
		}
	}
}

func TestCheckSystemDeps(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries("ffmpeg"))
	cfg.Encoder.FFprobeBinary = "clearly-not-present-ffprobe"

	statuses := CheckSystemDeps(cfg)
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if !statuses[0].Available {
		t.Fatalf("expected stubbed ffmpeg to be available: %#v", statuses[0])
	}
	if statuses[1].Available || !statuses[1].Optional {
		t.Fatalf("expected optional missing ffprobe, got %#v", statuses[1])
	}
}
