package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"audio2mp4/internal/config"
	"audio2mp4/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := checkReadWrite(path); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckPlaceholderDir verifies the placeholder directory, or when it does not
// exist yet, that its nearest existing ancestor allows creating it.
func CheckPlaceholderDir(name, path string) Result {
	if _, err := os.Stat(path); err == nil || !os.IsNotExist(err) {
		return CheckDirectoryAccess(name, path)
	}
	parent := filepath.Dir(path)
	for parent != filepath.Dir(parent) && !fileExists(parent) {
		parent = filepath.Dir(parent)
	}
	if err := checkCanCreate(parent); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot create under %s: %v)", path, parent, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", path)}
}

// CheckSystemDeps evaluates the executables a conversion uses.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	return deps.CheckBinaries(deps.Requirements(cfg.FFmpegBinary(), cfg.FFprobeBinary()))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
