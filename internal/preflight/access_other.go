//go:build !unix

package preflight

import (
	"os"
)

// Without access(2) the only reliable answer is to try: create and remove a
// scratch file in dir.
func checkReadWrite(dir string) error {
	if _, err := os.ReadDir(dir); err != nil {
		return err
	}
	return checkCanCreate(dir)
}

func checkCanCreate(dir string) error {
	f, err := os.CreateTemp(dir, ".audio2mp4-access-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	return os.Remove(name)
}
