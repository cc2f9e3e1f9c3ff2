//go:build unix

package preflight

import "golang.org/x/sys/unix"

func checkReadWrite(dir string) error {
	return unix.Access(dir, unix.R_OK|unix.W_OK|unix.X_OK)
}

func checkCanCreate(dir string) error {
	return unix.Access(dir, unix.W_OK|unix.X_OK)
}
