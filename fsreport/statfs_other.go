//go:build !linux

package fsreport

import (
	"github.com/pkg/errors"

	"sysinfo/sysinfo"
)

// Statfs is a stub for non-Linux platforms.
// Capacity collection only works on Linux.
func Statfs(path string) (Capacity, error) {
	return Capacity{}, errors.Wrapf(sysinfo.ErrUnsupported, "statfs %s", path)
}
