//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package sysinfo

import "github.com/pkg/errors"

// kernelRelease is a stub for platforms without uname(2).
func kernelRelease() (string, error) {
	return "", errors.Wrap(ErrUnsupported, "uname")
}
