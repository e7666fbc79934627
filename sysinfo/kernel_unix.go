//go:build linux || darwin || freebsd || netbsd || openbsd

package sysinfo

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func kernelRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", errors.Wrap(err, "uname")
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}
