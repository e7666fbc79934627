//go:build linux

package fsreport

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Statfs queries the filesystem mounted at path.
func Statfs(path string) (Capacity, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Capacity{}, errors.Wrapf(err, "statfs %s", path)
	}
	bsize := uint64(st.Frsize)
	if bsize == 0 {
		bsize = uint64(st.Bsize)
	}
	return Capacity{
		BlockSize:   bsize,
		Blocks:      uint64(st.Blocks),
		BlocksFree:  uint64(st.Bfree),
		BlocksAvail: uint64(st.Bavail),
	}, nil
}
