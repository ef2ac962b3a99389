//go:build linux

package modules

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// diskUsage reads capacity with statfs(2).
func diskUsage(path string) (Usage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Usage{}, &fs.PathError{Op: "statfs", Path: path, Err: err}
	}

	bsize := uint64(st.Frsize)
	if bsize == 0 {
		bsize = uint64(st.Bsize)
	}
	return Usage{
		Total: st.Blocks * bsize,
		Free:  st.Bavail * bsize,
	}, nil
}
