//go:build linux

package fileset

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// creationTime returns the file birth time where the kernel and filesystem
// expose one, falling back to the modification time.
func creationTime(path string, info os.FileInfo) time.Time {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx); err == nil {
		if stx.Mask&unix.STATX_BTIME != 0 && stx.Btime.Sec != 0 {
			return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
		}
	}

	return info.ModTime()
}
