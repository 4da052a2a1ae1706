//go:build !windows && !plan9

package set

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

func isRooted(dir string) bool { return strings.HasPrefix(dir, "/") }

// Returns nil if dir is a directory that can be searched. Errors are the bare
// errno values, which read like "no such file or directory".
func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return pathErr.Err
		}
		return err
	}
	if !info.IsDir() {
		return unix.ENOTDIR
	}
	return unix.Access(dir, unix.X_OK)
}
