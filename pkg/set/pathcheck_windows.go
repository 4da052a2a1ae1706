package set

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

func isRooted(dir string) bool { return filepath.IsAbs(dir) }

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
		return syscall.ENOTDIR
	}
	return nil
}
