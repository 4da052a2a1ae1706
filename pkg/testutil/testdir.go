package testutil

import (
	"os"
	"path/filepath"
)

// InTempDir creates a temporary directory, changes into it for the duration
// of the test and returns its path.
func InTempDir(c TempDirer) string {
	dir := c.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
	c.Cleanup(func() { os.Chdir(oldWd) })
	return dir
}

// Dir describes the layout of a directory. The keys are file names; the values
// are either a string (content of a regular file), a File, or a nested Dir.
type Dir map[string]any

// File describes a regular file with explicit permission bits.
type File struct {
	Perm    os.FileMode
	Content string
}

// ApplyDir creates the files and directories described by dir under root.
// Subdirectories are created with mode 0700 unless described by a DirWithPerm.
func ApplyDir(root string, dir Dir) {
	for name, item := range dir {
		path := filepath.Join(root, name)
		switch item := item.(type) {
		case string:
			must(os.WriteFile(path, []byte(item), 0600))
		case File:
			must(os.WriteFile(path, []byte(item.Content), item.Perm))
		case Dir:
			must(os.MkdirAll(path, 0700))
			ApplyDir(path, item)
		case DirWithPerm:
			must(os.MkdirAll(path, 0700))
			ApplyDir(path, item.Dir)
			must(os.Chmod(path, item.Perm))
		default:
			panic("file is neither string, File, Dir nor DirWithPerm")
		}
	}
}

// DirWithPerm describes a directory with explicit permission bits, applied
// after its content has been created.
type DirWithPerm struct {
	Perm os.FileMode
	Dir  Dir
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
