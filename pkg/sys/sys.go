// Package sys provides system utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file descriptor is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsInteractive reports whether a session reading from in and reporting to
// errOut talks to a user. Both need to be terminals.
func IsInteractive(in, errOut *os.File) bool {
	return in != nil && errOut != nil && IsATTY(in.Fd()) && IsATTY(errOut.Fd())
}
