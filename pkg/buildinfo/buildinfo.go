// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X github.com/elves/setvar/pkg/buildinfo.Var=value" to "go build".
package buildinfo

import (
	"fmt"
	"os"
	"runtime"

	"github.com/elves/setvar/pkg/prog"
)

// Version identifies the version of setvar. On development commits, it
// identifies the next release.
const Version = "v0.3.0"

// VersionSuffix is appended to Version in the output of "setvar -version" to
// build the full version string.
var VersionSuffix = "-dev.unknown"

// Reproducible identifies whether the build is reproducible.
var Reproducible = "false"

// FullVersion returns Version with VersionSuffix.
func FullVersion() string { return Version + VersionSuffix }

// Program is the buildinfo subprogram.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Version {
		return prog.ErrNotSuitable
	}
	fmt.Fprintln(fds[1], FullVersion())
	fmt.Fprintln(fds[1], "Go version:", runtime.Version())
	fmt.Fprintln(fds[1], "Reproducible build:", Reproducible)
	return nil
}
