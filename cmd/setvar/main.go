// Setvar runs scripts of the set builtin: it assigns, erases, queries, lists
// and shows variables in local, global and universal scopes, with universal
// variables persisted across sessions.
package main

import (
	"os"

	"github.com/elves/setvar/pkg/buildinfo"
	"github.com/elves/setvar/pkg/prog"
	"github.com/elves/setvar/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, shell.Program{})))
}
