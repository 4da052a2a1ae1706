// Package shell hosts sessions of the set builtin. A session imports the
// process environment, opens the universal variable store and runs commands
// from the command line, a script file or stdin.
package shell

import (
	"fmt"
	"os"

	"github.com/elves/setvar/pkg/logutil"
	"github.com/elves/setvar/pkg/prog"
	"github.com/elves/setvar/pkg/store"
	"github.com/elves/setvar/pkg/sys"
	"github.com/elves/setvar/pkg/vars"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram.
type Program struct{}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.CodeInArg && len(args) == 0 {
		return prog.BadUsage("-c requires an argument")
	}

	cfg := &Config{}
	if !f.NoConfig {
		path, isDefault, err := configPath(f)
		if err == nil {
			cfg, err = LoadConfig(path, isDefault)
		}
		if err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot load config:", err)
			cfg = &Config{}
		}
	}

	universal, cleanup := openUniversal(fds, f)
	defer cleanup()

	interactive := f.Interactive || sys.IsInteractive(fds[0], fds[2])
	s := NewSession(universal, os.Environ(), cfg, interactive)
	logger.Printf("session started, interactive = %v", interactive)

	if len(args) > 0 {
		return prog.Exit(script(s, fds, args, &scriptCfg{Cmd: f.CodeInArg}))
	}
	return prog.Exit(s.Run(fds[0], fds[1], fds[2]))
}

// Opens the universal variable store. When that fails, universal variables
// are kept in memory.
func openUniversal(fds [3]*os.File, f *prog.Flags) (vars.Table, func()) {
	path, err := dbPath(f)
	if err == nil {
		var st store.DBStore
		st, err = store.NewStore(path)
		if err == nil {
			return st, func() {
				if err := st.Close(); err != nil {
					logger.Println("failed to close store:", err)
				}
			}
		}
	}
	fmt.Fprintln(fds[2], "Warning:", err)
	fmt.Fprintln(fds[2], "Universal variables will not persist.")
	return nil, func() {}
}
