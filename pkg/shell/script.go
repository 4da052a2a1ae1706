package shell

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Configuration for the script mode.
type scriptCfg struct {
	Cmd bool
}

// Runs a script, given either as the path of a file or as code when cfg.Cmd
// is set. Returns the status of the last command.
func script(s *Session, fds [3]*os.File, args []string, cfg *scriptCfg) int {
	arg0 := args[0]
	s.Env.SetSpecial("argv", args[1:]...)

	var code string
	if cfg.Cmd {
		code = arg0
	} else {
		var err error
		code, err = readFileUTF8(arg0)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", arg0, err)
			return 2
		}
	}
	return s.Run(strings.NewReader(code), fds[1], fds[2])
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}
