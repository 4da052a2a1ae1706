package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/elves/setvar/pkg/buildinfo"
	"github.com/elves/setvar/pkg/env"
	"github.com/elves/setvar/pkg/set"
	"github.com/elves/setvar/pkg/vars"
	"github.com/kballard/go-shellquote"
)

// Exit statuses of session commands other than set.
const (
	statusBadSyntax      = 2
	statusUnknownCommand = 127
)

// Session runs commands against one set of variables.
type Session struct {
	Env     *vars.Env
	builtin *set.Builtin
	status  int
}

// NewSession creates a session. Globals are imported from environ, which has
// the format of os.Environ, and from the config. The universal table may be
// nil, in which case universal variables live in memory.
func NewSession(universal vars.Table, environ []string, cfg *Config, interactive bool) *Session {
	if cfg == nil {
		cfg = &Config{}
	}
	e := vars.NewEnv(universal)
	e.SetReadOnly(cfg.ReadOnly...)
	pathVars := mergeNames(env.PathVariables, cfg.PathVariables)

	importEnviron(e, environ, pathVars)
	for name, values := range cfg.Globals {
		err := e.Set(name, values, vars.Mode{Scope: vars.Global, Export: vars.Unexported})
		if err != nil {
			logger.Printf("config global %s: %v", name, err)
		}
	}
	incSHLVL(e)
	e.SetSpecial(vars.Version, buildinfo.FullVersion())
	e.SetSpecial(vars.Pid, strconv.Itoa(os.Getpid()))
	e.SetSpecial(vars.Status, "0")

	return &Session{
		Env: e,
		builtin: &set.Builtin{
			Store: e, Interactive: interactive, PathVariables: pathVars},
	}
}

// Imports the process environment as exported globals. Path variables are
// split on the path list separator.
func importEnviron(e *vars.Env, environ []string, pathVars []string) {
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !vars.ValidName(name) {
			continue
		}
		values := []string{value}
		if contains(pathVars, name) {
			values = filepath.SplitList(value)
		}
		if err := e.Import(name, values); err != nil {
			logger.Printf("import %s: %v", name, err)
		}
	}
}

func incSHLVL(e *vars.Env) {
	level := 0
	if v, ok := e.Get("SHLVL", vars.Global); ok && len(v.Values) == 1 {
		if i, err := strconv.Atoi(v.Values[0]); err == nil {
			level = i
		}
	}
	e.SetSpecial("SHLVL", strconv.Itoa(level+1))
}

// Status returns the status of the last command.
func (s *Session) Status() int { return s.status }

// Run runs the lines read from r and returns the status of the last command.
func (s *Session) Run(r io.Reader, out, errOut io.Writer) int {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.Eval(scanner.Text(), out, errOut)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(errOut, "setvar: read error:", err)
		s.setStatus(statusBadSyntax)
	}
	return s.status
}

// Eval runs one line and returns its status. Empty lines and comments don't
// change the status.
func (s *Session) Eval(line string, out, errOut io.Writer) int {
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return s.status
	}
	words, err := shellquote.Split(line)
	if err != nil {
		fmt.Fprintf(errOut, "setvar: %v\n", err)
		return s.setStatus(statusBadSyntax)
	}
	if len(words) == 0 {
		return s.status
	}
	logger.Printf("eval %q", words)

	switch words[0] {
	case "set":
		return s.setStatus(s.builtin.Call(set.Streams{Out: out, Err: errOut}, words[1:], s.status))
	case "begin":
		s.Env.PushBlock()
		return s.setStatus(0)
	case "end":
		if err := s.Env.PopBlock(); err != nil {
			fmt.Fprintf(errOut, "end: %v\n", err)
			return s.setStatus(1)
		}
		return s.setStatus(0)
	case "true":
		return s.setStatus(0)
	case "false":
		return s.setStatus(1)
	default:
		fmt.Fprintf(errOut, "setvar: unknown command: %s\n", words[0])
		return s.setStatus(statusUnknownCommand)
	}
}

func (s *Session) setStatus(status int) int {
	s.status = status
	s.Env.SetSpecial(vars.Status, strconv.Itoa(status))
	return status
}

// Returns names followed by the elements of more that are not in names.
func mergeNames(names, more []string) []string {
	merged := append([]string{}, names...)
	for _, name := range more {
		if !contains(merged, name) {
			merged = append(merged, name)
		}
	}
	return merged
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
