// Package fsutil locates files and directories used by setvar.
package fsutil

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/elves/setvar/pkg/env"
)

const pathSep = string(filepath.Separator)

// GetHome finds the home directory of a specified user. When given an empty
// string, it finds the home directory of the current user.
func GetHome(uname string) (string, error) {
	if uname == "" {
		// Use $HOME as override if we are looking for the home of the current
		// user.
		if home := os.Getenv(env.HOME); home != "" {
			return strings.TrimRight(home, pathSep), nil
		}
	}

	var u *user.User
	var err error
	if uname == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(uname)
	}
	if err != nil {
		return "", fmt.Errorf("can't resolve ~%s: %s", uname, err.Error())
	}
	return strings.TrimRight(u.HomeDir, pathSep), nil
}

// DataDir returns the directory for persistent data, $XDG_DATA_HOME/setvar or
// ~/.local/share/setvar.
func DataDir() (string, error) {
	return xdgDir(env.XDG_DATA_HOME, ".local", "share")
}

// ConfigDir returns the directory for configuration, $XDG_CONFIG_HOME/setvar
// or ~/.config/setvar.
func ConfigDir() (string, error) {
	return xdgDir(env.XDG_CONFIG_HOME, ".config")
}

func xdgDir(envName string, fallback ...string) (string, error) {
	if base := os.Getenv(envName); base != "" {
		return filepath.Join(base, "setvar"), nil
	}
	home, err := GetHome("")
	if err != nil {
		return "", err
	}
	segs := append([]string{home}, fallback...)
	return filepath.Join(append(segs, "setvar")...), nil
}
