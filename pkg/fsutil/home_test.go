package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/elves/setvar/pkg/env"
	"github.com/elves/setvar/pkg/testutil"
)

func TestGetHome_UsesHOME(t *testing.T) {
	testutil.Setenv(t, env.HOME, "/home/someone/")
	home, err := GetHome("")
	if home != "/home/someone" || err != nil {
		t.Errorf("GetHome() -> (%q, %v), want (/home/someone, nil)", home, err)
	}
}

func TestDataDir(t *testing.T) {
	testutil.Setenv(t, env.XDG_DATA_HOME, "/xdg/data")
	dir, err := DataDir()
	if want := filepath.Join("/xdg/data", "setvar"); dir != want || err != nil {
		t.Errorf("DataDir() -> (%q, %v), want (%q, nil)", dir, err, want)
	}

	testutil.Unsetenv(t, env.XDG_DATA_HOME)
	testutil.Setenv(t, env.HOME, "/home/u")
	dir, err = DataDir()
	if want := filepath.Join("/home/u", ".local", "share", "setvar"); dir != want || err != nil {
		t.Errorf("DataDir() -> (%q, %v), want (%q, nil)", dir, err, want)
	}
}

func TestConfigDir(t *testing.T) {
	testutil.Unsetenv(t, env.XDG_CONFIG_HOME)
	testutil.Setenv(t, env.HOME, "/home/u")
	dir, err := ConfigDir()
	if want := filepath.Join("/home/u", ".config", "setvar"); dir != want || err != nil {
		t.Errorf("ConfigDir() -> (%q, %v), want (%q, nil)", dir, err, want)
	}
}
