package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/elves/setvar/pkg/env"
	. "github.com/elves/setvar/pkg/prog/progtest"
	"github.com/elves/setvar/pkg/testutil"
)

func setupHome(t *testing.T) string {
	home := testutil.InTempDir(t)
	testutil.Setenv(t, env.HOME, home)
	testutil.Setenv(t, env.XDG_DATA_HOME, filepath.Join(home, "data"))
	testutil.Setenv(t, env.XDG_CONFIG_HOME, filepath.Join(home, "config"))
	return home
}

func TestProgram_Script(t *testing.T) {
	setupHome(t)
	testutil.ApplyDir(".", testutil.Dir{
		"ok.set":      "set x 1\nset -q x\n",
		"missing.set": "# Two are missing.\nset x 1\nset -q x y z\n",
		"bad.set":     "\xff",
	})

	Test(t, Program{},
		ThatSetvar("ok.set").DoesNothing(),
		ThatSetvar("missing.set").ExitsWith(2),
		ThatSetvar("bad.set").ExitsWith(2).WritesStderrContaining("cannot read script"),
		ThatSetvar("nonexistent.set").ExitsWith(2).WritesStderrContaining("cannot read script"),

		ThatSetvar("-c", "set foo a b\nset -S foo").WritesStdout(
			"$foo: not set in local scope\n"+
				"$foo: set in global scope, unexported, with 2 elements\n"+
				"$foo[1]: length=1 value=|a|\n"+
				"$foo[2]: length=1 value=|b|\n"+
				"$foo: not set in universal scope\n\n"),
		ThatSetvar("-c", "set -q foo").ExitsWith(1),
		ThatSetvar("-c", "set -e").ExitsWith(2).
			WritesStderr("set: Erase needs a variable name\n"),
		ThatSetvar("-c").ExitsWith(2).WritesStderrContaining("-c requires an argument"),

		ThatSetvar().WithStdin("set foo\nset -q foo bar\n").ExitsWith(1),
	)
}

func TestProgram_UniversalVariablesPersist(t *testing.T) {
	home := setupHome(t)

	Test(t, Program{},
		ThatSetvar("-c", "set -U -x fruit apple banana").DoesNothing(),
		ThatSetvar("-c", "set -S fruit").WritesStdout(
			"$fruit: not set in local scope\n"+
				"$fruit: not set in global scope\n"+
				"$fruit: set in universal scope, exported, with 2 elements\n"+
				"$fruit[1]: length=5 value=|apple|\n"+
				"$fruit[2]: length=6 value=|banana|\n\n"),
		ThatSetvar("-c", "set -e -U fruit[1]").DoesNothing(),
		ThatSetvar("-c", "set -q fruit[2]").ExitsWith(1),

		ThatSetvar("-db", "other.db", "-c", "set -q fruit").ExitsWith(1),

		// Shadowing is only reported in interactive sessions.
		ThatSetvar("-c", "set -g fruit a\nset -U fruit b").DoesNothing(),
		ThatSetvar("-i", "-c", "set -g fruit a\nset -U fruit b").WritesStderr(
			"set: Universal var 'fruit' created but shadowed by global var of the same name.\n"),
		ThatSetvar("-db", "/a/bad/path/db", "-c", "set -U x 1").
			WritesStderrContaining("Universal variables will not persist."),
	)

	if _, err := os.Stat(filepath.Join(home, "data", "setvar", "db")); err != nil {
		t.Errorf("default database not created: %v", err)
	}
}

func TestProgram_Config(t *testing.T) {
	home := setupHome(t)
	testutil.ApplyDir(home, testutil.Dir{
		"config": testutil.Dir{
			"setvar": testutil.Dir{
				"config.yaml": "read_only: [hostname]\nglobals:\n  EDITOR: [vim]\n",
			},
		},
		"bad.yaml": "globals: [",
	})

	Test(t, Program{},
		ThatSetvar("-c", "set -q EDITOR").DoesNothing(),
		ThatSetvar("-c", "set hostname h").ExitsWith(1).
			WritesStderr("set: Tried to change the read-only variable 'hostname'\n"),
		ThatSetvar("-noconfig", "-c", "set -q EDITOR").ExitsWith(1),
		ThatSetvar("-config", "bad.yaml", "-c", "set -q EDITOR").ExitsWith(1).
			WritesStderrContaining("Warning: cannot load config"),
	)
}
