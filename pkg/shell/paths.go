package shell

import (
	"os"
	"path/filepath"

	"github.com/elves/setvar/pkg/fsutil"
	"github.com/elves/setvar/pkg/prog"
)

// Returns the path of the universal variable database, creating its directory
// if the default is used. It respects the override from the -db flag.
func dbPath(f *prog.Flags) (string, error) {
	if f.DB != "" {
		return f.DB, nil
	}
	dataDir, err := fsutil.DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "db"), nil
}

// Returns the path of the config file, and whether it is the default one.
func configPath(f *prog.Flags) (string, bool, error) {
	if f.Config != "" {
		return f.Config, false, nil
	}
	configDir, err := fsutil.ConfigDir()
	if err != nil {
		return "", true, err
	}
	return filepath.Join(configDir, "config.yaml"), true, nil
}
