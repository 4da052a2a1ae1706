package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the content of the config file.
type Config struct {
	// Variables whose elements are checked to be directories, in addition to
	// PATH and CDPATH.
	PathVariables []string `yaml:"path_variables"`
	// Variables that can't be changed, in addition to the built-in ones.
	ReadOnly []string `yaml:"read_only"`
	// Unexported global variables to create in each session.
	Globals map[string][]string `yaml:"globals"`
}

// LoadConfig reads the config file at path. A missing file is not an error
// when the path is the default one, and results in an empty Config.
func LoadConfig(path string, isDefault bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if isDefault && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}
