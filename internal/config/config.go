// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/psscript"
	"github.com/spf13/afero"
)

const defaultFileName = ".psscript.yaml"

var (
	// ErrReadConfig is returned when the defaults file cannot be read.
	ErrReadConfig = errors.New("failed to read config file")
	// ErrParseConfig is returned when the defaults file is not valid YAML.
	ErrParseConfig = errors.New("failed to parse config file")
	// ErrUnknownExecutable is returned when the executable value is not
	// "system", "core" or empty.
	ErrUnknownExecutable = errors.New("unknown executable kind")
)

// Defaults holds flag defaults for the run command, read from a YAML file.
// Flags given on the command line take precedence over these values.
type Defaults struct {
	NoProfile      bool   `yaml:"no_profile"`
	NonInteractive bool   `yaml:"non_interactive"`
	Hidden         bool   `yaml:"hidden"`
	PrintCommands  bool   `yaml:"print_commands"`
	Executable     string `yaml:"executable"`
}

// Load reads and parses the defaults file at path.
func Load(path string) (*Defaults, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadConfig, err)
	}

	d := &Defaults{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, errors.Join(ErrParseConfig, err)
	}

	if _, err := d.ExecutableKind(); err != nil {
		return nil, err
	}

	return d, nil
}

// DefaultPath returns the location of the optional per-user defaults file.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultFileName
	}

	return filepath.Join(home, defaultFileName)
}

// ExecutableKind maps the executable value to an interpreter kind. An empty
// value means the platform default.
func (d *Defaults) ExecutableKind() (psscript.Executable, error) {
	switch d.Executable {
	case "":
		return psscript.DefaultExecutable(), nil
	case "system":
		return psscript.ExecutableSystem, nil
	case "core":
		return psscript.ExecutableCore, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownExecutable, d.Executable)
	}
}
