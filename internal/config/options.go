package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Color output modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Options is the nano.yaml configuration placed next to a script.
type Options struct {
	// Color controls diagnostic coloring: auto (default), always, never.
	Color string `yaml:"color,omitempty"`

	// MaxLoopIterations caps while-loop replay; 0 means unlimited.
	MaxLoopIterations int `yaml:"max_loop_iterations,omitempty"`

	// Trace enables per-line dispatch tracing on stderr.
	Trace bool `yaml:"trace,omitempty"`
}

func DefaultOptions() Options {
	return Options{Color: ColorAuto}
}

// LoadOptions reads nano.yaml from dir. A missing file yields the defaults;
// a present but invalid file is an error.
func LoadOptions(dir string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(filepath.Join(dir, OptionsFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("reading %s: %w", OptionsFileName, err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return DefaultOptions(), fmt.Errorf("parsing %s: %w", OptionsFileName, err)
	}
	if opts.Color == "" {
		opts.Color = ColorAuto
	}

	switch opts.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return DefaultOptions(), fmt.Errorf("%s: invalid color mode %q", OptionsFileName, opts.Color)
	}
	if opts.MaxLoopIterations < 0 {
		return DefaultOptions(), fmt.Errorf("%s: max_loop_iterations must not be negative", OptionsFileName)
	}

	return opts, nil
}
