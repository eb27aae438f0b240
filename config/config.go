// Package config loads compiler options from a YAML file, a .env file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatGraphQL = "graphql"
	FormatAna     = "ana"
)

// Options controls how a compiled document is written.
type Options struct {
	Format  string `yaml:"format"`
	Indent  string `yaml:"indent"`
	Verbose bool   `yaml:"verbose"`
	// Output is a file path; empty means standard output.
	Output string `yaml:"output"`
	// CustomScalars maps Lexicon type or string format names to GraphQL scalar names.
	CustomScalars map[string]string `yaml:"custom_scalars,omitempty"`
}

// Default returns the options used when nothing is configured.
func Default() *Options {
	opts := &Options{}
	setDefaults(opts)
	return opts
}

// Load reads options from path (which may be empty), then applies ANA_* environment variables,
// including any set by a .env file in the working directory.
func Load(path string) (*Options, error) {
	var opts Options
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		data = []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	_ = godotenv.Load()
	applyEnvOverrides(&opts)
	setDefaults(&opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &opts, nil
}

func applyEnvOverrides(opts *Options) {
	if v := os.Getenv("ANA_FORMAT"); v != "" {
		opts.Format = v
	}
	if v := os.Getenv("ANA_INDENT"); v != "" {
		opts.Indent = v
	}
	if v := os.Getenv("ANA_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.Verbose = b
		}
	}
	if v := os.Getenv("ANA_OUTPUT"); v != "" {
		opts.Output = v
	}
}

func setDefaults(opts *Options) {
	if opts.Format == "" {
		opts.Format = FormatJSON
	}
	if opts.Indent == "" {
		opts.Indent = "    "
	}
}

func (opts *Options) Validate() error {
	switch opts.Format {
	case FormatJSON, FormatYAML, FormatGraphQL, FormatAna:
	default:
		return fmt.Errorf("unknown output format %q (expected json, yaml, graphql or ana)", opts.Format)
	}
	return nil
}
