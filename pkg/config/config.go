package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the project file looked up when no path is given.
const DefaultFile = "mcjs.yaml"

const (
	DefaultSource      = "index.mc"
	DefaultOutput      = "index.js"
	DefaultRuntime     = "node"
	DefaultMaxFileSize = 5 * 1024 * 1024
)

// Config holds the settings for one compile-and-run invocation.
type Config struct {
	Path        string
	Source      string
	Output      string
	Runtime     Runtime
	MaxFileSize int
}

// Runtime describes the external program that executes generated output.
type Runtime struct {
	Command string
	Args    []string
}

// ValidationError aggregates configuration validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type configFile struct {
	Source      string      `yaml:"source"`
	Output      string      `yaml:"output"`
	Runtime     runtimeFile `yaml:"runtime"`
	MaxFileSize *int        `yaml:"max_file_size"`
}

type runtimeFile struct {
	Command string     `yaml:"command"`
	Args    stringList `yaml:"args"`
}

// Default returns the built-in settings: index.mc compiled to index.js and
// run with node.
func Default() *Config {
	return &Config{
		Source:      DefaultSource,
		Output:      DefaultOutput,
		Runtime:     Runtime{Command: DefaultRuntime},
		MaxFileSize: DefaultMaxFileSize,
	}
}

// Load reads the YAML project file at path. A missing file yields the
// defaults; an empty path means DefaultFile.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		cfg.Path = abs
	}
	return cfg, nil
}

// Decode parses YAML settings from r over the defaults and validates them.
func Decode(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}

	cfg := raw.toConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (f configFile) toConfig() *Config {
	cfg := Default()
	if f.Source != "" {
		cfg.Source = f.Source
	}
	if f.Output != "" {
		cfg.Output = f.Output
	}
	if f.Runtime.Command != "" {
		cfg.Runtime.Command = f.Runtime.Command
	}
	if len(f.Runtime.Args) > 0 {
		cfg.Runtime.Args = []string(f.Runtime.Args)
	}
	if f.MaxFileSize != nil {
		cfg.MaxFileSize = *f.MaxFileSize
	}
	return cfg
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	var errs ValidationError
	if strings.TrimSpace(c.Source) == "" {
		errs.Issues = append(errs.Issues, "source must be provided")
	}
	if strings.TrimSpace(c.Output) == "" {
		errs.Issues = append(errs.Issues, "output must be provided")
	}
	if c.Source != "" && filepath.Clean(c.Source) == filepath.Clean(c.Output) {
		errs.Issues = append(errs.Issues, "output must differ from source")
	}
	if strings.TrimSpace(c.Runtime.Command) == "" {
		errs.Issues = append(errs.Issues, "runtime.command must be provided")
	}
	for i, arg := range c.Runtime.Args {
		if arg == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("runtime.args[%d] must be a non-empty string", i))
		}
	}
	if c.MaxFileSize < 0 {
		errs.Issues = append(errs.Issues, "max_file_size must not be negative")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// stringList accepts either a single scalar or a sequence of scalars.
type stringList []string

func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = stringList{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make(stringList, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected string", item.Line)
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("line %d: expected string or list of strings", value.Line)
	}
}
