package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/agenthands/mcjs/pkg/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, config.Default()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if cfg.Source != "index.mc" || cfg.Output != "index.js" || cfg.Runtime.Command != "node" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcjs.yaml")
	src := `
source: src/main.mc
output: build/main.js
runtime:
  command: deno
  args: [run, --quiet]
max_file_size: 2048
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := &config.Config{
		Path:        path,
		Source:      "src/main.mc",
		Output:      "build/main.js",
		Runtime:     config.Runtime{Command: "deno", Args: []string{"run", "--quiet"}},
		MaxFileSize: 2048,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("config mismatch\n got: %+v\nwant: %+v", cfg, want)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		check   func(*testing.T, *config.Config)
		wantErr string
	}{
		{
			name: "Empty document",
			src:  "",
			check: func(t *testing.T, c *config.Config) {
				if !reflect.DeepEqual(c, config.Default()) {
					t.Errorf("expected defaults, got %+v", c)
				}
			},
		},
		{
			name: "Scalar args",
			src:  "runtime:\n  args: --no-warnings\n",
			check: func(t *testing.T, c *config.Config) {
				if !reflect.DeepEqual(c.Runtime.Args, []string{"--no-warnings"}) {
					t.Errorf("unexpected args %v", c.Runtime.Args)
				}
				if c.Runtime.Command != "node" {
					t.Errorf("expected default command, got %q", c.Runtime.Command)
				}
			},
		},
		{
			name: "Zero size disables limit",
			src:  "max_file_size: 0\n",
			check: func(t *testing.T, c *config.Config) {
				if c.MaxFileSize != 0 {
					t.Errorf("expected 0, got %d", c.MaxFileSize)
				}
			},
		},
		{name: "Unknown field", src: "target: python\n", wantErr: "field target not found"},
		{name: "Nested args", src: "runtime:\n  args: [[a]]\n", wantErr: "expected string"},
		{name: "Same source and output", src: "source: a.js\noutput: ./a.js\n", wantErr: "output must differ from source"},
		{name: "Negative size", src: "max_file_size: -1\n", wantErr: "max_file_size must not be negative"},
		{name: "Empty arg", src: "runtime:\n  args: [\"\"]\n", wantErr: "runtime.args[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Decode(strings.NewReader(tt.src))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestValidateCollectsIssues(t *testing.T) {
	cfg := &config.Config{}
	err := cfg.Validate()

	var verr *config.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Issues) != 3 {
		t.Errorf("expected 3 issues, got %d: %v", len(verr.Issues), verr.Issues)
	}
}
