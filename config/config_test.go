package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/cclip"
	"github.com/npillmayer/cclip/replace"
	"github.com/npillmayer/cclip/styled"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.InputFormat != "text" {
		t.Errorf("InputFormat = %q, want text", cfg.InputFormat)
	}
	if !cfg.HasFormat("text") || !cfg.HasFormat("html") {
		t.Errorf("Formats = %v, want text and html", cfg.Formats)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
	patterns, err := cfg.PatternList()
	if err != nil {
		t.Fatal(err.Error())
	}
	out, _, err := replace.Rewrite(cclip.FromString("a<b && c>d"), styled.NewAnnotationSet(), patterns)
	if err != nil {
		t.Fatal(err.Error())
	}
	if out.String() != "a&lt;b &amp;&amp; c&gt;d" {
		t.Errorf("default patterns produce %q", out)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
codepage: "1252"
inputFormat: html
formats: [html]
patterns:
  - search: "\t"
    replace: "    "
highlights:
  - pattern: "ERROR"
    kind: color
    color: red
  - pattern: "TODO"
    kind: Bold
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatal(err.Error())
	}
	if cfg.Codepage != "1252" || cfg.InputFormat != "html" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.HasFormat("text") || !cfg.HasFormat("html") {
		t.Errorf("Formats = %v, want html only", cfg.Formats)
	}
	if cfg.BufferStep != 4096 {
		t.Errorf("BufferStep = %d, want default 4096", cfg.BufferStep)
	}
	if len(cfg.Patterns) != 1 || cfg.Patterns[0].Search != "\t" {
		t.Errorf("Patterns = %v, want tab pattern only", cfg.Patterns)
	}
	rules, err := cfg.Rules()
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(rules) != 2 || rules[0].Kind != styled.Color || rules[0].Parameter != 9 || rules[1].Kind != styled.Bold {
		t.Errorf("unexpected rules %+v", rules)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"unknown field", "colour: red\n", ErrConfigParse},
		{"malformed yaml", "formats: [text\n", ErrConfigParse},
		{"invalid input format", "inputFormat: rtf\n", ErrInvalidConfig},
		{"invalid clipboard format", "formats: [text, rtf]\n", ErrInvalidConfig},
		{"negative buffer step", "bufferStep: -1\n", ErrInvalidConfig},
		{"unknown codepage", "codepage: \"4711\"\n", ErrInvalidConfig},
		{"empty search", "patterns:\n  - search: \"\"\n    replace: x\n", ErrInvalidConfig},
		{"block highlight", "highlights:\n  - pattern: x\n    kind: block\n", ErrInvalidConfig},
		{"color outside palette", "highlights:\n  - pattern: x\n    kind: color\n    color: chartreuse\n", ErrInvalidConfig},
		{"empty match", "highlights:\n  - pattern: \"x*\"\n    kind: bold\n", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cclip.yaml")
	if err := os.WriteFile(path, []byte("bufferStep: 128\n"), 0o600); err != nil {
		t.Fatal(err.Error())
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err.Error())
	}
	if cfg.BufferStep != 128 || len(cfg.Patterns) != 3 {
		t.Errorf("unexpected config %+v", cfg)
	}

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}
