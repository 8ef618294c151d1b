// Package config holds the configuration of the clipboard pipeline, loaded from
// a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/npillmayer/cclip/highlight"
	"github.com/npillmayer/cclip/replace"
	"github.com/npillmayer/cclip/styled"
	"github.com/npillmayer/cclip/textfile"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidConfig  = errors.New("invalid config")
)

// MaxConfigSize limits YAML input.
const MaxConfigSize = 1 << 20

// MaxBufferStep is the largest accepted input buffer step.
const MaxBufferStep = 1 << 24

// Config holds all configuration for copying text to the clipboard.
type Config struct {
	Codepage    string            `yaml:"codepage"`    // Windows codepage number or IANA name (empty = UTF-8)
	InputFormat string            `yaml:"inputFormat"` // "text" or "html"
	Formats     []string          `yaml:"formats"`     // clipboard formats: "text", "html"
	BufferStep  int               `yaml:"bufferStep"`  // input buffer growth in bytes
	Patterns    []PatternConfig   `yaml:"patterns"`    // search/replace patterns, in order of priority
	Highlights  []HighlightConfig `yaml:"highlights"`  // regular expressions to format
}

// PatternConfig is a search/replace pair.
type PatternConfig struct {
	Search  string `yaml:"search"`
	Replace string `yaml:"replace"`
}

// HighlightConfig formats all matches of a regular expression.
type HighlightConfig struct {
	Pattern string `yaml:"pattern"`
	Kind    string `yaml:"kind"`  // "bold", "italic", "underline" or "color"
	Color   string `yaml:"color"` // palette color, required for kind "color"
}

// DefaultConfig returns the configuration used without a config file. Its
// patterns replace the HTML markup characters by entities.
func DefaultConfig() *Config {
	return &Config{
		Codepage:    "",
		InputFormat: "text",
		Formats:     []string{"text", "html"},
		BufferStep:  textfile.DefaultStep,
		Patterns: []PatternConfig{
			{Search: "&", Replace: "&amp;"},
			{Search: "<", Replace: "&lt;"},
			{Search: ">", Replace: "&gt;"},
		},
	}
}

// LoadConfig reads a YAML config file. Fields missing in the file keep their
// default values. Unknown fields are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML config data. Fields missing in the data are set to
// their default values; an explicitly empty list of patterns disables the
// default patterns.
func ParseConfig(data []byte) (*Config, error) {
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), MaxConfigSize)
	}
	var cfg Config
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.InputFormat == "" {
		c.InputFormat = def.InputFormat
	}
	if c.Formats == nil {
		c.Formats = def.Formats
	}
	if c.BufferStep == 0 {
		c.BufferStep = def.BufferStep
	}
	if c.Patterns == nil {
		c.Patterns = def.Patterns
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.InputFormat {
	case "text", "html":
	default:
		return fmt.Errorf("%w: inputFormat: invalid value %q (must be text or html)", ErrInvalidConfig, c.InputFormat)
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("%w: formats: at least one clipboard format required", ErrInvalidConfig)
	}
	for i, f := range c.Formats {
		if f != "text" && f != "html" {
			return fmt.Errorf("%w: formats[%d]: invalid value %q (must be text or html)", ErrInvalidConfig, i, f)
		}
	}
	if c.BufferStep < 0 || c.BufferStep > MaxBufferStep {
		return fmt.Errorf("%w: bufferStep: must be between 0 and %d, got %d", ErrInvalidConfig, MaxBufferStep, c.BufferStep)
	}
	if _, err := textfile.LookupCodepage(c.Codepage); err != nil {
		return fmt.Errorf("%w: codepage: %v", ErrInvalidConfig, err)
	}
	if _, err := c.PatternList(); err != nil {
		return err
	}
	if _, err := c.Rules(); err != nil {
		return err
	}
	return nil
}

// HasFormat checks if a clipboard format is selected.
func (c *Config) HasFormat(format string) bool {
	for _, f := range c.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// PatternList converts the configured patterns for the rewriter.
func (c *Config) PatternList() (replace.PatternList, error) {
	list := make(replace.PatternList, 0, len(c.Patterns))
	for i, p := range c.Patterns {
		pattern, err := replace.NewPattern(p.Search, p.Replace)
		if err != nil {
			return nil, fmt.Errorf("%w: patterns[%d]: %v", ErrInvalidConfig, i, err)
		}
		list = append(list, pattern)
	}
	return list, nil
}

// Rules converts the configured highlights to highlighting rules.
func (c *Config) Rules() ([]highlight.Rule, error) {
	rules := make([]highlight.Rule, 0, len(c.Highlights))
	for i, h := range c.Highlights {
		kind, ok := styled.KindFromString(strings.ToLower(h.Kind))
		if !ok || kind == styled.Block {
			return nil, fmt.Errorf("%w: highlights[%d].kind: invalid value %q", ErrInvalidConfig, i, h.Kind)
		}
		var param uint32
		if kind == styled.Color {
			if param, ok = styled.ColorIndex(h.Color); !ok {
				return nil, fmt.Errorf("%w: highlights[%d].color: %q is not a palette color", ErrInvalidConfig, i, h.Color)
			}
		}
		r, err := highlight.NewRule(h.Pattern, kind, param)
		if err != nil {
			return nil, fmt.Errorf("%w: highlights[%d].pattern: %v", ErrInvalidConfig, i, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}
