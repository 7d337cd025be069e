// Package config loads the optional mailgrep configuration file, which
// carries output defaults and named criteria presets.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/charliek/mailgrep/internal/domain"
)

// Config represents the top-level mailgrep configuration
type Config struct {
	Color       string            `yaml:"color"`        // auto|always|never
	LineNumbers bool              `yaml:"line_numbers"` // default for -n
	EnvFile     string            `yaml:"env_file"`     // loaded before preset expansion
	Presets     map[string]Preset `yaml:"-"`
}

// Preset is a named baseline of matcher criteria. Nil pointers leave the
// corresponding setting untouched when the preset is applied.
type Preset struct {
	MinEmails  *int
	MaxEmails  *int
	IgnoreCase *bool
	Fields     map[domain.Field]domain.FieldCriteria
}

// rawConfig is used for initial YAML parsing to handle the flat
// flag-name keys inside presets
type rawConfig struct {
	Color       string                            `yaml:"color"`
	LineNumbers bool                              `yaml:"line_numbers"`
	EnvFile     string                            `yaml:"env_file"`
	Presets     map[string]map[string]interface{} `yaml:"presets"`
}

// Load reads and parses a configuration file
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	if err := CheckFilePermissions(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := expandPresets(cfg, filepath.Dir(path)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse parses configuration from YAML bytes
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	config := &Config{
		Color:       raw.Color,
		LineNumbers: raw.LineNumbers,
		EnvFile:     raw.EnvFile,
		Presets:     make(map[string]Preset),
	}

	for name, value := range raw.Presets {
		preset, err := parsePreset(value)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		config.Presets[name] = preset
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// parsePreset converts one preset map, whose keys are exactly the
// criteria flag names, to its typed form
func parsePreset(raw map[string]interface{}) (Preset, error) {
	preset := Preset{Fields: make(map[domain.Field]domain.FieldCriteria)}

	for key, value := range raw {
		switch key {
		case "min-emails":
			n, err := intValue(value)
			if err != nil {
				return Preset{}, fmt.Errorf("%s: %w", key, err)
			}
			preset.MinEmails = &n
		case "max-emails":
			n, err := intValue(value)
			if err != nil {
				return Preset{}, fmt.Errorf("%s: %w", key, err)
			}
			preset.MaxEmails = &n
		case "ignore-case":
			b, ok := value.(bool)
			if !ok {
				return Preset{}, fmt.Errorf("%s: expected a boolean, got %T", key, value)
			}
			preset.IgnoreCase = &b
		default:
			field, kind, ok := splitCriteriaKey(key)
			if !ok {
				return Preset{}, fmt.Errorf("%w: unknown preset key %q", domain.ErrInvalidConfig, key)
			}
			s, ok := value.(string)
			if !ok {
				return Preset{}, fmt.Errorf("%s: expected a string, got %T", key, value)
			}
			fc := preset.Fields[field]
			switch kind {
			case "contains":
				fc.Contains = s
			case "not-contains":
				fc.NotContains = s
			case "matches":
				fc.Matches = s
			}
			preset.Fields[field] = fc
		}
	}

	return preset, nil
}

// splitCriteriaKey recognizes "<field>-contains", "<field>-not-contains",
// and "<field>-matches" keys.
func splitCriteriaKey(key string) (domain.Field, string, bool) {
	for _, f := range domain.Fields() {
		prefix := string(f) + "-"
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		switch suffix := key[len(prefix):]; suffix {
		case "contains", "not-contains", "matches":
			return f, suffix, true
		}
	}
	return "", "", false
}

// intValue handles YAML scalars that may arrive as int or float64
func intValue(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", value)
	}
}

// Apply overlays the preset onto a Criteria. Only settings the preset
// carries are changed.
func (p Preset) Apply(c *domain.Criteria) {
	if p.MinEmails != nil {
		c.MinEmails = *p.MinEmails
	}
	if p.MaxEmails != nil {
		c.MaxEmails = *p.MaxEmails
	}
	if p.IgnoreCase != nil {
		c.IgnoreCase = *p.IgnoreCase
	}
	for f, fc := range p.Fields {
		merged := c.Fields[f]
		if fc.Contains != "" {
			merged.Contains = fc.Contains
		}
		if fc.NotContains != "" {
			merged.NotContains = fc.NotContains
		}
		if fc.Matches != "" {
			merged.Matches = fc.Matches
		}
		c.Fields[f] = merged
	}
}
