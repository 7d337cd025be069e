package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"

	"github.com/charliek/mailgrep/internal/constants"
	"github.com/charliek/mailgrep/internal/domain"
)

// LoadEnvFile reads a .env file and returns the variables as a map
func LoadEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("env file not found: %s", path)
	}

	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	return env, nil
}

// expandPresets expands ${VAR} references in preset string values. The
// process environment takes precedence over the config's env_file.
func expandPresets(cfg *Config, configDir string) error {
	var fileEnv map[string]string
	if cfg.EnvFile != "" {
		env, err := LoadEnvFile(resolvePath(cfg.EnvFile, configDir))
		if err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
		fileEnv = env
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileEnv[key]
	}

	for name, preset := range cfg.Presets {
		for f, fc := range preset.Fields {
			fc.Contains = os.Expand(fc.Contains, lookup)
			fc.NotContains = os.Expand(fc.NotContains, lookup)
			fc.Matches = os.Expand(fc.Matches, lookup)
			preset.Fields[f] = fc
		}
		cfg.Presets[name] = preset
	}
	return nil
}

// resolvePath resolves a potentially relative path against a base directory
func resolvePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

// FindConfigFile searches for a config file in standard locations.
// Returns an empty string when none exists; running without a config
// file is the common case.
func FindConfigFile() string {
	for _, name := range constants.ConfigFileCandidates {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

// Preset looks up a named preset.
func (c *Config) Preset(name string) (Preset, error) {
	preset, ok := c.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", domain.ErrUnknownPreset, name)
	}
	return preset, nil
}

// CheckFilePermissions checks if a file has secure permissions.
// On Unix-like systems, it verifies the file is not world-writable.
// Returns an error if the file has insecure permissions.
func CheckFilePermissions(path string) error {
	// Skip permission check on Windows
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("checking file permissions: %w", err)
	}

	mode := info.Mode()

	// World-writable = others have write (0002)
	if mode.Perm()&0002 != 0 {
		return fmt.Errorf("config file %s has insecure permissions: world-writable files can be modified by any user. Please run: chmod o-w %s", path, path)
	}

	return nil
}
