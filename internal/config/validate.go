package config

import (
	"fmt"
	"strings"

	"github.com/charliek/mailgrep/internal/domain"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors
func Validate(config *Config) error {
	var errs []ValidationError

	switch config.Color {
	case "", "auto", "always", "never":
	default:
		errs = append(errs, ValidationError{
			Field:   "color",
			Message: fmt.Sprintf("must be auto, always, or never, got %q", config.Color),
		})
	}

	for name, preset := range config.Presets {
		if preset.MinEmails != nil && preset.MaxEmails != nil &&
			*preset.MaxEmails >= 0 && *preset.MinEmails > *preset.MaxEmails {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("presets.%s", name),
				Message: "min-emails exceeds max-emails",
			})
		}
	}

	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	return nil
}
