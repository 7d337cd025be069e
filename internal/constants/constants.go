// Package constants provides shared configuration values used across the mailgrep application.
package constants

// Configuration file defaults
var (
	// ConfigFileCandidates are the default config filenames searched in
	// the working directory, in order
	ConfigFileCandidates = []string{
		"mailgrep.yaml",
		"mailgrep.yml",
		".mailgrep.yaml",
		".mailgrep.yml",
	}
)

// Email count bounds
const (
	// DefaultMinEmails is the default minimum number of emails a line
	// must contain. A negative value disables the lower bound.
	DefaultMinEmails = 1

	// DefaultMaxEmails is the default maximum number of emails a line
	// may contain. A negative value disables the upper bound.
	DefaultMaxEmails = -1
)

// Pattern limits
const (
	// MaxPatternLength is the maximum allowed length for filter patterns
	// to prevent potential DoS attacks from excessively complex patterns
	MaxPatternLength = 256
)

// Buffer sizes
const (
	// ScannerBufferSize is the initial buffer size for line scanning
	ScannerBufferSize = 64 * 1024 // 64KB

	// ScannerMaxBufferSize is the maximum buffer size for line scanning
	ScannerMaxBufferSize = 1024 * 1024 // 1MB
)

// Exit codes follow the grep convention.
const (
	// ExitMatch means at least one line matched
	ExitMatch = 0

	// ExitNoMatch means no line matched
	ExitNoMatch = 1

	// ExitError means a usage or configuration error occurred
	ExitError = 2
)
