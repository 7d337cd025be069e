package domain

import "errors"

// Domain errors
var (
	ErrInvalidPattern  = errors.New("invalid filter pattern")
	ErrConfigNotFound  = errors.New("config file not found")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrUnknownPreset   = errors.New("unknown preset")
	ErrUnknownEncoding = errors.New("unknown input encoding")
)
