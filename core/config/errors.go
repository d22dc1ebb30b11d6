package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("config target must not be nil")

	// ErrParseFailed is returned when environment parsing fails, typically
	// because a required variable is missing or a value has the wrong type.
	ErrParseFailed = errors.New("failed to parse environment configuration")
)
