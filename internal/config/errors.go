package config

import "errors"

// Errors returned while loading and validating configuration.
var (
	// ErrMissingBaseFile indicates the required settings.yaml base file was
	// not found in the config directory.
	ErrMissingBaseFile = errors.New("required config file not found")
	// ErrConfigConflict indicates a partial config file's top-level key
	// collides with a key already defined in the base file.
	ErrConfigConflict = errors.New("config conflict")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing app name or default model).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidRetryConfigs indicates an unusable retry budget
	// (for example, zero attempts or min wait above max wait).
	ErrInvalidRetryConfigs = errors.New("invalid retry configuration")
	// ErrInvalidRedactionConfigs indicates a redaction rule whose pattern
	// does not compile as a regular expression.
	ErrInvalidRedactionConfigs = errors.New("invalid redaction configuration")
	// ErrMissingAPIKey indicates no API key is configured for the requested
	// model's provider.
	ErrMissingAPIKey = errors.New("api key not configured")
)
