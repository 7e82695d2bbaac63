// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Logging holds the complete logging configuration.
type Logging struct {
	// Verbose enables extra diagnostic output during startup (e.g. echoing
	// the local override file contents).
	// Env: LOGGING__VERBOSE
	Verbose bool `yaml:"verbose" env:"VERBOSE"`

	// Format controls which parts appear in every rendered log line.
	Format Format `yaml:"format" envPrefix:"FORMAT__"`

	// Levels holds the per-level visibility toggles.
	Levels Levels `yaml:"levels" envPrefix:"LEVELS__"`

	// Redaction configures secret and PII scrubbing of log output.
	Redaction Redaction `yaml:"redaction" envPrefix:"REDACTION__"`
}

// Format controls the rendered log line layout. Each part is independently
// toggle-able.
type Format struct {
	// ShowTime includes a HH:MM:SS timestamp.
	// Env: LOGGING__FORMAT__SHOW_TIME
	ShowTime bool `yaml:"show_time" env:"SHOW_TIME"`

	// ShowSessionID includes the process session identifier, colored by a
	// deterministic hash of the id.
	// Env: LOGGING__FORMAT__SHOW_SESSION_ID
	ShowSessionID bool `yaml:"show_session_id" env:"SHOW_SESSION_ID"`

	// Location controls the source-location part (file/function/line).
	Location Location `yaml:"location" envPrefix:"LOCATION__"`
}

// Location controls the source-location part of the log line. The part is
// additionally gated per level via the ShowFor* toggles.
type Location struct {
	// Env: LOGGING__FORMAT__LOCATION__ENABLED
	Enabled bool `yaml:"enabled" env:"ENABLED"`
	// Env: LOGGING__FORMAT__LOCATION__SHOW_FILE
	ShowFile bool `yaml:"show_file" env:"SHOW_FILE"`
	// Env: LOGGING__FORMAT__LOCATION__SHOW_FUNCTION
	ShowFunction bool `yaml:"show_function" env:"SHOW_FUNCTION"`
	// Env: LOGGING__FORMAT__LOCATION__SHOW_LINE
	ShowLine bool `yaml:"show_line" env:"SHOW_LINE"`
	// Env: LOGGING__FORMAT__LOCATION__SHOW_FOR_DEBUG
	ShowForDebug bool `yaml:"show_for_debug" env:"SHOW_FOR_DEBUG"`
	// Env: LOGGING__FORMAT__LOCATION__SHOW_FOR_INFO
	ShowForInfo bool `yaml:"show_for_info" env:"SHOW_FOR_INFO"`
	// Env: LOGGING__FORMAT__LOCATION__SHOW_FOR_WARN
	ShowForWarn bool `yaml:"show_for_warn" env:"SHOW_FOR_WARN"`
	// Env: LOGGING__FORMAT__LOCATION__SHOW_FOR_ERROR
	ShowForError bool `yaml:"show_for_error" env:"SHOW_FOR_ERROR"`
}

// Levels holds static per-level visibility toggles. Call sites may override
// individual levels when initializing the logger.
type Levels struct {
	// Env: LOGGING__LEVELS__DEBUG
	Debug bool `yaml:"debug" env:"DEBUG"`
	// Env: LOGGING__LEVELS__INFO
	Info bool `yaml:"info" env:"INFO"`
	// Env: LOGGING__LEVELS__WARN
	Warn bool `yaml:"warn" env:"WARN"`
	// Env: LOGGING__LEVELS__ERROR
	Error bool `yaml:"error" env:"ERROR"`
	// Env: LOGGING__LEVELS__FATAL
	Fatal bool `yaml:"fatal" env:"FATAL"`
}

// Redaction configures log scrubbing.
type Redaction struct {
	// Enabled toggles all scrubbing. When false log records pass through
	// unmodified.
	// Env: LOGGING__REDACTION__ENABLED
	Enabled bool `yaml:"enabled" env:"ENABLED"`

	// UseDefaultPII enables the built-in detectors for emails, phone
	// numbers, URLs, IP addresses, and credit card numbers.
	// Env: LOGGING__REDACTION__USE_DEFAULT_PII
	UseDefaultPII bool `yaml:"use_default_pii" env:"USE_DEFAULT_PII"`

	// Patterns are the custom redaction rules, applied after the built-in
	// detectors in a single linear pass.
	Patterns []Rule `yaml:"patterns"`
}

// Rule is a single redaction rule: every match of Regex is replaced with
// Placeholder in log output.
type Rule struct {
	// Name identifies the rule in validation errors.
	Name string `yaml:"name"`

	// Regex must compile as a Go regular expression.
	Regex string `yaml:"regex"`

	// Placeholder replaces each match (e.g. "[REDACTED_API_KEY]").
	Placeholder string `yaml:"placeholder"`
}
