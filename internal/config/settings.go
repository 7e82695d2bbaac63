// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
)

// Settings is the top-level configuration container for the application.
// It aggregates all sub-configurations and is populated by merging values
// from YAML files and environment variables on top of compiled-in defaults.
//
// A *Settings is built once via [Load] and must not be mutated afterward.
//
// Struct tags:
//   - yaml      — key in the merged YAML document.
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Settings struct {
	// AppName is the short name of the application, used as the feature-flag
	// domain and in startup logs.
	// Env: APP_NAME
	AppName string `yaml:"app_name" env:"APP_NAME"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `yaml:"version" env:"APP_VERSION"`

	// Env selects the runtime environment. The value "prod" activates the
	// production.yaml override layer during [Load].
	// Env: APP_ENV
	Env string `yaml:"-" env:"APP_ENV" envDefault:"dev"`

	// RunningOn describes where the process runs ("local" or "ci").
	// Computed from GITHUB_ACTIONS, never read from files.
	RunningOn string `yaml:"-"`

	// DefaultLLM holds model selection defaults shared by all inference
	// call sites.
	DefaultLLM DefaultLLM `yaml:"default_llm" envPrefix:"DEFAULT_LLM__"`

	// LLM holds cache and retry budgets for inference requests.
	LLM LLM `yaml:"llm" envPrefix:"LLM__"`

	// Logging holds the complete logging configuration consumed by the
	// logger package.
	Logging Logging `yaml:"logging" envPrefix:"LOGGING__"`

	// Features is the typed extensions map holding arbitrary boolean
	// feature flags (features: new_ui: true, or FEATURES__NEW_UI=true).
	Features map[string]bool `yaml:"features"`

	// Keys holds provider API keys. Env-only; never read from files.
	Keys Keys `yaml:"-"`
}

// DefaultLLM holds model selection defaults.
type DefaultLLM struct {
	// DefaultModel is the model identifier used when a call site does not
	// choose one explicitly. Required.
	// Env: DEFAULT_LLM__DEFAULT_MODEL
	DefaultModel string `yaml:"default_model" env:"DEFAULT_MODEL"`

	// FallbackModel is tried when the default model is unavailable.
	// Empty disables fallback.
	// Env: DEFAULT_LLM__FALLBACK_MODEL
	FallbackModel string `yaml:"fallback_model" env:"FALLBACK_MODEL"`

	// Temperature is the default sampling temperature.
	// Env: DEFAULT_LLM__TEMPERATURE
	Temperature float64 `yaml:"temperature" env:"TEMPERATURE"`

	// MaxTokens is the default completion token budget.
	// Env: DEFAULT_LLM__MAX_TOKENS
	MaxTokens int `yaml:"max_tokens" env:"MAX_TOKENS"`
}

// LLM holds cache and retry settings for inference requests.
type LLM struct {
	// CacheEnabled toggles response caching.
	// Env: LLM__CACHE_ENABLED
	CacheEnabled bool `yaml:"cache_enabled" env:"CACHE_ENABLED"`

	// Retry holds the retry budget for transient inference failures.
	Retry Retry `yaml:"retry" envPrefix:"RETRY__"`
}

// Retry holds a bounded exponential backoff budget.
type Retry struct {
	// MaxAttempts is the total number of attempts, including the first.
	// Must be >= 1.
	// Env: LLM__RETRY__MAX_ATTEMPTS
	MaxAttempts int `yaml:"max_attempts" env:"MAX_ATTEMPTS"`

	// MinWait is the initial backoff delay (e.g. "1s"). Bare integers in
	// YAML are interpreted as seconds.
	// Env: LLM__RETRY__MIN_WAIT
	MinWait Duration `yaml:"min_wait" env:"MIN_WAIT"`

	// MaxWait caps the backoff delay. Must be >= MinWait.
	// Env: LLM__RETRY__MAX_WAIT
	MaxWait Duration `yaml:"max_wait" env:"MAX_WAIT"`
}

// Keys holds provider API keys, populated from the environment only.
type Keys struct {
	// Env: OPENAI_API_KEY
	OpenAI string `env:"OPENAI_API_KEY"`
	// Env: ANTHROPIC_API_KEY
	Anthropic string `env:"ANTHROPIC_API_KEY"`
	// Env: GEMINI_API_KEY
	Gemini string `env:"GEMINI_API_KEY"`
	// Env: GROQ_API_KEY
	Groq string `env:"GROQ_API_KEY"`
}

// IsProd reports whether the production override layer is active.
func (s *Settings) IsProd() bool {
	return s.Env == "prod"
}

// Load assembles, merges, and validates the application configuration from
// all available sources, reading YAML files from dir, in the following
// priority order (last source wins for the same key):
//  1. Compiled-in defaults
//  2. settings.yaml, named partials, production.yaml, .settings.yaml
//  3. Environment variables
//
// Returns a fully populated *Settings or an error if any source fails to
// load or the final config fails validation.
func Load(dir string) (*Settings, error) {
	return newSettingsBuilder().
		withFiles(dir).
		withEnv().
		build()
}

// runningOn detects whether the process runs on a developer machine or CI.
func runningOn() string {
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return "ci"
	}

	return "local"
}
