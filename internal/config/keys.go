// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"regexp"
	"strings"
)

// openAIOSeriesPattern matches OpenAI reasoning model names like "o1",
// "o3-mini" that carry no "gpt" substring.
var openAIOSeriesPattern = regexp.MustCompile(`^o(\d+)(-mini)?`)

// identifyProvider maps a model name to its provider identifier.
// Unknown names yield "unknown".
func identifyProvider(modelName string) string {
	name := strings.ToLower(modelName)

	switch {
	case strings.Contains(name, "gpt") || openAIOSeriesPattern.MatchString(name):
		return "openai"
	case strings.Contains(name, "claude") || strings.Contains(name, "anthropic"):
		return "anthropic"
	case strings.Contains(name, "gemini"):
		return "gemini"
	case strings.Contains(name, "groq"):
		return "groq"
	default:
		return "unknown"
	}
}

// APIKeyFor returns the API key for the provider of the given model name.
// An empty modelName falls back to the configured default model.
//
// Returns [ErrMissingAPIKey] when the provider is unknown or its key is not
// set in the environment.
func (s *Settings) APIKeyFor(modelName string) (string, error) {
	model := modelName
	if model == "" {
		model = s.DefaultLLM.DefaultModel
	}

	provider := identifyProvider(model)
	keys := map[string]string{
		"openai":    s.Keys.OpenAI,
		"anthropic": s.Keys.Anthropic,
		"gemini":    s.Keys.Gemini,
		"groq":      s.Keys.Groq,
	}

	key, ok := keys[provider]
	if !ok {
		return "", fmt.Errorf("%w: no provider known for model %q", ErrMissingAPIKey, model)
	}
	if key == "" {
		return "", fmt.Errorf("%w: set %s_API_KEY for model %q",
			ErrMissingAPIKey, strings.ToUpper(provider), model)
	}

	return key, nil
}
