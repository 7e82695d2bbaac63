package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── identifyProvider ──────────────────────────────────────────────────────────

// TestIdentifyProvider verifies the model-name to provider mapping,
// including the OpenAI o-series names that carry no "gpt" substring.
func TestIdentifyProvider(t *testing.T) {
	tests := []struct {
		model    string
		provider string
	}{
		{"gpt-4o", "openai"},
		{"o3-mini", "openai"},
		{"o1", "openai"},
		{"claude-sonnet-4", "anthropic"},
		{"anthropic/claude-3", "anthropic"},
		{"gemini-2.5-flash", "gemini"},
		{"groq/llama-3", "groq"},
		{"mistral-large", "unknown"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.provider, identifyProvider(tt.model))
		})
	}
}

// ── APIKeyFor ─────────────────────────────────────────────────────────────────

// TestAPIKeyFor_ReturnsProviderKey verifies key selection by model name.
func TestAPIKeyFor_ReturnsProviderKey(t *testing.T) {
	cfg := &Settings{
		Keys: Keys{OpenAI: "sk-openai", Gemini: "g-key"},
	}

	key, err := cfg.APIKeyFor("gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, "sk-openai", key)

	key, err = cfg.APIKeyFor("gemini-2.5-flash")
	require.NoError(t, err)
	assert.Equal(t, "g-key", key)
}

// TestAPIKeyFor_FallsBackToDefaultModel verifies that an empty model name
// resolves against the configured default model.
func TestAPIKeyFor_FallsBackToDefaultModel(t *testing.T) {
	cfg := &Settings{
		DefaultLLM: DefaultLLM{DefaultModel: "claude-sonnet-4"},
		Keys:       Keys{Anthropic: "a-key"},
	}

	key, err := cfg.APIKeyFor("")
	require.NoError(t, err)
	assert.Equal(t, "a-key", key)
}

// TestAPIKeyFor_MissingKey verifies the error when the provider key is not
// configured.
func TestAPIKeyFor_MissingKey(t *testing.T) {
	cfg := &Settings{}

	_, err := cfg.APIKeyFor("gpt-4o")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

// TestAPIKeyFor_UnknownProvider verifies the error for unrecognized model
// names.
func TestAPIKeyFor_UnknownProvider(t *testing.T) {
	cfg := &Settings{}

	_, err := cfg.APIKeyFor("mystery-model")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
