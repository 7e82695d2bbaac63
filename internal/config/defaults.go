package config

import "time"

// defaultSettings returns the compiled-in defaults, the lowest layer of the
// precedence chain. File layers and environment variables are applied on
// top of this.
func defaultSettings() *Settings {
	return &Settings{
		Env: "dev",
		DefaultLLM: DefaultLLM{
			Temperature: 1.0,
			MaxTokens:   4096,
		},
		LLM: LLM{
			CacheEnabled: true,
			Retry: Retry{
				MaxAttempts: 3,
				MinWait:     Duration(1 * time.Second),
				MaxWait:     Duration(30 * time.Second),
			},
		},
		Logging: Logging{
			Format: Format{
				ShowTime:      true,
				ShowSessionID: true,
				Location: Location{
					Enabled:      true,
					ShowFile:     true,
					ShowFunction: true,
					ShowLine:     true,
					ShowForDebug: true,
					ShowForInfo:  false,
					ShowForWarn:  true,
					ShowForError: true,
				},
			},
			Levels: Levels{
				Debug: true,
				Info:  true,
				Warn:  true,
				Error: true,
				Fatal: true,
			},
			Redaction: Redaction{
				Enabled:       true,
				UseDefaultPII: true,
			},
		},
		Features: map[string]bool{},
	}
}
