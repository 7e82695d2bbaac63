// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"regexp"
)

// validate checks that the final merged [Settings] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (s *Settings) validate() error {
	if s.AppName == "" {
		return fmt.Errorf("%w: app_name must not be empty", ErrInvalidAppConfigs)
	}

	if s.DefaultLLM.DefaultModel == "" {
		return fmt.Errorf("%w: default_llm.default_model must not be empty", ErrInvalidAppConfigs)
	}

	if s.LLM.Retry.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts must be >= 1, got %d",
			ErrInvalidRetryConfigs, s.LLM.Retry.MaxAttempts)
	}

	if s.LLM.Retry.MinWait > s.LLM.Retry.MaxWait {
		return fmt.Errorf("%w: min_wait %s exceeds max_wait %s",
			ErrInvalidRetryConfigs, s.LLM.Retry.MinWait, s.LLM.Retry.MaxWait)
	}

	for _, rule := range s.Logging.Redaction.Patterns {
		if _, err := regexp.Compile(rule.Regex); err != nil {
			return fmt.Errorf("%w: rule %q: %v", ErrInvalidRedactionConfigs, rule.Name, err)
		}
	}

	return nil
}
