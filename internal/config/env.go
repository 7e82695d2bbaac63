// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// featureEnvPrefix marks environment variables that override entries of the
// [Settings.Features] extensions map, e.g. FEATURES__NEW_UI=true.
const featureEnvPrefix = "FEATURES__"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [Settings] and its nested types. Only variables that are
// actually set touch the struct, so file-layer values survive unset vars.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// featureFlagsFromEnv overrides entries of the Features map from
// FEATURES__* environment variables. The flag name is the lowercased
// remainder after the prefix; non-boolean values are ignored.
func featureFlagsFromEnv(cfg *Settings) {
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, featureEnvPrefix) {
			continue
		}

		name := strings.ToLower(strings.TrimPrefix(key, featureEnvPrefix))
		if name == "" {
			continue
		}

		enabled, err := strconv.ParseBool(value)
		if err != nil {
			continue
		}

		if cfg.Features == nil {
			cfg.Features = make(map[string]bool)
		}
		cfg.Features[name] = enabled
	}
}
