// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package flags exposes the boolean feature flags of [config.Settings]
// through the OpenFeature SDK, backed by its in-memory provider.
//
// Because flags travel through the configuration resolver, they can be
// defined in YAML (features: new_ui: true) and overridden per environment
// (FEATURES__NEW_UI=false) without touching this package.
package flags

import (
	"context"
	"fmt"

	"github.com/open-feature/go-sdk/openfeature"
	"github.com/open-feature/go-sdk/openfeature/memprovider"

	"github.com/MKhiriev/appkit/internal/config"
	"github.com/MKhiriev/appkit/internal/logger"
)

const (
	variantOn  = "on"
	variantOff = "off"
)

// Client evaluates feature flags for one application domain.
type Client struct {
	of *openfeature.Client
}

// Setup registers an in-memory OpenFeature provider holding the flags from
// set.Features under the application's own domain and returns a Client
// bound to it. Each application constructs its Client explicitly at
// startup; there is no package-level state here.
func Setup(set *config.Settings, log *logger.Logger) (*Client, error) {
	defs := make(map[string]memprovider.InMemoryFlag, len(set.Features))
	names := make([]string, 0, len(set.Features))
	for name, enabled := range set.Features {
		variant := variantOff
		if enabled {
			variant = variantOn
		}
		defs[name] = memprovider.InMemoryFlag{
			Key:            name,
			State:          memprovider.Enabled,
			DefaultVariant: variant,
			Variants: map[string]any{
				variantOn:  true,
				variantOff: false,
			},
		}
		names = append(names, name)
	}

	provider := memprovider.NewInMemoryProvider(defs)
	if err := openfeature.SetNamedProviderAndWait(set.AppName, provider); err != nil {
		return nil, fmt.Errorf("error registering feature flag provider: %w", err)
	}

	log.Debug().Strs("flags", names).Msg("feature flags initialized")

	return &Client{of: openfeature.NewClient(set.AppName)}, nil
}

// Boolean evaluates a boolean flag, returning def when the flag is unknown
// or evaluation fails.
func (c *Client) Boolean(ctx context.Context, flag string, def bool) bool {
	v, err := c.of.BooleanValue(ctx, flag, def, openfeature.EvaluationContext{})
	if err != nil {
		return def
	}

	return v
}
