package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

type settingsBuilder struct {
	cfg *Settings
	err error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		cfg: defaultSettings(),
	}
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	b.cfg.RunningOn = runningOn()

	return b.cfg, b.cfg.validate()
}

// withFiles decodes the merged YAML file layers on top of the current
// settings. Keys absent from the files leave the defaults untouched.
func (b *settingsBuilder) withFiles(dir string) *settingsBuilder {
	layers, err := loadFileLayers(dir)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	raw, err := yaml.Marshal(layers)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error encoding merged config: %w", err))
		return b
	}

	if err := yaml.Unmarshal(raw, b.cfg); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error decoding merged config: %w", err))
		return b
	}

	return b
}

// withEnv applies environment variables directly onto the current settings,
// so an explicitly set empty or false value still overrides the file layers.
func (b *settingsBuilder) withEnv() *settingsBuilder {
	if err := parseEnv(b.cfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	featureFlagsFromEnv(b.cfg)

	return b
}
