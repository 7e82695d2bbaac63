// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dario.cat/mergo"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	// baseFileName is the required base configuration file.
	baseFileName = "settings.yaml"
	// productionFileName is merged on top of the base only when APP_ENV=prod.
	productionFileName = "production.yaml"
	// localFileName is the optional git-ignored local override, the highest
	// priority file layer.
	localFileName = ".settings.yaml"
)

// reservedFileNames are excluded from the partial-file glob.
var reservedFileNames = map[string]struct{}{
	baseFileName:       {},
	productionFileName: {},
	localFileName:      {},
}

// loadFileLayers reads and merges all YAML configuration layers from dir
// into one raw document, in ascending priority:
//
//	settings.yaml < named partials < production.yaml (if active) < .settings.yaml
//
// Named partials are every other *.yaml file in dir (sorted by name,
// symlinks skipped); each is mounted under a top-level key equal to its
// file stem. A stem colliding with a key already present is a hard error.
//
// Missing base file and malformed YAML in any file are hard errors naming
// the offending file.
func loadFileLayers(dir string) (map[string]any, error) {
	merged, err := readYAMLMap(filepath.Join(dir, baseFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingBaseFile, filepath.Join(dir, baseFileName))
		}
		return nil, err
	}

	if err := mountPartials(dir, merged); err != nil {
		return nil, err
	}

	if os.Getenv("APP_ENV") == "prod" {
		prodPath := filepath.Join(dir, productionFileName)
		prod, err := readYAMLMap(prodPath)
		switch {
		case os.IsNotExist(err):
			log.Debug().Str("file", prodPath).Msg("production config not found, skipping")
		case err != nil:
			return nil, err
		default:
			if err := mergo.Merge(&merged, prod, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("error merging %s: %w", prodPath, err)
			}
			log.Warn().Str("file", prodPath).Msg("overriding base config with production config")
		}
	}

	localPath := filepath.Join(dir, localFileName)
	local, err := readYAMLMap(localPath)
	switch {
	case os.IsNotExist(err):
		// no local override, nothing to do
	case err != nil:
		return nil, err
	default:
		if err := mergo.Merge(&merged, local, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s: %w", localPath, err)
		}
		log.Warn().Str("file", localPath).Msg("overriding base config with local config")
	}

	return merged, nil
}

// mountPartials merges every non-reserved *.yaml file in dir into merged
// under the file's stem as top-level key.
func mountPartials(dir string, merged map[string]any) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("error listing config dir %s: %w", dir, err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		name := filepath.Base(path)
		if _, reserved := reservedFileNames[name]; reserved {
			continue
		}

		// symlinks could point outside the config dir
		info, err := os.Lstat(path)
		if err != nil {
			return fmt.Errorf("error reading config file %s: %w", path, err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			log.Warn().Str("file", path).Msg("skipping symlink config file")
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if _, exists := merged[stem]; exists {
			return fmt.Errorf("%w: key %q from %q already exists in %s",
				ErrConfigConflict, stem, name, baseFileName)
		}

		partial, err := readYAMLMap(path)
		if err != nil {
			return err
		}
		if len(partial) == 0 {
			continue
		}

		merged[stem] = map[string]any(partial)
		log.Debug().Str("file", name).Str("key", stem).Msg("loaded split config")
	}

	return nil
}

// readYAMLMap parses a single YAML file into a generic mapping. An empty
// file yields an empty map. The caller distinguishes a missing file via
// os.IsNotExist on the returned error.
func readYAMLMap(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if m == nil {
		m = map[string]any{}
	}

	return m, nil
}
