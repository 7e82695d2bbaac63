// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier ones for the same key):
//  1. Compiled-in defaults
//  2. settings.yaml (base file, required)
//  3. Named partial files (*.yaml in the config dir, mounted under their stem)
//  4. production.yaml (only when APP_ENV=prod)
//  5. .settings.yaml (local override, git-ignored)
//  6. Environment variables (nested keys via "__", e.g. LOGGING__VERBOSE)
//
// The main entry point is [Load], which returns an immutable [Settings]
// object meant to be constructed once at startup and passed by reference to
// all consumers.
package config
