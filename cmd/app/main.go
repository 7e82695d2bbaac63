package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/appkit/internal/config"
	"github.com/MKhiriev/appkit/internal/flags"
	"github.com/MKhiriev/appkit/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.Load(configDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configs: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Setup(&cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error setting up logging: %v\n", err)
		os.Exit(1)
	}

	flagClient, err := flags.Setup(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up feature flags")
	}

	ctx := log.WithContext(context.Background())
	log.Info().
		Str("app", cfg.AppName).
		Str("version", cfg.Version).
		Str("env", cfg.Env).
		Str("running_on", cfg.RunningOn).
		Bool("health_check", flagClient.Boolean(ctx, "health_check", false)).
		Msg("application started")
}

// configDir resolves the configuration directory, defaulting to ./config.
func configDir() string {
	if dir := os.Getenv("APP_CONFIG_DIR"); dir != "" {
		return dir
	}

	return "config"
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
