package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/summary-agent/internal/config"
	"github.com/jonathan/summary-agent/internal/llm"
)

// overrides holds flag values that take priority over file and environment values
type overrides struct {
	Sheet       string
	Provider    string
	Model       string
	DatabaseURL string
}

// resolveConfig loads the config file (if any), overlays the environment and flags,
// then fills remaining fields with defaults. It does not validate.
func resolveConfig(flags overrides) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
		getLogger().Debug("loaded config", zap.String("path", configPath))
	}

	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}

	if flags.Sheet != "" {
		cfg.Sheet = flags.Sheet
	}
	if flags.Provider != "" {
		cfg.Provider = flags.Provider
	}
	if flags.DatabaseURL != "" {
		cfg.DatabaseURL = flags.DatabaseURL
	}

	merged := cfg.MergeWithDefaults(config.Defaults())

	// --model names the Gemini model or the Azure deployment, depending on provider
	if flags.Model != "" {
		if llm.Provider(merged.Provider) == llm.ProviderGemini {
			merged.GeminiModel = flags.Model
		} else {
			merged.AzureDeployment = flags.Model
		}
	}

	return merged, nil
}
