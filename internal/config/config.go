// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"

	"github.com/jonathan/summary-agent/internal/batch"
	"github.com/jonathan/summary-agent/internal/llm"
	"github.com/jonathan/summary-agent/internal/sheet"
)

// Config represents the CLI configuration that can be loaded from a JSON file
// and overlaid with environment variables.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Provider
	Provider        string `json:"provider,omitempty" env:"LLM_PROVIDER" validate:"omitempty,oneof=azure gemini"`
	AzureEndpoint   string `json:"azure_endpoint,omitempty" env:"AZURE_OPENAI_ENDPOINT" validate:"required_if=Provider azure"`
	AzureDeployment string `json:"azure_deployment,omitempty" env:"AZURE_OPENAI_DEPLOYMENT" validate:"required_if=Provider azure"`
	AzureAPIVersion string `json:"azure_api_version,omitempty" env:"AZURE_OPENAI_API_VERSION"`
	AzureAPIKey     string `json:"azure_api_key,omitempty" env:"AZURE_OPENAI_API_KEY" validate:"required_if=Provider azure"`
	GeminiAPIKey    string `json:"gemini_api_key,omitempty" env:"GEMINI_API_KEY" validate:"required_if=Provider gemini"`
	GeminiModel     string `json:"gemini_model,omitempty" env:"GEMINI_MODEL"`

	// Sampling parameters; each zero field falls back to llm.DefaultSampling
	Sampling llm.Sampling `json:"sampling"`

	// Spreadsheet
	Sheet         string `json:"sheet,omitempty"`          // Input sheet name (first sheet if empty)
	OutputSheet   string `json:"output_sheet,omitempty"`   // Output sheet name
	OutputColumn  string `json:"output_column,omitempty"`  // Appended narrative column
	FailureMarker string `json:"failure_marker,omitempty"` // Value written for failed rows

	// Behavior
	DatabaseURL string `json:"database_url,omitempty" env:"DATABASE_URL"` // PostgreSQL connection URL for run history
	Verbose     bool   `json:"verbose,omitempty"`                         // Print detailed debug information
}

// Defaults returns the configuration used when nothing else is provided.
func Defaults() Config {
	return Config{
		Provider:        string(llm.ProviderAzureOpenAI),
		AzureAPIVersion: llm.DefaultAzureAPIVersion,
		GeminiModel:     llm.DefaultGeminiConfig().Model,
		Sampling:        llm.DefaultSampling(),
		OutputSheet:     sheet.DefaultOutputSheet,
		OutputColumn:    batch.DefaultOutputColumn,
		FailureMarker:   batch.DefaultFailureMarker,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overwrites fields from their environment variables.
// Variables that are unset leave the current value untouched.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.AzureEndpoint == "" {
		result.AzureEndpoint = defaults.AzureEndpoint
	}
	if result.AzureDeployment == "" {
		result.AzureDeployment = defaults.AzureDeployment
	}
	if result.AzureAPIVersion == "" {
		result.AzureAPIVersion = defaults.AzureAPIVersion
	}
	if result.AzureAPIKey == "" {
		result.AzureAPIKey = defaults.AzureAPIKey
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	result.Sampling = result.Sampling.WithDefaults(defaults.Sampling)
	if result.Sheet == "" {
		result.Sheet = defaults.Sheet
	}
	if result.OutputSheet == "" {
		result.OutputSheet = defaults.OutputSheet
	}
	if result.OutputColumn == "" {
		result.OutputColumn = defaults.OutputColumn
	}
	if result.FailureMarker == "" {
		result.FailureMarker = defaults.FailureMarker
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LLMConfig builds the client configuration for the selected provider.
func (c *Config) LLMConfig(systemInstruction string) *llm.Config {
	var cfg *llm.Config
	switch llm.Provider(c.Provider) {
	case llm.ProviderGemini:
		cfg = llm.DefaultGeminiConfig()
		if c.GeminiModel != "" {
			cfg = cfg.WithModel(c.GeminiModel)
		}
	default:
		cfg = llm.DefaultAzureConfig().WithModel(c.AzureDeployment)
		cfg.Endpoint = c.AzureEndpoint
		if c.AzureAPIVersion != "" {
			cfg.APIVersion = c.AzureAPIVersion
		}
	}
	cfg.Sampling = c.Sampling.WithDefaults(cfg.Sampling)
	return cfg.WithSystemInstruction(systemInstruction)
}

// APIKey returns the credential for the selected provider.
func (c *Config) APIKey() string {
	if llm.Provider(c.Provider) == llm.ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.AzureAPIKey
}
