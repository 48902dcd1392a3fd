package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/summary-agent/internal/llm"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"provider": "azure",
		"azure_endpoint": "https://example.openai.azure.com",
		"azure_deployment": "gpt-4o",
		"sheet": "Roster",
		"sampling": {"temperature": 0.5, "max_tokens": 400},
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "azure", cfg.Provider)
	assert.Equal(t, "https://example.openai.azure.com", cfg.AzureEndpoint)
	assert.Equal(t, "gpt-4o", cfg.AzureDeployment)
	assert.Equal(t, "Roster", cfg.Sheet)
	assert.InDelta(t, 0.5, cfg.Sampling.Temperature, 1e-6)
	assert.Equal(t, 400, cfg.Sampling.MaxTokens)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestApplyEnv_OverridesFileValues(t *testing.T) {
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://env.openai.azure.com")
	t.Setenv("AZURE_OPENAI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/summaries")

	cfg := &Config{
		AzureEndpoint:   "https://file.openai.azure.com",
		AzureDeployment: "file-deployment",
	}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "https://env.openai.azure.com", cfg.AzureEndpoint)
	assert.Equal(t, "env-key", cfg.AzureAPIKey)
	assert.Equal(t, "postgres://localhost/summaries", cfg.DatabaseURL)
	// Unset variables leave file values alone
	assert.Equal(t, "file-deployment", cfg.AzureDeployment)
}

func TestValidate_AzureRequiresCredentials(t *testing.T) {
	cfg := Defaults()

	err := cfg.Validate()
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := make([]string, 0, len(valErr.Fields))
	for _, f := range valErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"AzureEndpoint", "AzureDeployment", "AzureAPIKey"}, fields)
	assert.Contains(t, err.Error(), "required_if")
}

func TestValidate_GeminiRequiresOnlyGeminiKey(t *testing.T) {
	cfg := Defaults()
	cfg.Provider = "gemini"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GeminiAPIKey")
	assert.NotContains(t, err.Error(), "AzureEndpoint")

	cfg.GeminiAPIKey = "key"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "openrouter"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Provider (oneof)")
}

func TestValidate_NegativeMaxTokens(t *testing.T) {
	cfg := &Config{Provider: "gemini", GeminiAPIKey: "key", Sampling: llm.Sampling{MaxTokens: -1}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MaxTokens")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := Defaults()
	cfg.AzureEndpoint = "https://example.openai.azure.com"
	cfg.AzureDeployment = "gpt-4o"
	cfg.AzureAPIKey = "key"

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		Provider:     "gemini",
		GeminiAPIKey: "custom-key",
		Sheet:        "Roster",
	}

	merged := partial.MergeWithDefaults(Defaults())

	// Custom values should be preserved
	assert.Equal(t, "gemini", merged.Provider)
	assert.Equal(t, "custom-key", merged.GeminiAPIKey)
	assert.Equal(t, "Roster", merged.Sheet)

	// Default values should fill in empty fields
	assert.Equal(t, "Summaries", merged.OutputSheet)
	assert.Equal(t, "Executive Summary", merged.OutputColumn)
	assert.Equal(t, "Error: Failed to generate summary.", merged.FailureMarker)
	assert.Equal(t, llm.DefaultSampling(), merged.Sampling)
	assert.Equal(t, llm.DefaultAzureAPIVersion, merged.AzureAPIVersion)
}

func TestMergeWithDefaults_PartialSamplingKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sampling": {"temperature": 0.5}}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, llm.Sampling{
		Temperature:      0.5,
		MaxTokens:        800,
		TopP:             1.0,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.2,
	}, merged.Sampling)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Provider: "azure",
		Sheet:    "Roster",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "azure", merged.Provider)
	assert.Equal(t, "Roster", merged.Sheet)
	assert.Empty(t, merged.OutputColumn)
}

func TestLLMConfig_Azure(t *testing.T) {
	cfg := Defaults()
	cfg.AzureEndpoint = "https://example.openai.azure.com"
	cfg.AzureDeployment = "gpt-4o"
	cfg.AzureAPIKey = "azure-key"

	llmCfg := cfg.LLMConfig("be concise")

	assert.Equal(t, llm.ProviderAzureOpenAI, llmCfg.Provider)
	assert.Equal(t, "gpt-4o", llmCfg.Model)
	assert.Equal(t, "https://example.openai.azure.com", llmCfg.Endpoint)
	assert.Equal(t, llm.DefaultAzureAPIVersion, llmCfg.APIVersion)
	assert.Equal(t, "be concise", llmCfg.SystemInstruction)
	assert.Equal(t, llm.DefaultSampling(), llmCfg.Sampling)
	assert.Equal(t, "azure-key", cfg.APIKey())
}

func TestLLMConfig_Gemini(t *testing.T) {
	cfg := Config{
		Provider:     "gemini",
		GeminiAPIKey: "gemini-key",
		GeminiModel:  "gemini-2.5-pro",
		Sampling:     llm.Sampling{Temperature: 0.7, MaxTokens: 300},
	}

	llmCfg := cfg.LLMConfig("")

	assert.Equal(t, llm.ProviderGemini, llmCfg.Provider)
	assert.Equal(t, "gemini-2.5-pro", llmCfg.Model)
	assert.Equal(t, 300, llmCfg.Sampling.MaxTokens)
	assert.Equal(t, float32(0.7), llmCfg.Sampling.Temperature)
	// Unset fields fall back to the fixed narrative parameters
	assert.Equal(t, float32(1.0), llmCfg.Sampling.TopP)
	assert.Equal(t, float32(0.5), llmCfg.Sampling.FrequencyPenalty)
	assert.Equal(t, float32(0.2), llmCfg.Sampling.PresencePenalty)
	assert.Equal(t, "gemini-key", cfg.APIKey())
}
