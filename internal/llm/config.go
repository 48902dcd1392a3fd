// Package llm provides centralized LLM configuration and client abstractions.
// This package enables switching between hosted providers without touching callers.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderAzureOpenAI is an Azure OpenAI chat-completions deployment
	ProviderAzureOpenAI Provider = "azure"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultAzureAPIVersion is the Azure OpenAI REST API version used for chat completions.
const DefaultAzureAPIVersion = "2024-02-01"

// Sampling holds the generation parameters sent with every request.
type Sampling struct {
	Temperature      float32 `json:"temperature"`
	MaxTokens        int     `json:"max_tokens"`
	TopP             float32 `json:"top_p"`
	FrequencyPenalty float32 `json:"frequency_penalty"`
	PresencePenalty  float32 `json:"presence_penalty"`
}

// DefaultSampling returns the fixed sampling parameters for narrative generation.
func DefaultSampling() Sampling {
	return Sampling{
		Temperature:      0.3,
		MaxTokens:        800,
		TopP:             1.0,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.2,
	}
}

// WithDefaults fills every zero field of s from defaults.
// A zero value means "not set", so an explicit 0 cannot override a non-zero default.
func (s Sampling) WithDefaults(defaults Sampling) Sampling {
	if s.Temperature == 0 {
		s.Temperature = defaults.Temperature
	}
	if s.MaxTokens == 0 {
		s.MaxTokens = defaults.MaxTokens
	}
	if s.TopP == 0 {
		s.TopP = defaults.TopP
	}
	if s.FrequencyPenalty == 0 {
		s.FrequencyPenalty = defaults.FrequencyPenalty
	}
	if s.PresencePenalty == 0 {
		s.PresencePenalty = defaults.PresencePenalty
	}
	return s
}

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	// Model is the Gemini model name, or the deployment name for Azure OpenAI
	Model string
	// Endpoint is the Azure OpenAI resource endpoint; unused for Gemini
	Endpoint          string
	APIVersion        string
	SystemInstruction string
	Sampling          Sampling
}

// DefaultConfig returns the default configuration (Azure OpenAI)
func DefaultConfig() *Config {
	return DefaultAzureConfig()
}

// DefaultAzureConfig returns the default Azure OpenAI configuration.
// Endpoint and deployment have no sensible defaults and must be supplied.
func DefaultAzureConfig() *Config {
	return &Config{
		Provider:   ProviderAzureOpenAI,
		APIVersion: DefaultAzureAPIVersion,
		Sampling:   DefaultSampling(),
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "gemini-2.5-flash",
		Sampling: DefaultSampling(),
	}
}

// WithModel returns a copy of the Config using a different model or deployment
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	newConfig.Model = model
	return &newConfig
}

// WithSystemInstruction returns a copy of the Config using the given system instruction
func (c *Config) WithSystemInstruction(instruction string) *Config {
	newConfig := *c
	newConfig.SystemInstruction = instruction
	return &newConfig
}
