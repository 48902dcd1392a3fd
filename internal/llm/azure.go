package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// AzureOpenAIClient implements Client against an Azure OpenAI chat-completions deployment
type AzureOpenAIClient struct {
	client *openai.Client
	config *Config
}

// NewAzureOpenAIClient creates a client for the deployment named by config.Model
func NewAzureOpenAIClient(config *Config, apiKey string) (*AzureOpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config.Endpoint == "" {
		return nil, fmt.Errorf("Azure OpenAI endpoint is required")
	}
	if config.Model == "" {
		return nil, fmt.Errorf("Azure OpenAI deployment name is required")
	}

	clientConfig := openai.DefaultAzureConfig(apiKey, config.Endpoint)
	clientConfig.APIVersion = config.APIVersion
	if clientConfig.APIVersion == "" {
		clientConfig.APIVersion = DefaultAzureAPIVersion
	}
	// The model field already carries the deployment name; keep it as given
	clientConfig.AzureModelMapperFunc = func(model string) string { return model }
	clientConfig.HTTPClient = &http.Client{Timeout: 120 * time.Second}

	return &AzureOpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// GenerateContent sends the system instruction and prompt as a chat completion
func (c *AzureOpenAIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if c.config.SystemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: c.config.SystemInstruction,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:            c.config.Model,
		Messages:         messages,
		Temperature:      c.config.Sampling.Temperature,
		MaxTokens:        c.config.Sampling.MaxTokens,
		TopP:             c.config.Sampling.TopP,
		FrequencyPenalty: c.config.Sampling.FrequencyPenalty,
		PresencePenalty:  c.config.Sampling.PresencePenalty,
	})
	if err != nil {
		return "", wrapAzureError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}

// Model returns the deployment name
func (c *AzureOpenAIClient) Model() string {
	return c.config.Model
}

// Close is a no-op; the HTTP client holds no resources that need releasing
func (c *AzureOpenAIClient) Close() error {
	return nil
}

// wrapAzureError turns SDK status errors into APIError so callers see one error type per provider
func wrapAzureError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &APIError{StatusCode: reqErr.HTTPStatusCode, Body: reqErr.Error()}
	}
	return fmt.Errorf("chat completion request failed: %w", err)
}
