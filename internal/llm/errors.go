package llm

import "fmt"

// maxErrorBody bounds how much of a response body is echoed in error messages
const maxErrorBody = 512

// APIError represents a non-2xx response from a provider's HTTP API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, body)
}
