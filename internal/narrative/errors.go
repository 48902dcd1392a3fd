package narrative

import "fmt"

// GenerationError represents a failed attempt to generate a summary for one person
type GenerationError struct {
	Name    string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed for %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("generation failed for %s: %s", e.Name, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
