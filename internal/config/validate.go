package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one field that failed validation
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

// ValidationError represents an invalid configuration
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Tag))
	}
	return fmt.Sprintf("config error: invalid fields: %s", strings.Join(parts, ", "))
}

var validate = validator.New()

// Validate checks that the configuration has valid values.
// Credentials for the selected provider are required, so this should run after
// file, environment and flag values have been merged.
func (c *Config) Validate() error {
	if c.Sampling.MaxTokens < 0 {
		return &ValidationError{Fields: []FieldError{{Field: "Sampling.MaxTokens", Tag: "gte=0"}}}
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config error: %w", err)
	}

	result := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		result.Fields = append(result.Fields, FieldError{Field: fe.Field(), Tag: fe.Tag()})
	}
	return result
}
