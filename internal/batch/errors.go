package batch

import "fmt"

// ConfigError represents invalid batch options
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("batch config error: %s", e.Message)
}
