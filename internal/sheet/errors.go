package sheet

import "fmt"

// ReadError represents a workbook that opened but could not be read as a table
type ReadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("read %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("read %s: %s", e.Path, e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
