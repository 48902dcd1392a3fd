package roster

import (
	"fmt"
	"strings"
)

// MissingColumnsError represents an input table without its required identity columns
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("input is missing required column(s): %s", strings.Join(e.Columns, ", "))
}
