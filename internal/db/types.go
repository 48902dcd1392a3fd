package db

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus constants
const (
	RunStatusRunning             = "running"
	RunStatusCompleted           = "completed"
	RunStatusCompletedWithErrors = "completed_with_errors"
)

// Run represents a stored batch run
type Run struct {
	ID          uuid.UUID  `json:"id"`
	InputFile   string     `json:"input_file"`
	OutputFile  string     `json:"output_file"`
	Provider    string     `json:"provider"`
	Model       string     `json:"model"`
	Status      string     `json:"status"`
	TotalRows   int        `json:"total_rows"`
	Succeeded   int        `json:"succeeded"`
	Failed      int        `json:"failed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// RunInput represents input for creating a batch run.
// A nil ID is replaced with a fresh one.
type RunInput struct {
	ID         uuid.UUID
	InputFile  string
	OutputFile string
	Provider   string
	Model      string
	TotalRows  int
}
