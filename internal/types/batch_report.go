package types

import (
	"time"

	"github.com/google/uuid"
)

// RowStatus values
const (
	RowStatusSucceeded = "succeeded"
	RowStatusFailed    = "failed"
)

// RowOutcome records what happened to a single input row.
// It deliberately carries no scores and no prompt text.
type RowOutcome struct {
	Row         int      `json:"row"`
	DisplayName string   `json:"display_name"`
	Pronoun     Pronoun  `json:"pronoun"`
	Status      string   `json:"status"`
	Warnings    []string `json:"warnings,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// BatchReport summarizes one generation run over an input table.
type BatchReport struct {
	RunID       uuid.UUID    `json:"run_id"`
	InputFile   string       `json:"input_file,omitempty"`
	OutputFile  string       `json:"output_file,omitempty"`
	Provider    string       `json:"provider,omitempty"`
	Model       string       `json:"model,omitempty"`
	StartedAt   time.Time    `json:"started_at"`
	CompletedAt time.Time    `json:"completed_at"`
	TotalRows   int          `json:"total_rows"`
	Succeeded   int          `json:"succeeded"`
	Failed      int          `json:"failed"`
	Rows        []RowOutcome `json:"rows"`
}

// Record appends an outcome and updates the counters.
func (r *BatchReport) Record(outcome RowOutcome) {
	r.Rows = append(r.Rows, outcome)
	r.TotalRows++
	if outcome.Status == RowStatusSucceeded {
		r.Succeeded++
	} else {
		r.Failed++
	}
}
