package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/summary-agent/internal/types"
)

// -----------------------------------------------------------------------------
// Row Outcome Methods
// -----------------------------------------------------------------------------

// encodeWarnings returns the JSONB value for a warnings list, or nil when empty
func encodeWarnings(warnings []string) ([]byte, error) {
	if len(warnings) == 0 {
		return nil, nil
	}
	return json.Marshal(warnings)
}

// SaveRowOutcome stores the outcome of one input row.
// Saving the same row number twice replaces the earlier outcome.
func (db *DB) SaveRowOutcome(ctx context.Context, runID uuid.UUID, outcome types.RowOutcome) error {
	return saveRowOutcome(ctx, db.pool, runID, outcome)
}

func saveRowOutcome(ctx context.Context, q execer, runID uuid.UUID, outcome types.RowOutcome) error {
	warningsJSON, err := encodeWarnings(outcome.Warnings)
	if err != nil {
		return fmt.Errorf("failed to marshal warnings: %w", err)
	}

	var errorMessage *string
	if outcome.Error != "" {
		errorMessage = &outcome.Error
	}

	_, err = q.Exec(ctx,
		`INSERT INTO batch_rows (run_id, row_number, display_name, pronoun, status, warnings, error_message)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (run_id, row_number) DO UPDATE
		 SET display_name = $3, pronoun = $4, status = $5, warnings = $6, error_message = $7, created_at = NOW()`,
		runID, outcome.Row, outcome.DisplayName, string(outcome.Pronoun), outcome.Status, warningsJSON, errorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to save row %d: %w", outcome.Row, err)
	}
	return nil
}

// ListRowOutcomes retrieves all row outcomes for a run in row order
func (db *DB) ListRowOutcomes(ctx context.Context, runID uuid.UUID) ([]types.RowOutcome, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT row_number, display_name, pronoun, status, warnings, error_message
		 FROM batch_rows WHERE run_id = $1 ORDER BY row_number`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list row outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []types.RowOutcome
	for rows.Next() {
		var outcome types.RowOutcome
		var pronoun string
		var warningsJSON []byte
		var errorMessage *string

		if err := rows.Scan(&outcome.Row, &outcome.DisplayName, &pronoun, &outcome.Status, &warningsJSON, &errorMessage); err != nil {
			return nil, fmt.Errorf("failed to scan row outcome: %w", err)
		}
		outcome.Pronoun = types.Pronoun(pronoun)
		if len(warningsJSON) > 0 {
			if err := json.Unmarshal(warningsJSON, &outcome.Warnings); err != nil {
				return nil, fmt.Errorf("failed to decode warnings for row %d: %w", outcome.Row, err)
			}
		}
		if errorMessage != nil {
			outcome.Error = *errorMessage
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, rows.Err()
}

// SaveReport stores a finished batch report: the run, every row outcome, and the final counts.
// Everything is written in one transaction; on any error nothing is stored.
func (db *DB) SaveReport(ctx context.Context, report *types.BatchReport) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := saveReport(ctx, tx, report); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit run history: %w", err)
	}
	return nil
}

// saveReport writes the run and its rows through q, stopping at the first error
func saveReport(ctx context.Context, q execer, report *types.BatchReport) error {
	runID, err := createRun(ctx, q, RunInput{
		ID:         report.RunID,
		InputFile:  report.InputFile,
		OutputFile: report.OutputFile,
		Provider:   report.Provider,
		Model:      report.Model,
		TotalRows:  report.TotalRows,
	})
	if err != nil {
		return err
	}

	for _, outcome := range report.Rows {
		if err := saveRowOutcome(ctx, q, runID, outcome); err != nil {
			return err
		}
	}

	return completeRun(ctx, q, runID, report.Succeeded, report.Failed)
}
