// Package batch runs summary generation over every row of an input table.
package batch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/summary-agent/internal/roster"
	"github.com/jonathan/summary-agent/internal/sheet"
	"github.com/jonathan/summary-agent/internal/types"
)

// Defaults for the appended output column
const (
	DefaultOutputColumn  = "Executive Summary"
	DefaultFailureMarker = "Error: Failed to generate summary."
)

// Progress steps
const (
	StepRowStarted   = "row_started"
	StepRowSucceeded = "row_succeeded"
	StepRowFailed    = "row_failed"
)

// Generator turns a person record into narrative text
type Generator interface {
	Generate(ctx context.Context, record types.PersonRecord) (string, error)
}

// ProgressEvent represents a progress update during a batch run
type ProgressEvent struct {
	Step    string `json:"step"`
	Row     int    `json:"row"`
	Total   int    `json:"total"`
	Name    string `json:"name"`
	Message string `json:"message,omitempty"`
}

// ProgressCallback is called when batch progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for a batch run
type Options struct {
	Columns       roster.Columns
	Generator     Generator
	OutputColumn  string
	FailureMarker string
	Logger        *zap.Logger
	OnProgress    ProgressCallback
}

// Result is the output of a batch run
type Result struct {
	Table  *sheet.Table
	Report *types.BatchReport
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *Options, event ProgressEvent) {
	if opts.OnProgress != nil {
		opts.OnProgress(event)
	}
}

// Run generates one summary per row, in order.
// A table without the required identity columns is rejected before the generator is called.
// A failed row gets the failure marker and the run moves on to the next row.
func Run(ctx context.Context, table *sheet.Table, opts Options) (*Result, error) {
	if table == nil {
		return nil, &ConfigError{Message: "table is required"}
	}
	if opts.Generator == nil {
		return nil, &ConfigError{Message: "generator is required"}
	}
	if opts.Columns.Gender == "" {
		opts.Columns = roster.DefaultColumns()
	}
	if opts.OutputColumn == "" {
		opts.OutputColumn = DefaultOutputColumn
	}
	if opts.FailureMarker == "" {
		opts.FailureMarker = DefaultFailureMarker
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := opts.Columns.CheckHeader(table.Header); err != nil {
		return nil, err
	}

	report := &types.BatchReport{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
		Rows:      make([]types.RowOutcome, 0, table.Len()),
	}
	logger = logger.With(zap.String("run_id", report.RunID.String()))

	summaries := make([]string, 0, table.Len())
	total := table.Len()

	for i := 0; i < total; i++ {
		rowNum := i + 1
		record, warnings := roster.Normalize(table.Row(i), opts.Columns)
		name := record.DisplayName()

		for _, w := range warnings {
			logger.Warn(w, zap.Int("row", rowNum), zap.String("name", name))
		}

		emitProgress(&opts, ProgressEvent{Step: StepRowStarted, Row: rowNum, Total: total, Name: name})

		outcome := types.RowOutcome{
			Row:         rowNum,
			DisplayName: name,
			Pronoun:     record.Pronoun,
			Warnings:    warnings,
		}

		summary, err := opts.Generator.Generate(ctx, record)
		if err != nil {
			logger.Error("summary generation failed", zap.Int("row", rowNum), zap.String("name", name), zap.Error(err))
			summaries = append(summaries, opts.FailureMarker)
			outcome.Status = types.RowStatusFailed
			outcome.Error = err.Error()
			emitProgress(&opts, ProgressEvent{Step: StepRowFailed, Row: rowNum, Total: total, Name: name, Message: err.Error()})
		} else {
			logger.Debug("summary generated", zap.Int("row", rowNum), zap.String("name", name), zap.Int("chars", len(summary)))
			summaries = append(summaries, summary)
			outcome.Status = types.RowStatusSucceeded
			emitProgress(&opts, ProgressEvent{Step: StepRowSucceeded, Row: rowNum, Total: total, Name: name})
		}

		report.Record(outcome)
	}

	report.CompletedAt = time.Now().UTC()

	return &Result{
		Table:  table.WithColumn(opts.OutputColumn, summaries),
		Report: report,
	}, nil
}
