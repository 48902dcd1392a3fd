// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/summary-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPersonRecord outputs the normalized view of one roster row.
func (p *Printer) PrintPersonRecord(row int, record *types.PersonRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", record.DisplayName()))
	sb.WriteString(fmt.Sprintf("Pronoun:  %s\n", record.Pronoun))

	if len(record.Scores) == 0 {
		sb.WriteString("Scores:   (none)\n")
	} else {
		sb.WriteString("Scores:\n")
		for _, line := range record.CompetencyLines() {
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
	}

	p.printBox(fmt.Sprintf("ROW %d", row), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs the counts of a finished run and the first failed rows.
func (p *Printer) PrintBatchSummary(report *types.BatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:        %s\n", report.RunID))
	if report.Model != "" {
		sb.WriteString(fmt.Sprintf("Model:      %s (%s)\n", report.Model, report.Provider))
	}
	sb.WriteString(fmt.Sprintf("Rows:       %d\n", report.TotalRows))
	sb.WriteString(fmt.Sprintf("Succeeded:  %d\n", report.Succeeded))
	sb.WriteString(fmt.Sprintf("Failed:     %d\n", report.Failed))
	if !report.CompletedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Duration:   %s\n", report.CompletedAt.Sub(report.StartedAt).Round(time.Millisecond)))
	}

	var failed []types.RowOutcome
	warnings := 0
	for _, row := range report.Rows {
		if row.Status == types.RowStatusFailed {
			failed = append(failed, row)
		}
		warnings += len(row.Warnings)
	}
	if warnings > 0 {
		sb.WriteString(fmt.Sprintf("Warnings:   %d\n", warnings))
	}

	if len(failed) > 0 {
		sb.WriteString("\nFailed rows:\n")
		count := min(len(failed), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • row %d  %s\n", failed[i].Row, failed[i].DisplayName))
		}
		if len(failed) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(failed)-maxItemsToShow))
		}
	}

	title := "BATCH COMPLETE"
	if report.Failed > 0 {
		title = fmt.Sprintf("BATCH COMPLETE (%d FAILED)", report.Failed)
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}
