package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/summary-agent/internal/batch"
	"github.com/jonathan/summary-agent/internal/config"
	"github.com/jonathan/summary-agent/internal/db"
	"github.com/jonathan/summary-agent/internal/llm"
	"github.com/jonathan/summary-agent/internal/narrative"
	"github.com/jonathan/summary-agent/internal/observability"
	"github.com/jonathan/summary-agent/internal/roster"
	"github.com/jonathan/summary-agent/internal/schemas"
	"github.com/jonathan/summary-agent/internal/sheet"
	"github.com/jonathan/summary-agent/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an executive summary for every row of a roster workbook",
	Long: `Reads the roster from --in, generates one narrative per row and writes the roster with an
appended "Executive Summary" column to --out. A row whose generation fails gets a failure marker
and the run continues.

Configuration can be loaded from a JSON file using --config. Environment variables override
config file values, and command-line flags override both.`,
	RunE: runGenerate,
}

var (
	generateInputFile   string
	generateOutputFile  string
	generateSheet       string
	generateReportFile  string
	generateProvider    string
	generateModel       string
	generateDatabaseURL string
)

func init() {
	generateCmd.Flags().StringVarP(&generateInputFile, "in", "i", "", "Path to input roster .xlsx file")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Path to output .xlsx file")
	generateCmd.Flags().StringVar(&generateSheet, "sheet", "", "Input sheet name (defaults to the first sheet)")
	generateCmd.Flags().StringVar(&generateReportFile, "report", "", "Path to write the batch report JSON (optional)")
	generateCmd.Flags().StringVar(&generateProvider, "provider", "", "LLM provider: azure or gemini (defaults to LLM_PROVIDER or azure)")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Gemini model or Azure deployment name")
	generateCmd.Flags().StringVar(&generateDatabaseURL, "db-url", "", "PostgreSQL connection URL for run history (optional, defaults to DATABASE_URL env var)")

	_ = generateCmd.MarkFlagRequired("in")
	_ = generateCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	log := getLogger()
	out := cmd.OutOrStdout()

	if generateInputFile == "" || generateOutputFile == "" {
		return fmt.Errorf("--in and --out are required")
	}

	cfg, err := resolveConfig(overrides{
		Sheet:       generateSheet,
		Provider:    generateProvider,
		Model:       generateModel,
		DatabaseURL: generateDatabaseURL,
	})
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 1: Read and check the roster before any external call
	_, _ = fmt.Fprintf(out, "Reading roster from %s...\n", generateInputFile)
	table, err := sheet.ReadXLSX(generateInputFile, cfg.Sheet)
	if err != nil {
		return err
	}
	columns := roster.DefaultColumns()
	if err := columns.CheckHeader(table.Header); err != nil {
		return err
	}

	// Step 2: Build the LLM client
	client, err := llm.NewClient(ctx, cfg.LLMConfig(narrative.SystemInstruction()), cfg.APIKey())
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	var generator batch.Generator = narrative.NewGenerator(client)
	if verbose {
		generator = &printingGenerator{next: generator, printer: observability.NewPrinter(out)}
	}

	// Step 3: Generate
	result, err := batch.Run(ctx, table, batch.Options{
		Columns:       columns,
		Generator:     generator,
		OutputColumn:  cfg.OutputColumn,
		FailureMarker: cfg.FailureMarker,
		Logger:        log,
		OnProgress:    progressPrinter(out),
	})
	if err != nil {
		return err
	}

	report := result.Report
	report.InputFile = generateInputFile
	report.OutputFile = generateOutputFile
	report.Provider = cfg.Provider
	report.Model = client.Model()

	// Step 4: Write outputs
	if err := sheet.WriteXLSX(generateOutputFile, cfg.OutputSheet, result.Table, columns.ScoreColumns()...); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Wrote %d summaries to %s\n", report.TotalRows, generateOutputFile)

	if generateReportFile != "" {
		if err := writeReport(generateReportFile, report, log); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Wrote batch report to %s\n", generateReportFile)
	}

	// Step 5: Persist run history (optional)
	saveRunHistory(ctx, cfg, report, log)

	observability.NewPrinter(out).PrintBatchSummary(report)
	return nil
}

// progressPrinter prints one line per row as the batch advances
func progressPrinter(out io.Writer) batch.ProgressCallback {
	return func(event batch.ProgressEvent) {
		switch event.Step {
		case batch.StepRowStarted:
			_, _ = fmt.Fprintf(out, "[%d/%d] Generating summary for %s...\n", event.Row, event.Total, event.Name)
		case batch.StepRowFailed:
			_, _ = fmt.Fprintf(out, "[%d/%d] Failed: %s\n", event.Row, event.Total, event.Message)
		}
	}
}

// printingGenerator prints each normalized record before generating its summary
type printingGenerator struct {
	next    batch.Generator
	printer *observability.Printer
	row     int
}

func (g *printingGenerator) Generate(ctx context.Context, record types.PersonRecord) (string, error) {
	g.row++
	g.printer.PrintPersonRecord(g.row, &record)
	return g.next.Generate(ctx, record)
}

// writeReport validates the report against its schema and writes it as JSON.
// A schema that cannot be loaded is logged and skipped; an invalid report is an error.
func writeReport(path string, report *types.BatchReport, log *zap.Logger) error {
	if err := schemas.ValidateBatchReport(report); err != nil {
		var loadErr *schemas.SchemaLoadError
		if !errors.As(err, &loadErr) {
			return fmt.Errorf("batch report failed schema validation: %w", err)
		}
		log.Warn("skipping batch report schema validation", zap.Error(err))
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write batch report: %w", err)
	}
	return nil
}

// saveRunHistory stores the report when a database is configured.
// Database problems are logged and never fail the command.
func saveRunHistory(ctx context.Context, cfg config.Config, report *types.BatchReport, log *zap.Logger) {
	if cfg.DatabaseURL == "" {
		return
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	database, err := db.Connect(connectCtx, cfg.DatabaseURL)
	if err != nil {
		log.Warn("could not connect to database, run history not saved", zap.Error(err))
		return
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		log.Warn("could not prepare run history tables", zap.Error(err))
		return
	}
	if err := database.SaveReport(ctx, report); err != nil {
		log.Warn("could not save run history", zap.Error(err))
		return
	}
	log.Info("run history saved", zap.String("run_id", report.RunID.String()))
}
