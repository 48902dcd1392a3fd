package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/summary-agent/internal/narrative"
	"github.com/jonathan/summary-agent/internal/observability"
	"github.com/jonathan/summary-agent/internal/roster"
	"github.com/jonathan/summary-agent/internal/sheet"
)

var renderPromptCmd = &cobra.Command{
	Use:   "render-prompt",
	Short: "Print the prompt for one roster row without calling an LLM",
	Long:  "Reads the roster, normalizes the selected row and prints the exact prompt that generate would send for it.",
	RunE:  runRenderPrompt,
}

var (
	renderInputFile string
	renderSheet     string
	renderRow       int
)

func init() {
	renderPromptCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to input roster .xlsx file")
	renderPromptCmd.Flags().StringVar(&renderSheet, "sheet", "", "Input sheet name (defaults to the first sheet)")
	renderPromptCmd.Flags().IntVar(&renderRow, "row", 1, "1-based data row to render")
	_ = renderPromptCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(renderPromptCmd)
}

func runRenderPrompt(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if renderInputFile == "" {
		return fmt.Errorf("--in is required")
	}

	cfg, err := resolveConfig(overrides{Sheet: renderSheet})
	if err != nil {
		return err
	}

	table, err := sheet.ReadXLSX(renderInputFile, cfg.Sheet)
	if err != nil {
		return err
	}
	columns := roster.DefaultColumns()
	if err := columns.CheckHeader(table.Header); err != nil {
		return err
	}
	if renderRow < 1 || renderRow > table.Len() {
		return fmt.Errorf("row %d out of range: roster has %d data rows", renderRow, table.Len())
	}

	record, warnings := roster.Normalize(table.Row(renderRow-1), columns)
	for _, w := range warnings {
		getLogger().Warn(w, zap.Int("row", renderRow))
	}

	if verbose {
		observability.NewPrinter(out).PrintPersonRecord(renderRow, &record)
	}

	_, _ = fmt.Fprintln(out, narrative.BuildRecordPrompt(record))
	return nil
}
