package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/summary-agent/internal/sheet"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a sample roster workbook",
	Long:  "Writes an .xlsx roster with the expected identity and competency columns and three example rows.",
	RunE:  runTemplate,
}

var templateOutputFile string

func init() {
	templateCmd.Flags().StringVarP(&templateOutputFile, "out", "o", "", "Path to output .xlsx file")
	_ = templateCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command, _ []string) error {
	if templateOutputFile == "" {
		return fmt.Errorf("--out is required")
	}

	if err := sheet.WriteSampleTemplate(templateOutputFile); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample roster to %s\n", templateOutputFile)
	return nil
}
