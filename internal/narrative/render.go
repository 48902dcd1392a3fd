// Package narrative renders person records into prompts and turns them into executive summaries.
package narrative

import (
	"strings"

	"github.com/jonathan/summary-agent/internal/prompts"
	"github.com/jonathan/summary-agent/internal/types"
)

const (
	promptFile           = "summary.json"
	promptKeySummary     = "executive-summary"
	promptKeyInstruction = "system-instruction"
)

// BuildPrompt substitutes the display name, pronoun, and competency lines into the summary template.
// Identical input always yields byte-identical output.
func BuildPrompt(displayName string, pronoun types.Pronoun, competencyLines []string) string {
	template := prompts.MustGet(promptFile, promptKeySummary)
	return prompts.Format(template, map[string]string{
		"SalutationName": displayName,
		"Pronoun":        string(pronoun),
		"PersonData":     formatPersonData(competencyLines),
	})
}

// BuildRecordPrompt renders the prompt for a normalized person record.
func BuildRecordPrompt(record types.PersonRecord) string {
	return BuildPrompt(record.DisplayName(), record.Pronoun, record.CompetencyLines())
}

// SystemInstruction returns the fixed system message that accompanies every prompt.
func SystemInstruction() string {
	return prompts.MustGet(promptFile, promptKeyInstruction)
}

// formatPersonData renders competency lines as a bulleted list
func formatPersonData(lines []string) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(line)
	}
	return sb.String()
}
