// Package roster turns spreadsheet rows into normalized person records.
package roster

import "github.com/jonathan/summary-agent/internal/types"

// Default identity column names
const (
	ColumnSalutationName = "salutation_name"
	ColumnFirstName      = "first_name"
	ColumnTitle          = "title"
	ColumnGender         = "gender"
)

// Columns describes which headers carry the identity fields and which competencies are recognized.
type Columns struct {
	SalutationName string
	FirstName      string
	Title          string
	Gender         string
	Competencies   []types.Competency
}

// DefaultColumns returns the layout of the standard roster template.
func DefaultColumns() Columns {
	return Columns{
		SalutationName: ColumnSalutationName,
		FirstName:      ColumnFirstName,
		Title:          ColumnTitle,
		Gender:         ColumnGender,
		Competencies:   types.AllCompetencies(),
	}
}

// ScoreColumns returns the header names of the competency columns.
func (c Columns) ScoreColumns() []string {
	names := make([]string, len(c.Competencies))
	for i, competency := range c.Competencies {
		names[i] = string(competency)
	}
	return names
}

// CheckHeader verifies that a header carries the required identity columns:
// the gender column and at least one of the salutation-name or first-name columns.
func (c Columns) CheckHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	if !present[c.SalutationName] && !present[c.FirstName] {
		missing = append(missing, c.SalutationName+" (or "+c.FirstName+")")
	}
	if !present[c.Gender] {
		missing = append(missing, c.Gender)
	}

	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}
