package roster

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/summary-agent/internal/sheet"
	"github.com/jonathan/summary-agent/internal/types"
)

// Normalize builds a PersonRecord from one row.
// Problems never abort normalization; each one is returned as a warning instead.
func Normalize(row sheet.Row, cols Columns) (types.PersonRecord, []string) {
	var warnings []string

	record := types.PersonRecord{Gender: row[cols.Gender]}
	if salutation := strings.TrimSpace(row[cols.SalutationName]); salutation != "" {
		record.Name = salutation
	} else {
		record.Name = strings.TrimSpace(row[cols.FirstName])
		record.Title = strings.TrimSpace(row[cols.Title])
	}

	pronoun, ok := ResolvePronoun(record.Gender)
	record.Pronoun = pronoun
	if !ok {
		warnings = append(warnings, fmt.Sprintf("invalid or missing gender %q for %s, defaulting to pronoun %q",
			record.Gender, record.DisplayName(), pronoun))
	}

	for _, competency := range cols.Competencies {
		raw := strings.TrimSpace(row[string(competency)])
		if raw == "" {
			continue
		}
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
			warnings = append(warnings, fmt.Sprintf("ignoring non-numeric score %q for %s", raw, competency))
			continue
		}
		record.Scores = append(record.Scores, types.CompetencyScore{Competency: competency, Score: score})
	}

	return record, warnings
}

// ResolvePronoun maps a gender code to a pronoun by exact, case-insensitive match on "M" or "F".
// Any other value yields PronounThey and ok == false.
func ResolvePronoun(gender string) (pronoun types.Pronoun, ok bool) {
	switch strings.ToUpper(gender) {
	case "M":
		return types.PronounHe, true
	case "F":
		return types.PronounShe, true
	default:
		return types.PronounThey, false
	}
}
