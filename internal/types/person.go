// Package types provides type definitions for structured data used throughout the summary agent.
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Competency is one of the fixed leadership-assessment categories.
type Competency string

// Recognized competencies, in canonical order.
const (
	StrategicThinker       Competency = "Strategic Thinker"
	ImpactfulDecisionMaker Competency = "Impactful Decision Maker"
	EffectiveCollaborator  Competency = "Effective Collaborator"
	TalentNurturer         Competency = "Talent Nurturer"
	ResultsDriver          Competency = "Results Driver"
	CustomerAdvocate       Competency = "Customer Advocate"
	TransformationEnabler  Competency = "Transformation Enabler"
	InnovationExplorer     Competency = "Innovation Explorer"
)

// AllCompetencies returns the recognized competencies in canonical order.
// The returned slice is a fresh copy and may be modified by the caller.
func AllCompetencies() []Competency {
	return []Competency{
		StrategicThinker,
		ImpactfulDecisionMaker,
		EffectiveCollaborator,
		TalentNurturer,
		ResultsDriver,
		CustomerAdvocate,
		TransformationEnabler,
		InnovationExplorer,
	}
}

// IsKnownCompetency reports whether label names a recognized competency.
func IsKnownCompetency(label string) bool {
	for _, c := range AllCompetencies() {
		if string(c) == label {
			return true
		}
	}
	return false
}

// Pronoun is the subject pronoun used in a narrative after the opening sentence.
type Pronoun string

// Pronoun values
const (
	PronounHe   Pronoun = "He"
	PronounShe  Pronoun = "She"
	PronounThey Pronoun = "They"
)

// CompetencyScore pairs a competency with the person's numeric score for it.
type CompetencyScore struct {
	Competency Competency `json:"competency"`
	Score      float64    `json:"score"`
}

// Line formats the score as "label: value" using the shortest decimal form of the value.
func (s CompetencyScore) Line() string {
	return fmt.Sprintf("%s: %s", s.Competency, strconv.FormatFloat(s.Score, 'f', -1, 64))
}

// PersonRecord is the normalized view of one spreadsheet row.
// It is built per row and discarded once the prompt has been rendered.
type PersonRecord struct {
	Name    string            `json:"name"`
	Title   string            `json:"title,omitempty"`
	Gender  string            `json:"gender,omitempty"`
	Pronoun Pronoun           `json:"pronoun"`
	Scores  []CompetencyScore `json:"scores"`
}

// DisplayName returns the name used in the prompt, prefixed with the title when one is set.
func (p PersonRecord) DisplayName() string {
	if p.Title == "" {
		return p.Name
	}
	return strings.TrimSpace(p.Title + " " + p.Name)
}

// CompetencyLines returns one "label: value" line per score, in score order.
func (p PersonRecord) CompetencyLines() []string {
	lines := make([]string, 0, len(p.Scores))
	for _, s := range p.Scores {
		lines = append(lines, s.Line())
	}
	return lines
}
