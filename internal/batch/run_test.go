package batch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/summary-agent/internal/roster"
	"github.com/jonathan/summary-agent/internal/sheet"
	"github.com/jonathan/summary-agent/internal/types"
)

// recordingGenerator returns a summary per call and fails on the configured call numbers
type recordingGenerator struct {
	failOn  map[int]bool
	records []types.PersonRecord
}

func (g *recordingGenerator) Generate(_ context.Context, record types.PersonRecord) (string, error) {
	g.records = append(g.records, record)
	call := len(g.records)
	if g.failOn[call] {
		return "", errors.New("transport failure")
	}
	return fmt.Sprintf("Summary for %s", record.DisplayName()), nil
}

func sampleTable() *sheet.Table {
	return &sheet.Table{
		Header: []string{"email", "salutation_name", "gender", "Strategic Thinker", "Results Driver", "Unknown Col"},
		Rows: [][]string{
			{"irene.a@example.com", "Irene", "F", "3.66", "3.3", "9"},
			{"jonas.k@example.com", "Dr. Jonas", "M", "3.23", ""},
			{"khasiba.m@example.com", "Khasiba", "F", "3.56", "3.55"},
			{"sam@example.com", "Sam", "", "3"},
		},
	}
}

func TestRun_AllRowsSucceed(t *testing.T) {
	gen := &recordingGenerator{}

	result, err := Run(context.Background(), sampleTable(), Options{Generator: gen})
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputColumn, result.Table.Header[len(result.Table.Header)-1])
	require.Equal(t, 4, result.Table.Len())
	assert.Equal(t, "Summary for Irene", result.Table.Row(0)[DefaultOutputColumn])
	assert.Equal(t, "Summary for Dr. Jonas", result.Table.Row(1)[DefaultOutputColumn])

	assert.Equal(t, 4, result.Report.TotalRows)
	assert.Equal(t, 4, result.Report.Succeeded)
	assert.Equal(t, 0, result.Report.Failed)
	assert.NotEqual(t, "", result.Report.RunID.String())
	assert.False(t, result.Report.CompletedAt.Before(result.Report.StartedAt))
}

func TestRun_NormalizesEachRow(t *testing.T) {
	gen := &recordingGenerator{}

	_, err := Run(context.Background(), sampleTable(), Options{Generator: gen})
	require.NoError(t, err)

	require.Len(t, gen.records, 4)
	assert.Equal(t, types.PronounShe, gen.records[0].Pronoun)
	assert.Equal(t, []string{"Strategic Thinker: 3.66", "Results Driver: 3.3"}, gen.records[0].CompetencyLines())
	assert.Equal(t, types.PronounHe, gen.records[1].Pronoun)
	assert.Equal(t, []string{"Strategic Thinker: 3.23"}, gen.records[1].CompetencyLines())
	assert.Equal(t, types.PronounThey, gen.records[3].Pronoun)
}

func TestRun_FailureIsolatedToOneRow(t *testing.T) {
	gen := &recordingGenerator{failOn: map[int]bool{2: true}}

	result, err := Run(context.Background(), sampleTable(), Options{Generator: gen})
	require.NoError(t, err)

	markers := 0
	for i := 0; i < result.Table.Len(); i++ {
		if result.Table.Row(i)[DefaultOutputColumn] == DefaultFailureMarker {
			markers++
			assert.Equal(t, 1, i, "failure marker should be on the second row")
		}
	}
	assert.Equal(t, 1, markers)
	assert.Equal(t, "Summary for Irene", result.Table.Row(0)[DefaultOutputColumn])
	assert.Equal(t, "Summary for Khasiba", result.Table.Row(2)[DefaultOutputColumn])
	assert.Equal(t, "Summary for Sam", result.Table.Row(3)[DefaultOutputColumn])

	assert.Len(t, gen.records, 4, "rows after the failure are still processed")
	assert.Equal(t, 1, result.Report.Failed)
	assert.Equal(t, types.RowStatusFailed, result.Report.Rows[1].Status)
	assert.Contains(t, result.Report.Rows[1].Error, "transport failure")
}

func TestRun_MissingIdentityColumnMakesNoCalls(t *testing.T) {
	gen := &recordingGenerator{}
	table := &sheet.Table{
		Header: []string{"email", "gender", "Strategic Thinker"},
		Rows:   [][]string{{"irene.a@example.com", "F", "3.66"}},
	}

	result, err := Run(context.Background(), table, Options{Generator: gen})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, gen.records)

	var missing *roster.MissingColumnsError
	assert.ErrorAs(t, err, &missing)
}

func TestRun_MissingGenderColumnMakesNoCalls(t *testing.T) {
	gen := &recordingGenerator{}
	table := &sheet.Table{
		Header: []string{"salutation_name", "Strategic Thinker"},
		Rows:   [][]string{{"Irene", "3.66"}},
	}

	_, err := Run(context.Background(), table, Options{Generator: gen})
	require.Error(t, err)
	assert.Empty(t, gen.records)
}

func TestRun_RequiresGenerator(t *testing.T) {
	_, err := Run(context.Background(), sampleTable(), Options{})
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestRun_RequiresTable(t *testing.T) {
	gen := &recordingGenerator{}

	result, err := Run(context.Background(), nil, Options{Generator: gen})
	require.Error(t, err)
	assert.Nil(t, result)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "table is required")
	assert.Empty(t, gen.records)
}

func TestRun_CustomColumnAndMarker(t *testing.T) {
	gen := &recordingGenerator{failOn: map[int]bool{1: true}}

	result, err := Run(context.Background(), sampleTable(), Options{
		Generator:     gen,
		OutputColumn:  "Narrative",
		FailureMarker: "FAILED",
	})
	require.NoError(t, err)
	assert.Equal(t, "FAILED", result.Table.Row(0)["Narrative"])
}

func TestRun_LogsOneWarningForUnknownGender(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	gen := &recordingGenerator{}

	result, err := Run(context.Background(), sampleTable(), Options{Generator: gen, Logger: zap.New(core)})
	require.NoError(t, err)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "Sam")
	assert.Len(t, result.Report.Rows[3].Warnings, 1)
	assert.Empty(t, result.Report.Rows[0].Warnings)
}

func TestRun_EmitsProgress(t *testing.T) {
	gen := &recordingGenerator{failOn: map[int]bool{3: true}}
	var events []ProgressEvent

	_, err := Run(context.Background(), sampleTable(), Options{
		Generator:  gen,
		OnProgress: func(e ProgressEvent) { events = append(events, e) },
	})
	require.NoError(t, err)

	require.Len(t, events, 8)
	assert.Equal(t, ProgressEvent{Step: StepRowStarted, Row: 1, Total: 4, Name: "Irene"}, events[0])
	assert.Equal(t, StepRowSucceeded, events[1].Step)
	assert.Equal(t, StepRowFailed, events[5].Step)
	assert.Equal(t, 3, events[5].Row)
}

func TestRun_EmptyTable(t *testing.T) {
	gen := &recordingGenerator{}
	table := &sheet.Table{Header: []string{"salutation_name", "gender"}}

	result, err := Run(context.Background(), table, Options{Generator: gen})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Table.Len())
	assert.Equal(t, 0, result.Report.TotalRows)
	assert.Empty(t, gen.records)
}
