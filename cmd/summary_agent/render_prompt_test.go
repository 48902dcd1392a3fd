package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/summary-agent/internal/roster"
	"github.com/jonathan/summary-agent/internal/sheet"
)

func runRender(t *testing.T, in string, row int) (string, error) {
	t.Helper()
	renderInputFile = in
	renderRow = row
	t.Cleanup(func() {
		renderInputFile = ""
		renderRow = 1
	})

	var buf bytes.Buffer
	renderPromptCmd.SetOut(&buf)
	err := runRenderPrompt(renderPromptCmd, nil)
	return buf.String(), err
}

func TestRunRenderPrompt_SelectedRow(t *testing.T) {
	path := writeTemplate(t)

	output, err := runRender(t, path, 2)
	require.NoError(t, err)

	assert.Contains(t, output, "Input Data for Dr. Jonas")
	assert.Contains(t, output, "Thereafter use the pronoun **He**")
	assert.Contains(t, output, "- Strategic Thinker: 3.23")
	assert.NotContains(t, output, "Irene")
}

func TestRunRenderPrompt_RowOutOfRange(t *testing.T) {
	path := writeTemplate(t)

	_, err := runRender(t, path, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	_, err = runRender(t, path, 0)
	require.Error(t, err)
}

func TestRunRenderPrompt_MissingIdentityColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	table := &sheet.Table{
		Header: []string{"email", "Strategic Thinker"},
		Rows:   [][]string{{"irene.a@example.com", "3.66"}},
	}
	require.NoError(t, sheet.WriteXLSX(path, "Sheet1", table))

	_, err := runRender(t, path, 1)
	require.Error(t, err)

	var missing *roster.MissingColumnsError
	assert.ErrorAs(t, err, &missing)
}
