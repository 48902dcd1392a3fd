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

// writeTemplate runs the template command into a temp dir and returns the workbook path
func writeTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.xlsx")

	templateOutputFile = path
	t.Cleanup(func() { templateOutputFile = "" })

	var buf bytes.Buffer
	templateCmd.SetOut(&buf)
	require.NoError(t, runTemplate(templateCmd, nil))
	assert.Contains(t, buf.String(), "Wrote sample roster to")

	return path
}

func TestRunTemplate_WritesReadableRoster(t *testing.T) {
	path := writeTemplate(t)

	table, err := sheet.ReadXLSX(path, "")
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
	assert.NoError(t, roster.DefaultColumns().CheckHeader(table.Header))
	assert.Equal(t, "Dr. Jonas", table.Row(1)["salutation_name"])
}

func TestRunTemplate_RequiresOut(t *testing.T) {
	templateOutputFile = ""

	err := runTemplate(templateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--out")
}
