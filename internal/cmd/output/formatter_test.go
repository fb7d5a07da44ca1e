package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterkit/rosterkit"
	"github.com/rosterkit/rosterkit/pkg/quality"
	"github.com/rosterkit/rosterkit/pkg/roster"
)

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	_, err = ParseFormat("xml")
	require.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(FormatJSON)

	err := formatter.Format(&buf, map[string]int{"groups": 2})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"groups": 2`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(FormatYAML)

	err := formatter.Format(&buf, map[string]int{"groups": 2})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "groups: 2")
}

func TestTableFormatterRendersRows(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(FormatTable)

	err := formatter.Format(&buf, Data{
		Headers: []string{"Group", "Confidence"},
		Rows:    [][]string{{"grp-1", "0.94"}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "grp-1")
	assert.Contains(t, buf.String(), "0.94")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(FormatTable)

	err := formatter.Format(&buf, map[string]string{"status": "ok"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestHistoryTable(t *testing.T) {
	mergedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	entries := []rosterkit.HistoryEntry{
		{
			GroupID: "grp-1",
			OriginalRecords: []roster.Employee{
				{ID: "emp-1"},
				{ID: "emp-2"},
			},
			MergedRecord: roster.Employee{ID: "merged-1"},
			MergedAt:     mergedAt,
		},
	}

	data := HistoryTable(entries)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, []string{"grp-1", "emp-1, emp-2", "merged-1", "2026-03-14 09:30:00"}, data.Rows[0])
}

func TestAuditTableOrdersIssuesFirst(t *testing.T) {
	report := &quality.Report{
		Issues: []quality.Issue{
			{EmployeeID: "emp-1", Field: roster.FieldName, Message: "missing name"},
		},
		Warnings: []quality.Issue{
			{EmployeeID: "emp-2", Field: roster.FieldCountry, Message: "missing country"},
		},
	}

	data := AuditTable(report)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "issue", data.Rows[0][0])
	assert.Equal(t, "warning", data.Rows[1][0])
}
