package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterkit/rosterkit/pkg/roster"
)

func TestNewApp(t *testing.T) {
	application, err := New("1.2.3", "abc123", "2026-01-15", "test")
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", application.Version())
	assert.NotNil(t, application.Config())
	assert.NotNil(t, application.Logger())
}

func TestAppEngineFromConfig(t *testing.T) {
	application, err := New("dev", "", "", "")
	require.NoError(t, err)

	engine, err := application.Engine()
	require.NoError(t, err)
	assert.NotNil(t, engine)
}

func TestVersionCommand(t *testing.T) {
	application, err := New("9.9.9", "", "", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	cmd := application.NewVersionCommand()
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)

	assert.Contains(t, buf.String(), "rosterkit 9.9.9")
}

func TestExecuteUnknownCommand(t *testing.T) {
	application, err := New("dev", "", "", "")
	require.NoError(t, err)

	err = application.Execute(context.Background(), []string{"no-such-command"})
	require.Error(t, err)
}

func TestExecuteRejectsUnknownFormat(t *testing.T) {
	application, err := New("dev", "", "", "")
	require.NoError(t, err)

	err = application.Execute(context.Background(), []string{"--format", "xml", "version"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

// writeTestRoster writes a roster with one duplicate pair (emp-1, emp-2)
// and one distinct record.
func writeTestRoster(t *testing.T, path string) {
	t.Helper()
	content := `- id: emp-1
  name: John Doe
  title: Engineer
  country: US
  salary:
    amount: 100000
    currency: USD
- id: emp-2
  name: "Doe, John"
  title: Engineer
  country: US
  salary:
    amount: 102000
    currency: USD
- id: emp-3
  name: Alice Nakamura
  title: Product Manager
  country: JP
  salary:
    amount: 140000
    currency: JPY
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestMergeCommandWritesFileAndPrintsHistory(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "roster.yaml")
	out := filepath.Join(dir, "merged.yaml")
	writeTestRoster(t, in)

	application, err := New("dev", "", "", "")
	require.NoError(t, err)
	application.Config().Format = "table"

	var buf bytes.Buffer
	cmd := application.NewMergeCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{in, "--out", out})
	require.NoError(t, cmd.Execute())

	merged, err := roster.LoadFile(out)
	require.NoError(t, err)
	require.Len(t, merged, 2)

	var found bool
	for _, emp := range merged {
		if len(emp.MergedFrom) > 0 {
			found = true
			assert.ElementsMatch(t, []string{"emp-1", "emp-2"}, emp.MergedFrom)
		}
	}
	assert.True(t, found, "expected a record carrying merge provenance")

	// The merged roster went to the file; stdout shows the audit log.
	assert.Contains(t, buf.String(), "emp-1, emp-2")
}
