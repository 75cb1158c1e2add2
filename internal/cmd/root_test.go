package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "design.md")
	dest := filepath.Join(dir, "migrations", "001_initial_schema.sql")

	require.NoError(t, os.WriteFile(source, []byte("```sql\nSELECT 1;\n```\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, run(source, dest, &out))

	assert.Equal(t, "Done\n", out.String())

	sql, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;\n", string(sql))
}

func TestRunMissingSource(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	err := run(filepath.Join(dir, "absent.md"), filepath.Join(dir, "out.sql"), &out)

	require.Error(t, err)
	assert.Empty(t, out.String(), "no completion notice on failure")
}

func TestExecuteRejectsArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := Execute([]string{"unexpected"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr.String())
}
