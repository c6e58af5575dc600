package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewLocalCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte("region,total\nnorth,10\nsouth,20\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{path, "--limit", "1"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "region")
	assert.Contains(t, out.String(), "north")
	assert.NotContains(t, out.String(), "south")
	assert.Contains(t, out.String(), "1 row(s)")
}
