package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdWritesReportAndCharts(t *testing.T) {
	for _, backend := range []string{"gonum", "gochart"} {
		t.Run(backend, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "charts")
			var out bytes.Buffer

			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs([]string{"--out", dir, "--backend", backend})
			require.NoError(t, cmd.Execute())

			assert.Contains(t, out.String(), "Dataset loaded successfully.")
			assert.Contains(t, out.String(), "Analysis complete. 4 charts written.")

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 4)
		})
	}
}

func TestRootCmdRejectsUnknownBackend(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--out", t.TempDir(), "--backend", "ascii"})

	assert.Error(t, cmd.Execute())
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}
