package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)
	out := buf.String()
	assert.Contains(t, out, "maturity CLI")
	assert.Contains(t, out, "Outputs:  csv, json, parquet, text, xlsx")
	assert.Contains(t, out, "Backends: mysql, none, postgresql, sqlite")
}

func TestCommandTree(t *testing.T) {
	for _, name := range []string{"gaps", "goals", "indicators", "priorities", "questions", "charts", "serve", "mcp", "history", "version"} {
		t.Run(name, func(t *testing.T) {
			found, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, found.Name())
		})
	}

	for _, name := range []string{"status", "clear", "export", "migrate"} {
		t.Run("history "+name, func(t *testing.T) {
			found, _, err := rootCmd.Find([]string{"history", name})
			require.NoError(t, err)
			assert.Equal(t, name, found.Name())
		})
	}
}

func TestFlags(t *testing.T) {
	for _, name := range []string{"output", "output-file", "goals", "no-goals", "dimension", "bucket", "history-backend", "config"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.NotNil(t, chartsCmd.Flags().Lookup("out-dir"))
	assert.NotNil(t, serveCmd.Flags().Lookup("watch"))
	assert.NotNil(t, historyMigrateCmd.Flags().Lookup("target-version"))
}
