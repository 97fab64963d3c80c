//go:build !windows

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBenchmarkEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("runs real shell commands")
	}

	dest := filepath.Join(t.TempDir(), "results.json")

	root := newRootCommand()
	root.SetArgs([]string{
		"--style", "none",
		"--runs", "2",
		"--export-json", dest,
		"true",
	})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var decoded struct {
		Results []struct {
			Command   string    `json:"command"`
			Mean      float64   `json:"mean"`
			Times     []float64 `json:"times"`
			ExitCodes []*int    `json:"exit_codes"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Results, 1)
	assert.Equal(t, "true", decoded.Results[0].Command)
	assert.Len(t, decoded.Results[0].Times, 2)
	assert.Len(t, decoded.Results[0].ExitCodes, 2)
}

func TestRunRejectsTooManyCommandNames(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{
		"--style", "none",
		"--command-name", "a",
		"--command-name", "b",
		"true",
	})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many --command-name options")
}

func TestRunRejectsPrepareCountMismatch(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{
		"--style", "none",
		"--prepare", "x",
		"--prepare", "y",
		"true",
	})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'--prepare'")
}

func TestRunRejectsBadParameterScan(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{
		"--style", "none",
		"--parameter-scan", "x 5 1",
		"echo {x}",
	})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty parameter range")
}
