package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runVerifyCommand(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewVerifyCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVerifyShippedScenarios(t *testing.T) {
	dir := filepath.Join("..", "..", "testdata", "scenarios")

	out, err := runVerifyCommand(t, "text", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS  twin-primes-200")
	assert.Contains(t, out, "0 failed")
	assert.NotContains(t, out, "FAIL")
}

func TestVerifyFailingScenario(t *testing.T) {
	dir := t.TempDir()
	scenario := `
name: wrong-tally
description: Deliberately wrong expectation
max_prime: 200
checks:
  - type: gap_scan
    gap: 2
    expect:
      total_pairs: 99
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrong.yaml"), []byte(scenario), 0644))

	out, err := runVerifyCommand(t, "text", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "FAIL  wrong-tally")
	assert.Contains(t, out, "99 total pairs")
	assert.Contains(t, out, "1 failed")
}

func TestVerifyMixedScenarios(t *testing.T) {
	dir := t.TempDir()
	passing := `
name: a-passing
description: Rates stay within bounds
max_prime: 200
checks:
  - type: rate_bounds
`
	failing := `
name: b-failing
description: Deliberately wrong expectation
max_prime: 200
checks:
  - type: gap_scan
    gap: 2
    expect:
      successful_pairs: 0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(passing), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(failing), 0644))

	out, err := runVerifyCommand(t, "text", dir)
	require.Error(t, err)
	assert.Contains(t, out, "PASS  a-passing")
	assert.Contains(t, out, "FAIL  b-failing")
	assert.Contains(t, out, "1 passed, 1 failed")
}

func TestVerifyJSON(t *testing.T) {
	dir := filepath.Join("..", "..", "testdata", "scenarios")

	out, err := runVerifyCommand(t, "json", dir)
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   VerifySummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Zero(t, resp.Data.Failed)
	assert.Equal(t, len(resp.Data.Scenarios), resp.Data.Passed)
	for _, s := range resp.Data.Scenarios {
		assert.True(t, s.Passed, "scenario %s", s.Name)
		assert.Empty(t, s.Failures)
	}
}

func TestVerifyMissingDir(t *testing.T) {
	_, err := runVerifyCommand(t, "text", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load scenarios")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestVerifyRequiresDirArg(t *testing.T) {
	_, err := runVerifyCommand(t, "text")
	require.Error(t, err)
}
