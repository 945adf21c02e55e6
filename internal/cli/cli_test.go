package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	c := NewCLI(Options{Output: &out, ErrorOutput: &errOut})
	c.SetArgs(args)
	err := c.Execute(context.Background())
	return out.String(), errOut.String(), err
}

func writeScenario(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCalculatePrintsReport(t *testing.T) {
	path := writeScenario(t, "make: Ford\nmodel: Focus\nfinanceType: loan\ndeposit: 5000\n")

	out, _, err := run(t, "calculate", "--file", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Cost Analysis: Ford Focus")
	assert.Contains(t, out, "new petrol, loan finance")
	assert.NotContains(t, out, "Monthly Payment:         N/A")
}

func TestCalculateJSON(t *testing.T) {
	path := writeScenario(t, "make: Ford\nmodel: Focus\nfuelPrice: 0.05\nelectricityPrice: 0.5\n")

	out, _, err := run(t, "calculate", "-f", path, "--json", "--locale", "de-DE", "--currency", "EUR")
	require.NoError(t, err)

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "Infinity", summary["result"].(map[string]any)["breakEvenMileage"])
	assert.Equal(t, "EUR", summary["formatted"].(map[string]any)["currency"])
}

func TestCalculateRejectsInvalidScenario(t *testing.T) {
	path := writeScenario(t, "model: Focus\ndriverAge: 12\n")

	_, errOut, err := run(t, "calculate", "--file", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario")
	assert.Contains(t, errOut, "field make is a required field")
	assert.Contains(t, errOut, "field driverAge must be at least 17")
}

func TestCalculateRejectsUnknownLocale(t *testing.T) {
	_, _, err := run(t, "calculate", "--locale", "!!")
	assert.ErrorContains(t, err, "parse locale")
}

func TestBands(t *testing.T) {
	out, _, err := run(t, "bands")
	require.NoError(t, err)

	assert.Contains(t, out, "Band A")
	assert.Contains(t, out, "Band M  unbounded")
}

func TestPostcode(t *testing.T) {
	out, _, err := run(t, "postcode", "sw1a1aa")
	require.NoError(t, err)
	assert.Equal(t, "SW1A 1AA (outward code SW1A)\n", out)

	_, _, err = run(t, "postcode", "nope")
	assert.ErrorContains(t, err, "not a valid UK postcode")

	_, _, err = run(t, "postcode")
	assert.Error(t, err)
}
