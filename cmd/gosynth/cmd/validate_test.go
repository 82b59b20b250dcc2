package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommandStructure(t *testing.T) {
	assert.NotNil(t, validateCmd)
	assert.Equal(t, "validate", validateCmd.Use)
	assert.NotEmpty(t, validateCmd.Short)
	assert.NotEmpty(t, validateCmd.Long)
	assert.NotNil(t, validateCmd.RunE)
}

func TestValidateIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "validate" {
			found = true
			break
		}
	}
	assert.True(t, found, "validate command should be added to root command")
}

func TestValidateCommandExample(t *testing.T) {
	// Verify the command has example usage documentation
	assert.Contains(t, validateCmd.Long, "Example:")
	assert.Contains(t, validateCmd.Long, "gosynth validate")
	assert.Contains(t, validateCmd.Long, "Checks performed")
}

func TestRunValidate_Valid(t *testing.T) {
	writeConfig(t, `generators:
  - name: words
    type: strings
    count: 10
    length: 4
  - name: buckets
    type: grouped
    count: 0
`)

	var buf bytes.Buffer
	validateCmd.SetOut(&buf)

	require.NoError(t, runValidate(validateCmd, []string{}))

	output := buf.String()
	assert.Contains(t, output, "Generators found: 2")
	assert.Contains(t, output, "✅ words (strings): count=10 length=4")
	assert.Contains(t, output, "✅ buckets (grouped): count=0")
	assert.Contains(t, output, "All generators validated successfully")
}

func TestRunValidate_Invalid(t *testing.T) {
	writeConfig(t, `generators:
  - name: words
    type: strings
    count: 0
    length: 4
  - name: mystery
    type: blobs
    count: 1
`)

	var buf bytes.Buffer
	validateCmd.SetOut(&buf)

	err := runValidate(validateCmd, []string{})
	require.Error(t, err)

	output := buf.String()
	assert.Contains(t, output, "generators[0].count")
	assert.Contains(t, output, "generators[1].type")
}
