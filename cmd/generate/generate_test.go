package generate_test

import (
	"testing"

	"fjacquet/fpa-report/cmd/generate"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCommandMetadata(t *testing.T) {
	assert.Equal(t, "generate", generate.Cmd.Use)
	assert.Contains(t, generate.Cmd.Short, "report")
	assert.NotNil(t, generate.Cmd.RunE)
}

func TestGenerateCommandFlags(t *testing.T) {
	ratesFlag := generate.Cmd.Flags().Lookup("rates")
	if assert.NotNil(t, ratesFlag) {
		assert.Equal(t, "r", ratesFlag.Shorthand)
	}

	outputFlag := generate.Cmd.Flags().Lookup("output")
	if assert.NotNil(t, outputFlag) {
		assert.Equal(t, "o", outputFlag.Shorthand)
	}

	assert.NotNil(t, generate.Cmd.Flags().Lookup("from"))
	assert.NotNil(t, generate.Cmd.Flags().Lookup("to"))
	assert.NotNil(t, generate.Cmd.Flags().Lookup("csv-dir"))
}
