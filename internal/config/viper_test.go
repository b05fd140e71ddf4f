package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "process.log", cfg.Log.File)
	assert.Equal(t, "Marsh_McLennan_Revenue_Report.xlsx", cfg.Report.Output)
	assert.Equal(t, "2024", cfg.Report.Year)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "currency_aliases.yaml", cfg.Rates.AliasFile)
	assert.Equal(t, "recipient@example.com", cfg.Email.Recipient)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FPA_LOG_LEVEL", "debug")
	t.Setenv("FPA_REPORT_YEAR", "2025")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "2025", cfg.Report.Year)
}

func TestInitializeConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "FPA_LOG_LEVEL", "loud"},
		{"bad log format", "FPA_LOG_FORMAT", "xml"},
		{"multi-char delimiter", "FPA_CSV_DELIMITER", ";;"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tc.key, tc.value)

			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestValidateConfigEmptyOutput(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Report.Output = ""

	assert.Error(t, validateConfig(cfg))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FPA_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("FPA_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FPA_TEST_KEY_MISSING", "fallback"))
}
