package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{"debug level", "debug", logrus.DebugLevel},
		{"warn level", "warn", logrus.WarnLevel},
		{"mixed case", "ERROR", logrus.ErrorLevel},
		{"invalid falls back to info", "loud", logrus.InfoLevel},
		{"empty falls back to info", "", logrus.InfoLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := Configure(tc.level, "text", "")
			assert.Equal(t, tc.expected, l.GetLevel())
		})
	}
}

func TestConfigureTruncatesLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "process.log")
	require.NoError(t, os.WriteFile(logFile, []byte("stale entries from previous run\n"), 0600))

	l := Configure("info", "text", logFile)
	l.Info("fresh run")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "stale entries")
	assert.Contains(t, string(content), "fresh run")
}

func TestGetLoggerReturnsShared(t *testing.T) {
	assert.Same(t, GetLogger(), GetLogger())
}

func TestFieldConstants(t *testing.T) {
	assert.Equal(t, "file_path", FieldFile)
	assert.Equal(t, "folder", FieldFolder)
	assert.Equal(t, "count", FieldCount)
	assert.Equal(t, "currency", FieldCurrency)
	assert.Equal(t, "rate", FieldRate)
	assert.Equal(t, "delimiter", FieldDelimiter)
	assert.Equal(t, "output_file", FieldOutputFile)
}
