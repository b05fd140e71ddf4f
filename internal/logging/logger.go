// Package logging owns the shared logrus logger and the run-scoped log file.
// Every pipeline run truncates the log file so diagnostics always describe
// the most recent run only.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// GetLogger returns the shared logger instance.
func GetLogger() *logrus.Logger {
	return logger
}

// Configure applies the level, format and log-file settings to the shared
// logger. When file is non-empty the file is truncated and log output goes
// to both stderr and the file. Returns the configured logger.
func Configure(level, format, file string) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			logger.WithError(err).Warn("Could not open log file, logging to stderr only")
		} else {
			logger.SetOutput(io.MultiWriter(os.Stderr, f))
		}
	}

	return logger
}
