// Package config provides environment loading and logging configuration.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"fjacquet/fpa-report/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var once sync.Once

// Logger is the global logger instance shared across the application.
var Logger = logging.GetLogger()

// LoadEnv loads environment variables from a .env file if one exists.
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				Logger.Debug("No .env file found, using environment variables")
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			Logger.Warnf("Error loading .env file: %v", err)
			return
		}
		Logger.Debugf("Loaded environment variables from %s", envFile)
	})
}

// ConfigureLogging applies the logging settings from the given configuration
// and returns the shared logger. The run log file is truncated so the
// diagnostics cover only the current run.
func ConfigureLogging(cfg *Config) *logrus.Logger {
	Logger = logging.Configure(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	return Logger
}

// GetEnv retrieves an environment variable with a fallback value if not set.
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
