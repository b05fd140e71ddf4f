package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/fpa-report/cmd/email"
	"fjacquet/fpa-report/cmd/generate"
	"fjacquet/fpa-report/cmd/rates"
	"fjacquet/fpa-report/cmd/root"
	"fjacquet/fpa-report/cmd/search"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly - this affects ALL new loggers
	configureLogLevelDirectly()

	// 3. Initialize root command and register subcommands
	root.Init()
	root.Cmd.AddCommand(generate.Cmd)
	root.Cmd.AddCommand(rates.Cmd)
	root.Cmd.AddCommand(email.Cmd)
	root.Cmd.AddCommand(search.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances before any logging happens
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
