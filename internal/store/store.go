// Package store provides loading of the optional currency-alias mapping.
// Source files occasionally carry non-ISO currency spellings ("US Dollar",
// "usd"); the alias file maps them to the codes used by the rate table so
// the conversion join can still match.
package store

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/fpa-report/internal/logging"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// AliasStore loads currency aliases from a YAML file.
type AliasStore struct {
	FilePath string
}

// NewAliasStore creates a store for the given alias file path.
func NewAliasStore(filePath string) *AliasStore {
	return &AliasStore{FilePath: filePath}
}

// Load reads the alias mapping. A missing file is not an error: the store
// returns an empty mapping and the conversion join proceeds on raw codes.
// Alias keys are matched case-insensitively; values are upper-cased codes.
func (s *AliasStore) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField(logging.FieldFile, s.FilePath).Debug("No currency alias file found")
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("error reading alias file: %w", err)
	}

	raw := map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing alias file: %w", err)
	}

	aliases := make(map[string]string, len(raw))
	for alias, code := range raw {
		aliases[strings.ToUpper(strings.TrimSpace(alias))] = strings.ToUpper(strings.TrimSpace(code))
	}

	log.WithFields(logrus.Fields{
		logging.FieldFile:  s.FilePath,
		logging.FieldCount: len(aliases),
	}).Debug("Loaded currency aliases")
	return aliases, nil
}

// Resolve maps a currency spelling through the alias table. Currencies
// without an alias pass through unchanged so the conversion join keeps its
// exact-match semantics when no alias file is present.
func Resolve(aliases map[string]string, currency string) string {
	if code, ok := aliases[strings.ToUpper(strings.TrimSpace(currency))]; ok {
		return code
	}
	return currency
}
