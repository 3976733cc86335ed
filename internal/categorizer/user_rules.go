package categorizer

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"fintrack/internal/fileutils"
	"fintrack/internal/logging"
	"fintrack/internal/models"
)

// RuleConfig is one user-defined rule in the YAML rules file.
type RuleConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// RulesConfig is the top-level structure of the YAML rules file:
//
//	categories:
//	  - name: TRANSPORT
//	    keywords: [shared bike, 共享单车]
type RulesConfig struct {
	Categories []RuleConfig `yaml:"categories"`
}

// LoadUserRules appends rules from a YAML file to the engine. User rules are
// evaluated after the built-in table and before the default fallback, so the
// built-in precedence is unaffected. A missing file is not an error; rules
// naming a category outside the vocabulary are skipped with a warning.
func (e *Engine) LoadUserRules(path string) error {
	if !fileutils.FileExists(path) {
		e.log.WithField(logging.FieldFile, path).Debug("No user rules file found")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading rules file %s: %w", path, err)
	}

	var config RulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("error parsing rules file %s: %w", path, err)
	}

	loaded := 0
	for _, rc := range config.Categories {
		category, err := models.ParseCategory(rc.Name)
		if err != nil {
			e.log.WithField(logging.FieldCategory, rc.Name).Warn("Skipping user rule for unknown category")
			continue
		}
		if len(rc.Keywords) == 0 {
			continue
		}
		e.rules = append(e.rules, Rule{Category: category, Keywords: rc.Keywords})
		loaded++
	}

	e.log.WithFields(logrus.Fields{
		logging.FieldFile:  path,
		logging.FieldCount: loaded,
	}).Debug("Loaded user categorization rules")
	return nil
}
