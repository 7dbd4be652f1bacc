package config

import (
	"fmt"
	"os"

	"glpi-insights/internal/stats"

	"gopkg.in/yaml.v3"
)

// LoadRules reads problem-type rules from a YAML file. Sections absent from the
// file keep their defaults. An empty path returns the defaults.
func LoadRules(path string) (stats.ProblemRules, error) {
	rules := stats.DefaultProblemRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	var override stats.ProblemRules
	if err := yaml.Unmarshal(data, &override); err != nil {
		return rules, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	if len(override.Types) > 0 {
		rules.Types = override.Types
	}
	for _, pair := range []struct {
		dst *stats.ProblemRule
		src stats.ProblemRule
	}{
		{&rules.Printer, override.Printer},
		{&rules.Hardware, override.Hardware},
		{&rules.Password, override.Password},
		{&rules.Toner, override.Toner},
	} {
		if len(pair.src.Keywords) > 0 {
			if pair.src.Name == "" {
				pair.src.Name = pair.dst.Name
			}
			*pair.dst = pair.src
		}
	}
	return rules, nil
}
