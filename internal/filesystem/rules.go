package filesystem

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules are user-supplied filter additions loaded from a YAML file.
// They extend the built-in exclusion lists, never replace them.
type Rules struct {
	ExcludeDirs []string `yaml:"exclude_dirs"` // extra directory names to prune
	Extensions  []string `yaml:"extensions"`   // extra extensions to allow
	Suffixes    []string `yaml:"suffixes"`     // extra name suffixes to exclude
	Substrings  []string `yaml:"substrings"`   // extra basename substrings to exclude
}

// LoadRules loads filter rules from a YAML file. A missing path returns
// empty rules rather than an error.
func LoadRules(path string) (*Rules, error) {
	if path == "" {
		return &Rules{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Rules{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	return &rules, nil
}
