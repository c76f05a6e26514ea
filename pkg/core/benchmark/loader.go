package benchmark

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"finhealth/pkg/models"
)

// LoadFromFile replaces or extends the built-in benchmark tables from a
// YAML file keyed by industry code:
//
//	manufacturing:
//	  current_ratio: {excellent: 2.0, good: 1.5, average: 1.2, poor: 0.8}
//	  ...
//
// Intended to run once at process start; callers fall back to the built-in
// tables when the file is absent. Industries not present in the file keep
// their defaults.
func LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read benchmark config: %w", err)
	}

	var raw map[string]Table
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse benchmark config: %w", err)
	}

	merged := make(map[models.Industry]Table, len(defaultTables)+len(raw))
	for ind, t := range defaultTables {
		merged[ind] = t
	}
	for code, t := range raw {
		ind := models.Industry(code)
		if !ind.Valid() {
			return fmt.Errorf("benchmark config references unknown industry %q", code)
		}
		merged[ind] = t
	}

	tables = merged
	return nil
}
