package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"binomial-pricer/internal/model"

	"gopkg.in/yaml.v3"
)

// LoadScenarios reads a scenarios file. The format follows the extension:
// .json is JSON, .yaml/.yml is YAML.
func LoadScenarios(path string) ([]model.Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f model.ScenarioFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(raw, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &f)
	default:
		return nil, fmt.Errorf("unsupported scenarios file extension: %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%s: no scenarios", path)
	}
	for i := range f.Scenarios {
		if f.Scenarios[i].Name == "" {
			f.Scenarios[i].Name = fmt.Sprintf("scenario-%d", i)
		}
	}
	return f.Scenarios, nil
}
