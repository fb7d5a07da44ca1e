package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/rosterkit/rosterkit/pkg/errors"
	"github.com/rosterkit/rosterkit/pkg/logging"
)

// LoadFile reads a list of employee records from a YAML or JSON file.
// The format is chosen by file extension; anything that is not .json is
// parsed as YAML (goccy/go-yaml accepts JSON input as well).
func LoadFile(path string) ([]Employee, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var employees []Employee
	if isJSON(path) {
		if err := json.Unmarshal(data, &employees); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &employees); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	}

	if err := validateIDs(employees); err != nil {
		return nil, err
	}

	logging.Debug().Str("path", path).Int("records", len(employees)).Msg("Loaded roster file")
	return employees, nil
}

// validateIDs rejects record sets whose IDs cannot anchor merge
// provenance: every record needs a non-blank ID and no two records may
// share one.
func validateIDs(employees []Employee) error {
	seen := make(map[string]bool, len(employees))
	for i := range employees {
		id := strings.TrimSpace(employees[i].ID)
		if id == "" {
			return errors.NewValidationError("id", i, fmt.Sprintf("record %d has no id", i))
		}
		if seen[id] {
			return errors.NewValidationError("id", id, fmt.Sprintf("record id %q is not unique", id))
		}
		seen[id] = true
	}
	return nil
}

// WriteFile writes employee records to a YAML or JSON file, chosen by
// extension.
func WriteFile(path string, employees []Employee) error {
	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(employees, "", "  ")
		if err != nil {
			return errors.WrapParse("json", path, err)
		}
		data = append(data, '\n')
	} else {
		data, err = yaml.MarshalWithOptions(employees, yaml.Indent(2))
		if err != nil {
			return errors.WrapParse("yaml", path, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	logging.Debug().Str("path", path).Int("records", len(employees)).Msg("Wrote roster file")
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
