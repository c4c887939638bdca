package catalog

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// MinRecords is the smallest catalog that can produce a full choice set.
const MinRecords = 4

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) ([]Amendment, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var recs []Amendment
	if err := yaml.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode amendments: %w", err)
	}
	if err := validateRecords(recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// validateRecords performs the checks a JSON schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateRecords(recs []Amendment) error {
	var errs []string

	if len(recs) < MinRecords {
		errs = append(errs, fmt.Sprintf("catalog has %d amendments, need at least %d", len(recs), MinRecords))
	}

	ids := make(map[int]bool, len(recs))
	titles := make(map[string]bool, len(recs))
	for _, a := range recs {
		if ids[a.ID] {
			errs = append(errs, fmt.Sprintf("duplicate amendment ID: %d", a.ID))
		}
		ids[a.ID] = true

		if titles[a.Title] {
			errs = append(errs, fmt.Sprintf("duplicate amendment title: %q", a.Title))
		}
		titles[a.Title] = true
	}

	if len(errs) > 0 {
		return errors.New("invalid catalog:\n  " + strings.Join(errs, "\n  "))
	}
	return nil
}
