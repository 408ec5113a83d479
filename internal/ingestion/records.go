package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/ljc0311/storyvid/internal/types"
)

var recordValidator = validator.New(validator.WithRequiredStructEnabled())

// LoadProjectRecords reads and validates a project record file containing
// the narration and image arrays produced by the generation collaborators.
func LoadProjectRecords(path string) (*types.ProjectRecords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project records %s: %w", path, err)
	}

	var records types.ProjectRecords
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse project records JSON: %w", err)
	}

	if err := ValidateProjectRecords(&records); err != nil {
		return nil, err
	}

	return &records, nil
}

// ValidateProjectRecords checks structural constraints on loaded records.
func ValidateProjectRecords(records *types.ProjectRecords) error {
	for i, seg := range records.Narration {
		if err := recordValidator.Struct(seg); err != nil {
			return fmt.Errorf("narration record %d invalid: %w", i, err)
		}
	}
	for i, image := range records.Images {
		if err := recordValidator.Struct(image); err != nil {
			return fmt.Errorf("image record %d invalid: %w", i, err)
		}
	}
	return nil
}
