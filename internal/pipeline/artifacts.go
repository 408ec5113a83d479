package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteJSONArtifact writes v as pretty-printed JSON into dir/name, creating
// the directory if needed.
func WriteJSONArtifact(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// WriteStoryboardArtifacts persists the storyboard stage outputs: the raw
// script text (when a generator produced one), the parsed shot records, and
// the coverage report.
func WriteStoryboardArtifacts(dir string, result *StoryboardResult) error {
	if result.Script != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create artifact directory: %w", err)
		}
		scriptPath := filepath.Join(dir, "shot_script.md")
		if err := os.WriteFile(scriptPath, []byte(result.Script), 0644); err != nil {
			return fmt.Errorf("failed to write shot script: %w", err)
		}
	}

	if err := WriteJSONArtifact(dir, "shot_records.json", result.Records); err != nil {
		return err
	}
	return WriteJSONArtifact(dir, "coverage_report.json", result.Report)
}
