// Package steps provides step definitions and dependency validation for the
// storyboard pipeline.
package steps

import "fmt"

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
}

// Step category names
const (
	CategoryIngestion  = "ingestion"
	CategoryStoryboard = "storyboard"
	CategoryTimeline   = "timeline"
	CategoryAnalysis   = "analysis"
)

// Registry holds all step definitions
var Registry = map[string]StepDefinition{
	"ingest_article": {
		Name:         "ingest_article",
		Category:     CategoryIngestion,
		Dependencies: []string{},
	},
	"split_sentences": {
		Name:         "split_sentences",
		Category:     CategoryStoryboard,
		Dependencies: []string{"ingest_article"},
	},
	"allocate_shots": {
		Name:         "allocate_shots",
		Category:     CategoryStoryboard,
		Dependencies: []string{"split_sentences"},
	},
	"generate_script": {
		Name:         "generate_script",
		Category:     CategoryStoryboard,
		Dependencies: []string{"allocate_shots"},
	},
	"validate_coverage": {
		Name:         "validate_coverage",
		Category:     CategoryStoryboard,
		Dependencies: []string{"generate_script", "split_sentences"},
	},
	"load_records": {
		Name:         "load_records",
		Category:     CategoryIngestion,
		Dependencies: []string{},
	},
	"build_timeline": {
		Name:         "build_timeline",
		Category:     CategoryTimeline,
		Dependencies: []string{"load_records"},
	},
	"analyze_sync": {
		Name:         "analyze_sync",
		Category:     CategoryAnalysis,
		Dependencies: []string{"load_records"},
	},
}

// ValidateOrder checks that every step in the given execution order appears
// after all of its dependencies. Unknown step names are rejected.
func ValidateOrder(order []string) error {
	position := make(map[string]int, len(order))
	for i, name := range order {
		if _, ok := Registry[name]; !ok {
			return fmt.Errorf("unknown step: %s", name)
		}
		position[name] = i
	}

	for i, name := range order {
		for _, dep := range Registry[name].Dependencies {
			depPos, ok := position[dep]
			if !ok {
				return fmt.Errorf("step %s requires %s, which is not scheduled", name, dep)
			}
			if depPos >= i {
				return fmt.Errorf("step %s scheduled before its dependency %s", name, dep)
			}
		}
	}
	return nil
}

// DefaultOrder returns the canonical sequential execution order. The
// build_timeline and analyze_sync steps share no dependency edge between
// them and may run concurrently.
func DefaultOrder() []string {
	return []string{
		"ingest_article",
		"split_sentences",
		"allocate_shots",
		"generate_script",
		"validate_coverage",
		"load_records",
		"build_timeline",
		"analyze_sync",
	}
}
