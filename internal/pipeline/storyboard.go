package pipeline

import (
	"context"
	"fmt"

	"github.com/ljc0311/storyvid/internal/allocation"
	"github.com/ljc0311/storyvid/internal/coverage"
	"github.com/ljc0311/storyvid/internal/script"
	"github.com/ljc0311/storyvid/internal/splitter"
	"github.com/ljc0311/storyvid/internal/types"
)

// Generator is re-exported so callers wiring the pipeline do not import the
// script package just for the interface.
type Generator = script.Generator

// StoryboardResult bundles the storyboard stage outputs.
type StoryboardResult struct {
	Sentences  []string
	Assignment types.ShotAssignment
	Script     string
	Records    []types.ShotRecord
	Report     types.CoverageReport
	Retried    bool
}

// Storyboard runs the deterministic storyboard stage: sentence splitting,
// shot allocation, and script generation with coverage validation. With a
// nil generator the shot records are derived directly from the allocated
// groups, which always yields full coverage.
func Storyboard(ctx context.Context, articleText string, gen Generator, budget allocation.Budget) (*StoryboardResult, error) {
	sentences := splitter.SplitSentences(articleText)
	targetShots := allocation.TargetShotCount(sentences, budget)
	assignment := allocation.Allocate(sentences, targetShots, budget)

	result := &StoryboardResult{
		Sentences:  sentences,
		Assignment: assignment,
	}

	if gen == nil {
		result.Records = recordsFromAssignment(assignment)
		result.Report = coverage.Validate(result.Records, sentences, articleText)
		return result, nil
	}

	loopResult, err := script.Run(ctx, gen, assignment, sentences, articleText)
	if err != nil {
		return nil, err
	}
	result.Script = loopResult.Script
	result.Records = loopResult.Records
	result.Report = loopResult.Report
	result.Retried = loopResult.Retried
	return result, nil
}

// recordsFromAssignment turns each allocated group into one shot record
// verbatim. Used when no generation collaborator is configured.
func recordsFromAssignment(assignment types.ShotAssignment) []types.ShotRecord {
	records := make([]types.ShotRecord, len(assignment.Groups))
	for i, group := range assignment.Groups {
		records[i] = types.ShotRecord{
			Index:        i + 1,
			Title:        fmt.Sprintf("镜头%d", i+1),
			OriginalText: group.Text(),
		}
	}
	return records
}
