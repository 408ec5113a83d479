package script

import (
	"context"
	"fmt"

	"github.com/ljc0311/storyvid/internal/coverage"
	"github.com/ljc0311/storyvid/internal/types"
)

// Generator is the script-generation collaborator contract. The module only
// formats prompts and interprets the returned free text; model selection and
// provider credentials are the implementation's concern.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Result holds the outcome of one generation loop: the accepted script, its
// parsed records, the coverage report that decided acceptance, and whether
// the bounded retry was spent.
type Result struct {
	Script  string
	Records []types.ShotRecord
	Report  types.CoverageReport
	Retried bool
}

// Run drives the generate→validate cycle with at most one retry. A coverage
// shortfall after the retry is not an error: the shortfall is surfaced
// through Report.IsComplete for the caller to act on.
func Run(ctx context.Context, gen Generator, assignment types.ShotAssignment, sentences []string, originalText string) (*Result, error) {
	prompt, err := BuildGeneratePrompt(assignment, originalText)
	if err != nil {
		return nil, fmt.Errorf("failed to build generation prompt: %w", err)
	}

	scriptText, err := gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("script generation failed: %w", err)
	}

	records := ParseShots(scriptText)
	report := coverage.Validate(records, sentences, originalText)

	result := &Result{Script: scriptText, Records: records, Report: report}
	if !coverage.NeedsRetry(report) {
		return result, nil
	}

	// Exactly one retry with the missing sentences listed verbatim.
	retryPrompt, err := BuildRetryPrompt(report.MissingSentences, originalText)
	if err != nil {
		return nil, fmt.Errorf("failed to build retry prompt: %w", err)
	}

	retryText, err := gen.Generate(ctx, retryPrompt)
	if err != nil {
		// The original attempt is still usable; keep it and surface the
		// shortfall through the report.
		return result, nil
	}
	result.Retried = true

	retryRecords := ParseShots(retryText)
	retryReport := coverage.Validate(retryRecords, sentences, originalText)

	if coverage.StrictlyWorse(retryReport, report) {
		return result, nil
	}

	result.Script = retryText
	result.Records = retryRecords
	result.Report = retryReport
	return result, nil
}
