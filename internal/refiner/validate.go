package refiner

import "strings"

// validate performs read-only quality checks on the refined prompt.
// Failures are recorded in metadata, never raised: the pipeline always
// hands back its best effort.
func (p *Pipeline) validate(rec *Record) {
	prompt := rec.CurrentPrompt
	var issues, warnings []string

	wordCount := len(strings.Fields(prompt))
	if wordCount < 5 {
		issues = append(issues, "Prompt is very short (< 5 words)")
	}

	if !strings.ContainsAny(prompt, ".!?") {
		warnings = append(warnings, "Prompt lacks punctuation, may be unclear")
	}

	// The binder strips its own leftovers; this fires only when brace
	// text survived from the raw input with no template in play.
	if strings.Contains(prompt, "{{") && strings.Contains(prompt, "}}") {
		issues = append(issues, "Template placeholders not fully replaced")
	}

	passed := len(issues) == 0
	rec.StageMetadata["validate"] = Metadata{
		"validation_passed": passed,
		"word_count":        wordCount,
		"issues":            issues,
		"warnings":          warnings,
	}

	if passed {
		rec.Improvements = append(rec.Improvements, "Validation passed - prompt is well-formed")
	}
}

// Validation extracts the validator's verdict from a result for callers
// that surface issues and warnings as diagnostics.
func (r *Result) Validation() (passed bool, issues, warnings []string) {
	meta, ok := r.StageMetadata["validate"]
	if !ok {
		return true, nil, nil
	}
	passed, _ = meta["validation_passed"].(bool)
	issues, _ = meta["issues"].([]string)
	warnings, _ = meta["warnings"].([]string)
	return passed, issues, warnings
}
