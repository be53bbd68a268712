package pipeline

import (
	"fmt"
	"strings"
)

// Summary renders a human-readable report of a pipeline run.
func (r *Result) Summary() string {
	var b strings.Builder

	divider := strings.Repeat("=", 60)

	b.WriteString(divider + "\n")
	b.WriteString("Prompt Refinement Summary\n")
	b.WriteString(divider + "\n\n")

	b.WriteString(fmt.Sprintf("Task Type: %s\n", r.Classification.Type))
	b.WriteString(fmt.Sprintf("Confidence: %.0f%%\n\n", r.Classification.Confidence*100))

	b.WriteString(fmt.Sprintf("Recommended Format: %s\n", r.Recommendation.Format))
	b.WriteString(fmt.Sprintf("Format Confidence: %.0f%%\n\n", r.Recommendation.Confidence*100))

	if len(r.Refinement.Improvements) > 0 {
		b.WriteString("Improvements Made:\n")
		for _, improvement := range r.Refinement.Improvements {
			b.WriteString("  * " + improvement + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Refinement Stages:\n")
	for _, stage := range r.Refinement.StagesApplied {
		b.WriteString("  [x] " + stage + "\n")
	}
	b.WriteString("\n")

	if passed, issues, warnings := r.Refinement.Validation(); !passed || len(warnings) > 0 {
		b.WriteString("Validation:\n")
		for _, issue := range issues {
			b.WriteString("  ! " + issue + "\n")
		}
		for _, warning := range warnings {
			b.WriteString("  ~ " + warning + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(divider + "\n")
	b.WriteString("ORIGINAL PROMPT:\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	b.WriteString(r.OriginalPrompt + "\n\n")
	b.WriteString(divider + "\n")
	b.WriteString("REFINED PROMPT:\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	b.WriteString(r.RefinedPrompt + "\n")
	b.WriteString(divider + "\n")

	return b.String()
}
