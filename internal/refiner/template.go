package refiner

import (
	"regexp"
	"strings"

	"promptforge/internal/task"
)

var (
	leftoverToken = regexp.MustCompile(`\{\{[^{}]*\}\}`)
	blankLineRun  = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

const maxRequirementSlots = 5

// taskRequirements returns the requirement phrases bound to
// {{requirement_1}}..{{requirement_5}} for a task type.
func taskRequirements(t task.Type) []string {
	switch t {
	case task.TypeCodeGeneration:
		return []string{
			"Write clean, readable code with comments",
			"Handle errors and edge cases",
			"Follow language idioms and best practices",
		}
	case task.TypeImageGeneration:
		return []string{
			"Describe the subject and composition clearly",
			"Specify style, mood, and color palette",
			"Include lighting and perspective details",
		}
	case task.TypeSQLQuery:
		return []string{
			"Use explicit column names instead of SELECT *",
			"Optimize joins for performance",
			"Comment complex subqueries",
		}
	case task.TypeDataAnalysis:
		return []string{
			"State the methodology and assumptions",
			"Quantify findings with statistics",
			"Summarize actionable insights",
		}
	default:
		return []string{
			"Be clear and specific",
			"Provide complete, accurate output",
			"Structure the response logically",
		}
	}
}

// taskOutputDescription returns the expected-output line for a task type.
func taskOutputDescription(t task.Type) string {
	switch t {
	case task.TypeCodeGeneration:
		return "Working code with comments and a usage example"
	case task.TypeImageGeneration:
		return "A detailed image generation prompt"
	case task.TypeSQLQuery:
		return "An optimized SQL query with explanatory comments"
	case task.TypeDataAnalysis:
		return "An analysis with statistics and actionable insights"
	case task.TypeResearch:
		return "A sourced overview with detailed analysis"
	case task.TypeStoryWriting:
		return "An engaging narrative with developed characters"
	default:
		return "A complete, high quality response"
	}
}

// applyTemplate binds the format template's placeholders from the working
// prompt, the task type, and the collected constraints, then strips any
// unmatched token. Leftover {{...}} in the output is graceful degradation
// territory for the validator, never produced here.
func (p *Pipeline) applyTemplate(rec *Record) {
	bindings := map[string]string{
		"{{task_description}}": rec.CurrentPrompt,
	}

	if rec.TaskType != task.TypeUnknown {
		bindings["{{task_type}}"] = rec.TaskType.Display()
	}

	reqs := taskRequirements(rec.TaskType)
	for i := 0; i < maxRequirementSlots; i++ {
		key := "{{requirement_" + string(rune('1'+i)) + "}}"
		if i < len(reqs) {
			bindings[key] = reqs[i]
		} else {
			bindings[key] = ""
		}
	}

	if len(rec.CollectedConstraints) > 0 {
		bindings["{{constraint_key}}"] = "Requirements"
		bindings["{{constraint_value}}"] = rec.CollectedConstraints[0]

		var lines []string
		for _, c := range rec.CollectedConstraints {
			lines = append(lines, "- "+c)
		}
		bindings["{{constraints_list}}"] = strings.Join(lines, "\n")
	} else {
		bindings["{{constraint_key}}"] = "Quality"
		bindings["{{constraint_value}}"] = "High quality output required"
		bindings["{{constraints_list}}"] = "- High quality output required"
	}

	bindings["{{output_description}}"] = taskOutputDescription(rec.TaskType)

	bound := rec.FormatTemplate
	filled := 0
	for token, value := range bindings {
		if strings.Contains(bound, token) {
			bound = strings.ReplaceAll(bound, token, value)
			filled++
		}
	}

	// Drop placeholders the table does not know about, then tidy the
	// blank lines empty substitutions leave behind.
	bound = leftoverToken.ReplaceAllString(bound, "")
	bound = blankLineRun.ReplaceAllString(bound, "\n\n")
	bound = strings.TrimSpace(bound)

	rec.CurrentPrompt = bound
	rec.Improvements = append(rec.Improvements, "Applied format template for structure")
	rec.StageMetadata["apply_template"] = Metadata{
		"template_applied":    true,
		"template_type":       "structured",
		"placeholders_filled": filled,
	}
}
