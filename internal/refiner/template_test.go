package refiner

import (
	"strings"
	"testing"

	"promptforge/internal/task"
)

const markdownSkeleton = `# Task
{{task_description}}

## Requirements
- {{requirement_1}}
- {{requirement_2}}

## Constraints
{{constraints_list}}

## Expected Output
{{output_description}}`

func TestApplyTemplateBindsAllPlaceholders(t *testing.T) {
	p := New(ToneNeutral)
	rec := newRecord("Build a CSV parser in Go.")
	rec.TaskType = task.TypeCodeGeneration
	rec.FormatTemplate = markdownSkeleton
	rec.CollectedConstraints = []string{
		"Please include comments explaining the logic.",
		"Follow best practices and coding standards.",
	}

	p.applyTemplate(rec)

	out := rec.CurrentPrompt
	if strings.Contains(out, "{{") || strings.Contains(out, "}}") {
		t.Fatalf("placeholders remain: %q", out)
	}
	if !strings.Contains(out, "Build a CSV parser in Go.") {
		t.Error("task description missing")
	}
	if !strings.Contains(out, "- Write clean, readable code with comments") {
		t.Error("requirement_1 missing")
	}
	if !strings.Contains(out, "- Please include comments explaining the logic.") {
		t.Error("constraints list missing first constraint")
	}
	if !strings.Contains(out, "- Follow best practices and coding standards.") {
		t.Error("constraints list missing second constraint")
	}
	if !strings.Contains(out, "Working code with comments and a usage example") {
		t.Error("output description missing")
	}
}

func TestApplyTemplateConstraintFallbacks(t *testing.T) {
	p := New(ToneNeutral)
	rec := newRecord("Do something nice.")
	rec.FormatTemplate = "{{constraint_key}}: {{constraint_value}}\n{{constraints_list}}"

	p.applyTemplate(rec)

	out := rec.CurrentPrompt
	if !strings.Contains(out, "Quality: High quality output required") {
		t.Errorf("fallback constraint pair missing: %q", out)
	}
	if !strings.Contains(out, "- High quality output required") {
		t.Errorf("fallback bullet missing: %q", out)
	}
}

func TestApplyTemplateConstraintKeyWithConstraints(t *testing.T) {
	p := New(ToneNeutral)
	rec := newRecord("Write a migration script.")
	rec.FormatTemplate = "{{constraint_key}}: {{constraint_value}}"
	rec.CollectedConstraints = []string{"Back up the database first.", "Run inside a transaction."}

	p.applyTemplate(rec)

	want := "Requirements: Back up the database first."
	if rec.CurrentPrompt != want {
		t.Errorf("got %q, want %q", rec.CurrentPrompt, want)
	}
}

func TestApplyTemplateRemovesUnknownPlaceholders(t *testing.T) {
	p := New(ToneNeutral)
	rec := newRecord("Summarize the meeting notes.")
	rec.FormatTemplate = "Task: {{task_description}}\nExtra: {{unsupported_token}}"

	p.applyTemplate(rec)

	if strings.Contains(rec.CurrentPrompt, "unsupported_token") {
		t.Errorf("unknown placeholder left in output: %q", rec.CurrentPrompt)
	}
	if strings.Contains(rec.CurrentPrompt, "{{") {
		t.Errorf("brace syntax left in output: %q", rec.CurrentPrompt)
	}
}

func TestApplyTemplateOmitsTaskTypeWhenUnknown(t *testing.T) {
	p := New(ToneNeutral)
	rec := newRecord("Tidy up the backlog.")
	rec.FormatTemplate = "Type: {{task_type}}\nTask: {{task_description}}"

	p.applyTemplate(rec)

	if strings.Contains(rec.CurrentPrompt, "{{task_type}}") {
		t.Errorf("task_type placeholder survived: %q", rec.CurrentPrompt)
	}

	rec = newRecord("Tidy up the backlog.")
	rec.TaskType = task.TypeDataAnalysis
	rec.FormatTemplate = "Type: {{task_type}}"
	p.applyTemplate(rec)

	if rec.CurrentPrompt != "Type: Data Analysis" {
		t.Errorf("task_type display = %q, want %q", rec.CurrentPrompt, "Type: Data Analysis")
	}
}

func TestApplyTemplateCollapsesBlankLines(t *testing.T) {
	p := New(ToneNeutral)
	rec := newRecord("Plan the launch.")
	rec.FormatTemplate = "{{task_description}}\n\n\n\n{{output_description}}"

	p.applyTemplate(rec)

	if strings.Contains(rec.CurrentPrompt, "\n\n\n") {
		t.Errorf("blank line run not collapsed: %q", rec.CurrentPrompt)
	}
	if !strings.Contains(rec.CurrentPrompt, "\n\n") {
		t.Errorf("single blank line should remain: %q", rec.CurrentPrompt)
	}
}

func TestApplyTemplateFillsRequirementSlots(t *testing.T) {
	p := New(ToneNeutral)
	rec := newRecord("Chart monthly revenue.")
	rec.TaskType = task.TypeDataAnalysis
	rec.FormatTemplate = "1:{{requirement_1}} 4:{{requirement_4}} 5:{{requirement_5}}"

	p.applyTemplate(rec)

	if !strings.Contains(rec.CurrentPrompt, "1:State the methodology and assumptions") {
		t.Errorf("requirement_1 not bound: %q", rec.CurrentPrompt)
	}
	// Slots past the table length bind to the empty string
	if rec.CurrentPrompt != "1:State the methodology and assumptions 4: 5:" {
		t.Errorf("unused slots not emptied: %q", rec.CurrentPrompt)
	}
}
