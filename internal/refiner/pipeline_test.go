package refiner

import (
	"reflect"
	"strings"
	"testing"

	"promptforge/internal/task"
)

func TestRefineStageCount(t *testing.T) {
	p := New(ToneNeutral)

	noTemplate := p.Refine("write a short story about a lighthouse keeper.", Options{})
	if len(noTemplate.StagesApplied) != 5 {
		t.Errorf("without template: %d stages, want 5", len(noTemplate.StagesApplied))
	}

	withTemplate := p.Refine("write a short story about a lighthouse keeper.", Options{
		FormatTemplate: "Task: {{task_description}}",
	})
	if len(withTemplate.StagesApplied) != 6 {
		t.Errorf("with template: %d stages, want 6", len(withTemplate.StagesApplied))
	}

	wantOrder := []string{"Cleanup", "Expand Constraints", "Adjust Tone", "Optimize Tokens", "Apply Template", "Validate"}
	if !reflect.DeepEqual(withTemplate.StagesApplied, wantOrder) {
		t.Errorf("stage order = %v, want %v", withTemplate.StagesApplied, wantOrder)
	}
}

func TestRefineDeterministic(t *testing.T) {
	p := New(ToneProfessional)
	opts := Options{
		TaskType:          task.TypeCodeGeneration,
		FormatTemplate:    "# Task\n{{task_description}}\n\n## Constraints\n{{constraints_list}}",
		CustomConstraints: []string{"Target Go 1.22."},
	}

	first := p.Refine("  build me a   config loader please ", opts)
	second := p.Refine("  build me a   config loader please ", opts)

	if first.RefinedPrompt != second.RefinedPrompt {
		t.Errorf("refined prompts differ:\n%q\n%q", first.RefinedPrompt, second.RefinedPrompt)
	}
	if !reflect.DeepEqual(first.Improvements, second.Improvements) {
		t.Errorf("improvements differ: %v vs %v", first.Improvements, second.Improvements)
	}
}

func TestRefineProfessionalCleanup(t *testing.T) {
	p := New(ToneProfessional)

	result := p.Refine("  write   code please.kinda fix this.", Options{})

	want := "Please write code please. fix this."
	if result.RefinedPrompt != want {
		t.Errorf("RefinedPrompt = %q, want %q", result.RefinedPrompt, want)
	}
	if strings.Contains(strings.ToLower(result.RefinedPrompt), "kinda") {
		t.Error("casual filler survived the professional tone transform")
	}
}

func TestRefineAppendsConstraintsWithoutTemplate(t *testing.T) {
	p := New(ToneNeutral)

	result := p.Refine("create a function that validates email addresses", Options{
		TaskType: task.TypeCodeGeneration,
	})

	wantConstraints := []string{
		"Please include comments explaining the logic.",
		"Follow best practices and coding standards.",
		"Ensure the code is production-ready.",
	}

	meta := result.StageMetadata["expand_constraints"]
	got, _ := meta["constraint_list"].([]string)
	if !reflect.DeepEqual(got, wantConstraints) {
		t.Errorf("constraint_list = %v, want %v", got, wantConstraints)
	}
	if appended, _ := meta["appended_to_prompt"].(bool); !appended {
		t.Error("constraints should have been appended to the prompt")
	}
	for _, c := range wantConstraints {
		if !strings.Contains(result.RefinedPrompt, c) {
			t.Errorf("refined prompt missing constraint %q", c)
		}
	}
}

func TestRefineDefersConstraintsToTemplate(t *testing.T) {
	p := New(ToneNeutral)

	template := "Task: {{task_description}}\nReqs: {{requirement_1}}\nNotes: {{constraint_value}}"
	result := p.Refine("create a function that validates email addresses", Options{
		TaskType:       task.TypeCodeGeneration,
		FormatTemplate: template,
	})

	if strings.Contains(result.RefinedPrompt, "{{") || strings.Contains(result.RefinedPrompt, "}}") {
		t.Errorf("placeholders left in output: %q", result.RefinedPrompt)
	}
	if !strings.Contains(result.RefinedPrompt, "Task: Create a function validates email addresses") {
		t.Errorf("task description not bound: %q", result.RefinedPrompt)
	}
	if !strings.Contains(result.RefinedPrompt, "Write clean, readable code with comments") {
		t.Errorf("requirement_1 not bound: %q", result.RefinedPrompt)
	}
	if !strings.Contains(result.RefinedPrompt, "Please include comments explaining the logic.") {
		t.Errorf("constraint_value not bound: %q", result.RefinedPrompt)
	}
	// Only the first constraint belongs in this template; the rest must
	// not leak into the prompt body
	if strings.Contains(result.RefinedPrompt, "Ensure the code is production-ready.") {
		t.Errorf("deferred constraints leaked into prompt body: %q", result.RefinedPrompt)
	}

	meta := result.StageMetadata["expand_constraints"]
	if appended, _ := meta["appended_to_prompt"].(bool); appended {
		t.Error("constraints must not be appended when a template is supplied")
	}
}

func TestRefineEmptyPrompt(t *testing.T) {
	p := New(ToneNeutral)

	result := p.Refine("", Options{})

	if result.RefinedPrompt != "" {
		t.Errorf("RefinedPrompt = %q, want empty", result.RefinedPrompt)
	}
	if len(result.StagesApplied) != 5 {
		t.Errorf("%d stages, want 5", len(result.StagesApplied))
	}

	passed, issues, _ := result.Validation()
	if passed {
		t.Error("validation passed for empty prompt")
	}
	found := false
	for _, issue := range issues {
		if strings.Contains(issue, "very short") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing short-prompt issue, got %v", issues)
	}
}

func TestRefineFlagsPreexistingPlaceholders(t *testing.T) {
	p := New(ToneNeutral)

	result := p.Refine("Use the {{widget}} component to render the page.", Options{})

	passed, issues, _ := result.Validation()
	if passed {
		t.Error("validation passed despite leftover placeholder syntax")
	}
	found := false
	for _, issue := range issues {
		if strings.Contains(issue, "placeholders") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing placeholder issue, got %v", issues)
	}
}

func TestRefineValidationNote(t *testing.T) {
	p := New(ToneNeutral)

	result := p.Refine("Summarize the quarterly sales report for the board.", Options{})

	passed, _, _ := result.Validation()
	if !passed {
		t.Fatalf("expected validation to pass, metadata: %v", result.StageMetadata["validate"])
	}
	last := result.Improvements[len(result.Improvements)-1]
	if !strings.Contains(last, "Validation passed") {
		t.Errorf("last improvement = %q, want validation note", last)
	}
}
