package refiner

import "promptforge/internal/task"

// Metadata holds per-stage diagnostic fields
type Metadata map[string]any

// Record is the working state threaded through the pipeline. A fresh
// record is allocated for every Refine call; stages mutate CurrentPrompt
// and append to the trail fields, nothing else.
type Record struct {
	OriginalPrompt string
	CurrentPrompt  string

	TaskType          task.Type
	FormatTemplate    string
	CustomConstraints []string

	CollectedConstraints []string
	StagesApplied        []string
	Improvements         []string
	StageMetadata        map[string]Metadata
}

// Result is the immutable outcome of a Refine call
type Result struct {
	RefinedPrompt  string
	OriginalPrompt string
	StagesApplied  []string
	Improvements   []string
	StageMetadata  map[string]Metadata
}

// Options carry the optional refinement inputs
type Options struct {
	// TaskType gates constraint and requirement tables; TypeUnknown
	// yields empty constraints.
	TaskType task.Type
	// FormatTemplate, when non-empty, defers collected constraints to
	// the template binder and enables the Apply Template stage.
	FormatTemplate string
	// CustomConstraints are appended after task-specific ones.
	CustomConstraints []string
}
