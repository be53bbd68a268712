// Package pipeline orchestrates the full flow: classify the prompt,
// recommend a format for the target model, then run the refinement
// pipeline with the recommended template.
package pipeline

import (
	"time"

	"promptforge/internal/format"
	"promptforge/internal/refiner"
	"promptforge/internal/task"
)

// Stage represents an orchestrator stage
type Stage int

const (
	StageClassifying Stage = iota
	StageSelectingFormat
	StageRefining
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageClassifying:
		return "Classifying"
	case StageSelectingFormat:
		return "Selecting Format"
	case StageRefining:
		return "Refining"
	case StageDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Progress reports orchestrator progress
type Progress struct {
	Stage       Stage
	StageIndex  int
	TotalStages int
	Message     string
}

// Options configure a Process call
type Options struct {
	// TaskType overrides classification when not TypeUnknown.
	TaskType task.Type
	// Provider and Model select the format recommendation target.
	Provider string
	Model    string
	// FallbackFormat is recommended when the mapping has no entry for
	// the model. The zero value is markdown.
	FallbackFormat format.Format
	// ApplyTemplate feeds the recommended skeleton into the refiner.
	ApplyTemplate     bool
	CustomConstraints []string
}

// Result contains the combined pipeline output
type Result struct {
	OriginalPrompt string
	RefinedPrompt  string
	Classification task.Result
	Recommendation format.Recommendation
	Refinement     *refiner.Result
	Timestamp      time.Time
}

// Orchestrator wires the classifier, the format selector, and the
// refinement pipeline together.
type Orchestrator struct {
	classifier *task.Classifier
	selector   *format.Selector
	refiner    *refiner.Pipeline
	onProgress func(Progress)
	now        func() time.Time
}

// NewOrchestrator creates an orchestrator refining toward the given tone.
func NewOrchestrator(tone refiner.Tone) (*Orchestrator, error) {
	selector, err := format.NewSelector()
	if err != nil {
		return nil, err
	}
	return &Orchestrator{
		classifier: task.NewClassifier(),
		selector:   selector,
		refiner:    refiner.New(tone),
		now:        time.Now,
	}, nil
}

// SetProgressCallback sets the progress callback
func (o *Orchestrator) SetProgressCallback(fn func(Progress)) {
	o.onProgress = fn
}

func (o *Orchestrator) progress(pr Progress) {
	if o.onProgress != nil {
		o.onProgress(pr)
	}
}

// Process runs the full flow over one prompt. It never fails: degraded
// input produces degraded output with the problems visible in the
// refinement metadata.
func (o *Orchestrator) Process(prompt string, opts Options) *Result {
	o.progress(Progress{
		Stage:       StageClassifying,
		StageIndex:  0,
		TotalStages: 3,
		Message:     "Classifying task type...",
	})

	classification := o.classifier.Classify(prompt)
	taskType := classification.Type
	if opts.TaskType != task.TypeUnknown {
		taskType = opts.TaskType
	}

	o.progress(Progress{
		Stage:       StageSelectingFormat,
		StageIndex:  1,
		TotalStages: 3,
		Message:     "Selecting output format...",
	})

	recommendation := o.selector.RecommendWithFallback(opts.Provider, opts.Model, opts.FallbackFormat)

	o.progress(Progress{
		Stage:       StageRefining,
		StageIndex:  2,
		TotalStages: 3,
		Message:     "Refining prompt...",
	})

	refineOpts := refiner.Options{
		TaskType:          taskType,
		CustomConstraints: opts.CustomConstraints,
	}
	if opts.ApplyTemplate {
		refineOpts.FormatTemplate = recommendation.Template
	}
	refinement := o.refiner.Refine(prompt, refineOpts)

	o.progress(Progress{
		Stage:       StageDone,
		StageIndex:  3,
		TotalStages: 3,
		Message:     "Refinement complete",
	})

	return &Result{
		OriginalPrompt: prompt,
		RefinedPrompt:  refinement.RefinedPrompt,
		Classification: classification,
		Recommendation: recommendation,
		Refinement:     refinement,
		Timestamp:      o.now(),
	}
}

// ProcessBatch refines prompts one by one. Calls are independent, so a
// caller wanting parallelism can fan out its own Process calls instead.
func (o *Orchestrator) ProcessBatch(prompts []string, opts Options) []*Result {
	results := make([]*Result, 0, len(prompts))
	for _, p := range prompts {
		results = append(results, o.Process(p, opts))
	}
	return results
}
