// Package refiner implements the multi-stage prompt refinement pipeline:
// cleanup, constraint expansion, tone adjustment, token optimization,
// optional template binding, and validation.
package refiner

// stage pairs a canonical display name with its transform. Order in the
// stages slice is load-bearing: cleanup must precede every text-sensitive
// stage, and constraint expansion must precede template binding.
type stage struct {
	name string
	fn   func(*Record)
}

// Pipeline runs the fixed stage sequence. One tone per pipeline; calls
// are independent and side-effect free, so a Pipeline is safe to share.
type Pipeline struct {
	tone   Tone
	stages []stage
}

// New creates a refinement pipeline targeting the given tone.
func New(tone Tone) *Pipeline {
	p := &Pipeline{tone: tone}
	p.stages = []stage{
		{"Cleanup", p.cleanup},
		{"Expand Constraints", p.expandConstraints},
		{"Adjust Tone", p.adjustTone},
		{"Optimize Tokens", p.optimizeTokens},
	}
	return p
}

// Refine runs the full pipeline over a prompt. It accepts any string,
// including empty or whitespace-only input, and always returns a result;
// degraded input degrades the output, never errors.
func (p *Pipeline) Refine(prompt string, opts Options) *Result {
	rec := &Record{
		OriginalPrompt:    prompt,
		CurrentPrompt:     prompt,
		TaskType:          opts.TaskType,
		FormatTemplate:    opts.FormatTemplate,
		CustomConstraints: opts.CustomConstraints,
		StageMetadata:     make(map[string]Metadata),
	}

	for _, s := range p.stages {
		s.fn(rec)
		rec.StagesApplied = append(rec.StagesApplied, s.name)
	}

	if rec.FormatTemplate != "" {
		p.applyTemplate(rec)
		rec.StagesApplied = append(rec.StagesApplied, "Apply Template")
	}

	p.validate(rec)
	rec.StagesApplied = append(rec.StagesApplied, "Validate")

	return &Result{
		RefinedPrompt:  rec.CurrentPrompt,
		OriginalPrompt: rec.OriginalPrompt,
		StagesApplied:  rec.StagesApplied,
		Improvements:   rec.Improvements,
		StageMetadata:  rec.StageMetadata,
	}
}
