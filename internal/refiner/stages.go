package refiner

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"promptforge/internal/task"
)

var (
	whitespaceRun    = regexp.MustCompile(`\s+`)
	spaceBeforePunct = regexp.MustCompile(`\s+([.,!?;:])`)
	spaceAfterPunct  = regexp.MustCompile(`([.,!?;:])\s*`)

	intensifiers  = regexp.MustCompile(`(?i)\b(very|really|quite|rather)\s+`)
	fillerWords   = regexp.MustCompile(`(?i)\b(just|simply|basically|actually)\s+`)
	redundantThat = regexp.MustCompile(`(?i)\bthat\s+`)
)

// cleanup normalizes whitespace and punctuation spacing and capitalizes
// the first letter. Running it on its own output is a no-op.
func (p *Pipeline) cleanup(rec *Record) {
	original := rec.CurrentPrompt
	prompt := original

	prompt = whitespaceRun.ReplaceAllString(prompt, " ")
	prompt = strings.TrimSpace(prompt)
	prompt = spaceBeforePunct.ReplaceAllString(prompt, "$1")
	prompt = spaceAfterPunct.ReplaceAllString(prompt, "$1 ")
	prompt = strings.TrimSpace(prompt)

	if prompt != "" {
		r := []rune(prompt)
		if unicode.IsLower(r[0]) {
			r[0] = unicode.ToUpper(r[0])
			prompt = string(r)
		}
	}

	if prompt != original {
		rec.Improvements = append(rec.Improvements, "Cleaned up formatting and whitespace")
	}
	rec.CurrentPrompt = prompt
	rec.StageMetadata["cleanup"] = Metadata{
		"original_length": len(original),
		"cleaned_length":  len(prompt),
		"changes_made":    prompt != original,
	}
}

// taskConstraints returns the boilerplate constraint sentences for a task
// type. Types without an entry get none.
func taskConstraints(t task.Type) []string {
	switch t {
	case task.TypeCodeGeneration:
		return []string{
			"Please include comments explaining the logic.",
			"Follow best practices and coding standards.",
			"Ensure the code is production-ready.",
		}
	case task.TypeImageGeneration:
		return []string{
			"Specify the desired style, mood, and composition.",
			"Include details about colors, lighting, and perspective.",
		}
	case task.TypeResearch:
		return []string{
			"Provide sources and citations where applicable.",
			"Include both overview and detailed analysis.",
		}
	case task.TypeStoryWriting:
		return []string{
			"Develop characters with depth and motivation.",
			"Include vivid descriptions and engaging dialogue.",
		}
	case task.TypeSQLQuery:
		return []string{
			"Optimize for performance.",
			"Include comments explaining complex joins or subqueries.",
		}
	case task.TypeDataAnalysis:
		return []string{
			"Provide statistical insights and visualizations if applicable.",
			"Explain methodology and assumptions.",
		}
	default:
		return nil
	}
}

// expandConstraints collects task-specific and custom constraints. With a
// format template present they are reserved for the binder; otherwise they
// are appended to the prompt text.
func (p *Pipeline) expandConstraints(rec *Record) {
	var collected []string
	collected = append(collected, taskConstraints(rec.TaskType)...)
	collected = append(collected, rec.CustomConstraints...)
	rec.CollectedConstraints = collected

	appended := false
	if len(collected) > 0 {
		if rec.FormatTemplate != "" {
			rec.Improvements = append(rec.Improvements,
				fmt.Sprintf("Prepared %d constraint(s) for template", len(collected)))
		} else {
			rec.CurrentPrompt = rec.CurrentPrompt + " " + strings.Join(collected, " ")
			appended = true
			rec.Improvements = append(rec.Improvements,
				fmt.Sprintf("Added %d constraint(s) for clarity and specificity", len(collected)))
		}
	}

	rec.StageMetadata["expand_constraints"] = Metadata{
		"constraints_added":  len(collected),
		"constraint_list":    collected,
		"appended_to_prompt": appended,
	}
}

func (p *Pipeline) adjustTone(rec *Record) {
	original := rec.CurrentPrompt
	rec.CurrentPrompt = p.tone.apply(rec.CurrentPrompt)

	if rec.CurrentPrompt != original {
		rec.Improvements = append(rec.Improvements, "Adjusted tone to "+p.tone.String())
	}
	rec.StageMetadata["adjust_tone"] = Metadata{
		"target_tone":  p.tone.String(),
		"tone_changed": rec.CurrentPrompt != original,
	}
}

// optimizeTokens strips intensifiers, filler adverbs, and discourse
// "that". Output word count never exceeds input word count.
func (p *Pipeline) optimizeTokens(rec *Record) {
	prompt := rec.CurrentPrompt
	originalWords := len(strings.Fields(prompt))

	prompt = intensifiers.ReplaceAllString(prompt, "")
	prompt = fillerWords.ReplaceAllString(prompt, "")
	prompt = redundantThat.ReplaceAllString(prompt, "")
	prompt = strings.TrimSpace(whitespaceRun.ReplaceAllString(prompt, " "))

	newWords := len(strings.Fields(prompt))
	if newWords < originalWords {
		rec.Improvements = append(rec.Improvements,
			fmt.Sprintf("Optimized token usage (reduced from %d to %d words)", originalWords, newWords))
	}

	reduction := 0.0
	if originalWords > 0 {
		reduction = (1 - float64(newWords)/float64(originalWords)) * 100
	}
	rec.CurrentPrompt = prompt
	rec.StageMetadata["optimize_tokens"] = Metadata{
		"original_word_count":  originalWords,
		"optimized_word_count": newWords,
		"reduction_percentage": reduction,
	}
}
