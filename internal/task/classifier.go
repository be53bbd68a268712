package task

import (
	"fmt"
	"regexp"
	"strings"
)

// Result of classifying a prompt
type Result struct {
	Type       Type
	Confidence float64
	Reasoning  string
	Matches    []string
}

type profile struct {
	keywords []string
	patterns []*regexp.Regexp
	weight   float64
}

// Classifier identifies the task type of a prompt using keyword and
// pattern scoring. Classification is deterministic: no model calls.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

var profiles = []struct {
	taskType Type
	profile  profile
}{
	{TypeImageGeneration, profile{
		keywords: []string{"image", "picture", "photo", "illustration", "draw", "paint", "visualize", "render"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(create|generate|make|draw|paint)\s+(an?\s+)?(image|picture|photo|illustration)`),
			regexp.MustCompile(`\bvisuali[sz]e\b`),
			regexp.MustCompile(`\brender\s+(an?\s+)?(image|scene|3d)`),
		},
		weight: 1.0,
	}},
	{TypeVideoGeneration, profile{
		keywords: []string{"video", "animation", "movie", "clip", "footage", "animate", "motion"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(create|generate|make|produce)\s+(an?\s+)?(video|animation|movie|clip)`),
			regexp.MustCompile(`\banimate\b`),
		},
		weight: 1.0,
	}},
	{TypeCodeGeneration, profile{
		keywords: []string{"code", "function", "class", "script", "program", "implement", "build", "develop", "python", "javascript"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(write|create|generate|implement)\s+.*\s+(function|class|script|program|code)`),
			regexp.MustCompile(`\bcreate\s+(a\s+)?(\w+\s+)?(function|class|module)`),
			regexp.MustCompile(`\b(python|javascript|java|go|rust)\s+(function|class|script)`),
		},
		weight: 1.0,
	}},
	{TypeCodeReview, profile{
		keywords: []string{"review", "check code", "analyze code", "code quality", "best practices", "refactor"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(review|check)\s+(this|my|the)\s+code`),
			regexp.MustCompile(`\bcode\s+review\b`),
		},
		weight: 1.0,
	}},
	{TypeCodeDebug, profile{
		keywords: []string{"debug", "fix", "error", "bug", "issue", "broken", "troubleshoot"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(debug|fix)\s+(this|my|the)\s+(code|error|bug|issue)`),
			regexp.MustCompile(`\b(error|bug|issue|problem)\s+in\s+(my|the)\s+code`),
			regexp.MustCompile(`\bnot\s+working\b`),
		},
		weight: 1.0,
	}},
	{TypeSQLQuery, profile{
		keywords: []string{"sql", "query", "database", "select", "join", "table", "mysql", "postgresql"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(write|create|generate)\s+(an?\s+)?sql\s+query`),
			regexp.MustCompile(`\bselect\s+.*\s+from\b`),
			regexp.MustCompile(`\bdatabase\s+query\b`),
		},
		weight: 1.0,
	}},
	{TypeResearch, profile{
		keywords: []string{"research", "investigate", "explore", "study", "find information", "learn about"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(research|investigate|explore|study)\s+`),
			regexp.MustCompile(`\bfind\s+information\s+(about|on)`),
			regexp.MustCompile(`\blearn\s+about\b`),
		},
		weight: 0.8,
	}},
	{TypeStoryWriting, profile{
		keywords: []string{"story", "tale", "narrative", "fiction", "novel", "chapter", "character", "plot"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(write|create|tell)\s+(a\s+)?(story|tale|narrative)`),
			regexp.MustCompile(`\bcharacter\s+(development|arc)`),
		},
		weight: 1.0,
	}},
	{TypeDataAnalysis, profile{
		keywords: []string{"analyze data", "data analysis", "statistics", "trends", "insights", "metrics", "dataset"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\banalyze\s+(this|the)\s+data`),
			regexp.MustCompile(`\bdata\s+analysis\b`),
			regexp.MustCompile(`\bfind\s+(trends|patterns|insights)`),
		},
		weight: 1.0,
	}},
	{TypeTranslation, profile{
		keywords: []string{"translate", "translation", "in spanish", "in french", "in german", "in japanese"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\btranslate\s+(this|to|into)`),
			regexp.MustCompile(`\bin\s+(spanish|french|german|chinese|japanese|korean|arabic)`),
		},
		weight: 1.0,
	}},
	{TypeSummarization, profile{
		keywords: []string{"summarize", "summary", "tldr", "condense", "key points", "overview"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bsummari[sz]e\s+(this|the)`),
			regexp.MustCompile(`\btl;?dr\b`),
			regexp.MustCompile(`\bkey\s+points\b`),
		},
		weight: 1.0,
	}},
	{TypeQuestionAnswering, profile{
		keywords: []string{"what", "why", "how", "when", "where", "who", "answer", "question"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^\s*(what|why|how|when|where|who)\s+`),
			regexp.MustCompile(`\b(can|could)\s+you\s+(tell|explain|answer)`),
		},
		weight: 0.6,
	}},
	{TypeCreativeWriting, profile{
		keywords: []string{"poem", "poetry", "lyrics", "song", "creative", "metaphor", "verse"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(write|create|compose)\s+(a\s+)?(poem|poetry|lyrics|song)`),
			regexp.MustCompile(`\bcreative\s+writing\b`),
		},
		weight: 1.0,
	}},
	{TypeTechnicalWriting, profile{
		keywords: []string{"documentation", "api doc", "readme", "user guide", "manual", "tutorial"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(write|create)\s+(a\s+)?(documentation|readme|manual|tutorial)`),
			regexp.MustCompile(`\bapi\s+documentation\b`),
		},
		weight: 1.0,
	}},
}

// Classify scores the prompt against every task profile and returns the
// best match. Prompts matching nothing classify as general.
func (c *Classifier) Classify(prompt string) Result {
	lower := strings.ToLower(prompt)

	best := Result{Type: TypeGeneral, Confidence: 0.5}
	bestScore := 0.0

	for _, entry := range profiles {
		score := 0.0
		var matches []string

		for _, kw := range entry.profile.keywords {
			if strings.Contains(lower, kw) {
				score += 0.2 * entry.profile.weight
				matches = append(matches, "keyword: "+kw)
			}
		}
		for _, pat := range entry.profile.patterns {
			if pat.MatchString(lower) {
				score += 0.5 * entry.profile.weight
				matches = append(matches, "pattern: "+pat.String())
			}
		}

		if score > 1.0 {
			score = 1.0
		}
		if score > bestScore {
			bestScore = score
			best = Result{
				Type:       entry.taskType,
				Confidence: score,
				Matches:    matches,
			}
		}
	}

	if bestScore == 0 {
		best.Reasoning = "No specific patterns detected, defaulting to general"
		return best
	}

	best.Reasoning = fmt.Sprintf("Classified as %s based on %d signal(s): %s",
		best.Type, len(best.Matches), strings.Join(best.Matches, ", "))
	return best
}
