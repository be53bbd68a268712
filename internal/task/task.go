package task

import "strings"

// Type identifies the purpose of a prompt
type Type int

const (
	TypeUnknown Type = iota
	TypeImageGeneration
	TypeVideoGeneration
	TypeCodeGeneration
	TypeCodeReview
	TypeCodeDebug
	TypeResearch
	TypeStoryWriting
	TypeSQLQuery
	TypeChatbot
	TypeDataAnalysis
	TypeTranslation
	TypeSummarization
	TypeQuestionAnswering
	TypeCreativeWriting
	TypeTechnicalWriting
	TypeGeneral
)

var typeLabels = map[Type]string{
	TypeImageGeneration:   "image_generation",
	TypeVideoGeneration:   "video_generation",
	TypeCodeGeneration:    "code_generation",
	TypeCodeReview:        "code_review",
	TypeCodeDebug:         "code_debug",
	TypeResearch:          "research",
	TypeStoryWriting:      "story_writing",
	TypeSQLQuery:          "sql_query",
	TypeChatbot:           "chatbot",
	TypeDataAnalysis:      "data_analysis",
	TypeTranslation:       "translation",
	TypeSummarization:     "summarization",
	TypeQuestionAnswering: "question_answering",
	TypeCreativeWriting:   "creative_writing",
	TypeTechnicalWriting:  "technical_writing",
	TypeGeneral:           "general",
}

func (t Type) String() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return "unknown"
}

// Display returns a human-readable name, e.g. "Code Generation"
func (t Type) Display() string {
	label := t.String()
	words := strings.Split(label, "_")
	for i, w := range words {
		if w == "sql" {
			words[i] = "SQL"
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Parse maps a task label to its Type. Unrecognized labels map to TypeUnknown.
func Parse(label string) Type {
	label = strings.ToLower(strings.TrimSpace(label))
	for t, l := range typeLabels {
		if l == label {
			return t
		}
	}
	return TypeUnknown
}
