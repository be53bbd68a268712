package refiner

import (
	"regexp"
	"strings"
	"unicode"
)

// Tone selects the rewrite applied by the Adjust Tone stage
type Tone int

const (
	ToneNeutral Tone = iota
	ToneProfessional
	ToneCasual
	ToneTechnical
	ToneCreative
	ToneFormal
	ToneFriendly
)

func (t Tone) String() string {
	switch t {
	case ToneProfessional:
		return "professional"
	case ToneCasual:
		return "casual"
	case ToneTechnical:
		return "technical"
	case ToneCreative:
		return "creative"
	case ToneFormal:
		return "formal"
	case ToneFriendly:
		return "friendly"
	default:
		return "neutral"
	}
}

// Tones lists every selectable tone in display order
var Tones = []Tone{
	ToneNeutral,
	ToneProfessional,
	ToneCasual,
	ToneTechnical,
	ToneCreative,
	ToneFormal,
	ToneFriendly,
}

// ParseTone maps a tone name to a Tone. Unrecognized names fall back
// to neutral rather than erroring.
func ParseTone(name string) Tone {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "professional":
		return ToneProfessional
	case "casual":
		return ToneCasual
	case "technical":
		return ToneTechnical
	case "creative":
		return ToneCreative
	case "formal":
		return ToneFormal
	case "friendly":
		return ToneFriendly
	default:
		return ToneNeutral
	}
}

var casualFillers = regexp.MustCompile(`(?i)\b(kinda|sorta|gonna|wanna)\b`)

var casualReplacements = []struct {
	formal *regexp.Regexp
	casual string
}{
	{regexp.MustCompile(`(?i)please provide`), "can you give me"},
	{regexp.MustCompile(`(?i)kindly`), ""},
	{regexp.MustCompile(`(?i)request`), "ask for"},
}

var contractions = []struct {
	short *regexp.Regexp
	full  string
}{
	{regexp.MustCompile(`(?i)don't`), "do not"},
	{regexp.MustCompile(`(?i)can't`), "cannot"},
	{regexp.MustCompile(`(?i)won't`), "will not"},
	{regexp.MustCompile(`(?i)shouldn't`), "should not"},
	{regexp.MustCompile(`(?i)wouldn't`), "would not"},
}

var technicalVerbs = []string{"implement", "develop", "create", "build"}

func (t Tone) apply(prompt string) string {
	switch t {
	case ToneProfessional:
		return makeProfessional(prompt)
	case ToneCasual:
		return makeCasual(prompt)
	case ToneTechnical:
		return makeTechnical(prompt)
	case ToneCreative:
		return makeCreative(prompt)
	case ToneFormal:
		return makeFormal(prompt)
	case ToneFriendly:
		return makeFriendly(prompt)
	default:
		return prompt
	}
}

func makeProfessional(prompt string) string {
	prompt = strings.TrimSpace(casualFillers.ReplaceAllString(prompt, ""))
	if len(strings.Fields(prompt)) < 10 {
		prompt = "Please " + lowerFirst(prompt)
	}
	return strings.TrimSpace(prompt)
}

func makeCasual(prompt string) string {
	for _, r := range casualReplacements {
		prompt = r.formal.ReplaceAllString(prompt, r.casual)
	}
	return strings.TrimSpace(prompt)
}

func makeTechnical(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, verb := range technicalVerbs {
		if strings.Contains(lower, verb) {
			return prompt
		}
	}
	return "Implement the following: " + prompt
}

func makeCreative(prompt string) string {
	if len(strings.Fields(prompt)) < 15 {
		return "Creatively explore: " + prompt
	}
	return prompt
}

func makeFormal(prompt string) string {
	for _, c := range contractions {
		prompt = c.short.ReplaceAllString(prompt, c.full)
	}
	return prompt
}

func makeFriendly(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, greeting := range []string{"hi", "hello", "hey"} {
		if strings.HasPrefix(lower, greeting) {
			return prompt
		}
	}
	return "Hey! " + prompt
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
