package format

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed mapping.yaml
var mappingData []byte

// Recommendation is the outcome of format selection
type Recommendation struct {
	Format      Format
	Confidence  float64
	Explanation string
	// Template is the placeholder skeleton for the recommended format.
	Template string
}

// Selector recommends formats from the provider/model mapping.
type Selector struct {
	mapping map[string]map[string]string
	// index maps "provider/model" and bare "model" to a format name
	index map[string]string
}

// NewSelector loads the embedded provider/model format mapping.
func NewSelector() (*Selector, error) {
	var mapping map[string]map[string]string
	if err := yaml.Unmarshal(mappingData, &mapping); err != nil {
		return nil, fmt.Errorf("format: decode mapping: %w", err)
	}

	index := make(map[string]string)
	for provider, models := range mapping {
		for model, name := range models {
			index[strings.ToLower(provider)+"/"+strings.ToLower(model)] = name
			index[strings.ToLower(model)] = name
		}
	}

	return &Selector{mapping: mapping, index: index}, nil
}

// Recommend picks the best format for the target model. Unknown models
// fall back to markdown with reduced confidence.
func (s *Selector) Recommend(provider, model string) Recommendation {
	return s.RecommendWithFallback(provider, model, Markdown)
}

// RecommendWithFallback is Recommend with a caller-chosen fallback format
// for models the mapping does not know.
func (s *Selector) RecommendWithFallback(provider, model string, fallback Format) Recommendation {
	var name string
	confidence := 0.5
	var reason string

	modelLower := strings.ToLower(strings.TrimSpace(model))
	providerLower := strings.ToLower(strings.TrimSpace(provider))

	if modelLower != "" {
		if providerLower != "" {
			if found, ok := s.index[providerLower+"/"+modelLower]; ok {
				name = found
				confidence = 1.0
				reason = fmt.Sprintf("Based on format mapping, %s %s prefers %s.", provider, model, found)
			}
		}
		if name == "" {
			if found, ok := s.index[modelLower]; ok {
				name = found
				confidence = 0.9
				reason = fmt.Sprintf("Based on format mapping, %s prefers %s.", model, found)
			}
		}
		if name == "" {
			// Partial match against known models, in sorted order so
			// repeated calls pick the same entry.
			keys := make([]string, 0, len(s.index))
			for k := range s.index {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if strings.Contains(k, modelLower) || strings.Contains(modelLower, k) {
					name = s.index[k]
					confidence = 0.7
					reason = fmt.Sprintf("Based on partial match with %s, recommending %s.", k, name)
					break
				}
			}
		}
	}

	result := fallback
	if name != "" {
		result = Parse(name)
	} else {
		reason = fmt.Sprintf("No specific format mapping found, using fallback %s.", fallback)
	}

	return Recommendation{
		Format:      result,
		Confidence:  confidence,
		Explanation: strings.TrimSpace(reason + " " + explanations[result]),
		Template:    Template(result),
	}
}

// Models lists every known model as "provider/model", sorted.
func (s *Selector) Models() []string {
	var models []string
	for provider, providerModels := range s.mapping {
		for model := range providerModels {
			models = append(models, provider+"/"+model)
		}
	}
	sort.Strings(models)
	return models
}
