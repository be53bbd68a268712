// Package plugin provides an explicit registry for external prompt
// refiners. The registry holds values injected by the host; discovering
// and loading plugin code is the host's concern, not the pipeline's.
package plugin

import (
	"fmt"
	"sort"
)

// Metadata carries provider/model/format hints to a plugin refiner.
type Metadata map[string]string

// Sections is a plugin's replacement for the built-in prompt analysis.
type Sections struct {
	Context     string
	Instruction string
	Examples    string
	Constraints string
}

// Refiner is the single extension point: given the current prompt text
// and metadata hints, return updated sections.
type Refiner func(prompt string, meta Metadata) (Sections, error)

// Registry maps plugin names to refiners. Construct one per host and
// pass it where needed; there is no process-wide registry.
type Registry struct {
	refiners map[string]Refiner
}

func NewRegistry() *Registry {
	return &Registry{refiners: make(map[string]Refiner)}
}

// Register adds a named refiner. Names must be unique and non-empty.
func (r *Registry) Register(name string, fn Refiner) error {
	if name == "" {
		return fmt.Errorf("plugin: name is required")
	}
	if fn == nil {
		return fmt.Errorf("plugin %s: refiner is required", name)
	}
	if _, ok := r.refiners[name]; ok {
		return fmt.Errorf("plugin: duplicate name %s", name)
	}
	r.refiners[name] = fn
	return nil
}

// Names returns the registered plugin names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.refiners))
	for name := range r.refiners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply invokes a registered refiner. Panicking plugins are contained
// and reported as errors so the caller can fall back to the built-in
// analysis.
func (r *Registry) Apply(name, prompt string, meta Metadata) (sections Sections, err error) {
	fn, ok := r.refiners[name]
	if !ok {
		return Sections{}, fmt.Errorf("plugin: not registered: %s", name)
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("plugin %s: panic: %v", name, rec)
		}
	}()

	sections, err = fn(prompt, meta)
	if err != nil {
		return Sections{}, fmt.Errorf("plugin %s: %w", name, err)
	}
	return sections, nil
}
