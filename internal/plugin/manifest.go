package plugin

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest describes a plugin on disk. The struct mirrors the YAML
// schema of manifest files discovered under the host's plugin directory.
type Manifest struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
	// Entry names the refiner the host should wire to this manifest.
	Entry    string `yaml:"entry"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Normalized returns a trimmed copy of the manifest.
func (m Manifest) Normalized() Manifest {
	return Manifest{
		Name:        strings.TrimSpace(m.Name),
		Version:     strings.TrimSpace(m.Version),
		Description: strings.TrimSpace(m.Description),
		Entry:       strings.TrimSpace(m.Entry),
		Disabled:    m.Disabled,
	}
}

// Validate ensures the manifest is well-formed.
func (m Manifest) Validate() error {
	normalized := m.Normalized()
	if normalized.Name == "" {
		return fmt.Errorf("plugin: name is required")
	}
	if normalized.Version == "" {
		return fmt.Errorf("plugin %s: version is required", normalized.Name)
	}
	if normalized.Entry == "" {
		return fmt.Errorf("plugin %s: entry is required", normalized.Name)
	}
	return nil
}

// ParseManifest decodes and validates a single manifest payload.
func ParseManifest(data []byte) (Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Manifest{}, fmt.Errorf("plugin: manifest payload is empty")
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("plugin: decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m.Normalized(), nil
}
