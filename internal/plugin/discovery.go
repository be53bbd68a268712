package plugin

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ManifestFile pairs a parsed manifest with its on-disk source.
type ManifestFile struct {
	Manifest Manifest
	Path     string
}

// Issue records one manifest that failed to load. Discovery never
// aborts on a bad file; hosts surface issues as diagnostics.
type Issue struct {
	Path string
	Err  error
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %v", i.Path, i.Err)
}

// DiscoverDir scans a directory for *.yaml/*.yml plugin manifests.
// A missing directory means no plugins. Duplicate names and malformed
// files are reported as issues, never as errors.
func DiscoverDir(dir string) ([]ManifestFile, []Issue, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil, nil
	}

	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("plugin: read dir %s: %w", trimmed, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var manifests []ManifestFile
	var issues []Issue
	seen := make(map[string]string)

	for _, name := range names {
		path := filepath.Join(trimmed, name)
		data, err := os.ReadFile(path)
		if err != nil {
			issues = append(issues, Issue{Path: path, Err: err})
			continue
		}
		m, err := ParseManifest(data)
		if err != nil {
			issues = append(issues, Issue{Path: path, Err: err})
			continue
		}
		if existing, ok := seen[m.Name]; ok {
			issues = append(issues, Issue{
				Path: path,
				Err:  fmt.Errorf("duplicate plugin name %s (already declared in %s)", m.Name, existing),
			})
			continue
		}
		seen[m.Name] = path
		manifests = append(manifests, ManifestFile{Manifest: m, Path: path})
	}

	return manifests, issues, nil
}
