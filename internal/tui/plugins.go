package tui

import (
	"promptforge/internal/config"
	"promptforge/internal/plugin"
)

// loadPlugins discovers manifests under the configured plugin directory.
// Disabled plugins are dropped; failures come back as issues for the help
// view instead of aborting startup.
func loadPlugins(cfg *config.Config) ([]plugin.ManifestFile, []plugin.Issue) {
	manifests, issues, err := plugin.DiscoverDir(cfg.PluginDir)
	if err != nil {
		issues = append(issues, plugin.Issue{Path: cfg.PluginDir, Err: err})
		return nil, issues
	}

	var enabled []plugin.ManifestFile
	for _, m := range manifests {
		if m.Manifest.Disabled {
			continue
		}
		enabled = append(enabled, m)
	}
	return enabled, issues
}
