package tui

import (
	"os"
	"path/filepath"
	"testing"

	"promptforge/internal/config"
)

func writeManifest(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPlugins(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "tidy.yaml", "name: tidy\nversion: 1.0.0\nentry: tidy_up\n")
	writeManifest(t, dir, "off.yaml", "name: off\nversion: 1.0.0\nentry: noop\ndisabled: true\n")
	writeManifest(t, dir, "broken.yaml", "name: broken\nentry: nothing\n")

	plugins, issues := loadPlugins(&config.Config{PluginDir: dir})

	if len(plugins) != 1 || plugins[0].Manifest.Name != "tidy" {
		t.Errorf("plugins = %v, want only tidy", plugins)
	}
	if len(issues) != 1 {
		t.Errorf("issues = %v, want one for the broken manifest", issues)
	}
}

func TestLoadPluginsWithoutDir(t *testing.T) {
	plugins, issues := loadPlugins(&config.Config{})
	if plugins != nil || issues != nil {
		t.Errorf("unset plugin dir should yield nothing: %v %v", plugins, issues)
	}

	plugins, issues = loadPlugins(&config.Config{
		PluginDir: filepath.Join(t.TempDir(), "missing"),
	})
	if plugins != nil || issues != nil {
		t.Errorf("missing plugin dir should yield nothing: %v %v", plugins, issues)
	}
}
