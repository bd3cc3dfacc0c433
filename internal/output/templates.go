package output

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// TemplateLoader reads output templates, preferring a user override in a
// custom directory over the embedded default.
type TemplateLoader struct {
	customDir string
	embedFS   fs.FS
}

// NewTemplateLoader returns a loader that checks customDir first. An empty
// customDir disables overrides.
func NewTemplateLoader(customDir string) *TemplateLoader {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return &TemplateLoader{customDir: customDir, embedFS: sub}
}

// DefaultTemplateDir returns $XDG_CONFIG_HOME/tonal/templates, or "" when
// the config directory cannot be determined.
func DefaultTemplateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tonal", "templates")
}

// Load returns the template content and whether it came from an override.
func (l *TemplateLoader) Load(filename string) (content []byte, fromCustom bool, err error) {
	if l.customDir != "" {
		if content, err := os.ReadFile(l.CustomPath(filename)); err == nil {
			return content, true, nil
		}
	}

	content, err = fs.ReadFile(l.embedFS, filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}
	return content, false, nil
}

// CustomPath returns where an override for filename would live.
func (l *TemplateLoader) CustomPath(filename string) string {
	return filepath.Join(l.customDir, filename)
}

// List returns the embedded template names.
func (l *TemplateLoader) List() ([]string, error) {
	matches, err := fs.Glob(l.embedFS, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}
	return matches, nil
}

// Dump writes the embedded template to the custom directory. Existing
// files are kept unless force is set.
func (l *TemplateLoader) Dump(filename string, force bool) (string, error) {
	if l.customDir == "" {
		return "", fmt.Errorf("no custom template directory configured")
	}
	content, err := fs.ReadFile(l.embedFS, filename)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template %q: %w", filename, err)
	}

	path := l.CustomPath(filename)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("custom template already exists: %s (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(l.customDir, 0o755); err != nil { // #nosec G301 - config directory needs standard permissions
		return "", fmt.Errorf("failed to create template directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil { // #nosec G306 - template files are not sensitive
		return "", fmt.Errorf("failed to write template: %w", err)
	}
	return path, nil
}
