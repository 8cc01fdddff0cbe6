package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/vango-dev/arbor/internal/config"
	"github.com/vango-dev/arbor/internal/errors"
)

// ManifestFile is the name of the generated manifest.
const ManifestFile = "page.yaml"

// Config contains template configuration.
type Config struct {
	// Title is the page title.
	Title string

	// Target is the id of the mount element.
	Target string

	// Addr is the preview server address.
	Addr string

	// Force overwrites existing files.
	Force bool
}

// Template represents a project template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"counter": counterTemplate(),
	"host":    hostTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("E162").
			WithDetail("Template '" + name + "' not found").
			WithSuggestion("Available templates: counter, host, minimal")
	}
	return tmpl, nil
}

// List returns all available template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Paths returns the relative paths the template writes, sorted.
func (t *Template) Paths() []string {
	paths := make([]string, 0, len(t.Files))
	for p := range t.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Create generates a project from the template. Existing files are left
// untouched and reported unless cfg.Force is set; nothing is written then.
func (t *Template) Create(dir string, cfg Config) error {
	if cfg.Title == "" {
		cfg.Title = "Arbor"
	}
	if cfg.Target == "" {
		cfg.Target = config.DefaultTarget
	}
	if cfg.Addr == "" {
		cfg.Addr = config.DefaultAddr
	}

	rendered := make(map[string][]byte, len(t.Files))
	for _, relPath := range t.Paths() {
		fullPath := filepath.Join(dir, relPath)
		if !cfg.Force {
			if _, err := os.Stat(fullPath); err == nil {
				return errors.New("E163").
					WithDetail(fullPath + " already exists.").
					WithSuggestion("Use --force to overwrite it.")
			}
		}

		tmpl, err := template.New(relPath).Parse(t.Files[relPath])
		if err != nil {
			return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}
		rendered[relPath] = buf.Bytes()
	}

	for relPath, content := range rendered {
		fullPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(fullPath, content, 0644); err != nil {
			return err
		}
	}
	return nil
}

const configFile = `log:
  level: info
  format: text
render:
  marker_comments: false
  target: {{.Target}}
serve:
  addr: {{.Addr}}
  watch: true
`

// minimalTemplate returns the minimal template.
func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "A single static page",
		Files: map[string]string{
			config.ConfigFileName: configFile,
			ManifestFile: `root:
  element: main
  children:
    - element: h1
      children: ["{{.Title}}"]
    - element: p
      children: ["Edit page.yaml and save to see changes."]
`,
		},
	}
}

// counterTemplate returns the counter template.
func counterTemplate() *Template {
	return &Template{
		Name:        "counter",
		Description: "Stores bound to text and class lists",
		Files: map[string]string{
			config.ConfigFileName: configFile,
			ManifestFile: `# Change a store while "arbor serve" runs:
#   curl -X POST -d 5 http://{{.Addr}}/stores/count
#   curl -X POST -d '"light"' http://{{.Addr}}/stores/theme
stores:
  count: 0
  theme: dark
root:
  element: main
  props:
    class: [app, {store: theme}]
  children:
    - element: h1
      children: ["{{.Title}}"]
    - element: p
      children: ["Count: ", {store: count}]
`,
		},
	}
}

// hostTemplate returns the host template.
func hostTemplate() *Template {
	return &Template{
		Name:        "host",
		Description: "A manifest mounted into an existing HTML shell",
		Files: map[string]string{
			config.ConfigFileName: configFile,
			ManifestFile: `stores:
  greeting: Hello
root:
  element: section
  children: [{store: greeting}, ", world"]
`,
			"shell.html": `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
</head>
<body>
  <header>{{.Title}}</header>
  <main id="{{.Target}}"></main>
</body>
</html>
`,
		},
	}
}
