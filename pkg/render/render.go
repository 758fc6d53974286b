// Package render loads the user's post, notes and description templates.
//
// Templates use html/template, so values are HTML-escaped unless passed
// through the safe helper, which is meant for markup scraped from the
// archive such as a work summary.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
)

// Template is a parsed template ready to render.
type Template struct {
	tmpl *template.Template
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"safe": func(s string) template.HTML {
			return template.HTML(s)
		},
		"join": strings.Join,
	}
}

// Load parses the template file at path.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return Parse(filepath.Base(path), string(data))
}

// Parse parses text as a template called name.
func Parse(name, text string) (*Template, error) {
	tmpl, err := template.New(name).Funcs(funcMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Render executes the template against data.
func (t *Template) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", t.tmpl.Name(), err)
	}
	return buf.String(), nil
}
