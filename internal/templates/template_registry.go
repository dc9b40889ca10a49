package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]*template.Template
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]*template.Template),
	}

	registry.register(DocumentTemplate, documentTemplate)
	registry.register(OperationTemplate, operationTemplate)

	return registry
}

func (tr *TemplateRegistry) register(name, text string) {
	tmpl := template.New(name).Funcs(NewTemplateUtils().FuncMap())
	tr.templates[name] = template.Must(tmpl.Parse(text))
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (*template.Template, bool) {
	tmpl, exists := tr.templates[name]
	return tmpl, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) *template.Template {
	tmpl, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return tmpl
}

// Execute renders the named template with data
func (tr *TemplateRegistry) Execute(name string, data any) (string, error) {
	tmpl, exists := tr.Get(name)
	if !exists {
		return "", fmt.Errorf("template not found: %s", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
