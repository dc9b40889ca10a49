package templates

import (
	"strconv"
	"strings"
	"text/template"
)

// TemplateUtils provides common utilities for template generation
type TemplateUtils struct{}

// NewTemplateUtils creates a new template utilities instance
func NewTemplateUtils() *TemplateUtils {
	return &TemplateUtils{}
}

// FuncMap returns the functions available to templates
func (tu *TemplateUtils) FuncMap() template.FuncMap {
	return template.FuncMap{
		"quote": tu.QuoteString,
		"deref": tu.Deref,
	}
}

// QuoteString returns s as a Go string literal. Multi-line strings without
// backquotes use a raw literal.
func (tu *TemplateUtils) QuoteString(s string) string {
	if strings.Contains(s, "\n") && !strings.Contains(s, "`") && !strings.Contains(s, "\r") {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

// Deref returns the value of s, or "" when s is nil
func (tu *TemplateUtils) Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DocTypeName returns the name of the document type of an interface
func (tu *TemplateUtils) DocTypeName(interfaceName string) string {
	return interfaceName + "Doc"
}
