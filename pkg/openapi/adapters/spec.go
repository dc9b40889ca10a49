// Package adapters serves generated OpenAPI documents over HTTP.
//
// The document is rendered on first request and cached. JSON is served by
// default; a "format=yaml" query parameter selects YAML.
package adapters

import (
	"sync"

	"github.com/Ash-L2L/l2l-openapi/pkg/openapi"
)

// Content types of the rendered document
const (
	ContentTypeJSON = "application/json"
	ContentTypeYAML = "application/yaml"
)

// FormatParam is the query parameter selecting the rendering
const FormatParam = "format"

// Spec renders one document lazily
type Spec struct {
	doc openapi.Documented

	once     sync.Once
	jsonBody []byte
	yamlBody []byte
	err      error
}

// NewSpec creates a Spec serving doc
func NewSpec(doc openapi.Documented) *Spec {
	return &Spec{doc: doc}
}

func (s *Spec) render() {
	s.jsonBody, s.err = openapi.MarshalJSON(s.doc)
	if s.err != nil {
		return
	}
	s.yamlBody, s.err = openapi.MarshalYAML(s.doc)
}

// Body returns the rendered document and its content type for the
// requested format. Unknown formats fall back to JSON.
func (s *Spec) Body(format string) ([]byte, string, error) {
	s.once.Do(s.render)
	if s.err != nil {
		return nil, "", s.err
	}
	if format == "yaml" || format == "yml" {
		return s.yamlBody, ContentTypeYAML, nil
	}
	return s.jsonBody, ContentTypeJSON, nil
}
