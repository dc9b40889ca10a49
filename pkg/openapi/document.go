package openapi

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// Version is the OpenAPI version of generated documents
const Version = "3.0.3"

// Documented is implemented by the document types emitted by openapigen
type Documented interface {
	OpenAPI() *openapi3.T
}

// JSONRequestBody wraps a schema into an optional application/json body
func JSONRequestBody(schema *openapi3.SchemaRef) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithJSONSchemaRef(schema),
	}
}

// JSONResponses returns a single "200" response with an application/json body
func JSONResponses(schema *openapi3.SchemaRef) *openapi3.Responses {
	responses := openapi3.NewResponsesWithCapacity(1)
	responses.Set("200", &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription("").WithJSONSchemaRef(schema),
	})
	return responses
}

// NoResponses returns an empty response set
func NoResponses() *openapi3.Responses {
	return openapi3.NewResponsesWithCapacity(0)
}

// PostItem returns a path item exposing op as POST
func PostItem(op *openapi3.Operation) *openapi3.PathItem {
	return &openapi3.PathItem{Post: op}
}

// NewDocument assembles a document from its parts
func NewDocument(info *openapi3.Info, paths *openapi3.Paths, components *openapi3.Components) *openapi3.T {
	return &openapi3.T{
		OpenAPI:    Version,
		Info:       info,
		Paths:      paths,
		Components: components,
	}
}

// MarshalJSON renders the document as indented JSON
func MarshalJSON(doc Documented) ([]byte, error) {
	return json.MarshalIndent(doc.OpenAPI(), "", "  ")
}

// MarshalYAML renders the document as YAML
func MarshalYAML(doc Documented) ([]byte, error) {
	return yaml.Marshal(doc.OpenAPI())
}
