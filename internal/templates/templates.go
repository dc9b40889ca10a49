// Package templates holds the text templates of generated documents.
package templates

// Template names
const (
	DocumentTemplate  = "document"
	OperationTemplate = "operation"
)

// DocumentData is the input of the document template
type DocumentData struct {
	TypeName   string // name of the emitted document type
	Title      string
	Version    string
	Operations []string // rendered operation blocks, in method order
	Components []string // ToSchema types registered as components
}

// OperationData is the input of the operation template
type OperationData struct {
	ID          string
	Description *string
	RequestBody string // schema expression; empty when there are no parameters
	Response    string // schema expression; empty when there is no output
}

const documentTemplate = `
// {{.TypeName}} is the OpenAPI document of {{.Title}}.
type {{.TypeName}} struct{}

var _ openapi.Documented = {{.TypeName}}{}

// OpenAPI builds the document.
func ({{.TypeName}}) OpenAPI() *openapi3.T {
	paths := openapi3.NewPaths()
{{- range .Operations}}
{{.}}
{{- end}}
	components := openapi3.NewComponents()
	components.Schemas = openapi3.Schemas{}
{{- range .Components}}
	openapi.RegisterComponent[{{.}}](components.Schemas)
{{- end}}
	return openapi.NewDocument(&openapi3.Info{Title: {{quote .Title}}, Version: {{quote .Version}}}, paths, &components)
}
`

const operationTemplate = `	{
		op := openapi3.NewOperation()
{{- if .Description}}
		op.Description = {{quote (deref .Description)}}
{{- end}}
		op.OperationID = {{quote .ID}}
{{- if .RequestBody}}
		op.RequestBody = openapi.JSONRequestBody({{.RequestBody}})
{{- end}}
{{- if .Response}}
		op.Responses = openapi.JSONResponses({{.Response}})
{{- else}}
		op.Responses = openapi.NoResponses()
{{- end}}
		paths.Set({{quote .ID}}, openapi.PostItem(op))
	}`
