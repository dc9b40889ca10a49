package templates

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRegistry_Operation(t *testing.T) {
	registry := NewTemplateRegistry()
	description := "Doc comment"

	out, err := registry.Execute(OperationTemplate, OperationData{
		ID:          "TestRPC0",
		Description: &description,
		RequestBody: "openapi.Builtin[uint64]()",
		Response:    "openapi.Builtin[uint64]()",
	})
	require.NoError(t, err)
	assert.Contains(t, out, `op.Description = "Doc comment"`)
	assert.Contains(t, out, `op.OperationID = "TestRPC0"`)
	assert.Contains(t, out, "op.RequestBody = openapi.JSONRequestBody(openapi.Builtin[uint64]())")
	assert.Contains(t, out, "op.Responses = openapi.JSONResponses(openapi.Builtin[uint64]())")
	assert.Contains(t, out, `paths.Set("TestRPC0", openapi.PostItem(op))`)

	out, err = registry.Execute(OperationTemplate, OperationData{ID: "NoResponse"})
	require.NoError(t, err)
	assert.NotContains(t, out, "op.Description")
	assert.NotContains(t, out, "op.RequestBody")
	assert.Contains(t, out, "op.Responses = openapi.NoResponses()")
}

func TestTemplateRegistry_EmptyDescription(t *testing.T) {
	registry := NewTemplateRegistry()
	empty := ""
	out, err := registry.Execute(OperationTemplate, OperationData{ID: "M", Description: &empty})
	require.NoError(t, err)
	assert.Contains(t, out, `op.Description = ""`)
}

func TestTemplateRegistry_Document(t *testing.T) {
	registry := NewTemplateRegistry()
	op, err := registry.Execute(OperationTemplate, OperationData{ID: "Ping"})
	require.NoError(t, err)

	out, err := registry.Execute(DocumentTemplate, DocumentData{
		TypeName:   "PingDoc",
		Title:      "Ping",
		Version:    "0.0.0",
		Operations: []string{op},
		Components: []string{"Inner0", "Inner1"},
	})
	require.NoError(t, err)

	source := "package rpc\n" + out
	_, err = parser.ParseFile(token.NewFileSet(), "doc.go", source, parser.ParseComments)
	require.NoError(t, err, source)

	assert.Contains(t, out, "type PingDoc struct{}")
	assert.Contains(t, out, "var _ openapi.Documented = PingDoc{}")
	assert.Contains(t, out, "openapi.RegisterComponent[Inner0](components.Schemas)")
	assert.Contains(t, out, "openapi.RegisterComponent[Inner1](components.Schemas)")
	assert.Contains(t, out, `&openapi3.Info{Title: "Ping", Version: "0.0.0"}`)
}

func TestTemplateRegistry_Unknown(t *testing.T) {
	registry := NewTemplateRegistry()
	_, err := registry.Execute("missing", nil)
	assert.Error(t, err)
	assert.Panics(t, func() { registry.MustGet("missing") })
}

func TestTemplateUtils_QuoteString(t *testing.T) {
	tu := NewTemplateUtils()
	assert.Equal(t, `"plain"`, tu.QuoteString("plain"))
	assert.Equal(t, "`line one\nline two`", tu.QuoteString("line one\nline two"))
	assert.Equal(t, "\"has `tick`\\nand newline\"", tu.QuoteString("has `tick`\nand newline"))
	assert.Equal(t, "", tu.Deref(nil))
	assert.Equal(t, "SvcDoc", tu.DocTypeName("Svc"))
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"net/netip", "netip"},
		{"github.com/google/uuid", "uuid"},
		{"github.com/labstack/echo/v4", "echo"},
		{"gopkg.in/yaml.v3", "yaml"},
		{"github.com/mattn/go-isatty", "isatty"},
		{"github.com/example/client-go", "client"},
		{"v2", "v2"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, PackageName(tt.path))
		})
	}
}

func TestImportManager_Apply(t *testing.T) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "doc.go", "package rpc\n\nvar _ = 1\n", parser.ParseComments)
	require.NoError(t, err)

	im := NewImportManager()
	im.AddImport(OpenAPI3Import)
	im.AddImport(RuntimeImport)
	im.AddImport(OpenAPI3Import)

	other := NewImportManager()
	other.AddPackageImport("np", "net/netip")
	im.Merge(other)
	assert.Equal(t, []string{OpenAPI3Import, RuntimeImport, "net/netip"}, im.Paths())

	im.Apply(fset, file)
	var buf bytes.Buffer
	require.NoError(t, format.Node(&buf, fset, file))
	out := buf.String()
	assert.Contains(t, out, `"github.com/getkin/kin-openapi/openapi3"`)
	assert.Contains(t, out, `"github.com/Ash-L2L/l2l-openapi/pkg/openapi"`)
	assert.Contains(t, out, `np "net/netip"`)
}

func TestImportManager_AddSpec(t *testing.T) {
	im := NewImportManager()
	im.AddSpec(&ast.ImportSpec{Path: &ast.BasicLit{Kind: token.STRING, Value: `"net/netip"`}})
	im.AddSpec(&ast.ImportSpec{Name: ast.NewIdent("_"), Path: &ast.BasicLit{Kind: token.STRING, Value: `"embed"`}})
	im.AddSpec(&ast.ImportSpec{Name: ast.NewIdent("u"), Path: &ast.BasicLit{Kind: token.STRING, Value: `"github.com/google/uuid"`}})
	assert.Equal(t, []string{"net/netip", "github.com/google/uuid"}, im.Paths())

	assert.Equal(t, "u", ImportName(&ast.ImportSpec{Name: ast.NewIdent("u"), Path: &ast.BasicLit{Value: `"github.com/google/uuid"`}}))
	assert.Equal(t, "echo", ImportName(&ast.ImportSpec{Path: &ast.BasicLit{Value: `"github.com/labstack/echo/v4"`}}))
}
