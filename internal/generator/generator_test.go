package generator

import (
	"go/ast"
	goparser "go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ash-L2L/l2l-openapi/internal/analyzer"
	"github.com/Ash-L2L/l2l-openapi/internal/lower"
	"github.com/Ash-L2L/l2l-openapi/internal/models"
	"github.com/Ash-L2L/l2l-openapi/internal/parser"
)

func build(t *testing.T, source string) (*parser.File, []*models.Ir) {
	t.Helper()
	file, err := parser.NewParser().ParseSource("svc.go", source)
	require.NoError(t, err)
	require.True(t, file.Errors.IsEmpty(), "unexpected parse errors: %v", file.Errors)

	irs := make([]*models.Ir, 0, len(file.Asts))
	for _, a := range file.Asts {
		model, err := analyzer.Analyze(a)
		require.NoError(t, err)
		irs = append(irs, lower.Lower(model))
	}
	return file, irs
}

func mustParse(t *testing.T, content []byte) {
	t.Helper()
	_, err := goparser.ParseFile(token.NewFileSet(), "out.go", content, goparser.ParseComments)
	require.NoError(t, err, string(content))
}

const shapes = `package svc

import (
	"context"
	"net/netip"
	"time"
)

//openapi:gen ref_schemas [Inner0]
type Shapes interface {
	// No params
	NoParams(ctx context.Context) error
	Single(ctx context.Context, x uint64) (uint64, error)
	Multi(ctx context.Context, a uint64, b uint32) (uint32, error)
	NoResponse(ctx context.Context, x uint32)

	//openapi:method output_schema(PartialSchema = "AddrPortSchema")
	Addr(ctx context.Context) (netip.AddrPort, error)

	Since(ctx context.Context, at time.Time) time.Duration
}
`

func TestGenerate_Companion(t *testing.T) {
	file, irs := build(t, shapes)
	g := NewGenerator(Options{})

	out, err := g.Generate(file, irs)
	require.NoError(t, err)
	mustParse(t, out.Content)

	content := string(out.Content)
	assert.Equal(t, models.OutputCompanion, out.Mode)
	assert.Equal(t, "svc_openapi.go", out.FilePath)
	assert.Equal(t, []string{"Shapes"}, out.Interfaces)
	assert.True(t, strings.HasPrefix(content, Header+"\n\npackage svc\n"))

	assert.Contains(t, content, `"github.com/getkin/kin-openapi/openapi3"`)
	assert.Contains(t, content, `"github.com/Ash-L2L/l2l-openapi/pkg/openapi"`)
	assert.Contains(t, content, `"time"`)
	assert.NotContains(t, content, `"context"`)
	assert.NotContains(t, content, `"net/netip"`)

	assert.Contains(t, content, "type ShapesDoc struct{}")
	assert.Contains(t, content, "var _ openapi.Documented = ShapesDoc{}")
	assert.Contains(t, content, "func (ShapesDoc) OpenAPI() *openapi3.T {")
	assert.Contains(t, content, `op.Description = "No params"`)
	assert.Contains(t, content, `op.OperationID = "NoParams"`)
	assert.Contains(t, content, "op.Responses = openapi.JSONResponses(openapi.Unit())")
	assert.Contains(t, content, "op.RequestBody = openapi.JSONRequestBody(openapi.Builtin[uint64]())")
	assert.Contains(t, content, `openapi.Property{Name: "a", Schema: openapi.Builtin[uint64]()}`)
	assert.Contains(t, content, `openapi.Property{Name: "b", Schema: openapi.Builtin[uint32]()}`)
	assert.Contains(t, content, "op.Responses = openapi.NoResponses()")
	assert.Contains(t, content, "op.Responses = openapi.JSONResponses(openapi.Partial[AddrPortSchema]())")
	assert.Contains(t, content, "op.RequestBody = openapi.JSONRequestBody(openapi.Builtin[time.Time]())")
	assert.Contains(t, content, "op.Responses = openapi.JSONResponses(openapi.Builtin[time.Duration]())")
	assert.Contains(t, content, `paths.Set("Multi", openapi.PostItem(op))`)
	assert.Contains(t, content, "openapi.RegisterComponent[Inner0](components.Schemas)")
	assert.Contains(t, content, `&openapi3.Info{Title: "Shapes", Version: "0.0.0"}`)

	// the source interface is not repeated
	assert.NotContains(t, content, "type Shapes interface")
	// standard library imports are grouped ahead of the rest
	assert.Contains(t, content, "import (\n\t\"time\"\n\n\t\"github.com/Ash-L2L/l2l-openapi/pkg/openapi\"\n\t\"github.com/getkin/kin-openapi/openapi3\"\n)")

	// properties keep parameter order
	objectOf := strings.Index(content, "openapi.ObjectOf(")
	propA := strings.Index(content, `openapi.Property{Name: "a"`)
	propB := strings.Index(content, `openapi.Property{Name: "b"`)
	require.GreaterOrEqual(t, objectOf, 0)
	assert.Less(t, objectOf, propA)
	assert.Less(t, propA, propB)

	// operations keep declaration order
	assert.Less(t, strings.Index(content, `"NoParams"`), strings.Index(content, `"Single"`))
	assert.Less(t, strings.Index(content, `"Single"`), strings.Index(content, `"Since"`))
}

func TestGenerate_Full(t *testing.T) {
	source := `//go:build openapigen

//go:generate go run github.com/Ash-L2L/l2l-openapi/cmd/openapigen

package svc

import "context"

// Svc is documented.
//
//openapi:gen
type Svc interface {
	// Ping answers
	//rpc:method ping
	Ping(
		ctx context.Context,
		//openapi:arg schema(ToSchema = "Payload")
		payload string,
	) (string, error)
}
`
	file, irs := build(t, source)
	g := NewGenerator(Options{Title: "Service", Version: "1.2.3"})

	out, err := g.Generate(file, irs)
	require.NoError(t, err)
	mustParse(t, out.Content)

	content := string(out.Content)
	assert.Equal(t, models.OutputFull, out.Mode)
	assert.NotContains(t, content, "go:build")
	assert.NotContains(t, content, "go:generate")
	assert.NotContains(t, content, "openapi:")
	assert.Contains(t, content, "type Svc interface")
	assert.Contains(t, content, "// Svc is documented.")
	assert.Contains(t, content, "//rpc:method ping")
	// stripped directives leave no blank lines behind
	assert.Contains(t, content, "// Svc is documented.\ntype Svc interface {")
	assert.Contains(t, content, "\t\tctx context.Context,\n\t\tpayload string,\n")
	assert.Contains(t, content, `"context"`)
	assert.Contains(t, content, "op.RequestBody = openapi.JSONRequestBody(openapi.Inline[Payload]())")
	assert.Contains(t, content, "op.Responses = openapi.JSONResponses(openapi.Builtin[string]())")
	assert.Contains(t, content, `&openapi3.Info{Title: "Service", Version: "1.2.3"}`)
	assert.Less(t, strings.Index(content, "type Svc interface"), strings.Index(content, "type SvcDoc struct{}"))
}

func TestGenerate_MultipleInterfaces(t *testing.T) {
	source := `package svc

//openapi:gen
type A interface {
	Ping(x uint32) uint32
}

//openapi:gen
type B interface {
	Pong()
}
`
	file, irs := build(t, source)
	out, err := NewGenerator(Options{}).Generate(file, irs)
	require.NoError(t, err)
	mustParse(t, out.Content)

	assert.Equal(t, []string{"A", "B"}, out.Interfaces)
	assert.Contains(t, string(out.Content), "type ADoc struct{}")
	assert.Contains(t, string(out.Content), "type BDoc struct{}")
}

func TestGenerate_NoInterfaces(t *testing.T) {
	file, err := parser.NewParser().ParseSource("svc.go", "package svc\n")
	require.NoError(t, err)
	_, err = NewGenerator(Options{}).Generate(file, nil)
	assert.Error(t, err)
}

func TestSchemaExpr(t *testing.T) {
	tests := []struct {
		expr string
		kind models.SchemaKind
		want string
	}{
		{"uint64", models.SchemaKindPartial, "openapi.Builtin[uint64]()"},
		{"string", models.SchemaKindToSchema, "openapi.Builtin[string]()"},
		{"netip.AddrPort", models.SchemaKindPartial, "openapi.Partial[netip.AddrPort]()"},
		{"InnerRefs", models.SchemaKindToSchema, "openapi.Inline[InnerRefs]()"},
		{"[]Inner0", models.SchemaKindToSchema, "openapi.ArrayOf(openapi.Inline[Inner0]())"},
		{"[4]uint8", models.SchemaKindPartial, "openapi.ArrayOf(openapi.Builtin[uint8]())"},
		{"[]byte", models.SchemaKindPartial, "openapi.Builtin[[]byte]()"},
		{"map[string]uint32", models.SchemaKindPartial, "openapi.MapOf(openapi.Builtin[uint32]())"},
		{"*Inner0", models.SchemaKindPartial, "openapi.Nullable(openapi.Partial[Inner0]())"},
		{"(Inner0)", models.SchemaKindPartial, "openapi.Partial[Inner0]()"},
		{"struct{}", models.SchemaKindPartial, "openapi.Unit()"},
		{"struct{ A int }", models.SchemaKindPartial, "openapi.Builtin[struct{A int}]()"},
		{"any", models.SchemaKindPartial, "openapi.Any()"},
		{"interface{}", models.SchemaKindPartial, "openapi.Any()"},
		{"func()", models.SchemaKindPartial, "openapi.Any()"},
		{"time.Time", models.SchemaKindToSchema, "openapi.Builtin[time.Time]()"},
		{"uuid.UUID", models.SchemaKindPartial, "openapi.Builtin[uuid.UUID]()"},
		{"json.RawMessage", models.SchemaKindPartial, "openapi.Builtin[json.RawMessage]()"},
		{"Page[Item]", models.SchemaKindToSchema, "openapi.Inline[Page[Item]]()"},
		{"Pair[K, V]", models.SchemaKindPartial, "openapi.Partial[Pair[K, V]]()"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			expr, err := goparser.ParseExpr(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, schemaExpr(expr, tt.kind))
		})
	}
}

func TestResultType(t *testing.T) {
	tests := []struct {
		sig  string
		want string
	}{
		{"func() error", ""},
		{"func() (uint64, error)", "uint64"},
		{"func() uint64", "uint64"},
		{"func() (v Inner0, err error)", "Inner0"},
	}
	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			expr, err := goparser.ParseExpr(tt.sig)
			require.NoError(t, err)
			fn := expr.(*ast.FuncType)
			got := resultType(fn.Results)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, types.ExprString(got))
		})
	}
}

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   models.OutputMode
	}{
		{"no constraint", "package svc\n", models.OutputCompanion},
		{"tag", "//go:build openapigen\n\npackage svc\n", models.OutputFull},
		{"negated tag", "//go:build !openapigen\n\npackage svc\n", models.OutputCompanion},
		{"other tag", "//go:build linux\n\npackage svc\n", models.OutputCompanion},
		{"after package", "package svc\n\n//go:build openapigen\n", models.OutputCompanion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := goparser.ParseFile(token.NewFileSet(), "svc.go", tt.source, goparser.ParseComments)
			require.NoError(t, err)
			assert.Equal(t, tt.want, DetectMode(file, DefaultBuildTag))
		})
	}
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "testrpc_openapi.go", OutputPath("testrpc.go", DefaultSuffix))
	assert.Equal(t, filepath.Join("rpc", "rpc_service_openapi.go"), OutputPath(filepath.Join("rpc", "RpcService.go"), DefaultSuffix))
	assert.Equal(t, filepath.Join("rpc", "api.gen.go"), OutputPath(filepath.Join("rpc", "api.go"), ".gen.go"))
	assert.True(t, IsOutputPath(filepath.Join("rpc", "testrpc_openapi.go"), DefaultSuffix))
	assert.False(t, IsOutputPath("testrpc.go", DefaultSuffix))
}
