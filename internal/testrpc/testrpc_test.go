package testrpc

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ash-L2L/l2l-openapi/internal/analyzer"
	"github.com/Ash-L2L/l2l-openapi/internal/generator"
	"github.com/Ash-L2L/l2l-openapi/internal/lower"
	"github.com/Ash-L2L/l2l-openapi/internal/models"
	"github.com/Ash-L2L/l2l-openapi/internal/parser"
	"github.com/Ash-L2L/l2l-openapi/pkg/openapi"
)

func operation(t *testing.T, doc *openapi3.T, id string) *openapi3.Operation {
	t.Helper()
	item := doc.Paths.Value(id)
	require.NotNil(t, item, id)
	require.NotNil(t, item.Post, id)
	return item.Post
}

func bodySchema(t *testing.T, op *openapi3.Operation) *openapi3.SchemaRef {
	t.Helper()
	require.NotNil(t, op.RequestBody)
	media := op.RequestBody.Value.Content.Get("application/json")
	require.NotNil(t, media)
	return media.Schema
}

func responseSchema(t *testing.T, op *openapi3.Operation) *openapi3.SchemaRef {
	t.Helper()
	response := op.Responses.Value("200")
	require.NotNil(t, response)
	media := response.Value.Content.Get("application/json")
	require.NotNil(t, media)
	return media.Schema
}

func TestDocument(t *testing.T) {
	doc := TestRPCDoc{}.OpenAPI()

	assert.Equal(t, openapi.Version, doc.OpenAPI)
	assert.Equal(t, "TestRPC", doc.Info.Title)
	assert.Equal(t, "0.0.0", doc.Info.Version)
	assert.Equal(t, 10, doc.Paths.Len(), "subscriptions are not documented")
	assert.Nil(t, doc.Paths.Value("Subscribe"))

	t.Run("descriptions", func(t *testing.T) {
		assert.Equal(t, "Doc comment", operation(t, doc, "TestRPC0").Description)
		assert.Equal(t, "Block doc comment", operation(t, doc, "TestRPC1").Description)
		assert.Empty(t, operation(t, doc, "NoDocComment").Description)
	})

	t.Run("operation ids", func(t *testing.T) {
		for _, id := range []string{"TestRPC0", "TestRPC1", "NoDocComment", "NoParams", "MultipleParams",
			"NoResponse", "ResultUnit", "ResultAddrPort", "AddrPortParam", "ResultInnerRef"} {
			assert.Equal(t, id, operation(t, doc, id).OperationID)
		}
	})

	t.Run("request bodies", func(t *testing.T) {
		assert.Nil(t, operation(t, doc, "NoParams").RequestBody)

		single := bodySchema(t, operation(t, doc, "TestRPC0"))
		assert.True(t, single.Value.Type.Is(openapi3.TypeInteger))

		multiple := bodySchema(t, operation(t, doc, "MultipleParams"))
		assert.True(t, multiple.Value.Type.Is(openapi3.TypeObject))
		assert.Equal(t, []string{"someU64", "someU32"}, multiple.Value.Required)
		assert.Len(t, multiple.Value.Properties, 2)

		addr := bodySchema(t, operation(t, doc, "AddrPortParam"))
		assert.True(t, addr.Value.Type.Is(openapi3.TypeString))
	})

	t.Run("responses", func(t *testing.T) {
		assert.Equal(t, 0, operation(t, doc, "NoResponse").Responses.Len())

		unit := responseSchema(t, operation(t, doc, "ResultUnit"))
		assert.True(t, unit.Value.Type.Is(openapi3.TypeObject))
		assert.True(t, unit.Value.Nullable)

		addr := responseSchema(t, operation(t, doc, "ResultAddrPort"))
		assert.True(t, addr.Value.Type.Is(openapi3.TypeString))

		refs := responseSchema(t, operation(t, doc, "ResultInnerRef"))
		require.Contains(t, refs.Value.Properties, "inner0")
		assert.Equal(t, "#/components/schemas/Inner0", refs.Value.Properties["inner0"].Ref)
		assert.Equal(t, "#/components/schemas/Inner1", refs.Value.Properties["inner1"].Ref)
	})

	t.Run("components", func(t *testing.T) {
		require.NotNil(t, doc.Components)
		assert.Len(t, doc.Components.Schemas, 2)
		require.Contains(t, doc.Components.Schemas, "Inner0")
		require.Contains(t, doc.Components.Schemas, "Inner1")
		assert.Contains(t, doc.Components.Schemas["Inner0"].Value.Properties, "inner0_u64")
		assert.Contains(t, doc.Components.Schemas["Inner1"].Value.Properties, "inner1_u32")
	})

	t.Run("json", func(t *testing.T) {
		data, err := openapi.MarshalJSON(TestRPCDoc{})
		require.NoError(t, err)

		var decoded struct {
			OpenAPI string `json:"openapi"`
			Paths   map[string]struct {
				Post struct {
					RequestBody struct {
						Content map[string]struct {
							Schema struct {
								Required   []string               `json:"required"`
								Properties map[string]interface{} `json:"properties"`
							} `json:"schema"`
						} `json:"content"`
					} `json:"requestBody"`
				} `json:"post"`
			} `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "3.0.3", decoded.OpenAPI)

		require.Contains(t, decoded.Paths, "MultipleParams")
		content := decoded.Paths["MultipleParams"].Post.RequestBody.Content
		require.Contains(t, content, "application/json")
		schema := content["application/json"].Schema
		assert.Equal(t, []string{"someU64", "someU32"}, schema.Required, "required keeps declaration order")
		assert.Len(t, schema.Properties, 2)
	})
}

// TestGeneratedFileIsCurrent regenerates testrpc_openapi.go from
// testrpc.go and compares the document part with the checked in file.
func TestGeneratedFileIsCurrent(t *testing.T) {
	file, err := parser.NewParser().ParseFile("testrpc.go")
	require.NoError(t, err)
	require.True(t, file.Errors.IsEmpty())
	require.Len(t, file.Asts, 1)

	model, err := analyzer.Analyze(file.Asts[0])
	require.NoError(t, err)
	assert.Len(t, model.Methods, 10)

	out, err := generator.NewGenerator(generator.Options{}).Generate(file, []*models.Ir{lower.Lower(model)})
	require.NoError(t, err)
	assert.Equal(t, models.OutputFull, out.Mode)
	assert.Equal(t, "testrpc_openapi.go", out.FilePath)

	generated := string(out.Content)
	assert.True(t, strings.HasPrefix(generated, generator.Header))
	assert.NotContains(t, generated, "go:build")
	assert.NotContains(t, generated, "go:generate")
	assert.NotContains(t, generated, "openapi:")
	assert.Contains(t, generated, "type TestRPC interface")
	assert.Contains(t, generated, "\tSubscriptions\n")
	assert.Contains(t, generated, "// TestRPC is served over JSON-RPC.\ntype TestRPC interface {")
	assert.Contains(t, generated, "\t\tctx context.Context,\n\t\taddr netip.AddrPort,\n")
	assert.Contains(t, generated, "\t// Result unit\n\tResultUnit(")
	assert.Contains(t, generated, "import (\n\t\"context\"\n\t\"net/netip\"\n\n\t\"github.com/Ash-L2L/l2l-openapi/pkg/openapi\"\n")

	committed, err := os.ReadFile("testrpc_openapi.go")
	require.NoError(t, err)

	const marker = "// TestRPCDoc is the OpenAPI document of TestRPC."
	require.Contains(t, generated, marker)
	require.Contains(t, string(committed), marker)
	assert.Equal(t,
		string(committed)[strings.Index(string(committed), marker):],
		generated[strings.Index(generated, marker):],
		"testrpc_openapi.go is stale; run go generate")
	assert.Contains(t, string(committed), "\t\tctx context.Context,\n\t\taddr netip.AddrPort,\n")
}
