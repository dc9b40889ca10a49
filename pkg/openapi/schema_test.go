package openapi

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hostSchema string

func (hostSchema) PartialSchema() *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("", openapi3.NewStringSchema().WithFormat("hostname"))
}

type leaf struct {
	Value uint32 `json:"value"`
}

func (leaf) ToSchema() (string, *openapi3.SchemaRef) {
	return Derive[leaf]()
}

type branch struct {
	Left    leaf       `json:"left"`
	Host    hostSchema `json:"host"`
	Created time.Time  `json:"created"`
	Tags    []string   `json:"tags"`
}

func (branch) ToSchema() (string, *openapi3.SchemaRef) {
	return Derive[branch]()
}

func TestPartial(t *testing.T) {
	schema := Partial[hostSchema]()
	require.NotNil(t, schema.Value)
	assert.True(t, schema.Value.Type.Is("string"))
	assert.Equal(t, "hostname", schema.Value.Format)
}

func TestInlineAndRegister(t *testing.T) {
	schema := Inline[leaf]()
	require.NotNil(t, schema.Value)
	assert.Empty(t, schema.Ref)
	assert.Contains(t, schema.Value.Properties, "value")

	schemas := openapi3.Schemas{}
	RegisterComponent[leaf](schemas)
	RegisterComponent[branch](schemas)
	assert.Len(t, schemas, 2)
	assert.Contains(t, schemas, "leaf")
	assert.Contains(t, schemas, "branch")
}

func TestDerive(t *testing.T) {
	name, schema := Derive[branch]()
	assert.Equal(t, "branch", name)
	require.NotNil(t, schema.Value)
	assert.Empty(t, schema.Ref)
	assert.True(t, schema.Value.Type.Is("object"))

	left := schema.Value.Properties["left"]
	require.NotNil(t, left)
	assert.Equal(t, "#/components/schemas/leaf", left.Ref)
	assert.Nil(t, left.Value)

	host := schema.Value.Properties["host"]
	require.NotNil(t, host)
	require.NotNil(t, host.Value)
	assert.Equal(t, "hostname", host.Value.Format)

	created := schema.Value.Properties["created"]
	require.NotNil(t, created)
	assert.Empty(t, created.Ref)
	require.NotNil(t, created.Value)
	assert.Equal(t, "date-time", created.Value.Format)

	tags := schema.Value.Properties["tags"]
	require.NotNil(t, tags)
	require.NotNil(t, tags.Value)
	assert.True(t, tags.Value.Type.Is("array"))
}

func TestBuiltin(t *testing.T) {
	tests := []struct {
		name   string
		schema *openapi3.SchemaRef
		typ    string
		format string
	}{
		{"bool", Builtin[bool](), "boolean", ""},
		{"string", Builtin[string](), "string", ""},
		{"uint64", Builtin[uint64](), "integer", ""},
		{"int64", Builtin[int64](), "integer", "int64"},
		{"float64", Builtin[float64](), "number", "double"},
		{"bytes", Builtin[[]byte](), "string", "byte"},
		{"time", Builtin[time.Time](), "string", "date-time"},
		{"duration", Builtin[time.Duration](), "integer", "int64"},
		{"uuid", Builtin[uuid.UUID](), "string", "uuid"},
		{"unit", Builtin[struct{}](), "object", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.schema.Value)
			assert.Empty(t, tt.schema.Ref)
			assert.True(t, tt.schema.Value.Type.Is(tt.typ), "got %v", tt.schema.Value.Type)
			assert.Equal(t, tt.format, tt.schema.Value.Format)
		})
	}

	raw := Builtin[json.RawMessage]()
	require.NotNil(t, raw.Value)
	assert.Nil(t, raw.Value.Type)
}

func TestObjectOf(t *testing.T) {
	schema := ObjectOf(
		Property{Name: "someU64", Schema: Builtin[uint64]()},
		Property{Name: "someU32", Schema: Builtin[uint32]()},
		Property{Name: "addr", Schema: Partial[hostSchema]()},
	)
	require.NotNil(t, schema.Value)
	assert.True(t, schema.Value.Type.Is("object"))
	assert.Equal(t, []string{"someU64", "someU32", "addr"}, schema.Value.Required)
	assert.Len(t, schema.Value.Properties, 3)
}

func TestContainers(t *testing.T) {
	array := ArrayOf(Builtin[string]())
	assert.True(t, array.Value.Type.Is("array"))
	assert.True(t, array.Value.Items.Value.Type.Is("string"))

	m := MapOf(Builtin[uint32]())
	assert.True(t, m.Value.Type.Is("object"))
	require.NotNil(t, m.Value.AdditionalProperties.Schema)
	assert.True(t, m.Value.AdditionalProperties.Schema.Value.Type.Is("integer"))
}

func TestNullable(t *testing.T) {
	inner := Builtin[string]()
	nullable := Nullable(inner)
	assert.True(t, nullable.Value.Nullable)
	assert.True(t, nullable.Value.Type.Is("string"))
	assert.False(t, inner.Value.Nullable)

	ref := openapi3.NewSchemaRef("#/components/schemas/leaf", nil)
	wrapped := Nullable(ref)
	assert.True(t, wrapped.Value.Nullable)
	require.Len(t, wrapped.Value.AllOf, 1)
	assert.Same(t, ref, wrapped.Value.AllOf[0])
}

func TestUnitAndAny(t *testing.T) {
	unit := Unit()
	assert.True(t, unit.Value.Type.Is("object"))
	assert.True(t, unit.Value.Nullable)

	assert.Nil(t, Any().Value.Type)
}

type record struct {
	ID      uuid.UUID       `json:"id"`
	Timeout time.Duration   `json:"timeout"`
	Extra   json.RawMessage `json:"extra"`
}

func TestDerive_KnownFields(t *testing.T) {
	_, schema := Derive[record]()
	require.NotNil(t, schema.Value)

	id := schema.Value.Properties["id"]
	require.NotNil(t, id)
	assert.True(t, id.Value.Type.Is("string"))
	assert.Equal(t, "uuid", id.Value.Format)

	timeout := schema.Value.Properties["timeout"]
	require.NotNil(t, timeout)
	assert.Equal(t, "int64", timeout.Value.Format)

	extra := schema.Value.Properties["extra"]
	require.NotNil(t, extra)
	assert.Nil(t, extra.Value.Type)
}
