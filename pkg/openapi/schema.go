package openapi

import (
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// PartialSchema is implemented by types that describe themselves with an
// unnamed schema
type PartialSchema interface {
	PartialSchema() *openapi3.SchemaRef
}

// ToSchema is implemented by types that describe themselves with a named
// schema. Schemas referenced by name are expected to be registered as
// components by the document that uses them.
type ToSchema interface {
	ToSchema() (string, *openapi3.SchemaRef)
}

// Partial returns the schema of T through its PartialSchema capability
func Partial[T PartialSchema]() *openapi3.SchemaRef {
	var zero T
	return zero.PartialSchema()
}

// Inline returns the schema of T through its ToSchema capability, without
// the name
func Inline[T ToSchema]() *openapi3.SchemaRef {
	var zero T
	_, schema := zero.ToSchema()
	return schema
}

// RegisterComponent stores the named schema of T in schemas
func RegisterComponent[T ToSchema](schemas openapi3.Schemas) {
	var zero T
	name, schema := zero.ToSchema()
	schemas[name] = schema
}

// Derive reflects over T and returns its type name and schema. Nested
// structs are emitted as component references. Fields whose type
// implements PartialSchema use that schema instead of the reflected one, as
// do fields of the types Builtin knows.
// It panics when T cannot be described.
func Derive[T any]() (string, *openapi3.SchemaRef) {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	d := &deriver{structs: make(map[string]*openapi3.Schema)}
	components := openapi3.Schemas{}
	schema, err := openapi3gen.NewSchemaRefForValue(zero, components,
		openapi3gen.UseAllExportedFields(),
		openapi3gen.CreateComponentSchemas(openapi3gen.ExportComponentSchemasOptions{
			ExportComponentSchemas: true,
		}),
		openapi3gen.SchemaCustomizer(d.customize),
	)
	if err != nil {
		panic("openapi: deriving schema of " + t.String() + ": " + err.Error())
	}
	d.inlineDangling(schema, components, make(map[*openapi3.Schema]bool))
	return t.Name(), schema
}

// deriver remembers every struct schema seen during reflection so that
// references to structs without properties, such as time.Time, can be
// inlined again
type deriver struct {
	structs map[string]*openapi3.Schema
}

func (d *deriver) customize(name string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
	if t.Kind() == reflect.Struct {
		d.structs[t.Name()] = schema
	}
	if name == "_root" || t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return nil
	}
	if known, ok := knownSchema(t); ok {
		*schema = *known
		return nil
	}
	partial, ok := reflect.Zero(t).Interface().(PartialSchema)
	if !ok {
		return nil
	}
	if ref := partial.PartialSchema(); ref != nil && ref.Value != nil {
		*schema = *ref.Value
	}
	return nil
}

func (d *deriver) inlineDangling(ref *openapi3.SchemaRef, components openapi3.Schemas, seen map[*openapi3.Schema]bool) {
	if ref == nil {
		return
	}
	if ref.Value == nil {
		name := strings.TrimPrefix(ref.Ref, componentPrefix)
		if _, ok := components[name]; ok {
			return
		}
		if schema, ok := d.structs[name]; ok {
			ref.Ref = ""
			ref.Value = schema
		}
		return
	}
	if seen[ref.Value] {
		return
	}
	seen[ref.Value] = true

	for _, property := range ref.Value.Properties {
		d.inlineDangling(property, components, seen)
	}
	d.inlineDangling(ref.Value.Items, components, seen)
	d.inlineDangling(ref.Value.AdditionalProperties.Schema, components, seen)
	for _, all := range []openapi3.SchemaRefs{ref.Value.AllOf, ref.Value.OneOf, ref.Value.AnyOf} {
		for _, inner := range all {
			d.inlineDangling(inner, components, seen)
		}
	}
}

const componentPrefix = "#/components/schemas/"

// Property is one member of an object schema
type Property struct {
	Name   string
	Schema *openapi3.SchemaRef
}

// ObjectOf builds an object schema whose properties are all required.
// Required lists the properties in the given order.
func ObjectOf(properties ...Property) *openapi3.SchemaRef {
	schema := openapi3.NewObjectSchema()
	for _, p := range properties {
		schema.WithPropertyRef(p.Name, p.Schema)
		schema.Required = append(schema.Required, p.Name)
	}
	return openapi3.NewSchemaRef("", schema)
}

// ArrayOf builds an array schema with the given items
func ArrayOf(items *openapi3.SchemaRef) *openapi3.SchemaRef {
	schema := openapi3.NewArraySchema()
	schema.Items = items
	return openapi3.NewSchemaRef("", schema)
}

// MapOf builds an object schema whose values follow the given schema
func MapOf(values *openapi3.SchemaRef) *openapi3.SchemaRef {
	schema := openapi3.NewObjectSchema()
	schema.AdditionalProperties = openapi3.AdditionalProperties{Schema: values}
	return openapi3.NewSchemaRef("", schema)
}

// Nullable marks the schema as accepting null. A reference cannot carry
// siblings, so it is wrapped in allOf.
func Nullable(inner *openapi3.SchemaRef) *openapi3.SchemaRef {
	if inner.Ref != "" || inner.Value == nil {
		schema := openapi3.NewAllOfSchema()
		schema.AllOf = openapi3.SchemaRefs{inner}
		schema.Nullable = true
		return openapi3.NewSchemaRef("", schema)
	}
	schema := *inner.Value
	schema.Nullable = true
	return openapi3.NewSchemaRef("", &schema)
}

// Unit is the schema of a value carrying no information
func Unit() *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("", openapi3.NewObjectSchema().WithNullable())
}

// Any is the schema of an arbitrary JSON value
func Any() *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("", openapi3.NewSchema())
}
