package openapi

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/google/uuid"
)

var (
	uuidType       = reflect.TypeOf(uuid.UUID{})
	rawMessageType = reflect.TypeOf(json.RawMessage{})
	durationType   = reflect.TypeOf(time.Duration(0))
)

// Builtin returns the schema of a predeclared or well known standard type.
// Generated code uses it for types that cannot implement a capability.
// It panics when T cannot be described.
func Builtin[T any]() *openapi3.SchemaRef {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if schema, ok := knownSchema(t); ok {
		return openapi3.NewSchemaRef("", schema)
	}
	if t.Kind() == reflect.Struct && t.NumField() == 0 {
		return Unit()
	}

	var zero T
	schema, err := openapi3gen.NewSchemaRefForValue(zero, nil)
	if err != nil {
		panic("openapi: deriving schema of " + t.String() + ": " + err.Error())
	}
	return openapi3.NewSchemaRef("", schema.Value)
}

// knownSchema describes types whose reflected shape differs from their
// JSON encoding
func knownSchema(t reflect.Type) (*openapi3.Schema, bool) {
	switch t {
	case uuidType:
		return openapi3.NewUUIDSchema(), true
	case rawMessageType:
		return &openapi3.Schema{}, true
	case durationType:
		return openapi3.NewInt64Schema(), true
	}
	return nil, false
}
