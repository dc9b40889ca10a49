// Package openapi is the runtime used by code generated with openapigen.
//
// A type takes part in a generated document through one of two
// capabilities. PartialSchema returns an unnamed schema and is the default
// for parameters and outputs. ToSchema returns a named schema; when used
// inline the name is dropped, and when listed in ref_schemas the schema is
// registered as a component under that name.
//
//	func (AddrPortSchema) PartialSchema() *openapi3.SchemaRef {
//		return openapi3.NewSchemaRef("", openapi3.NewStringSchema())
//	}
//
// Generated documents implement Documented and can be served with the
// handlers in the adapters package.
package openapi
