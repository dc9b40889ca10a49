package models

import (
	"go/ast"
	"go/token"
)

// SchemaKind selects which schema capability derives a schema for a type
type SchemaKind int

const (
	// SchemaKindPartial invokes the lightweight PartialSchema capability
	SchemaKindPartial SchemaKind = iota
	// SchemaKindToSchema invokes the named ToSchema capability and keeps only its schema
	SchemaKindToSchema
)

// String returns the directive spelling of the kind
func (k SchemaKind) String() string {
	switch k {
	case SchemaKindToSchema:
		return "ToSchema"
	default:
		return "PartialSchema"
	}
}

// SchemaSource is the resolved schema strategy for a parameter or output.
// The zero value is PartialSchema on the declared type.
type SchemaSource struct {
	Kind SchemaKind
	// Override replaces the declared type when non-nil
	Override ast.Expr
}

// Target returns the type the capability is invoked on
func (s SchemaSource) Target(declared ast.Expr) ast.Expr {
	if s.Override != nil {
		return s.Override
	}
	return declared
}

// MethodParamAttr is the parsed openapi:arg directive of one parameter
type MethodParamAttr struct {
	Source *SchemaSource
	Pos    token.Pos
}

// MethodAttr is the parsed openapi:method directive of one method
type MethodAttr struct {
	Source *SchemaSource
	Pos    token.Pos
}

// MethodParam represents one named parameter of an RPC method
type MethodParam struct {
	Name   string
	Type   ast.Expr
	Source SchemaSource
}

// MethodOutput represents the declared results of an RPC method
type MethodOutput struct {
	Results *ast.FieldList
	Source  SchemaSource
}

// Method represents one documented RPC method
type Method struct {
	Name        string
	Params      []MethodParam // declaration order
	Output      *MethodOutput // nil when the method returns nothing
	Description *string       // nil when the method has no doc comment
}

// Ast is the parsed form of one openapi:gen invocation
type Ast struct {
	Fset      *token.FileSet
	File      *ast.File
	Decl      *ast.GenDecl
	Spec      *ast.TypeSpec
	Interface *ast.InterfaceType

	// RefSchemaTypes is nil when ref_schemas was not given and empty when it was given an empty list
	RefSchemaTypes []ast.Expr
	// Pos is the position of the openapi:gen directive
	Pos token.Pos
	// StrippedLines are the source lines left empty by stripping directives
	StrippedLines []int
}

// Name returns the annotated interface name
func (a *Ast) Name() string {
	return a.Spec.Name.Name
}

// Model is the result of analyzing one Ast
type Model struct {
	RefSchemaTypes []ast.Expr
	Methods        []Method
	// Ast carries the interface definition, stripped of directives before generation
	Ast *Ast
}

// Ir is the generator input. It mirrors Model.
type Ir struct {
	RefSchemaTypes []ast.Expr
	Methods        []Method
	Ast            *Ast
}
