package generator

import (
	"fmt"
	"go/ast"
	"go/types"
	"strings"

	"github.com/Ash-L2L/l2l-openapi/internal/models"
)

// scalars are the predeclared types described by reflection
var scalars = map[string]bool{
	"bool": true, "string": true, "byte": true, "rune": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true, "uintptr": true,
	"float32": true, "float64": true,
}

// wellKnown are the standard and common library types described without a
// capability
var wellKnown = map[string]bool{
	"time.Time":       true,
	"time.Duration":   true,
	"uuid.UUID":       true,
	"json.RawMessage": true,
}

// schemaExpr returns the Go expression producing the schema of t. Named
// types go through the capability selected by kind; composite types are
// built from the schemas of their elements.
func schemaExpr(t ast.Expr, kind models.SchemaKind) string {
	switch t := t.(type) {
	case *ast.ParenExpr:
		return schemaExpr(t.X, kind)
	case *ast.Ident:
		switch {
		case scalars[t.Name]:
			return builtin(t)
		case t.Name == "any":
			return "openapi.Any()"
		case t.Name == "error":
			return "openapi.Unit()"
		}
		return capability(t, kind)
	case *ast.SelectorExpr:
		if wellKnown[types.ExprString(t)] {
			return builtin(t)
		}
		return capability(t, kind)
	case *ast.IndexExpr, *ast.IndexListExpr:
		return capability(t, kind)
	case *ast.StarExpr:
		return fmt.Sprintf("openapi.Nullable(%s)", schemaExpr(t.X, kind))
	case *ast.ArrayType:
		if elt, ok := t.Elt.(*ast.Ident); ok && t.Len == nil && (elt.Name == "byte" || elt.Name == "uint8") {
			return builtin(t)
		}
		return fmt.Sprintf("openapi.ArrayOf(%s)", schemaExpr(t.Elt, kind))
	case *ast.Ellipsis:
		return fmt.Sprintf("openapi.ArrayOf(%s)", schemaExpr(t.Elt, kind))
	case *ast.MapType:
		return fmt.Sprintf("openapi.MapOf(%s)", schemaExpr(t.Value, kind))
	case *ast.StructType:
		if t.Fields == nil || len(t.Fields.List) == 0 {
			return "openapi.Unit()"
		}
		return builtin(t)
	}
	// interfaces, functions and channels carry no describable shape
	return "openapi.Any()"
}

func builtin(t ast.Expr) string {
	return fmt.Sprintf("openapi.Builtin[%s]()", types.ExprString(t))
}

func capability(t ast.Expr, kind models.SchemaKind) string {
	if kind == models.SchemaKindToSchema {
		return fmt.Sprintf("openapi.Inline[%s]()", types.ExprString(t))
	}
	return fmt.Sprintf("openapi.Partial[%s]()", types.ExprString(t))
}

// requestBody returns the body schema expression of a method. A single
// parameter is used directly; several are wrapped in an object keyed by
// parameter name.
func requestBody(params []models.MethodParam) string {
	switch len(params) {
	case 0:
		return ""
	case 1:
		p := params[0]
		return schemaExpr(p.Source.Target(p.Type), p.Source.Kind)
	}
	var b strings.Builder
	b.WriteString("openapi.ObjectOf(")
	for _, p := range params {
		fmt.Fprintf(&b, "\n\topenapi.Property{Name: %q, Schema: %s},", p.Name, schemaExpr(p.Source.Target(p.Type), p.Source.Kind))
	}
	b.WriteString("\n)")
	return b.String()
}

// response returns the response schema expression of a method, or "" when
// the method has no output
func response(output *models.MethodOutput) string {
	if output == nil {
		return ""
	}
	if output.Source.Override != nil {
		return schemaExpr(output.Source.Override, output.Source.Kind)
	}
	result := resultType(output.Results)
	if result == nil {
		return "openapi.Unit()"
	}
	return schemaExpr(result, output.Source.Kind)
}

// resultType returns the value result of a method, dropping a trailing
// error. It returns nil when the only result is an error.
func resultType(results *ast.FieldList) ast.Expr {
	if results == nil || len(results.List) == 0 {
		return nil
	}
	first := results.List[0].Type
	if results.NumFields() == 1 && isError(first) {
		return nil
	}
	return first
}

func isError(t ast.Expr) bool {
	ident, ok := t.(*ast.Ident)
	return ok && ident.Name == "error"
}
