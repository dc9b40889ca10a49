package directives

import (
	stderrors "errors"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/Ash-L2L/l2l-openapi/internal/errors"
	"github.com/Ash-L2L/l2l-openapi/internal/models"
)

// keyRule interprets one top-level key of a directive
type keyRule func(in *interpreter, m *meta) error

// table maps the keys a directive accepts to their rules
type table map[string]keyRule

var (
	genTable    = table{"ref_schemas": refSchemasRule}
	methodTable = table{"output_schema": sourceRule("output_schema")}
	argTable    = table{"schema": sourceRule("schema")}
)

// sourceKinds maps the values accepted inside a schema source list
var sourceKinds = map[string]models.SchemaKind{
	"PartialSchema": models.SchemaKindPartial,
	"ToSchema":      models.SchemaKindToSchema,
}

type interpreter struct {
	fset   *token.FileSet
	d      Directive
	seen   map[string]bool
	gen    GenArgs
	source *models.SchemaSource
}

func newInterpreter(fset *token.FileSet, d Directive) *interpreter {
	return &interpreter{fset: fset, d: d, seen: make(map[string]bool)}
}

func (in *interpreter) pos(p lexer.Position) token.Pos {
	return in.d.ArgsPos + token.Pos(p.Offset)
}

func (in *interpreter) errorf(p lexer.Position, code errors.ErrorCode, format string, args ...interface{}) error {
	return errors.At(in.fset, in.pos(p), code, format, args...).
		WithContext("directive", in.d.Name)
}

// run parses the argument text and applies tbl to each top-level key. The
// first error ends interpretation of the directive.
func (in *interpreter) run(tbl table) error {
	if strings.TrimSpace(in.d.Args) == "" {
		return nil
	}
	tree, err := metaParser.ParseString("", in.d.Args)
	if err != nil {
		var perr participle.Error
		if stderrors.As(err, &perr) {
			return in.errorf(perr.Position(), errors.SyntaxErrorCode, "%s", perr.Message())
		}
		return errors.At(in.fset, in.d.ArgsPos, errors.SyntaxErrorCode, "%v", err)
	}
	return in.each(tree, func(m *meta) error {
		rule, ok := tbl[m.Key]
		if !ok {
			return in.errorf(m.Pos, errors.SyntaxErrorCode, "unexpected key: %s", m.Key)
		}
		return rule(in, m)
	})
}

func (in *interpreter) each(list *metaList, fn func(*meta) error) error {
	for i, item := range list.Items {
		if i > 0 && !list.Items[i-1].Comma {
			return in.errorf(item.Meta.Pos, errors.SyntaxErrorCode, "expected ','; found %s", item.Meta.Key)
		}
		if err := fn(item.Meta); err != nil {
			return err
		}
	}
	return nil
}

func (in *interpreter) once(m *meta) error {
	if in.seen[m.Key] {
		return in.errorf(m.Pos, errors.CardinalityErrorCode, "%s cannot be set more than once", m.Key)
	}
	in.seen[m.Key] = true
	return nil
}

func refSchemasRule(in *interpreter, m *meta) error {
	if err := in.once(m); err != nil {
		return err
	}
	if m.Types == nil {
		return in.errorf(m.Pos, errors.SyntaxErrorCode, "expected %s [T, ...]", m.Key)
	}
	refs := make([]ast.Expr, 0, len(m.Types.Items))
	for i, item := range m.Types.Items {
		if i > 0 && !m.Types.Items[i-1].Comma {
			return in.errorf(item.Expr.Pos, errors.SyntaxErrorCode, "expected ','")
		}
		text := in.d.Args[item.Expr.Pos.Offset:item.Expr.EndPos.Offset]
		expr, err := in.typeExpr(item.Expr.Pos, text)
		if err != nil {
			return err
		}
		refs = append(refs, expr)
	}
	in.gen.RefSchemas = refs
	return nil
}

// sourceRule builds the rule for a key holding one schema source
func sourceRule(key string) keyRule {
	return func(in *interpreter, m *meta) error {
		if err := in.once(m); err != nil {
			return err
		}
		if m.Nested == nil {
			return in.errorf(m.Pos, errors.SyntaxErrorCode, "expected %s(...)", key)
		}
		source := models.SchemaSource{}
		given := false
		err := in.each(m.Nested, func(inner *meta) error {
			kind, ok := sourceKinds[inner.Key]
			if !ok {
				return in.errorf(inner.Pos, errors.SyntaxErrorCode, "unexpected value: %s", inner.Key)
			}
			if given {
				return in.errorf(inner.Pos, errors.CardinalityErrorCode, "schema source cannot be set more than once")
			}
			given = true
			if inner.Nested != nil || inner.Types != nil {
				return in.errorf(inner.Pos, errors.SyntaxErrorCode, "expected %s or %s = \"T\"", inner.Key, inner.Key)
			}
			source.Kind = kind
			if inner.Value == nil {
				return nil
			}
			if inner.Value.String == nil {
				return in.errorf(inner.Value.Pos, errors.SyntaxErrorCode, "expected string literal; found %s", *inner.Value.Other)
			}
			expr, err := in.typeExpr(inner.Value.Pos, *inner.Value.String)
			if err != nil {
				return err
			}
			source.Override = expr
			return nil
		})
		if err != nil {
			return err
		}
		in.source = &source
		return nil
	}
}

func (in *interpreter) typeExpr(pos lexer.Position, text string) (ast.Expr, error) {
	text = strings.TrimSpace(text)
	expr, err := parser.ParseExpr(text)
	if err != nil {
		return nil, in.errorf(pos, errors.SyntaxErrorCode, "invalid type %q: %v", text, err)
	}
	if !isType(expr) {
		return nil, in.errorf(pos, errors.SyntaxErrorCode, "invalid type %q", text)
	}
	return expr, nil
}

// isType reports whether expr has the shape of a type expression
func isType(expr ast.Expr) bool {
	switch t := expr.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := t.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return isType(t.X)
	case *ast.ParenExpr:
		return isType(t.X)
	case *ast.IndexExpr:
		return isType(t.X)
	case *ast.IndexListExpr:
		return isType(t.X)
	case *ast.ArrayType, *ast.MapType, *ast.ChanType, *ast.FuncType, *ast.StructType, *ast.InterfaceType:
		return true
	}
	return false
}
