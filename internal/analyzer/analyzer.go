// Package analyzer turns a parsed openapi:gen invocation into a models.Model.
//
// Extraction and stripping are separate passes: Analyze first reads every
// directive into the model, collecting all errors, and then removes the
// directives from the syntax tree regardless of the outcome.
package analyzer

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/Ash-L2L/l2l-openapi/internal/directives"
	"github.com/Ash-L2L/l2l-openapi/internal/errors"
	"github.com/Ash-L2L/l2l-openapi/internal/models"
)

// Analyze builds the model of one invocation. The returned error is an
// *Error carrying every problem found across all methods.
func Analyze(a *models.Ast) (*models.Model, error) {
	model, err := extract(a)
	Strip(a)
	if err != nil {
		return nil, err
	}
	return model, nil
}

type analyzer struct {
	fset *token.FileSet
	file *ast.File
	// context holds the names the context package is imported as
	context map[string]bool
	// consumed holds the directive comments read while analyzing methods
	consumed map[*ast.Comment]bool
}

func extract(a *models.Ast) (*models.Model, error) {
	an := &analyzer{
		fset:     a.Fset,
		file:     a.File,
		context:  contextNames(a.File),
		consumed: make(map[*ast.Comment]bool),
	}
	model := &models.Model{RefSchemaTypes: a.RefSchemaTypes, Ast: a}

	var fields []*ast.Field
	var methods []models.Method
	var errs [][]error
	for _, field := range a.Interface.Methods.List {
		fn, ok := field.Type.(*ast.FuncType)
		// embedded interfaces and type set elements are left alone
		if !ok || len(field.Names) == 0 {
			continue
		}
		method, methodErrs := an.method(field.Names[0].Name, field, fn)
		fields = append(fields, field)
		methods = append(methods, method)
		errs = append(errs, methodErrs)
	}

	var stray []error
	for _, d := range an.unattached(a) {
		var err error
		switch d.Name {
		case directives.Method, directives.Arg:
			err = errors.At(an.fset, d.Comment.Pos(), errors.SyntaxErrorCode,
				"%s directive does not annotate a method or parameter", d.Name)
		default:
			err = an.unknown(d)
		}
		if i := an.owner(fields, d.Comment.Pos()); i >= 0 {
			errs[i] = append(errs[i], err)
		} else {
			stray = append(stray, err)
		}
	}

	failed := &Error{Interface: a.Name()}
	for i, field := range fields {
		if len(errs[i]) > 0 {
			failed.Methods = append(failed.Methods, &MethodErrors{Method: field.Names[0].Name, Errors: errs[i]})
			continue
		}
		model.Methods = append(model.Methods, methods[i])
	}
	if len(stray) > 0 {
		failed.Methods = append(failed.Methods, &MethodErrors{Method: a.Name(), Errors: stray})
	}

	if len(failed.Methods) > 0 {
		return nil, failed
	}
	return model, nil
}

// unattached returns the directives of the declaration that no method or
// parameter read. Strip would otherwise drop them silently.
func (an *analyzer) unattached(a *models.Ast) []directives.Directive {
	from, to := declRange(a)
	var found []directives.Directive
	for _, group := range an.file.Comments {
		if group.End() < from || group.Pos() > to {
			continue
		}
		for _, d := range directives.Find(group) {
			if d.Name == directives.Gen || an.consumed[d.Comment] {
				continue
			}
			found = append(found, d)
		}
	}
	return found
}

// owner returns the index of the method a stray directive is reported
// against: the method whose line it trails, else the next method, else the
// last one. It returns -1 for an interface without methods.
func (an *analyzer) owner(fields []*ast.Field, pos token.Pos) int {
	line := an.fset.Position(pos).Line
	for i, field := range fields {
		if pos <= field.End() || an.fset.Position(field.End()).Line == line {
			return i
		}
	}
	return len(fields) - 1
}

func (an *analyzer) method(name string, field *ast.Field, fn *ast.FuncType) (models.Method, []error) {
	var errs []error
	attr := an.methodAttr(field.Doc, &errs)
	params := an.params(fn, &errs)

	var output *models.MethodOutput
	if fn.Results != nil && len(fn.Results.List) > 0 {
		if err := an.checkResults(fn.Results); err != nil {
			errs = append(errs, err)
		}
		output = &models.MethodOutput{Results: fn.Results}
		if attr != nil && attr.Source != nil {
			output.Source = *attr.Source
		}
	}

	if len(errs) > 0 {
		return models.Method{}, errs
	}
	return models.Method{
		Name:        name,
		Params:      params,
		Output:      output,
		Description: Description(field.Doc),
	}, nil
}

func (an *analyzer) methodAttr(doc *ast.CommentGroup, errs *[]error) *models.MethodAttr {
	var attr *models.MethodAttr
	for _, d := range directives.Find(doc) {
		an.consumed[d.Comment] = true
		switch d.Name {
		case directives.Method:
			source, err := directives.ParseMethod(an.fset, d)
			if err != nil {
				*errs = append(*errs, err)
				continue
			}
			if attr != nil {
				*errs = append(*errs, an.duplicate(d))
				continue
			}
			attr = &models.MethodAttr{Source: source, Pos: d.Comment.Pos()}
		case directives.Arg:
			*errs = append(*errs, errors.At(an.fset, d.Comment.Pos(), errors.SyntaxErrorCode,
				"%s directive must immediately precede a parameter", directives.Arg))
		default:
			*errs = append(*errs, an.unknown(d))
		}
	}
	return attr
}

// params resolves every parameter after an optional leading context.Context.
// A directive belongs to the parameter field that follows it.
func (an *analyzer) params(fn *ast.FuncType, errs *[]error) []models.MethodParam {
	var params []models.MethodParam
	prevEnd := fn.Params.Opening

	for i, field := range fn.Params.List {
		attr := an.paramAttr(prevEnd, field.Pos(), errs)
		prevEnd = field.End()

		names := field.Names
		if i == 0 && an.isContext(field.Type) {
			if len(names) <= 1 {
				if attr != nil {
					*errs = append(*errs, errors.At(an.fset, attr.Pos, errors.ShapeErrorCode,
						"%s directive cannot annotate the context parameter", directives.Arg))
				}
				continue
			}
			names = names[1:]
		}

		typ := field.Type
		if ellipsis, ok := typ.(*ast.Ellipsis); ok {
			typ = &ast.ArrayType{Lbrack: ellipsis.Pos(), Elt: ellipsis.Elt}
		}
		source := models.SchemaSource{}
		if attr != nil && attr.Source != nil {
			source = *attr.Source
		}

		if len(names) == 0 {
			*errs = append(*errs, errors.At(an.fset, field.Type.Pos(), errors.ShapeErrorCode,
				"expected identifier; found %s", types.ExprString(field.Type)))
			continue
		}
		for _, ident := range names {
			if ident.Name == "_" {
				*errs = append(*errs, errors.At(an.fset, ident.Pos(), errors.ShapeErrorCode,
					"expected identifier; found _"))
				continue
			}
			params = append(params, models.MethodParam{Name: ident.Name, Type: typ, Source: source})
		}
	}

	// directives after the last parameter annotate nothing
	for _, d := range an.directivesIn(prevEnd, fn.Params.Closing) {
		an.consumed[d.Comment] = true
		*errs = append(*errs, errors.At(an.fset, d.Comment.Pos(), errors.SyntaxErrorCode,
			"%s directive must immediately precede a parameter", d.Name))
	}
	return params
}

func (an *analyzer) paramAttr(from, to token.Pos, errs *[]error) *models.MethodParamAttr {
	var attr *models.MethodParamAttr
	for _, d := range an.directivesIn(from, to) {
		an.consumed[d.Comment] = true
		if d.Name != directives.Arg {
			*errs = append(*errs, an.unknown(d))
			continue
		}
		source, err := directives.ParseArg(an.fset, d)
		if err != nil {
			*errs = append(*errs, err)
			continue
		}
		if attr != nil {
			*errs = append(*errs, an.duplicate(d))
			continue
		}
		attr = &models.MethodParamAttr{Source: source, Pos: d.Comment.Pos()}
	}
	return attr
}

// directivesIn returns the directives of comments lying entirely within [from, to)
func (an *analyzer) directivesIn(from, to token.Pos) []directives.Directive {
	var found []directives.Directive
	for _, group := range an.file.Comments {
		if group.End() <= from {
			continue
		}
		if group.Pos() >= to {
			break
		}
		for _, c := range group.List {
			if c.Pos() < from || c.End() > to {
				continue
			}
			if d, ok := directives.Match(c); ok {
				found = append(found, d)
			}
		}
	}
	return found
}

func (an *analyzer) checkResults(results *ast.FieldList) error {
	n := results.NumFields()
	last := results.List[len(results.List)-1]
	if n == 1 || (n == 2 && isError(last.Type)) {
		return nil
	}
	return errors.At(an.fset, results.Pos(), errors.ShapeErrorCode,
		"expected at most one result besides a trailing error")
}

func (an *analyzer) duplicate(d directives.Directive) error {
	return errors.At(an.fset, d.Comment.Pos(), errors.CardinalityErrorCode,
		"%s directive can be used at most once", d.Name)
}

func (an *analyzer) unknown(d directives.Directive) error {
	return errors.At(an.fset, d.Comment.Pos(), errors.SyntaxErrorCode,
		"unexpected directive: %s", d.Name)
}

// Description joins the documentation lines of a comment group. Directive
// lines are skipped. It returns nil when the group holds no documentation.
func Description(doc *ast.CommentGroup) *string {
	if doc == nil {
		return nil
	}
	var lines []string
	for _, c := range doc.List {
		if directives.IsDirective(c.Text) {
			continue
		}
		if strings.HasPrefix(c.Text, "//") {
			lines = append(lines, strings.TrimSpace(c.Text[2:]))
			continue
		}
		lines = append(lines, blockLines(c.Text)...)
	}
	if len(lines) == 0 {
		return nil
	}
	description := strings.TrimSpace(strings.Join(lines, "\n"))
	return &description
}

// blockLines splits a /* */ comment into trimmed lines, dropping the
// leading * of starred continuation lines and the blank edges
func blockLines(text string) []string {
	text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "*") {
			line = strings.TrimSpace(line[1:])
		}
		lines = append(lines, line)
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// contextNames returns the names file refers to the context package by.
// A dot import is recorded as "".
func contextNames(file *ast.File) map[string]bool {
	names := make(map[string]bool)
	for _, spec := range file.Imports {
		if spec.Path.Value != `"context"` {
			continue
		}
		switch {
		case spec.Name == nil:
			names["context"] = true
		case spec.Name.Name == ".":
			names[""] = true
		case spec.Name.Name != "_":
			names[spec.Name.Name] = true
		}
	}
	if len(names) == 0 {
		names["context"] = true
	}
	return names
}

func (an *analyzer) isContext(expr ast.Expr) bool {
	switch expr := expr.(type) {
	case *ast.Ident:
		return an.context[""] && expr.Name == "Context"
	case *ast.SelectorExpr:
		pkg, ok := expr.X.(*ast.Ident)
		return ok && an.context[pkg.Name] && expr.Sel.Name == "Context"
	}
	return false
}

func isError(expr ast.Expr) bool {
	ident, ok := expr.(*ast.Ident)
	return ok && ident.Name == "error"
}
