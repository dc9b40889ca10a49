// Package parser finds interfaces annotated with openapi:gen and parses
// the directive arguments into one models.Ast per interface.
package parser

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"

	"github.com/Ash-L2L/l2l-openapi/internal/directives"
	"github.com/Ash-L2L/l2l-openapi/internal/errors"
	"github.com/Ash-L2L/l2l-openapi/internal/models"
)

// Parser parses Go source files and extracts openapi:gen invocations
type Parser struct {
	fileSet *token.FileSet
}

// NewParser creates a new directive parser
func NewParser() *Parser {
	return &Parser{fileSet: token.NewFileSet()}
}

// FileSet returns the file set positions are recorded in
func (p *Parser) FileSet() *token.FileSet {
	return p.fileSet
}

// File is one parsed source file
type File struct {
	Path   string
	Fset   *token.FileSet
	Syntax *ast.File
	// Asts holds one entry per valid openapi:gen invocation, in source order
	Asts []*models.Ast
	// Errors holds invocations that failed to parse. Other invocations are unaffected.
	Errors *errors.MultipleErrors
}

// ParseFile reads and parses the file at path
func (p *Parser) ParseFile(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}
	return p.ParseSource(path, string(src))
}

// ParseSource parses source code from a string. The returned error is
// either a Go syntax error or a fatal directive misuse.
func (p *Parser) ParseSource(filename, source string) (*File, error) {
	syntax, err := parser.ParseFile(p.fileSet, filename, source, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrap(errors.SyntaxErrorCode, "failed to parse source", err).
			WithLocation(errors.SourceLocation{File: filename})
	}

	file := &File{
		Path:   filename,
		Fset:   p.fileSet,
		Syntax: syntax,
		Errors: &errors.MultipleErrors{},
	}
	if err := p.extract(file); err != nil {
		return nil, err
	}
	return file, nil
}

// extract walks the type declarations of the file. Every openapi:gen
// directive must end up attached to an interface type; anything else is fatal.
func (p *Parser) extract(file *File) error {
	attached := make(map[*ast.Comment]bool)

	for _, decl := range file.Syntax.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			found := genDirectives(gen, typeSpec)
			if len(found) == 0 {
				continue
			}
			iface, ok := typeSpec.Type.(*ast.InterfaceType)
			if !ok || typeSpec.Assign.IsValid() {
				return fatal(p.fileSet, found[0])
			}
			for _, d := range found {
				attached[d.Comment] = true
			}

			a, err := p.parseInvocation(file, gen, typeSpec, iface, found)
			if err != nil {
				file.Errors.Add(err)
				continue
			}
			file.Asts = append(file.Asts, a)
		}
	}

	for _, group := range file.Syntax.Comments {
		for _, d := range directives.Find(group) {
			if d.Name == directives.Gen && !attached[d.Comment] {
				return fatal(p.fileSet, d)
			}
		}
	}
	return nil
}

func (p *Parser) parseInvocation(file *File, decl *ast.GenDecl, spec *ast.TypeSpec, iface *ast.InterfaceType, found []directives.Directive) (*models.Ast, error) {
	if len(found) > 1 {
		return nil, errors.At(p.fileSet, found[1].Comment.Pos(), errors.CardinalityErrorCode,
			"%s directive can be used at most once", directives.Gen)
	}
	args, err := directives.ParseGen(p.fileSet, found[0])
	if err != nil {
		return nil, err
	}
	return &models.Ast{
		Fset:           p.fileSet,
		File:           file.Syntax,
		Decl:           decl,
		Spec:           spec,
		Interface:      iface,
		RefSchemaTypes: args.RefSchemas,
		Pos:            found[0].Comment.Pos(),
	}, nil
}

// genDirectives returns the openapi:gen directives documenting spec. An
// ungrouped declaration carries its doc on the GenDecl.
func genDirectives(decl *ast.GenDecl, spec *ast.TypeSpec) []directives.Directive {
	var found []directives.Directive
	groups := []*ast.CommentGroup{spec.Doc}
	if !decl.Lparen.IsValid() {
		groups = append(groups, decl.Doc)
	}
	for _, group := range groups {
		for _, d := range directives.Find(group) {
			if d.Name == directives.Gen {
				found = append(found, d)
			}
		}
	}
	return found
}

func fatal(fset *token.FileSet, d directives.Directive) error {
	return &errors.BaseError{
		Code:  errors.FatalErrorCode,
		Loc:   errors.LocationOf(fset, d.Comment.Pos()),
		Cause: errors.ErrNotInterface,
	}
}
