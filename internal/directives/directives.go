// Package directives recognizes openapi comment directives and interprets
// their arguments.
//
// Three directives exist:
//
//	//openapi:gen ref_schemas [T, ...]               on an interface type
//	//openapi:method output_schema(<source>)         in a method doc comment
//	//openapi:arg schema(<source>)                   immediately before a parameter
//
// where <source> is one of PartialSchema, PartialSchema = "T", ToSchema or
// ToSchema = "T". The string payload is a Go type expression.
package directives

import (
	"go/ast"
	"go/token"
	"strings"
	"unicode"

	"github.com/Ash-L2L/l2l-openapi/internal/models"
)

const (
	// Namespace prefixes every directive name
	Namespace = "openapi:"

	Gen    = Namespace + "gen"
	Method = Namespace + "method"
	Arg    = Namespace + "arg"
)

// Directive is one openapi comment directive
type Directive struct {
	Name    string
	Args    string
	ArgsPos token.Pos // position of the first byte of Args
	Comment *ast.Comment
}

// Match extracts the directive carried by c. It reports false for comments
// outside the openapi namespace.
func Match(c *ast.Comment) (Directive, bool) {
	if c == nil || !strings.HasPrefix(c.Text, "//"+Namespace) {
		return Directive{}, false
	}
	body := c.Text[2:]
	d := Directive{Name: body, Comment: c, ArgsPos: c.End()}
	if i := strings.IndexFunc(body, unicode.IsSpace); i >= 0 {
		rest := body[i:]
		args := strings.TrimLeftFunc(rest, unicode.IsSpace)
		d.Name = body[:i]
		d.Args = strings.TrimRightFunc(args, unicode.IsSpace)
		d.ArgsPos = c.Slash + token.Pos(2+i+len(rest)-len(args))
	}
	return d, true
}

// Find returns every directive in the group, in order
func Find(group *ast.CommentGroup) []Directive {
	if group == nil {
		return nil
	}
	var found []Directive
	for _, c := range group.List {
		if d, ok := Match(c); ok {
			found = append(found, d)
		}
	}
	return found
}

// IsDirective reports whether a comment is a machine-readable directive
// such as //go:generate, //rpc:method or //line. Directives are not
// documentation.
func IsDirective(text string) bool {
	if !strings.HasPrefix(text, "//") {
		return false
	}
	text = text[2:]
	for _, prefix := range []string{"line ", "extern ", "export "} {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	colon := strings.Index(text, ":")
	if colon <= 0 || colon+1 >= len(text) {
		return false
	}
	for i := 0; i <= colon+1; i++ {
		if i == colon {
			continue
		}
		b := text[i]
		if !('a' <= b && b <= 'z' || '0' <= b && b <= '9') {
			return false
		}
	}
	return true
}

// GenArgs holds the interpreted arguments of openapi:gen
type GenArgs struct {
	// RefSchemas is nil unless ref_schemas was given
	RefSchemas []ast.Expr
}

// ParseGen interprets the arguments of an openapi:gen directive
func ParseGen(fset *token.FileSet, d Directive) (GenArgs, error) {
	in := newInterpreter(fset, d)
	if err := in.run(genTable); err != nil {
		return GenArgs{}, err
	}
	return in.gen, nil
}

// ParseMethod interprets the arguments of an openapi:method directive. A nil
// source means no output_schema was given.
func ParseMethod(fset *token.FileSet, d Directive) (*models.SchemaSource, error) {
	return parseSource(fset, d, methodTable)
}

// ParseArg interprets the arguments of an openapi:arg directive. A nil
// source means no schema was given.
func ParseArg(fset *token.FileSet, d Directive) (*models.SchemaSource, error) {
	return parseSource(fset, d, argTable)
}

func parseSource(fset *token.FileSet, d Directive, tbl table) (*models.SchemaSource, error) {
	in := newInterpreter(fset, d)
	if err := in.run(tbl); err != nil {
		return nil, err
	}
	return in.source, nil
}

