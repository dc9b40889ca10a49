// Package generator emits the OpenAPI document types of analyzed
// interfaces as Go source.
package generator

import (
	"bytes"
	"fmt"
	"go/format"
	goparser "go/parser"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/Ash-L2L/l2l-openapi/internal/analyzer"
	"github.com/Ash-L2L/l2l-openapi/internal/errors"
	"github.com/Ash-L2L/l2l-openapi/internal/models"
	"github.com/Ash-L2L/l2l-openapi/internal/parser"
	"github.com/Ash-L2L/l2l-openapi/internal/templates"
)

// Defaults applied by NewGenerator
const (
	DefaultVersion  = "0.0.0"
	DefaultSuffix   = "_openapi.go"
	DefaultBuildTag = "openapigen"
)

// Header marks every generated file
const Header = "// Code generated by openapigen. DO NOT EDIT."

// Options configures document generation
type Options struct {
	Version  string // info.version of every document
	Title    string // info.title of every document; the interface name when empty
	Suffix   string // appended to the snake cased source name
	BuildTag string // build tag selecting full output
}

// Generator renders documents into Go source
type Generator struct {
	opts     Options
	registry *templates.TemplateRegistry
	utils    *templates.TemplateUtils
}

// NewGenerator creates a generator, filling unset options with defaults
func NewGenerator(opts Options) *Generator {
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	if opts.Suffix == "" {
		opts.Suffix = DefaultSuffix
	}
	if opts.BuildTag == "" {
		opts.BuildTag = DefaultBuildTag
	}
	return &Generator{
		opts:     opts,
		registry: templates.NewTemplateRegistry(),
		utils:    templates.NewTemplateUtils(),
	}
}

// Options returns the effective options
func (g *Generator) Options() Options {
	return g.opts
}

// Document renders the declarations of the document type of one interface
func (g *Generator) Document(ir *models.Ir) (string, error) {
	operations := make([]string, 0, len(ir.Methods))
	for _, method := range ir.Methods {
		op, err := g.registry.Execute(templates.OperationTemplate, templates.OperationData{
			ID:          method.Name,
			Description: method.Description,
			RequestBody: requestBody(method.Params),
			Response:    response(method.Output),
		})
		if err != nil {
			return "", errors.WrapTemplateError(templates.OperationTemplate, "execute", err).
				WithContext("method", method.Name)
		}
		operations = append(operations, op)
	}

	components := make([]string, 0, len(ir.RefSchemaTypes))
	for _, t := range ir.RefSchemaTypes {
		components = append(components, types.ExprString(t))
	}

	title := g.opts.Title
	if title == "" {
		title = ir.Ast.Name()
	}

	doc, err := g.registry.Execute(templates.DocumentTemplate, templates.DocumentData{
		TypeName:   g.utils.DocTypeName(ir.Ast.Name()),
		Title:      title,
		Version:    g.opts.Version,
		Operations: operations,
		Components: components,
	})
	if err != nil {
		return "", errors.WrapTemplateError(templates.DocumentTemplate, "execute", err).
			WithContext("interface", ir.Ast.Name())
	}
	return doc, nil
}

// Generate builds the generated file of one source file from the lowered
// form of its invocations. In full mode the stripped source is re-emitted
// ahead of the documents.
func (g *Generator) Generate(file *parser.File, irs []*models.Ir) (*models.GeneratedFile, error) {
	if len(irs) == 0 {
		return nil, errors.Newf(errors.GenerationErrorCode, "%s: no documented interfaces", file.Path)
	}

	mode := DetectMode(file.Syntax, g.opts.BuildTag)
	outPath := OutputPath(file.Path, g.opts.Suffix)

	var src strings.Builder
	if mode == models.OutputFull {
		analyzer.RemoveComments(file.Syntax, isBuildComment)
		var stripped []int
		for _, ir := range irs {
			stripped = append(stripped, ir.Ast.StrippedLines...)
			ir.Ast.StrippedLines = nil
		}
		analyzer.CompactLines(file.Fset, file.Syntax, stripped)
		var buf bytes.Buffer
		if err := format.Node(&buf, file.Fset, file.Syntax); err != nil {
			return nil, errors.WrapGenerateError(outPath, err)
		}
		src.Write(buf.Bytes())
	} else {
		fmt.Fprintf(&src, "package %s\n", file.Syntax.Name.Name)
	}

	needed := templates.NewImportManager()
	needed.AddImport(templates.OpenAPI3Import)
	needed.AddImport(templates.RuntimeImport)
	if mode == models.OutputCompanion {
		needed.Merge(usedImports(file.Syntax, irs))
	}

	interfaces := make([]string, 0, len(irs))
	for _, ir := range irs {
		doc, err := g.Document(ir)
		if err != nil {
			return nil, err
		}
		src.WriteString(doc)
		interfaces = append(interfaces, ir.Ast.Name())
	}

	content, err := finish(outPath, src.String(), needed)
	if err != nil {
		return nil, err
	}

	return &models.GeneratedFile{
		SourcePath: file.Path,
		FilePath:   outPath,
		Mode:       mode,
		Interfaces: interfaces,
		Content:    content,
	}, nil
}

// finish parses the rendered source, adds imports and formats the result.
// Imports end up in a standard library group followed by everything else.
func finish(path, src string, manager *templates.ImportManager) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := goparser.ParseFile(fset, path, src, goparser.ParseComments)
	if err != nil {
		return nil, errors.WrapGenerateError(path, err).
			WithSuggestion("check the types named in openapi directives")
	}
	manager.Apply(fset, file)

	var buf bytes.Buffer
	buf.WriteString(Header)
	buf.WriteString("\n\n")
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, errors.WrapGenerateError(path, err)
	}
	content, err := imports.Process(path, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.WrapGenerateError(path, err)
	}
	return content, nil
}
