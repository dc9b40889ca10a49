package generator

import (
	"go/ast"

	"github.com/Ash-L2L/l2l-openapi/internal/models"
	"github.com/Ash-L2L/l2l-openapi/internal/templates"
)

// usedImports returns the imports of file referenced by the types that the
// generated documents name
func usedImports(file *ast.File, irs []*models.Ir) *templates.ImportManager {
	names := make(map[string]bool)
	visit := func(t ast.Expr) {
		if t == nil {
			return
		}
		ast.Inspect(t, func(n ast.Node) bool {
			if sel, ok := n.(*ast.SelectorExpr); ok {
				if pkg, ok := sel.X.(*ast.Ident); ok {
					names[pkg.Name] = true
				}
			}
			return true
		})
	}

	for _, ir := range irs {
		for _, t := range ir.RefSchemaTypes {
			visit(t)
		}
		for _, method := range ir.Methods {
			for _, p := range method.Params {
				visit(p.Source.Target(p.Type))
			}
			if method.Output == nil {
				continue
			}
			if method.Output.Source.Override != nil {
				visit(method.Output.Source.Override)
			} else {
				visit(resultType(method.Output.Results))
			}
		}
	}

	imports := templates.NewImportManager()
	for _, spec := range file.Imports {
		if names[templates.ImportName(spec)] {
			imports.AddSpec(spec)
		}
	}
	return imports
}
