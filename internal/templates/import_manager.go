package templates

import (
	"go/ast"
	"go/token"
	"path"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

// Import paths every generated document depends on
const (
	OpenAPI3Import = "github.com/getkin/kin-openapi/openapi3"
	RuntimeImport  = "github.com/Ash-L2L/l2l-openapi/pkg/openapi"
)

// ImportManager handles import collection and deduplication
type ImportManager struct {
	order   []string
	aliases map[string]string // path -> alias, "" when unnamed
}

// NewImportManager creates a new import manager
func NewImportManager() *ImportManager {
	return &ImportManager{
		aliases: make(map[string]string),
	}
}

// AddImport adds an unnamed import
func (im *ImportManager) AddImport(importPath string) {
	im.AddPackageImport("", importPath)
}

// AddPackageImport adds an import with alias
func (im *ImportManager) AddPackageImport(alias, importPath string) {
	if importPath == "" {
		return
	}
	if _, exists := im.aliases[importPath]; !exists {
		im.order = append(im.order, importPath)
	}
	im.aliases[importPath] = alias
}

// AddSpec adds an import taken from a source file. Blank and dot imports
// are ignored.
func (im *ImportManager) AddSpec(spec *ast.ImportSpec) {
	importPath, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return
	}
	alias := ""
	if spec.Name != nil {
		if spec.Name.Name == "_" || spec.Name.Name == "." {
			return
		}
		alias = spec.Name.Name
	}
	im.AddPackageImport(alias, importPath)
}

// Paths returns the collected import paths in insertion order
func (im *ImportManager) Paths() []string {
	paths := make([]string, len(im.order))
	copy(paths, im.order)
	return paths
}

// Apply adds every collected import to file
func (im *ImportManager) Apply(fset *token.FileSet, file *ast.File) {
	for _, importPath := range im.order {
		if alias := im.aliases[importPath]; alias != "" {
			astutil.AddNamedImport(fset, file, alias, importPath)
		} else {
			astutil.AddImport(fset, file, importPath)
		}
	}
}

// Merge merges another import manager into this one
func (im *ImportManager) Merge(other *ImportManager) {
	for _, importPath := range other.order {
		im.AddPackageImport(other.aliases[importPath], importPath)
	}
}

// PackageName guesses the name a package is referred to by from its import
// path. A major version suffix refers to the previous element, gopkg.in
// versions are dropped, and go- prefixes and -go suffixes are trimmed.
func PackageName(importPath string) string {
	base := path.Base(importPath)
	if isMajorVersion(base) {
		if dir := path.Dir(importPath); dir != "." {
			base = path.Base(dir)
		}
	}
	if strings.HasPrefix(importPath, "gopkg.in/") {
		if i := strings.Index(base, ".v"); i > 0 {
			base = base[:i]
		}
	}
	base = strings.TrimPrefix(base, "go-")
	base = strings.TrimSuffix(base, "-go")
	return strings.NewReplacer("-", "_", ".", "_").Replace(base)
}

func isMajorVersion(element string) bool {
	if len(element) < 2 || element[0] != 'v' {
		return false
	}
	_, err := strconv.Atoi(element[1:])
	return err == nil
}

// ImportName returns the name an import spec binds in its file
func ImportName(spec *ast.ImportSpec) string {
	if spec.Name != nil {
		return spec.Name.Name
	}
	importPath, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return ""
	}
	return PackageName(importPath)
}
