package cli

import (
	"path/filepath"
	"strings"

	"github.com/Ash-L2L/l2l-openapi/internal/templates"
	"github.com/Ash-L2L/l2l-openapi/internal/utils"
)

// RuntimeModule is the module generated files import at runtime
var RuntimeModule = strings.TrimSuffix(templates.RuntimeImport, "/pkg/openapi")

// ModuleResolver locates the Go module owning a source file
type ModuleResolver struct {
	goMod   *utils.GoModParser
	checked map[string]bool
}

// NewModuleResolver creates a new module resolver
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{
		goMod:   utils.NewGoModParser(),
		checked: make(map[string]bool),
	}
}

// ModuleOf returns the module path and go.mod location owning path
func (r *ModuleResolver) ModuleOf(path string) (string, string, error) {
	goModPath, err := r.goMod.FindGoModFile(filepath.Dir(path))
	if err != nil {
		return "", "", err
	}
	name, err := r.goMod.ParseModuleName(goModPath)
	if err != nil {
		return "", "", err
	}
	return name, goModPath, nil
}

// MissingRuntime reports the go.mod owning path when that module neither is
// nor requires the runtime module. Each go.mod is reported at most once and
// files outside any module are not reported.
func (r *ModuleResolver) MissingRuntime(path string) (string, bool) {
	_, goModPath, err := r.ModuleOf(path)
	if err != nil || r.checked[goModPath] {
		return "", false
	}
	r.checked[goModPath] = true

	ok, err := r.goMod.Requires(goModPath, RuntimeModule)
	if err != nil {
		return "", false
	}
	return goModPath, !ok
}
