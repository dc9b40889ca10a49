package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/mod/modfile"
)

// GoModParser reads go.mod files, caching each parse until the file changes
type GoModParser struct {
	cache *Cache[string, *modfile.File]
}

// NewGoModParser creates a new go.mod parser
func NewGoModParser() *GoModParser {
	return &GoModParser{
		cache: NewCache[string, *modfile.File](),
	}
}

// Parse parses the go.mod file at goModPath
func (p *GoModParser) Parse(goModPath string) (*modfile.File, error) {
	cleanPath := filepath.Clean(goModPath)
	if filepath.Base(cleanPath) != "go.mod" {
		return nil, errors.Errorf("file is not a go.mod file: %s", goModPath)
	}
	if cached, ok := p.cache.GetWithFileValidation(cleanPath, cleanPath); ok {
		return cached, nil
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, WrapLoadError("go.mod file", err)
	}
	file, err := modfile.ParseLax(cleanPath, content, nil)
	if err != nil {
		return nil, WrapParseError("go.mod file", err)
	}
	_ = p.cache.SetWithFileInfo(cleanPath, file, cleanPath)
	return file, nil
}

// ParseModuleName extracts the module path from a go.mod file
func (p *GoModParser) ParseModuleName(goModPath string) (string, error) {
	file, err := p.Parse(goModPath)
	if err != nil {
		return "", err
	}
	if file.Module == nil {
		return "", errors.New("no module declaration found in go.mod")
	}
	return file.Module.Mod.Path, nil
}

// Requires reports whether the module at goModPath is modulePath or
// requires it
func (p *GoModParser) Requires(goModPath, modulePath string) (bool, error) {
	file, err := p.Parse(goModPath)
	if err != nil {
		return false, err
	}
	if file.Module != nil && file.Module.Mod.Path == modulePath {
		return true, nil
	}
	for _, req := range file.Require {
		if req.Mod.Path == modulePath {
			return true, nil
		}
	}
	return false, nil
}

// FindGoModFile searches for go.mod starting from startDir and walking up
func (p *GoModParser) FindGoModFile(startDir string) (string, error) {
	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", WrapProcessError("path "+startDir, err)
	}

	for {
		goModPath := filepath.Join(currentDir, "go.mod")
		if stat, err := os.Stat(goModPath); err == nil && !stat.IsDir() {
			return goModPath, nil
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}
	return "", errors.New("go.mod file not found")
}
