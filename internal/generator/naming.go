package generator

import (
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
)

// OutputPath returns the generated file path for a source file
func OutputPath(sourcePath, suffix string) string {
	dir, base := filepath.Split(sourcePath)
	name := strings.TrimSuffix(base, ".go")
	return filepath.Join(dir, strcase.ToSnake(name)+suffix)
}

// IsOutputPath reports whether path names a generated file
func IsOutputPath(path, suffix string) bool {
	return strings.HasSuffix(filepath.Base(path), suffix)
}
