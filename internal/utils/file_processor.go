package utils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info os.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be processed
type DirectoryFilter func(path string, info os.DirEntry) bool

// FileProcessor lists source and generated files below directories
type FileProcessor struct {
	suffix string
}

// NewFileProcessor creates a file processor. Files ending in suffix are
// treated as generated.
func NewFileProcessor(suffix string) *FileProcessor {
	return &FileProcessor{suffix: suffix}
}

// SourceFileFilter accepts .go files that are neither tests nor generated
func (fp *FileProcessor) SourceFileFilter() FileFilter {
	return func(path string, info os.DirEntry) bool {
		if info.IsDir() {
			return false
		}
		name := info.Name()
		return strings.HasSuffix(name, ".go") &&
			!strings.HasSuffix(name, "_test.go") &&
			!strings.HasSuffix(name, fp.suffix)
	}
}

// GeneratedFileFilter accepts files carrying the generated suffix
func (fp *FileProcessor) GeneratedFileFilter() FileFilter {
	return func(path string, info os.DirEntry) bool {
		return !info.IsDir() && strings.HasSuffix(info.Name(), fp.suffix)
	}
}

// DefaultDirectoryFilter skips directories that never hold package sources
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"vendor":       true,
		"node_modules": true,
		"testdata":     true,
	}
	return func(path string, info os.DirEntry) bool {
		name := info.Name()
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}
		// the Go tool ignores directories starting with an underscore
		if strings.HasPrefix(name, "_") {
			return false
		}
		return !skipDirs[name]
	}
}

// ListFiles returns the files of dir accepted by filter, sorted by name
func (fp *FileProcessor) ListFiles(dir string, filter FileFilter) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, WrapProcessError("directory "+dir, err)
	}
	var files []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if filter(path, entry) {
			files = append(files, path)
		}
	}
	return files, nil
}

// WalkDirectories returns root and, when recursive, every directory below
// it accepted by the default directory filter. The root itself is never
// filtered.
func (fp *FileProcessor) WalkDirectories(root string, recursive bool) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, WrapProcessError("directory "+root, err)
	}
	if !recursive {
		return []string{root}, nil
	}

	dirFilter := DefaultDirectoryFilter()
	var dirs []string
	err := filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && !dirFilter(path, entry) {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, WrapProcessError("directory "+root, err)
	}
	sort.Strings(dirs)
	return dirs, nil
}
