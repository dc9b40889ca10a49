package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Ash-L2L/l2l-openapi/internal/errors"
	"github.com/Ash-L2L/l2l-openapi/internal/utils"
)

// recursiveSuffix marks a Go-style recursive pattern such as ./...
const recursiveSuffix = "/..."

// DirectoryScanner resolves command line paths into Go files
type DirectoryScanner struct {
	fileProcessor *utils.FileProcessor
}

// NewDirectoryScanner creates a scanner treating files ending in suffix as generated
func NewDirectoryScanner(suffix string) *DirectoryScanner {
	return &DirectoryScanner{
		fileProcessor: utils.NewFileProcessor(suffix),
	}
}

// SourceFiles returns the annotatable source files named by paths. A path
// is a .go file, a directory, or a directory followed by /... for
// recursive scanning. Files named explicitly are kept even when they carry
// the generated suffix. Duplicates are dropped; order follows the paths.
func (s *DirectoryScanner) SourceFiles(paths []string) ([]string, error) {
	return s.collect(paths, s.fileProcessor.SourceFileFilter())
}

// GeneratedFiles returns the files carrying the generated suffix below paths
func (s *DirectoryScanner) GeneratedFiles(paths []string) ([]string, error) {
	return s.collect(paths, s.fileProcessor.GeneratedFileFilter())
}

func (s *DirectoryScanner) collect(paths []string, filter utils.FileFilter) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		root, recursive := splitPattern(path)

		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.WrapFileSystemError("scan", root, err).
				WithSuggestion("check that the path exists")
		}
		if !info.IsDir() {
			if recursive || !strings.HasSuffix(root, ".go") {
				return nil, errors.Newf(errors.FileSystemErrorCode, "%s is not a Go file or directory", path)
			}
			add(filepath.Clean(root))
			continue
		}

		dirs, err := s.fileProcessor.WalkDirectories(root, recursive)
		if err != nil {
			return nil, errors.WrapWithOperation("scan", root, err)
		}
		for _, dir := range dirs {
			found, err := s.fileProcessor.ListFiles(dir, filter)
			if err != nil {
				return nil, errors.WrapWithOperation("scan", dir, err)
			}
			for _, file := range found {
				add(file)
			}
		}
	}
	return files, nil
}

// splitPattern strips a trailing /... and reports whether it was present
func splitPattern(path string) (string, bool) {
	if path == "..." {
		return ".", true
	}
	if strings.HasSuffix(path, recursiveSuffix) {
		root := strings.TrimSuffix(path, recursiveSuffix)
		if root == "" {
			root = "."
		}
		return root, true
	}
	return path, false
}
