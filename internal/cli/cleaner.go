package cli

import (
	"os"

	"github.com/Ash-L2L/l2l-openapi/internal/errors"
	"github.com/Ash-L2L/l2l-openapi/internal/generator"
	"github.com/Ash-L2L/l2l-openapi/internal/utils"
)

// Cleaner removes files previously written by the generator
type Cleaner struct {
	scanner *DirectoryScanner
	dryRun  bool
}

// NewCleaner creates a cleaner for files ending in suffix. A dry run only
// reports what would be removed.
func NewCleaner(suffix string, dryRun bool) *Cleaner {
	return &Cleaner{
		scanner: NewDirectoryScanner(suffix),
		dryRun:  dryRun,
	}
}

// CleanGeneratedFiles removes the generated files below paths and returns
// them. Files with the suffix but without the generated header are left
// alone.
func (c *Cleaner) CleanGeneratedFiles(paths []string) ([]string, error) {
	candidates, err := c.scanner.GeneratedFiles(paths)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, path := range candidates {
		ok, err := utils.HasHeader(path, generator.Header)
		if err != nil {
			return removed, errors.WrapFileSystemError("read", path, err)
		}
		if !ok {
			continue
		}
		if !c.dryRun {
			if err := os.Remove(path); err != nil {
				return removed, errors.WrapFileSystemError("remove", path, err)
			}
		}
		removed = append(removed, path)
	}
	return removed, nil
}
