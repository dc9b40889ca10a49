package generator

import (
	"go/ast"
	"go/build/constraint"
	"strings"

	"github.com/Ash-L2L/l2l-openapi/internal/models"
)

// DetectMode reports OutputFull when the file only builds with tag set
func DetectMode(file *ast.File, tag string) models.OutputMode {
	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			break
		}
		for _, c := range group.List {
			if !constraint.IsGoBuild(c.Text) {
				continue
			}
			expr, err := constraint.Parse(c.Text)
			if err != nil {
				continue
			}
			withTag := expr.Eval(func(t string) bool { return t == tag })
			without := expr.Eval(func(string) bool { return false })
			if withTag && !without {
				return models.OutputFull
			}
		}
	}
	return models.OutputCompanion
}

// isBuildComment matches comments that must not be carried into full output
func isBuildComment(c *ast.Comment) bool {
	return constraint.IsGoBuild(c.Text) ||
		constraint.IsPlusBuild(c.Text) ||
		strings.HasPrefix(c.Text, "//go:generate ")
}
