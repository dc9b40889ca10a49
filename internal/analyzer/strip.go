package analyzer

import (
	"go/ast"
	"go/token"
	"math"
	"sort"

	"github.com/Ash-L2L/l2l-openapi/internal/directives"
	"github.com/Ash-L2L/l2l-openapi/internal/models"
)

// Strip removes every openapi directive belonging to the annotated
// declaration, including its doc comment. It reports how many were removed.
// The source lines the directives occupied are recorded on a so that
// CompactLines can close the gaps they leave.
func Strip(a *models.Ast) int {
	from, to := declRange(a)
	removed, lines := stripRange(a.Fset, a.File, from, to, isDirective)
	a.StrippedLines = append(a.StrippedLines, lines...)
	return removed
}

// StripFile removes every openapi directive in file
func StripFile(file *ast.File) int {
	return RemoveComments(file, isDirective)
}

// RemoveComments drops every comment of file matching match
func RemoveComments(file *ast.File, match func(*ast.Comment) bool) int {
	removed, _ := stripRange(nil, file, token.NoPos, token.Pos(math.MaxInt), match)
	return removed
}

// CompactLines joins each of the given source lines with the line that
// follows it, so that a comment removed from its own line leaves no blank
// line behind when the file is printed again. Lines must be numbered as
// they were when the comments were stripped.
func CompactLines(fset *token.FileSet, file *ast.File, lines []int) {
	tf := fset.File(file.Pos())
	if tf == nil || len(lines) == 0 {
		return
	}
	sorted := append([]int(nil), lines...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	last := 0
	for _, line := range sorted {
		if line == last || line < 1 || line >= tf.LineCount() {
			continue
		}
		tf.MergeLine(line)
		last = line
	}
}

// declRange returns the source range of the annotated type spec and the
// comments documenting it
func declRange(a *models.Ast) (token.Pos, token.Pos) {
	from := a.Spec.Pos()
	if a.Spec.Doc != nil {
		from = a.Spec.Doc.Pos()
	}
	if !a.Decl.Lparen.IsValid() {
		from = a.Decl.Pos()
		if a.Decl.Doc != nil {
			from = a.Decl.Doc.Pos()
		}
	}
	to := a.Spec.End()
	if a.Spec.Comment != nil {
		to = a.Spec.Comment.End()
	}
	return from, to
}

func isDirective(c *ast.Comment) bool {
	_, ok := directives.Match(c)
	return ok
}

// stripRange drops matching comments within [from, to]. Groups left empty
// are removed from the file and from any node documented by them. A group
// that lost a comment also loses the bare // lines left dangling at its end.
// When fset is set, the lines of removed comments that stood alone on
// their line are returned.
func stripRange(fset *token.FileSet, file *ast.File, from, to token.Pos, match func(*ast.Comment) bool) (int, []int) {
	removed := 0
	var dropped []*ast.Comment
	emptied := make(map[*ast.CommentGroup]bool)
	kept := file.Comments[:0]

	for _, group := range file.Comments {
		if group.End() < from || group.Pos() > to {
			kept = append(kept, group)
			continue
		}
		list := make([]*ast.Comment, 0, len(group.List))
		for _, c := range group.List {
			if match(c) {
				removed++
				dropped = append(dropped, c)
				continue
			}
			list = append(list, c)
		}
		if len(list) < len(group.List) {
			for len(list) > 0 && list[len(list)-1].Text == "//" {
				dropped = append(dropped, list[len(list)-1])
				list = list[:len(list)-1]
			}
		}
		group.List = list
		if len(list) == 0 {
			emptied[group] = true
			continue
		}
		kept = append(kept, group)
	}
	file.Comments = kept

	var lines []int
	if fset != nil && len(dropped) > 0 {
		code := codeStarts(fset, file)
		for _, c := range dropped {
			line := fset.Position(c.Pos()).Line
			if start, ok := code[line]; ok && start < c.Pos() {
				continue
			}
			lines = append(lines, line)
		}
	}

	if len(emptied) == 0 {
		return removed, lines
	}
	drop := func(group **ast.CommentGroup) {
		if *group != nil && emptied[*group] {
			*group = nil
		}
	}
	ast.Inspect(file, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.File:
			drop(&n.Doc)
		case *ast.GenDecl:
			drop(&n.Doc)
		case *ast.FuncDecl:
			drop(&n.Doc)
		case *ast.TypeSpec:
			drop(&n.Doc)
			drop(&n.Comment)
		case *ast.ValueSpec:
			drop(&n.Doc)
			drop(&n.Comment)
		case *ast.ImportSpec:
			drop(&n.Doc)
			drop(&n.Comment)
		case *ast.Field:
			drop(&n.Doc)
			drop(&n.Comment)
		}
		return true
	})
	return removed, lines
}

// codeStarts maps each source line to the first position of code on it
func codeStarts(fset *token.FileSet, file *ast.File) map[int]token.Pos {
	starts := make(map[int]token.Pos)
	note := func(pos token.Pos) {
		if !pos.IsValid() {
			return
		}
		line := fset.Position(pos).Line
		if start, ok := starts[line]; !ok || pos < start {
			starts[line] = pos
		}
	}
	ast.Inspect(file, func(n ast.Node) bool {
		switch n.(type) {
		case nil, *ast.File, *ast.CommentGroup, *ast.Comment:
			return true
		}
		note(n.Pos())
		note(n.End() - 1)
		return true
	})
	return starts
}
