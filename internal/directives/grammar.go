package directives

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// metaList is a comma separated list of meta items. Separators are kept
// on each item so a missing comma can be reported where it is missing.
type metaList struct {
	Items []*metaItem `parser:"@@*"`
}

type metaItem struct {
	Meta  *meta `parser:"@@"`
	Comma bool  `parser:"@','?"`
}

// meta is one key with an optional nested list, string value or type list.
type meta struct {
	Pos    lexer.Position
	Key    string    `parser:"@Ident"`
	Nested *metaList `parser:"( '(' @@ ')'"`
	Value  *value    `parser:"| '=' @@"`
	Types  *typeList `parser:"| '[' @@ ']' )?"`
	EndPos lexer.Position
}

type value struct {
	Pos    lexer.Position
	String *string `parser:"  @String"`
	Other  *string `parser:"| @(Ident | Number)"`
}

type typeList struct {
	Items []*typeItem `parser:"@@*"`
}

type typeItem struct {
	Expr  *typeExpr `parser:"@@"`
	Comma bool      `parser:"@','?"`
}

// typeExpr captures the extent of one Go type expression; the text between
// Pos and EndPos is handed to go/parser.
type typeExpr struct {
	Pos    lexer.Position
	Tokens []*typeToken `parser:"@@+"`
	EndPos lexer.Position
}

type typeToken struct {
	Index *typeList  `parser:"  '[' @@ ']'"`
	Paren *typeList  `parser:"| '(' @@ ')'"`
	Brace *typeBrace `parser:"| @@"`
	Atom  string     `parser:"| @(Ident | Number | String | '.' | '*' | ';' | '<' | '-' | '~' | '|')"`
}

type typeBrace struct {
	Open bool          `parser:"@'{'"`
	Body []*braceToken `parser:"@@*"`
	End  bool          `parser:"@'}'"`
}

type braceToken struct {
	Token *typeToken `parser:"  @@"`
	Comma bool       `parser:"| @','"`
}

var directiveLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\.|[^"\\])*"|` + "`[^`]*`"},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
	{Name: "Punct", Pattern: `[(),=\[\]{}.*;<\-~|]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var metaParser = participle.MustBuild[metaList](
	participle.Lexer(directiveLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)
