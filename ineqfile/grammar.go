// SPDX-License-Identifier: MIT

package ineqfile

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

const (
	labelPattern  = `[A-Za-z_][A-Za-z0-9_.:+\-]*`
	numberPattern = `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?(/\d+)?`
)

type file struct {
	Lines []*line `parser:"@@*"`
}

type line struct {
	Pos    lexer.Position
	Label  string   `parser:"  @Label?"`
	Fields []string `parser:"  @Number+ EOL"`
	Blank  bool     `parser:"| @EOL"`
}

var ineqLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Label", Pattern: labelPattern},
	{Name: "Number", Pattern: numberPattern},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

var ineqParser = participle.MustBuild[file](
	participle.Lexer(ineqLexer),
	participle.Elide("Comment", "Whitespace"),
)
