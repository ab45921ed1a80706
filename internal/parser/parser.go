package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
)

// Parser wraps the tree-sitter parser for C#
type Parser struct {
	parser   *sitter.Parser
	language *sitter.Language
}

// NewParser creates a new C# parser
func NewParser() *Parser {
	parser := sitter.NewParser()
	lang := csharp.GetLanguage()
	parser.SetLanguage(lang)

	return &Parser{
		parser:   parser,
		language: lang,
	}
}

// ParseFile parses a C# file into a declaration unit
func (p *Parser) ParseFile(filename string, source []byte) (*Unit, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse file %s: %v", filename, err)
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	if rootNode == nil {
		return nil, fmt.Errorf("no root node in parse tree for %s", filename)
	}

	builder := NewDeclarationBuilder(filename, source)
	return builder.Build(rootNode), nil
}

// ParseString parses C# source code from a string
func (p *Parser) ParseString(source string) (*Unit, error) {
	return p.ParseFile("<input>", []byte(source))
}

// Close closes the parser and frees resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// ParseSource parses a single C# file with a throwaway parser instance
func ParseSource(filename string, source []byte) (*Unit, error) {
	parser := NewParser()
	defer parser.Close()

	return parser.ParseFile(filename, source)
}
