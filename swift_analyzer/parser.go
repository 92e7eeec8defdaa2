package swift_analyzer

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/swift"
)

// SwiftParser wraps the tree-sitter Swift grammar. Parsing is a pure
// function of the input text; the analyzer never re-parses a file whose
// cache entry is still valid.
type SwiftParser struct {
	parser *sitter.Parser
}

// NewSwiftParser creates a parser configured for Swift source.
func NewSwiftParser() *SwiftParser {
	parser := sitter.NewParser()
	parser.SetLanguage(swift.GetLanguage())
	return &SwiftParser{parser: parser}
}

// Parse turns file text into a syntax tree. The grammar recovers from
// localized mistakes, so only a tree carrying ERROR or MISSING nodes
// surfaces as ErrSyntax; a parser failure does too.
func (p *SwiftParser) Parse(content []byte) (*sitter.Tree, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if tree == nil || tree.RootNode() == nil {
		return nil, fmt.Errorf("%w: unparseable content", ErrSyntax)
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, fmt.Errorf("%w: unparseable content", ErrSyntax)
	}
	return tree, nil
}
