package swift_analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidSource(t *testing.T) {
	parser := NewSwiftParser()

	tree, err := parser.Parse([]byte("import Foundation\n\nstruct Main {}\n"))
	require.NoError(t, err)
	defer tree.Close()

	assert.Equal(t, "source_file", tree.RootNode().Type())
}

func TestParse_GarbageInputIsSyntaxError(t *testing.T) {
	parser := NewSwiftParser()

	// The grammar recovers into a source_file root even for garbage, so the
	// error has to be detected on the tree, not on the root kind.
	inputs := [][]byte{
		[]byte("\x00\x01\x02 garbage {{{"),
		[]byte("}}}}"),
		[]byte("let = = ="),
	}
	for _, input := range inputs {
		tree, err := parser.Parse(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrSyntax)
		assert.Nil(t, tree)
	}
}

func TestParse_UnbalancedBraceIsSyntaxError(t *testing.T) {
	parser := NewSwiftParser()

	tree, err := parser.Parse([]byte("struct Main {\n    let value: Int\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyntax)
	assert.Nil(t, tree)
}