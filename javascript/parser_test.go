package javascript

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	content := "let x = 5;\nvar y = 10;\nconst z = 15;\n"

	program, err := ParseSource([]byte(content), "sample.js")
	require.NoError(t, err, "ParseSource() should not return an error")
	require.NotNil(t, program, "ParseSource() should return a non-nil Program")

	assert.Equal(t, "sample.js", program.File(), "File should be the supplied name")
	assert.Equal(t, []byte(content), program.Source(), "Source should round-trip unchanged")

	root := program.Root()
	require.NotNil(t, root, "Root should not be nil")
	assert.Equal(t, KindProgram, root.Kind(), "Root kind should be Program")
	assert.Equal(t, "program", root.Grammar(), "Root grammar name should be program")

	declarations := program.NodesOfKind(KindVariableDeclaration)
	require.Len(t, declarations, 3, "Should have three declaration statements")

	kinds := make([]DeclKind, 0, len(declarations))
	for _, declaration := range declarations {
		kinds = append(kinds, declaration.DeclarationKind())
	}
	assert.Equal(t, []DeclKind{DeclLet, DeclVar, DeclConst}, kinds, "Binding kinds should follow source order")
}

func TestParseString(t *testing.T) {
	program, err := ParseString("const greeting = 'hello';")
	require.NoError(t, err, "ParseString() should not return an error")
	require.NotNil(t, program, "ParseString() should return a non-nil Program")

	assert.Equal(t, DefaultFileName, program.File(), "String parses should use the default file name")

	declarations := program.NodesOfKind(KindVariableDeclaration)
	require.Len(t, declarations, 1)
	assert.Equal(t, DeclConst, declarations[0].DeclarationKind())
}

func TestParseReader(t *testing.T) {
	reader := strings.NewReader("let counter = 0;")

	program, err := ParseReader(reader, "counter.js")
	require.NoError(t, err, "ParseReader() should not return an error")

	assert.Equal(t, "counter.js", program.File())
	require.Len(t, program.NodesOfKind(KindVariableDeclaration), 1)
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.js")
	require.NoError(t, os.WriteFile(path, []byte("var legacy = 1;\n"), 0o644), "Failed to write test file")

	program, err := Parse(path)
	require.NoError(t, err, "Parse() should not return an error")

	assert.Equal(t, path, program.File(), "File should be the parsed path")

	declarations := program.NodesOfKind(KindVariableDeclaration)
	require.Len(t, declarations, 1)
	assert.Equal(t, DeclVar, declarations[0].DeclarationKind())
}

func TestParseDeclarationForms(t *testing.T) {
	testCases := []struct {
		name    string
		source  string
		grammar string
		decl    DeclKind
	}{
		{
			name:    "var form",
			source:  "var a = 1;",
			grammar: "variable_declaration",
			decl:    DeclVar,
		},
		{
			name:    "let form",
			source:  "let a = 1;",
			grammar: "lexical_declaration",
			decl:    DeclLet,
		},
		{
			name:    "const form",
			source:  "const a = 1;",
			grammar: "lexical_declaration",
			decl:    DeclConst,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			program, err := ParseString(tc.source)
			require.NoError(t, err)

			declarations := program.NodesOfKind(KindVariableDeclaration)
			require.Len(t, declarations, 1, "Every form should surface as one declaration node")

			declaration := declarations[0]
			assert.Equal(t, tc.grammar, declaration.Grammar(), "Raw grammar name should be preserved")
			assert.Equal(t, tc.decl, declaration.DeclarationKind(), "Binding kind should match the keyword")
			assert.Equal(t, "VariableDeclaration", declaration.Kind().String())
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	malformed := []string{
		"let = ;",
		"if (",
		"function ( {",
	}

	for _, source := range malformed {
		_, err := ParseString(source)
		require.Error(t, err, "Source %q should fail to parse", source)
		assert.ErrorIs(t, err, ErrSyntax, "Parse failures should wrap ErrSyntax")
	}
}

func TestParseEmptySource(t *testing.T) {
	program, err := ParseString("")
	require.NoError(t, err, "Empty source is a valid program")

	root := program.Root()
	require.NotNil(t, root)
	assert.Equal(t, KindProgram, root.Kind())
	assert.Empty(t, root.Children(), "Empty program should have no statements")
	assert.Empty(t, program.NodesOfKind(KindVariableDeclaration))
}

func TestParseLocations(t *testing.T) {
	content := "let ok = 1;\n  var indented = 2;\n"

	program, err := ParseSource([]byte(content), "located.js")
	require.NoError(t, err)

	declarations := program.NodesOfKind(KindVariableDeclaration)
	require.Len(t, declarations, 2)

	first := declarations[0].Location()
	require.NotNil(t, first)
	assert.Equal(t, "located.js", first.File)
	assert.Equal(t, 1, first.StartLine, "Lines are one-based")
	assert.Equal(t, 1, first.StartColumn, "Columns are one-based")

	second := declarations[1].Location()
	require.NotNil(t, second)
	assert.Equal(t, 2, second.StartLine)
	assert.Equal(t, 3, second.StartColumn, "Leading whitespace should offset the column")
	assert.Equal(t, 2, second.EndLine)
}

func TestParseSkipsComments(t *testing.T) {
	content := "// legacy code below\nvar x = 1; /* trailing */\n"

	program, err := ParseString(content)
	require.NoError(t, err)

	children := program.Root().Children()
	require.Len(t, children, 1, "Comments should not appear in the tree")
	assert.Equal(t, KindVariableDeclaration, children[0].Kind())
}

func TestNodesOfKindDocumentOrder(t *testing.T) {
	content := "var outer = 1;\nfunction f() { var inner = 2; }\nvar last = 3;\n"

	program, err := ParseString(content)
	require.NoError(t, err)

	declarations := program.NodesOfKind(KindVariableDeclaration)
	require.Len(t, declarations, 3)

	lines := make([]int, 0, len(declarations))
	for _, declaration := range declarations {
		lines = append(lines, declaration.Location().StartLine)
	}
	assert.Equal(t, []int{1, 2, 3}, lines, "Index should preserve document order across nesting")
}

func TestParseContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseWithOptionsContext(ctx, "ignored.js", nil)
	require.Error(t, err, "Cancelled context should abort parsing")
	assert.ErrorIs(t, err, context.Canceled)
}
