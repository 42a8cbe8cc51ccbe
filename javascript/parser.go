package javascript

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// DefaultFileName names source parsed from memory when no file name applies.
const DefaultFileName = "input.js"

// ErrSyntax indicates source text the JavaScript grammar could not fully parse.
// Errors returned for malformed input wrap it, so callers can test with errors.Is.
var ErrSyntax = errors.New("syntax error")

// jsLanguage is the tree-sitter JavaScript grammar, shared by all parses
var jsLanguage = sitter.NewLanguage(tree_sitter_javascript.Language())

// ParseOptions provides options for parsing JavaScript files.
type ParseOptions struct {
	// Filesystem allows injecting a custom filesystem implementation.
	// If nil, the native OS filesystem is used.
	Filesystem billy.Filesystem
}

// Parse parses a JavaScript file from the given file path.
func Parse(path string) (*Program, error) {
	return ParseContext(context.Background(), path)
}

// ParseWithOptions parses a JavaScript file with custom options.
func ParseWithOptions(path string, opts *ParseOptions) (*Program, error) {
	return ParseWithOptionsContext(context.Background(), path, opts)
}

// ParseContext parses a JavaScript file with cancellation support.
func ParseContext(ctx context.Context, path string) (*Program, error) {
	return ParseWithOptionsContext(ctx, path, nil)
}

// ParseWithOptionsContext parses a JavaScript file with custom options and cancellation support.
func ParseWithOptionsContext(ctx context.Context, path string, opts *ParseOptions) (*Program, error) {
	// Check context cancellation first
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	// Use default options if nil
	if opts == nil {
		opts = &ParseOptions{}
	}

	// Use the native filesystem if none was injected
	filesystem := opts.Filesystem
	if filesystem == nil {
		filesystem = &osfs.ChrootOS{}
	}

	content, err := util.ReadFile(filesystem, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return ParseSource(content, path)
}

// ParseString parses JavaScript source from a string.
func ParseString(source string) (*Program, error) {
	return ParseSource([]byte(source), DefaultFileName)
}

// ParseReader parses JavaScript source from an io.Reader.
func ParseReader(reader io.Reader, name string) (*Program, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return ParseSource(content, name)
}

// ParseSource parses JavaScript source text under the given file name.
// All other parse entry points funnel into this one. The returned Program
// owns its full syntax tree; it holds no handles into the parser, so no
// cleanup call is needed.
func ParseSource(source []byte, name string) (*Program, error) {
	if name == "" {
		name = DefaultFileName
	}

	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(jsLanguage); err != nil {
		return nil, fmt.Errorf("failed to configure javascript grammar: %w", err)
	}

	tree := parser.Parse(source, nil)
	defer tree.Close()

	// Reject trees with error or missing nodes rather than handing rules
	// a partially parsed program
	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("failed to parse %s: %w", name, ErrSyntax)
	}

	program := &Program{
		file:   name,
		source: source,
		byKind: make(map[NodeKind][]*Node),
	}
	program.root = convertNode(root, nil, program)

	return program, nil
}

// convertNode converts a raw tree-sitter node and its named descendants
// into the domain model. Nodes are appended to the program's kind index in
// document order: each node before its children.
func convertNode(raw *sitter.Node, parent *Node, program *Program) *Node {
	grammar := intern(raw.Kind())

	node := &Node{
		kind:      kindForGrammar(grammar),
		grammar:   grammar,
		startByte: int(raw.StartByte()),
		endByte:   int(raw.EndByte()),
		location:  locationOf(raw, program.file),
		parent:    parent,
		program:   program,
	}
	node.decl = declKindOf(raw, grammar)

	program.byKind[node.kind] = append(program.byKind[node.kind], node)

	count := raw.NamedChildCount()
	for i := uint(0); i < count; i++ {
		child := raw.NamedChild(i)
		if child == nil || isIgnorable(child) {
			continue
		}
		node.children = append(node.children, convertNode(child, node, program))
	}

	return node
}

// isIgnorable reports grammar nodes that carry no syntactic structure
func isIgnorable(raw *sitter.Node) bool {
	switch raw.Kind() {
	case "comment", "html_comment":
		return true
	default:
		return false
	}
}

// locationOf converts tree-sitter's zero-based positions to one-based
// line and column numbers
func locationOf(raw *sitter.Node, file string) *SourceLocation {
	start := raw.StartPosition()
	end := raw.EndPosition()

	return &SourceLocation{
		File:        file,
		StartLine:   int(start.Row) + 1,
		StartColumn: int(start.Column) + 1,
		EndLine:     int(end.Row) + 1,
		EndColumn:   int(end.Column) + 1,
	}
}

// declKindOf extracts the binding kind of a declaration node. The grammar
// splits declarations across two constructs: variable_declaration is always
// the var form, while lexical_declaration carries let or const in its kind
// field.
func declKindOf(raw *sitter.Node, grammar string) DeclKind {
	switch grammar {
	case "variable_declaration":
		return DeclVar
	case "lexical_declaration":
		if keyword := raw.ChildByFieldName("kind"); keyword != nil {
			switch keyword.Kind() {
			case "let":
				return DeclLet
			case "const":
				return DeclConst
			}
		}
	}

	return DeclNone
}

// kindForGrammar maps a raw grammar name to its NodeKind.
// The two declaration constructs collapse into KindVariableDeclaration so
// rules can match every declaration statement with a single kind; the
// binding keyword stays available through DeclarationKind.
//
//nolint:cyclop,funlen // Grammar name dispatch is naturally a long switch
func kindForGrammar(grammar string) NodeKind {
	switch grammar {
	case "program":
		return KindProgram
	case "variable_declaration", "lexical_declaration":
		return KindVariableDeclaration
	case "variable_declarator":
		return KindVariableDeclarator
	case "function_declaration", "generator_function_declaration":
		return KindFunctionDeclaration
	case "function_expression", "generator_function":
		return KindFunctionExpression
	case "arrow_function":
		return KindArrowFunction
	case "class_declaration":
		return KindClassDeclaration
	case "method_definition":
		return KindMethodDefinition
	case "statement_block":
		return KindStatementBlock
	case "expression_statement":
		return KindExpressionStatement
	case "if_statement":
		return KindIfStatement
	case "switch_statement":
		return KindSwitchStatement
	case "for_statement":
		return KindForStatement
	case "for_in_statement":
		return KindForInStatement
	case "while_statement":
		return KindWhileStatement
	case "do_statement":
		return KindDoStatement
	case "try_statement":
		return KindTryStatement
	case "throw_statement":
		return KindThrowStatement
	case "return_statement":
		return KindReturnStatement
	case "break_statement":
		return KindBreakStatement
	case "continue_statement":
		return KindContinueStatement
	case "labeled_statement":
		return KindLabeledStatement
	case "empty_statement":
		return KindEmptyStatement
	case "import_statement":
		return KindImportStatement
	case "export_statement":
		return KindExportStatement
	case "call_expression":
		return KindCallExpression
	case "new_expression":
		return KindNewExpression
	case "assignment_expression", "augmented_assignment_expression":
		return KindAssignmentExpression
	case "binary_expression":
		return KindBinaryExpression
	case "unary_expression":
		return KindUnaryExpression
	case "update_expression":
		return KindUpdateExpression
	case "ternary_expression":
		return KindTernaryExpression
	case "member_expression":
		return KindMemberExpression
	case "subscript_expression":
		return KindSubscriptExpression
	case "parenthesized_expression":
		return KindParenthesizedExpression
	case "array":
		return KindArray
	case "object":
		return KindObject
	case "pair":
		return KindPair
	case "identifier":
		return KindIdentifier
	case "property_identifier":
		return KindPropertyIdentifier
	case "string":
		return KindString
	case "template_string":
		return KindTemplateString
	case "number":
		return KindNumber
	case "regex":
		return KindRegex
	default:
		return KindUnknown
	}
}
