package javascript

// SourceLocation represents a position range in a JavaScript source file
type SourceLocation struct {
	File        string
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// NodeKind identifies the syntactic category of a node. The set is closed:
// grammar constructs without a dedicated kind are mapped to KindUnknown and
// still appear in the tree with their raw grammar name intact.
type NodeKind int

const (
	// KindUnknown is any construct without a dedicated kind
	KindUnknown NodeKind = iota
	// KindProgram is the root node of a parsed source file
	KindProgram
	// KindVariableDeclaration is a var, let, or const declaration statement
	KindVariableDeclaration
	// KindVariableDeclarator is a single name/value binding inside a declaration
	KindVariableDeclarator
	// KindFunctionDeclaration is a function or generator declaration statement
	KindFunctionDeclaration
	// KindFunctionExpression is a function or generator used as an expression
	KindFunctionExpression
	// KindArrowFunction is an arrow function expression
	KindArrowFunction
	// KindClassDeclaration is a class declaration statement
	KindClassDeclaration
	// KindMethodDefinition is a method inside a class body
	KindMethodDefinition
	// KindStatementBlock is a braced statement list
	KindStatementBlock
	// KindExpressionStatement is an expression used as a statement
	KindExpressionStatement
	// KindIfStatement is an if statement with optional else clause
	KindIfStatement
	// KindSwitchStatement is a switch statement
	KindSwitchStatement
	// KindForStatement is a classic three-clause for loop
	KindForStatement
	// KindForInStatement is a for-in or for-of loop
	KindForInStatement
	// KindWhileStatement is a while loop
	KindWhileStatement
	// KindDoStatement is a do-while loop
	KindDoStatement
	// KindTryStatement is a try statement with catch or finally clauses
	KindTryStatement
	// KindThrowStatement is a throw statement
	KindThrowStatement
	// KindReturnStatement is a return statement
	KindReturnStatement
	// KindBreakStatement is a break statement
	KindBreakStatement
	// KindContinueStatement is a continue statement
	KindContinueStatement
	// KindLabeledStatement is a labeled statement
	KindLabeledStatement
	// KindEmptyStatement is a lone semicolon
	KindEmptyStatement
	// KindImportStatement is an ES module import
	KindImportStatement
	// KindExportStatement is an ES module export
	KindExportStatement
	// KindCallExpression is a function call
	KindCallExpression
	// KindNewExpression is a constructor call
	KindNewExpression
	// KindAssignmentExpression is a plain or compound assignment
	KindAssignmentExpression
	// KindBinaryExpression is a binary operator expression
	KindBinaryExpression
	// KindUnaryExpression is a prefix unary operator expression
	KindUnaryExpression
	// KindUpdateExpression is an increment or decrement expression
	KindUpdateExpression
	// KindTernaryExpression is a conditional expression
	KindTernaryExpression
	// KindMemberExpression is a dotted property access
	KindMemberExpression
	// KindSubscriptExpression is a bracketed property access
	KindSubscriptExpression
	// KindParenthesizedExpression is an expression wrapped in parentheses
	KindParenthesizedExpression
	// KindArray is an array literal
	KindArray
	// KindObject is an object literal
	KindObject
	// KindPair is a key/value entry inside an object literal
	KindPair
	// KindIdentifier is a plain identifier reference
	KindIdentifier
	// KindPropertyIdentifier is an identifier naming an object member
	KindPropertyIdentifier
	// KindString is a string literal
	KindString
	// KindTemplateString is a template literal
	KindTemplateString
	// KindNumber is a numeric literal
	KindNumber
	// KindRegex is a regular expression literal
	KindRegex
)

// kindNames maps node kinds to their string representations
var kindNames = map[NodeKind]string{
	KindUnknown:                 "Unknown",
	KindProgram:                 "Program",
	KindVariableDeclaration:     "VariableDeclaration",
	KindVariableDeclarator:      "VariableDeclarator",
	KindFunctionDeclaration:     "FunctionDeclaration",
	KindFunctionExpression:      "FunctionExpression",
	KindArrowFunction:           "ArrowFunction",
	KindClassDeclaration:        "ClassDeclaration",
	KindMethodDefinition:        "MethodDefinition",
	KindStatementBlock:          "StatementBlock",
	KindExpressionStatement:     "ExpressionStatement",
	KindIfStatement:             "IfStatement",
	KindSwitchStatement:         "SwitchStatement",
	KindForStatement:            "ForStatement",
	KindForInStatement:          "ForInStatement",
	KindWhileStatement:          "WhileStatement",
	KindDoStatement:             "DoStatement",
	KindTryStatement:            "TryStatement",
	KindThrowStatement:          "ThrowStatement",
	KindReturnStatement:         "ReturnStatement",
	KindBreakStatement:          "BreakStatement",
	KindContinueStatement:       "ContinueStatement",
	KindLabeledStatement:        "LabeledStatement",
	KindEmptyStatement:          "EmptyStatement",
	KindImportStatement:         "ImportStatement",
	KindExportStatement:         "ExportStatement",
	KindCallExpression:          "CallExpression",
	KindNewExpression:           "NewExpression",
	KindAssignmentExpression:    "AssignmentExpression",
	KindBinaryExpression:        "BinaryExpression",
	KindUnaryExpression:         "UnaryExpression",
	KindUpdateExpression:        "UpdateExpression",
	KindTernaryExpression:       "TernaryExpression",
	KindMemberExpression:        "MemberExpression",
	KindSubscriptExpression:     "SubscriptExpression",
	KindParenthesizedExpression: "ParenthesizedExpression",
	KindArray:                   "Array",
	KindObject:                  "Object",
	KindPair:                    "Pair",
	KindIdentifier:              "Identifier",
	KindPropertyIdentifier:      "PropertyIdentifier",
	KindString:                  "String",
	KindTemplateString:          "TemplateString",
	KindNumber:                  "Number",
	KindRegex:                   "Regex",
}

// String returns the string representation of the node kind
func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// DeclKind is the binding kind of a variable declaration
type DeclKind int

const (
	// DeclNone marks nodes that are not variable declarations
	DeclNone DeclKind = iota
	// DeclVar is a function-scoped, reassignable var binding
	DeclVar
	// DeclLet is a block-scoped, reassignable let binding
	DeclLet
	// DeclConst is a block-scoped, single-assignment const binding
	DeclConst
)

// declNames maps declaration kinds to their source keywords
var declNames = map[DeclKind]string{
	DeclVar:   "var",
	DeclLet:   "let",
	DeclConst: "const",
}

// String returns the source keyword for the declaration kind, or an empty
// string for DeclNone
func (d DeclKind) String() string {
	return declNames[d]
}

// Node is a single node in the parsed syntax tree. Nodes are owned by their
// Program and remain valid for its lifetime; they hold no handles into the
// underlying parser.
type Node struct {
	kind      NodeKind
	grammar   string
	decl      DeclKind
	startByte int
	endByte   int
	location  *SourceLocation
	parent    *Node
	children  []*Node
	program   *Program
}

// Kind returns the node's syntactic category
func (n *Node) Kind() NodeKind {
	return n.kind
}

// Grammar returns the raw tree-sitter grammar name for the node, such as
// "lexical_declaration". It distinguishes constructs that share a NodeKind.
func (n *Node) Grammar() string {
	return n.grammar
}

// Location returns the node's position in the source file
func (n *Node) Location() *SourceLocation {
	return n.location
}

// StartByte returns the byte offset where the node's source text begins
func (n *Node) StartByte() int {
	return n.startByte
}

// EndByte returns the byte offset just past the node's source text
func (n *Node) EndByte() int {
	return n.endByte
}

// Parent returns the enclosing node, or nil for the program root
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's named children in source order
func (n *Node) Children() []*Node {
	return n.children
}

// Program returns the program this node belongs to
func (n *Node) Program() *Program {
	return n.program
}

// Program is a parsed JavaScript source file. It owns the full syntax tree
// and the original source bytes.
type Program struct {
	file   string
	source []byte
	root   *Node
	byKind map[NodeKind][]*Node
}

// File returns the name the source was parsed under
func (p *Program) File() string {
	return p.file
}

// Source returns the raw source bytes the program was parsed from
func (p *Program) Source() []byte {
	return p.source
}

// Root returns the program's root node
func (p *Program) Root() *Node {
	return p.root
}

// NodesOfKind returns every node of the given kind in document order
func (p *Program) NodesOfKind(kind NodeKind) []*Node {
	if p == nil {
		return nil
	}
	return p.byKind[kind]
}
