package javascript

// Text returns the node's source text.
func (n *Node) Text() string {
	if n == nil || n.program == nil {
		return ""
	}

	source := n.program.source
	if n.startByte < 0 || n.endByte > len(source) || n.startByte > n.endByte {
		return ""
	}

	return string(source[n.startByte:n.endByte])
}

// ChildrenOfKind returns the node's direct children of the given kind in source order.
func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var matched []*Node
	for _, child := range n.children {
		if child.kind == kind {
			matched = append(matched, child)
		}
	}
	return matched
}

// FirstChildOfKind returns the node's first direct child of the given kind.
// Returns nil if the node has no child of that kind.
func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.children {
		if child.kind == kind {
			return child
		}
	}
	return nil
}

// Ancestors returns the chain of enclosing nodes, from the node's parent up
// to the program root.
func (n *Node) Ancestors() []*Node {
	var chain []*Node
	for current := n.parent; current != nil; current = current.parent {
		chain = append(chain, current)
	}
	return chain
}

// DeclarationKind returns the binding keyword of a variable declaration node.
// Returns DeclNone for every other kind of node.
func (n *Node) DeclarationKind() DeclKind {
	return n.decl
}

// Declarators returns the individual name/value bindings of a variable
// declaration, one per declared variable. Returns nil for other node kinds.
func (n *Node) Declarators() []*Node {
	if n.kind != KindVariableDeclaration {
		return nil
	}
	return n.ChildrenOfKind(KindVariableDeclarator)
}
