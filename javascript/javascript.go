// Package javascript provides a high-level Go API for parsing and analyzing JavaScript source.
// It wraps the tree-sitter JavaScript grammar with an ergonomic interface optimized for tooling development.
package javascript

import "errors"

// WalkFunc is called for each node during traversal.
// The depth parameter indicates the nesting level (0 for the starting node).
// If fn returns an error, traversal stops and the error is returned.
type WalkFunc func(node *Node, depth int) error

// Walk traverses the program's syntax tree in document order, calling fn for
// every node including the program root.
// Returns the first error returned by fn.
func (p *Program) Walk(fn WalkFunc) error {
	if fn == nil {
		return errors.New("WalkFunc cannot be nil")
	}

	if p == nil || p.root == nil {
		return nil
	}

	return walkNode(p.root, 0, fn)
}

// Walk traverses the subtree rooted at n in document order, calling fn for
// every node including n itself. Depth is counted from n.
// Returns the first error returned by fn.
func (n *Node) Walk(fn WalkFunc) error {
	if fn == nil {
		return errors.New("WalkFunc cannot be nil")
	}

	if n == nil {
		return nil
	}

	return walkNode(n, 0, fn)
}

// walkNode visits node and its children recursively, tracking depth
func walkNode(node *Node, depth int, fn WalkFunc) error {
	if err := fn(node, depth); err != nil {
		return err
	}

	for _, child := range node.children {
		if err := walkNode(child, depth+1, fn); err != nil {
			return err
		}
	}

	return nil
}
