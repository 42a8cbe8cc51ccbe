// Package lint provides a pluggable, rule-based linting framework for JavaScript source.
// It enables plugin authors to enforce coding standards and best practices through
// composable rules driven by a single shared traversal.
package lint

import (
	"github.com/DigitalNaut/eslint-plugin-tutorial/javascript"
)

// Rule defines the interface that all linting rules must implement.
// Rules are the core building blocks of the linting framework, each responsible
// for detecting one specific pattern or issue in JavaScript source.
type Rule interface {
	// Name returns a unique identifier for the rule.
	// This should be a kebab-case string like "no-var" or "prefer-const".
	Name() string

	// Meta returns the rule's static descriptor: its type, documentation
	// metadata, fixability, and default options.
	Meta() Meta

	// Create is called once per linted program. It returns the rule's
	// visitor set: one handler per node kind the rule wants to observe.
	// The runner owns the traversal and invokes each handler as matching
	// nodes are reached, so rules never walk the tree themselves and must
	// judge each node on its own attributes.
	Create(ctx *Context) Visitors
}

// Visitors maps node kinds to the handler invoked for nodes of that kind.
type Visitors map[javascript.NodeKind]VisitFunc

// VisitFunc is a node handler registered by a rule for one node kind.
type VisitFunc func(node *javascript.Node)
