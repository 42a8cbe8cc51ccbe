// Package lint provides a pluggable, rule-based linting framework for JavaScript source.
// It enables plugin authors to enforce coding standards and best practices through
// composable rules driven by a single shared traversal.
package lint

import (
	"fmt"
	"regexp"

	"github.com/DigitalNaut/eslint-plugin-tutorial/javascript"
)

// CreateFunc represents a rule factory: given the rule's reporting context,
// it returns the visitor set to register for the program being linted.
type CreateFunc func(ctx *Context) Visitors

// ContextVisitFunc represents a node handler that also receives the rule's
// reporting context, for rules assembled from closures instead of types.
type ContextVisitFunc func(ctx *Context, node *javascript.Node)

// NewRule creates a rule from a name, metadata, and a factory function.
// This is the most basic rule builder, for rules that assemble their own
// visitor set.
//
//nolint:ireturn // Builder functions should return interfaces
func NewRule(name string, meta Meta, create CreateFunc) Rule {
	return &funcRule{
		name:   name,
		meta:   meta,
		create: create,
	}
}

// funcRule implements the Rule interface using a CreateFunc.
type funcRule struct {
	name   string
	meta   Meta
	create CreateFunc
}

// Name returns the unique identifier for this rule.
func (r *funcRule) Name() string {
	return r.name
}

// Meta returns the rule's static descriptor.
func (r *funcRule) Meta() Meta {
	return r.meta
}

// Create executes the rule's factory function and returns its visitor set.
func (r *funcRule) Create(ctx *Context) Visitors {
	return r.create(ctx)
}

// KindRule creates a rule that watches a single node kind.
// The handler is invoked once for every node of that kind, in document order.
//
//nolint:ireturn // Builder functions should return interfaces
func KindRule(name string, meta Meta, kind javascript.NodeKind, visit ContextVisitFunc) Rule {
	return NewRule(name, meta, func(ctx *Context) Visitors {
		return Visitors{
			kind: func(node *javascript.Node) {
				visit(ctx, node)
			},
		}
	})
}

// PatternRule creates a rule that reports nodes of one kind whose source text
// matches a regular expression. This is useful for forbidding calls, markers,
// or identifiers by name.
//
//nolint:ireturn // Builder functions should return interfaces
func PatternRule(name, description string, kind javascript.NodeKind, pattern string) Rule {
	regex, err := regexp.Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("invalid pattern in rule %s: %v", name, err))
	}

	meta := Meta{
		Type: TypeProblem,
		Docs: Docs{
			Description: description,
		},
		Options: NoOptions{},
	}

	return KindRule(name, meta, kind, func(ctx *Context, node *javascript.Node) {
		if regex.MatchString(node.Text()) {
			ctx.Report(node, fmt.Sprintf("Found forbidden pattern: %s", regex.String()))
		}
	})
}
