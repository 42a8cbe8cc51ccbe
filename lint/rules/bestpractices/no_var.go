// Package bestpractices provides linting rules that steer JavaScript toward
// modern, less error-prone constructs.
package bestpractices

import (
	"github.com/DigitalNaut/eslint-plugin-tutorial/javascript"
	"github.com/DigitalNaut/eslint-plugin-tutorial/lint"
)

// NoVarMessage is the diagnostic message reported for legacy var declarations.
const NoVarMessage = "Unexpected var, use let or const instead."

// NoVarRule reports variable declarations that use the function-scoped var
// keyword instead of the block-scoped let and const forms. Hoisting and
// accidental redeclaration make var bindings a common source of bugs, so
// the rule is classified as a problem rather than a style suggestion.
type NoVarRule struct{}

// NewNoVarRule creates a new no-var rule.
func NewNoVarRule() *NoVarRule {
	return &NoVarRule{}
}

// Name returns the unique identifier for this rule.
func (r *NoVarRule) Name() string {
	return "no-var"
}

// Meta returns the rule's static descriptor.
func (r *NoVarRule) Meta() lint.Meta {
	return lint.Meta{
		Type: lint.TypeProblem,
		Docs: lint.Docs{
			Description: "Disallow var declarations in favour of let and const",
			Category:    "Best Practices",
			Recommended: true,
			URL:         "https://github.com/DigitalNaut/eslint-plugin-tutorial/blob/main/docs/rules/no-var.md",
		},
		Fixable: false,
		Options: lint.NoOptions{},
	}
}

// Create registers the declaration handler. The rule keeps no state between
// visits: every declaration is judged on its own binding kind, so a program
// with several var statements yields one issue per statement.
func (r *NoVarRule) Create(ctx *lint.Context) lint.Visitors {
	return lint.Visitors{
		javascript.KindVariableDeclaration: func(node *javascript.Node) {
			if node.DeclarationKind() == javascript.DeclVar {
				ctx.Report(node, NoVarMessage)
			}
		},
	}
}
