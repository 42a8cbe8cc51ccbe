// Package lint provides a pluggable, rule-based linting framework for JavaScript source.
// It enables plugin authors to enforce coding standards and best practices through
// composable rules driven by a single shared traversal.
package lint

import (
	"github.com/DigitalNaut/eslint-plugin-tutorial/javascript"
)

// Context provides a rule with everything it needs while a program is being
// linted: access to the program under analysis and the reporting sink for
// the rule's issues. The runner builds one Context per rule per program, so
// issues stay attributed to the rule that reported them.
type Context struct {
	program  *javascript.Program
	rule     string
	severity Severity
	issues   []Issue
}

// newContext creates the reporting context handed to one rule for one program.
func newContext(program *javascript.Program, rule string, severity Severity) *Context {
	return &Context{
		program:  program,
		rule:     rule,
		severity: severity,
	}
}

// Program returns the program being linted.
func (ctx *Context) Program() *javascript.Program {
	return ctx.program
}

// File returns the name of the file being linted.
func (ctx *Context) File() string {
	return ctx.program.File()
}

// Source returns the raw source bytes being linted.
func (ctx *Context) Source() []byte {
	return ctx.program.Source()
}

// RuleName returns the name of the rule this context belongs to.
func (ctx *Context) RuleName() string {
	return ctx.rule
}

// Severity returns the severity this rule's issues are reported at.
func (ctx *Context) Severity() Severity {
	return ctx.severity
}

// Report records an issue at the given node. The issue carries the rule's
// name and configured severity along with the node's source location.
func (ctx *Context) Report(node *javascript.Node, message string) {
	var location *SourceLocation
	if node != nil {
		location = node.Location()
	}

	ctx.issues = append(ctx.issues, NewIssue(ctx.rule, ctx.severity, message, location))
}

// ReportWithFix records an issue at the given node along with a suggested
// replacement for the node's source text.
func (ctx *Context) ReportWithFix(node *javascript.Node, message, description, replacement string) {
	var location *SourceLocation
	var before string
	if node != nil {
		location = node.Location()
		before = node.Text()
	}

	issue := NewIssue(ctx.rule, ctx.severity, message, location).
		WithFix(description, before, replacement, location)
	ctx.issues = append(ctx.issues, issue)
}

// ReportIssue records a fully built issue. The rule name and severity are
// stamped onto it so attribution stays consistent regardless of how the
// issue was constructed.
func (ctx *Context) ReportIssue(issue Issue) {
	issue.Rule = ctx.rule
	issue.Severity = ctx.severity
	ctx.issues = append(ctx.issues, issue)
}

// Issues returns the issues reported through this context so far.
func (ctx *Context) Issues() []Issue {
	return ctx.issues
}
