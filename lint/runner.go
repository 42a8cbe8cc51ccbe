// Package lint provides a pluggable, rule-based linting framework for JavaScript source.
// It enables plugin authors to enforce coding standards and best practices through
// composable rules driven by a single shared traversal.
package lint

import (
	"context"
	"fmt"
	"sort"

	"github.com/DigitalNaut/eslint-plugin-tutorial/javascript"
)

// Runner executes a fixed set of rules against parsed programs. The runner
// owns the traversal: rules register node handlers through Create, and the
// runner invokes them while walking each program once in document order.
type Runner struct {
	rules      []Rule
	severities map[string]Severity
}

// NewRunner creates a Runner for the given rules. Every rule reports at
// SeverityError until overridden with SetSeverity.
func NewRunner(rules ...Rule) *Runner {
	return &Runner{
		rules:      rules,
		severities: make(map[string]Severity),
	}
}

// SetSeverity overrides the severity the named rule reports at.
func (r *Runner) SetSeverity(name string, severity Severity) {
	r.severities[name] = severity
}

// severityFor returns the configured severity for a rule
func (r *Runner) severityFor(name string) Severity {
	if severity, ok := r.severities[name]; ok {
		return severity
	}
	return SeverityError
}

// Lint runs every rule against the program and returns the combined issues
// sorted by source location. Each call builds fresh rule contexts, so a
// Runner is reusable across programs and repeated calls over the same
// program yield the same issues.
func (r *Runner) Lint(program *javascript.Program) []Issue {
	if program == nil {
		return nil
	}

	// Let each rule register its handlers
	contexts := make([]*Context, 0, len(r.rules))
	dispatch := make(map[javascript.NodeKind][]VisitFunc)
	for _, rule := range r.rules {
		ctx := newContext(program, rule.Name(), r.severityFor(rule.Name()))
		contexts = append(contexts, ctx)

		for kind, visit := range rule.Create(ctx) {
			if visit == nil {
				continue
			}
			dispatch[kind] = append(dispatch[kind], visit)
		}
	}

	// One traversal serves every rule. Handlers cannot fail, so the walk
	// always completes.
	if len(dispatch) > 0 {
		_ = program.Walk(func(node *javascript.Node, _ int) error {
			for _, visit := range dispatch[node.Kind()] {
				visit(node)
			}
			return nil
		})
	}

	// Collect issues from every rule's context
	var issues []Issue
	for _, ctx := range contexts {
		issues = append(issues, ctx.issues...)
	}

	// Stable so that issues a rule reported at the same location keep
	// their reporting order
	sort.SliceStable(issues, func(i, j int) bool {
		return compareIssuesByLocation(issues[i], issues[j])
	})

	return issues
}

// LintSource parses source text under the given name and lints it.
func (r *Runner) LintSource(source []byte, name string) ([]Issue, error) {
	program, err := javascript.ParseSource(source, name)
	if err != nil {
		return nil, fmt.Errorf("failed to lint %s: %w", name, err)
	}

	return r.Lint(program), nil
}

// LintFile reads a JavaScript file and lints it.
func (r *Runner) LintFile(path string, opts *javascript.ParseOptions) ([]Issue, error) {
	return r.LintFileContext(context.Background(), path, opts)
}

// LintFileContext reads a JavaScript file and lints it with cancellation support.
func (r *Runner) LintFileContext(ctx context.Context, path string, opts *javascript.ParseOptions) ([]Issue, error) {
	program, err := javascript.ParseWithOptionsContext(ctx, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to lint %s: %w", path, err)
	}

	return r.Lint(program), nil
}
