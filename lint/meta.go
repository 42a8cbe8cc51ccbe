// Package lint provides a pluggable, rule-based linting framework for JavaScript source.
// It enables plugin authors to enforce coding standards and best practices through
// composable rules driven by a single shared traversal.
package lint

// RuleType classifies what a rule reports on.
type RuleType int

const (
	// TypeProblem marks rules that flag code which is erroneous or likely to cause bugs.
	TypeProblem RuleType = iota
	// TypeSuggestion marks rules that flag code which could be written in a better way.
	TypeSuggestion
	// TypeLayout marks rules concerned with formatting and whitespace.
	TypeLayout
)

// String returns the string representation of the rule type.
func (t RuleType) String() string {
	switch t {
	case TypeProblem:
		return "problem"
	case TypeSuggestion:
		return "suggestion"
	case TypeLayout:
		return "layout"
	default:
		return "unknown"
	}
}

// Docs describes a rule for documentation surfaces and configuration generators.
type Docs struct {
	// Description is a short summary of what the rule checks.
	Description string
	// Category groups related rules in documentation, such as "Best Practices".
	Category string
	// Recommended marks rules enabled by the plugin's recommended configuration.
	Recommended bool
	// URL links to the rule's full documentation.
	URL string
}

// Meta is the static descriptor every rule exposes. It carries everything a
// host needs to present or configure the rule without running it.
type Meta struct {
	// Type classifies the rule.
	Type RuleType
	// Docs holds the rule's documentation metadata.
	Docs Docs
	// Fixable indicates whether the rule produces automatic fixes.
	Fixable bool
	// Options is the rule's configuration value with defaults applied.
	// Each rule declares its own typed options struct; rules that accept
	// no configuration use NoOptions.
	Options interface{}
}

// NoOptions is the options value for rules that accept no configuration.
// Its emptiness is part of the contract: there is nothing to configure.
type NoOptions struct{}
