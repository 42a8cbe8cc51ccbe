// Package lint provides a pluggable, rule-based linting framework for JavaScript source.
// It enables plugin authors to enforce coding standards and best practices through
// composable rules driven by a single shared traversal.
package lint

import (
	"errors"
	"fmt"
)

// Plugin bundles a named set of rules for distribution. It mirrors the
// descriptor shape of classic lint plugins: a namespace plus rules keyed by
// name, with a recommended configuration derived from rule metadata.
type Plugin struct {
	name  string
	rules map[string]Rule
	order []string
}

// NewPlugin creates an empty plugin with the given namespace.
func NewPlugin(name string) *Plugin {
	return &Plugin{
		name:  name,
		rules: make(map[string]Rule),
	}
}

// Name returns the plugin's namespace.
func (p *Plugin) Name() string {
	return p.name
}

// Register adds a rule to the plugin. Registration is static: it happens
// while the plugin is assembled, never during linting. Nil rules, rules
// without a name, and duplicate names are rejected.
func (p *Plugin) Register(rule Rule) error {
	if rule == nil {
		return errors.New("rule cannot be nil")
	}

	name := rule.Name()
	if name == "" {
		return errors.New("rule name cannot be empty")
	}

	if _, exists := p.rules[name]; exists {
		return fmt.Errorf("rule %s is already registered", name)
	}

	p.rules[name] = rule
	p.order = append(p.order, name)

	return nil
}

// Rule returns the registered rule with the given name.
// Returns nil if no rule with that name is registered.
//
//nolint:ireturn // Rules are stored and served as the Rule interface.
func (p *Plugin) Rule(name string) Rule {
	return p.rules[name]
}

// Rules returns the plugin's rules in registration order.
func (p *Plugin) Rules() []Rule {
	rules := make([]Rule, 0, len(p.order))
	for _, name := range p.order {
		rules = append(rules, p.rules[name])
	}
	return rules
}

// Names returns the registered rule names in registration order.
func (p *Plugin) Names() []string {
	names := make([]string, len(p.order))
	copy(names, p.order)
	return names
}

// RecommendedConfig returns the severity for every rule whose metadata marks
// it recommended, keyed by namespaced rule name such as "tutorial/no-var".
// Problem rules report at SeverityError, all others at SeverityWarning.
func (p *Plugin) RecommendedConfig() map[string]Severity {
	config := make(map[string]Severity)
	for _, name := range p.order {
		rule := p.rules[name]
		if !rule.Meta().Docs.Recommended {
			continue
		}

		severity := SeverityError
		if rule.Meta().Type != TypeProblem {
			severity = SeverityWarning
		}
		config[p.name+"/"+name] = severity
	}
	return config
}
