package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalNaut/eslint-plugin-tutorial/javascript"
)

func namedStub(name string, ruleType RuleType, recommended bool) *stubRule {
	return &stubRule{
		name: name,
		meta: Meta{
			Type: ruleType,
			Docs: Docs{
				Description: "stub rule " + name,
				Recommended: recommended,
			},
			Options: NoOptions{},
		},
		create: func(ctx *Context) Visitors {
			return Visitors{}
		},
	}
}

func TestPluginRegister(t *testing.T) {
	plugin := NewPlugin("demo")

	require.NoError(t, plugin.Register(namedStub("first", TypeProblem, true)))
	require.NoError(t, plugin.Register(namedStub("second", TypeSuggestion, false)))

	assert.Equal(t, "demo", plugin.Name())
	assert.Equal(t, []string{"first", "second"}, plugin.Names())
}

func TestPluginRegisterRejectsDuplicates(t *testing.T) {
	plugin := NewPlugin("demo")

	require.NoError(t, plugin.Register(namedStub("dup", TypeProblem, true)))

	err := plugin.Register(namedStub("dup", TypeProblem, true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dup")
	assert.Equal(t, []string{"dup"}, plugin.Names(), "Failed registration must not change the rule set")
}

func TestPluginRegisterRejectsInvalidRules(t *testing.T) {
	plugin := NewPlugin("demo")

	require.Error(t, plugin.Register(nil), "Nil rules are rejected")
	require.Error(t, plugin.Register(namedStub("", TypeProblem, true)), "Unnamed rules are rejected")
	assert.Empty(t, plugin.Names())
}

func TestPluginRuleLookup(t *testing.T) {
	plugin := NewPlugin("demo")
	rule := namedStub("present", TypeProblem, true)
	require.NoError(t, plugin.Register(rule))

	assert.Same(t, rule, plugin.Rule("present"))
	assert.Nil(t, plugin.Rule("absent"))
}

func TestPluginRulesPreserveRegistrationOrder(t *testing.T) {
	plugin := NewPlugin("demo")
	names := []string{"zebra", "alpha", "middle"}
	for _, name := range names {
		require.NoError(t, plugin.Register(namedStub(name, TypeProblem, false)))
	}

	rules := plugin.Rules()
	require.Len(t, rules, len(names))
	for i, rule := range rules {
		assert.Equal(t, names[i], rule.Name())
	}
}

func TestPluginRecommendedConfig(t *testing.T) {
	plugin := NewPlugin("demo")
	require.NoError(t, plugin.Register(namedStub("problem-on", TypeProblem, true)))
	require.NoError(t, plugin.Register(namedStub("style-on", TypeSuggestion, true)))
	require.NoError(t, plugin.Register(namedStub("problem-off", TypeProblem, false)))

	config := plugin.RecommendedConfig()
	require.Len(t, config, 2, "Only recommended rules appear in the config")

	assert.Equal(t, SeverityError, config["demo/problem-on"], "Problem rules default to error")
	assert.Equal(t, SeverityWarning, config["demo/style-on"], "Non-problem rules default to warning")
	assert.NotContains(t, config, "demo/problem-off")
}

func TestPluginRulesRunThroughRunner(t *testing.T) {
	plugin := NewPlugin("demo")
	require.NoError(t, plugin.Register(reportEvery("decl-spy", javascript.KindVariableDeclaration, "found")))

	runner := NewRunner(plugin.Rules()...)
	program := parseForTest(t, "var a = 1;")

	issues := runner.Lint(program)
	require.Len(t, issues, 1)
	assert.Equal(t, "decl-spy", issues[0].Rule)
}
