// Package tutorial assembles the example lint plugin that the accompanying
// README walks through building. The package exposes a single constructor
// returning the plugin descriptor with every bundled rule registered.
package tutorial

import (
	"fmt"

	"github.com/DigitalNaut/eslint-plugin-tutorial/lint"
	"github.com/DigitalNaut/eslint-plugin-tutorial/lint/rules/bestpractices"
)

// PluginName is the namespace the bundled rules are registered under.
const PluginName = "tutorial"

// Plugin builds the plugin descriptor. Registration is static: the rule set
// is fixed here at assembly time and never changes while linting runs.
func Plugin() *lint.Plugin {
	plugin := lint.NewPlugin(PluginName)

	rules := []lint.Rule{
		bestpractices.NewNoVarRule(),
	}
	for _, rule := range rules {
		if err := plugin.Register(rule); err != nil {
			// Bundled rules are statically known, so a registration
			// failure is a programming error
			panic(fmt.Sprintf("tutorial: registering bundled rule: %v", err))
		}
	}

	return plugin
}

// RecommendedRunner builds a Runner preloaded with every bundled rule at the
// severity the plugin's recommended configuration assigns it.
func RecommendedRunner() *lint.Runner {
	plugin := Plugin()
	runner := lint.NewRunner(plugin.Rules()...)

	for qualified, severity := range plugin.RecommendedConfig() {
		name := qualified[len(PluginName)+1:]
		runner.SetSeverity(name, severity)
	}

	return runner
}
