// Package ruletest provides a table-driven harness for exercising lint rules
// the way they run in production: each source snippet is parsed, linted
// through the standard runner, and compared against the expected issues.
package ruletest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalNaut/eslint-plugin-tutorial/javascript"
	"github.com/DigitalNaut/eslint-plugin-tutorial/lint"
)

// ValidCase is a source snippet the rule must accept without issues.
type ValidCase struct {
	// Name labels the subtest. Unnamed cases are numbered.
	Name string
	// Source is the JavaScript snippet under test.
	Source string
}

// InvalidCase is a source snippet the rule must report.
type InvalidCase struct {
	// Name labels the subtest. Unnamed cases are numbered.
	Name string
	// Source is the JavaScript snippet under test.
	Source string
	// Messages are the expected issue messages in source order, one per
	// expected issue.
	Messages []string
}

// Cases is the full expectation table for one rule.
type Cases struct {
	Valid   []ValidCase
	Invalid []InvalidCase
}

// Run executes the rule against every case. Valid sources must produce zero
// issues; invalid sources must produce exactly the expected messages in
// source order, each attributed to the rule under test. Every invalid case
// is linted twice to verify that repeated runs report identical issues.
func Run(t *testing.T, rule lint.Rule, cases Cases) {
	t.Helper()

	runner := lint.NewRunner(rule)

	for i, tc := range cases.Valid {
		name := tc.Name
		if name == "" {
			name = fmt.Sprintf("valid #%d", i)
		}

		t.Run(name, func(t *testing.T) {
			program, err := javascript.ParseString(tc.Source)
			require.NoError(t, err, "valid case source must parse")

			issues := runner.Lint(program)
			assert.Empty(t, issues, "expected no issues for source %q", tc.Source)
		})
	}

	for i, tc := range cases.Invalid {
		name := tc.Name
		if name == "" {
			name = fmt.Sprintf("invalid #%d", i)
		}

		t.Run(name, func(t *testing.T) {
			program, err := javascript.ParseString(tc.Source)
			require.NoError(t, err, "invalid case source must parse")

			issues := runner.Lint(program)
			require.Len(t, issues, len(tc.Messages), "issue count mismatch for source %q", tc.Source)

			for j, issue := range issues {
				assert.Equal(t, tc.Messages[j], issue.Message, "message mismatch at index %d", j)
				assert.Equal(t, rule.Name(), issue.Rule, "issue must be attributed to the rule under test")
				assert.NotNil(t, issue.Location, "issue must carry a source location")
			}

			// Rules must keep no state between runs
			assert.Equal(t, issues, runner.Lint(program), "repeated linting must report identical issues")
		})
	}
}
