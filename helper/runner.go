// Package helper provides testing utilities for relint plugins.
// Use TestRunner to test rules without running the relint host.
//
// Example:
//
//	func TestMyRule(t *testing.T) {
//	    config, err := relint.Load("testdata/relintrc.json")
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    runner := helper.TestRunner(t, config)
//
//	    rule := &MyRule{}
//	    if err := rule.Check(runner); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    helper.AssertIssues(t, helper.Issues{
//	        {Rule: rule, Message: "unexpected var declaration"},
//	    }, runner.Issues)
//	}
package helper

import (
	"encoding/json"
	"testing"

	"github.com/relint-dev/relint-plugin-sdk/relint"
)

// Runner is a mock relint.Runner for testing.
// Use TestRunner to create an instance.
type Runner struct {
	t        *testing.T
	settings relint.Settings
	options  map[string]json.RawMessage
	// Issues contains all issues emitted during rule execution.
	Issues Issues
}

// Ensure Runner implements relint.Runner.
var _ relint.Runner = (*Runner)(nil)

// TestRunner creates a new Runner for testing.
//
// The runner exposes the settings and per-rule options of the given
// configuration. Pass nil to run rules against default settings and no
// options.
func TestRunner(t *testing.T, config *relint.Config) *Runner {
	t.Helper()

	runner := &Runner{
		t:        t,
		settings: relint.DefaultSettings(),
		options:  make(map[string]json.RawMessage),
		Issues:   make(Issues, 0),
	}

	if config != nil {
		runner.settings = config.Settings()
		for _, rc := range config.Rules() {
			// First entry wins, matching the override engine.
			if _, ok := runner.options[rc.RuleName]; !ok && rc.Options != nil {
				runner.options[rc.RuleName] = rc.Options
			}
		}
	}

	return runner
}

// Settings returns the settings of the configuration under test.
func (r *Runner) Settings() relint.Settings {
	return r.settings
}

// EmitIssue records a finding for later assertion.
func (r *Runner) EmitIssue(rule relint.Rule, message string, issueRange relint.Range) error {
	r.Issues = append(r.Issues, Issue{
		Rule:    rule,
		Message: message,
		Range:   issueRange,
	})
	return nil
}

// DecodeRuleConfig decodes the first configured option value of the rule
// into target. Returns nil without touching target when the rule has no
// options.
func (r *Runner) DecodeRuleConfig(ruleName string, target any) error {
	options, ok := r.options[ruleName]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(options, &items); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return json.Unmarshal(items[0], target)
}
