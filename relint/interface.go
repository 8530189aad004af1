package relint

// Rule is the interface that all relint rules must implement.
//
// Plugin authors typically embed DefaultRule to get default implementations
// for PluginName(), Enabled(), and Severity(), then implement the remaining
// methods.
//
// Example:
//
//	type MyRule struct {
//	    relint.DefaultRule
//	}
//
//	func (r *MyRule) Name() string { return "no-var" }
//	func (r *MyRule) Link() string { return "https://example.com/no-var" }
//	func (r *MyRule) Check(runner relint.Runner) error {
//	    // Inspect source via runner and emit issues
//	    return nil
//	}
type Rule interface {
	// Name returns the bare rule name, without the plugin scope.
	// Convention: lowercase with hyphens (e.g., "no-var").
	Name() string

	// PluginName returns the normalized name of the plugin the rule
	// belongs to (e.g., "eslint", "typescript", "jsx_a11y").
	// Most core rules return "eslint"; embed DefaultRule for this behavior.
	PluginName() string

	// Enabled returns whether the rule is enabled by default.
	// Most rules return true; embed DefaultRule for this behavior.
	Enabled() bool

	// Severity returns the default severity level for findings.
	// Most rules return Deny; embed DefaultRule for this behavior.
	Severity() Severity

	// Link returns a URL to documentation about the rule.
	// Should explain what the rule checks and how to resolve issues.
	Link() string

	// Check executes the rule against the source accessible via runner.
	// Call runner.EmitIssue() for each finding.
	// Return an error only for unexpected failures, not for findings.
	Check(runner Runner) error
}

// RuleSet is implemented by plugins to provide a collection of rules.
// Plugins typically embed BuiltinRuleSet and override methods as needed.
//
// Example:
//
//	type MyRuleSet struct {
//	    relint.BuiltinRuleSet
//	}
//
//	func main() {
//	    plugin.Serve(&plugin.ServeOpts{
//	        RuleSet: &MyRuleSet{
//	            BuiltinRuleSet: relint.BuiltinRuleSet{
//	                Name:    "myplugin",
//	                Version: "0.1.0",
//	                Rules:   []relint.Rule{&MyRule{}},
//	            },
//	        },
//	    })
//	}
type RuleSet interface {
	// RuleSetName returns the name of the ruleset (e.g., "jsx_a11y").
	RuleSetName() string

	// RuleSetVersion returns the version of the ruleset (e.g., "0.1.0").
	RuleSetVersion() string

	// RuleNames returns the names of all rules in this ruleset.
	RuleNames() []string

	// VersionConstraint returns the relint version constraint
	// (e.g., ">= 0.1.0").
	VersionConstraint() string

	// CheckHostVersion verifies the host linter version against
	// VersionConstraint. Called by the host during plugin startup.
	CheckHostVersion(version string) error

	// ApplyConfig applies a resolved configuration document to the
	// ruleset's active rules. Called once after the host loads the
	// user's configuration.
	ApplyConfig(config *Config) error
}
