package relint

// DefaultRule provides default implementations for optional Rule interface
// methods. Plugin authors can embed this struct in their rule
// implementations to get sensible defaults for PluginName(), Enabled(),
// and Severity().
//
// Example:
//
//	type MyRule struct {
//	    relint.DefaultRule
//	}
//
//	func (r *MyRule) Name() string { return "my-rule" }
//	func (r *MyRule) Link() string { return "https://example.com/my-rule" }
//	func (r *MyRule) Check(runner Runner) error { ... }
//
// With DefaultRule embedded, MyRule automatically gets:
//   - PluginName() returning "eslint" (the core rule set)
//   - Enabled() returning true (rules are enabled by default)
//   - Severity() returning Deny (the default severity)
//
// Override these methods if your rule needs different defaults:
//
//	func (r *MyRule) PluginName() string {
//	    return "jsx_a11y"
//	}
type DefaultRule struct{}

// PluginName returns "eslint", the implicit core plugin.
// Override this method for rules belonging to another plugin.
// Returned names must be in normalized form (aliases resolved,
// underscores rather than hyphens), as they are compared verbatim
// against normalized configuration entries.
func (r DefaultRule) PluginName() string {
	return "eslint"
}

// Enabled returns true, indicating rules are enabled by default.
// Override this method to disable a rule by default.
func (r DefaultRule) Enabled() bool {
	return true
}

// Severity returns Deny, the default severity for rules.
// Override this method to specify a different default severity.
func (r DefaultRule) Severity() Severity {
	return Deny
}
