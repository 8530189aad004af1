package relint

// Runner provides access to source files and configuration during rule
// execution. The concrete implementation lives in the relint host; the
// helper package provides a mock for plugin tests.
type Runner interface {
	// Settings returns the plugin settings carried by the user's
	// configuration document.
	Settings() Settings

	// EmitIssue reports a finding from the rule.
	// The issueRange should point to the relevant location in the source.
	EmitIssue(rule Rule, message string, issueRange Range) error

	// DecodeRuleConfig retrieves and decodes the rule's options payload.
	// The target should be a pointer to a struct with json tags.
	// Returns nil without touching target if no options were configured
	// for the rule.
	//
	// Example:
	//
	//	type MyRuleOptions struct {
	//	    IgnorePatterns []string `json:"ignorePatterns"`
	//	}
	//	var opts MyRuleOptions
	//	if err := runner.DecodeRuleConfig("my-rule", &opts); err != nil {
	//	    return err
	//	}
	DecodeRuleConfig(ruleName string, target any) error
}

// Position is a location within a source file. Lines and columns are
// 1-based.
type Position struct {
	Line   int
	Column int
}

// Range is a span within a source file, used to locate issues.
type Range struct {
	Filename string
	Start    Position
	End      Position
}
