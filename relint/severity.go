// Package relint provides the core types for relint plugins and the
// configuration-resolution layer of the relint host.
//
// This package contains the types, interfaces, and utilities needed to
// build relint rule plugins and to resolve an ESLint-style JSON
// configuration document against a set of active rules.
//
// Key types:
//   - Severity: rule activation levels (Allow, Warn, Deny)
//   - DefaultRule: embeddable struct providing default Rule method implementations
//   - Rule: interface that plugins implement for each lint rule
//   - ActiveRules: the mutable set of rule instances enabled for a lint run
//   - Config: a parsed configuration document, applied via OverrideRules
//   - Settings: plugin-specific settings carried by the document
package relint

import "fmt"

// Severity represents the activation level of a rule.
// Values and spellings align with the ESLint ecosystem:
// "off"/0, "warn"/1, "error"/2.
type Severity int

const (
	// Allow disables a rule entirely.
	Allow Severity = iota
	// Warn keeps a rule active and reports findings as warnings.
	Warn
	// Deny keeps a rule active and reports findings as errors.
	Deny
)

// String returns the ESLint spelling of the severity.
func (s Severity) String() string {
	switch s {
	case Allow:
		return "off"
	case Warn:
		return "warn"
	case Deny:
		return "error"
	default:
		return "unknown"
	}
}

// IsWarnDeny reports whether the severity keeps a rule active.
func (s Severity) IsWarnDeny() bool {
	return s == Warn || s == Deny
}

// ParseSeverity decodes the ESLint string form of a severity.
// Accepted values are exactly "off", "warn", and "error".
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "off":
		return Allow, nil
	case "warn":
		return Warn, nil
	case "error":
		return Deny, nil
	default:
		return Allow, fmt.Errorf("unknown severity %q", s)
	}
}

// SeverityFromNumber decodes the ESLint numeric form of a severity.
// Accepted values are exactly 0, 1, and 2.
func SeverityFromNumber(n int) (Severity, error) {
	switch n {
	case 0:
		return Allow, nil
	case 1:
		return Warn, nil
	case 2:
		return Deny, nil
	default:
		return Allow, fmt.Errorf("unknown severity %d", n)
	}
}
