package relint

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// RuleKey is the stable identity of a rule: its normalized plugin name
// plus its bare rule name.
type RuleKey struct {
	Plugin string
	Name   string
}

// ActiveRule is a rule instance enabled for a lint run, carrying the
// effective severity and options payload for the run.
type ActiveRule struct {
	// Rule is the rule kind. Its PluginName()/Name() pair is the
	// instance's identity within the set.
	Rule Rule
	// Severity is the effective severity for this run.
	Severity Severity
	// Options is the rule-specific options payload as a JSON array of up
	// to two values, or nil when no options were configured.
	Options json.RawMessage
}

// Key returns the identity of the instance.
func (a ActiveRule) Key() RuleKey {
	return RuleKey{Plugin: a.Rule.PluginName(), Name: a.Rule.Name()}
}

// ActiveRules is the mutable set of rule instances enabled for a lint run.
// Instances are keyed by their RuleKey; iteration follows insertion order.
// The set is not safe for concurrent mutation.
type ActiveRules struct {
	order []RuleKey
	rules map[RuleKey]ActiveRule
}

// NewActiveRules returns an ActiveRules set seeded with the given
// instances. Later instances with a duplicate key replace earlier ones.
func NewActiveRules(rules ...ActiveRule) *ActiveRules {
	a := &ActiveRules{rules: map[RuleKey]ActiveRule{}}
	for _, r := range rules {
		a.Add(r)
	}
	return a
}

// Len returns the number of instances in the set.
func (a *ActiveRules) Len() int {
	return len(a.rules)
}

// Get returns the instance for the given identity.
func (a *ActiveRules) Get(plugin, name string) (ActiveRule, bool) {
	r, ok := a.rules[RuleKey{Plugin: plugin, Name: name}]
	return r, ok
}

// Add inserts an instance, replacing any existing instance with the same
// identity in place.
func (a *ActiveRules) Add(rule ActiveRule) {
	key := rule.Key()
	if _, ok := a.rules[key]; !ok {
		a.order = append(a.order, key)
	}
	a.rules[key] = rule
}

// Remove deletes the instance with the given identity, reporting whether
// it was present.
func (a *ActiveRules) Remove(plugin, name string) bool {
	key := RuleKey{Plugin: plugin, Name: name}
	if _, ok := a.rules[key]; !ok {
		return false
	}
	delete(a.rules, key)
	for i, k := range a.order {
		if k == key {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return true
}

// Replace swaps in a new instance under the same identity key, keeping the
// original position in iteration order. An instance with an unknown key is
// appended, following set-replace semantics.
func (a *ActiveRules) Replace(rule ActiveRule) {
	a.Add(rule)
}

// All returns the instances in insertion order.
func (a *ActiveRules) All() []ActiveRule {
	out := make([]ActiveRule, 0, len(a.order))
	for _, key := range a.order {
		out = append(out, a.rules[key])
	}
	return out
}

// BuiltinRuleSet provides default implementations for the RuleSet
// interface. Plugin authors embed this struct and override methods as
// needed.
//
// Example:
//
//	type A11yRuleSet struct {
//	    relint.BuiltinRuleSet
//	}
//
//	rs := &A11yRuleSet{
//	    BuiltinRuleSet: relint.BuiltinRuleSet{
//	        Name:       "jsx_a11y",
//	        Version:    "0.1.0",
//	        Constraint: ">= 0.1.0",
//	        Rules:      []relint.Rule{&AltTextRule{}},
//	    },
//	}
type BuiltinRuleSet struct {
	// Name is the ruleset name (e.g., "jsx_a11y").
	Name string
	// Version is the ruleset version (e.g., "0.1.0").
	Version string
	// Constraint is the relint version constraint (e.g., ">= 0.1.0").
	Constraint string
	// Rules is the list of rules in this ruleset.
	Rules []Rule
	// active tracks the configured rule instances after ApplyConfig.
	active *ActiveRules
}

// RuleSetName returns the name of the ruleset.
func (rs *BuiltinRuleSet) RuleSetName() string {
	return rs.Name
}

// RuleSetVersion returns the version of the ruleset.
func (rs *BuiltinRuleSet) RuleSetVersion() string {
	return rs.Version
}

// RuleNames returns the names of all rules in this ruleset.
func (rs *BuiltinRuleSet) RuleNames() []string {
	names := make([]string, len(rs.Rules))
	for i, rule := range rs.Rules {
		names[i] = rule.Name()
	}
	return names
}

// VersionConstraint returns the relint version constraint.
func (rs *BuiltinRuleSet) VersionConstraint() string {
	if rs.Constraint == "" {
		return ">= 0.1.0"
	}
	return rs.Constraint
}

// CheckHostVersion verifies the host linter version against
// VersionConstraint.
func (rs *BuiltinRuleSet) CheckHostVersion(version string) error {
	c, err := semver.NewConstraint(rs.VersionConstraint())
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", rs.VersionConstraint(), err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid host version %q: %w", version, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("host version %s does not satisfy constraint %q", version, rs.VersionConstraint())
	}
	return nil
}

// ApplyConfig applies a resolved configuration document to the ruleset's
// active rules. The active set starts from the rules enabled by default
// and is then overridden by the document's rule entries.
func (rs *BuiltinRuleSet) ApplyConfig(config *Config) error {
	active := rs.defaultActiveRules()
	if config != nil {
		config.OverrideRules(active)
	}
	rs.active = active
	return nil
}

// ActiveRules returns the configured rule instances. Before ApplyConfig is
// called, this is the set of rules enabled by default, each carrying its
// default severity and no options.
func (rs *BuiltinRuleSet) ActiveRules() *ActiveRules {
	if rs.active == nil {
		return rs.defaultActiveRules()
	}
	return rs.active
}

func (rs *BuiltinRuleSet) defaultActiveRules() *ActiveRules {
	active := NewActiveRules()
	for _, rule := range rs.Rules {
		if rule.Enabled() {
			active.Add(ActiveRule{Rule: rule, Severity: rule.Severity()})
		}
	}
	return active
}

// GetRule returns a rule by name, or nil if not found.
func (rs *BuiltinRuleSet) GetRule(name string) Rule {
	for _, rule := range rs.Rules {
		if rule.Name() == name {
			return rule
		}
	}
	return nil
}
