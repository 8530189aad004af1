package helper

import (
	"testing"

	"github.com/relint-dev/relint-plugin-sdk/relint"
)

func TestAssertIssues_OrderInsensitive(t *testing.T) {
	ruleA := &testRule{name: "rule-a"}
	ruleB := &testRule{name: "rule-b"}

	want := Issues{
		{Rule: ruleA, Message: "first finding"},
		{Rule: ruleB, Message: "second finding"},
	}
	got := Issues{
		{Rule: ruleB, Message: "second finding"},
		{Rule: ruleA, Message: "first finding"},
	}

	AssertIssues(t, want, got)
}

func TestAssertIssues_ComparesRulesByIdentity(t *testing.T) {
	// Two distinct instances of the same rule kind compare equal.
	want := Issues{{Rule: &testRule{name: "no-var"}, Message: "finding"}}
	got := Issues{{Rule: &testRule{name: "no-var"}, Message: "finding"}}

	AssertIssues(t, want, got)
}

func TestAssertIssuesWithoutRange(t *testing.T) {
	rule := &testRule{name: "no-var"}

	want := Issues{{Rule: rule, Message: "finding"}}
	got := Issues{{
		Rule:    rule,
		Message: "finding",
		Range: relint.Range{
			Filename: "main.js",
			Start:    relint.Position{Line: 10, Column: 2},
		},
	}}

	AssertIssuesWithoutRange(t, want, got)
}

func TestAssertNoIssues_Empty(t *testing.T) {
	AssertNoIssues(t, Issues{})
	AssertNoIssues(t, nil)
}
