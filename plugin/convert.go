// Package plugin provides RPC-based plugin communication for relint.
//
// This file contains conversion functions between the wire types carried
// over net/rpc and the native types used by relint.RuleSet.

package plugin

import (
	"encoding/json"

	"github.com/relint-dev/relint-plugin-sdk/relint"
)

// WireRuleConfig mirrors relint.RuleConfig with gob-friendly fields.
type WireRuleConfig struct {
	PluginName string
	RuleName   string
	Severity   int
	Options    []byte
}

// WireSettings mirrors relint.Settings.
type WireSettings struct {
	PolymorphicPropName string
	Components          map[string]string
}

// ApplyConfigArgs carries a resolved configuration document to the plugin.
type ApplyConfigArgs struct {
	Rules    []WireRuleConfig
	Settings WireSettings
}

// toWireConfig converts a relint.Config to its wire form.
func toWireConfig(config *relint.Config) *ApplyConfigArgs {
	if config == nil {
		return nil
	}

	rules := config.Rules()
	wireRules := make([]WireRuleConfig, len(rules))
	for i, rc := range rules {
		wireRules[i] = WireRuleConfig{
			PluginName: rc.PluginName,
			RuleName:   rc.RuleName,
			Severity:   int(rc.Severity),
			Options:    rc.Options,
		}
	}

	settings := config.Settings()
	return &ApplyConfigArgs{
		Rules: wireRules,
		Settings: WireSettings{
			PolymorphicPropName: settings.JsxA11y.PolymorphicPropName,
			Components:          settings.JsxA11y.Components,
		},
	}
}

// fromWireConfig rebuilds a relint.Config from its wire form.
func fromWireConfig(args *ApplyConfigArgs) *relint.Config {
	if args == nil {
		return nil
	}

	rules := make([]relint.RuleConfig, len(args.Rules))
	for i, wr := range args.Rules {
		rules[i] = relint.RuleConfig{
			PluginName: wr.PluginName,
			RuleName:   wr.RuleName,
			Severity:   relint.Severity(wr.Severity),
			Options:    json.RawMessage(wr.Options),
		}
	}

	settings := relint.DefaultSettings()
	settings.JsxA11y.PolymorphicPropName = args.Settings.PolymorphicPropName
	for name, mapping := range args.Settings.Components {
		settings.JsxA11y.Components[name] = mapping
	}

	return relint.NewConfig(rules, settings)
}
