package relint

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseRuleName(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		wantPlugin string
		wantRule   string
	}{
		{"bare name is a core rule", "no-var", "eslint", "no-var"},
		{"scoped name", "react/jsx-key", "react", "jsx-key"},
		{"namespace marker stripped", "@next/no-img-element", "next", "no-img-element"},
		{"typescript alias", "typescript-eslint/no-explicit-any", "typescript", "no-explicit-any"},
		{"typescript alias with marker", "@typescript-eslint/no-explicit-any", "typescript", "no-explicit-any"},
		{"jsx-a11y alias", "jsx-a11y/alt-text", "jsx_a11y", "alt-text"},
		{"only first separator splits", "a/b/c", "a", "b/c"},
		{"empty key", "", "eslint", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plugin, rule := parseRuleName(tt.key)
			if plugin != tt.wantPlugin || rule != tt.wantRule {
				t.Errorf("parseRuleName(%q) = (%q, %q), want (%q, %q)",
					tt.key, plugin, rule, tt.wantPlugin, tt.wantRule)
			}
		})
	}
}

func TestDecodeRuleValue(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		wantSeverity Severity
		wantOptions  string
		wantErr      bool
	}{
		{"off string", `"off"`, Allow, "", false},
		{"warn string", `"warn"`, Warn, "", false},
		{"error string", `"error"`, Deny, "", false},
		{"0 number", `0`, Allow, "", false},
		{"1 number", `1`, Warn, "", false},
		{"2 number", `2`, Deny, "", false},
		{"severity-only array", `["warn"]`, Warn, "", false},
		{"numeric severity array", `[2,{"foo":1}]`, Deny, `[{"foo":1}]`, false},
		{"one option", `["error",{"foo":1}]`, Deny, `[{"foo":1}]`, false},
		{"two options", `["error",{"a":1},{"b":2}]`, Deny, `[{"a":1},{"b":2}]`, false},
		{"extra options dropped", `["error",{"a":1},{"b":2},{"c":3}]`, Deny, `[{"a":1},{"b":2}]`, false},
		{"empty array", `[]`, Allow, "", true},
		{"unknown severity string", `"loud"`, Allow, "", true},
		{"unknown severity number", `3`, Allow, "", true},
		{"object value", `{"severity":"warn"}`, Allow, "", true},
		{"boolean value", `true`, Allow, "", true},
		{"null value", `null`, Allow, "", true},
		{"array with bad severity", `[true,{"a":1}]`, Allow, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			severity, options, err := decodeRuleValue(json.RawMessage(tt.value))
			if tt.wantErr {
				if err == nil {
					t.Fatal("decodeRuleValue() error = nil, want error")
				}
				var invalidErr *InvalidRuleValueError
				if !errors.As(err, &invalidErr) {
					t.Fatalf("error = %v, want *InvalidRuleValueError", err)
				}
				if invalidErr.Value != tt.value {
					t.Errorf("error value = %q, want %q", invalidErr.Value, tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeRuleValue() error = %v, want nil", err)
			}
			if severity != tt.wantSeverity {
				t.Errorf("severity = %v, want %v", severity, tt.wantSeverity)
			}
			if string(options) != tt.wantOptions {
				t.Errorf("options = %s, want %s", options, tt.wantOptions)
			}
		})
	}
}

func TestParseSettings(t *testing.T) {
	t.Run("full settings", func(t *testing.T) {
		settings, err := ParseSettings(json.RawMessage(
			`{"jsx-a11y":{"polymorphicPropName":"as","components":{"Link":"a"}}}`))
		if err != nil {
			t.Fatalf("ParseSettings() error = %v, want nil", err)
		}
		want := Settings{JsxA11y: JsxA11ySettings{
			PolymorphicPropName: "as",
			Components:          map[string]string{"Link": "a"},
		}}
		if diff := cmp.Diff(want, settings); diff != "" {
			t.Errorf("settings mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		tests := []struct {
			name  string
			value string
		}{
			{"not an object", `"plain string"`},
			{"null", `null`},
			{"empty object", `{}`},
			{"missing plugin key", `{"other":{"a":1}}`},
			{"plugin key not an object", `{"jsx-a11y":42}`},
			{"components not an object", `{"jsx-a11y":{"components":"Link"}}`},
			{"polymorphicPropName not a string", `{"jsx-a11y":{"polymorphicPropName":7}}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				settings, err := ParseSettings(json.RawMessage(tt.value))
				if err != nil {
					t.Fatalf("ParseSettings() error = %v, want nil", err)
				}
				if diff := cmp.Diff(DefaultSettings(), settings); diff != "" {
					t.Errorf("settings mismatch (-want +got):\n%s", diff)
				}
			})
		}
	})

	t.Run("non-string component value is fatal", func(t *testing.T) {
		_, err := ParseSettings(json.RawMessage(`{"jsx-a11y":{"components":{"Link":7}}}`))
		var typeErr *SettingsTypeError
		if !errors.As(err, &typeErr) {
			t.Fatalf("error = %v, want *SettingsTypeError", err)
		}
		if typeErr.Key != "Link" {
			t.Errorf("error key = %q, want %q", typeErr.Key, "Link")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		path := writeConfigFile(t, "relintrc.json", `{
			"rules": {
				"no-var": "error",
				"eqeqeq": ["warn",{"allowNull":true}],
				"@typescript-eslint/no-explicit-any": 1,
				"jsx-a11y/alt-text": "off"
			},
			"settings": {
				"jsx-a11y": {"polymorphicPropName": "as", "components": {"Link": "a"}}
			}
		}`)

		config, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		wantRules := []RuleConfig{
			{PluginName: "eslint", RuleName: "no-var", Severity: Deny},
			{PluginName: "eslint", RuleName: "eqeqeq", Severity: Warn, Options: json.RawMessage(`[{"allowNull":true}]`)},
			{PluginName: "typescript", RuleName: "no-explicit-any", Severity: Warn},
			{PluginName: "jsx_a11y", RuleName: "alt-text", Severity: Allow},
		}
		if diff := cmp.Diff(wantRules, config.Rules()); diff != "" {
			t.Errorf("rules mismatch (-want +got):\n%s", diff)
		}

		settings := config.Settings()
		if settings.JsxA11y.PolymorphicPropName != "as" {
			t.Errorf("PolymorphicPropName = %q, want %q", settings.JsxA11y.PolymorphicPropName, "as")
		}
		if diff := cmp.Diff(map[string]string{"Link": "a"}, settings.JsxA11y.Components); diff != "" {
			t.Errorf("components mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		var fileErr *ConfigFileError
		if !errors.As(err, &fileErr) {
			t.Fatalf("error = %v, want *ConfigFileError", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error should wrap the underlying I/O failure, got %v", err)
		}
	})

	t.Run("malformed json file", func(t *testing.T) {
		path := writeConfigFile(t, "relintrc.json", `{"rules": `)
		_, err := Load(path)
		var jsonErr *ConfigJSONError
		if !errors.As(err, &jsonErr) {
			t.Fatalf("error = %v, want *ConfigJSONError", err)
		}
		if strings.Contains(jsonErr.Message, "only json configuration") {
			t.Errorf("json file should surface the raw parser error, got %q", jsonErr.Message)
		}
	})

	t.Run("known non-json media type", func(t *testing.T) {
		path := writeConfigFile(t, "relintrc.xml", `<rules/>`)
		_, err := Load(path)
		var jsonErr *ConfigJSONError
		if !errors.As(err, &jsonErr) {
			t.Fatalf("error = %v, want *ConfigJSONError", err)
		}
		if jsonErr.Message != "only json configuration is supported" {
			t.Errorf("Message = %q, want %q", jsonErr.Message, "only json configuration is supported")
		}
	})

	t.Run("unknown media type gets a hint", func(t *testing.T) {
		path := writeConfigFile(t, "relintrc", `not json at all`)
		_, err := Load(path)
		var jsonErr *ConfigJSONError
		if !errors.As(err, &jsonErr) {
			t.Fatalf("error = %v, want *ConfigJSONError", err)
		}
		if !strings.Contains(jsonErr.Message, "please use json instead") {
			t.Errorf("Message = %q, want the non-json hint appended", jsonErr.Message)
		}
		if !strings.Contains(jsonErr.Message, "invalid character") {
			t.Errorf("Message = %q, want the parser error retained before the hint", jsonErr.Message)
		}
	})

	t.Run("top level not an object", func(t *testing.T) {
		path := writeConfigFile(t, "relintrc.json", `[1, 2, 3]`)
		config, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if len(config.Rules()) != 0 {
			t.Errorf("Rules() = %v, want empty", config.Rules())
		}
		if diff := cmp.Diff(DefaultSettings(), config.Settings()); diff != "" {
			t.Errorf("settings mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rules key not an object", func(t *testing.T) {
		path := writeConfigFile(t, "relintrc.json", `{"rules": ["no-var"]}`)
		config, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if len(config.Rules()) != 0 {
			t.Errorf("Rules() = %v, want empty", config.Rules())
		}
	})

	t.Run("no rules key", func(t *testing.T) {
		path := writeConfigFile(t, "relintrc.json", `{}`)
		config, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if len(config.Rules()) != 0 {
			t.Errorf("Rules() = %v, want empty", config.Rules())
		}
	})

	t.Run("first decode error aborts the parse", func(t *testing.T) {
		path := writeConfigFile(t, "relintrc.json", `{"rules": {"no-var": "loud", "eqeqeq": "warn"}}`)
		config, err := Load(path)
		var invalidErr *InvalidRuleValueError
		if !errors.As(err, &invalidErr) {
			t.Fatalf("error = %v, want *InvalidRuleValueError", err)
		}
		if config != nil {
			t.Error("Load() should not return a partial configuration")
		}
	})

	t.Run("bad settings abort the parse", func(t *testing.T) {
		path := writeConfigFile(t, "relintrc.json",
			`{"settings": {"jsx-a11y": {"components": {"Link": 7}}}}`)
		_, err := Load(path)
		var typeErr *SettingsTypeError
		if !errors.As(err, &typeErr) {
			t.Fatalf("error = %v, want *SettingsTypeError", err)
		}
	})
}

func TestConfig_OverrideRules(t *testing.T) {
	newActive := func() *ActiveRules {
		return NewActiveRules(
			ActiveRule{Rule: newTestRule("eslint", "no-var"), Severity: Deny},
			ActiveRule{Rule: newTestRule("eslint", "eqeqeq"), Severity: Deny},
		)
	}

	t.Run("off removes", func(t *testing.T) {
		config := NewConfig([]RuleConfig{
			{PluginName: "eslint", RuleName: "no-var", Severity: Allow},
		}, DefaultSettings())

		active := newActive()
		config.OverrideRules(active)

		if _, ok := active.Get("eslint", "no-var"); ok {
			t.Error("no-var should have been removed")
		}
		if _, ok := active.Get("eslint", "eqeqeq"); !ok {
			t.Error("eqeqeq should be untouched")
		}
	})

	t.Run("warn reconfigures", func(t *testing.T) {
		config := NewConfig([]RuleConfig{
			{PluginName: "eslint", RuleName: "no-var", Severity: Warn, Options: json.RawMessage(`[{"x":1}]`)},
		}, DefaultSettings())

		active := newActive()
		config.OverrideRules(active)

		rule, ok := active.Get("eslint", "no-var")
		if !ok {
			t.Fatal("no-var should still be present")
		}
		if rule.Severity != Warn {
			t.Errorf("severity = %v, want %v", rule.Severity, Warn)
		}
		if string(rule.Options) != `[{"x":1}]` {
			t.Errorf("options = %s, want [{\"x\":1}]", rule.Options)
		}
	})

	t.Run("unmatched active rule untouched", func(t *testing.T) {
		config := NewConfig([]RuleConfig{
			{PluginName: "eslint", RuleName: "no-unused-vars", Severity: Allow},
		}, DefaultSettings())

		active := newActive()
		config.OverrideRules(active)

		if active.Len() != 2 {
			t.Errorf("Len() = %d, want 2", active.Len())
		}
	})

	t.Run("unmatched entry adds nothing", func(t *testing.T) {
		config := NewConfig([]RuleConfig{
			{PluginName: "react", RuleName: "jsx-key", Severity: Deny},
		}, DefaultSettings())

		active := newActive()
		config.OverrideRules(active)

		if _, ok := active.Get("react", "jsx-key"); ok {
			t.Error("overriding must not add new rule kinds")
		}
	})

	t.Run("first matching entry wins", func(t *testing.T) {
		config := NewConfig([]RuleConfig{
			{PluginName: "eslint", RuleName: "no-var", Severity: Warn},
			{PluginName: "eslint", RuleName: "no-var", Severity: Allow},
		}, DefaultSettings())

		active := newActive()
		config.OverrideRules(active)

		rule, ok := active.Get("eslint", "no-var")
		if !ok {
			t.Fatal("no-var should still be present: the first entry warns")
		}
		if rule.Severity != Warn {
			t.Errorf("severity = %v, want %v", rule.Severity, Warn)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		config := NewConfig([]RuleConfig{
			{PluginName: "eslint", RuleName: "no-var", Severity: Allow},
			{PluginName: "eslint", RuleName: "eqeqeq", Severity: Warn, Options: json.RawMessage(`[{"x":1}]`)},
		}, DefaultSettings())

		once := newActive()
		config.OverrideRules(once)

		twice := newActive()
		config.OverrideRules(twice)
		config.OverrideRules(twice)

		optsCompare := cmp.Comparer(func(a, b json.RawMessage) bool {
			return string(a) == string(b)
		})
		ruleCompare := cmp.Comparer(func(a, b Rule) bool {
			return a.PluginName() == b.PluginName() && a.Name() == b.Name()
		})
		if diff := cmp.Diff(once.All(), twice.All(), optsCompare, ruleCompare); diff != "" {
			t.Errorf("double application mismatch (-once +twice):\n%s", diff)
		}
	})

	t.Run("nil set is a no-op", func(t *testing.T) {
		config := NewConfig([]RuleConfig{
			{PluginName: "eslint", RuleName: "no-var", Severity: Allow},
		}, DefaultSettings())
		config.OverrideRules(nil)
	})
}

func TestLoad_EndToEndOverride(t *testing.T) {
	path := writeConfigFile(t, "relintrc.json", `{
		"rules": {
			"no-var": "off",
			"jsx-a11y/alt-text": ["warn",{"img":["Image"]}]
		}
	}`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	active := NewActiveRules(
		ActiveRule{Rule: newTestRule("eslint", "no-var"), Severity: Deny},
		ActiveRule{Rule: newTestRule("jsx_a11y", "alt-text"), Severity: Deny},
	)
	config.OverrideRules(active)

	if _, ok := active.Get("eslint", "no-var"); ok {
		t.Error("no-var should have been removed")
	}
	rule, ok := active.Get("jsx_a11y", "alt-text")
	if !ok {
		t.Fatal("alt-text should still be present")
	}
	if rule.Severity != Warn {
		t.Errorf("alt-text severity = %v, want %v", rule.Severity, Warn)
	}
	if string(rule.Options) != `[{"img":["Image"]}]` {
		t.Errorf("alt-text options = %s", rule.Options)
	}
}
