package relint

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// Config represents a parsed configuration document: an ordered list of
// rule entries plus plugin settings. A Config is immutable after
// construction; apply it to a lint run via OverrideRules.
type Config struct {
	rules    []RuleConfig
	settings Settings
}

// RuleConfig is a single resolved entry under a document's "rules" key.
type RuleConfig struct {
	// PluginName is the normalized plugin name, aliases resolved
	// (e.g., "eslint", "typescript", "jsx_a11y").
	PluginName string
	// RuleName is the bare rule name, without the plugin scope.
	RuleName string
	// Severity is the decoded severity.
	Severity Severity
	// Options is a JSON array of up to two option values, or nil when the
	// entry carries no options.
	Options json.RawMessage
}

// Load reads and resolves the configuration document at path.
//
// The document is a JSON object with optional "rules" and "settings"
// keys. A top level that is not an object, or has no "rules" object,
// yields an empty rule list; a rule entry that fails to decode aborts the
// whole load. All returned errors are fatal: there is no partial
// configuration.
func Load(path string) (*Config, error) {
	root, err := readJSON(path)
	if err != nil {
		return nil, err
	}

	rules, err := parseRules(root["rules"])
	if err != nil {
		return nil, err
	}

	settings := DefaultSettings()
	if raw, ok := root["settings"]; ok {
		settings, err = ParseSettings(raw)
		if err != nil {
			return nil, err
		}
	}

	return &Config{rules: rules, settings: settings}, nil
}

// NewConfig assembles a Config from already-resolved parts. Most callers
// use Load instead; the plugin transport uses this to rebuild a Config
// received over the wire.
func NewConfig(rules []RuleConfig, settings Settings) *Config {
	return &Config{rules: rules, settings: settings}
}

// Rules returns the document's rule entries in document order.
func (c *Config) Rules() []RuleConfig {
	return c.rules
}

// Settings returns the plugin settings carried by the document.
func (c *Config) Settings() Settings {
	return c.settings
}

// OverrideRules applies the document's rule entries to a caller-owned
// active rule set. For each active rule with a matching entry, a Warn or
// Deny severity replaces the instance with one carrying the entry's
// severity and options, and an Allow severity removes it. Active rules
// with no matching entry are left untouched, and entries that match no
// active rule have no effect: overriding never adds new rule kinds.
//
// When several entries normalize to the same identity, the first one in
// document order wins. The caller must ensure the set is not mutated
// concurrently.
func (c *Config) OverrideRules(active *ActiveRules) {
	if active == nil || len(c.rules) == 0 {
		return
	}

	index := make(map[RuleKey]*RuleConfig, len(c.rules))
	for i := range c.rules {
		entry := &c.rules[i]
		key := RuleKey{Plugin: entry.PluginName, Name: entry.RuleName}
		if _, ok := index[key]; !ok {
			index[key] = entry
		}
	}

	// Collect first, mutate after: the set must not change while iterating.
	var toRemove []RuleKey
	var toReplace []ActiveRule
	for _, rule := range active.All() {
		entry, ok := index[rule.Key()]
		if !ok {
			continue
		}
		if entry.Severity.IsWarnDeny() {
			toReplace = append(toReplace, ActiveRule{
				Rule:     rule.Rule,
				Severity: entry.Severity,
				Options:  entry.Options,
			})
		} else {
			toRemove = append(toRemove, rule.Key())
		}
	}

	for _, key := range toRemove {
		active.Remove(key.Plugin, key.Name)
	}
	for _, rule := range toReplace {
		active.Replace(rule)
	}
}

func readJSON(path string) (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigFileError{Path: path, Err: err}
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(b, &root); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// Valid JSON whose top level is not an object: nothing to resolve.
			return nil, nil
		}
		return nil, &ConfigJSONError{Path: path, Message: jsonParseMessage(path, err)}
	}
	return root, nil
}

// jsonParseMessage builds the syntax diagnostic for a file that is not
// valid JSON, varying the message by the apparent media type of the path.
func jsonParseMessage(path string, err error) string {
	mediaType := mime.TypeByExtension(filepath.Ext(path))
	if mediaType == "" {
		return fmt.Sprintf("%v, if the configuration is not a json file, please use json instead.", err)
	}
	if params := strings.IndexByte(mediaType, ';'); params >= 0 {
		mediaType = strings.TrimSpace(mediaType[:params])
	}
	if _, subtype, ok := strings.Cut(mediaType, "/"); ok && subtype == "json" {
		return err.Error()
	}
	return "only json configuration is supported"
}

// parseRules resolves every entry under the document's "rules" key, in
// document order. A missing "rules" key, or one that is not an object,
// yields an empty list. The first entry that fails to decode aborts the
// parse.
func parseRules(raw json.RawMessage) ([]RuleConfig, error) {
	if raw == nil {
		return nil, nil
	}

	// A streaming decoder keeps document order, which a map would lose.
	// Order matters because distinct keys can normalize to the same
	// (plugin, rule) identity, and the first entry wins.
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil
	}

	var rules []RuleConfig
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, nil
		}

		plugin, name := parseRuleName(key)
		severity, options, err := decodeRuleValue(value)
		if err != nil {
			return nil, err
		}
		rules = append(rules, RuleConfig{
			PluginName: plugin,
			RuleName:   name,
			Severity:   severity,
			Options:    options,
		})
	}
	return rules, nil
}

// parseRuleName splits a raw rule key into a normalized plugin name and a
// bare rule name. Any string is accepted; there is no error path.
func parseRuleName(key string) (plugin, rule string) {
	scope, name, found := strings.Cut(key, "/")
	if !found {
		return "eslint", key
	}
	scope = strings.TrimLeft(scope, "@")
	switch scope {
	case "typescript-eslint":
		scope = "typescript"
	case "jsx-a11y":
		// Plugin names are snake_case on the rule side.
		scope = "jsx_a11y"
	}
	return scope, name
}

// ruleValueShape discriminates the accepted syntaxes of a rule entry:
//
//	{
//	    "rule": "off",
//	    "rule": ["off", "config"],
//	    "rule": ["off", "config1", "config2"],
//	}
//
// plus the numeric severity forms 0, 1, and 2.
type ruleValueShape int

const (
	shapeScalar  ruleValueShape = iota // "warn" or 1
	shapeTuple                         // ["warn", ...options]
	shapeInvalid                       // anything else
)

func shapeOf(value json.RawMessage) ruleValueShape {
	trimmed := bytes.TrimLeft(value, " \t\r\n")
	if len(trimmed) == 0 {
		return shapeInvalid
	}
	switch {
	case trimmed[0] == '"':
		return shapeScalar
	case trimmed[0] == '[':
		return shapeTuple
	case trimmed[0] == '-' || (trimmed[0] >= '0' && trimmed[0] <= '9'):
		return shapeScalar
	default:
		return shapeInvalid
	}
}

// decodeRuleValue resolves the severity of a rule entry and its options.
func decodeRuleValue(value json.RawMessage) (Severity, json.RawMessage, error) {
	switch shapeOf(value) {
	case shapeScalar:
		severity, err := decodeSeverity(value)
		if err != nil {
			return Allow, nil, &InvalidRuleValueError{Value: string(value)}
		}
		return severity, nil, nil

	case shapeTuple:
		var items []json.RawMessage
		if err := json.Unmarshal(value, &items); err != nil || len(items) == 0 {
			return Allow, nil, &InvalidRuleValueError{Value: string(value)}
		}
		severity, err := decodeSeverity(items[0])
		if err != nil {
			return Allow, nil, &InvalidRuleValueError{Value: string(value)}
		}
		// Elements past index 2 are dropped. The ceiling of two option
		// values matches the rule engine's option arity; keep it in sync.
		options := items[1:min(len(items), 3)]
		if len(options) == 0 {
			return severity, nil, nil
		}
		return severity, joinArray(options), nil

	default:
		return Allow, nil, &InvalidRuleValueError{Value: string(value)}
	}
}

func decodeSeverity(raw json.RawMessage) (Severity, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ParseSeverity(s)
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return SeverityFromNumber(n)
	}
	return Allow, errors.New("severity must be a string or number")
}

func joinArray(items []json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(item)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

// ParseSettings resolves the value under a document's "settings" key.
// It is exported for callers that obtain the settings value from
// somewhere other than a configuration file.
//
// A value that is not an object, or lacks the "jsx-a11y" sub-key, yields
// DefaultSettings. A components mapping whose value is not a string is a
// fatal decode error.
func ParseSettings(value json.RawMessage) (Settings, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(value, &root); err != nil {
		return DefaultSettings(), nil
	}
	rawA11y, ok := root["jsx-a11y"]
	if !ok {
		return DefaultSettings(), nil
	}
	var a11y map[string]json.RawMessage
	if err := json.Unmarshal(rawA11y, &a11y); err != nil {
		return DefaultSettings(), nil
	}

	settings := DefaultSettings()
	if rawComponents, ok := a11y["components"]; ok {
		var components map[string]json.RawMessage
		if err := json.Unmarshal(rawComponents, &components); err == nil {
			for key, rawValue := range components {
				var v string
				if err := json.Unmarshal(rawValue, &v); err != nil {
					return Settings{}, &SettingsTypeError{Key: key, Value: string(rawValue)}
				}
				settings.JsxA11y.Components[key] = v
			}
		}
	}
	if rawName, ok := a11y["polymorphicPropName"]; ok {
		var name string
		if err := json.Unmarshal(rawName, &name); err == nil {
			settings.JsxA11y.PolymorphicPropName = name
		}
	}
	return settings, nil
}
