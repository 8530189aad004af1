package relint

import "fmt"

// ConfigFileError indicates that the configuration file could not be
// opened or read. It wraps the underlying I/O failure.
type ConfigFileError struct {
	// Path is the configuration file path that could not be opened.
	Path string
	// Err is the underlying I/O error.
	Err error
}

func (e *ConfigFileError) Error() string {
	return fmt.Sprintf("could not open configuration file %s: %v", e.Path, e.Err)
}

func (e *ConfigFileError) Unwrap() error {
	return e.Err
}

// ConfigJSONError indicates that the configuration file is not valid JSON.
// Message depends on the apparent media type of the path: for .json files
// it carries the raw parser error, for other known types it states that
// only JSON configuration is supported, and for unknown types it carries
// the parser error plus a hint.
type ConfigJSONError struct {
	// Path is the configuration file that failed to parse.
	Path string
	// Message describes the failure.
	Message string
}

func (e *ConfigJSONError) Error() string {
	return fmt.Sprintf("failed to parse configuration %s: %s", e.Path, e.Message)
}

// InvalidRuleValueError indicates that a rule's configured value is not a
// recognized severity form: neither a severity string/number nor a
// non-empty array starting with one.
type InvalidRuleValueError struct {
	// Value is the textual form of the offending JSON value.
	Value string
}

func (e *InvalidRuleValueError) Error() string {
	return fmt.Sprintf("invalid rule value %s", e.Value)
}

// SettingsTypeError indicates that a value in the jsx-a11y components
// mapping is not a string.
type SettingsTypeError struct {
	// Key is the component name whose mapping is malformed.
	Key string
	// Value is the textual form of the offending JSON value.
	Value string
}

func (e *SettingsTypeError) Error() string {
	return fmt.Sprintf("invalid jsx-a11y components setting: value for %q must be a string, got %s", e.Key, e.Value)
}
