package relint

// Settings holds the plugin-specific settings carried by a configuration
// document. Currently the only recognized plugin settings are those of the
// jsx-a11y accessibility plugin.
type Settings struct {
	// JsxA11y holds the settings for the jsx-a11y plugin.
	JsxA11y JsxA11ySettings
}

// JsxA11ySettings configures the jsx-a11y accessibility rules.
type JsxA11ySettings struct {
	// PolymorphicPropName is the name of the prop that changes which
	// element a component renders as (e.g., "as"). Empty when unset.
	PolymorphicPropName string
	// Components maps custom component names to the DOM element or role
	// they render (e.g., "Link" -> "a"). Insertion order is irrelevant.
	Components map[string]string
}

// DefaultSettings returns the settings used when a configuration document
// carries no settings, or no recognized plugin sub-key.
func DefaultSettings() Settings {
	return Settings{
		JsxA11y: JsxA11ySettings{
			Components: map[string]string{},
		},
	}
}
