package model

// TemplateName selects one of the registered template renderers.
type TemplateName string

// Registered template variants. Values outside this set are accepted
// at write time and resolved to the default variant at render time.
const (
	TemplateModern  TemplateName = "modern"
	TemplateClassic TemplateName = "classic"
	TemplateBold    TemplateName = "bold"
	TemplateMinimal TemplateName = "minimal"
)

// DesignConfig holds the style choices independent of invoice content.
// AccentColor is either a named palette key ("blue-600") or a literal
// "#rrggbb" value. FontStack is a font catalog identifier.
type DesignConfig struct {
	DarkMode    bool         `json:"dark_mode"`
	AccentColor string       `json:"accent_color"`
	FontStack   string       `json:"font_stack"`
	Template    TemplateName `json:"template"`
}

// DefaultDesign returns the session-start design configuration.
func DefaultDesign() DesignConfig {
	return DesignConfig{
		DarkMode:    false,
		AccentColor: "blue-600",
		FontStack:   "inter",
		Template:    TemplateModern,
	}
}
