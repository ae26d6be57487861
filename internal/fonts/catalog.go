// Package fonts holds the static font catalog available to the design
// settings surface. Lookups are pure and never fail: unknown
// identifiers resolve to a default sans family.
package fonts

// Category is the coarse typographic class of a font. Renderers use it
// to pick a fallback visual style when the precise family cannot be
// applied on the output surface.
type Category string

const (
	CategorySerif Category = "serif"
	CategorySans  Category = "sans"
	CategoryMono  Category = "mono"
)

// Font is one catalog entry. Value is the identifier stored in the
// design config, Family the CSS-style font-family string.
type Font struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Family string `json:"family"`
}

// DefaultFamily is returned for identifiers not present in the catalog.
const DefaultFamily = "'Inter', sans-serif"

var serifFonts = []Font{
	{Name: "Cormorant", Value: "cormorant", Family: "'Cormorant', serif"},
	{Name: "Cormorant Garamond", Value: "cormorant-garamond", Family: "'Cormorant Garamond', serif"},
	{Name: "Crimson Text", Value: "crimson-text", Family: "'Crimson Text', serif"},
	{Name: "Instrument Serif", Value: "instrument-serif", Family: "'Instrument Serif', serif"},
	{Name: "Libre Baskerville", Value: "libre-baskerville", Family: "'Libre Baskerville', serif"},
	{Name: "Lora", Value: "lora", Family: "'Lora', serif"},
	{Name: "Merriweather", Value: "merriweather", Family: "'Merriweather', serif"},
	{Name: "Noto Serif", Value: "noto-serif", Family: "'Noto Serif', serif"},
	{Name: "Playfair Display", Value: "playfair", Family: "'Playfair Display', serif"},
	{Name: "PT Serif", Value: "pt-serif", Family: "'PT Serif', serif"},
	{Name: "Spectral", Value: "spectral", Family: "'Spectral', serif"},
}

var sansFonts = []Font{
	{Name: "DM Sans", Value: "dm-sans", Family: "'DM Sans', sans-serif"},
	{Name: "IBM Plex Sans", Value: "ibm-plex-sans", Family: "'IBM Plex Sans', sans-serif"},
	{Name: "Inter", Value: "inter", Family: "'Inter', sans-serif"},
	{Name: "Lato", Value: "lato", Family: "'Lato', sans-serif"},
	{Name: "Montserrat", Value: "montserrat", Family: "'Montserrat', sans-serif"},
	{Name: "Nunito", Value: "nunito", Family: "'Nunito', sans-serif"},
	{Name: "Open Sans", Value: "open-sans", Family: "'Open Sans', sans-serif"},
	{Name: "Poppins", Value: "poppins", Family: "'Poppins', sans-serif"},
	{Name: "Roboto", Value: "roboto", Family: "'Roboto', sans-serif"},
	{Name: "Source Sans Pro", Value: "source-sans", Family: "'Source Sans 3', sans-serif"},
	{Name: "Space Grotesk", Value: "space-grotesk", Family: "'Space Grotesk', sans-serif"},
	{Name: "Work Sans", Value: "work-sans", Family: "'Work Sans', sans-serif"},
}

var monoFonts = []Font{
	{Name: "Fira Code", Value: "fira-code", Family: "'Fira Code', monospace"},
	{Name: "IBM Plex Mono", Value: "ibm-plex-mono", Family: "'IBM Plex Mono', monospace"},
	{Name: "Inconsolata", Value: "inconsolata", Family: "'Inconsolata', monospace"},
	{Name: "JetBrains Mono", Value: "jetbrains-mono", Family: "'JetBrains Mono', monospace"},
	{Name: "Noto Sans Mono", Value: "noto-sans-mono", Family: "'Noto Sans Mono', monospace"},
	{Name: "PT Mono", Value: "pt-mono", Family: "'PT Mono', monospace"},
	{Name: "Roboto Mono", Value: "roboto-mono", Family: "'Roboto Mono', monospace"},
	{Name: "Source Code Pro", Value: "source-code-pro", Family: "'Source Code Pro', monospace"},
}

var catalog = map[Category][]Font{
	CategorySerif: serifFonts,
	CategorySans:  sansFonts,
	CategoryMono:  monoFonts,
}

// Categories returns the catalog categories in display order.
func Categories() []Category {
	return []Category{CategorySerif, CategorySans, CategoryMono}
}

// ByCategory returns a copy of the catalog entries for one category.
func ByCategory(c Category) []Font {
	entries := catalog[c]
	out := make([]Font, len(entries))
	copy(out, entries)
	return out
}

// All returns every catalog entry, serif first, then sans, then mono.
func All() []Font {
	var out []Font
	for _, c := range Categories() {
		out = append(out, catalog[c]...)
	}
	return out
}

// ResolveFamily returns the font-family string for an identifier, or
// DefaultFamily when the identifier is not in the catalog.
func ResolveFamily(value string) string {
	for _, entries := range catalog {
		for _, f := range entries {
			if f.Value == value {
				return f.Family
			}
		}
	}
	return DefaultFamily
}

// ResolveCategory returns the category of an identifier. Unknown
// identifiers are treated as sans.
func ResolveCategory(value string) Category {
	for _, c := range Categories() {
		for _, f := range catalog[c] {
			if f.Value == value {
				return c
			}
		}
	}
	return CategorySans
}
