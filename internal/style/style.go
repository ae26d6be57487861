// Package style resolves user-adjustable design settings (accent color,
// font identifier) into concrete values a renderer can apply. All
// resolution falls back to safe defaults; a design config can never
// make rendering fail.
package style

import (
	"strconv"
	"strings"

	"github.com/rezonia/invoice-studio/internal/fonts"
	"github.com/rezonia/invoice-studio/internal/model"
)

// DefaultAccentHex is used when a named accent is not in the palette
// or a literal value cannot be parsed.
const DefaultAccentHex = "#2563eb"

// palette maps the named accent keys offered by the design controls.
var palette = map[string]string{
	"blue-600":    "#2563eb",
	"emerald-600": "#059669",
	"rose-600":    "#e11d48",
	"amber-600":   "#d97706",
	"slate-600":   "#475569",
}

// ResolveAccent maps an accent color setting to a hex value. Literal
// "#..." values pass through unchanged; named keys resolve through the
// palette; anything else yields the default accent.
func ResolveAccent(value string) string {
	if strings.HasPrefix(value, "#") {
		return value
	}
	if hex, ok := palette[value]; ok {
		return hex
	}
	return DefaultAccentHex
}

// PaletteNames returns the named accent keys in no particular order.
func PaletteNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	return names
}

// Resolved carries the concrete style values for one render. It is
// computed exactly once per render and shared by the whole layout.
type Resolved struct {
	AccentHex  string
	AccentR    int
	AccentG    int
	AccentB    int
	FontFamily string
	Category   fonts.Category
	PDFFont    string
	DarkMode   bool
}

// pdfFontFor maps a font category to a core PDF family, the coarse
// fallback applied when the exact web family is not available on the
// paper surface.
func pdfFontFor(c fonts.Category) string {
	switch c {
	case fonts.CategorySerif:
		return "Times"
	case fonts.CategoryMono:
		return "Courier"
	default:
		return "Helvetica"
	}
}

// Resolve derives the concrete render style from a design config.
func Resolve(design model.DesignConfig) Resolved {
	hex := ResolveAccent(design.AccentColor)
	r, g, b, ok := parseHex(hex)
	if !ok {
		hex = DefaultAccentHex
		r, g, b, _ = parseHex(hex)
	}

	category := fonts.ResolveCategory(design.FontStack)

	return Resolved{
		AccentHex:  hex,
		AccentR:    r,
		AccentG:    g,
		AccentB:    b,
		FontFamily: fonts.ResolveFamily(design.FontStack),
		Category:   category,
		PDFFont:    pdfFontFor(category),
		DarkMode:   design.DarkMode,
	}
}

// parseHex parses "#rgb" or "#rrggbb" into RGB components.
func parseHex(hex string) (r, g, b int, ok bool) {
	s := strings.TrimPrefix(hex, "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 0, 0, 0, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
