package fonts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-studio/internal/fonts"
)

func TestResolveFamily(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"sans font", "inter", "'Inter', sans-serif"},
		{"serif font", "playfair", "'Playfair Display', serif"},
		{"mono font", "jetbrains-mono", "'JetBrains Mono', monospace"},
		{"unknown falls back", "comic-sans", fonts.DefaultFamily},
		{"empty falls back", "", fonts.DefaultFamily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fonts.ResolveFamily(tt.value))
		})
	}
}

func TestResolveCategory(t *testing.T) {
	assert.Equal(t, fonts.CategorySerif, fonts.ResolveCategory("merriweather"))
	assert.Equal(t, fonts.CategorySans, fonts.ResolveCategory("roboto"))
	assert.Equal(t, fonts.CategoryMono, fonts.ResolveCategory("fira-code"))

	// Unknown identifiers are treated as sans
	assert.Equal(t, fonts.CategorySans, fonts.ResolveCategory("no-such-font"))
	assert.Equal(t, fonts.CategorySans, fonts.ResolveCategory(""))
}

func TestByCategory(t *testing.T) {
	serif := fonts.ByCategory(fonts.CategorySerif)
	require.NotEmpty(t, serif)
	for _, f := range serif {
		assert.NotEmpty(t, f.Name)
		assert.NotEmpty(t, f.Value)
		assert.Contains(t, f.Family, "serif")
	}

	// Mutating the returned slice must not affect the catalog
	serif[0].Family = "mutated"
	again := fonts.ByCategory(fonts.CategorySerif)
	assert.NotEqual(t, "mutated", again[0].Family)
}

func TestAll_UniqueValues(t *testing.T) {
	all := fonts.All()
	require.NotEmpty(t, all)

	seen := make(map[string]bool, len(all))
	for _, f := range all {
		assert.False(t, seen[f.Value], "duplicate font value %q", f.Value)
		seen[f.Value] = true
	}

	// serif + sans + mono partitions cover the whole catalog
	count := 0
	for _, c := range fonts.Categories() {
		count += len(fonts.ByCategory(c))
	}
	assert.Equal(t, len(all), count)
}
