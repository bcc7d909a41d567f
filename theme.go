package spanml

import (
	"sort"
	"strings"

	"pkt.systems/spanml/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the fallback styles applied to elements whose markup
// carries no style attribute.
type Styles struct {
	Text   Style
	Anchor Style
	URL    Style
}

// Theme provides named fallback styles for rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:   Style{Prefix: p.Text},
		Anchor: Style{Prefix: p.Anchor},
		URL:    Style{Prefix: p.URL},
	}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"mono":    theme{name: "mono", styles: stylesFromPalette(palette.PaletteMono)},
	"plain":   theme{name: "plain", styles: stylesFromPalette(palette.PalettePlain)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	t, ok := builtinThemes[normalized]
	return t, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
