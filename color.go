package spanml

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"pkt.systems/spanml/internal/palette"
)

// sgrFromStyle converts recognized style properties into an SGR prefix.
// Properties with no terminal equivalent (font, text-align, and the
// like) are skipped, matching the parser's leniency.
func sgrFromStyle(props StyleMap) string {
	var b strings.Builder
	if c, ok := styleColor(props, "color"); ok {
		b.WriteString(palette.Fg(c.r, c.g, c.b))
	}
	if c, ok := styleColor(props, "background-color"); ok {
		b.WriteString(palette.Bg(c.r, c.g, c.b))
	}
	deco := props["text-decoration"]
	if strings.Contains(deco, "underline") || styleTruthy(props["underline"]) {
		b.WriteString(palette.Underline)
	}
	if strings.Contains(deco, "line-through") || styleTruthy(props["strikethrough"]) {
		b.WriteString(palette.Strike)
	}
	if c, ok := styleColor(props, "underline-color"); ok {
		b.WriteString(palette.UnderlineColor(c.r, c.g, c.b))
	}
	return b.String()
}

type rgb struct {
	r, g, b uint8
}

func styleColor(props StyleMap, key string) (rgb, bool) {
	v, ok := props[key]
	if !ok {
		return rgb{}, false
	}
	return parseColor(v)
}

// parseColor accepts #rrggbb, rgb()/rgba() with 0-255 or 0-1 channels,
// and a small set of named colors.
func parseColor(value string) (rgb, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return rgb{}, false
	}
	if hex, ok := namedColors[strings.ToLower(v)]; ok {
		v = hex
	}
	if strings.HasPrefix(v, "#") {
		c, err := colorful.Hex(v)
		if err != nil {
			return rgb{}, false
		}
		r, g, b := c.RGB255()
		return rgb{r, g, b}, true
	}
	if strings.HasPrefix(v, "rgb") {
		return parseRGBFunc(v)
	}
	return rgb{}, false
}

func parseRGBFunc(v string) (rgb, bool) {
	open := strings.IndexByte(v, '(')
	end := strings.IndexByte(v, ')')
	if open == -1 || end == -1 || end < open {
		return rgb{}, false
	}
	parts := strings.Split(v[open+1:end], ",")
	if len(parts) < 3 {
		return rgb{}, false
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return rgb{}, false
		}
		ch[i] = f
	}
	// Channels at or below 1.0 are treated as fractional.
	if ch[0] <= 1 && ch[1] <= 1 && ch[2] <= 1 {
		for i := range ch {
			ch[i] *= 255
		}
	}
	return rgb{clampChannel(ch[0]), clampChannel(ch[1]), clampChannel(ch[2])}, true
}

func clampChannel(f float64) uint8 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f + 0.5)
}

func styleTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "none", "false":
		return false
	}
	return true
}

var namedColors = map[string]string{
	"black":   "#000000",
	"red":     "#cd0000",
	"green":   "#00cd00",
	"yellow":  "#cdcd00",
	"blue":    "#0000ee",
	"magenta": "#cd00cd",
	"cyan":    "#00cdcd",
	"white":   "#e5e5e5",
	"gray":    "#7f7f7f",
	"grey":    "#7f7f7f",
	"orange":  "#ff8700",
	"purple":  "#8700af",
}
