// Package palette provides ANSI SGR prefixes for spanml styles.
package palette

import "strconv"

const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Faint     = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Strike    = "\x1b[9m"
)

// Fg returns a 24-bit foreground color prefix.
func Fg(r, g, b uint8) string { return rgbSeq("38", r, g, b) }

// Bg returns a 24-bit background color prefix.
func Bg(r, g, b uint8) string { return rgbSeq("48", r, g, b) }

// UnderlineColor returns an underline color prefix (SGR 58; honored by
// terminals that implement colored underlines).
func UnderlineColor(r, g, b uint8) string { return rgbSeq("58", r, g, b) }

func rgbSeq(kind string, r, g, b uint8) string {
	return "\x1b[" + kind + ";2;" +
		strconv.Itoa(int(r)) + ";" +
		strconv.Itoa(int(g)) + ";" +
		strconv.Itoa(int(b)) + "m"
}

// Palette groups the fallback prefixes a theme assigns to elements that
// carry no style attribute.
type Palette struct {
	Text   string
	Anchor string
	URL    string
}

var (
	// PaletteDefault underlines anchors in blue and dims URLs.
	PaletteDefault = Palette{
		Anchor: Underline + Fg(0x5f, 0xaf, 0xff),
		URL:    Faint,
	}
	// PaletteMono avoids color, keeping only attribute styling.
	PaletteMono = Palette{
		Anchor: Underline,
		URL:    Faint,
	}
	// PalettePlain applies no styling at all.
	PalettePlain = Palette{}
)
