package spanml

import "strings"

// escapeWindow bounds the lookahead after '&'. The longest recognized
// escapes, "quot;" and "apos;", are five codepoints including the
// terminating ';'.
const escapeWindow = 5

var entityNames = map[string]rune{
	"amp":  '&',
	"quot": '"',
	"apos": '\'',
	"lt":   '<',
	"gt":   '>',
}

// resolveEscape is called with c positioned just past '&'. On a
// recognized escape it advances past the ';' and returns the decoded
// rune. Otherwise c is left untouched and '&' is returned: the
// lookahead runes stay in the stream and are rescanned as ordinary
// characters.
func resolveEscape(c *cursor) rune {
	probe := *c
	var name [escapeWindow - 1]rune
	n := 0
	for i := 0; i < escapeWindow; i++ {
		r, ok := probe.next()
		if !ok {
			return '&'
		}
		if r == ';' {
			if decoded, known := entityNames[string(name[:n])]; known {
				*c = probe
				return decoded
			}
			return '&'
		}
		if n < len(name) {
			name[n] = r
			n++
		}
	}
	return '&'
}

// Escape replaces the five markup-significant characters with their
// entity escapes so plain text survives a parse round trip unchanged.
func Escape(text string) string {
	if !strings.ContainsAny(text, `&"'<>`) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
