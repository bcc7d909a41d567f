package spanml

import "strings"

// styleCandidate pairs a literal property name with the canonical key
// it is stored under.
type styleCandidate struct {
	literal string
	key     string
}

// styleCandidates buckets recognized property names by first letter.
// Candidates in a bucket are tried in fixed order; the first full
// literal match wins and there is no backtracking within a match.
var styleCandidates = map[rune][]styleCandidate{
	'b': {{"background-color", "background-color"}},
	'c': {{"color", "color"}},
	'f': {{"font", "font"}},
	't': {{"text-align", "text-align"}, {"text-decoration", "text-decoration"}},
	'v': {{"vertical-align", "vertical-align"}},
}

// cocoaCandidates covers the "-cocoa-" vendor namespace. The -color
// variants come before their bare forms so the longer literal wins.
// The vendor vertical-align keeps its prefix in the canonical key so it
// never collides with the standard property.
var cocoaCandidates = map[rune][]styleCandidate{
	'b': {{"baseline-offset", "baseline-offset"}},
	'f': {{"font-postscriptname", "font-postscriptname"}},
	's': {{"strikethrough-color", "strikethrough-color"}, {"strikethrough", "strikethrough"}},
	'u': {{"underline-color", "underline-color"}, {"underline", "underline"}},
	'v': {{"vertical-align", "-cocoa-vertical-align"}},
}

func isStyleSeparator(r rune) bool {
	switch r {
	case '=', ' ', ';', '\'', ':':
		return true
	}
	return false
}

func skipSeparators(c *cursor) {
	for {
		r, ok := c.peek()
		if !ok || !isStyleSeparator(r) {
			return
		}
		c.next()
	}
}

// parseStyle scans property/value pairs until the enclosing tag's '>'.
// Unrecognized properties are skipped one rune at a time, which keeps
// the loop moving forward, so the scan always terminates.
func parseStyle(c *cursor) StyleMap {
	props := StyleMap{}
	for {
		skipSeparators(c)
		r, ok := c.peek()
		if !ok || r == '>' {
			return props
		}
		key, matched := matchProperty(c)
		if !matched {
			c.next()
			continue
		}
		skipSeparators(c)
		props[key] = scanValue(c)
	}
}

func matchProperty(c *cursor) (string, bool) {
	r, ok := c.peek()
	if !ok {
		return "", false
	}
	if r == '-' {
		if !c.literal("-cocoa-") {
			return "", false
		}
		return matchCandidate(c, cocoaCandidates)
	}
	return matchCandidate(c, styleCandidates)
}

func matchCandidate(c *cursor, table map[rune][]styleCandidate) (string, bool) {
	r, ok := c.peek()
	if !ok {
		return "", false
	}
	for _, cand := range table[r] {
		if c.literal(cand.literal) {
			return cand.key, true
		}
	}
	return "", false
}

// scanValue reads the raw value up to the next ';' or the tag's '>',
// consuming neither terminator. Bounding the scan at '>' means a value
// missing its trailing ';' ends at the tag instead of swallowing the
// markup that follows.
func scanValue(c *cursor) string {
	var b strings.Builder
	for {
		r, ok := c.peek()
		if !ok || r == ';' || r == '>' {
			return b.String()
		}
		c.next()
		b.WriteRune(r)
	}
}
