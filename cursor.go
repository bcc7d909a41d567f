package spanml

// cursor is a forward-only position over the decoded input. A cursor is
// a value: copying one is an O(1) snapshot, which is the sole lookahead
// mechanism in this package. Literal matchers advance a copy and commit
// it back only when every expected rune was confirmed.
type cursor struct {
	src []rune
	pos int
}

// peek returns the rune under the cursor without consuming it.
func (c cursor) peek() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos], true
}

// next consumes and returns the rune under the cursor.
func (c *cursor) next() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	r := c.src[c.pos]
	c.pos++
	return r, true
}

// literal advances past s when every rune matches in sequence. On any
// mismatch the cursor is left untouched.
func (c *cursor) literal(s string) bool {
	probe := *c
	for _, want := range s {
		r, ok := probe.next()
		if !ok || r != want {
			return false
		}
	}
	*c = probe
	return true
}
