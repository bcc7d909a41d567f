package spanml

import "strings"

// parser holds the scan state for one input: a single cursor and a
// single content buffer. A parser is not safe for concurrent or
// reentrant use.
type parser struct {
	cur cursor
	buf []rune
	obs Observer

	bufArr [512]rune
}

// Parse scans src and delivers events to obs in document order. The
// scan never fails and always consumes the entire input; unrecognized
// constructs degrade per the dialect's leniency rules.
func Parse(src string, obs Observer) {
	p := &parser{cur: cursor{src: []rune(src)}, obs: obs}
	p.buf = p.bufArr[:0]
	p.run()
}

// ParseBytes validates raw bytes and scans the decoded text.
func ParseBytes(src []byte, obs Observer) error {
	if err := ValidateInput(src); err != nil {
		return err
	}
	Parse(string(src), obs)
	return nil
}

func (p *parser) run() {
	for {
		r, ok := p.cur.next()
		if !ok {
			break
		}
		switch r {
		case '<':
			p.flush()
			p.matchTag()
		case '&':
			p.buf = append(p.buf, resolveEscape(&p.cur))
		default:
			p.buf = append(p.buf, r)
		}
	}
	p.flush()
}

// flush emits buffered content. Empty buffers are never flushed, so no
// zero-length content event exists.
func (p *parser) flush() {
	if len(p.buf) == 0 {
		return
	}
	p.obs.Content(string(p.buf))
	p.buf = p.buf[:0]
}

// skipTag consumes runes up to and including the next '>'.
func (p *parser) skipTag() {
	for {
		r, ok := p.cur.next()
		if !ok || r == '>' {
			return
		}
	}
}

// matchTag classifies the construct following '<'. Every construct that
// is not a close tag produces exactly one open event, unrecognized
// elements included.
func (p *parser) matchTag() {
	r, ok := p.cur.next()
	if !ok {
		p.obs.Open(TagIgnored, nil)
		return
	}
	switch r {
	case '/':
		p.skipTag()
		p.obs.Close()
	case 'p':
		p.openTag(TagParagraph)
	case 'a':
		p.openTag(TagAnchor)
	case 's':
		if p.cur.literal("pan") {
			p.openTag(TagSpan)
		} else {
			p.skipTag()
			p.obs.Open(TagIgnored, nil)
		}
	default:
		p.skipTag()
		p.obs.Open(TagIgnored, nil)
	}
}

// openTag handles the rune after a confirmed tag name: a space starts
// the attribute block, '>' closes a bare tag, and anything else demotes
// the construct to an ignored element.
func (p *parser) openTag(tag Tag) {
	r, ok := p.cur.next()
	if !ok {
		p.obs.Open(tag, nil)
		return
	}
	switch r {
	case ' ':
		attrs := p.parseAttributes()
		p.skipTag()
		p.obs.Open(tag, attrs)
	case '>':
		p.obs.Open(tag, nil)
	default:
		p.skipTag()
		p.obs.Open(TagIgnored, nil)
	}
}

// parseAttributes is entered just past the space following a confirmed
// tag name. An unrecognized attribute name never demotes the element:
// the open event still fires, just without attributes.
func (p *parser) parseAttributes() AttributeSet {
	r, ok := p.cur.next()
	if !ok {
		return nil
	}
	switch r {
	case 's':
		if !p.cur.literal("tyle") {
			return nil
		}
		return AttributeSet{AttrStyle: parseStyle(&p.cur)}
	case 'h':
		if !p.cur.literal("ref") {
			return nil
		}
		return AttributeSet{AttrHref: parseHref(&p.cur)}
	}
	return nil
}

// parseHref captures the quoted URL value under the "href" key. Earlier
// revisions of this dialect dropped the value entirely; capturing it
// keeps the attribute contract unchanged while making anchors useful.
func parseHref(c *cursor) StyleMap {
	for {
		r, ok := c.peek()
		if !ok || (r != '=' && r != ' ' && r != '\'' && r != '"') {
			break
		}
		c.next()
	}
	var b strings.Builder
	for {
		r, ok := c.peek()
		if !ok || r == '\'' || r == '"' || r == '>' {
			break
		}
		c.next()
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return StyleMap{}
	}
	return StyleMap{hrefKey: b.String()}
}
