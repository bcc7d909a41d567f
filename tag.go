package spanml

// Tag classifies a markup element. Anything outside the dialect's three
// element names is TagIgnored; an ignored element's body is skipped
// without attribute parsing.
type Tag uint8

const (
	TagParagraph Tag = iota
	TagSpan
	TagAnchor
	TagIgnored
)

func (t Tag) String() string {
	switch t {
	case TagParagraph:
		return "p"
	case TagSpan:
		return "span"
	case TagAnchor:
		return "a"
	case TagIgnored:
		return "ignored"
	}
	return "unknown"
}

// AttributeKind identifies a recognized attribute name.
type AttributeKind uint8

const (
	AttrStyle AttributeKind = iota
	AttrHref
)

func (k AttributeKind) String() string {
	switch k {
	case AttrStyle:
		return "style"
	case AttrHref:
		return "href"
	}
	return "unknown"
}

// StyleMap maps canonical property names to raw, unparsed values.
type StyleMap map[string]string

// AttributeSet maps recognized attribute kinds to their parsed values.
// A nil AttributeSet means no attribute name was confirmed; the element
// still opens.
type AttributeSet map[AttributeKind]StyleMap

const hrefKey = "href"

// Href returns the captured anchor URL, or "" when absent.
func (a AttributeSet) Href() string {
	return a[AttrHref][hrefKey]
}
