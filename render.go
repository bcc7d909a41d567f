package spanml

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"pkt.systems/spanml/internal/palette"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Input   []byte
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []RenderOption
}

// Render parses the input and writes styled terminal text. Words are
// wrapped at the requested width; a width of 0 or less disables
// wrapping.
func Render(req RenderRequest) error {
	if err := ValidateInput(req.Input); err != nil {
		return err
	}
	opts := append([]RenderOption{WithTheme(req.Theme)}, req.Options...)
	r := NewRenderer(req.Writer, req.Width, opts...)
	Parse(string(req.Input), r)
	return r.Flush()
}

// Renderer translates parse events into word-wrapped ANSI text. It
// implements Observer and keeps its own open-element stack, since close
// events carry no tag identity.
type Renderer struct {
	w      io.Writer
	width  int
	osc8   bool
	styles Styles

	stack     []element
	lineWidth int
	wroteAny  bool
	needBlank bool
	err       error
}

type element struct {
	tag    Tag
	prefix string
	href   string
}

// NewRenderer returns a Renderer writing to w.
func NewRenderer(w io.Writer, width int, opts ...RenderOption) *Renderer {
	cfg := renderConfig{theme: DefaultTheme()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Renderer{
		w:      w,
		width:  width,
		osc8:   cfg.osc8,
		styles: cfg.theme.Styles(),
	}
}

// Content writes a text run word by word, wrapping as needed.
func (r *Renderer) Content(text string) {
	cur := r.current()
	for _, word := range strings.Fields(text) {
		r.emit(word, cur.prefix, cur.href)
	}
}

// Open pushes an element with its effective style. Paragraphs start a
// new block.
func (r *Renderer) Open(tag Tag, attrs AttributeSet) {
	if tag == TagParagraph {
		r.breakBlock()
	}
	r.stack = append(r.stack, element{
		tag:    tag,
		prefix: r.prefixFor(tag, attrs),
		href:   attrs.Href(),
	})
}

// Close pops the innermost element. Unbalanced closes are ignored, in
// keeping with the parser's leniency.
func (r *Renderer) Close() {
	if len(r.stack) == 0 {
		return
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	switch {
	case top.tag == TagAnchor && top.href != "" && !r.osc8:
		url := top.href
		if r.width > 0 {
			limit := r.width - 2
			if limit < 8 {
				limit = 8
			}
			url = fitURL(url, limit)
		}
		r.emit("("+url+")", r.styles.URL.Prefix, "")
	case top.tag == TagParagraph:
		r.breakBlock()
	}
}

// Flush terminates any open line and reports the first write error.
func (r *Renderer) Flush() error {
	if r.lineWidth > 0 {
		r.print("\n")
		r.lineWidth = 0
	}
	return r.err
}

func (r *Renderer) current() element {
	if len(r.stack) == 0 {
		return element{prefix: r.styles.Text.Prefix}
	}
	return r.stack[len(r.stack)-1]
}

func (r *Renderer) prefixFor(tag Tag, attrs AttributeSet) string {
	base := r.styles.Text
	if tag == TagAnchor {
		base = r.styles.Anchor
	}
	prefix := base.Prefix
	if props, ok := attrs[AttrStyle]; ok {
		prefix += sgrFromStyle(props)
	}
	return prefix
}

func (r *Renderer) emit(word, prefix, href string) {
	w := runewidth.StringWidth(word)
	switch {
	case r.width > 0 && r.lineWidth > 0 && r.lineWidth+1+w > r.width:
		r.print("\n")
		r.lineWidth = 0
	case r.lineWidth > 0:
		r.print(" ")
		r.lineWidth++
	}
	if r.needBlank {
		r.print("\n")
		r.needBlank = false
	}
	styled := word
	if prefix != "" {
		styled = prefix + word + palette.Reset
	}
	if r.osc8 && href != "" {
		styled = osc8Link(href, styled)
	}
	r.print(styled)
	r.lineWidth += w
	r.wroteAny = true
}

// breakBlock ends the current line and queues a blank separator line
// that materializes only if more content follows.
func (r *Renderer) breakBlock() {
	if r.lineWidth > 0 {
		r.print("\n")
		r.lineWidth = 0
	}
	if r.wroteAny {
		r.needBlank = true
	}
}

func (r *Renderer) print(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}
