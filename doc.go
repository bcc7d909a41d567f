// Package spanml parses a tiny rich-text markup dialect and renders it
// for terminal display.
//
// The dialect recognizes three elements (p, span, a); anything else is
// an ignored element whose body is skipped verbatim. Paragraphs, spans,
// and anchors may carry a CSS-like style attribute, and anchors an
// href. The parser is a single-pass, rune-by-rune scanner that never
// fails: unknown tags, attribute names, style properties, and entity
// escapes all degrade to best-effort output instead of errors.
//
// Parsing delivers three kinds of events to an Observer, synchronously
// and in document order:
//   - content text, with entity escapes resolved
//   - element open, with any parsed attributes
//   - element close (anonymous; the dialect is stack-less)
//
// Example:
//
//	var rec spanml.Recorder
//	spanml.Parse("<p>Hello &amp; welcome</p>", &rec)
//	for _, ev := range rec.Events {
//		// ...
//	}
//
// Render consumes the event stream and produces word-wrapped ANSI
// output, translating style properties such as color and
// text-decoration into SGR sequences.
package spanml
