package spanml

import "strings"

// EventKind discriminates recorded parse events.
type EventKind uint8

const (
	// EventContent is a run of text with entity escapes resolved.
	EventContent EventKind = iota
	// EventOpen is an element open, possibly with attributes.
	EventOpen
	// EventClose is an anonymous element close.
	EventClose
)

func (k EventKind) String() string {
	switch k {
	case EventContent:
		return "content"
	case EventOpen:
		return "open"
	case EventClose:
		return "close"
	}
	return "unknown"
}

// Event is one recorded parse event.
type Event struct {
	Kind  EventKind
	Text  string
	Tag   Tag
	Attrs AttributeSet
}

// Recorder is an Observer that collects events for later inspection.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Content(text string) {
	r.Events = append(r.Events, Event{Kind: EventContent, Text: text})
}

func (r *Recorder) Open(tag Tag, attrs AttributeSet) {
	r.Events = append(r.Events, Event{Kind: EventOpen, Tag: tag, Attrs: attrs})
}

func (r *Recorder) Close() {
	r.Events = append(r.Events, Event{Kind: EventClose})
}

// ContentText returns the concatenation of all recorded content events.
func (r *Recorder) ContentText() string {
	var b strings.Builder
	for _, ev := range r.Events {
		if ev.Kind == EventContent {
			b.WriteString(ev.Text)
		}
	}
	return b.String()
}
