package spanml

// Observer receives parse events synchronously, in document order. An
// Observer must not re-enter the parser instance that is calling it.
type Observer interface {
	// Content delivers a run of text with entity escapes resolved.
	// It is never called with an empty string.
	Content(text string)

	// Open delivers an element open. attrs is nil unless a style or
	// href attribute name was confirmed.
	Open(tag Tag, attrs AttributeSet)

	// Close delivers an element close. Close events carry no tag
	// identity; balance is the caller's concern.
	Close()
}

// ObserverFuncs adapts plain functions to the Observer interface. Nil
// fields are no-ops.
type ObserverFuncs struct {
	OnContent func(text string)
	OnOpen    func(tag Tag, attrs AttributeSet)
	OnClose   func()
}

func (o ObserverFuncs) Content(text string) {
	if o.OnContent != nil {
		o.OnContent(text)
	}
}

func (o ObserverFuncs) Open(tag Tag, attrs AttributeSet) {
	if o.OnOpen != nil {
		o.OnOpen(tag, attrs)
	}
}

func (o ObserverFuncs) Close() {
	if o.OnClose != nil {
		o.OnClose()
	}
}
