package spanml

import (
	"reflect"
	"testing"
)

func assertEvents(t *testing.T, got, want []Event) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("event mismatch\nwant: %+v\n got: %+v", want, got)
	}
}

func TestParseMixedDocument(t *testing.T) {
	input := "<p><span style='bla:fasdf;'> hello</span> &amp; world<dummy> not this </dummy></p>"
	var rec Recorder
	Parse(input, &rec)
	want := []Event{
		{Kind: EventOpen, Tag: TagParagraph},
		{Kind: EventOpen, Tag: TagSpan, Attrs: AttributeSet{AttrStyle: StyleMap{}}},
		{Kind: EventContent, Text: " hello"},
		{Kind: EventClose},
		{Kind: EventContent, Text: " & world"},
		{Kind: EventOpen, Tag: TagIgnored},
		{Kind: EventContent, Text: " not this "},
		{Kind: EventClose},
		{Kind: EventClose},
	}
	assertEvents(t, rec.Events, want)
}

func TestEmptyParagraphEmitsNoContent(t *testing.T) {
	var rec Recorder
	Parse("<p></p>", &rec)
	want := []Event{
		{Kind: EventOpen, Tag: TagParagraph},
		{Kind: EventClose},
	}
	assertEvents(t, rec.Events, want)
}

func TestTagClassification(t *testing.T) {
	cases := []struct {
		input string
		tag   Tag
	}{
		{"<p>", TagParagraph},
		{"<a>", TagAnchor},
		{"<span>", TagSpan},
		{"<spam>", TagIgnored},
		{"<sp>", TagIgnored},
		{"<div>", TagIgnored},
		{"<>", TagIgnored},
		{"<px>", TagIgnored},
		{"<party>", TagIgnored},
	}
	for _, tc := range cases {
		var rec Recorder
		Parse(tc.input, &rec)
		want := []Event{{Kind: EventOpen, Tag: tc.tag}}
		if !reflect.DeepEqual(rec.Events, want) {
			t.Fatalf("%q: got %+v, want open %s", tc.input, rec.Events, tc.tag)
		}
	}
}

func TestCloseTagsAreAnonymous(t *testing.T) {
	var rec Recorder
	Parse("</p></span></whatever></>", &rec)
	want := []Event{
		{Kind: EventClose},
		{Kind: EventClose},
		{Kind: EventClose},
		{Kind: EventClose},
	}
	assertEvents(t, rec.Events, want)
}

func TestIgnoredTagBodyIsNeverScannedForAttributes(t *testing.T) {
	var rec Recorder
	Parse("<div style='color: red;'>x</div>", &rec)
	want := []Event{
		{Kind: EventOpen, Tag: TagIgnored},
		{Kind: EventContent, Text: "x"},
		{Kind: EventClose},
	}
	assertEvents(t, rec.Events, want)
}

func TestUnknownAttributeNameKeepsTag(t *testing.T) {
	var rec Recorder
	Parse("<p class='x'>text</p>", &rec)
	want := []Event{
		{Kind: EventOpen, Tag: TagParagraph},
		{Kind: EventContent, Text: "text"},
		{Kind: EventClose},
	}
	assertEvents(t, rec.Events, want)
}

func TestPartialAttributeNameKeepsTag(t *testing.T) {
	var rec Recorder
	Parse("<span sty='x'>text</span>", &rec)
	want := []Event{
		{Kind: EventOpen, Tag: TagSpan},
		{Kind: EventContent, Text: "text"},
		{Kind: EventClose},
	}
	assertEvents(t, rec.Events, want)
}

func TestHrefCapture(t *testing.T) {
	var rec Recorder
	Parse("<a href='https://example.com/'>link</a>", &rec)
	want := []Event{
		{Kind: EventOpen, Tag: TagAnchor, Attrs: AttributeSet{AttrHref: StyleMap{"href": "https://example.com/"}}},
		{Kind: EventContent, Text: "link"},
		{Kind: EventClose},
	}
	assertEvents(t, rec.Events, want)
	if got := rec.Events[0].Attrs.Href(); got != "https://example.com/" {
		t.Fatalf("Href(): got %q", got)
	}
}

func TestHrefWithoutValue(t *testing.T) {
	var rec Recorder
	Parse("<a href=''>link</a>", &rec)
	want := []Event{
		{Kind: EventOpen, Tag: TagAnchor, Attrs: AttributeSet{AttrHref: StyleMap{}}},
		{Kind: EventContent, Text: "link"},
		{Kind: EventClose},
	}
	assertEvents(t, rec.Events, want)
}

func TestContentFlushPrecedesTagEvents(t *testing.T) {
	var rec Recorder
	Parse("before<p>inside</p>after", &rec)
	want := []Event{
		{Kind: EventContent, Text: "before"},
		{Kind: EventOpen, Tag: TagParagraph},
		{Kind: EventContent, Text: "inside"},
		{Kind: EventClose},
		{Kind: EventContent, Text: "after"},
	}
	assertEvents(t, rec.Events, want)
}

func TestTruncatedInputStillEmits(t *testing.T) {
	cases := []struct {
		input string
		want  []Event
	}{
		{"<", []Event{{Kind: EventOpen, Tag: TagIgnored}}},
		{"<p", []Event{{Kind: EventOpen, Tag: TagParagraph}}},
		{"<p ", []Event{{Kind: EventOpen, Tag: TagParagraph}}},
		{"</p", []Event{{Kind: EventClose}}},
		{"<span", []Event{{Kind: EventOpen, Tag: TagSpan}}},
	}
	for _, tc := range cases {
		var rec Recorder
		Parse(tc.input, &rec)
		if !reflect.DeepEqual(rec.Events, tc.want) {
			t.Fatalf("%q: got %+v, want %+v", tc.input, rec.Events, tc.want)
		}
	}
}

func TestObserverFuncs(t *testing.T) {
	var opens, closes int
	var content string
	obs := ObserverFuncs{
		OnContent: func(text string) { content += text },
		OnOpen:    func(Tag, AttributeSet) { opens++ },
		OnClose:   func() { closes++ },
	}
	Parse("<p>hi</p>", obs)
	if opens != 1 || closes != 1 || content != "hi" {
		t.Fatalf("opens=%d closes=%d content=%q", opens, closes, content)
	}
	// Nil fields must not panic.
	Parse("<p>hi</p>", ObserverFuncs{})
}

func TestParseBytes(t *testing.T) {
	var rec Recorder
	if err := ParseBytes([]byte("<p>ok</p>"), &rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.ContentText(); got != "ok" {
		t.Fatalf("content: got %q", got)
	}
	if err := ParseBytes([]byte{0xff, 0xfe}, &rec); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func BenchmarkParse(b *testing.B) {
	input := "<p><span style='color: #ff0000; background-color: rgba(52, 72, 83, 1.000000);'>styled &amp; escaped</span> plain <a href='https://example.com/'>link</a></p>"
	obs := ObserverFuncs{}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Parse(input, obs)
	}
}
