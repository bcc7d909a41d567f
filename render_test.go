package spanml

import (
	"bytes"
	"strings"
	"testing"
)

func renderString(t *testing.T, input string, width int, opts ...RenderOption) string {
	t.Helper()
	plain, _ := ThemeByName("plain")
	var out bytes.Buffer
	err := Render(RenderRequest{
		Input:   []byte(input),
		Writer:  &out,
		Width:   width,
		Theme:   plain,
		Options: opts,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

func TestRenderPlainParagraph(t *testing.T) {
	got := renderString(t, "<p>Hello &amp; welcome</p>", 0)
	want := "Hello & welcome\n"
	if got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}

func TestRenderParagraphSeparation(t *testing.T) {
	got := renderString(t, "<p>one</p><p>two</p>", 0)
	want := "one\n\ntwo\n"
	if got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}

func TestRenderWrapsAtWidth(t *testing.T) {
	got := renderString(t, "<p>alpha beta gamma</p>", 6)
	want := "alpha\nbeta\ngamma\n"
	if got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}

func TestRenderAnchorShowsURL(t *testing.T) {
	got := renderString(t, "<a href='https://x.y/'>link</a>", 0)
	want := "link (https://x.y/)\n"
	if got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}

func TestRenderAnchorOSC8(t *testing.T) {
	got := renderString(t, "<a href='https://x.y/'>link</a>", 0, WithOSC8(true))
	if !strings.Contains(got, osc8Start+"https://x.y/") {
		t.Fatalf("expected OSC8 hyperlink in %q", got)
	}
	if strings.Contains(got, "(https://x.y/)") {
		t.Fatalf("URL suffix should be suppressed with OSC8: %q", got)
	}
}

func TestRenderColorProperty(t *testing.T) {
	got := renderString(t, "<span style='color: #ff0000;'>X</span>", 0)
	if !strings.Contains(got, "\x1b[38;2;255;0;0m") {
		t.Fatalf("expected 24-bit foreground sequence in %q", got)
	}
	if !strings.Contains(got, "\x1b[0m") {
		t.Fatalf("expected reset sequence in %q", got)
	}
}

func TestRenderRGBAProperty(t *testing.T) {
	got := renderString(t, "<span style='background-color:rgba(52, 72, 83, 1.000000);'>Test</span>", 0)
	if !strings.Contains(got, "\x1b[48;2;52;72;83m") {
		t.Fatalf("expected 24-bit background sequence in %q", got)
	}
}

func TestRenderDecorations(t *testing.T) {
	got := renderString(t, "<span style='text-decoration: underline;'>u</span>", 0)
	if !strings.Contains(got, "\x1b[4m") {
		t.Fatalf("expected underline in %q", got)
	}
	got = renderString(t, "<span style='-cocoa-strikethrough: 1;'>s</span>", 0)
	if !strings.Contains(got, "\x1b[9m") {
		t.Fatalf("expected strikethrough in %q", got)
	}
	got = renderString(t, "<span style='-cocoa-strikethrough: none;'>s</span>", 0)
	if strings.Contains(got, "\x1b[9m") {
		t.Fatalf("strikethrough 'none' should not style: %q", got)
	}
}

func TestRenderUnknownValueDegradesToPlain(t *testing.T) {
	got := renderString(t, "<span style='color: chartreuse-ish;'>x</span>", 0)
	want := "x\n"
	if got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}

func TestRenderRejectsBinaryInput(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Input:  append([]byte("hello"), 0x00),
		Writer: &out,
	})
	if err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRenderDefaultThemeStylesAnchors(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Input:  []byte("<a href='https://x.y/'>link</a>"),
		Writer: &out,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), "\x1b[4m") {
		t.Fatalf("default theme should underline anchors: %q", out.String())
	}
}

func TestRenderUnbalancedCloseIgnored(t *testing.T) {
	got := renderString(t, "</p></span>text", 0)
	want := "text\n"
	if got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}
