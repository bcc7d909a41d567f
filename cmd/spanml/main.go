package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/spanml"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/spanml")
}

func main() {
	var (
		themeName  string
		widthFlag  int
		osc8Flag   string
		outPath    string
		boring     bool
		events     bool
		listThemes bool
	)

	flags := pflag.NewFlagSet("spanml", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&boring, "boring", "b", false, "Generate non-ANSI output")
	flags.BoolVar(&events, "events", false, "Dump the parse event stream instead of rendering")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: spanml [flags] [input]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input file is provided, markup is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		for _, name := range spanml.AvailableThemes() {
			fmt.Fprintln(os.Stdout, name)
		}
		return
	}

	input, err := readInput(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	if events {
		if err := dumpEvents(input, writer); err != nil {
			fmt.Fprintf(os.Stderr, "parse: %v\n", err)
			os.Exit(1)
		}
		return
	}

	theme, ok := spanml.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		for _, name := range spanml.AvailableThemes() {
			fmt.Fprintln(os.Stderr, name)
		}
		os.Exit(2)
	}
	if boring {
		theme = spanml.NewTheme("boring", spanml.Styles{})
	}

	osc8, err := resolveOSC8(osc8Flag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --osc8 %q: %v\n", osc8Flag, err)
		os.Exit(2)
	}

	if err := spanml.Render(spanml.RenderRequest{
		Input:   input,
		Writer:  writer,
		Width:   resolveWidth(widthFlag),
		Theme:   theme,
		Options: []spanml.RenderOption{spanml.WithOSC8(osc8)},
	}); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

func readInput(args []string) ([]byte, error) {
	switch {
	case len(args) == 0:
		return io.ReadAll(os.Stdin)
	case len(args) > 1:
		return nil, fmt.Errorf("expected at most one input file")
	case args[0] == "-":
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if path == "" {
		return os.Stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return spanml.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("expected auto|on|off")
}

func dumpEvents(input []byte, w io.Writer) error {
	var rec spanml.Recorder
	if err := spanml.ParseBytes(input, &rec); err != nil {
		return err
	}
	for _, ev := range rec.Events {
		switch ev.Kind {
		case spanml.EventContent:
			fmt.Fprintf(w, "content %q\n", ev.Text)
		case spanml.EventOpen:
			if ev.Attrs == nil {
				fmt.Fprintf(w, "open    %s\n", ev.Tag)
			} else {
				fmt.Fprintf(w, "open    %s %s\n", ev.Tag, formatAttrs(ev.Attrs))
			}
		case spanml.EventClose:
			fmt.Fprintln(w, "close")
		}
	}
	return nil
}

func formatAttrs(attrs spanml.AttributeSet) string {
	parts := make([]string, 0, len(attrs))
	for _, kind := range []spanml.AttributeKind{spanml.AttrStyle, spanml.AttrHref} {
		props, ok := attrs[kind]
		if !ok {
			continue
		}
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, k+"="+props[k])
		}
		parts = append(parts, kind.String()+"{"+strings.Join(pairs, "; ")+"}")
	}
	return strings.Join(parts, " ")
}
